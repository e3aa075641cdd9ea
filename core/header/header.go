// Package header implements the Header block tool: an editable heading
// element (levels 1–4) with a settings panel for picking the level and the
// text alignment. The hosting editor owns the lifecycle; every external
// assignment (construction, paste, merge, settings change) runs through the
// normalizer, so the record, the element tag, and the settings highlight
// never drift apart.
package header

import (
	"strings"

	"github.com/gaurav-prasanna/blockhead/core"
	"github.com/gaurav-prasanna/blockhead/core/normalize"
	"github.com/gaurav-prasanna/blockhead/core/registry"
)

// Default class hooks, used when the host supplies none.
const (
	defaultBlockClass        = "ce-header"
	defaultButtonClass       = "cdx-settings-button"
	defaultButtonActiveClass = "cdx-settings-button--active"
)

// Header is the block tool instance. One instance owns one live view
// element; the host only reads the element or re-parents it.
type Header struct {
	surface core.Surface
	config  core.ToolConfig
	styles  core.Styles
	norm    *normalize.Normalizer

	data    core.HeaderData
	element core.Element

	levelButtons map[int]core.Element
	alignButtons map[string]core.Element
}

// Partial is a partial record update for SetData. Nil fields keep their
// current value.
type Partial struct {
	Text  *string
	Level *int
	Align *string
}

// New constructs a Header tool from host-supplied raw data, configuration,
// and editor API. The raw record is normalized before the first view is
// built; record and view are created together.
func New(s core.Surface, raw map[string]any, cfg core.ToolConfig, api core.API) *Header {
	h := &Header{
		surface: s,
		config:  cfg,
		styles:  resolveStyles(api.Styles),
		norm:    normalize.New(cfg),
	}
	h.data = h.norm.Normalize(raw)
	h.element = h.buildView(h.data)
	return h
}

// NewFromData constructs a Header tool from an already-typed record.
func NewFromData(s core.Surface, d core.HeaderData, cfg core.ToolConfig, api core.API) *Header {
	h := &Header{
		surface: s,
		config:  cfg,
		styles:  resolveStyles(api.Styles),
		norm:    normalize.New(cfg),
	}
	h.data = h.norm.Record(d)
	h.element = h.buildView(h.data)
	return h
}

func resolveStyles(s core.Styles) core.Styles {
	if s.Block == "" {
		s.Block = defaultBlockClass
	}
	if s.SettingsButton == "" {
		s.SettingsButton = defaultButtonClass
	}
	if s.SettingsButtonActive == "" {
		s.SettingsButtonActive = defaultButtonActiveClass
	}
	return s
}

// Render returns the tool's live view element.
func (h *Header) Render() core.Element {
	return h.element
}

// Data returns the record as of the last synchronization point.
func (h *Header) Data() core.HeaderData {
	return h.data
}

// SetLevel switches the heading level, preserving the live text. When the
// element is attached to a host container the replacement is swapped in
// place; otherwise the next Render picks it up.
func (h *Header) SetLevel(id int) {
	h.syncFromView()
	h.data = h.norm.Record(core.HeaderData{
		Text:  h.data.Text,
		Level: id,
		Align: h.data.Align,
	})
	h.syncToView()
	h.highlightButtons()
}

// SetAlignment switches the text alignment. Goes through the same
// rebuild path as SetLevel, so element identity is not preserved.
func (h *Header) SetAlignment(id string) {
	h.syncFromView()
	h.data = h.norm.Record(core.HeaderData{
		Text:  h.data.Text,
		Level: h.data.Level,
		Align: id,
	})
	h.syncToView()
	h.highlightButtons()
}

// SetData applies a partial external overwrite, the general-purpose setter
// behind paste and merge. A defined level rebuilds the element (re-applying
// the alignment style even when the alignment itself did not change); a
// defined text overwrites the displayed content. An update without Text
// must not clobber what is already displayed.
func (h *Header) SetData(p Partial) {
	h.syncFromView()

	d := h.data
	if p.Text != nil {
		d.Text = *p.Text
	}
	if p.Level != nil {
		d.Level = *p.Level
	}
	if p.Align != nil {
		d.Align = *p.Align
	}
	h.data = h.norm.Record(d)

	if p.Level != nil {
		h.syncToView()
	} else {
		if p.Align != nil {
			h.element.SetStyle("text-align", h.data.Align)
		}
		if p.Text != nil {
			h.element.SetInnerHTML(h.data.Text)
		}
	}
	h.highlightButtons()
}

// OnPaste replaces the tool's state from a pasted heading element.
// Unrecognized tag names fall back to the default level.
func (h *Header) OnPaste(event core.PasteEvent) {
	level := h.norm.DefaultLevel().ID
	if entry, ok := registry.LookupLevelByTag(h.norm.Levels(), strings.ToLower(event.TagName)); ok {
		level = entry.ID
	}
	text := event.Content
	h.SetData(Partial{Text: &text, Level: &level})
}

// Save extracts the persisted record: text from the rendered content
// element the host passes in, level and alignment from the current
// selection. The content is host-trusted here; cleaning is the sanitizer
// collaborator's job.
func (h *Header) Save(content core.Element) core.HeaderData {
	return core.HeaderData{
		Text:  content.InnerHTML(),
		Level: h.data.Level,
		Align: h.data.Align,
	}
}

// Validate rejects records whose trimmed text is empty. Level and alignment
// always pass: out-of-range values were resolved during normalization.
func (h *Header) Validate(d core.HeaderData) bool {
	return strings.TrimSpace(d.Text) != ""
}

// Merge appends the other record's text with plain concatenation. The other
// block's level and alignment are discarded: merge only ever combines
// adjacent heading blocks, and the surviving block keeps its presentation.
func (h *Header) Merge(d core.HeaderData) {
	h.syncFromView()
	text := h.data.Text + d.Text
	h.SetData(Partial{Text: &text})
}

// syncFromView refreshes the record's text from the live element.
func (h *Header) syncFromView() {
	h.data.Text = h.element.InnerHTML()
}

// syncToView rebuilds the view for the current record, swapping the fresh
// element in place when the old one is attached to a container.
func (h *Header) syncToView() {
	fresh := h.buildView(h.data)
	if h.element.Parent() != nil {
		h.element.ReplaceWith(fresh)
	}
	h.element = fresh
}

// buildView creates a new editable element for the record: tag from the
// level entry, alignment as an inline style, placeholder hint attached.
func (h *Header) buildView(d core.HeaderData) core.Element {
	entry := registry.LookupLevel(h.norm.Levels(), d.Level)

	el := h.surface.CreateElement(entry.Tag)
	el.SetInnerHTML(d.Text)
	el.SetStyle("text-align", d.Align)
	el.SetAttr("contenteditable", "true")
	el.AddClass(h.styles.Block)
	if h.config.Placeholder != "" {
		el.SetAttr("data-placeholder", h.config.Placeholder)
	}
	return el
}
