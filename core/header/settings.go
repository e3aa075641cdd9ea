// Package header — settings panel.
// One button per level entry followed by one per alignment entry. The two
// button groups highlight independently: after any settings render exactly
// one level button and one alignment button carry the active class.
package header

import (
	"strconv"

	"github.com/gaurav-prasanna/blockhead/core"
	"github.com/gaurav-prasanna/blockhead/core/registry"
)

// RenderSettings builds the settings-panel element. The host wires the
// buttons' click events back to SetLevel / SetAlignment using the
// data-level / data-align attributes.
func (h *Header) RenderSettings() core.Element {
	wrapper := h.surface.CreateElement("div")

	h.levelButtons = make(map[int]core.Element)
	for _, entry := range h.norm.Levels() {
		btn := h.surface.CreateElement("span")
		btn.AddClass(h.styles.SettingsButton)
		btn.SetAttr("data-level", strconv.Itoa(entry.ID))
		btn.SetInnerHTML(entry.Icon)
		wrapper.AppendChild(btn)
		h.levelButtons[entry.ID] = btn
	}

	h.alignButtons = make(map[string]core.Element)
	for _, entry := range registry.Alignments() {
		btn := h.surface.CreateElement("span")
		btn.AddClass(h.styles.SettingsButton)
		btn.SetAttr("data-align", entry.ID)
		btn.SetInnerHTML(entry.Icon)
		wrapper.AppendChild(btn)
		h.alignButtons[entry.ID] = btn
	}

	h.highlightButtons()
	return wrapper
}

// highlightButtons reflects the current selection on the settings buttons.
// Mutually exclusive within each group, independent across groups. No-op
// until the settings panel has been rendered.
func (h *Header) highlightButtons() {
	for id, btn := range h.levelButtons {
		if id == h.data.Level {
			btn.AddClass(h.styles.SettingsButtonActive)
		} else {
			btn.RemoveClass(h.styles.SettingsButtonActive)
		}
	}
	for id, btn := range h.alignButtons {
		if id == h.data.Align {
			btn.AddClass(h.styles.SettingsButtonActive)
		} else {
			btn.RemoveClass(h.styles.SettingsButtonActive)
		}
	}
}
