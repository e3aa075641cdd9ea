// Package core defines the shared types and interfaces for blockhead.
// A block tool is a view component driven entirely by the hosting editor:
// the host constructs it, calls its lifecycle methods, and reads its static
// descriptors. Core declares that contract plus the rendering-surface
// abstraction, so tool logic never touches a concrete UI toolkit.
package core

import "context"

// HeaderData is the persisted record for a header block.
// This is the wire shape for save/load round trips.
type HeaderData struct {
	Text  string `json:"text"`
	Level int    `json:"level"`
	Align string `json:"align,omitempty"`
}

// Block is one saved block in a document.
type Block struct {
	Type string     `json:"type"`
	Data HeaderData `json:"data"`
}

// Document is the host editor's save format: an ordered list of blocks.
type Document struct {
	Time    int64   `json:"time,omitempty"`
	Blocks  []Block `json:"blocks"`
	Version string  `json:"version,omitempty"`
}

// Styles carries the CSS class hooks the host hands to a tool at construction.
type Styles struct {
	Block                string
	SettingsButton       string
	SettingsButtonActive string
}

// API is the slice of host editor services a tool receives at construction.
type API struct {
	Styles Styles
}

// ToolConfig is the per-block construction configuration.
type ToolConfig struct {
	Placeholder string `yaml:"placeholder"`
	// Levels restricts the supported level ids. Empty means the full
	// registry set.
	Levels []int `yaml:"levels"`
	// DefaultLevel overrides the registry default. Zero means unset.
	DefaultLevel int `yaml:"default_level"`
	// DefaultAlignment overrides the registry default. Empty means unset.
	DefaultAlignment string `yaml:"default_alignment"`
}

// PasteEvent carries a pasted element the host routed to this tool.
type PasteEvent struct {
	TagName string // uppercase tag name, e.g. "H2"
	Content string // inner HTML of the pasted element
}

// ConversionConfig declares how block content maps to and from plain text
// when the host converts between block kinds.
type ConversionConfig struct {
	Export string `json:"export"`
	Import string `json:"import"`
}

// SanitizeRule is the cleaning rule for one saved field.
// Structured fields (level, align) pass through untouched; freeform markup
// fields keep only the listed inline tags.
type SanitizeRule struct {
	Passthrough bool
	Tags        []string
}

// ToolboxEntry describes the tool in the host's toolbox panel.
type ToolboxEntry struct {
	Icon  string `json:"icon"`
	Title string `json:"title"`
}

// OutlineEntry is one heading in a document outline.
type OutlineEntry struct {
	Text  string `json:"text"`
	Level int    `json:"level"`
	Align string `json:"align"`
}

// Outline is the structural JSON output for a saved document.
type Outline struct {
	Title    string         `json:"title"`
	Headings []OutlineEntry `json:"headings"`
	Counts   map[string]int `json:"counts"` // headings per level, keyed by tag
}

// Tool is the lifecycle contract the hosting editor drives a block tool
// through. The host holds tools behind this interface, never behind a
// concrete type.
type Tool interface {
	// Render returns the tool's live view element.
	Render() Element
	// RenderSettings returns the settings-panel element.
	RenderSettings() Element
	// Save extracts the persisted record from the rendered content.
	Save(content Element) HeaderData
	// Validate reports whether a record is worth persisting.
	Validate(data HeaderData) bool
	// Merge appends another block's record into this one.
	Merge(data HeaderData)
	// OnPaste replaces the tool's state from a pasted element.
	OnPaste(event PasteEvent)
}

// Surface is the rendering surface a tool draws on.
type Surface interface {
	CreateElement(tag string) Element
}

// Element is one live rendered element on a Surface.
type Element interface {
	TagName() string
	SetText(text string)
	Text() string
	SetInnerHTML(html string)
	InnerHTML() string
	SetStyle(name, value string)
	Style(name string) string
	SetAttr(name, value string)
	Attr(name string) string
	AddClass(name string)
	RemoveClass(name string)
	HasClass(name string) bool
	AppendChild(child Element)
	// ReplaceWith swaps this element for repl at its attachment point.
	// No-op when the element is detached.
	ReplaceWith(repl Element)
	// Parent returns nil when the element is not attached to a container.
	Parent() Element
	Children() []Element
}

// Renderer converts a saved document into a final output format.
type Renderer interface {
	Render(doc Document) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".html").
	Extension() string
}

// Fetcher retrieves a saved document from a remote endpoint.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (Document, error)
}
