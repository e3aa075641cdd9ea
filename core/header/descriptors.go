// Package header — static descriptors the host reads without an instance
// (toolbox entry, conversion contract) or per instance (sanitize rules,
// claimed paste tags).
package header

import (
	"strings"

	"github.com/gaurav-prasanna/blockhead/core"
	"github.com/gaurav-prasanna/blockhead/core/registry"
)

// Toolbox describes the tool in the host's toolbox panel.
func Toolbox() core.ToolboxEntry {
	return core.ToolboxEntry{
		Icon:  registry.IconToolbox,
		Title: "Header",
	}
}

// Conversion declares the interop contract with other block kinds: export
// projects the text field only, import populates the text field only.
func Conversion() core.ConversionConfig {
	return core.ConversionConfig{
		Export: "text",
		Import: "text",
	}
}

// Sanitize returns the per-field cleaning rules for saved records. Level
// and alignment are structured data, not freeform markup, and pass through
// unsanitized; text keeps basic inline markup only.
func (h *Header) Sanitize() map[string]core.SanitizeRule {
	return map[string]core.SanitizeRule{
		"text":  {Tags: []string{"b", "i", "a", "code", "mark"}},
		"level": {Passthrough: true},
		"align": {Passthrough: true},
	}
}

// PasteTags returns the uppercase tag names this tool claims pasted
// content for, derived from the configured level set.
func (h *Header) PasteTags() []string {
	levels := h.norm.Levels()
	tags := make([]string, 0, len(levels))
	for _, entry := range levels {
		tags = append(tags, strings.ToUpper(entry.Tag))
	}
	return tags
}
