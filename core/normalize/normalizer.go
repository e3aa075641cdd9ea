// Package normalize implements the state normalizer for header records.
// It coerces arbitrary, possibly malformed input into a canonical record
// whose level and alignment always resolve to registry entries. No input
// is ever rejected; malformed values degrade silently to defaults.
package normalize

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/gaurav-prasanna/blockhead/core"
	"github.com/gaurav-prasanna/blockhead/core/registry"
)

// Normalizer resolves raw records against a configured level set and
// default level/alignment.
type Normalizer struct {
	levels       []registry.LevelEntry
	defaultLevel registry.LevelEntry
	defaultAlign registry.AlignEntry
}

// New builds a Normalizer from the tool configuration. An unknown configured
// default falls back to the registry's own default for the level set.
func New(cfg core.ToolConfig) *Normalizer {
	levels := registry.Levels(cfg.Levels)

	defLevel := registry.DefaultLevel(levels)
	if cfg.DefaultLevel != 0 {
		defLevel = registry.LookupLevel(levels, cfg.DefaultLevel)
	}

	defAlign := registry.DefaultAlignment()
	if cfg.DefaultAlignment != "" {
		defAlign = registry.LookupAlign(cfg.DefaultAlignment)
	}

	return &Normalizer{
		levels:       levels,
		defaultLevel: defLevel,
		defaultAlign: defAlign,
	}
}

// Normalize coerces an arbitrary raw record (decoded JSON shape) into a
// canonical HeaderData.
func (n *Normalizer) Normalize(raw map[string]any) core.HeaderData {
	var d core.HeaderData
	if raw != nil {
		if v, ok := raw["text"]; ok {
			d.Text = coerceText(v)
		}
		if v, ok := raw["level"]; ok {
			if level, ok := parseLevel(v); ok {
				d.Level = level
			}
		}
		if v, ok := raw["align"]; ok {
			if s, ok := v.(string); ok {
				d.Align = s
			}
		}
	}
	return n.Record(d)
}

// Record resolves a typed record: a level outside the configured set takes
// the default level, an unknown alignment the default alignment. Idempotent
// by construction, since resolved values are themselves registry values.
func (n *Normalizer) Record(d core.HeaderData) core.HeaderData {
	if _, ok := registry.FindLevel(n.levels, d.Level); !ok {
		d.Level = n.defaultLevel.ID
	}
	if _, ok := registry.FindAlign(d.Align); !ok {
		d.Align = n.defaultAlign.ID
	}
	return d
}

// Levels returns the configured level set in display order.
func (n *Normalizer) Levels() []registry.LevelEntry {
	return n.levels
}

// DefaultLevel returns the resolved default level entry.
func (n *Normalizer) DefaultLevel() registry.LevelEntry {
	return n.defaultLevel
}

// DefaultAlignment returns the resolved default alignment entry.
func (n *Normalizer) DefaultAlignment() registry.AlignEntry {
	return n.defaultAlign
}

// parseLevel accepts the numeric shapes a level survives JSON decoding as,
// plus numeric strings. Fractional floats are rejected.
func parseLevel(v any) (int, bool) {
	switch level := v.(type) {
	case int:
		return level, true
	case int64:
		return int(level), true
	case float64:
		if level == float64(int(level)) {
			return int(level), true
		}
		return 0, false
	case json.Number:
		i, err := level.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(level))
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// coerceText keeps strings and treats every other shape as empty.
func coerceText(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
