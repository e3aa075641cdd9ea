package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gaurav-prasanna/blockhead/core"
)

func TestNormalize_EmptyInput(t *testing.T) {
	n := New(core.ToolConfig{})

	for _, raw := range []map[string]any{nil, {}} {
		d := n.Normalize(raw)
		assert.Equal(t, "", d.Text)
		assert.Equal(t, 2, d.Level, "default level is the second entry of the full set")
		assert.Equal(t, "left", d.Align, "default alignment is the first registry entry")
	}
}

func TestNormalize_LevelFallback(t *testing.T) {
	n := New(core.ToolConfig{})

	d := n.Normalize(map[string]any{"level": 999})
	assert.Equal(t, 2, d.Level)

	d = n.Normalize(map[string]any{"level": -1})
	assert.Equal(t, 2, d.Level)
}

func TestNormalize_LevelShapes(t *testing.T) {
	n := New(core.ToolConfig{})

	tests := []struct {
		name  string
		level any
		want  int
	}{
		{"int", 3, 3},
		{"json float", float64(4), 4},
		{"numeric string", "3", 3},
		{"padded string", " 1 ", 1},
		{"fractional float", 2.5, 2},
		{"garbage string", "first", 2},
		{"bool", true, 2},
		{"nil", nil, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := n.Normalize(map[string]any{"level": tt.level})
			assert.Equal(t, tt.want, d.Level)
		})
	}
}

func TestNormalize_AlignFallback(t *testing.T) {
	n := New(core.ToolConfig{})

	assert.Equal(t, "center", n.Normalize(map[string]any{"align": "center"}).Align)
	assert.Equal(t, "left", n.Normalize(map[string]any{"align": "diagonal"}).Align)
	assert.Equal(t, "left", n.Normalize(map[string]any{"align": 5}).Align)
}

func TestNormalize_TextCoercion(t *testing.T) {
	n := New(core.ToolConfig{})

	assert.Equal(t, "Hi", n.Normalize(map[string]any{"text": "Hi"}).Text)
	// Non-string text degrades to empty, never to a formatted value.
	assert.Equal(t, "", n.Normalize(map[string]any{"text": 42}).Text)
}

func TestNormalize_Idempotent(t *testing.T) {
	n := New(core.ToolConfig{})

	inputs := []map[string]any{
		nil,
		{},
		{"text": "Hi", "level": 3, "align": "center"},
		{"level": 999, "align": "bogus"},
		{"text": 7, "level": "2"},
	}
	for _, raw := range inputs {
		once := n.Normalize(raw)
		assert.Equal(t, once, n.Record(once))
	}
}

func TestRecord_ResolvesAgainstConfiguredSet(t *testing.T) {
	n := New(core.ToolConfig{Levels: []int{2, 3, 4}})

	// Level 1 exists in the registry but not in this variant.
	d := n.Record(core.HeaderData{Text: "x", Level: 1, Align: "right"})
	assert.Equal(t, 2, d.Level, "three-level variant defaults to its first entry")
	assert.Equal(t, "right", d.Align)
}

func TestNew_ConfiguredDefaults(t *testing.T) {
	n := New(core.ToolConfig{DefaultLevel: 3, DefaultAlignment: "center"})

	assert.Equal(t, 3, n.DefaultLevel().ID)
	assert.Equal(t, "center", n.DefaultAlignment().ID)

	d := n.Normalize(map[string]any{})
	assert.Equal(t, 3, d.Level)
	assert.Equal(t, "center", d.Align)
}

func TestNew_InvalidConfiguredDefaultsFallBack(t *testing.T) {
	n := New(core.ToolConfig{DefaultLevel: 42, DefaultAlignment: "sideways"})

	assert.Equal(t, 2, n.DefaultLevel().ID)
	assert.Equal(t, "left", n.DefaultAlignment().ID)
}
