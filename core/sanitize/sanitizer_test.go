package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/blockhead/core"
)

var inlineTags = []string{"b", "i", "a", "code", "mark"}

func TestFragment_KeepsAllowedTags(t *testing.T) {
	s := New()

	out, err := s.Fragment(`Hello <b>World</b> and <i>friends</i>`, inlineTags)
	require.NoError(t, err)
	assert.Equal(t, `Hello <b>World</b> and <i>friends</i>`, out)
}

func TestFragment_UnwrapsDisallowedTags(t *testing.T) {
	s := New()

	out, err := s.Fragment(`<span>Hello</span> <div>World</div>`, inlineTags)
	require.NoError(t, err)
	assert.Equal(t, `Hello World`, out)
}

func TestFragment_RemovesNoiseWithContent(t *testing.T) {
	s := New()

	out, err := s.Fragment(`Title<script>alert(1)</script>`, inlineTags)
	require.NoError(t, err)
	assert.Equal(t, `Title`, out)

	out, err = s.Fragment(`<style>h1{color:red}</style>Keep`, inlineTags)
	require.NoError(t, err)
	assert.Equal(t, `Keep`, out)
}

func TestFragment_NestedDisallowed(t *testing.T) {
	s := New()

	out, err := s.Fragment(`<div><b>bold <span>inner</span></b></div>`, inlineTags)
	require.NoError(t, err)
	assert.Equal(t, `<b>bold inner</b>`, out)
}

func TestFragment_StripsAttributes(t *testing.T) {
	s := New()

	out, err := s.Fragment(`<b onclick="evil()">x</b>`, inlineTags)
	require.NoError(t, err)
	assert.Equal(t, `<b>x</b>`, out)

	// href survives on anchors, nothing else does.
	out, err = s.Fragment(`<a href="/docs" target="_blank">docs</a>`, inlineTags)
	require.NoError(t, err)
	assert.Equal(t, `<a href="/docs">docs</a>`, out)
}

func TestFragment_Empty(t *testing.T) {
	s := New()

	out, err := s.Fragment("", inlineTags)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestRecord_PassthroughFieldsUntouched(t *testing.T) {
	s := New()
	rules := map[string]core.SanitizeRule{
		"text":  {Tags: inlineTags},
		"level": {Passthrough: true},
		"align": {Passthrough: true},
	}

	d, err := s.Record(core.HeaderData{
		Text:  `Hi <span>there</span>`,
		Level: 3,
		Align: "center",
	}, rules)
	require.NoError(t, err)

	assert.Equal(t, "Hi there", d.Text)
	assert.Equal(t, 3, d.Level)
	assert.Equal(t, "center", d.Align)
}

func TestRecord_NoTextRuleIsPassthrough(t *testing.T) {
	s := New()

	d, err := s.Record(core.HeaderData{Text: `<span>x</span>`}, nil)
	require.NoError(t, err)
	assert.Equal(t, `<span>x</span>`, d.Text)
}
