package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevels_FullSet(t *testing.T) {
	levels := Levels(nil)
	require.Len(t, levels, 4)
	for i, entry := range levels {
		assert.Equal(t, i+1, entry.ID)
	}
	assert.Equal(t, "h1", levels[0].Tag)
	assert.Equal(t, "h4", levels[3].Tag)
}

func TestLevels_Subset(t *testing.T) {
	levels := Levels([]int{2, 3, 4})
	require.Len(t, levels, 3)
	assert.Equal(t, 2, levels[0].ID)
	assert.Equal(t, 4, levels[2].ID)
}

func TestLevels_SubsetKeepsRegistryOrder(t *testing.T) {
	// Configured order does not matter; display order follows the registry.
	levels := Levels([]int{3, 1})
	require.Len(t, levels, 2)
	assert.Equal(t, 1, levels[0].ID)
	assert.Equal(t, 3, levels[1].ID)
}

func TestLevels_InvalidSubsetFallsBackToFullSet(t *testing.T) {
	assert.Len(t, Levels([]int{7, 99}), 4)
}

func TestDefaultLevel(t *testing.T) {
	// Second entry when all four levels are present.
	assert.Equal(t, 2, DefaultLevel(Levels(nil)).ID)
	// First entry for smaller variants.
	assert.Equal(t, 2, DefaultLevel(Levels([]int{2, 3, 4})).ID)
	assert.Equal(t, 1, DefaultLevel(Levels([]int{1, 2, 3})).ID)
}

func TestLookupLevel(t *testing.T) {
	levels := Levels(nil)

	assert.Equal(t, "h3", LookupLevel(levels, 3).Tag)
	// Absent id falls back to the default entry, not an error.
	assert.Equal(t, 2, LookupLevel(levels, 999).ID)
	assert.Equal(t, 2, LookupLevel(levels, 0).ID)
}

func TestLookupLevelByTag(t *testing.T) {
	levels := Levels(nil)

	entry, ok := LookupLevelByTag(levels, "h4")
	require.True(t, ok)
	assert.Equal(t, 4, entry.ID)

	_, ok = LookupLevelByTag(levels, "div")
	assert.False(t, ok)
}

func TestAlignments(t *testing.T) {
	aligns := Alignments()
	require.Len(t, aligns, 3)
	assert.Equal(t, "left", aligns[0].ID)
	assert.Equal(t, "left", DefaultAlignment().ID)
}

func TestLookupAlign(t *testing.T) {
	assert.Equal(t, "center", LookupAlign("center").ID)
	assert.Equal(t, "left", LookupAlign("justify").ID)
	assert.Equal(t, "left", LookupAlign("").ID)
}

func TestEntriesCarryIcons(t *testing.T) {
	for _, entry := range Levels(nil) {
		assert.NotEmpty(t, entry.Icon)
	}
	for _, entry := range Alignments() {
		assert.NotEmpty(t, entry.Icon)
	}
}
