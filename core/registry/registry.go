// Package registry holds the static level and alignment tables for the
// header tool. Entries are immutable and ordered for settings-panel display;
// lookups fall back to a designated default entry instead of failing.
package registry

// LevelEntry describes one supported heading level.
type LevelEntry struct {
	ID   int    // persisted level id
	Tag  string // element tag the level renders as
	Icon string // settings-button SVG asset
}

// AlignEntry describes one supported text alignment.
type AlignEntry struct {
	ID   string // persisted alignment id, doubles as the CSS keyword
	Icon string // settings-button SVG asset
}

// allLevels is the full supported set, ordered by ascending id.
var allLevels = []LevelEntry{
	{ID: 1, Tag: "h1", Icon: IconH1},
	{ID: 2, Tag: "h2", Icon: IconH2},
	{ID: 3, Tag: "h3", Icon: IconH3},
	{ID: 4, Tag: "h4", Icon: IconH4},
}

// alignments is ordered for settings display; the first entry is the default.
var alignments = []AlignEntry{
	{ID: "left", Icon: IconAlignLeft},
	{ID: "center", Icon: IconAlignCenter},
	{ID: "right", Icon: IconAlignRight},
}

// Levels returns the ordered entries for a configured subset of level ids.
// Ids outside the supported set are dropped. An empty (or entirely invalid)
// subset yields the full set.
func Levels(configured []int) []LevelEntry {
	if len(configured) == 0 {
		return allLevels
	}
	entries := make([]LevelEntry, 0, len(configured))
	for _, entry := range allLevels {
		for _, id := range configured {
			if entry.ID == id {
				entries = append(entries, entry)
				break
			}
		}
	}
	if len(entries) == 0 {
		return allLevels
	}
	return entries
}

// DefaultLevel returns the designated default entry for a level set:
// the second entry when all four levels are present, the first entry for
// smaller variants.
func DefaultLevel(levels []LevelEntry) LevelEntry {
	if len(levels) >= 4 {
		return levels[1]
	}
	return levels[0]
}

// FindLevel returns the entry matching id, and false when no entry matches.
func FindLevel(levels []LevelEntry, id int) (LevelEntry, bool) {
	for _, entry := range levels {
		if entry.ID == id {
			return entry, true
		}
	}
	return LevelEntry{}, false
}

// LookupLevel returns the entry matching id, or the set's default entry
// when no entry matches.
func LookupLevel(levels []LevelEntry, id int) LevelEntry {
	if entry, ok := FindLevel(levels, id); ok {
		return entry
	}
	return DefaultLevel(levels)
}

// LookupLevelByTag returns the entry whose render tag matches (case
// handled by the caller), and false when no entry matches.
func LookupLevelByTag(levels []LevelEntry, tag string) (LevelEntry, bool) {
	for _, entry := range levels {
		if entry.Tag == tag {
			return entry, true
		}
	}
	return LevelEntry{}, false
}

// Alignments returns the alignment entries in display order.
func Alignments() []AlignEntry {
	return alignments
}

// DefaultAlignment returns the first alignment entry.
func DefaultAlignment() AlignEntry {
	return alignments[0]
}

// FindAlign returns the entry matching id, and false when no entry matches.
func FindAlign(id string) (AlignEntry, bool) {
	for _, entry := range alignments {
		if entry.ID == id {
			return entry, true
		}
	}
	return AlignEntry{}, false
}

// LookupAlign returns the entry matching id, or the default entry when no
// entry matches.
func LookupAlign(id string) AlignEntry {
	if entry, ok := FindAlign(id); ok {
		return entry
	}
	return DefaultAlignment()
}
