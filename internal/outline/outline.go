package outline

// HeadingRecord is one heading paragraph as supplied by a document
// extractor. Position is the paragraph's 0-based offset in the document
// body; it is stable only within one extraction pass.
type HeadingRecord struct {
	Position  int         `json:"position"`
	Text      string      `json:"text"`
	Level     int         `json:"level"` // 1-9
	StyleName string      `json:"style_name,omitempty"`
	Format    *TextFormat `json:"format,omitempty"`
}

// TextFormat carries extractor-reported formatting. It is passed through
// to nodes verbatim and never interpreted by the builder.
type TextFormat struct {
	FontName  string  `json:"font_name,omitempty"`
	FontSize  float64 `json:"font_size,omitempty"`
	Bold      bool    `json:"bold,omitempty"`
	Italic    bool    `json:"italic,omitempty"`
	Color     string  `json:"color,omitempty"`
	Alignment string  `json:"alignment,omitempty"`
}

// Node is one heading in a built outline. Children are ordered by document
// position and each child's level is strictly greater than its parent's.
type Node struct {
	ID        string      `json:"id"`
	Text      string      `json:"text"`
	Level     int         `json:"level"`
	StyleName string      `json:"style_name,omitempty"`
	Position  int         `json:"position"`
	Format    *TextFormat `json:"format,omitempty"`
	Children  []*Node     `json:"children,omitempty"`
}

// Outline is the forest of heading nodes plus aggregate statistics for one
// extraction. It is immutable once built; exporters and the locator only
// read it.
type Outline struct {
	Roots         []*Node     `json:"roots"`
	TotalHeadings int         `json:"total_headings"`
	MaxLevelSeen  int         `json:"max_level_seen"`
	LevelCounts   map[int]int `json:"level_counts"`
}

// Options controls filtering and node construction.
type Options struct {
	// IncludeFormat copies extractor formatting onto nodes.
	IncludeFormat bool
	// MaxDepth keeps only headings with level <= MaxDepth. 0 means
	// unlimited.
	MaxDepth int
	// SpecificLevels, when non-empty, is an explicit allow-set of levels.
	// It composes with MaxDepth as a logical AND.
	SpecificLevels []int
}
