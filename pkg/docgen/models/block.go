package models

// BlockType tags the variant held by a Block.
type BlockType string

const (
	BlockStatRow   BlockType = "stat_row"
	BlockText      BlockType = "text"
	BlockHighlight BlockType = "highlight"
	BlockChart     BlockType = "chart"
)

// Block is one visual unit of a modern content slide. It is a tagged
// variant: Type decides which of the remaining fields are meaningful.
type Block struct {
	// Type is the variant tag.
	Type BlockType `yaml:"type"`
	// Stats holds the stat_row entries.
	Stats []Stat `yaml:"stats,omitempty"`
	// Content holds the text lines.
	Content []string `yaml:"content,omitempty"`
	// Text is the highlight banner text.
	Text string `yaml:"text,omitempty"`
	// Color names the highlight color; empty means blue.
	Color string `yaml:"color,omitempty"`
	// Data holds the chart series.
	Data []Bar `yaml:"data,omitempty"`
	// ChartType describes the chart; only horizontal bars are drawn.
	ChartType string `yaml:"chart_type,omitempty"`
}
