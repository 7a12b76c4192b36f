package models

// Memo is the content of the memorandum document.
type Memo struct {
	// Name identifies the memo in logs and errors.
	Name string `yaml:"name"`
	// Title is the centered banner at the top of the first page.
	Title string `yaml:"title"`
	// Header holds the TO/FROM/DATE/RE lines.
	Header []HeaderField `yaml:"header"`
	// Sections are rendered in order.
	Sections []MemoSection `yaml:"sections"`
	// Signature closes the memo.
	Signature Signature `yaml:"signature"`
}

// HeaderField is one label/value line of the memo header.
type HeaderField struct {
	Label string `yaml:"label"`
	Value string `yaml:"value,omitempty"`
	// Date replaces Value with the build date.
	Date bool `yaml:"date,omitempty"`
}

// MemoSection is a top-level section with a colored heading.
type MemoSection struct {
	Heading string      `yaml:"heading"`
	Blocks  []MemoBlock `yaml:"blocks"`
}

// MemoBlockType tags the variant held by a MemoBlock.
type MemoBlockType string

const (
	MemoParagraph  MemoBlockType = "paragraph"
	MemoSubheading MemoBlockType = "subheading"
	MemoNumbered   MemoBlockType = "numbered"
	MemoBullets    MemoBlockType = "bullets"
)

// MemoBlock is a paragraph, subheading, or list inside a section.
type MemoBlock struct {
	Type  MemoBlockType `yaml:"type"`
	Text  string        `yaml:"text,omitempty"`
	Items []MemoItem    `yaml:"items,omitempty"`
	// SpaceAfter is extra spacing after a paragraph, in points.
	SpaceAfter float64 `yaml:"space_after,omitempty"`
}

// MemoItem is one list entry: an optional bold lead followed by body text.
type MemoItem struct {
	Lead string `yaml:"lead,omitempty"`
	Body string `yaml:"body"`
}

// Signature is the closing block of the memo.
type Signature struct {
	Closing string `yaml:"closing"`
	Name    string `yaml:"name"`
	Title   string `yaml:"title"`
}
