// Package models defines the content structures consumed by the document
// and presentation builders.
package models

// Deck is the content of one presentation.
type Deck struct {
	// Name identifies the deck in logs and errors.
	Name string `yaml:"name"`
	// Title is written to the document properties.
	Title string `yaml:"title"`
	// Design is a one-line description of the visual design, echoed in the
	// confirmation output.
	Design string `yaml:"design"`
	// Notes are extra confirmation lines printed after the build.
	Notes []string `yaml:"notes,omitempty"`
	// Slides are rendered in order, one slide each.
	Slides []Slide `yaml:"slides"`
}

// SlideKind selects the builder used for a slide.
type SlideKind string

const (
	// Survey deck kinds.
	KindTitle           SlideKind = "title"
	KindContent         SlideKind = "content"
	KindFindings        SlideKind = "findings"
	KindRecommendations SlideKind = "recommendations"
	KindRoadmap         SlideKind = "roadmap"

	// Investor deck kinds.
	KindModernTitle   SlideKind = "modern_title"
	KindSection       SlideKind = "section"
	KindModernContent SlideKind = "modern_content"
	KindBarChart      SlideKind = "bar_chart"
	KindInsightGrid   SlideKind = "insight_grid"
	KindModernRoadmap SlideKind = "modern_roadmap"
)

// Slide is the content of one slide. Which fields are read depends on Kind.
type Slide struct {
	// Kind selects the slide builder.
	Kind SlideKind `yaml:"kind"`
	// Title is the slide heading.
	Title string `yaml:"title"`
	// Subtitle is shown under the title where the layout has one.
	Subtitle string `yaml:"subtitle,omitempty"`
	// Tagline is a third title line (modern title slide only).
	Tagline string `yaml:"tagline,omitempty"`
	// Number is the section number of a section divider.
	Number int `yaml:"number,omitempty"`
	// Lines are bullet lines of a content slide.
	Lines []string `yaml:"lines,omitempty"`
	// Stats are the stat boxes of a content slide.
	Stats []Stat `yaml:"stats,omitempty"`
	// Findings are the numbered findings of a findings slide.
	Findings []string `yaml:"findings,omitempty"`
	// Recommendations are the boxes of a recommendations slide.
	Recommendations []Recommendation `yaml:"recommendations,omitempty"`
	// Phases are the stages of a roadmap slide.
	Phases []Phase `yaml:"phases,omitempty"`
	// Blocks are the stacked content blocks of a modern content slide.
	Blocks []Block `yaml:"blocks,omitempty"`
	// Bars are the series of a bar chart slide.
	Bars []Bar `yaml:"bars,omitempty"`
	// Insights are the cells of an insight grid.
	Insights []Insight `yaml:"insights,omitempty"`
}

// Stat is a headline number with a caption.
type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
	// Color names a palette color for the accent line (investor deck).
	Color string `yaml:"color,omitempty"`
}

// Recommendation is a titled recommendation box.
type Recommendation struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Phase is one stage of a roadmap.
type Phase struct {
	// Name may contain a newline separating the phase label from its date.
	Name  string   `yaml:"name"`
	Items []string `yaml:"items"`
}

// Bar is one labelled value of a bar chart, in percent.
type Bar struct {
	Label string  `yaml:"label"`
	Value float64 `yaml:"value"`
}

// Insight is one cell of an insight grid.
type Insight struct {
	Icon        string `yaml:"icon"`
	Heading     string `yaml:"heading"`
	Description string `yaml:"description"`
}
