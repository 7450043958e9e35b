package densum

// Result holds the outcome of extracting content from one HTML document.
type Result struct {
	// Content is the serialized markup of the selected content, one
	// fragment per selected node, separated by blank lines.
	Content string

	// Scores is the composite text density of every node below <body>, in
	// document order. Extractors that do not score nodes leave it nil.
	Scores ScoreSequence

	// Threshold is the score separating content (>= Threshold) from
	// boilerplate.
	Threshold float64

	// Selected holds the indices into Scores of the nodes at or above
	// Threshold.
	Selected []int
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	Extract(html string) (*Result, error)
}

// DefaultKillClasses returns the CSS classes stripped before scoring when
// no other classes are configured.
func DefaultKillClasses() []string {
	return []string{"hidden", "visually-hidden"}
}

// Config configures a density-sum extractor.
type Config struct {
	// KillClasses lists CSS classes whose elements are removed from the
	// document before scoring.
	KillClasses []string `yaml:"kill_classes"`

	// DedupeParents emits each distinct parent fragment once even when
	// several of its children are selected. Fragments are compared by
	// their serialized markup, so repeated identical wrappers collapse
	// too. Off by default, which repeats the parent once per selected
	// child.
	DedupeParents bool `yaml:"dedupe_parents"`
}

// DefaultConfig returns a new Config with the default kill classes.
func DefaultConfig() Config {
	return Config{KillClasses: DefaultKillClasses()}
}

// Clone returns a deep copy of c.
func (c Config) Clone() Config {
	other := c
	if c.KillClasses != nil {
		other.KillClasses = append([]string(nil), c.KillClasses...)
	}
	return other
}
