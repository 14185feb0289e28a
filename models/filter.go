package models

// ProjectFilter is the set of optional listing constraints. A zero
// value imposes no constraint on its field; constraints from distinct
// fields combine by AND.
type ProjectFilter struct {
	// Category and Difficulty are exact-match against stored values.
	Category   string
	Difficulty string
	// Title is a case-insensitive substring match on the title alone.
	Title string
	// Search is a case-insensitive substring match on title OR
	// description, OR an exact token match inside the tech stack.
	Search string
}

// IsZero reports whether the filter imposes no constraints.
func (f ProjectFilter) IsZero() bool {
	return f == ProjectFilter{}
}

// Suggestions is the three-facet payload returned by the suggestion
// endpoint. Each facet is independent and bounded.
type Suggestions struct {
	Titles     []string `json:"titles"`
	TechStacks []string `json:"techStacks"`
	Categories []string `json:"categories"`
}

// EmptySuggestions returns a payload with empty (non-nil) facets, used
// when the query is too short to run.
func EmptySuggestions() Suggestions {
	return Suggestions{
		Titles:     []string{},
		TechStacks: []string{},
		Categories: []string{},
	}
}
