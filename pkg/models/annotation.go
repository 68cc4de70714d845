package models

// PatternSet is a named group of literal phrases sharing one display style.
// Phrases come from the upstream extraction service or are supplied directly
// by API callers. A PatternSet is immutable for the duration of one
// annotation call.
type PatternSet struct {
	ID            string   `json:"id"             validate:"required"`
	Phrases       []string `json:"phrases"        validate:"required"`
	Style         string   `json:"style"`
	CaseSensitive bool     `json:"case_sensitive"`
}

// Match is one located occurrence of one phrase in the subject text.
// Start and End are rune offsets into the subject text, half-open.
// Rune offsets are used rather than byte offsets so that case folding and
// slicing can never disagree about where a character begins.
type Match struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Style string `json:"style"`
	SetID string `json:"set_id"`
}

// Span returns the match length in runes.
func (m Match) Span() int {
	return m.End - m.Start
}

// Run is a maximal contiguous slice of the subject text, either plain
// (Style == "") or annotated with the style of the pattern set that matched
// it. Concatenating the texts of a Run sequence reproduces the subject text
// exactly.
type Run struct {
	Text  string `json:"text"`
	Style string `json:"style,omitempty"`
}

// Plain reports whether the run carries no annotation.
func (r Run) Plain() bool {
	return r.Style == ""
}
