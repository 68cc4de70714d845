// Package annotate locates literal phrases in free-form review text and
// renders the text as an ordered sequence of plain and annotated runs.
//
// The pipeline is FindMatches -> Resolve -> BuildRuns. Each step is a pure
// function over value types: no shared state, no I/O, identical inputs give
// identical outputs, and calls are safe from any number of goroutines.
package annotate

import (
	"github.com/revmark/revmark/pkg/models"
)

// Annotate is the single entry point external callers should use. It finds
// every occurrence of every phrase in the given pattern sets, discards
// overlapping matches by the canonical policy (earliest start, then longest,
// then first discovered) and returns the text as an ordered run sequence.
//
// Degenerate inputs degrade to no annotation rather than erroring: empty
// text returns an empty slice, and with no usable patterns the whole text
// comes back as a single plain run.
func Annotate(text string, sets []models.PatternSet) []models.Run {
	return BuildRuns(text, Resolve(FindMatches(text, sets)))
}
