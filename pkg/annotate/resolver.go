package annotate

import (
	"sort"

	"github.com/revmark/revmark/pkg/models"
)

// Resolve reduces a raw match list to a non-overlapping subset using the
// canonical tie-break policy: matches are ordered by start ascending, then
// longer span first, then discovery order, and accepted greedily when they
// do not overlap an already-accepted match. Touching endpoints do not
// overlap.
//
// The returned matches are sorted by start and pairwise non-overlapping.
// Resolve is idempotent: running it on its own output returns the same set.
func Resolve(matches []models.Match) []models.Match {
	if len(matches) == 0 {
		return nil
	}

	ordered := make([]models.Match, len(matches))
	copy(ordered, matches)
	// Stable sort keeps discovery order as the final tie-break.
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Start != ordered[j].Start {
			return ordered[i].Start < ordered[j].Start
		}
		return ordered[i].Span() > ordered[j].Span()
	})

	resolved := make([]models.Match, 0, len(ordered))
	for _, m := range ordered {
		// Accepted matches are non-overlapping and start-ordered, so their
		// ends are increasing: checking the last accepted end suffices.
		if len(resolved) > 0 && m.Start < resolved[len(resolved)-1].End {
			continue
		}
		resolved = append(resolved, m)
	}

	return resolved
}
