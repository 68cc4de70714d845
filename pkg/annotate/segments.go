package annotate

import (
	"fmt"

	"github.com/revmark/revmark/pkg/models"
)

// BuildRuns walks the resolved matches in text order and emits the final
// ordered run sequence: plain runs for uncovered stretches, annotated runs
// for matches. Concatenating the run texts reproduces text exactly.
//
// resolved must be the output of Resolve: start-ordered, non-overlapping,
// with offsets inside the text. Anything else is a programming error and
// panics rather than silently corrupting displayed text.
func BuildRuns(text string, resolved []models.Match) []models.Run {
	subject := []rune(text)
	if len(subject) == 0 {
		return nil
	}
	if len(resolved) == 0 {
		return []models.Run{{Text: text}}
	}

	runs := make([]models.Run, 0, 2*len(resolved)+1)
	cursor := 0
	for _, m := range resolved {
		if m.Start < cursor || m.Start >= m.End || m.End > len(subject) {
			panic(fmt.Sprintf(
				"annotate: malformed resolved match [%d,%d) at cursor %d in %d-rune text",
				m.Start, m.End, cursor, len(subject),
			))
		}
		if m.Start > cursor {
			runs = append(runs, models.Run{Text: string(subject[cursor:m.Start])})
		}
		runs = append(runs, models.Run{
			Text:  string(subject[m.Start:m.End]),
			Style: m.Style,
		})
		cursor = m.End
	}
	if cursor < len(subject) {
		runs = append(runs, models.Run{Text: string(subject[cursor:])})
	}

	return runs
}
