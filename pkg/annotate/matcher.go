package annotate

import (
	"strings"
	"unicode"

	"github.com/revmark/revmark/pkg/models"
)

// FindMatches scans text for every occurrence of every phrase in every
// pattern set and returns the raw, possibly overlapping match list in
// discovery order (set order, then phrase order, then position).
//
// Matching is literal. For case-insensitive sets the comparison uses
// per-rune lowercased copies of the text and phrase, but offsets are always
// recorded against the original text so downstream slicing preserves the
// original casing. Per-rune folding keeps the lowercased copy the same
// length as the original, so offsets in the folded text are valid in the
// original.
//
// Phrases that are blank after trimming are skipped; they would otherwise
// match everywhere.
func FindMatches(text string, sets []models.PatternSet) []models.Match {
	if text == "" || len(sets) == 0 {
		return nil
	}

	subject := []rune(text)
	folded := lowerRunes(subject)

	var matches []models.Match
	for i := range sets {
		set := &sets[i]
		haystack := subject
		if !set.CaseSensitive {
			haystack = folded
		}
		for _, phrase := range set.Phrases {
			if strings.TrimSpace(phrase) == "" {
				continue
			}
			needle := []rune(phrase)
			if !set.CaseSensitive {
				needle = lowerRunes(needle)
			}
			// Resume at found+1, not found+len(needle), so overlapping
			// self-occurrences are found too.
			from := 0
			for {
				idx := indexRunes(haystack, needle, from)
				if idx < 0 {
					break
				}
				matches = append(matches, models.Match{
					Start: idx,
					End:   idx + len(needle),
					Style: set.Style,
					SetID: set.ID,
				})
				from = idx + 1
			}
		}
	}

	return matches
}

// indexRunes returns the first index >= from at which needle occurs in
// haystack, or -1. Naive scan; adequate for the phrase counts produced by
// extraction. Replace with an Aho-Corasick automaton if set sizes grow.
func indexRunes(haystack, needle []rune, from int) int {
	if from < 0 {
		from = 0
	}
outer:
	for i := from; i+len(needle) <= len(haystack); i++ {
		for j := range needle {
			if haystack[i+j] != needle[j] {
				continue outer
			}
		}
		return i
	}
	return -1
}

// lowerRunes lowercases rune by rune, returning a copy of the same length.
// strings.ToLower is not usable here: its special mappings can change the
// encoded length of the string and desynchronise offsets.
func lowerRunes(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[i] = unicode.ToLower(r)
	}
	return out
}
