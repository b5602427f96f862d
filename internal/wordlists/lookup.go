package wordlists

import (
	"github.com/agnivade/levenshtein"
	"golang.org/x/text/unicode/norm"
)

// Normalize applies NFD decomposition and strips combining marks, so
// lookups tolerate diacritic variants (e.g. "ete" matching "été").
// Grounded on mrz1836-sigil's wallet mnemonic normalization,
// swapping its approach for golang.org/x/text/unicode/norm directly.
func Normalize(word string) string {
	decomposed := norm.NFD.String(word)
	out := make([]rune, 0, len(decomposed))
	for _, r := range decomposed {
		if isCombiningMark(r) {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}

// isCombiningMark reports whether r falls in the Unicode combining
// diacritical marks block produced by NFD decomposition.
func isCombiningMark(r rune) bool {
	return r >= 0x0300 && r <= 0x036F
}

// Suggest returns the closest word in wl to the given miss, by edit
// distance, for use in a WordlistError. Returns "" if wl is empty.
func Suggest(wl *WordList, miss string) string {
	normalizedMiss := Normalize(miss)

	best := ""
	bestDistance := -1
	for _, word := range wl.words {
		d := levenshtein.ComputeDistance(normalizedMiss, Normalize(word))
		if bestDistance == -1 || d < bestDistance {
			bestDistance = d
			best = word
		}
	}
	return best
}

// FindNormalized looks up word in wl tolerating diacritic differences:
// an exact match in the raw index first, then a scan comparing the
// normalized forms.
func FindNormalized(wl *WordList, word string) (int, bool) {
	if idx, ok := wl.index[word]; ok {
		return idx, true
	}
	target := Normalize(word)
	for idx, candidate := range wl.words {
		if Normalize(candidate) == target {
			return idx, true
		}
	}
	return 0, false
}
