// Package fuzzy provides edit-distance matching for "did you mean"
// suggestions in resolution diagnostics.
package fuzzy

import "strings"

const minInputLength = 2

// FindBest returns the candidate closest to input within maxDistance edits,
// or "" when no candidate qualifies. Matching is case-insensitive; exact
// matches are skipped (they are not typos). Ties prefer the candidate whose
// length is closest to the input's.
func FindBest(input string, candidates []string, maxDistance int) string {
	if len(input) < minInputLength {
		return ""
	}
	lowered := strings.ToLower(input)

	best := ""
	bestDistance := maxDistance + 1
	bestLenDiff := 0
	for _, candidate := range candidates {
		lc := strings.ToLower(candidate)
		if lc == lowered {
			continue
		}
		d := Distance(lowered, lc)
		if d > maxDistance {
			continue
		}
		lenDiff := len(candidate) - len(input)
		if lenDiff < 0 {
			lenDiff = -lenDiff
		}
		if d < bestDistance || (d == bestDistance && lenDiff < bestLenDiff) {
			best = candidate
			bestDistance = d
			bestLenDiff = lenDiff
		}
	}
	return best
}

// Distance computes the Levenshtein edit distance between a and b using a
// single-row dynamic program.
func Distance(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	row := make([]int, len(b)+1)
	for j := range row {
		row[j] = j
	}
	for i := 1; i <= len(a); i++ {
		prev := row[0]
		row[0] = i
		for j := 1; j <= len(b); j++ {
			insert := row[j-1] + 1
			remove := row[j] + 1
			replace := prev
			if a[i-1] != b[j-1] {
				replace++
			}
			prev = row[j]
			row[j] = min3(insert, remove, replace)
		}
	}
	return row[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
