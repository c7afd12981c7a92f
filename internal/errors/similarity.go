package errors

import (
	"fmt"
	"strings"
)

// editDistance counts the insertions, deletions, substitutions and adjacent
// transpositions needed to turn a into b (optimal string alignment).
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	d := make([][]int, len(ra)+1)
	for i := range d {
		d[i] = make([]int, len(rb)+1)
		d[i][0] = i
	}
	for j := range d[0] {
		d[0][j] = j
	}
	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			d[i][j] = min(d[i-1][j]+1, d[i][j-1]+1, d[i-1][j-1]+cost)
			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				d[i][j] = min(d[i][j], d[i-2][j-2]+1)
			}
		}
	}
	return d[len(ra)][len(rb)]
}

// Similarity returns a case-insensitive score in [0, 1]; 1 means equal.
func Similarity(a, b string) float64 {
	a, b = strings.ToLower(a), strings.ToLower(b)
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 1
	}
	return 1 - float64(editDistance(a, b))/float64(longest)
}

// Closest returns the candidate most similar to target, or "" when none
// reaches threshold. Ties keep the earlier candidate.
func Closest(target string, candidates []string, threshold float64) string {
	best, bestScore := "", 0.0
	for _, c := range candidates {
		if s := Similarity(target, c); s > bestScore {
			best, bestScore = c, s
		}
	}
	if bestScore < threshold {
		return ""
	}
	return best
}

// DidYouMean formats a suggestion for target, or returns "" when nothing
// in candidates is close enough.
func DidYouMean(target string, candidates []string) string {
	if c := Closest(target, candidates, 0.5); c != "" {
		return fmt.Sprintf("did you mean %q?", c)
	}
	return ""
}
