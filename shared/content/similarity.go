package content

import "strings"

// SimilarityScorer rates how alike two texts are, from 0 to 1.
type SimilarityScorer interface {
	Similarity(a, b string) float64
}

// JaccardScorer compares the sets of lower-cased whitespace tokens.
type JaccardScorer struct{}

// Similarity is the Jaccard index of the two token sets, 0 when either is empty.
func (JaccardScorer) Similarity(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	shared := 0
	for tok := range setA {
		if setB[tok] {
			shared++
		}
	}
	union := len(setA) + len(setB) - shared

	return float64(shared) / float64(union)
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.Fields(strings.ToLower(s)) {
		set[tok] = true
	}
	return set
}
