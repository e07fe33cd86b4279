// Package textutil holds the small text helpers shared by the analyzers.
package textutil

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/aref-vc/youtube-content-analyzer/internal/models"
)

var wordRe = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Words returns the runs of letters, digits and underscores in s.
func Words(s string) []string {
	return wordRe.FindAllString(s, -1)
}

// IsUpper reports whether s has at least one cased rune and no lower-case or
// title-case runes.
func IsUpper(s string) bool {
	cased := false
	for _, r := range s {
		switch {
		case unicode.IsLower(r), unicode.IsTitle(r):
			return false
		case unicode.IsUpper(r):
			cased = true
		}
	}
	return cased
}

// IsTitle reports whether s is title-cased: every run of cased runes starts
// with an upper-case rune followed only by lower-case ones, and at least one
// cased rune exists.
func IsTitle(s string) bool {
	cased := false
	prevCased := false
	for _, r := range s {
		switch {
		case unicode.IsUpper(r), unicode.IsTitle(r):
			if prevCased {
				return false
			}
			prevCased = true
			cased = true
		case unicode.IsLower(r):
			if !prevCased {
				return false
			}
			prevCased = true
			cased = true
		default:
			prevCased = false
		}
	}
	return cased
}

// Truncate returns the first n runes of s.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// FirstWords joins the first n whitespace-separated words of s.
func FirstWords(s string, n int) string {
	words := strings.Fields(s)
	if len(words) > n {
		words = words[:n]
	}
	return strings.Join(words, " ")
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Counter tallies keys and remembers the order they were first seen, so
// ranking is deterministic when counts tie.
type Counter struct {
	counts map[string]int
	order  []string
}

func NewCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

func (c *Counter) Add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

func (c *Counter) Len() int {
	return len(c.order)
}

// MostCommon returns up to n entries ordered by descending count, ties in
// first-seen order. n <= 0 returns every entry.
func (c *Counter) MostCommon(n int) []models.WordCount {
	result := make([]models.WordCount, 0, len(c.order))
	for _, key := range c.order {
		result = append(result, models.WordCount{Word: key, Count: c.counts[key]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	if n > 0 && len(result) > n {
		result = result[:n]
	}
	return result
}
