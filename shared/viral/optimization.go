package viral

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/aref-vc/youtube-content-analyzer/internal/models"
	"github.com/aref-vc/youtube-content-analyzer/internal/textutil"
)

var (
	optimalWords = [2]int{8, 12}
	optimalChars = [2]int{50, 60}
)

const (
	targetWords      = 10
	targetChars      = 55
	searchCutoff     = 60
	truncationWarnAt = 70
	listNumberMax    = 10
)

// AnalyzeTitlePerformance scores how well a title's length, capitalization,
// numbers and punctuation fit common click-through patterns.
func (e *Engine) AnalyzeTitlePerformance(title string, viewCount int64) models.TitleOptimization {
	words := strings.Fields(title)
	wordCount := len(words)
	charCount := utf8.RuneCountInString(title)

	length := models.LengthAnalysis{
		WordCount:        wordCount,
		CharCount:        charCount,
		WordScore:        rangeScore(wordCount, optimalWords, targetWords, 10),
		CharScore:        rangeScore(charCount, optimalChars, targetChars, 2),
		OptimalWordRange: optimalWords,
		OptimalCharRange: optimalChars,
	}
	caps := capitalization(title, words)
	numbers := numberPsychology(title)
	punct := punctuation(title)

	score := (length.WordScore + length.CharScore) / 2
	if numbers.UsesOddNumbers {
		score += 5
	}
	if numbers.NumberPlacement == "beginning" {
		score += 5
	}
	if punct.HasQuestionMark {
		score += 3
	}
	score = math.Min(100, score)

	return models.TitleOptimization{
		LengthAnalysis:      length,
		Capitalization:      caps,
		NumberPsychology:    numbers,
		PunctuationImpact:   punct,
		OptimizationScore:   textutil.Round2(score),
		Recommendations:     optimizationRecommendations(wordCount, charCount, caps, numbers),
		FullTitle:           title,
		ViewCount:           viewCount,
		PerformanceInsights: e.performanceInsights(title, charCount, score, numbers, punct),
	}
}

// rangeScore is 100 inside the optimal range and falls off linearly with the
// distance from target outside it.
func rangeScore(n int, optimal [2]int, target int, penalty int) float64 {
	if n >= optimal[0] && n <= optimal[1] {
		return 100
	}
	diff := n - target
	if diff < 0 {
		diff = -diff
	}
	return float64(max(0, 100-diff*penalty))
}

// capitalization flags shouting. AllCaps needs at least one word longer than
// two runes, and every such word upper-case.
func capitalization(title string, words []string) models.CapitalizationPattern {
	long, longUpper := 0, 0
	anyUpper, allUpper := false, len(words) > 0
	for _, w := range words {
		upper := textutil.IsUpper(w)
		if utf8.RuneCountInString(w) > 2 {
			long++
			if upper {
				longUpper++
			}
		}
		anyUpper = anyUpper || upper
		allUpper = allUpper && upper
	}

	return models.CapitalizationPattern{
		AllCaps:       long > 0 && long == longUpper,
		TitleCase:     textutil.IsTitle(title),
		FirstWordCaps: len(words) > 0 && textutil.IsUpper(words[0]),
		MixedCaps:     anyUpper && !allUpper,
	}
}

func numberPsychology(title string) models.NumberPsychology {
	numbers := numberRe.FindAllString(title, -1)
	np := models.NumberPsychology{
		HasNumbers: len(numbers) > 0,
		Numbers:    []string{},
	}
	if len(numbers) == 0 {
		return np
	}
	np.Numbers = numbers

	for _, n := range numbers {
		// Parity only depends on the last digit, which also avoids overflow.
		if (n[len(n)-1]-'0')%2 == 1 {
			np.UsesOddNumbers = true
		}
		if v, err := strconv.Atoi(n); err == nil && v <= listNumberMax {
			np.UsesListFormat = true
		}
	}

	if strings.HasPrefix(strings.TrimSpace(title), numbers[0]) {
		np.NumberPlacement = "beginning"
	} else {
		np.NumberPlacement = "middle/end"
	}
	return np
}

func punctuation(title string) models.PunctuationImpact {
	return models.PunctuationImpact{
		HasQuestionMark: strings.Contains(title, "?"),
		HasExclamation:  strings.Contains(title, "!"),
		HasColon:        strings.Contains(title, ":"),
		HasDash:         strings.ContainsAny(title, "-—"),
		HasParentheses:  strings.ContainsAny(title, "(["),
		HasQuotes:       strings.ContainsAny(title, `"'`),
	}
}

func optimizationRecommendations(wordCount, charCount int, caps models.CapitalizationPattern, numbers models.NumberPsychology) []string {
	recs := []string{}

	switch {
	case wordCount < optimalWords[0]:
		recs = append(recs, "Title too short - aim for 8-12 words")
	case wordCount > optimalWords[1]:
		recs = append(recs, "Title too long - trim to 8-12 words for better visibility")
	}

	if charCount > truncationWarnAt {
		recs = append(recs, "Title may be truncated in search - keep under 60 characters")
	}
	if caps.AllCaps {
		recs = append(recs, "Avoid all caps - seems spammy. Use selective capitalization")
	}
	if !numbers.HasNumbers {
		recs = append(recs, "Consider adding numbers - increases CTR by 15-20%")
	}
	if numbers.HasNumbers && !numbers.UsesOddNumbers {
		recs = append(recs, "Try odd numbers - they outperform even numbers")
	}

	return recs
}

func (e *Engine) performanceInsights(title string, charCount int, score float64, numbers models.NumberPsychology, punct models.PunctuationImpact) []string {
	insights := []string{}

	if score > 80 {
		insights = append(insights, fmt.Sprintf("This title scores %.0f/100 because it hits the sweet spot of length and clarity.", score))
	}

	if numbers.HasNumbers {
		if numbers.UsesOddNumbers {
			insights = append(insights, "Odd numbers feel more authentic and specific than round numbers - increases credibility by 20%.")
		}
		if numbers.NumberPlacement == "beginning" {
			insights = append(insights, "Leading with numbers sets clear expectations - viewers know the content structure immediately.")
		}
	}

	if punct.HasQuestionMark {
		insights = append(insights, "Questions activate the viewer's problem-solving mode - they click to find the answer.")
	}
	if punct.HasColon {
		insights = append(insights, "Colons create a setup/payoff structure - builds anticipation for what comes after.")
	}
	if charCount > searchCutoff {
		insights = append(insights, "⚠️ Title may get cut off in search results - keep main hook in first 60 characters.")
	}

	lower := strings.ToLower(title)
	var found []string
	for _, w := range e.rules.InsightWords {
		if strings.Contains(lower, w) {
			found = append(found, w)
		}
	}
	if len(found) > 0 {
		insights = append(insights, fmt.Sprintf("Power words '%s' trigger emotional response and increase CTR by 15-25%%.", strings.Join(found, ", ")))
	}

	if len(insights) == 0 {
		insights = append(insights, "This title could be optimized - add numbers, questions, or power words for better performance.")
	}

	return insights
}
