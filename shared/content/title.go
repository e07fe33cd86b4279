package content

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/aref-vc/youtube-content-analyzer/internal/models"
	"github.com/aref-vc/youtube-content-analyzer/internal/textutil"
)

var emojiRe = regexp.MustCompile(`[\x{1F300}-\x{1F9FF}]`)

// AnalyzeTitle scores a single title. It never fails: an empty title yields a
// valid, low-scored analysis.
func (a *Analyzer) AnalyzeTitle(title string) models.TitleAnalysis {
	lower := strings.ToLower(title)
	words := strings.Fields(title)

	analysis := models.TitleAnalysis{
		Patterns:       a.matchPatterns(lower),
		PowerWordCount: a.countPowerWords(lower),
		WordCount:      len(words),
		CharCount:      utf8.RuneCountInString(title),
		HasEmoji:       emojiRe.MatchString(title),
		HasCaps:        hasShoutedWord(words),
		Readability:    FleschReadingEase(title),
	}
	analysis.EffectivenessScore = titleEffectiveness(analysis)
	analysis.Suggestions = titleSuggestions(analysis)

	return analysis
}

// matchPatterns records every category the lower-cased title matches, in
// declaration order.
func (a *Analyzer) matchPatterns(lower string) []models.PatternName {
	found := make([]models.PatternName, 0, len(a.rules.TitlePatterns))
	for _, p := range a.rules.TitlePatterns {
		if p.Expr.MatchString(lower) {
			found = append(found, p.Name)
		}
	}
	return found
}

// countPowerWords counts each listed word once when it appears anywhere in
// the title, including inside longer words.
func (a *Analyzer) countPowerWords(lower string) int {
	count := 0
	for _, w := range a.rules.PowerWords {
		if strings.Contains(lower, w) {
			count++
		}
	}
	return count
}

func hasShoutedWord(words []string) bool {
	for _, w := range words {
		if utf8.RuneCountInString(w) > 1 && textutil.IsUpper(w) {
			return true
		}
	}
	return false
}

func titleEffectiveness(t models.TitleAnalysis) float64 {
	score := 50.0

	if t.HasPattern(models.PatternQuestion) {
		score += 10
	}
	if t.HasPattern(models.PatternNumberList) {
		score += 15
	}
	if t.HasPattern(models.PatternTutorial) {
		score += 10
	}
	if t.HasPattern(models.PatternEmotional) {
		score += 5
	}

	score += float64(min(15, t.PowerWordCount*5))

	switch {
	case t.WordCount >= 8 && t.WordCount <= 12:
		score += 10
	case t.WordCount < 5 || t.WordCount > 15:
		score -= 10
	}

	if t.CharCount >= 50 && t.CharCount <= 60 {
		score += 5
	}
	if t.HasEmoji {
		score += 3
	}

	return textutil.Clamp(score, 0, 100)
}

func titleSuggestions(t models.TitleAnalysis) []string {
	suggestions := []string{}

	if t.EffectivenessScore < 60 {
		if !t.HasPattern(models.PatternQuestion) {
			suggestions = append(suggestions, "Consider starting with a question to increase engagement")
		}
		if !t.HasPattern(models.PatternNumberList) {
			suggestions = append(suggestions, "Try using numbered lists (e.g., '5 Tips for...')")
		}
		suggestions = append(suggestions, "Add power words like 'ultimate', 'essential', or 'proven'")
	}

	if t.EffectivenessScore < 40 {
		suggestions = append(suggestions,
			"Title may be too short or too long - aim for 8-12 words",
			"Consider adding emotional triggers or urgency",
		)
	}

	return suggestions
}
