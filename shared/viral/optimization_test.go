package viral

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeTitlePerformance(t *testing.T) {
	e := newTestEngine()

	t.Run("short list title", func(t *testing.T) {
		got := e.AnalyzeTitlePerformance("7 Tips That Changed My Life", 1200)

		assert.Equal(t, 60.0, got.LengthAnalysis.WordScore)
		assert.Equal(t, 44.0, got.LengthAnalysis.CharScore)
		assert.Equal(t, 62.0, got.OptimizationScore)
		assert.Equal(t, []string{"7"}, got.NumberPsychology.Numbers)
		assert.True(t, got.NumberPsychology.UsesOddNumbers)
		assert.True(t, got.NumberPsychology.UsesListFormat)
		assert.Equal(t, "beginning", got.NumberPsychology.NumberPlacement)
		assert.True(t, got.Capitalization.TitleCase)
		assert.False(t, got.Capitalization.AllCaps)
		assert.Equal(t, []string{"Title too short - aim for 8-12 words"}, got.Recommendations)
		assert.Len(t, got.PerformanceInsights, 2)
		assert.Equal(t, int64(1200), got.ViewCount)
		assert.Equal(t, "7 Tips That Changed My Life", got.FullTitle)
	})

	t.Run("optimal title is capped", func(t *testing.T) {
		got := e.AnalyzeTitlePerformance("How I Built 3 Tiny Houses in the Forest for Almost Nothing?", 0)

		assert.Equal(t, 100.0, got.OptimizationScore)
		assert.Equal(t, "middle/end", got.NumberPsychology.NumberPlacement)
		assert.Empty(t, got.Recommendations)
		assert.Equal(t, []string{
			"This title scores 100/100 because it hits the sweet spot of length and clarity.",
			"Odd numbers feel more authentic and specific than round numbers - increases credibility by 20%.",
			"Questions activate the viewer's problem-solving mode - they click to find the answer.",
		}, got.PerformanceInsights)
	})

	t.Run("all caps without numbers", func(t *testing.T) {
		got := e.AnalyzeTitlePerformance("WHY NOBODY TALKS ABOUT THIS", 0)

		assert.True(t, got.Capitalization.AllCaps)
		assert.True(t, got.Capitalization.FirstWordCaps)
		assert.False(t, got.Capitalization.MixedCaps)
		assert.Contains(t, got.Recommendations, "Avoid all caps - seems spammy. Use selective capitalization")
		assert.Contains(t, got.Recommendations, "Consider adding numbers - increases CTR by 15-20%")
		assert.Contains(t, got.PerformanceInsights, "Power words 'nobody' trigger emotional response and increase CTR by 15-25%.")
	})

	t.Run("short words never count as all caps", func(t *testing.T) {
		got := e.AnalyzeTitlePerformance("AI vs ML", 0)
		assert.False(t, got.Capitalization.AllCaps)
		assert.True(t, got.Capitalization.MixedCaps)
	})

	t.Run("even numbers", func(t *testing.T) {
		got := e.AnalyzeTitlePerformance("Top 10 Laptops of 2024: Tested", 0)

		assert.Equal(t, []string{"10", "2024"}, got.NumberPsychology.Numbers)
		assert.False(t, got.NumberPsychology.UsesOddNumbers)
		assert.True(t, got.NumberPsychology.UsesListFormat)
		assert.True(t, got.PunctuationImpact.HasColon)
		assert.Contains(t, got.Recommendations, "Try odd numbers - they outperform even numbers")
	})

	t.Run("huge numbers do not overflow", func(t *testing.T) {
		got := e.AnalyzeTitlePerformance("99999999999999999999999 reasons", 0)
		assert.True(t, got.NumberPsychology.UsesOddNumbers)
		assert.False(t, got.NumberPsychology.UsesListFormat)
	})

	t.Run("empty title", func(t *testing.T) {
		got := e.AnalyzeTitlePerformance("", 0)

		assert.Equal(t, 0.0, got.LengthAnalysis.WordScore)
		assert.Equal(t, 0.0, got.LengthAnalysis.CharScore)
		assert.Equal(t, 0.0, got.OptimizationScore)
		assert.Empty(t, got.NumberPsychology.NumberPlacement)
		assert.False(t, got.Capitalization.AllCaps)
		assert.Equal(t, []string{
			"This title could be optimized - add numbers, questions, or power words for better performance.",
		}, got.PerformanceInsights)
	})
}

func TestPunctuation(t *testing.T) {
	got := punctuation(`"Quoted" — [Bracketed]!`)
	assert.True(t, got.HasQuotes)
	assert.True(t, got.HasDash)
	assert.True(t, got.HasParentheses)
	assert.True(t, got.HasExclamation)
	assert.False(t, got.HasQuestionMark)
	assert.False(t, got.HasColon)
}

func TestRangeScore(t *testing.T) {
	assert.Equal(t, 100.0, rangeScore(9, optimalWords, targetWords, 10))
	assert.Equal(t, 70.0, rangeScore(13, optimalWords, targetWords, 10))
	assert.Equal(t, 0.0, rangeScore(30, optimalWords, targetWords, 10))
	assert.Equal(t, 90.0, rangeScore(60+0, [2]int{50, 59}, targetChars, 2))
}
