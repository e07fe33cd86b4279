package sentiment

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aref-vc/youtube-content-analyzer/internal/models"
)

func TestAnalyzeSumsToOne(t *testing.T) {
	a := NewAnalyzer()

	for _, text := range []string{
		"",
		"   ",
		"!!! ???",
		"The video is 12 minutes long",
		"I love this video, it is amazing!",
		"This is the worst tutorial I have ever seen.",
	} {
		t.Run(text, func(t *testing.T) {
			s := a.Analyze(text)
			assert.InDelta(t, 1.0, s.Positive+s.Negative+s.Neutral, 0.01)
			assert.GreaterOrEqual(t, s.Compound, -1.0)
			assert.LessOrEqual(t, s.Compound, 1.0)
		})
	}
}

func TestAnalyzeBlankIsNeutral(t *testing.T) {
	assert.Equal(t, models.SentimentScore{Neutral: 1}, NewAnalyzer().Analyze(""))
}

func TestAnalyzePolarity(t *testing.T) {
	a := NewAnalyzer()

	assert.Greater(t, a.Analyze("I love this, it is great and amazing!").Compound, 0.5)
	assert.Less(t, a.Analyze("I hate this, it is terrible and awful.").Compound, -0.5)
}

func TestAnalyzeComments(t *testing.T) {
	a := NewAnalyzer()

	t.Run("no comments", func(t *testing.T) {
		_, err := a.AnalyzeComments(nil)
		assert.True(t, errors.Is(err, ErrNoComments))
	})

	t.Run("no comment text", func(t *testing.T) {
		_, err := a.AnalyzeComments([]models.Comment{{Author: "a"}, {Author: "b"}})
		assert.True(t, errors.Is(err, ErrNoValidComments))
		assert.Equal(t, "No valid comments for analysis", err.Error())
	})

	t.Run("mixed comments", func(t *testing.T) {
		got, err := a.AnalyzeComments([]models.Comment{
			{Text: "I love this, it is great and amazing!"},
			{Text: "I hate this, it is terrible and awful."},
			{Text: "The video is 12 minutes long"},
			{Text: ""},
		})
		require.NoError(t, err)

		assert.Equal(t, 3, got.TotalAnalyzed)
		assert.Equal(t, models.SentimentDistribution{Positive: 1, Negative: 1, Neutral: 1}, got.SentimentDistribution)
		avg := got.AverageSentiment
		assert.InDelta(t, 1.0, avg.Positive+avg.Negative+avg.Neutral, 0.01)
	})

	t.Run("positive crowd", func(t *testing.T) {
		got, err := a.AnalyzeComments([]models.Comment{
			{Text: "Amazing work, love it!"},
			{Text: "Great video, thank you so much!"},
		})
		require.NoError(t, err)
		assert.Equal(t, ToneVeryPositive, got.OverallTone)
	})
}

func TestTone(t *testing.T) {
	tests := []struct {
		compound float64
		want     string
	}{
		{0.9, ToneVeryPositive},
		{0.5, ToneVeryPositive},
		{0.49, TonePositive},
		{0.1, TonePositive},
		{0.05, ToneNeutral},
		{-0.05, ToneNeutral},
		{-0.1, ToneNegative},
		{-0.49, ToneNegative},
		{-0.5, ToneVeryNegative},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Tone(tt.compound), "compound %v", tt.compound)
	}
}
