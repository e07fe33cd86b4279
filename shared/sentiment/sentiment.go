// Package sentiment scores text polarity with the VADER lexicon.
package sentiment

import (
	"errors"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/rs/zerolog"

	"github.com/aref-vc/youtube-content-analyzer/internal/models"
	"github.com/aref-vc/youtube-content-analyzer/shared/logging"
)

var (
	ErrNoComments      = errors.New("No comments provided")
	ErrNoValidComments = errors.New("No valid comments for analysis")
)

const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

// Tone labels derived from the mean compound score.
const (
	ToneVeryPositive = "Very Positive"
	TonePositive     = "Positive"
	ToneNeutral      = "Neutral"
	ToneNegative     = "Negative"
	ToneVeryNegative = "Very Negative"
)

type Analyzer struct {
	vader  *govader.SentimentIntensityAnalyzer
	logger zerolog.Logger
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{
		vader:  govader.NewSentimentIntensityAnalyzer(),
		logger: logging.WithComponent("sentiment"),
	}
}

// Analyze returns the polarity of text. Text with nothing to score is fully
// neutral.
func (a *Analyzer) Analyze(text string) models.SentimentScore {
	if strings.TrimSpace(text) == "" {
		return models.SentimentScore{Neutral: 1}
	}

	s := a.vader.PolarityScores(text)
	if s.Positive+s.Negative+s.Neutral == 0 {
		return models.SentimentScore{Neutral: 1}
	}

	return models.SentimentScore{
		Positive: s.Positive,
		Negative: s.Negative,
		Neutral:  s.Neutral,
		Compound: s.Compound,
	}
}

// AnalyzeComments averages comment polarity and buckets each comment by its
// compound score. Comments without text are ignored.
func (a *Analyzer) AnalyzeComments(comments []models.Comment) (models.CommentsSentiment, error) {
	if len(comments) == 0 {
		a.logger.Debug().Msg("comment sentiment skipped: no comments")
		return models.CommentsSentiment{}, ErrNoComments
	}

	var (
		sum  models.SentimentScore
		dist models.SentimentDistribution
		n    int
	)
	for _, c := range comments {
		if c.Text == "" {
			continue
		}
		s := a.Analyze(c.Text)
		sum.Positive += s.Positive
		sum.Negative += s.Negative
		sum.Neutral += s.Neutral
		sum.Compound += s.Compound
		n++

		switch {
		case s.Compound > positiveThreshold:
			dist.Positive++
		case s.Compound < negativeThreshold:
			dist.Negative++
		default:
			dist.Neutral++
		}
	}

	if n == 0 {
		a.logger.Warn().Int("comments", len(comments)).Msg("comment sentiment skipped: no comment text")
		return models.CommentsSentiment{}, ErrNoValidComments
	}

	avg := models.SentimentScore{
		Positive: sum.Positive / float64(n),
		Negative: sum.Negative / float64(n),
		Neutral:  sum.Neutral / float64(n),
		Compound: sum.Compound / float64(n),
	}

	return models.CommentsSentiment{
		AverageSentiment:      avg,
		SentimentDistribution: dist,
		TotalAnalyzed:         n,
		OverallTone:           Tone(avg.Compound),
	}, nil
}

// Tone maps a compound score to its label.
func Tone(compound float64) string {
	switch {
	case compound >= 0.5:
		return ToneVeryPositive
	case compound >= 0.1:
		return TonePositive
	case compound <= -0.5:
		return ToneVeryNegative
	case compound <= -0.1:
		return ToneNegative
	default:
		return ToneNeutral
	}
}
