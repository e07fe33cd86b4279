package insights

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aref-vc/youtube-content-analyzer/internal/models"
)

func reportWith(engagement, title float64, desc models.Outcome[models.DescriptionAnalysis], video models.Video) models.VideoReport {
	return models.VideoReport{
		Video:                video,
		TitleAnalysis:        models.TitleAnalysis{EffectivenessScore: title},
		DescriptionAnalysis:  desc,
		EngagementPrediction: models.EngagementPrediction{EngagementScore: engagement},
	}
}

func TestMetrics(t *testing.T) {
	reports := []models.VideoReport{
		reportWith(40, 50,
			models.NewOutcome(models.DescriptionAnalysis{SEOScore: 80}, nil),
			models.Video{ViewCount: 1001, LikeCount: 50, CommentCount: 10}),
		reportWith(60, 70,
			models.NewOutcome(models.DescriptionAnalysis{}, errors.New("No description provided")),
			models.Video{}),
	}

	got := Metrics(reports)

	assert.Equal(t, models.ChannelMetrics{
		AverageEngagementScore:    50,
		AverageTitleEffectiveness: 60,
		AverageSEOScore:           40,
		TotalViewsAnalyzed:        1001,
		AverageViewsPerVideo:      500,
		OverallEngagementRate:     60.0 / 1001.0,
		VideosAnalyzed:            2,
	}, got)
}

func TestMetricsWithoutViews(t *testing.T) {
	got := Metrics([]models.VideoReport{
		reportWith(10, 10, models.Outcome[models.DescriptionAnalysis]{}, models.Video{LikeCount: 5}),
	})

	assert.Equal(t, 0.0, got.OverallEngagementRate)
	assert.Equal(t, int64(0), got.AverageViewsPerVideo)
	assert.Equal(t, 1, got.VideosAnalyzed)
}

func TestCompareChannels(t *testing.T) {
	patterns := models.NewOutcome(models.PatternAggregate{
		CommonPatterns:     []models.PatternCount{{Pattern: models.PatternTutorial, Count: 4}},
		ContentConsistency: 42.5,
	}, nil)

	t.Run("too few channels", func(t *testing.T) {
		_, err := CompareChannels([]*models.ChannelReport{{}})
		assert.ErrorIs(t, err, ErrTooFewChannels)
	})

	t.Run("names and missing patterns", func(t *testing.T) {
		got, err := CompareChannels([]*models.ChannelReport{
			{Channel: models.Channel{Name: "Bread Lab", SubscriberCount: 1200}, ContentPatterns: patterns},
			{Channel: models.Channel{SubscriberCount: 30}, ContentPatterns: models.Outcome[models.PatternAggregate]{Error: "No videos provided"}},
		})
		require.NoError(t, err)

		assert.Equal(t, map[string]int64{"Bread Lab": 1200, "Channel 2": 30}, got.SubscriberComparison)
		assert.Equal(t, map[string][]models.PatternCount{
			"Bread Lab": {{Pattern: models.PatternTutorial, Count: 4}},
		}, got.PatternComparison)
		assert.Equal(t, map[string]float64{"Bread Lab": 42.5}, got.ConsistencyComparison)
	})

	t.Run("at most five channels", func(t *testing.T) {
		reports := make([]*models.ChannelReport, 7)
		for i := range reports {
			reports[i] = &models.ChannelReport{}
		}
		got, err := CompareChannels(reports)
		require.NoError(t, err)
		assert.Len(t, got.SubscriberComparison, 5)
	})
}
