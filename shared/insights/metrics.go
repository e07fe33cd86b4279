package insights

import (
	"fmt"

	"github.com/aref-vc/youtube-content-analyzer/internal/models"
	"github.com/aref-vc/youtube-content-analyzer/internal/textutil"
)

const maxCompareChannels = 5

// Metrics averages the per-video scores of a channel report. Videos without a
// description count with an SEO score of zero.
func Metrics(reports []models.VideoReport) models.ChannelMetrics {
	if len(reports) == 0 {
		return models.ChannelMetrics{}
	}

	var (
		engagement, title, seo    float64
		views, likes, commentsSum int64
	)
	for _, r := range reports {
		engagement += r.EngagementPrediction.EngagementScore
		title += r.TitleAnalysis.EffectivenessScore
		if r.DescriptionAnalysis.OK() {
			seo += r.DescriptionAnalysis.Data.SEOScore
		}
		views += r.Video.ViewCount
		likes += r.Video.LikeCount
		commentsSum += r.Video.CommentCount
	}

	n := float64(len(reports))
	m := models.ChannelMetrics{
		AverageEngagementScore:    textutil.Round2(engagement / n),
		AverageTitleEffectiveness: textutil.Round2(title / n),
		AverageSEOScore:           textutil.Round2(seo / n),
		TotalViewsAnalyzed:        views,
		AverageViewsPerVideo:      views / int64(len(reports)),
		VideosAnalyzed:            len(reports),
	}
	if views > 0 {
		m.OverallEngagementRate = float64(likes+commentsSum) / float64(views)
	}
	return m
}

// CompareChannels lines up subscriber counts and title patterns of up to five
// channel reports. Channels without a name are labelled by position.
func CompareChannels(reports []*models.ChannelReport) (models.ChannelComparison, error) {
	if len(reports) < 2 {
		return models.ChannelComparison{}, ErrTooFewChannels
	}
	reports = reports[:min(len(reports), maxCompareChannels)]

	cmp := models.ChannelComparison{
		SubscriberComparison:  make(map[string]int64, len(reports)),
		PatternComparison:     make(map[string][]models.PatternCount, len(reports)),
		ConsistencyComparison: make(map[string]float64, len(reports)),
	}

	for i, r := range reports {
		name := r.Channel.Name
		if name == "" {
			name = fmt.Sprintf("Channel %d", i+1)
		}

		cmp.SubscriberComparison[name] = r.Channel.SubscriberCount
		if r.ContentPatterns.OK() {
			cmp.PatternComparison[name] = r.ContentPatterns.Data.CommonPatterns
			cmp.ConsistencyComparison[name] = r.ContentPatterns.Data.ContentConsistency
		}
	}

	return cmp, nil
}
