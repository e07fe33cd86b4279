package content

import (
	"github.com/aref-vc/youtube-content-analyzer/internal/models"
	"github.com/aref-vc/youtube-content-analyzer/internal/textutil"
)

const (
	goodLikeRatio    = 0.04
	goodCommentRatio = 0.005
)

// PredictEngagement combines title and description quality with the video's
// engagement ratios into a single score. Missing counts count as zero.
func (a *Analyzer) PredictEngagement(video models.Video) models.EngagementPrediction {
	factors := []string{}

	title := a.AnalyzeTitle(video.Title)
	score := title.EffectivenessScore * 0.3
	if title.EffectivenessScore > 70 {
		factors = append(factors, "Strong title")
	}

	// A missing description contributes a zero SEO score.
	desc, _ := a.AnalyzeDescription(video.Description)
	score += desc.SEOScore * 0.2
	if desc.SEOScore > 70 {
		factors = append(factors, "Good SEO optimization")
	}

	if video.ViewCount > 0 && video.LikeCount > 0 {
		if float64(video.LikeCount)/float64(video.ViewCount) > goodLikeRatio {
			score += 20
			factors = append(factors, "High like ratio")
		}
	}

	if video.ViewCount > 0 && video.CommentCount > 0 {
		if float64(video.CommentCount)/float64(video.ViewCount) > goodCommentRatio {
			score += 15
			factors = append(factors, "High comment engagement")
		}
	}

	if n := len(video.Tags); n >= 5 && n <= 15 {
		score += 10
		factors = append(factors, "Optimal tag usage")
	}

	score = textutil.Clamp(score, 0, 100)

	return models.EngagementPrediction{
		EngagementScore: score,
		PerformanceTier: tierFor(score),
		PositiveFactors: factors,
		Recommendations: engagementRecommendations(score, title, desc),
	}
}

func tierFor(score float64) string {
	switch {
	case score >= 80:
		return models.TierExcellent
	case score >= 60:
		return models.TierGood
	case score >= 40:
		return models.TierAverage
	default:
		return models.TierNeedsImprovement
	}
}

func engagementRecommendations(score float64, title models.TitleAnalysis, desc models.DescriptionAnalysis) []string {
	recs := []string{}
	if score >= 70 {
		return recs
	}

	if title.EffectivenessScore < 60 {
		recs = append(recs, "Improve title with questions or numbered lists")
	}
	if desc.SEOScore < 60 {
		recs = append(recs, "Optimize description with timestamps and relevant hashtags")
	}
	if !desc.HasTimestamps {
		recs = append(recs, "Add timestamps to improve viewer retention")
	}
	if desc.WordCount < 100 {
		recs = append(recs, "Expand description to 200-300 words for better SEO")
	}

	return recs
}
