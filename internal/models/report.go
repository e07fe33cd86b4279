package models

import "time"

// Outcome carries either a result or the reason it could not be produced.
// Readers check Error before Data.
type Outcome[T any] struct {
	Data  *T     `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// NewOutcome wraps an analyzer's (value, error) pair.
func NewOutcome[T any](v T, err error) Outcome[T] {
	if err != nil {
		return Outcome[T]{Error: err.Error()}
	}
	return Outcome[T]{Data: &v}
}

// OK reports whether the outcome holds data.
func (o Outcome[T]) OK() bool {
	return o.Error == "" && o.Data != nil
}

type ViralInsights struct {
	Hooks             HookAnalysis      `json:"hooks"`
	TitleOptimization TitleOptimization `json:"title_optimization"`
}

type TextSentiment struct {
	Title       SentimentScore `json:"title"`
	Description SentimentScore `json:"description"`
}

// TitleReport is the title-only subset of a VideoReport.
type TitleReport struct {
	Title         string         `json:"title"`
	TitleAnalysis TitleAnalysis  `json:"title_analysis"`
	Sentiment     SentimentScore `json:"sentiment"`
	ViralInsights ViralInsights  `json:"viral_insights"`
}

type VideoReport struct {
	Video                Video                        `json:"video"`
	TitleAnalysis        TitleAnalysis                `json:"title_analysis"`
	DescriptionAnalysis  Outcome[DescriptionAnalysis] `json:"description_analysis"`
	Sentiment            TextSentiment                `json:"sentiment"`
	CommentsAnalysis     *Outcome[CommentsSentiment]  `json:"comments_analysis,omitempty"`
	EngagementPrediction EngagementPrediction         `json:"engagement_prediction"`
	ViralInsights        ViralInsights                `json:"viral_insights"`
	ChannelContext       *ChannelContext              `json:"channel_context,omitempty"`
}

type ChannelMetrics struct {
	AverageEngagementScore    float64 `json:"average_engagement_score"`
	AverageTitleEffectiveness float64 `json:"average_title_effectiveness"`
	AverageSEOScore           float64 `json:"average_seo_score"`
	TotalViewsAnalyzed        int64   `json:"total_views_analyzed"`
	AverageViewsPerVideo      int64   `json:"average_views_per_video"`
	OverallEngagementRate     float64 `json:"overall_engagement_rate"`
	VideosAnalyzed            int     `json:"videos_analyzed"`
}

type ChannelViralInsights struct {
	ContentTemplates Outcome[TemplateLibrary] `json:"content_templates"`
	ViralRecipes     ViralRecipes             `json:"viral_recipes"`
}

type ChannelReport struct {
	ID              string                    `json:"id"`
	GeneratedAt     time.Time                 `json:"generated_at"`
	Channel         Channel                   `json:"channel"`
	TotalVideos     int                       `json:"total_videos_found"`
	VideosAnalyzed  int                       `json:"videos_analyzed"`
	TopVideos       []VideoReport             `json:"top_videos"`
	ContentPatterns Outcome[PatternAggregate] `json:"content_patterns"`
	ChannelMetrics  ChannelMetrics            `json:"channel_metrics"`
	ViralInsights   ChannelViralInsights      `json:"viral_insights"`
}

type VideoSummary struct {
	Title           string        `json:"title"`
	Views           int64         `json:"views"`
	TitlePatterns   []PatternName `json:"title_patterns"`
	EngagementScore float64       `json:"engagement_score"`
}

type PatternReport struct {
	VideosAnalyzed     int                       `json:"videos_analyzed"`
	Patterns           Outcome[PatternAggregate] `json:"patterns"`
	IndividualAnalyses []VideoSummary            `json:"individual_analyses"`
}

type ChannelComparison struct {
	SubscriberComparison  map[string]int64               `json:"subscriber_comparison"`
	PatternComparison     map[string][]PatternCount `json:"pattern_comparison"`
	ConsistencyComparison map[string]float64             `json:"content_consistency_comparison"`
}

// DigestReport is the e-mail payload assembled after a scheduled run.
type DigestReport struct {
	Date     time.Time        `json:"date"`
	Channels []*ChannelReport `json:"channels"`
	Total    int              `json:"total_videos_analyzed"`
}
