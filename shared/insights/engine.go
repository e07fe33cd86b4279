// Package insights runs the content, sentiment and viral analyzers over single
// videos and whole channels, and merges their results into reports.
package insights

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/aref-vc/youtube-content-analyzer/internal/models"
	"github.com/aref-vc/youtube-content-analyzer/internal/textutil"
	"github.com/aref-vc/youtube-content-analyzer/shared/content"
	"github.com/aref-vc/youtube-content-analyzer/shared/logging"
	"github.com/aref-vc/youtube-content-analyzer/shared/rules"
	"github.com/aref-vc/youtube-content-analyzer/shared/sentiment"
	"github.com/aref-vc/youtube-content-analyzer/shared/viral"
)

const (
	DefaultMaxVideos   = 20
	DefaultConcurrency = 4

	topVideosInReport      = 10
	descriptionSampleRunes = 500
)

var ErrTooFewChannels = errors.New("at least 2 channels are required for comparison")

// Engine owns one instance of every analyzer. It holds no mutable state, so a
// single Engine can serve concurrent requests.
type Engine struct {
	content     *content.Analyzer
	sentiment   *sentiment.Analyzer
	viral       *viral.Engine
	maxVideos   int
	concurrency int
	logger      zerolog.Logger
	now         func() time.Time

	// analyzeRecord produces the per-video report used by channel analysis.
	analyzeRecord func(ctx context.Context, v models.Video) models.VideoReport
}

type Option func(*Engine)

// WithMaxVideos caps how many videos of a channel are analyzed in detail.
func WithMaxVideos(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxVideos = n
		}
	}
}

// WithConcurrency bounds the number of videos analyzed at once.
func WithConcurrency(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

func NewEngine(set *rules.Set, opts ...Option) *Engine {
	e := &Engine{
		content:     content.NewAnalyzer(set),
		sentiment:   sentiment.NewAnalyzer(),
		viral:       viral.NewEngine(set),
		maxVideos:   DefaultMaxVideos,
		concurrency: DefaultConcurrency,
		logger:      logging.WithComponent("insights"),
		now:         time.Now,
	}
	e.analyzeRecord = func(ctx context.Context, v models.Video) models.VideoReport {
		return e.AnalyzeVideo(ctx, v, nil)
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AnalyzeTitle scores a title on its own. viewCount feeds the performance
// insights and may be zero.
func (e *Engine) AnalyzeTitle(title string, viewCount int64) models.TitleReport {
	return models.TitleReport{
		Title:         title,
		TitleAnalysis: e.content.AnalyzeTitle(title),
		Sentiment:     e.sentiment.Analyze(title),
		ViralInsights: models.ViralInsights{
			Hooks:             e.viral.AnalyzeHooks(title),
			TitleOptimization: e.viral.AnalyzeTitlePerformance(title, viewCount),
		},
	}
}

// AnalyzeVideo runs every per-record analysis on one video. Comment sentiment
// is only computed when comments is non-nil.
func (e *Engine) AnalyzeVideo(_ context.Context, video models.Video, comments []models.Comment) models.VideoReport {
	report := models.VideoReport{
		Video:               video,
		TitleAnalysis:       e.content.AnalyzeTitle(video.Title),
		DescriptionAnalysis: models.NewOutcome(e.content.AnalyzeDescription(video.Description)),
		Sentiment: models.TextSentiment{
			Title:       e.sentiment.Analyze(video.Title),
			Description: e.sentiment.Analyze(textutil.Truncate(video.Description, descriptionSampleRunes)),
		},
		EngagementPrediction: e.content.PredictEngagement(video),
		ViralInsights: models.ViralInsights{
			Hooks:             e.viral.AnalyzeHooks(video.Title),
			TitleOptimization: e.viral.AnalyzeTitlePerformance(video.Title, video.ViewCount),
		},
	}

	if comments != nil {
		outcome := models.NewOutcome(e.sentiment.AnalyzeComments(comments))
		report.CommentsAnalysis = &outcome
	}

	return report
}

// AnalyzeChannel analyzes up to the configured number of videos in parallel,
// keeping their input order, then builds the channel-wide aggregates. A video
// whose analysis panics is logged and left out. The only error returned is the
// context's.
func (e *Engine) AnalyzeChannel(ctx context.Context, channel models.Channel, videos []models.Video) (*models.ChannelReport, error) {
	start := e.now()
	batch := videos[:min(len(videos), e.maxVideos)]

	e.logger.Info().
		Str("channel", channel.Name).
		Int("videos_found", len(videos)).
		Int("videos_to_analyze", len(batch)).
		Msg("starting channel analysis")

	results := make([]*models.VideoReport, len(batch))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)
	for i, v := range batch {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			report, err := e.safeAnalyze(gctx, v)
			if err != nil {
				e.logger.Error().Err(err).Str("video_id", v.ID).Msg("skipping video")
				return nil
			}
			results[i] = &report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to analyze channel %s: %w", channel.ID, err)
	}

	analyzed := make([]models.VideoReport, 0, len(batch))
	for _, r := range results {
		if r != nil {
			analyzed = append(analyzed, *r)
		}
	}
	analyzedVideos := make([]models.Video, len(analyzed))
	for i, r := range analyzed {
		analyzedVideos[i] = r.Video
	}

	patterns := models.NewOutcome(e.content.FindContentPatterns(analyzedVideos))
	if !patterns.OK() {
		e.logger.Warn().Str("channel", channel.Name).Msg("no analyzed videos available for pattern extraction")
	}

	var commonPatterns map[models.PatternName]int
	if patterns.OK() {
		commonPatterns = patterns.Data.PatternCounts()
	}

	top := analyzed[:min(len(analyzed), topVideosInReport)]
	report := &models.ChannelReport{
		ID:              uuid.NewString(),
		GeneratedAt:     e.now(),
		Channel:         channel,
		TotalVideos:     len(videos),
		VideosAnalyzed:  len(analyzed),
		TopVideos:       top,
		ContentPatterns: patterns,
		ChannelMetrics:  Metrics(analyzed),
		ViralInsights: models.ChannelViralInsights{
			ContentTemplates: models.NewOutcome(e.viral.ExtractTemplates(analyzedVideos)),
			ViralRecipes:     e.viral.GenerateRecipes(analyzedVideos[:len(top)], commonPatterns),
		},
	}

	e.logger.Info().
		Str("channel", channel.Name).
		Int("videos_analyzed", len(analyzed)).
		Dur("duration", e.now().Sub(start)).
		Msg("channel analysis complete")

	return report, nil
}

func (e *Engine) safeAnalyze(ctx context.Context, v models.Video) (report models.VideoReport, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while analyzing video %q: %v", v.Title, r)
		}
	}()
	return e.analyzeRecord(ctx, v), nil
}

// DetectPatterns aggregates title patterns across a batch and summarizes each
// video. The batch is capped like channel analysis.
func (e *Engine) DetectPatterns(_ context.Context, videos []models.Video) models.PatternReport {
	batch := videos[:min(len(videos), e.maxVideos)]

	summaries := make([]models.VideoSummary, 0, len(batch))
	for _, v := range batch {
		summaries = append(summaries, models.VideoSummary{
			Title:           v.Title,
			Views:           v.ViewCount,
			TitlePatterns:   e.content.AnalyzeTitle(v.Title).Patterns,
			EngagementScore: e.content.PredictEngagement(v).EngagementScore,
		})
	}

	return models.PatternReport{
		VideosAnalyzed:     len(batch),
		Patterns:           models.NewOutcome(e.content.FindContentPatterns(batch)),
		IndividualAnalyses: summaries,
	}
}
