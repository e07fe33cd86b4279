package channelinsights

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/aref-vc/youtube-content-analyzer/agents/channel-insights/youtube"
	"github.com/aref-vc/youtube-content-analyzer/internal/models"
	"github.com/aref-vc/youtube-content-analyzer/shared/config"
	"github.com/aref-vc/youtube-content-analyzer/shared/email"
	"github.com/aref-vc/youtube-content-analyzer/shared/insights"
	"github.com/aref-vc/youtube-content-analyzer/shared/logging"
	"github.com/aref-vc/youtube-content-analyzer/shared/rules"
	"github.com/aref-vc/youtube-content-analyzer/shared/scheduler"
	"github.com/aref-vc/youtube-content-analyzer/shared/storage"
)

// RunMetrics represents what one scheduled run did.
type RunMetrics struct {
	ChannelsChecked  int  `json:"channels_checked"`
	ChannelsAnalyzed int  `json:"channels_analyzed"`
	ChannelsCached   int  `json:"channels_cached"`
	ChannelsFailed   int  `json:"channels_failed"`
	VideosAnalyzed   int  `json:"videos_analyzed"`
	EmailSent        bool `json:"email_sent"`
}

// GetSummary implements the scheduler.Metrics interface
func (m RunMetrics) GetSummary() string {
	summary := fmt.Sprintf("%d/%d channels analyzed (%d cached, %d failed), %d videos",
		m.ChannelsAnalyzed, m.ChannelsChecked, m.ChannelsCached, m.ChannelsFailed, m.VideosAnalyzed)
	if m.EmailSent {
		summary += ", digest sent"
	}
	return summary
}

type digestSender interface {
	SendDigest(report *models.DigestReport) error
}

type tokenRefresher interface {
	RefreshToken() error
}

// ChannelInsightsAgent implements the scheduler.Agent interface. Each run
// re-analyzes the configured channels whose cached report has expired.
type ChannelInsightsAgent struct {
	config  *config.Config
	fetcher insights.Fetcher
	engine  *insights.Engine
	cache   *storage.ReportCache
	sender  digestSender
	logger  zerolog.Logger
	now     func() time.Time
}

type Option func(*ChannelInsightsAgent)

func WithFetcher(f insights.Fetcher) Option {
	return func(a *ChannelInsightsAgent) { a.fetcher = f }
}

func WithReportCache(c *storage.ReportCache) Option {
	return func(a *ChannelInsightsAgent) { a.cache = c }
}

func WithDigestSender(s digestSender) Option {
	return func(a *ChannelInsightsAgent) { a.sender = s }
}

func NewChannelInsightsAgent(cfg *config.Config, opts ...Option) *ChannelInsightsAgent {
	a := &ChannelInsightsAgent{
		config: cfg,
		logger: logging.WithComponent("channel-insights"),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *ChannelInsightsAgent) Name() string {
	return "Channel Insights"
}

// NewEngine builds the analysis engine described by cfg.
func NewEngine(cfg *config.Config) *insights.Engine {
	set := rules.Default(rules.WithHookDivisor(rules.ParseHookDivisor(cfg.Analysis.HookDivisor)))
	return insights.NewEngine(set,
		insights.WithMaxVideos(cfg.Analysis.MaxVideos),
		insights.WithConcurrency(cfg.Analysis.Concurrency),
	)
}

func (a *ChannelInsightsAgent) Initialize() error {
	a.logger.Info().Msgf("Initializing %s...", a.Name())

	if len(a.config.Channels) == 0 {
		return errors.New("no channels configured (channels)")
	}

	if a.fetcher == nil {
		if err := a.config.ValidateFetch(); err != nil {
			return err
		}
		client, err := youtube.NewClient(context.Background(), &a.config.YouTube)
		if err != nil {
			return fmt.Errorf("failed to create YouTube client: %w", err)
		}
		a.fetcher = client
		a.logger.Info().Msg("YouTube client initialized")
	}

	if a.engine == nil {
		a.engine = NewEngine(a.config)
	}

	if a.cache == nil {
		cache, err := storage.NewReportCache(a.config.Storage.DataDir, a.config.Storage.CacheTTL)
		if err != nil {
			return fmt.Errorf("failed to create report cache: %w", err)
		}
		a.cache = cache
		a.logger.Info().Int("reports", cache.Len()).Msg("report cache initialized")
	}

	if a.sender == nil {
		if err := a.config.ValidateEmail(); err != nil {
			a.logger.Warn().Err(err).Msg("email digest disabled")
		} else {
			a.sender = email.NewSender(&a.config.Email)
			a.logger.Info().Msg("email sender initialized")
		}
	}

	return nil
}

func (a *ChannelInsightsAgent) RunOnce(ctx context.Context, events *scheduler.AgentEvents) error {
	startTime := a.now()
	metrics := RunMetrics{ChannelsChecked: len(a.config.Channels)}

	if r, ok := a.fetcher.(tokenRefresher); ok {
		if err := r.RefreshToken(); err != nil {
			a.logger.Warn().Err(err).Msg("token refresh failed")
		}
	}

	var reports []*models.ChannelReport
	for _, ref := range a.config.Channels {
		if _, fresh := a.cache.Get(ref); fresh {
			metrics.ChannelsCached++
			a.logger.Info().Str("channel", ref).Msg("skipping channel with fresh report")
			continue
		}

		report, err := a.analyzeChannel(ctx, ref)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			metrics.ChannelsFailed++
			a.logger.Error().Err(err).Str("channel", ref).Msg("channel analysis failed")
			partialFailure(events, err, a.now().Sub(startTime))
			continue
		}

		if err := a.cache.Put(ref, report); err != nil {
			partialFailure(events, fmt.Errorf("failed to cache report for %s: %w", ref, err), a.now().Sub(startTime))
		}

		reports = append(reports, report)
		metrics.ChannelsAnalyzed++
		metrics.VideosAnalyzed += report.VideosAnalyzed
	}

	if metrics.ChannelsFailed > 0 && metrics.ChannelsFailed == metrics.ChannelsChecked {
		err := fmt.Errorf("all %d channels failed", metrics.ChannelsFailed)
		if events != nil && events.OnCriticalFailure != nil {
			events.OnCriticalFailure(err, a.now().Sub(startTime))
		}
		return err
	}

	if len(reports) > 0 && a.sender != nil {
		digest := &models.DigestReport{
			Date:     a.now(),
			Channels: reports,
			Total:    metrics.VideosAnalyzed,
		}
		if err := a.sender.SendDigest(digest); err != nil {
			partialFailure(events, fmt.Errorf("failed to send digest: %w", err), a.now().Sub(startTime))
		} else {
			metrics.EmailSent = true
			a.logger.Info().Int("channels", len(reports)).Msg("digest sent")
		}
	}

	if events != nil && events.OnSuccess != nil {
		events.OnSuccess(metrics, a.now().Sub(startTime))
	}

	a.logger.Info().Msg(metrics.GetSummary())
	return nil
}

func (a *ChannelInsightsAgent) analyzeChannel(ctx context.Context, ref string) (*models.ChannelReport, error) {
	channel, videos, err := a.fetcher.FetchChannel(ctx, ref, a.config.Analysis.FetchVideos)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch channel %s: %w", ref, err)
	}

	return a.engine.AnalyzeChannel(ctx, *channel, videos)
}

func partialFailure(events *scheduler.AgentEvents, err error, d time.Duration) {
	if events != nil && events.OnPartialFailure != nil {
		events.OnPartialFailure(err, d)
	}
}
