package channelinsights

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aref-vc/youtube-content-analyzer/internal/models"
	"github.com/aref-vc/youtube-content-analyzer/shared/config"
	"github.com/aref-vc/youtube-content-analyzer/shared/scheduler"
	"github.com/aref-vc/youtube-content-analyzer/shared/storage"
)

type fakeFetcher struct {
	calls    []string
	failFor  map[string]error
	refreshes int
}

func (f *fakeFetcher) FetchChannel(_ context.Context, ref string, limit int) (*models.Channel, []models.Video, error) {
	f.calls = append(f.calls, ref)
	if err := f.failFor[ref]; err != nil {
		return nil, nil, err
	}
	videos := []models.Video{
		{ID: ref + "-1", Title: "How to Proof Dough Overnight", ViewCount: 1000, LikeCount: 60},
		{ID: ref + "-2", Title: "7 Bread Mistakes Beginners Make", ViewCount: 3000, LikeCount: 200},
	}
	return &models.Channel{ID: "UC-" + ref, Name: ref}, videos[:min(limit, len(videos))], nil
}

func (f *fakeFetcher) RefreshToken() error {
	f.refreshes++
	return nil
}

type fakeSender struct {
	digests []*models.DigestReport
	err     error
}

func (s *fakeSender) SendDigest(r *models.DigestReport) error {
	s.digests = append(s.digests, r)
	return s.err
}

type recorder struct {
	success  []scheduler.Metrics
	partial  []error
	critical []error
}

func (r *recorder) events() *scheduler.AgentEvents {
	return &scheduler.AgentEvents{
		OnSuccess:         func(m scheduler.Metrics, _ time.Duration) { r.success = append(r.success, m) },
		OnPartialFailure:  func(err error, _ time.Duration) { r.partial = append(r.partial, err) },
		OnCriticalFailure: func(err error, _ time.Duration) { r.critical = append(r.critical, err) },
	}
}

func newTestAgent(t *testing.T, channels []string, fetcher *fakeFetcher, sender *fakeSender) (*ChannelInsightsAgent, *storage.ReportCache) {
	t.Helper()
	cfg := &config.Config{Channels: channels}
	cfg.Analysis = config.AnalysisConfig{MaxVideos: 20, FetchVideos: 50, Concurrency: 2, HookDivisor: "categories"}

	cache, err := storage.NewReportCache(t.TempDir(), time.Hour)
	require.NoError(t, err)

	agent := NewChannelInsightsAgent(cfg, WithFetcher(fetcher), WithReportCache(cache), WithDigestSender(sender))
	require.NoError(t, agent.Initialize())
	return agent, cache
}

func TestRunOnceAnalyzesAndSendsDigest(t *testing.T) {
	fetcher := &fakeFetcher{}
	sender := &fakeSender{}
	agent, cache := newTestAgent(t, []string{"@breadlab", "@pastalab"}, fetcher, sender)
	rec := &recorder{}

	require.NoError(t, agent.RunOnce(context.Background(), rec.events()))

	assert.Equal(t, []string{"@breadlab", "@pastalab"}, fetcher.calls)
	assert.Equal(t, 1, fetcher.refreshes)
	require.Len(t, sender.digests, 1)
	assert.Len(t, sender.digests[0].Channels, 2)
	assert.Equal(t, 4, sender.digests[0].Total)

	require.Len(t, rec.success, 1)
	metrics := rec.success[0].(RunMetrics)
	assert.Equal(t, RunMetrics{ChannelsChecked: 2, ChannelsAnalyzed: 2, VideosAnalyzed: 4, EmailSent: true}, metrics)
	assert.Equal(t, "2/2 channels analyzed (0 cached, 0 failed), 4 videos, digest sent", metrics.GetSummary())

	report, ok := cache.Get("@BreadLab")
	require.True(t, ok)
	assert.Equal(t, "@breadlab", report.Channel.Name)
}

func TestRunOnceSkipsFreshReports(t *testing.T) {
	fetcher := &fakeFetcher{}
	sender := &fakeSender{}
	agent, cache := newTestAgent(t, []string{"@breadlab", "@pastalab"}, fetcher, sender)
	require.NoError(t, cache.Put("@breadlab", &models.ChannelReport{ID: "cached"}))

	rec := &recorder{}
	require.NoError(t, agent.RunOnce(context.Background(), rec.events()))

	assert.Equal(t, []string{"@pastalab"}, fetcher.calls)
	metrics := rec.success[0].(RunMetrics)
	assert.Equal(t, 1, metrics.ChannelsCached)
	assert.Equal(t, 1, metrics.ChannelsAnalyzed)
	require.Len(t, sender.digests, 1)
	assert.Len(t, sender.digests[0].Channels, 1)
}

func TestRunOnceNothingNewSendsNoDigest(t *testing.T) {
	fetcher := &fakeFetcher{}
	sender := &fakeSender{}
	agent, cache := newTestAgent(t, []string{"@breadlab"}, fetcher, sender)
	require.NoError(t, cache.Put("@breadlab", &models.ChannelReport{}))

	require.NoError(t, agent.RunOnce(context.Background(), nil))
	assert.Empty(t, fetcher.calls)
	assert.Empty(t, sender.digests)
}

func TestRunOncePartialFailures(t *testing.T) {
	fetcher := &fakeFetcher{failFor: map[string]error{"@gone": errors.New("channel not found")}}
	sender := &fakeSender{err: errors.New("smtp down")}
	agent, _ := newTestAgent(t, []string{"@gone", "@breadlab"}, fetcher, sender)
	rec := &recorder{}

	require.NoError(t, agent.RunOnce(context.Background(), rec.events()))

	require.Len(t, rec.partial, 2)
	assert.ErrorContains(t, rec.partial[0], "failed to fetch channel @gone")
	assert.ErrorContains(t, rec.partial[1], "failed to send digest")
	assert.Empty(t, rec.critical)

	metrics := rec.success[0].(RunMetrics)
	assert.Equal(t, 1, metrics.ChannelsFailed)
	assert.False(t, metrics.EmailSent)
}

func TestRunOnceAllChannelsFail(t *testing.T) {
	fetcher := &fakeFetcher{failFor: map[string]error{"@gone": errors.New("quota exceeded")}}
	agent, _ := newTestAgent(t, []string{"@gone"}, fetcher, &fakeSender{})
	rec := &recorder{}

	err := agent.RunOnce(context.Background(), rec.events())
	require.Error(t, err)
	assert.Len(t, rec.critical, 1)
	assert.Empty(t, rec.success)
}

func TestInitializeRequiresChannels(t *testing.T) {
	agent := NewChannelInsightsAgent(&config.Config{}, WithFetcher(&fakeFetcher{}))
	assert.ErrorContains(t, agent.Initialize(), "no channels configured")
}

func TestInitializeRequiresCredentials(t *testing.T) {
	agent := NewChannelInsightsAgent(&config.Config{Channels: []string{"@breadlab"}})
	assert.ErrorContains(t, agent.Initialize(), "YouTube API key or client ID is required")
}
