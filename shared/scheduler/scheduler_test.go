package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aref-vc/youtube-content-analyzer/shared/config"
)

type runSummary string

func (r runSummary) GetSummary() string { return string(r) }

type fakeAgent struct {
	runs    int
	partial error
	err     error
}

func (f *fakeAgent) Name() string      { return "fake" }
func (f *fakeAgent) Initialize() error { return nil }

func (f *fakeAgent) RunOnce(_ context.Context, events *AgentEvents) error {
	f.runs++
	if f.err != nil {
		return f.err
	}
	if f.partial != nil {
		events.OnPartialFailure(f.partial, time.Millisecond)
	}
	events.OnSuccess(runSummary("1 channel analyzed"), time.Millisecond)
	return nil
}

func TestRunOnceRecordsSuccess(t *testing.T) {
	agent := &fakeAgent{partial: errors.New("one channel skipped")}
	s := New(&config.Config{}, agent)

	require.NoError(t, s.RunOnce(context.Background()))
	assert.Equal(t, 1, agent.runs)
	assert.True(t, s.Monitor().IsHealthy())
	assert.Contains(t, s.Monitor().GetStatusSummary(), "1 channel analyzed")
}

func TestRunOnceRecordsCriticalFailure(t *testing.T) {
	agent := &fakeAgent{err: errors.New("quota exceeded")}
	s := New(&config.Config{}, agent)

	err := s.RunOnce(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "fake run failed: quota exceeded")
	assert.False(t, s.Monitor().IsHealthy())
	assert.Equal(t, 1, s.Monitor().Status().Failures)
}

func TestStartRejectsInvalidSchedule(t *testing.T) {
	cfg := &config.Config{Schedule: "not a schedule"}
	cfg.Server.HealthPort = 0

	err := New(cfg, &fakeAgent{}).Start(context.Background())
	assert.ErrorContains(t, err, "failed to add cron job")
}
