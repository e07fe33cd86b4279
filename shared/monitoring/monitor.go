package monitoring

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/aref-vc/youtube-content-analyzer/shared/logging"
)

// Monitor records the outcome of scheduled runs. It is shared between the
// scheduler and the health server, so all access is locked.
type Monitor struct {
	mu             sync.RWMutex
	lastRunSuccess bool
	lastRunTime    time.Time
	lastSummary    string
	runs           int
	failures       int
	logger         zerolog.Logger
	now            func() time.Time
}

func NewMonitor() *Monitor {
	return &Monitor{
		logger: logging.WithComponent("monitor"),
		now:    time.Now,
	}
}

func (m *Monitor) RecordSuccess(summary string, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastRunSuccess = true
	m.lastRunTime = m.now()
	m.lastSummary = summary
	m.runs++

	m.logger.Info().Str("summary", summary).Dur("duration", duration).Msg("run completed successfully")
}

// RecordPartialFailure logs a degraded run without changing health.
func (m *Monitor) RecordPartialFailure(err error, duration time.Duration) {
	m.logger.Warn().Err(err).Dur("duration", duration).Msg("partial failure")
}

func (m *Monitor) RecordCriticalFailure(err error, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastRunSuccess = false
	m.lastRunTime = m.now()
	m.lastSummary = err.Error()
	m.runs++
	m.failures++

	m.logger.Error().Err(err).Dur("duration", duration).Msg("critical failure")
}

// IsHealthy is true before the first run and after any successful one.
func (m *Monitor) IsHealthy() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.healthy()
}

func (m *Monitor) healthy() bool {
	if m.lastRunTime.IsZero() {
		return true
	}
	return m.lastRunSuccess
}

func (m *Monitor) GetStatusSummary() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.summary()
}

func (m *Monitor) summary() string {
	if m.lastRunTime.IsZero() {
		return "No runs yet"
	}

	if m.lastRunSuccess {
		return fmt.Sprintf("Last run: %s (%s)", m.lastRunTime.Format("Jan 2 15:04"), m.lastSummary)
	}
	return fmt.Sprintf("Last run failed: %s (%s)", m.lastRunTime.Format("Jan 2 15:04"), m.lastSummary)
}

// Status is the JSON form of the monitor state.
type Status struct {
	Healthy     bool      `json:"healthy"`
	LastRun     time.Time `json:"last_run,omitempty"`
	LastSummary string    `json:"last_summary,omitempty"`
	Runs        int       `json:"runs"`
	Failures    int       `json:"failures"`
	Summary     string    `json:"summary"`
}

func (m *Monitor) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Status{
		Healthy:     m.healthy(),
		LastRun:     m.lastRunTime,
		LastSummary: m.lastSummary,
		Runs:        m.runs,
		Failures:    m.failures,
		Summary:     m.summary(),
	}
}
