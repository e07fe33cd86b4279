package monitoring

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonitorHealthTransitions(t *testing.T) {
	m := NewMonitor()
	m.now = func() time.Time { return time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC) }

	assert.True(t, m.IsHealthy())
	assert.Equal(t, "No runs yet", m.GetStatusSummary())

	m.RecordCriticalFailure(errors.New("quota exceeded"), time.Second)
	assert.False(t, m.IsHealthy())
	assert.Equal(t, "Last run failed: Jun 2 09:30 (quota exceeded)", m.GetStatusSummary())

	m.RecordPartialFailure(errors.New("one channel failed"), time.Second)
	assert.False(t, m.IsHealthy(), "partial failures do not change health")

	m.RecordSuccess("2 channels analyzed", time.Second)
	assert.True(t, m.IsHealthy())
	assert.Equal(t, "Last run: Jun 2 09:30 (2 channels analyzed)", m.GetStatusSummary())

	status := m.Status()
	assert.Equal(t, 2, status.Runs)
	assert.Equal(t, 1, status.Failures)
}

func TestHealthServerHandlers(t *testing.T) {
	m := NewMonitor()
	h := NewHealthServer(m, "")
	assert.Equal(t, "8080", h.port)

	srv := httptest.NewServer(h.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	m.RecordCriticalFailure(errors.New("boom"), 0)

	resp, err = http.Get(srv.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/status")
	require.NoError(t, err)
	defer resp.Body.Close()

	var status Status
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.False(t, status.Healthy)
	assert.Equal(t, 1, status.Failures)
}
