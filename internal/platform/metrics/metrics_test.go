package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestManager_ObserveUpstream(t *testing.T) {
	t.Parallel()

	m := NewManager()
	m.ObserveUpstream("/standings", "200", 120*time.Millisecond)
	m.ObserveUpstream("/standings", "200", 80*time.Millisecond)
	m.ObserveUpstream("/standings", "rejected", 0)

	require.Equal(t, 2.0, testutil.ToFloat64(m.upstreamRequests.WithLabelValues("/standings", "200")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.upstreamRequests.WithLabelValues("/standings", "rejected")))
	require.Equal(t, 1, testutil.CollectAndCount(m.upstreamDuration))
}

func TestManager_Handler(t *testing.T) {
	t.Parallel()

	sessions := 3.0
	m := NewManager(WithSessionCount(func() float64 { return sessions }))
	m.ObserveHTTP(http.MethodGet, "/v1/leagues", http.StatusOK, 5*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	text := string(body)
	require.True(t, strings.Contains(text, `soccer_tracker_http_requests_total{method="GET",route="/v1/leagues",status="200"} 1`), text)
	require.True(t, strings.Contains(text, "soccer_tracker_active_sessions 3"), text)
}

func TestManager_NilIsNoop(t *testing.T) {
	t.Parallel()

	var m *Manager
	m.ObserveUpstream("/standings", "200", time.Second)
	m.ObserveHTTP(http.MethodGet, "/", http.StatusOK, time.Second)
}
