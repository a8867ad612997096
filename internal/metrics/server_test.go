package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vornastek/ecsphys/ecscore"
	"github.com/vornastek/ecsphys/internal/metrics"
	"github.com/vornastek/ecsphys/scheduler"
	"github.com/vornastek/ecsphys/world"
)

func TestServerHealthReportsOK(t *testing.T) {
	w := world.New(ecscore.NewRegistry())
	s := scheduler.New(w)
	require.NoError(t, s.Build())

	srv := metrics.NewServer(":0", s.Profiler())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestServerMetricsExposesSystemSamples(t *testing.T) {
	w := world.New(ecscore.NewRegistry())
	s := scheduler.New(w)
	require.NoError(t, s.AddSystem(scheduler.SystemConfig{
		Name: "noop", Stage: scheduler.StageUpdate,
		Fn: func(*scheduler.Context) error { return nil },
	}))
	require.NoError(t, s.Build())
	require.NoError(t, s.Tick(1))

	srv := metrics.NewServer(":0", s.Profiler())

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ecsphys_system_runs_total")
	assert.Contains(t, rec.Body.String(), `system="noop"`)
}
