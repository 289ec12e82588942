package metrics_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/profilkantor/profile-api/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobMetricsExportsCountersAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewJobMetrics(reg)

	m.ObserveDuration("orphan-sweep", 250*time.Millisecond)
	m.IncSuccess("orphan-sweep")
	m.IncFailure("orphan-sweep")
	m.AddRemoved("kegiatan", 3)
	m.AddRemoved("kegiatan", 0)

	mfs, err := reg.Gather()
	require.NoError(t, err)

	got, err := counterValue(mfs, "job_success_total", "job", "orphan-sweep")
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	got, err = counterValue(mfs, "job_failure_total", "job", "orphan-sweep")
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	got, err = counterValue(mfs, "orphan_files_removed_total", "bucket", "kegiatan")
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)

	mf := findFamily(mfs, "job_duration_seconds")
	require.NotNil(t, mf)
	assert.Greater(t, mf.GetMetric()[0].GetHistogram().GetSampleSum(), 0.0)
}

func TestHTTPMetricsLabelsByRoute(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewHTTPMetrics(reg)

	m.Observe(http.MethodGet, "/api/kegiatan/{id}", http.StatusOK, 10*time.Millisecond)
	m.Observe(http.MethodGet, "/api/kegiatan/{id}", http.StatusOK, 10*time.Millisecond)
	m.Observe(http.MethodGet, "", http.StatusNotFound, time.Millisecond)

	mfs, err := reg.Gather()
	require.NoError(t, err)

	got, err := counterValue(mfs, "http_requests_total", "route", "/api/kegiatan/{id}")
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)

	got, err = counterValue(mfs, "http_requests_total", "route", "unknown")
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
}

func TestNilMetricsAreNoops(t *testing.T) {
	var jobs *metrics.JobMetrics
	var httpMetrics *metrics.HTTPMetrics

	assert.NotPanics(t, func() {
		jobs.IncSuccess("x")
		jobs.AddRemoved("kegiatan", 1)
		httpMetrics.Observe(http.MethodGet, "/", http.StatusOK, time.Second)
		metrics.NewJobMetrics(nil).IncFailure("x")
	})
}

func TestRegistryHandlerServesTextFormat(t *testing.T) {
	reg := metrics.NewRegistry()
	reg.Jobs.IncSuccess("orphan-sweep")

	rec := httptest.NewRecorder()
	reg.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `job_success_total{job="orphan-sweep"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}

func counterValue(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		for _, l := range metric.GetLabel() {
			if l.GetName() == label && l.GetValue() == value {
				return metric.GetCounter().GetValue(), nil
			}
		}
	}
	return 0, fmt.Errorf("metric %q missing label %s=%s", name, label, value)
}

func findFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}
