package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMetricsSuccessRate(t *testing.T) {
	tests := []struct {
		name   string
		builds BuildMetrics
		want   float64
	}{
		{"all successful", BuildMetrics{Total: 10, Successful: 10, Failed: 0}, 1.0},
		{"partial", BuildMetrics{Total: 100, Successful: 95, Failed: 5}, 0.95},
		{"none successful", BuildMetrics{Total: 4, Successful: 0, Failed: 4}, 0.0},
		{"zero total avoids division by zero", BuildMetrics{Total: 0}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.builds.SuccessRate(), 1e-9)
		})
	}
}

func TestBuildMetricsJSONIncludesSuccessRate(t *testing.T) {
	raw, err := json.Marshal(BuildMetrics{Total: 100, Successful: 95, Failed: 5})
	require.NoError(t, err)

	var decoded map[string]float64
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.InDelta(t, 0.95, decoded["success_rate"], 1e-9)
	assert.Equal(t, float64(100), decoded["total"])
}

func TestRepositoryMetricsJSONOmitsAbsentAggregates(t *testing.T) {
	raw, err := json.Marshal(RepositoryMetrics{
		Repository: "org/repo",
		Duration:   &DurationMetrics{Average: 1, Median: 2, P95: 3},
		Timestamp:  time.Now(),
	})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "duration")
	assert.NotContains(t, decoded, "throughput")
	assert.NotContains(t, decoded, "builds")
	assert.NotContains(t, decoded, "mttr")
}

func TestNewCIMetricsFromReport(t *testing.T) {
	raw := []byte(`{
		"repositories": {
			"org/repoA": {
				"duration": {"average": 120.5, "median": 110.0, "p95": 180.0},
				"throughput": {"daily": 12.0, "weekly": 60.0},
				"builds": {"total": 100, "successful": 95, "failed": 5},
				"mttr": 4.2,
				"success_rate": 0.95
			},
			"org/repoB": {
				"duration": {"average": 10.0, "median": 9.0, "p95": 20.0}
			}
		}
	}`)

	var report Report
	require.NoError(t, json.Unmarshal(raw, &report))

	ts := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	metrics := NewCIMetricsFromReport(&report, ts)
	require.Len(t, metrics.Repositories, 2)
	assert.Equal(t, ts, metrics.Timestamp)

	byName := make(map[string]RepositoryMetrics)
	for _, repo := range metrics.Repositories {
		byName[repo.Repository] = repo
	}

	full := byName["org/repoA"]
	require.NotNil(t, full.Duration)
	assert.InDelta(t, 120.5, full.Duration.Average, 1e-9)
	require.NotNil(t, full.Builds)
	assert.Equal(t, 100, full.Builds.Total)
	require.NotNil(t, full.MTTR)
	assert.InDelta(t, 4.2, *full.MTTR, 1e-9)
	assert.Equal(t, ts, full.Timestamp)

	// Missing keys become absent sub-aggregates, not errors.
	partial := byName["org/repoB"]
	require.NotNil(t, partial.Duration)
	assert.Nil(t, partial.Throughput)
	assert.Nil(t, partial.Builds)
	assert.Nil(t, partial.MTTR)
	assert.Nil(t, partial.SuccessRate)
}

func TestNewCIMetricsFromNilReport(t *testing.T) {
	metrics := NewCIMetricsFromReport(nil, time.Now())
	assert.Empty(t, metrics.Repositories)
}

func TestNewReportRoundTrip(t *testing.T) {
	mttr := 3.5
	rate := 0.9
	original := &CIMetrics{
		Repositories: []RepositoryMetrics{{
			Repository:  "org/repo",
			Duration:    &DurationMetrics{Average: 1, Median: 2, P95: 3},
			Throughput:  &ThroughputMetrics{Daily: 4, Weekly: 5},
			Builds:      &BuildMetrics{Total: 10, Successful: 9, Failed: 1},
			MTTR:        &mttr,
			SuccessRate: &rate,
		}},
		Timestamp: time.Now(),
	}

	report := NewReport(original)
	require.Contains(t, report.Repositories, "org/repo")

	back := NewCIMetricsFromReport(report, original.Timestamp)
	require.Len(t, back.Repositories, 1)
	assert.Equal(t, original.Repositories[0].Duration, back.Repositories[0].Duration)
	assert.Equal(t, original.Repositories[0].Builds, back.Repositories[0].Builds)
	assert.Equal(t, original.Repositories[0].MTTR, back.Repositories[0].MTTR)
}

func TestKindOf(t *testing.T) {
	for _, name := range MetricNames() {
		_, ok := KindOf(name)
		assert.True(t, ok, name)
	}

	kind, ok := KindOf(NameDurationP95)
	require.True(t, ok)
	assert.Equal(t, KindDuration, kind)

	_, ok = KindOf("deploy_frequency")
	assert.False(t, ok)
}
