package models

import (
	"encoding/json"
	"time"
)

// DurationMetrics describes pipeline run durations in minutes.
type DurationMetrics struct {
	Average float64 `json:"average"`
	Median  float64 `json:"median"`
	P95     float64 `json:"p95"`
}

// ThroughputMetrics describes how many pipeline runs complete per period.
type ThroughputMetrics struct {
	Daily  float64 `json:"daily"`
	Weekly float64 `json:"weekly"`
}

// BuildMetrics describes build outcome counts for a repository.
type BuildMetrics struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

// SuccessRate returns the ratio of successful builds to total builds.
// A repository with no builds has a success rate of 0.
func (b BuildMetrics) SuccessRate() float64 {
	if b.Total == 0 {
		return 0.0
	}
	return float64(b.Successful) / float64(b.Total)
}

// MarshalJSON includes the derived success_rate alongside the raw counts.
func (b BuildMetrics) MarshalJSON() ([]byte, error) {
	type alias BuildMetrics
	return json.Marshal(struct {
		alias
		SuccessRate float64 `json:"success_rate"`
	}{alias(b), b.SuccessRate()})
}

// RepositoryMetrics is one per-repository snapshot from a single collection
// run. Sub-aggregates are nil when the run produced no data for them.
type RepositoryMetrics struct {
	Repository  string             `json:"repository"`
	Duration    *DurationMetrics   `json:"duration,omitempty"`
	Throughput  *ThroughputMetrics `json:"throughput,omitempty"`
	Builds      *BuildMetrics      `json:"builds,omitempty"`
	MTTR        *float64           `json:"mttr,omitempty"`
	SuccessRate *float64           `json:"success_rate,omitempty"`
	Timestamp   time.Time          `json:"timestamp"`
}

// CIMetrics is a complete collection-run result across all repositories.
type CIMetrics struct {
	Repositories []RepositoryMetrics `json:"repositories"`
	Timestamp    time.Time           `json:"timestamp"`
}

// MetricRow is the flat persisted unit: one named numeric value for a
// repository at a point in time. ID is storage bookkeeping only and is
// never exposed through the API.
type MetricRow struct {
	ID         int64     `json:"-" db:"id"`
	Repository string    `json:"repository" db:"repository"`
	MetricName string    `json:"metric_name" db:"metric_name"`
	Value      float64   `json:"value" db:"value"`
	Timestamp  time.Time `json:"timestamp" db:"timestamp"`
}
