package models

import "time"

// Report mirrors the JSON document the external analyzer prints: a map of
// repository name to its metrics. Missing keys decode to nil pointers and
// become absent sub-aggregates, never errors.
type Report struct {
	Repositories map[string]ReportRepository `json:"repositories"`
}

// ReportRepository is one repository entry inside a Report.
type ReportRepository struct {
	Duration    *DurationMetrics   `json:"duration,omitempty"`
	Throughput  *ThroughputMetrics `json:"throughput,omitempty"`
	Builds      *BuildMetrics      `json:"builds,omitempty"`
	MTTR        *float64           `json:"mttr,omitempty"`
	SuccessRate *float64           `json:"success_rate,omitempty"`
}

// NewCIMetricsFromReport converts an analyzer document into a CIMetrics
// snapshot stamped with the given collection time.
func NewCIMetricsFromReport(report *Report, ts time.Time) *CIMetrics {
	metrics := &CIMetrics{Timestamp: ts}
	if report == nil {
		return metrics
	}
	for name, repo := range report.Repositories {
		metrics.Repositories = append(metrics.Repositories, RepositoryMetrics{
			Repository:  name,
			Duration:    repo.Duration,
			Throughput:  repo.Throughput,
			Builds:      repo.Builds,
			MTTR:        repo.MTTR,
			SuccessRate: repo.SuccessRate,
			Timestamp:   ts,
		})
	}
	return metrics
}

// NewReport converts a CIMetrics snapshot back into the analyzer document
// shape, used when pushing a collected snapshot over HTTP.
func NewReport(metrics *CIMetrics) *Report {
	report := &Report{Repositories: make(map[string]ReportRepository)}
	if metrics == nil {
		return report
	}
	for _, repo := range metrics.Repositories {
		report.Repositories[repo.Repository] = ReportRepository{
			Duration:    repo.Duration,
			Throughput:  repo.Throughput,
			Builds:      repo.Builds,
			MTTR:        repo.MTTR,
			SuccessRate: repo.SuccessRate,
		}
	}
	return report
}
