package models

// Metric name vocabulary. These are the only names the repository writes
// and the only names reconstruction recognizes; rows with any other name
// are ignored when rebuilding aggregates.
const (
	NameDurationAverage  = "duration_average"
	NameDurationMedian   = "duration_median"
	NameDurationP95      = "duration_p95"
	NameThroughputDaily  = "throughput_daily"
	NameThroughputWeekly = "throughput_weekly"
	NameBuildsTotal      = "builds_total"
	NameBuildsSuccessful = "builds_successful"
	NameBuildsFailed     = "builds_failed"
	NameMTTR             = "mttr"
	NameSuccessRate      = "success_rate"
)

// AggregateKind identifies which sub-aggregate a metric name belongs to.
type AggregateKind int

// Sub-aggregate kinds.
const (
	KindDuration AggregateKind = iota
	KindThroughput
	KindBuilds
	KindMTTR
	KindSuccessRate
)

// metricKinds is the single source of truth mapping each vocabulary name
// to its aggregate kind.
var metricKinds = map[string]AggregateKind{
	NameDurationAverage:  KindDuration,
	NameDurationMedian:   KindDuration,
	NameDurationP95:      KindDuration,
	NameThroughputDaily:  KindThroughput,
	NameThroughputWeekly: KindThroughput,
	NameBuildsTotal:      KindBuilds,
	NameBuildsSuccessful: KindBuilds,
	NameBuildsFailed:     KindBuilds,
	NameMTTR:             KindMTTR,
	NameSuccessRate:      KindSuccessRate,
}

// KindOf returns the aggregate kind for a metric name. The second return
// value is false for names outside the vocabulary.
func KindOf(name string) (AggregateKind, bool) {
	kind, ok := metricKinds[name]
	return kind, ok
}

// MetricNames returns the full vocabulary in stable order.
func MetricNames() []string {
	return []string{
		NameDurationAverage,
		NameDurationMedian,
		NameDurationP95,
		NameThroughputDaily,
		NameThroughputWeekly,
		NameBuildsTotal,
		NameBuildsSuccessful,
		NameBuildsFailed,
		NameMTTR,
		NameSuccessRate,
	}
}
