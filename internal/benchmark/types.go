package benchmark

import "fmt"

// TimeValue is a single timing measurement normalized to nanoseconds.
// Value is nil when the source text could not be parsed.
type TimeValue struct {
	Value *int64 `json:"value"`
	Unit  string `json:"unit"`
}

// NewTimeValue wraps ns in a normalized TimeValue.
func NewTimeValue(ns int64) TimeValue {
	return TimeValue{Value: &ns, Unit: "ns"}
}

// Result represents a single measured benchmark. The name is hierarchical,
// slash-separated: group[/subgroup]/leaf. Results are constructed once by
// the parser, serialized to JSON and never mutated afterward.
type Result struct {
	Name    string    `json:"name"`
	Fastest TimeValue `json:"fastest"`
	Slowest TimeValue `json:"slowest"`
	Median  TimeValue `json:"median"`
	Mean    TimeValue `json:"mean"`
	Samples *int64    `json:"samples"`
	Iters   *int64    `json:"iters"`
}

// Metric selects which timing statistic a comparison reads.
type Metric string

const (
	MetricFastest Metric = "fastest"
	MetricSlowest Metric = "slowest"
	MetricMedian  Metric = "median"
	MetricMean    Metric = "mean"
)

// ParseMetric validates a metric name from the CLI or config.
func ParseMetric(s string) (Metric, error) {
	switch Metric(s) {
	case MetricFastest, MetricSlowest, MetricMedian, MetricMean:
		return Metric(s), nil
	}
	return "", fmt.Errorf("unknown metric %q (want fastest, slowest, median or mean)", s)
}

// Status classifies a comparison outcome.
type Status int

const (
	// StatusCompared means the benchmark exists in both collections.
	StatusCompared Status = iota
	// StatusNew means the benchmark exists only in the PR collection.
	StatusNew
	// StatusRemoved means the benchmark exists only in the base collection.
	StatusRemoved
)

func (s Status) String() string {
	switch s {
	case StatusCompared:
		return "compared"
	case StatusNew:
		return "new"
	case StatusRemoved:
		return "removed"
	}
	return "unknown"
}

// Indicator symbols attached to comparisons in the rendered report.
const (
	IndicatorImprovement = "✅"
	IndicatorWarning     = "⚠️"
	IndicatorError       = "❌"
	IndicatorNew         = "🆕"
	IndicatorRemoved     = "🗑️"
	IndicatorNone        = ""
)
