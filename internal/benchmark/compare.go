package benchmark

import "sort"

// Thresholds holds the change-percentage cutoffs that map a comparison to
// an indicator. All comparisons are strict.
type Thresholds struct {
	Improvement float64 // change at or below this is an improvement
	Warn        float64 // change above this is a warning
	Error       float64 // change above this is a regression failure
}

// DefaultThresholds returns the standard CI thresholds: improvements at
// -0.5% or better, warnings above +5%, errors above +10%.
func DefaultThresholds() Thresholds {
	return Thresholds{Improvement: -0.5, Warn: 5.0, Error: 10.0}
}

// Indicator maps a change percentage to its report symbol. Improvement is
// checked first so a more-negative value always wins over the positive-side
// checks.
func (t Thresholds) Indicator(changePct float64) string {
	switch {
	case changePct <= t.Improvement:
		return IndicatorImprovement
	case changePct > t.Error:
		return IndicatorError
	case changePct > t.Warn:
		return IndicatorWarning
	}
	return IndicatorNone
}

// Comparison is the outcome for a single benchmark name across the base
// and PR collections.
type Comparison struct {
	Name      string
	Base      *int64
	PR        *int64
	ChangePct *float64
	Indicator string
	Status    Status
}

// Compare produces one Comparison per name in the union of both
// collections, sorted by name. A benchmark present in both sides gets a
// change percentage and a threshold indicator; one-sided benchmarks are
// marked new or removed.
func Compare(base, pr Collection, th Thresholds) []Comparison {
	names := make([]string, 0, len(base)+len(pr))
	seen := make(map[string]bool, len(base)+len(pr))
	for name := range base {
		names = append(names, name)
		seen[name] = true
	}
	for name := range pr {
		if !seen[name] {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	comparisons := make([]Comparison, 0, len(names))
	for _, name := range names {
		baseVal, inBase := base[name]
		prVal, inPR := pr[name]

		c := Comparison{Name: name, Base: baseVal, PR: prVal}
		switch {
		case inBase && inPR:
			c.Status = StatusCompared
			if baseVal != nil && prVal != nil {
				pct := CalculateChange(*baseVal, *prVal)
				c.ChangePct = &pct
				c.Indicator = th.Indicator(pct)
			}
		case inPR:
			c.Status = StatusNew
			c.Indicator = IndicatorNew
		default:
			c.Status = StatusRemoved
			c.Indicator = IndicatorRemoved
		}
		comparisons = append(comparisons, c)
	}
	return comparisons
}

// CalculateChange returns the signed percentage change from base to pr.
// A zero base yields 0.0 rather than propagating a division by zero.
func CalculateChange(base, pr int64) float64 {
	if base == 0 {
		return 0.0
	}
	return float64(pr-base) / float64(base) * 100
}

// Summarize counts the comparisons above the warn threshold (regressions)
// and below the improvement threshold (improvements). A comparison without
// a change percentage counts as zero change, so it only registers when a
// threshold has been moved across zero.
func Summarize(comparisons []Comparison, th Thresholds) (regressions, improvements int) {
	for _, c := range comparisons {
		pct := 0.0
		if c.ChangePct != nil {
			pct = *c.ChangePct
		}
		if pct > th.Warn {
			regressions++
		}
		if pct < th.Improvement {
			improvements++
		}
	}
	return regressions, improvements
}
