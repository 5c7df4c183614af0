package benchmark

import "fmt"

// Validate checks soft invariants on parsed results and returns advisory
// warnings. Violations never fail a parse; raw benchmark output is noisy
// and a partial report is still useful.
func Validate(results []Result) []string {
	var warnings []string
	for _, r := range results {
		if f, m, s := r.Fastest.Value, r.Median.Value, r.Slowest.Value; f != nil && m != nil && s != nil {
			if *f > *m || *m > *s {
				warnings = append(warnings, fmt.Sprintf(
					"%s: timing order violated (fastest=%d median=%d slowest=%d)",
					r.Name, *f, *m, *s))
			}
		}
		if r.Samples != nil && *r.Samples <= 0 {
			warnings = append(warnings, fmt.Sprintf("%s: samples must be positive, got %d", r.Name, *r.Samples))
		}
		if r.Iters != nil && *r.Iters <= 0 {
			warnings = append(warnings, fmt.Sprintf("%s: iters must be positive, got %d", r.Name, *r.Iters))
		}
	}
	return warnings
}
