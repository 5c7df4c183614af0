package benchmark

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// RenderMarkdown renders comparisons as a deterministic markdown report,
// grouped by the leading segment of each benchmark name.
func RenderMarkdown(comparisons []Comparison, title, subtitle string, th Thresholds) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", title)
	if subtitle != "" {
		fmt.Fprintf(&sb, "<sub>%s</sub>\n\n", subtitle)
	}

	if len(comparisons) == 0 {
		sb.WriteString("_No benchmark results to report._\n")
		return sb.String()
	}

	regressions, improvements := Summarize(comparisons, th)
	if regressions > 0 {
		fmt.Fprintf(&sb, "%s **%d benchmark(s) regressed** (change > %+.1f%%)\n\n",
			IndicatorWarning, regressions, th.Warn)
	}
	if improvements > 0 {
		fmt.Fprintf(&sb, "%s **%d benchmark(s) improved** (change < %+.1f%%)\n\n",
			IndicatorImprovement, improvements, th.Improvement)
	}

	groups := make(map[string][]Comparison)
	var keys []string
	for _, c := range comparisons {
		key := groupKey(c.Name)
		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], c)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Fprintf(&sb, "## %s\n\n", headingFor(key))
		sb.WriteString("| Benchmark | Base | PR | Change |\n")
		sb.WriteString("|---|---|---|---|\n")
		for _, c := range groups[key] {
			fmt.Fprintf(&sb, "| `%s` | %s | %s | %s |\n",
				displayName(c.Name), FormatTime(c.Base), FormatTime(c.PR), changeCell(c))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func changeCell(c Comparison) string {
	if c.ChangePct == nil {
		return c.Indicator
	}
	cell := fmt.Sprintf("%+.1f%%", *c.ChangePct)
	if c.Indicator != IndicatorNone {
		cell += " " + c.Indicator
	}
	return cell
}

// groupKey is the text before the first slash, or the whole name.
func groupKey(name string) string {
	if i := strings.IndexByte(name, '/'); i >= 0 {
		return name[:i]
	}
	return name
}

// displayName strips the leading group segment.
func displayName(name string) string {
	if i := strings.IndexByte(name, '/'); i >= 0 {
		return name[i+1:]
	}
	return name
}

func headingFor(key string) string {
	return titleCase(strings.ReplaceAll(key, "_", " "))
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(strings.ToLower(w))
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// FormatTime renders nanoseconds with the largest unit the magnitude
// supports: seconds at 1e9, milliseconds at 1e6, microseconds at 1e3, raw
// nanoseconds below that. Sub-second units get 3 decimal places; signs are
// preserved.
func FormatTime(ns *int64) string {
	if ns == nil {
		return "N/A"
	}
	v := *ns
	if v == 0 {
		return "0 ns"
	}
	abs := v
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= 1_000_000_000:
		return fmt.Sprintf("%.3f s", float64(v)/1e9)
	case abs >= 1_000_000:
		return fmt.Sprintf("%.3f ms", float64(v)/1e6)
	case abs >= 1_000:
		return fmt.Sprintf("%.3f µs", float64(v)/1e3)
	}
	return fmt.Sprintf("%d ns", v)
}
