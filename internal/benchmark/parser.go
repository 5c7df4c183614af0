package benchmark

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// Divan prints benchmark tables as box-drawing trees:
//
//	Timer precision: 20 ns
//	decode              fastest       │ slowest       │ median        │ mean          │ samples │ iters
//	├─ decode_binary    1.816 ms      │ 2.343 ms      │ 1.868 ms      │ 1.883 ms      │ 100     │ 100
//	├─ small                          │               │               │               │         │
//	│  ├─ one_byte      4.916 ns      │ 17.99 ns      │ 4.98 ns       │ 5.274 ns      │ 100     │ 1600
//	│  ╰─ two_bytes     9.17 ns       │ 36.49 ns      │ 9.342 ns      │ 9.705 ns      │ 100     │ 800
//	╰─ decode_ticks     2.381 ms      │ 2.798 ms      │ 2.427 ms      │ 2.454 ms      │ 100     │ 100
//
// There are no explicit structural markers beyond the glyphs and column
// counts, so structure is inferred heuristically and ragged or malformed
// rows are dropped rather than failing the whole parse.

var (
	branchRe    = regexp.MustCompile(`^[├└╰]─+\s*(\S+)\s*(.*)$`)
	timeValueRe = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?)\s*(ns|µs|us|ms|s)$`)
)

var unitFactors = map[string]float64{
	"ns": 1,
	"µs": 1_000,
	"us": 1_000,
	"ms": 1_000_000,
	"s":  1_000_000_000,
}

// timerPrecisionPrefix marks divan's diagnostic preamble line, which must
// not be mistaken for a group label.
const timerPrecisionPrefix = "Timer precision"

// ParseTree reads divan tree-table output and returns the benchmarks it
// contains, in input order. It never fails: lines that do not match the
// expected shape are skipped and unparsable numeric fields become absent
// values.
func ParseTree(r io.Reader) []Result {
	var results []Result
	group, subgroup := "", ""

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()

		// Table header. Checking for the column words anywhere in the
		// line is a known fragility: a benchmark named after them would
		// misfire. Divan emits the header once per table, so the damage
		// stays local.
		if strings.Contains(line, "fastest") &&
			strings.Contains(line, "slowest") &&
			strings.Contains(line, "median") {
			// A header with no leading group token keeps the previous
			// group in scope.
			if fields := strings.Fields(line); len(fields) > 0 && fields[0] != "fastest" {
				group = fields[0]
				subgroup = ""
			}
			continue
		}

		if !startsWithTreeGlyph(line) {
			if strings.HasPrefix(line, timerPrecisionPrefix) {
				continue
			}
			// Possibly a bare group label. A line whose second column
			// holds a time value is too table-like to be one.
			cols := strings.Split(line, "│")
			if len(cols) == 1 || parseTimeValue(cols[1]).Value == nil {
				if fields := strings.Fields(line); len(fields) > 0 {
					group = fields[0]
					subgroup = ""
				}
			}
			continue
		}

		// A top-level entry opens a fresh subgroup scope.
		nested := strings.HasPrefix(line, "│")
		if !nested {
			subgroup = ""
		}

		if res, ok := parseDataLine(line, group, &subgroup); ok {
			results = append(results, res)
		}
	}
	return results
}

// parseDataLine parses a single tree row. It returns ok=false when the row
// is ragged, is a subgroup header (in which case subgroup is updated), or
// carries no branch token.
func parseDataLine(line, group string, subgroup *string) (Result, bool) {
	m := branchRe.FindStringSubmatch(strings.TrimLeft(line, "│ \t"))
	if m == nil {
		return Result{}, false
	}
	leaf, rest := m[1], m[2]

	cols := strings.Split(rest, "│")
	if len(cols) < 6 {
		return Result{}, false
	}

	res := Result{
		Fastest: parseTimeValue(cols[0]),
		Slowest: parseTimeValue(cols[1]),
		Median:  parseTimeValue(cols[2]),
		Mean:    parseTimeValue(cols[3]),
		Samples: parseCount(cols[4]),
		Iters:   parseCount(cols[5]),
	}

	// Rows without a mean are subgroup headers, not measurements.
	if res.Mean.Value == nil {
		*subgroup = leaf
		return Result{}, false
	}

	res.Name = joinName(group, *subgroup, leaf)
	return res, true
}

// parseTimeValue parses "<number><optional space><unit>" into integer
// nanoseconds, truncating fractional nanoseconds. Anything else yields an
// absent value.
func parseTimeValue(s string) TimeValue {
	m := timeValueRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return TimeValue{Unit: "ns"}
	}
	f, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return TimeValue{Unit: "ns"}
	}
	return NewTimeValue(int64(f * unitFactors[m[2]]))
}

func parseCount(s string) *int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

func startsWithTreeGlyph(line string) bool {
	for _, r := range line {
		switch r {
		case '├', '└', '╰', '│', '─':
			return true
		}
		return false
	}
	return false
}

func joinName(group, subgroup, leaf string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{group, subgroup, leaf} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "/")
}
