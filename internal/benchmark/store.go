package benchmark

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// The JSON result file is the contract between the parse and compare CI
// steps. Writing is tolerant of absent values (they serialize as null);
// loading for comparison is strict, because a malformed file means a bug in
// the producing step and should fail loudly rather than be skipped over.

// SaveResults writes results as an indented JSON array to path, creating
// parent directories as needed.
func SaveResults(path string, results []Result) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	if results == nil {
		results = []Result{}
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// WriteResults streams results as an indented JSON array to w.
func WriteResults(w io.Writer, results []Result) error {
	if results == nil {
		results = []Result{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

// Collection maps benchmark name to the value of a single chosen metric in
// nanoseconds (nil when the metric value is null). Duplicate names in the
// source file resolve last-write-wins.
type Collection map[string]*int64

// LoadCollection reads a result file and extracts the given metric for
// every entry. Any entry missing "name", the metric object, or its "value"
// key rejects the entire file: the error identifies the offending entry and
// file. A present-but-null value is legal and loads as absent.
func LoadCollection(path string, metric Metric) (Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var entries []map[string]json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%s: malformed JSON: %w", path, err)
	}

	coll := make(Collection, len(entries))
	for i, entry := range entries {
		nameRaw, ok := entry["name"]
		if !ok {
			return nil, fmt.Errorf("%s: entry %d: missing \"name\"", path, i)
		}
		var name string
		if err := json.Unmarshal(nameRaw, &name); err != nil {
			return nil, fmt.Errorf("%s: entry %d: invalid \"name\": %w", path, i, err)
		}

		metricRaw, ok := entry[string(metric)]
		if !ok {
			return nil, fmt.Errorf("%s: benchmark %q: missing %q metric", path, name, metric)
		}
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(metricRaw, &fields); err != nil {
			return nil, fmt.Errorf("%s: benchmark %q: invalid %q metric: %w", path, name, metric, err)
		}
		valueRaw, ok := fields["value"]
		if !ok {
			return nil, fmt.Errorf("%s: benchmark %q: missing \"value\" under %q", path, name, metric)
		}
		var value *int64
		if err := json.Unmarshal(valueRaw, &value); err != nil {
			return nil, fmt.Errorf("%s: benchmark %q: invalid \"value\" under %q: %w", path, name, metric, err)
		}

		coll[name] = value
	}
	return coll, nil
}
