package testutil

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var traceLine = regexp.MustCompile(`(?m)^Trace of (exploration|unexploring)(?: \(([a-z-]+)(, again)?\))?: \[(.*)\]$`)

// TraceRecord is one trace printed by a run.
type TraceRecord struct {
	// Kind is "exploration" or "unexploring".
	Kind     string
	Strategy string
	Again    bool
	Labels   []string
}

// Traces extracts every printed trace from output, in print order.
func Traces(t *testing.T, output string) []TraceRecord {
	t.Helper()

	var records []TraceRecord
	for _, m := range traceLine.FindAllStringSubmatch(output, -1) {
		records = append(records, TraceRecord{
			Kind:     m[1],
			Strategy: m[2],
			Again:    m[3] != "",
			Labels:   parseLabels(t, m[4]),
		})
	}
	return records
}

func parseLabels(t *testing.T, list string) []string {
	t.Helper()
	if list == "" {
		return []string{}
	}
	parts := strings.Split(list, ", ")
	labels := make([]string, len(parts))
	for i, p := range parts {
		label, err := strconv.Unquote(p)
		require.NoError(t, err, "trace item %q is not a quoted label", p)
		labels[i] = label
	}
	return labels
}

// AssertFirstTrace checks the first exploration trace of a run.
func AssertFirstTrace(t *testing.T, result *HarnessResult, want ...string) {
	t.Helper()
	require.NoError(t, result.Err)

	traces := Traces(t, result.Output)
	require.NotEmpty(t, traces, "no trace found in output:\n%s", result.Output)
	if diff := cmp.Diff(want, traces[0].Labels); diff != "" {
		t.Errorf("trace mismatch (-want +got):\n%s", diff)
	}
}
