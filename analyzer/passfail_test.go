package analyzer_test

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ZephyrDeng/gradebook-mcp/analyzer"
)

func TestPassFailPartition(t *testing.T) {
	tests := []struct {
		name       string
		roster     *analyzer.Roster
		threshold  float64
		wantPassed []string
		wantFailed []string
	}{
		{
			name:       "SampleRosterDefaultThreshold",
			roster:     sampleRoster(),
			threshold:  analyzer.DefaultPassThreshold,
			wantPassed: []string{"Alice", "Bob", "Carol", "Dave"},
			wantFailed: []string{},
		},
		{
			name:       "HigherThresholdKeepsRosterOrder",
			roster:     sampleRoster(),
			threshold:  80,
			wantPassed: []string{"Bob", "Dave"},
			wantFailed: []string{"Alice", "Carol"},
		},
		{
			name: "BoundaryIsInclusive",
			roster: analyzer.NewRoster(
				analyzer.Entry{Name: "edge", Mark: 40},
				analyzer.Entry{Name: "below", Mark: 39.99},
			),
			threshold:  40,
			wantPassed: []string{"edge"},
			wantFailed: []string{"below"},
		},
		{
			name:       "Empty",
			roster:     nil,
			threshold:  40,
			wantPassed: []string{},
			wantFailed: []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			passed, failed := analyzer.PassFailPartition(tc.roster, tc.threshold)
			if diff := cmp.Diff(tc.wantPassed, passed); diff != "" {
				t.Errorf("passed mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.wantFailed, failed); diff != "" {
				t.Errorf("failed mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPassFailPartitionCoversRoster(t *testing.T) {
	r := analyzer.NewRoster()
	for i := 0; i < 25; i++ {
		r.Set(string(rune('a'+i)), float64(i*4))
	}
	for _, threshold := range []float64{-10, 0, 40, 50.5, 96, 200} {
		passed, failed := analyzer.PassFailPartition(r, threshold)

		seen := make(map[string]bool)
		for _, name := range append(append([]string{}, passed...), failed...) {
			if seen[name] {
				t.Fatalf("threshold %v: %q appears in both sequences", threshold, name)
			}
			seen[name] = true
		}
		union := make([]string, 0, len(seen))
		for name := range seen {
			union = append(union, name)
		}
		names := r.Names()
		sort.Strings(union)
		sort.Strings(names)
		if diff := cmp.Diff(names, union); diff != "" {
			t.Errorf("threshold %v: union differs from roster (-roster +union):\n%s", threshold, diff)
		}
	}
}
