package analyzer_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ZephyrDeng/gradebook-mcp/analyzer"
)

func TestRosterMergeKeepsFirstPosition(t *testing.T) {
	r := analyzer.NewRoster(
		analyzer.Entry{Name: "Alice", Mark: 78},
		analyzer.Entry{Name: "Bob", Mark: 92},
	)
	r.Merge(analyzer.NewRoster(
		analyzer.Entry{Name: "Carol", Mark: 45},
		analyzer.Entry{Name: "Alice", Mark: 81},
	))

	want := []analyzer.Entry{
		{Name: "Alice", Mark: 81},
		{Name: "Bob", Mark: 92},
		{Name: "Carol", Mark: 45},
	}
	if diff := cmp.Diff(want, r.Entries()); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
	if mark, ok := r.Mark("Alice"); !ok || mark != 81 {
		t.Errorf("Mark(Alice) = (%v, %v), want (81, true)", mark, ok)
	}
	if _, ok := r.Mark("Nobody"); ok {
		t.Errorf("Mark(Nobody) reported present")
	}
}

func TestRosterEntriesIsACopy(t *testing.T) {
	r := sampleRoster()
	entries := r.Entries()
	entries[0].Mark = -1

	if mark, _ := r.Mark("Alice"); mark != 78 {
		t.Errorf("mutating Entries() changed roster: Alice = %v", mark)
	}
}

func TestNilRoster(t *testing.T) {
	var r *analyzer.Roster
	if r.Len() != 0 {
		t.Errorf("Len = %d, want 0", r.Len())
	}
	if len(r.Names()) != 0 || len(r.Marks()) != 0 || len(r.Entries()) != 0 {
		t.Errorf("nil roster returned data")
	}

	// zero value is usable too
	var zero analyzer.Roster
	zero.Set("x", 1)
	zero.Merge(nil)
	if zero.Len() != 1 {
		t.Errorf("zero-value roster Len = %d, want 1", zero.Len())
	}
}
