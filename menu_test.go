package main

import (
	"bytes"
	"strings"
	"testing"
)

func runSession(t *testing.T, cfg Config, input string) string {
	t.Helper()
	var out bytes.Buffer
	if err := newSession(cfg, strings.NewReader(input), &out).run(); err != nil {
		t.Fatalf("session.run: %v", err)
	}
	return out.String()
}

func TestMenuFullSession(t *testing.T) {
	input := strings.Join([]string{
		"1", "4", "Alice", "78", "Bob", "92", "Carol", "45", "Dave", "92",
		"2",
		"3",
		"4",
		"5",
		"9",
		"6",
	}, "\n") + "\n"

	out := runSession(t, defaultConfig(), input)

	for _, expected := range []string{
		"========== GradeBook Menu ==========",
		"4. Show pass/fail lists (pass=40)",
		"Current marks: Alice=78.00, Bob=92.00, Carol=45.00, Dave=92.00",
		"Average : 76.75",
		"Median : 85.00",
		"Highest : 92.00 (Bob)",
		"Lowest : 45.00 (Carol)",
		"A : 2",
		"F : 1",
		"Passed (count 4): Alice, Bob, Carol, Dave",
		"Failed (count 0): None",
		"Invalid option. Please choose a number from 1 to 6.",
		"Goodbye!",
	} {
		if !strings.Contains(out, expected) {
			t.Errorf("Expected output to contain %q.\nOutput: %s", expected, out)
		}
	}
}

func TestMenuMergesAcrossEntries(t *testing.T) {
	input := strings.Join([]string{
		"1", "2", "Alice", "78", "Bob", "92",
		"1", "2", "Carol", "30", "Alice", "85",
		"5",
		"6",
	}, "\n") + "\n"

	out := runSession(t, defaultConfig(), input)

	if !strings.Contains(out, "Current marks: Alice=85.00, Bob=92.00, Carol=30.00") {
		t.Errorf("Expected merged roster with Alice updated in place.\nOutput: %s", out)
	}
	aliceRow := strings.Index(out, "Alice                 85.00")
	carolRow := strings.Index(out, "Carol                 30.00")
	if aliceRow < 0 || carolRow < 0 || aliceRow > carolRow {
		t.Errorf("Expected table rows in first-insertion order.\nOutput: %s", out)
	}
}

func TestMenuEmptyRosterMessages(t *testing.T) {
	out := runSession(t, defaultConfig(), "3\n5\n6\n")

	for _, expected := range []string{"No data to grade yet.", "No records to display yet. Please add students first."} {
		if !strings.Contains(out, expected) {
			t.Errorf("Expected output to contain %q.\nOutput: %s", expected, out)
		}
	}
}

func TestMenuUsesConfiguredThreshold(t *testing.T) {
	cfg := defaultConfig()
	cfg.PassThreshold = 80
	out := runSession(t, cfg, "1\n2\nAlice\n78\nBob\n92\n4\n6\n")

	for _, expected := range []string{"Pass if >= 80.0", "Passed (count 1): Bob", "Failed (count 1): Alice"} {
		if !strings.Contains(out, expected) {
			t.Errorf("Expected output to contain %q.\nOutput: %s", expected, out)
		}
	}
}

func TestMenuShowsLargeThresholdInFixedNotation(t *testing.T) {
	cfg := defaultConfig()
	cfg.PassThreshold = 1e6
	out := runSession(t, cfg, "1\n1\nAlice\n78\n4\n6\n")

	for _, expected := range []string{"4. Show pass/fail lists (pass=1000000)", "Pass if >= 1000000.0)", "Failed (count 1): Alice"} {
		if !strings.Contains(out, expected) {
			t.Errorf("Expected output to contain %q.\nOutput: %s", expected, out)
		}
	}
}

func TestMenuRepromptsAfterOverlongChoice(t *testing.T) {
	out := runSession(t, defaultConfig(), strings.Repeat("7", 128*1024)+"\n6\n")

	for _, expected := range []string{"Invalid option. Please choose a number from 1 to 6.", "Goodbye!"} {
		if !strings.Contains(out, expected) {
			t.Errorf("Expected output to contain %q.\nOutput: %s", expected, out[len(out)-min(len(out), 512):])
		}
	}
}

func TestMenuEndsOnEOF(t *testing.T) {
	out := runSession(t, defaultConfig(), "2\n")
	if !strings.Contains(out, "Goodbye!") {
		t.Errorf("Expected goodbye on EOF.\nOutput: %s", out)
	}
}
