package framework

import (
	"strings"
	"time"
)

type Results struct {
	Tests     []TestResult
	Failures  []TestResult
	StartTime time.Time
	EndTime   time.Time
}

type TestResult struct {
	TestID   TestID
	Errors   []error
	Failed   bool
	Skipped  bool
	Duration time.Duration
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// Passed returns the number of tests that ran to completion without failing.
func (r Results) Passed() int {
	n := 0
	for _, t := range r.Tests {
		if !t.Skipped {
			n++
		}
	}
	return n - len(r.Failures)
}

// SkippedCount returns the number of tests that were skipped after they started.
func (r Results) SkippedCount() int {
	n := 0
	for _, t := range r.Tests {
		if t.Skipped {
			n++
		}
	}
	return n
}

type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// DisplayName is like String, but gives the top-level context a readable name.
func (t TestID) DisplayName() string {
	if len(t.Path) == 0 {
		return "(top level)"
	}
	return t.String()
}

// Plus returns a new TestID with the specified name appended to the path.
func (t TestID) Plus(name string) TestID {
	return TestID{Path: append(append([]string(nil), t.Path...), name)}
}
