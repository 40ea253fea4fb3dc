package framework

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const reportTimeFormat = "2006-01-02 15:04:05"

// WriteReport writes a plain-text record of the test run: when it ran, summary counts, the
// success rate, and one line per test with its status and duration, followed by its errors.
func WriteReport(out io.Writer, results Results) error {
	w := bufio.NewWriter(out)
	line := strings.Repeat("=", 60)

	fmt.Fprintln(w, "SMOKE TEST REPORT")
	fmt.Fprintln(w, line)
	if !results.StartTime.IsZero() {
		fmt.Fprintf(w, "Started: %s\n", results.StartTime.Format(reportTimeFormat))
	}
	if !results.EndTime.IsZero() {
		fmt.Fprintf(w, "Finished: %s\n", results.EndTime.Format(reportTimeFormat))
	}
	if !results.StartTime.IsZero() && !results.EndTime.IsZero() {
		fmt.Fprintf(w, "Duration: %s\n", formatSeconds(results.EndTime.Sub(results.StartTime).Seconds()))
	}
	fmt.Fprintln(w)

	passed, failed, skipped := results.Passed(), len(results.Failures), results.SkippedCount()
	fmt.Fprintf(w, "Total Tests: %d\n", len(results.Tests))
	fmt.Fprintf(w, "Passed: %d\n", passed)
	fmt.Fprintf(w, "Failed: %d\n", failed)
	fmt.Fprintf(w, "Skipped: %d\n", skipped)
	if ran := passed + failed; ran > 0 {
		fmt.Fprintf(w, "Success Rate: %.1f%%\n", float64(passed)*100/float64(ran))
	} else {
		fmt.Fprintln(w, "Success Rate: n/a")
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "DETAILED RESULTS")
	fmt.Fprintln(w, line)
	for _, r := range results.Tests {
		status := "PASS"
		switch {
		case r.Skipped:
			status = "SKIP"
		case r.Failed:
			status = "FAIL"
		}
		fmt.Fprintf(w, "%s - %s (%s)\n", r.TestID.DisplayName(), status, formatSeconds(r.Duration.Seconds()))
		for _, err := range r.Errors {
			for _, l := range strings.Split(strings.TrimSpace(err.Error()), "\n") {
				fmt.Fprintf(w, "    %s\n", l)
			}
		}
	}
	return w.Flush()
}

func formatSeconds(s float64) string {
	return fmt.Sprintf("%.2fs", s)
}
