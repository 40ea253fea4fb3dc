package framework

import (
	"fmt"
	"io"
)

type TestLogger interface {
	TestStarted(id TestID)
	TestError(id TestID, err error)
	TestFinished(id TestID, failed bool, debugOutput CapturedOutput)
	TestSkipped(id TestID, reason string)
}

type nullTestLogger struct{}

func (n nullTestLogger) TestStarted(TestID)                        {}
func (n nullTestLogger) TestError(TestID, error)                   {}
func (n nullTestLogger) TestFinished(TestID, bool, CapturedOutput) {}
func (n nullTestLogger) TestSkipped(TestID, string)                {}

// PrintResults writes a summary of the test run, listing every failed test and its errors.
func PrintResults(out io.Writer, results Results) {
	if results.OK() {
		fmt.Fprintf(out, "All tests passed (%d passed, %d skipped)\n", results.Passed(), results.SkippedCount())
		return
	}
	fmt.Fprintf(out, "FAILED TESTS (%d):\n", len(results.Failures))
	for _, f := range results.Failures {
		fmt.Fprintf(out, "* %s\n", f.TestID.DisplayName())
		for _, err := range f.Errors {
			fmt.Fprintf(out, "    %s\n", err)
		}
	}
	fmt.Fprintf(out, "%d passed, %d failed, %d skipped\n",
		results.Passed(), len(results.Failures), results.SkippedCount())
}
