package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hacienda-elizabeth/smoke-tests/framework"
)

const defaultTargetURL = "http://localhost:3000"
const defaultScreenshotDir = "screenshots"

type commandParams struct {
	targetURL            string
	targetQueryTimeout   time.Duration
	filters              framework.RegexFilters
	headed               bool
	chromeBin            string
	controlURL           string
	noSandbox            bool
	screenshotDir        string
	timestampScreenshots bool
	reportFile           string
	timingConfigFile     string
	fixedWaits           bool
	debug                bool
	debugAll             bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.StringVar(&c.targetURL, "url", defaultTargetURL, "URL of the running application")
	fs.DurationVar(&c.targetQueryTimeout, "url-timeout", time.Second*10, "how long to wait for the application to respond before running tests")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.headed, "headed", false, "show the browser window")
	fs.StringVar(&c.chromeBin, "chrome", "", "path of the Chrome executable")
	fs.StringVar(&c.controlURL, "control-url", "", "DevTools URL of an already-running browser to use")
	fs.BoolVar(&c.noSandbox, "no-sandbox", false, "disable the Chrome sandbox")
	fs.StringVar(&c.screenshotDir, "screenshots", defaultScreenshotDir, "directory to write screenshots to")
	fs.BoolVar(&c.timestampScreenshots, "timestamp-screenshots", false, "add a timestamp to screenshot file names")
	fs.StringVar(&c.reportFile, "report", "", "file to write a summary report of the run to")
	fs.StringVar(&c.timingConfigFile, "config", "", "JSON file with timing overrides")
	fs.BoolVar(&c.fixedWaits, "fixed-waits", false, "always wait the full bootstrap period instead of polling for the application")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")

	if err := fs.Parse(args[1:]); err != nil {
		return false // the flag package has already printed the error and usage
	}
	if c.targetURL == "" {
		fmt.Fprintln(os.Stderr, "-url must not be empty")
		fs.Usage()
		return false
	}
	return true
}
