package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/hacienda-elizabeth/smoke-tests/browser"
	"github.com/hacienda-elizabeth/smoke-tests/framework"
	"github.com/hacienda-elizabeth/smoke-tests/smoketests"
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	timing := smoketests.DefaultTiming()
	if params.timingConfigFile != "" {
		t, err := smoketests.LoadTimingFile(params.timingConfigFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid configuration: %s\n", err)
			os.Exit(1)
		}
		timing = t
	}
	if params.fixedWaits {
		timing.FixedWaits = true
	}

	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		mainDebugLogger = log.New(os.Stdout, "", log.LstdFlags)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var artifactOptions []framework.ArtifactOption
	if params.timestampScreenshots {
		artifactOptions = append(artifactOptions, framework.WithTimestamps())
	}
	artifacts, err := framework.NewArtifactStore(params.screenshotDir, artifactOptions...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Startup error: %s\n", err)
		os.Exit(1)
	}

	chrome, err := browser.Launch(ctx, browser.Config{
		ControlURL: params.controlURL,
		Bin:        params.chromeBin,
		Headed:     params.headed,
		NoSandbox:  params.noSandbox,
		Logger:     framework.PrefixedLogger(mainDebugLogger, "[browser] "),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Browser error: %s\n", err)
		os.Exit(1)
	}

	harness, err := framework.NewTestHarness(
		framework.HarnessConfig{
			TargetURL:          params.targetURL,
			TargetQueryTimeout: params.targetQueryTimeout,
			Artifacts:          artifacts,
		},
		chrome,
		mainDebugLogger,
		os.Stdout,
	)
	if err != nil {
		_ = chrome.Close()
		fmt.Fprintf(os.Stderr, "Startup error: %s\n", err)
		os.Exit(1)
	}

	fmt.Println()
	framework.PrintFilterDescription(os.Stdout, params.filters, smoketests.SuiteNames())

	fmt.Println("Running test suite")

	testLogger := &ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	results := smoketests.RunTestSuite(ctx, harness, timing, params.filters.AsFilter, testLogger)

	if err := harness.Close(); err != nil {
		mainDebugLogger.Printf("error closing browser: %s", err)
	}

	fmt.Println()
	framework.PrintResults(os.Stdout, results)
	if n := len(artifacts.Written()); n > 0 {
		fmt.Printf("%d screenshot(s) written to %s\n", n, artifacts.Dir())
	}
	if params.reportFile != "" {
		if err := writeReportFile(params.reportFile, results); err != nil {
			fmt.Fprintf(os.Stderr, "Could not write report: %s\n", err)
		} else {
			fmt.Printf("Detailed report: %s\n", params.reportFile)
		}
	}
	if !results.OK() {
		os.Exit(1)
	}
}

func writeReportFile(path string, results framework.Results) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := framework.WriteReport(f, results); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
