package framework

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// HarnessConfig describes the application under test and where to put artifacts.
type HarnessConfig struct {
	// TargetURL is the address of the already-running application.
	TargetURL string
	// TargetQueryTimeout bounds the availability check done before any tests run. If zero,
	// the check is skipped.
	TargetQueryTimeout time.Duration
	// Artifacts receives screenshots. It must not be nil.
	Artifacts *ArtifactStore
}

// TestHarness owns the browser and the per-run settings that every test scenario shares.
type TestHarness struct {
	config     HarnessConfig
	targetInfo TargetInfo
	browser    Browser
	logger     Logger
}

// NewTestHarness verifies that the application under test is responding and then takes
// ownership of the browser, which will be closed by Close.
func NewTestHarness(
	config HarnessConfig,
	browser Browser,
	debugLogger Logger,
	startupOutput io.Writer,
) (*TestHarness, error) {
	if browser == nil {
		return nil, errors.New("no browser was provided")
	}
	if config.Artifacts == nil {
		return nil, errors.New("no artifact store was provided")
	}
	if debugLogger == nil {
		debugLogger = NullLogger()
	}

	h := &TestHarness{
		config:  config,
		browser: browser,
		logger:  debugLogger,
	}

	if config.TargetQueryTimeout > 0 {
		info, err := AwaitTarget(config.TargetURL, config.TargetQueryTimeout, startupOutput)
		if err != nil {
			return nil, fmt.Errorf("application is not available at %s: %w", config.TargetURL, err)
		}
		h.targetInfo = info
	} else {
		h.targetInfo = TargetInfo{URL: config.TargetURL}
	}

	return h, nil
}

func (h *TestHarness) TargetURL() string {
	return h.config.TargetURL
}

func (h *TestHarness) TargetInfo() TargetInfo {
	return h.targetInfo
}

func (h *TestHarness) Artifacts() *ArtifactStore {
	return h.config.Artifacts
}

// NewPage opens a fresh page for a test scenario. Browser-level debug output goes to the
// specified logger, or to the harness's own logger if it is nil.
func (h *TestHarness) NewPage(ctx context.Context, logger Logger) (Page, error) {
	if logger == nil {
		logger = h.logger
	}
	page, err := h.browser.NewPage(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not open browser page: %w", err)
	}
	logger.Printf("Opened new browser page")
	return page, nil
}

// Close shuts down the browser.
func (h *TestHarness) Close() error {
	return h.browser.Close()
}
