// Package browser provides a Chrome implementation of the framework's Browser and Page
// interfaces, using the DevTools protocol through go-rod.
package browser

import (
	"time"

	"github.com/hacienda-elizabeth/smoke-tests/framework"
)

const defaultOperationTimeout = time.Second * 30

// Config controls how Chrome is started or connected to.
type Config struct {
	// ControlURL, if set, is the DevTools WebSocket URL of an already-running browser. No new
	// browser process is launched and Close does not terminate it.
	ControlURL string
	// Bin is the path of the Chrome executable. If empty, go-rod looks for an installed
	// browser and downloads one if none is found.
	Bin string
	// Headed shows the browser window instead of running headless.
	Headed bool
	// NoSandbox disables the Chrome sandbox, which is usually necessary inside containers.
	NoSandbox bool
	// WindowSize is the initial size of the browser window.
	WindowSize framework.Viewport
	// OperationTimeout bounds each individual DevTools call, such as a navigation or a
	// screenshot. It does not apply to the application-level waits done by Poll.
	OperationTimeout time.Duration
	Logger           framework.Logger
}

// DefaultWindowSize is the desktop size used when none is configured.
var DefaultWindowSize = framework.Viewport{Width: 1920, Height: 1080}

// extraFlags are the switches that have historically made Flutter web pages render reliably
// in automated Chrome sessions.
var extraFlags = []string{
	"disable-gpu",
	"disable-extensions",
	"disable-dev-shm-usage",
	"disable-features=VizDisplayCompositor",
}

func (c Config) operationTimeout() time.Duration {
	if c.OperationTimeout <= 0 {
		return defaultOperationTimeout
	}
	return c.OperationTimeout
}

func (c Config) windowSize() framework.Viewport {
	if c.WindowSize.Width <= 0 || c.WindowSize.Height <= 0 {
		return DefaultWindowSize
	}
	return c.WindowSize
}
