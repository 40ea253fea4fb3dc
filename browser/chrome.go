package browser

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/hacienda-elizabeth/smoke-tests/framework"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/launcher/flags"
	"github.com/go-rod/rod/lib/proto"
)

// Chrome is a framework.Browser backed by a Chrome process.
type Chrome struct {
	config   Config
	browser  *rod.Browser
	launcher *launcher.Launcher
	logger   framework.Logger
	closed   bool
	lock     sync.Mutex
}

// Launch starts Chrome, or connects to the one at Config.ControlURL, and returns once the
// DevTools connection is established.
func Launch(ctx context.Context, config Config) (*Chrome, error) {
	logger := config.Logger
	if logger == nil {
		logger = framework.NullLogger()
	}
	c := &Chrome{config: config, logger: logger}

	controlURL := config.ControlURL
	if controlURL == "" {
		c.launcher = newLauncher(config)
		u, err := c.launcher.Context(ctx).Launch()
		if err != nil {
			return nil, fmt.Errorf("launch chrome: %w", err)
		}
		controlURL = u
		logger.Printf("Launched Chrome (headed=%t), DevTools at %s", config.Headed, controlURL)
	} else {
		logger.Printf("Connecting to existing browser at %s", controlURL)
	}

	b := rod.New().ControlURL(controlURL).Context(ctx)
	if err := b.Connect(); err != nil {
		c.killLauncher()
		return nil, fmt.Errorf("connect to chrome: %w", err)
	}
	// the launch context only governs startup; later calls get their own contexts
	c.browser = b.Context(context.Background())
	return c, nil
}

func newLauncher(config Config) *launcher.Launcher {
	size := config.windowSize()
	l := launcher.New().
		Headless(!config.Headed).
		NoSandbox(config.NoSandbox).
		Set(flags.Flag("window-size"), fmt.Sprintf("%d,%d", size.Width, size.Height))
	if config.Bin != "" {
		l = l.Bin(config.Bin)
	}
	for _, f := range extraFlags {
		name, value, hasValue := strings.Cut(f, "=")
		if hasValue {
			l = l.Set(flags.Flag(name), value)
		} else {
			l = l.Set(flags.Flag(name))
		}
	}
	return l
}

// NewPage opens a page in a new incognito browser context.
func (c *Chrome) NewPage(ctx context.Context) (framework.Page, error) {
	c.lock.Lock()
	closed := c.closed
	c.lock.Unlock()
	if closed {
		return nil, errors.New("browser has been closed")
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.operationTimeout())
	defer cancel()

	incognito, err := c.browser.Context(ctx).Incognito()
	if err != nil {
		return nil, fmt.Errorf("incognito context: %w", err)
	}
	page, err := incognito.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		_ = disposeContext(c.browser, incognito)
		return nil, fmt.Errorf("create page: %w", err)
	}
	p := &chromePage{
		owner:     c,
		incognito: incognito,
		page:      page.Context(context.Background()),
	}
	if err := p.SetViewport(ctx, c.config.windowSize()); err != nil {
		_ = p.Close()
		return nil, err
	}
	return p, nil
}

// Close terminates the browser if we launched it, or only disconnects if we did not.
func (c *Chrome) Close() error {
	c.lock.Lock()
	if c.closed {
		c.lock.Unlock()
		return nil
	}
	c.closed = true
	c.lock.Unlock()

	var err error
	if c.launcher != nil {
		err = c.browser.Close()
		c.killLauncher()
	}
	c.logger.Printf("Browser closed")
	return err
}

func (c *Chrome) killLauncher() {
	if c.launcher != nil {
		c.launcher.Kill()
		c.launcher.Cleanup()
	}
}

func disposeContext(owner *rod.Browser, incognito *rod.Browser) error {
	return proto.TargetDisposeBrowserContext{BrowserContextID: incognito.BrowserContextID}.Call(owner)
}
