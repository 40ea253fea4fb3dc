package smoketests

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/hacienda-elizabeth/smoke-tests/framework"

	"github.com/stretchr/testify/require"
)

var fakePNG = []byte("\x89PNG\r\n\x1a\nfake")

// fakeApp describes how the simulated application behaves in every page opened by fakeBrowser.
type fakeApp struct {
	title string
	// readyAfterPolls is how many element checks must happen after each navigation before
	// the Flutter marker elements exist. Negative means they never appear.
	readyAfterPolls int
	// loadDelay is added to every navigation.
	loadDelay     time.Duration
	insecure      bool
	screenshotErr error
	// vanishOnResize makes the marker elements disappear for good after a viewport change.
	vanishOnResize bool
	// failAfterReload makes the application never start again once the page is reloaded.
	failAfterReload bool
}

type fakeBrowser struct {
	app    fakeApp
	pages  []*fakePage
	closed bool
	lock   sync.Mutex
}

func (b *fakeBrowser) NewPage(ctx context.Context) (framework.Page, error) {
	b.lock.Lock()
	defer b.lock.Unlock()
	p := &fakePage{app: b.app, url: "about:blank"}
	b.pages = append(b.pages, p)
	return p, nil
}

func (b *fakeBrowser) Close() error {
	b.closed = true
	return nil
}

func (b *fakeBrowser) allPages() []*fakePage {
	b.lock.Lock()
	defer b.lock.Unlock()
	return append([]*fakePage(nil), b.pages...)
}

type fakePage struct {
	app         fakeApp
	url         string
	loaded      bool
	polls       int
	viewport    framework.Viewport
	viewports   []framework.Viewport
	navigations int
	reloads     int
	clicks      int
	keys        []string
	closed      bool
	hidden      bool
	broken      bool
}

func (p *fakePage) ready() bool {
	return p.loaded && !p.hidden && !p.broken &&
		p.app.readyAfterPolls >= 0 && p.polls >= p.app.readyAfterPolls
}

func (p *fakePage) load(ctx context.Context) error {
	if p.app.loadDelay > 0 {
		select {
		case <-time.After(p.app.loadDelay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	p.loaded = true
	p.polls = 0
	return nil
}

func (p *fakePage) Navigate(ctx context.Context, url string) error {
	p.url = url
	p.navigations++
	return p.load(ctx)
}

func (p *fakePage) Reload(ctx context.Context) error {
	p.reloads++
	if p.app.failAfterReload {
		p.broken = true
	}
	return p.load(ctx)
}

func (p *fakePage) URL(ctx context.Context) (string, error) {
	return p.url, nil
}

func (p *fakePage) Title(ctx context.Context) (string, error) {
	if !p.loaded {
		return "", nil
	}
	return p.app.title, nil
}

func (p *fakePage) HasElement(ctx context.Context, selector string) (bool, error) {
	switch selector {
	case "html", "body":
		return p.loaded, nil
	case GlassPaneSelector, FlutterViewSelector:
		p.polls++
		return p.ready(), nil
	default:
		return false, nil
	}
}

func (p *fakePage) IsVisible(ctx context.Context, selector string) (bool, error) {
	return p.HasElement(ctx, selector)
}

func (p *fakePage) SetViewport(ctx context.Context, viewport framework.Viewport) error {
	p.viewport = viewport
	p.viewports = append(p.viewports, viewport)
	if p.app.vanishOnResize {
		p.hidden = true
	}
	return nil
}

func (p *fakePage) Click(ctx context.Context, selector string) error {
	if has, _ := p.HasElement(ctx, selector); !has {
		return errors.New("no such element")
	}
	p.clicks++
	return nil
}

func (p *fakePage) PressKey(ctx context.Context, key string) error {
	p.keys = append(p.keys, key)
	return nil
}

func (p *fakePage) IsSecureContext(ctx context.Context) (bool, error) {
	return !p.app.insecure, nil
}

func (p *fakePage) Screenshot(ctx context.Context) ([]byte, error) {
	if p.app.screenshotErr != nil {
		return nil, p.app.screenshotErr
	}
	return fakePNG, nil
}

func (p *fakePage) Close() error {
	p.closed = true
	return nil
}

func fastTiming() Timing {
	return Timing{
		BootstrapWait:   time.Millisecond * 50,
		MarkerTimeout:   time.Millisecond * 100,
		SettleDelay:     0,
		LoadTimeCeiling: time.Second * 45,
		PollInterval:    time.Millisecond,
		PauseFactor:     0,
	}
}

func healthyApp() fakeApp {
	return fakeApp{title: "Hacienda Elizabeth - Farm Management", readyAfterPolls: 2}
}

type fixture struct {
	browser   *fakeBrowser
	harness   *framework.TestHarness
	artifacts *framework.ArtifactStore
	timing    Timing
}

func newFixture(t *testing.T, app fakeApp) *fixture {
	artifacts, err := framework.NewArtifactStore(t.TempDir())
	require.NoError(t, err)
	b := &fakeBrowser{app: app}
	h, err := framework.NewTestHarness(framework.HarnessConfig{
		TargetURL: "http://localhost:3000",
		Artifacts: artifacts,
	}, b, nil, nil)
	require.NoError(t, err)
	return &fixture{browser: b, harness: h, artifacts: artifacts, timing: fastTiming()}
}

// runScenario runs a single scenario outside of any suite and returns the results.
func (f *fixture) runScenario(action func(*T)) framework.Results {
	env := &environment{harness: f.harness, timing: f.timing, ctx: context.Background()}
	return framework.Run(nil, nil, func(c *framework.Context) {
		newTestScope(c, env).RunScenario("scenario", action)
	})
}

func (f *fixture) runSuite(filter framework.Filter) framework.Results {
	return RunTestSuite(context.Background(), f.harness, f.timing, filter, nil)
}
