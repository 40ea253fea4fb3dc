package smoketests

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/hacienda-elizabeth/smoke-tests/framework"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	// GlassPaneSelector matches the element that the Flutter web engine adds once it has
	// bootstrapped. Its presence is our signal that the application has started.
	GlassPaneSelector = "flt-glass-pane"
	// FlutterViewSelector matches the host element of the Flutter view.
	FlutterViewSelector = "flutter-view"
	BodySelector        = "body"
	HTMLSelector        = "html"

	// ExpectedTitle must appear in the document title on every page of the application.
	ExpectedTitle = "Hacienda Elizabeth"
)

// DeviceViewport is a viewport size associated with a class of device. Screenshots taken by
// VerifyResponsive are tagged with the class and the dimensions.
type DeviceViewport struct {
	Class    string
	Viewport framework.Viewport
}

// Tag is the artifact name used for screenshots at this viewport, such as "mobile-375x667".
func (d DeviceViewport) Tag() string {
	return d.Class + "-" + d.Viewport.String()
}

var (
	Desktop = DeviceViewport{Class: "desktop", Viewport: framework.Viewport{Width: 1920, Height: 1080}}
	Laptop  = DeviceViewport{Class: "laptop", Viewport: framework.Viewport{Width: 1366, Height: 768}}
	Tablet  = DeviceViewport{Class: "tablet", Viewport: framework.Viewport{Width: 768, Height: 1024}}
	Mobile  = DeviceViewport{Class: "mobile", Viewport: framework.Viewport{Width: 375, Height: 667}}

	AllViewports = []DeviceViewport{Desktop, Laptop, Tablet, Mobile}
)

type environment struct {
	harness *framework.TestHarness
	timing  Timing
	ctx     context.Context
}

// T represents a test or subtest in our smoke test suite.
//
// It implements the same basic functionality as Go's testing.T, but in an environment that is
// outside of the Go test runner. Those features are provided by our lower-level framework
// package.
//
// A T created by RunScenario also owns a browser page that has already been pointed at the
// application under test, and has methods for interacting with it. Most of those methods
// make assertions of their own and immediately end the test if something unexpected happens,
// to reduce the amount of boilerplate logic in tests.
//
// To make other test assertions, you can use the assert and require packages, passing the *T
// as if it were a *testing.T.
type T struct {
	context         *framework.Context
	env             *environment
	page            framework.Page
	navigationStart time.Time
}

func newTestScope(context *framework.Context, env *environment) *T {
	return &T{context: context, env: env}
}

// Errorf is called by assertions to log a test failure. It does not cause an immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately exit. The methods in
// the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs a group of subtests. This is equivalent to the Run method of testing.T. The
// group itself does not get a browser page.
func (t *T) Run(name string, action func(*T)) {
	t.context.RunGroup(name, func(c *framework.Context) {
		action(newTestScope(c, t.env))
	})
}

// RunScenario runs a subtest that gets its own browser page. Before the action is called,
// the page is navigated to the application and given time to bootstrap, as by Visit.
func (t *T) RunScenario(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		t1 := newTestScope(c, t.env)
		t1.openPage()
		t1.Visit()
		action(t1)
	})
}

// Failed reports whether the test has failed so far.
func (t *T) Failed() bool {
	return t.context.Failed()
}

// Debug logs some debug output for the test. The output will be passed to the test logger at
// the end of the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// Defer schedules a function to be called when the test exits.
func (t *T) Defer(fn func()) {
	t.context.Defer(fn)
}

// Timing returns the durations that this test run is using.
func (t *T) Timing() Timing {
	return t.env.timing
}

func (t *T) ctx() context.Context {
	return t.env.ctx
}

func (t *T) openPage() {
	page, err := t.env.harness.NewPage(t.ctx(), t.context.DebugLogger())
	require.NoError(t, err)
	t.page = page
	t.Defer(func() {
		if err := page.Close(); err != nil {
			t.Debug("error closing page: %s", err)
		}
	})
	t.Defer(t.captureFailureScreenshot) // runs before the page is closed
}

// captureFailureScreenshot saves the state of the page if the scenario failed. It is only
// diagnostic, so errors are logged rather than reported as further failures.
func (t *T) captureFailureScreenshot() {
	if !t.Failed() {
		return
	}
	id := t.context.ID()
	if len(id.Path) == 0 {
		return
	}
	png, err := t.page.Screenshot(t.ctx())
	if err != nil {
		t.Debug("could not capture failure screenshot: %s", err)
		return
	}
	name := id.Path[len(id.Path)-1] + "-failed"
	path, err := t.env.harness.Artifacts().SaveScreenshot(id, name, png)
	if err != nil {
		t.Debug("could not save failure screenshot: %s", err)
		return
	}
	t.Debug("failure screenshot saved: %s", path)
}

func (t *T) requirePage() framework.Page {
	require.NotNil(t, t.page, "test tried to use the browser outside of a scenario")
	return t.page
}

// Visit navigates to the application and then waits for it to bootstrap.
func (t *T) Visit() {
	page := t.requirePage()
	t.navigationStart = time.Now()
	require.NoError(t, page.Navigate(t.ctx(), t.env.harness.TargetURL()))
	t.AwaitBootstrap()
}

// Reload forces a full page reload and then waits for the application to bootstrap again.
func (t *T) Reload() {
	page := t.requirePage()
	t.navigationStart = time.Now()
	require.NoError(t, page.Reload(t.ctx()))
	t.AwaitBootstrap()
}

// AwaitBootstrap gives the application up to Timing.BootstrapWait to start. It never fails
// the test; assertions that follow it are responsible for that.
//
// With Timing.FixedWaits it always waits the full period. Otherwise it returns once the glass
// pane element exists and a further Timing.PostBootstrapSettle, scaled like Pause, has passed.
func (t *T) AwaitBootstrap() {
	page := t.requirePage()
	timing := t.env.timing
	if timing.FixedWaits {
		t.sleep(timing.BootstrapWait)
		return
	}
	err := framework.Poll(t.ctx(), timing.BootstrapWait, timing.PollInterval, func(ctx context.Context) (bool, error) {
		return page.HasElement(ctx, GlassPaneSelector)
	})
	if err != nil {
		t.Debug("application did not finish bootstrapping within %s: %s", timing.BootstrapWait, err)
		return
	}
	t.Debug("application bootstrapped after %s", time.Since(t.navigationStart))
	// the glass pane appears before the first frame has been laid out
	t.Pause(timing.PostBootstrapSettle)
}

// Pause waits for a fixed period, scaled by Timing.PauseFactor. This is only for giving the
// application time to do background work that has no observable completion signal.
func (t *T) Pause(d time.Duration) {
	t.sleep(t.env.timing.pause(d))
}

func (t *T) sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	select {
	case <-time.After(d):
	case <-t.ctx().Done():
		require.NoError(t, t.ctx().Err())
	}
}

// ExpectElement waits up to Timing.MarkerTimeout for an element matching the selector to
// exist. If it does not, the test is marked as failed but continues.
func (t *T) ExpectElement(selector string) bool {
	page := t.requirePage()
	err := framework.Poll(t.ctx(), t.env.timing.MarkerTimeout, t.env.timing.PollInterval,
		func(ctx context.Context) (bool, error) {
			return page.HasElement(ctx, selector)
		})
	if err != nil {
		assert.Fail(t, fmt.Sprintf("expected element <%s> to exist", selector), "%s", err)
		return false
	}
	return true
}

// RequireElement is like ExpectElement, but ends the test immediately if the element does not exist.
func (t *T) RequireElement(selector string) {
	if !t.ExpectElement(selector) {
		t.FailNow()
	}
}

// RequireVisible waits up to Timing.MarkerTimeout for the first element matching the selector
// to be visible, and ends the test if it does not become visible.
func (t *T) RequireVisible(selector string) {
	page := t.requirePage()
	err := framework.Poll(t.ctx(), t.env.timing.MarkerTimeout, t.env.timing.PollInterval,
		func(ctx context.Context) (bool, error) {
			return page.IsVisible(ctx, selector)
		})
	if err != nil {
		require.Fail(t, fmt.Sprintf("expected element <%s> to be visible", selector), "%s", err)
	}
}

// ExpectTitleContains waits up to Timing.MarkerTimeout for the document title to contain
// the specified string. If it does not, the test is marked as failed but continues.
func (t *T) ExpectTitleContains(expected string) bool {
	page := t.requirePage()
	var lastTitle string
	err := framework.Poll(t.ctx(), t.env.timing.MarkerTimeout, t.env.timing.PollInterval,
		func(ctx context.Context) (bool, error) {
			title, err := page.Title(ctx)
			lastTitle = title
			return strings.Contains(title, expected), err
		})
	if err != nil {
		assert.Fail(t, "page title did not contain expected text",
			"expected %q in title, last title was %q (%s)", expected, lastTitle, err)
		return false
	}
	return true
}

// RequireURLOnTargetHost checks that the browser is still on the host we navigated to.
func (t *T) RequireURLOnTargetHost() {
	current, err := t.requirePage().URL(t.ctx())
	require.NoError(t, err)
	target, err := url.Parse(t.env.harness.TargetURL())
	require.NoError(t, err)
	assert.Contains(t, current, target.Hostname(), "browser is no longer on the application's host")
}

// SetViewport changes the size of the page.
func (t *T) SetViewport(viewport framework.Viewport) {
	require.NoError(t, t.requirePage().SetViewport(t.ctx(), viewport))
	t.Debug("viewport set to %s", viewport)
}

// Click clicks the first element matching the selector.
func (t *T) Click(selector string) {
	require.NoError(t, t.requirePage().Click(t.ctx(), selector))
}

// PressKey sends a key press, such as "Tab", to the page.
func (t *T) PressKey(key string) {
	require.NoError(t, t.requirePage().PressKey(t.ctx(), key))
}

// RequireSecureContext checks that the application is served over HTTPS or from localhost.
func (t *T) RequireSecureContext() {
	secure, err := t.requirePage().IsSecureContext(t.ctx())
	require.NoError(t, err)
	assert.True(t, secure, "page is not running in a secure context")
}

// Screenshot captures the page and stores it under the given name, returning the file path.
// The test fails and exits immediately if the screenshot cannot be taken or saved.
func (t *T) Screenshot(name string) string {
	png, err := t.requirePage().Screenshot(t.ctx())
	require.NoError(t, err, "could not capture screenshot %q", name)
	path, err := t.env.harness.Artifacts().SaveScreenshot(t.context.ID(), name, png)
	require.NoError(t, err)
	t.Debug("screenshot saved: %s", path)
	return path
}
