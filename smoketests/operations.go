package smoketests

import (
	"context"
	"time"

	"github.com/hacienda-elizabeth/smoke-tests/framework"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// LoadAndVerify checks that the application has started, by requiring the glass pane
// element. The page has already been visited and given time to bootstrap.
func (t *T) LoadAndVerify() {
	t.RequireElement(GlassPaneSelector)
}

// VerifyTitleAndMarkers checks the document title and both Flutter marker elements. Each
// check is reported separately.
func (t *T) VerifyTitleAndMarkers() {
	t.ExpectTitleContains(ExpectedTitle)
	t.ExpectElement(GlassPaneSelector)
	t.ExpectElement(FlutterViewSelector)
}

// VerifyResponsive resizes the page, waits for the layout to settle, checks that the
// application is still rendered, and takes a screenshot tagged with the device class.
func (t *T) VerifyResponsive(device DeviceViewport) string {
	t.SetViewport(device.Viewport)
	t.sleep(t.env.timing.SettleDelay)
	t.RequireElement(GlassPaneSelector)
	return t.Screenshot(device.Tag())
}

// VerifyReloadSurvives reloads the page and checks that the application starts again, with
// the same bounds as the initial load.
func (t *T) VerifyReloadSurvives() {
	t.Reload()
	t.RequireElement(GlassPaneSelector)
}

// MeasureLoadTime navigates to the application again and measures the time from the start of
// navigation until the glass pane element exists. It fails the test if the element never
// appears, or if the elapsed time is not strictly less than Timing.LoadTimeCeiling.
func (t *T) MeasureLoadTime() time.Duration {
	page := t.requirePage()
	timing := t.env.timing

	start := time.Now()
	require.NoError(t, page.Navigate(t.ctx(), t.env.harness.TargetURL()))
	err := framework.Poll(t.ctx(), timing.MarkerTimeout, timing.PollInterval, func(ctx context.Context) (bool, error) {
		return page.HasElement(ctx, GlassPaneSelector)
	})
	elapsed := time.Since(start)
	require.NoError(t, err, "application did not load")

	t.Debug("page loaded in %dms", elapsed.Milliseconds())
	assert.Less(t, int64(elapsed), int64(timing.LoadTimeCeiling),
		"load time %s was not under %s", elapsed, timing.LoadTimeCeiling)
	return elapsed
}
