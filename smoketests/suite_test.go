package smoketests

import (
	"path/filepath"
	"testing"

	"github.com/hacienda-elizabeth/smoke-tests/framework"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const totalScenarios = 37

func TestFullRunAgainstHealthyApplication(t *testing.T) {
	f := newFixture(t, healthyApp())
	results := f.runSuite(nil)

	for _, failure := range results.Failures {
		t.Errorf("unexpected failure in %s: %v", failure.TestID, failure.Errors)
	}
	assert.Len(t, results.Tests, totalScenarios)
	assert.Equal(t, totalScenarios, results.Passed())

	pages := f.browser.allPages()
	assert.Len(t, pages, totalScenarios)
	for _, p := range pages {
		assert.True(t, p.closed, "every scenario page should be closed")
	}

	var names []string
	for _, path := range f.artifacts.Written() {
		names = append(names, filepath.Join(filepath.Base(filepath.Dir(path)), filepath.Base(path)))
	}
	assert.Len(t, names, 31)
	assert.Contains(t, names, filepath.Join("app-loading", "app-loaded.png"))
	assert.Contains(t, names, filepath.Join("navigation", "navigation-test.png"))
	assert.Contains(t, names, filepath.Join("full-system", "navigation-test.png"))
	assert.Contains(t, names, filepath.Join("full-system", "dashboard-display.png"))
	assert.Contains(t, names, filepath.Join("full-system", "mobile-375x667.png"))
	assert.Contains(t, names, filepath.Join("full-system", "alerts-available.png"))
}

func TestFailuresDoNotStopTheRun(t *testing.T) {
	app := healthyApp()
	app.readyAfterPolls = -1
	f := newFixture(t, app)
	results := f.runSuite(nil)

	assert.False(t, results.OK())
	assert.Len(t, results.Tests, totalScenarios)

	failed := make(map[string]bool)
	for _, r := range results.Failures {
		failed[r.TestID.String()] = true
	}
	assert.True(t, failed["app loading/loads the Flutter application"])
	assert.True(t, failed["full system/performance/loads within the time limit"])
	assert.True(t, failed["full system/responsive design/mobile view"])
	assert.False(t, failed["full system/security/runs in a secure context"])
	assert.False(t, failed["full system/system features/weather"])
}

func TestFilteredRun(t *testing.T) {
	f := newFixture(t, healthyApp())
	var filters framework.RegexFilters
	require.NoError(t, filters.MustMatch.Set("^app loading"))

	results := f.runSuite(filters.AsFilter)
	assert.True(t, results.OK())
	assert.Len(t, results.Tests, 3)
	assert.Len(t, f.browser.allPages(), 3)
}

func TestSuiteNames(t *testing.T) {
	assert.Equal(t, []string{"app loading", "navigation", "comprehensive", "full system"}, SuiteNames())
}

func TestDeviceViewportTags(t *testing.T) {
	var tags []string
	for _, d := range AllViewports {
		tags = append(tags, d.Tag())
	}
	assert.Equal(t, []string{"desktop-1920x1080", "laptop-1366x768", "tablet-768x1024", "mobile-375x667"}, tags)
}

func TestFilterCanSelectNestedScenario(t *testing.T) {
	f := newFixture(t, healthyApp())
	var filters framework.RegexFilters
	require.NoError(t, filters.MustMatch.Set("responsive design/mobile view$"))

	results := f.runSuite(filters.AsFilter)
	assert.True(t, results.OK())
	require.Len(t, results.Tests, 1)
	assert.Equal(t, "full system/responsive design/mobile view", results.Tests[0].TestID.String())
}
