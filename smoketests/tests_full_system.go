package smoketests

import (
	"time"
)

// applicationFeatures are the dashboard sections whose availability is recorded by screenshot.
var applicationFeatures = []struct {
	name       string
	screenshot string
	pause      time.Duration
}{
	{"sugarcane monitoring", "sugar-monitoring-available", time.Second * 5},
	{"inventory management", "inventory-available", time.Second * 2},
	{"supplier management", "supplier-management-available", time.Second * 2},
	{"weather", "weather-available", time.Second * 2},
	{"reports", "reports-available", time.Second * 2},
	{"insights", "insights-available", time.Second * 2},
	{"alerts", "alerts-available", time.Second * 2},
}

func DoFullSystemTests(t *T) {
	t.Run("loading and initialization", doLoadingTests)
	t.Run("dashboard", doDashboardTests)
	t.Run("responsive design", doResponsiveTests)
	t.Run("state and persistence", doStateTests)
	t.Run("data loading", doDataLoadingTests)
	t.Run("performance", doPerformanceTests)
	t.Run("browser compatibility", doBrowserCompatibilityTests)
	t.Run("error handling", doErrorHandlingTests)
	t.Run("system features", doSystemFeatureTests)
	t.Run("accessibility", doAccessibilityTests)
	t.Run("security", doSecurityTests)
	t.Run("system integration", doIntegrationTests)
}

func doLoadingTests(t *T) {
	t.RunScenario("loads the application", func(t *T) {
		t.RequireURLOnTargetHost()
		t.RequireElement(GlassPaneSelector)
		t.RequireElement(FlutterViewSelector)
	})

	t.RunScenario("displays the correct title", func(t *T) {
		t.ExpectTitleContains(ExpectedTitle)
	})
}

func doDashboardTests(t *T) {
	t.RunScenario("displays the main dashboard", func(t *T) {
		t.Pause(time.Second * 5)
		t.RequireVisible(BodySelector)
		t.Screenshot("dashboard-display")
	})

	t.RunScenario("handles page interactions", func(t *T) {
		t.Click(BodySelector)
		t.Pause(time.Second * 2)
		t.Screenshot("dashboard-interactions")
	})
}

func doResponsiveTests(t *T) {
	for _, device := range AllViewports {
		device := device
		t.RunScenario(device.Class+" view", func(t *T) {
			t.VerifyResponsive(device)
		})
	}
}

func doStateTests(t *T) {
	t.RunScenario("survives reload", func(t *T) {
		t.Screenshot("state-before-reload")
		t.VerifyReloadSurvives()
		t.Screenshot("state-after-reload")
	})

	t.RunScenario("handles page navigation", func(t *T) {
		t.RequireElement(BodySelector)
		t.Screenshot("navigation-test")
	})
}

func doDataLoadingTests(t *T) {
	t.RunScenario("loads data from the database", func(t *T) {
		t.Pause(time.Second * 10)
		t.RequireVisible(BodySelector)
		t.Screenshot("data-loaded")
	})

	t.RunScenario("stays responsive while receiving updates", func(t *T) {
		t.Pause(time.Second * 8)
		t.RequireVisible(BodySelector)
		t.Screenshot("realtime-verified")
	})
}

func doPerformanceTests(t *T) {
	t.RunScenario("loads within the time limit", func(t *T) {
		t.MeasureLoadTime()
	})

	t.RunScenario("handles repeated interactions", func(t *T) {
		for i := 0; i < 5; i++ {
			t.Click(BodySelector)
			t.Pause(time.Millisecond * 500)
		}
		t.Screenshot("performance-test")
	})
}

func doBrowserCompatibilityTests(t *T) {
	t.RunScenario("works in the current browser", func(t *T) {
		t.RequireVisible(BodySelector)
		t.RequireElement(GlassPaneSelector)
	})
}

func doErrorHandlingTests(t *T) {
	t.RunScenario("keeps a document body", func(t *T) {
		t.RequireElement(BodySelector)
	})
}

func doSystemFeatureTests(t *T) {
	for _, feature := range applicationFeatures {
		feature := feature
		t.RunScenario(feature.name, func(t *T) {
			t.Pause(feature.pause)
			t.RequireElement(BodySelector)
			t.Screenshot(feature.screenshot)
		})
	}
}

func doAccessibilityTests(t *T) {
	t.RunScenario("has a proper document structure", func(t *T) {
		t.RequireElement(HTMLSelector)
		t.RequireElement(BodySelector)
	})

	t.RunScenario("is keyboard accessible", func(t *T) {
		t.PressKey("Tab")
		t.RequireElement(GlassPaneSelector)
	})
}

func doSecurityTests(t *T) {
	t.RunScenario("runs in a secure context", func(t *T) {
		t.RequireSecureContext()
	})
}

func doIntegrationTests(t *T) {
	t.RunScenario("connects to the database", func(t *T) {
		t.Pause(time.Second * 10)
		t.RequireVisible(BodySelector)
		t.Screenshot("database-integration")
	})

	t.RunScenario("has a notification system", func(t *T) {
		t.Pause(time.Second * 5)
		t.RequireElement(BodySelector)
		t.Screenshot("notifications-available")
	})
}
