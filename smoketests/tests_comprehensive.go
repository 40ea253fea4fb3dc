package smoketests

import "time"

func DoComprehensiveTests(t *T) {
	t.RunScenario("loads all core components", func(t *T) {
		t.VerifyTitleAndMarkers()
	})

	t.RunScenario("is responsive", func(t *T) {
		t.RequireVisible(BodySelector)
		for _, device := range []DeviceViewport{Desktop, Laptop, Tablet} {
			t.VerifyResponsive(device)
		}
	})

	t.RunScenario("handles page reload", func(t *T) {
		t.VerifyReloadSurvives()
		t.Screenshot("page-reload")
	})

	t.RunScenario("maintains state", func(t *T) {
		t.Screenshot("initial-state")
		t.Pause(time.Second * 5)
		t.Click(BodySelector)
		t.Screenshot("final-state")
	})
}
