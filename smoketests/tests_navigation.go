package smoketests

import "time"

func DoNavigationTests(t *T) {
	t.RunScenario("has functional navigation", func(t *T) {
		t.RequireElement(GlassPaneSelector)
		t.RequireVisible(BodySelector)
		t.Screenshot("navigation-test")
	})

	t.RunScenario("handles user interactions", func(t *T) {
		t.RequireVisible(BodySelector)
		t.Click(BodySelector)
		t.Pause(time.Second * 2)
		t.Screenshot("user-interaction")
	})
}
