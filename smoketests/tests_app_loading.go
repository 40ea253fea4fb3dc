package smoketests

func DoAppLoadingTests(t *T) {
	t.RunScenario("loads the Flutter application", func(t *T) {
		t.RequireURLOnTargetHost()
		t.ExpectTitleContains(ExpectedTitle)
		t.LoadAndVerify()
	})

	t.RunScenario("has Flutter-specific elements", func(t *T) {
		t.RequireElement(GlassPaneSelector)
		t.RequireElement(FlutterViewSelector)
		t.Screenshot("app-loaded")
	})

	t.RunScenario("displays the application", func(t *T) {
		t.RequireElement(BodySelector)
		t.Screenshot("app-display")
	})
}
