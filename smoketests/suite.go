package smoketests

import (
	"context"

	"github.com/hacienda-elizabeth/smoke-tests/framework"
)

// Suite is a named top-level group of tests.
type Suite struct {
	Name string
	Run  func(*T)
}

// AllSuites lists every suite in the order it runs.
var AllSuites = []Suite{
	{"app loading", DoAppLoadingTests},
	{"navigation", DoNavigationTests},
	{"comprehensive", DoComprehensiveTests},
	{"full system", DoFullSystemTests},
}

// SuiteNames returns the names of AllSuites.
func SuiteNames() []string {
	names := make([]string, 0, len(AllSuites))
	for _, s := range AllSuites {
		names = append(names, s.Name)
	}
	return names
}

// RunTestSuite runs every suite in sequence against the harness's browser. Tests never run
// concurrently; each scenario has the browser page to itself.
func RunTestSuite(
	ctx context.Context,
	harness *framework.TestHarness,
	timing Timing,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	env := &environment{
		harness: harness,
		timing:  timing,
		ctx:     ctx,
	}
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := newTestScope(c, env)
		for _, s := range AllSuites {
			t.Run(s.Name, s.Run)
		}
	})
}
