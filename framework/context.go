package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"time"
)

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
}

// Context is the framework-level state of a single test or group of tests. It implements the
// same basic operations as Go's *testing.T, so it can be passed to the assert and require
// packages, but it runs outside of the Go test runner.
type Context struct {
	env         *environment
	id          TestID
	debugLogger CapturingLogger
	failed      bool
	skipped     bool
	skipReason  string
	errors      []error
	cleanups    []func()
	hasSubtests bool
}

// Run executes the top-level test action and returns the accumulated results of every
// subtest that it started.
func Run(
	filter Filter,
	testLogger TestLogger,
	action func(*Context),
) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:     filter,
		testLogger: testLogger,
	}
	c := &Context{env: env}
	env.results.StartTime = time.Now()
	c.run(action)
	env.results.EndTime = time.Now()
	return env.results
}

func (c *Context) run(action func(*Context)) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			if !c.skipped {
				c.failed = true
				var addError error
				if _, ok := r.(*Context); ok {
					if len(c.errors) == 0 {
						addError = errors.New("test failed with no failure message")
					}
				} else {
					addError = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
				}
				if addError != nil {
					c.errors = append(c.errors, addError)
					c.env.testLogger.TestError(c.id, addError)
				}
			}
		}
		c.runCleanups()
		if (len(c.id.Path) == 0 || c.hasSubtests) && !c.failed && !c.skipped {
			return // groups and the root are only reported if something went wrong outside of their subtests
		}
		result := TestResult{
			TestID:   c.id,
			Errors:   c.errors,
			Failed:   c.failed && !c.skipped,
			Skipped:  c.skipped,
			Duration: time.Since(start),
		}
		c.env.results.Tests = append(c.env.results.Tests, result)
		if c.failed && !c.skipped {
			c.env.results.Failures = append(c.env.results.Failures, result)
		}
	}()

	action(c)
}

func (c *Context) runCleanups() {
	for len(c.cleanups) > 0 {
		n := len(c.cleanups) - 1
		f := c.cleanups[n]
		c.cleanups = c.cleanups[:n]
		func() {
			defer func() {
				if r := recover(); r != nil {
					c.debugLogger.Printf("panic in cleanup function: %+v", r)
				}
			}()
			f()
		}()
	}
}

func (c *Context) ID() TestID {
	return c.id
}

// Run starts a subtest. The subtest is skipped without being executed if it does not
// pass the filter.
func (c *Context) Run(name string, action func(*Context)) {
	c.run1(name, true, action)
}

// RunGroup starts a subtest that exists only to contain other subtests. Unlike Run, it is
// not checked against the filter, so that a filter can select tests by their full path.
func (c *Context) RunGroup(name string, action func(*Context)) {
	c.run1(name, false, action)
}

func (c *Context) run1(name string, applyFilter bool, action func(*Context)) {
	id := c.id.Plus(name)
	c.hasSubtests = true

	c.env.testLogger.TestStarted(id)
	if applyFilter && c.env.filter != nil && !c.env.filter(id) {
		c.env.testLogger.TestSkipped(id, "excluded by filter parameters")
		return
	}
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	c1.run(action)
	if c1.skipped {
		c.env.testLogger.TestSkipped(id, c1.skipReason)
	} else {
		c.env.testLogger.TestFinished(id, c1.failed, c1.debugLogger.Output())
	}
}

// Errorf records a failure. It does not cause an immediate exit.
func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := fmt.Errorf(format, args...)
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, reformatError(err))
}

// FailNow stops the current test immediately. Subtests that were started by a parent of
// this test are not affected.
func (c *Context) FailNow() {
	c.failed = true
	panic(c)
}

func (c *Context) Failed() bool {
	return c.failed
}

func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

// Defer schedules a function to be called when the current test exits, whether it passed,
// failed, or was skipped. Deferred functions run in reverse order.
func (c *Context) Defer(fn func()) {
	c.cleanups = append(c.cleanups, fn)
}

func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}

// testify's assertion output begins with a blank line and indents everything with tabs,
// which is hard to read when it is nested inside our own console output.
func reformatError(err error) error {
	lines := strings.Split(strings.TrimLeft(err.Error(), "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(strings.ReplaceAll(line, "\t", "  "), "  ")
	}
	return errors.New(strings.Join(lines, "\n"))
}
