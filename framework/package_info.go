// Package framework contains the low-level implementation of test harness infrastructure
// that can be reused for different kinds of browser smoke tests.
//
// The general model is:
//
// 1. The application under test is already running at some target URL. The harness does
// not start or manage it; it only checks that the URL is answering before any tests run.
//
// 2. The harness drives a browser through the Browser and Page interfaces. Each test
// scenario gets its own Page, so nothing the application stores in the browser leaks
// from one scenario into the next.
//
// 3. There is a general notion of a test context which is similar to Go's *testing.T,
// allowing pieces of test logic to be associated with a test identifier and to accumulate
// success/failure results.
//
// The domain-specific code that knows what is being tested is responsible for deciding
// which pages to visit, which elements mark the application as ready, and what artifacts
// to capture, and for providing a domain-specific test API on top of the test context.
package framework
