// Package smoketests contains the Hacienda Elizabeth smoke tests themselves and their
// supporting API.
//
// Test harness infrastructure that is not specific to this application, such as the test
// context, filtering, polling, and screenshot storage, is in the lower-level framework
// package. The browser itself is provided by the browser package.
package smoketests
