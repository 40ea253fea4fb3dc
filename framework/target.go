package framework

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

const targetPollInterval = time.Millisecond * 500

// TargetInfo is what we learned about the application under test from the availability check.
type TargetInfo struct {
	URL         string
	StatusCode  int
	ContentType string
}

// AwaitTarget checks that the application under test is answering HTTP requests at the
// specified URL, retrying until the timeout elapses. The harness never starts the
// application itself, so this lets us fail fast with a clear message if it is not running,
// rather than having every browser test time out.
//
// Any status below 400 counts as available; redirects are followed. A 4xx status fails
// immediately, while a 5xx status is retried like a connection error.
func AwaitTarget(url string, timeout time.Duration, output io.Writer) (TargetInfo, error) {
	if output == nil {
		output = io.Discard
	}
	fmt.Fprintf(output, "Connecting to application at %s", url)

	client := &http.Client{Timeout: timeout}
	deadline := time.Now().Add(timeout)
	for {
		fmt.Fprintf(output, ".")
		resp, err := client.Get(url)
		if err == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			switch {
			case resp.StatusCode >= 500:
				// development servers answer 503 while they are still compiling
				err = fmt.Errorf("application returned status code %d", resp.StatusCode)
			case resp.StatusCode >= 400:
				fmt.Fprintln(output)
				return TargetInfo{}, fmt.Errorf("application returned status code %d", resp.StatusCode)
			default:
				fmt.Fprintln(output)
				info := TargetInfo{
					URL:         url,
					StatusCode:  resp.StatusCode,
					ContentType: resp.Header.Get("Content-Type"),
				}
				fmt.Fprintf(output, "Application responded with status %d (%s)\n", info.StatusCode, info.ContentType)
				return info, nil
			}
		}
		if !time.Now().Before(deadline) {
			fmt.Fprintln(output)
			return TargetInfo{}, fmt.Errorf("timed out, result of last query was: %w", err)
		}
		time.Sleep(targetPollInterval)
	}
}
