package framework

import (
	"context"
	"fmt"
)

// Viewport is a browser window size in CSS pixels.
type Viewport struct {
	Width  int
	Height int
}

func (v Viewport) String() string {
	return fmt.Sprintf("%dx%d", v.Width, v.Height)
}

// Browser is a running browser that the harness can open pages in.
type Browser interface {
	// NewPage opens a blank page that does not share cookies or storage with any other page.
	NewPage(ctx context.Context) (Page, error)
	Close() error
}

// Page is a single browser tab. All methods return promptly; none of them wait for
// application-specific conditions, which is the job of Poll.
type Page interface {
	// Navigate loads the URL and waits for the document's load event.
	Navigate(ctx context.Context, url string) error
	// Reload performs a full page reload and waits for the document's load event.
	Reload(ctx context.Context) error
	URL(ctx context.Context) (string, error)
	Title(ctx context.Context) (string, error)
	// HasElement reports whether at least one element matches the CSS selector right now.
	HasElement(ctx context.Context, selector string) (bool, error)
	// IsVisible reports whether the first element matching the selector is rendered
	// with a non-empty box. It returns false if there is no such element.
	IsVisible(ctx context.Context, selector string) (bool, error)
	SetViewport(ctx context.Context, viewport Viewport) error
	// Click sends a left click to the center of the first element matching the selector.
	Click(ctx context.Context, selector string) error
	// PressKey sends a single key press to the focused element. Key names are the DOM
	// KeyboardEvent.key values, such as "Tab" or "Enter".
	PressKey(ctx context.Context, key string) error
	// IsSecureContext reports whether the page is served over HTTPS or from localhost.
	IsSecureContext(ctx context.Context) (bool, error)
	// Screenshot captures the visible viewport as PNG data.
	Screenshot(ctx context.Context) ([]byte, error)
	Close() error
}
