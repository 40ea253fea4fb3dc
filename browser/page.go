package browser

import (
	"context"
	"fmt"

	"github.com/hacienda-elizabeth/smoke-tests/framework"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/proto"
)

const secureContextScript = `() => location.protocol === 'https:' || location.hostname === 'localhost'`

var keys = map[string]input.Key{
	"Tab":        input.Tab,
	"Enter":      input.Enter,
	"Escape":     input.Escape,
	"Space":      input.Space,
	"ArrowDown":  input.ArrowDown,
	"ArrowUp":    input.ArrowUp,
	"ArrowLeft":  input.ArrowLeft,
	"ArrowRight": input.ArrowRight,
}

type chromePage struct {
	owner     *Chrome
	incognito *rod.Browser
	page      *rod.Page
}

// with binds the page to a context that is cancelled after the configured operation timeout.
func (p *chromePage) with(ctx context.Context) (*rod.Page, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(ctx, p.owner.config.operationTimeout())
	return p.page.Context(ctx), cancel
}

func (p *chromePage) Navigate(ctx context.Context, url string) error {
	page, cancel := p.with(ctx)
	defer cancel()
	p.owner.logger.Printf("Navigating to %s", url)
	if err := page.Navigate(url); err != nil {
		return fmt.Errorf("navigate to %s: %w", url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("wait for load of %s: %w", url, err)
	}
	return nil
}

func (p *chromePage) Reload(ctx context.Context) error {
	page, cancel := p.with(ctx)
	defer cancel()
	p.owner.logger.Printf("Reloading page")
	if err := page.Reload(); err != nil {
		return fmt.Errorf("reload: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("wait for load after reload: %w", err)
	}
	return nil
}

func (p *chromePage) evalString(ctx context.Context, script string) (string, error) {
	page, cancel := p.with(ctx)
	defer cancel()
	res, err := page.Eval(script)
	if err != nil {
		return "", err
	}
	return res.Value.Str(), nil
}

func (p *chromePage) URL(ctx context.Context) (string, error) {
	return p.evalString(ctx, `() => location.href`)
}

func (p *chromePage) Title(ctx context.Context) (string, error) {
	return p.evalString(ctx, `() => document.title`)
}

func (p *chromePage) HasElement(ctx context.Context, selector string) (bool, error) {
	page, cancel := p.with(ctx)
	defer cancel()
	has, _, err := page.Has(selector)
	return has, err
}

func (p *chromePage) IsVisible(ctx context.Context, selector string) (bool, error) {
	page, cancel := p.with(ctx)
	defer cancel()
	has, el, err := page.Has(selector)
	if err != nil || !has {
		return false, err
	}
	return el.Visible()
}

func (p *chromePage) SetViewport(ctx context.Context, viewport framework.Viewport) error {
	page, cancel := p.with(ctx)
	defer cancel()
	err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             viewport.Width,
		Height:            viewport.Height,
		DeviceScaleFactor: 1,
	})
	if err != nil {
		return fmt.Errorf("set viewport to %s: %w", viewport, err)
	}
	return nil
}

func (p *chromePage) Click(ctx context.Context, selector string) error {
	page, cancel := p.with(ctx)
	defer cancel()
	has, el, err := page.Has(selector)
	if err != nil {
		return err
	}
	if !has {
		return fmt.Errorf("no element matches %q", selector)
	}
	return el.Click(proto.InputMouseButtonLeft, 1)
}

func (p *chromePage) PressKey(ctx context.Context, key string) error {
	k, ok := keys[key]
	if !ok {
		return fmt.Errorf("unsupported key %q", key)
	}
	page, cancel := p.with(ctx)
	defer cancel()
	return page.Keyboard.Type(k)
}

func (p *chromePage) IsSecureContext(ctx context.Context) (bool, error) {
	page, cancel := p.with(ctx)
	defer cancel()
	res, err := page.Eval(secureContextScript)
	if err != nil {
		return false, err
	}
	return res.Value.Bool(), nil
}

func (p *chromePage) Screenshot(ctx context.Context) ([]byte, error) {
	page, cancel := p.with(ctx)
	defer cancel()
	return page.Screenshot(false, nil)
}

func (p *chromePage) Close() error {
	err := p.page.Close()
	if derr := disposeContext(p.owner.browser, p.incognito); err == nil {
		err = derr
	}
	return err
}
