package browser

import (
	"testing"
	"time"

	"github.com/hacienda-elizabeth/smoke-tests/framework"

	"github.com/go-rod/rod/lib/launcher/flags"

	"github.com/stretchr/testify/assert"
)

func TestConfigDefaults(t *testing.T) {
	var c Config
	assert.Equal(t, defaultOperationTimeout, c.operationTimeout())
	assert.Equal(t, DefaultWindowSize, c.windowSize())

	c = Config{OperationTimeout: time.Second, WindowSize: framework.Viewport{Width: 375, Height: 667}}
	assert.Equal(t, time.Second, c.operationTimeout())
	assert.Equal(t, framework.Viewport{Width: 375, Height: 667}, c.windowSize())
}

func TestLauncherFlags(t *testing.T) {
	t.Run("headless by default", func(t *testing.T) {
		l := newLauncher(Config{})
		assert.True(t, l.Has(flags.Headless))
		assert.False(t, l.Has(flags.NoSandbox))
		size := l.Get(flags.Flag("window-size"))
		assert.Equal(t, "1920,1080", size)
	})

	t.Run("headed without sandbox", func(t *testing.T) {
		l := newLauncher(Config{Headed: true, NoSandbox: true, WindowSize: framework.Viewport{Width: 1366, Height: 768}})
		assert.False(t, l.Has(flags.Headless))
		assert.True(t, l.Has(flags.NoSandbox))
		size := l.Get(flags.Flag("window-size"))
		assert.Equal(t, "1366,768", size)
	})

	t.Run("flutter rendering switches", func(t *testing.T) {
		l := newLauncher(Config{})
		assert.True(t, l.Has(flags.Flag("disable-gpu")))
		assert.True(t, l.Has(flags.Flag("disable-dev-shm-usage")))
		features := l.Get(flags.Flag("disable-features"))
		assert.Equal(t, "VizDisplayCompositor", features)
	})
}
