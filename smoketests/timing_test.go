package smoketests

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTiming(t *testing.T) {
	d := DefaultTiming()
	assert.Equal(t, time.Second*20, d.BootstrapWait)
	assert.Equal(t, time.Second*3, d.PostBootstrapSettle)
	assert.Equal(t, time.Second*30, d.MarkerTimeout)
	assert.Equal(t, time.Second*45, d.LoadTimeCeiling)
	assert.False(t, d.FixedWaits)
	assert.Equal(t, time.Second*2, d.pause(time.Second*2))
}

func TestTimingOverrides(t *testing.T) {
	var o TimingOverrides
	require.NoError(t, json.Unmarshal([]byte(`{
		"bootstrapWaitMs": 5000,
		"postBootstrapSettleMs": 500,
		"markerTimeoutMs": null,
		"pausePercent": 0,
		"fixedWaits": true
	}`), &o))

	timing, err := o.Apply(DefaultTiming())
	require.NoError(t, err)
	assert.Equal(t, time.Second*5, timing.BootstrapWait)
	assert.Equal(t, time.Millisecond*500, timing.PostBootstrapSettle)
	assert.Equal(t, time.Second*30, timing.MarkerTimeout)
	assert.Equal(t, time.Duration(0), timing.pause(time.Second*10))
	assert.True(t, timing.FixedWaits)
}

func TestTimingOverridesRejectBadValues(t *testing.T) {
	var o TimingOverrides
	require.NoError(t, json.Unmarshal([]byte(`{"settleDelayMs": -1}`), &o))
	_, err := o.Apply(DefaultTiming())
	assert.Error(t, err)

	o = TimingOverrides{}
	require.NoError(t, json.Unmarshal([]byte(`{"loadTimeCeilingMs": 0}`), &o))
	_, err = o.Apply(DefaultTiming())
	assert.Error(t, err)
}

func TestTimingOverridesReportFirstNegativeFieldInDeclarationOrder(t *testing.T) {
	var o TimingOverrides
	require.NoError(t, json.Unmarshal([]byte(`{"pausePercent": -5, "markerTimeoutMs": -1}`), &o))
	for i := 0; i < 20; i++ {
		_, err := o.Apply(DefaultTiming())
		require.Error(t, err)
		assert.Equal(t, "markerTimeoutMs must not be negative", err.Error())
	}
}

func TestLoadTimingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "timing.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"loadTimeCeilingMs": 30000}`), 0o644))

	timing, err := LoadTimingFile(path)
	require.NoError(t, err)
	assert.Equal(t, time.Second*30, timing.LoadTimeCeiling)
	assert.Equal(t, time.Second*20, timing.BootstrapWait)

	require.NoError(t, os.WriteFile(path, []byte(`{`), 0o644))
	_, err = LoadTimingFile(path)
	assert.Error(t, err)

	_, err = LoadTimingFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
