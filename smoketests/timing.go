package smoketests

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Timing holds every duration the smoke tests depend on.
type Timing struct {
	// BootstrapWait is how long to give the application to start up after a navigation or
	// reload, before any assertion is made.
	BootstrapWait time.Duration
	// PostBootstrapSettle is an extra pause, scaled by PauseFactor, after the marker element
	// appears during AwaitBootstrap. It is not used with FixedWaits.
	PostBootstrapSettle time.Duration
	// MarkerTimeout is how long an assertion waits for an element or title to appear.
	MarkerTimeout time.Duration
	// SettleDelay is the pause after changing the viewport size.
	SettleDelay time.Duration
	// LoadTimeCeiling is the exclusive upper bound for MeasureLoadTime.
	LoadTimeCeiling time.Duration
	// PollInterval is how often element and title conditions are checked.
	PollInterval time.Duration
	// PauseFactor scales the fixed pauses that scenarios use to let the application do
	// background work, such as loading data. 0 disables them.
	PauseFactor float64
	// FixedWaits makes BootstrapWait an unconditional sleep instead of returning as soon
	// as the application's marker element appears.
	FixedWaits bool
}

// DefaultTiming returns the durations that have been found to tolerate a cold start of the
// Flutter web build.
func DefaultTiming() Timing {
	return Timing{
		BootstrapWait:       time.Second * 20,
		PostBootstrapSettle: time.Second * 3,
		MarkerTimeout:       time.Second * 30,
		SettleDelay:         time.Second * 2,
		LoadTimeCeiling:     time.Second * 45,
		PollInterval:        time.Millisecond * 250,
		PauseFactor:         1,
	}
}

func (t Timing) pause(d time.Duration) time.Duration {
	if t.PauseFactor <= 0 {
		return 0
	}
	return time.Duration(float64(d) * t.PauseFactor)
}

// TimingOverrides is the JSON format of a timing configuration file. Properties that are
// omitted or null keep their default values.
type TimingOverrides struct {
	BootstrapWaitMS       ldvalue.OptionalInt `json:"bootstrapWaitMs"`
	PostBootstrapSettleMS ldvalue.OptionalInt `json:"postBootstrapSettleMs"`
	MarkerTimeoutMS       ldvalue.OptionalInt `json:"markerTimeoutMs"`
	SettleDelayMS         ldvalue.OptionalInt `json:"settleDelayMs"`
	LoadTimeCeilingMS     ldvalue.OptionalInt `json:"loadTimeCeilingMs"`
	PollIntervalMS        ldvalue.OptionalInt `json:"pollIntervalMs"`
	PausePercent          ldvalue.OptionalInt `json:"pausePercent"`
	FixedWaits            *bool               `json:"fixedWaits"`
}

// Apply returns a copy of the timing with every defined override replacing the original value.
func (o TimingOverrides) Apply(t Timing) (Timing, error) {
	for _, field := range []struct {
		name  string
		value ldvalue.OptionalInt
	}{
		{"bootstrapWaitMs", o.BootstrapWaitMS},
		{"postBootstrapSettleMs", o.PostBootstrapSettleMS},
		{"markerTimeoutMs", o.MarkerTimeoutMS},
		{"settleDelayMs", o.SettleDelayMS},
		{"loadTimeCeilingMs", o.LoadTimeCeilingMS},
		{"pollIntervalMs", o.PollIntervalMS},
		{"pausePercent", o.PausePercent},
	} {
		if field.value.IsDefined() && field.value.IntValue() < 0 {
			return t, fmt.Errorf("%s must not be negative", field.name)
		}
	}
	if o.LoadTimeCeilingMS.IsDefined() && o.LoadTimeCeilingMS.IntValue() == 0 {
		return t, fmt.Errorf("loadTimeCeilingMs must be greater than zero")
	}

	t.BootstrapWait = millisOrElse(o.BootstrapWaitMS, t.BootstrapWait)
	t.PostBootstrapSettle = millisOrElse(o.PostBootstrapSettleMS, t.PostBootstrapSettle)
	t.MarkerTimeout = millisOrElse(o.MarkerTimeoutMS, t.MarkerTimeout)
	t.SettleDelay = millisOrElse(o.SettleDelayMS, t.SettleDelay)
	t.LoadTimeCeiling = millisOrElse(o.LoadTimeCeilingMS, t.LoadTimeCeiling)
	t.PollInterval = millisOrElse(o.PollIntervalMS, t.PollInterval)
	if o.PausePercent.IsDefined() {
		t.PauseFactor = float64(o.PausePercent.IntValue()) / 100
	}
	if o.FixedWaits != nil {
		t.FixedWaits = *o.FixedWaits
	}
	return t, nil
}

func millisOrElse(value ldvalue.OptionalInt, orElse time.Duration) time.Duration {
	if !value.IsDefined() {
		return orElse
	}
	return time.Duration(value.IntValue()) * time.Millisecond
}

// LoadTimingFile reads timing overrides from a JSON file and applies them to the defaults.
func LoadTimingFile(path string) (Timing, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Timing{}, fmt.Errorf("could not read timing configuration: %w", err)
	}
	var overrides TimingOverrides
	if err := json.Unmarshal(data, &overrides); err != nil {
		return Timing{}, fmt.Errorf("malformed timing configuration in %s: %w", path, err)
	}
	return overrides.Apply(DefaultTiming())
}
