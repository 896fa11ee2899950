package shell

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func at(ms int) time.Time {
	return t0.Add(time.Duration(ms) * time.Millisecond)
}

func TestReduce(t *testing.T) {
	tests := []struct {
		name string
		pads []PadState
		want Signal
	}{
		{"no devices", nil, 0},
		{"idle pad", []PadState{{}}, 0},
		{"dpad up", []PadState{{Up: true}}, SignalUp},
		{"stick up past deadzone", []PadState{{StickY: 0.5}}, SignalUp},
		{"stick down past deadzone", []PadState{{StickY: -0.5}}, SignalDown},
		{"stick inside deadzone", []PadState{{StickY: 0.2}, {StickY: -0.2}}, 0},
		{"shoulders", []PadState{{LeftShoulder: true, RightShoulder: true}}, SignalPrevTab | SignalNextTab},
		{"face buttons", []PadState{{A: true, B: true, Start: true}}, SignalConfirm | SignalCancel | SignalMenu},
		{"devices are ORed", []PadState{{A: true}, {Down: true}, {}}, SignalConfirm | SignalDown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Reduce(tc.pads))
		})
	}
}

func TestSignalHas(t *testing.T) {
	m := SignalUp | SignalConfirm
	assert.True(t, m.Has(SignalUp))
	assert.True(t, m.Has(SignalUp|SignalConfirm))
	assert.False(t, m.Has(SignalDown))
	assert.False(t, m.Has(0))
}

func TestInterpreterChangedMaskFiresOnce(t *testing.T) {
	in := NewInterpreter()

	intent, ok := in.Sample(at(0), SignalDown)
	require.True(t, ok)
	assert.Equal(t, SignalDown, intent.Signals)

	_, ok = in.Sample(at(16), SignalDown)
	assert.False(t, ok, "same mask before the initial delay is suppressed")

	intent, ok = in.Sample(at(32), SignalDown|SignalConfirm)
	require.True(t, ok, "a different mask fires immediately")
	assert.Equal(t, SignalDown|SignalConfirm, intent.Signals)
}

func TestInterpreterEmptyMaskClearsHistory(t *testing.T) {
	in := NewInterpreter()

	_, ok := in.Sample(at(0), SignalUp)
	require.True(t, ok)

	_, ok = in.Sample(at(16), 0)
	assert.False(t, ok)

	_, ok = in.Sample(at(32), SignalUp)
	assert.True(t, ok, "press after release fires without waiting for the repeat delay")
}

func TestInterpreterHoldAtSixtyHertz(t *testing.T) {
	in := NewInterpreter()

	var fired []int
	for ms := 0; ms <= 1000; ms += 16 {
		if _, ok := in.Sample(at(ms), SignalDown); ok {
			fired = append(fired, ms)
		}
	}

	// The first repeat waits for 400ms; each later repeat is due 50ms after
	// the previous one, observed on the next 16ms tick.
	assert.Equal(t, []int{0, 400, 464, 528, 592, 656, 720, 784, 848, 912, 976}, fired)
}

func TestInterpreterHoldAtFineResolution(t *testing.T) {
	in := NewInterpreter()

	var fired []int
	for ms := 0; ms <= 1000; ms++ {
		if _, ok := in.Sample(at(ms), SignalDown); ok {
			fired = append(fired, ms)
		}
	}

	want := []int{0}
	for ms := 400; ms <= 1000; ms += 50 {
		want = append(want, ms)
	}
	assert.Equal(t, want, fired)
	assert.Len(t, fired, 14)
}

func TestInterpreterHoldUntilRelease(t *testing.T) {
	in := NewInterpreter()
	in.HoldUntilRelease()

	_, ok := in.Sample(at(0), SignalConfirm)
	assert.False(t, ok)
	_, ok = in.Sample(at(1000), SignalConfirm)
	assert.False(t, ok, "still held from before")

	_, ok = in.Sample(at(1016), 0)
	assert.False(t, ok)
	_, ok = in.Sample(at(1032), SignalConfirm)
	assert.True(t, ok)
}
