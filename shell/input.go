package shell

import "time"

// Signal is a bitmask of logical navigation signals. Every input device is
// reduced to this mask before timing is applied.
type Signal uint8

const (
	SignalUp Signal = 1 << iota
	SignalDown
	SignalPrevTab
	SignalNextTab
	SignalConfirm
	SignalCancel
	SignalMenu
)

// Has reports whether every bit of other is set in s
func (s Signal) Has(other Signal) bool {
	return other != 0 && s&other == other
}

// Navigation repeat timing
const (
	InitialRepeatDelay = 400 * time.Millisecond
	RepeatInterval     = 50 * time.Millisecond
)

// StickDeadzone is the fraction of full deflection a vertical stick must
// exceed before it counts as Up or Down (8000 of 32767).
const StickDeadzone = 8000.0 / 32767.0

// Intent is one coalesced, debounced navigation event. All signals asserted
// on the firing tick are carried together; the navigator decides which one
// acts.
type Intent struct {
	Signals Signal
}

// PadState is a single device's snapshot for one tick. StickY is the
// normalized vertical stick position in [-1, 1] with positive meaning up.
type PadState struct {
	Up, Down                    bool
	LeftShoulder, RightShoulder bool
	A, B, Start                 bool
	StickY                      float64
}

// Reduce ORs every device into one logical mask. Multiple pads behave as a
// single pad.
func Reduce(pads []PadState) Signal {
	var mask Signal
	for _, p := range pads {
		if p.Up || p.StickY > StickDeadzone {
			mask |= SignalUp
		}
		if p.Down || p.StickY < -StickDeadzone {
			mask |= SignalDown
		}
		if p.LeftShoulder {
			mask |= SignalPrevTab
		}
		if p.RightShoulder {
			mask |= SignalNextTab
		}
		if p.A {
			mask |= SignalConfirm
		}
		if p.B {
			mask |= SignalCancel
		}
		if p.Start {
			mask |= SignalMenu
		}
	}
	return mask
}

// Interpreter turns per-tick masks into discrete intents with press-once,
// hold-to-repeat timing. It does no I/O; callers pass the tick time.
type Interpreter struct {
	last         Signal
	nextEligible time.Time

	// waitRelease suppresses everything until an all-zero mask is seen
	waitRelease bool
}

// NewInterpreter creates an interpreter with empty history
func NewInterpreter() *Interpreter {
	return &Interpreter{}
}

// Sample consumes one tick's mask and returns the intent to act on, if any.
// A changed mask fires at once and arms the initial delay; an unchanged mask
// fires again only once the eligible time has passed. An empty mask clears
// history.
func (in *Interpreter) Sample(now time.Time, mask Signal) (Intent, bool) {
	if mask == 0 {
		in.last = 0
		in.nextEligible = time.Time{}
		in.waitRelease = false
		return Intent{}, false
	}
	if in.waitRelease {
		return Intent{}, false
	}

	fire := false
	switch {
	case mask != in.last:
		fire = true
		in.nextEligible = now.Add(InitialRepeatDelay)
	case !now.Before(in.nextEligible):
		fire = true
		in.nextEligible = now.Add(RepeatInterval)
	}
	in.last = mask

	if !fire {
		return Intent{}, false
	}
	return Intent{Signals: mask}, true
}

// HoldUntilRelease drops repeat history and ignores input until every
// signal has been released. Used when the core hands control back so a
// button still held from the game does not fire into the menu.
func (in *Interpreter) HoldUntilRelease() {
	in.last = 0
	in.nextEligible = time.Time{}
	in.waitRelease = true
}
