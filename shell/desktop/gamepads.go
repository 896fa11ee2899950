package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/BannedPenta01/Citron-Xbox-WIP/shell"
)

// padButtons maps each menu control to the standard gamepad layout
var padButtons = struct {
	Up, Down, LeftShoulder, RightShoulder, A, B, Start ebiten.StandardGamepadButton
}{
	Up:            ebiten.StandardGamepadButtonLeftTop,
	Down:          ebiten.StandardGamepadButtonLeftBottom,
	LeftShoulder:  ebiten.StandardGamepadButtonFrontTopLeft,
	RightShoulder: ebiten.StandardGamepadButtonFrontTopRight,
	A:             ebiten.StandardGamepadButtonRightBottom,
	B:             ebiten.StandardGamepadButtonRightRight,
	Start:         ebiten.StandardGamepadButtonCenterRight,
}

// keyboardButtons lists the keys that stand in for each pad control.
// The keyboard is reported as one extra pad.
var keyboardButtons = struct {
	Up, Down, LeftShoulder, RightShoulder, A, B, Start []ebiten.Key
}{
	Up:            []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
	Down:          []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
	LeftShoulder:  []ebiten.Key{ebiten.KeyQ, ebiten.KeyPageUp},
	RightShoulder: []ebiten.Key{ebiten.KeyE, ebiten.KeyPageDown},
	A:             []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
	B:             []ebiten.Key{ebiten.KeyEscape, ebiten.KeyBackspace},
	Start:         []ebiten.Key{ebiten.KeyF1, ebiten.KeyHome},
}

// padReader abstracts one controller so the mapping can be tested
type padReader interface {
	Pressed(ebiten.StandardGamepadButton) bool
	// LeftStickY is the vertical axis in ebiten's orientation, -1 is up
	LeftStickY() float64
}

type ebitenPad ebiten.GamepadID

func (p ebitenPad) Pressed(b ebiten.StandardGamepadButton) bool {
	return ebiten.IsStandardGamepadButtonPressed(ebiten.GamepadID(p), b)
}

func (p ebitenPad) LeftStickY() float64 {
	return ebiten.StandardGamepadAxisValue(ebiten.GamepadID(p), ebiten.StandardGamepadAxisLeftStickVertical)
}

func padState(r padReader) shell.PadState {
	return shell.PadState{
		Up:            r.Pressed(padButtons.Up),
		Down:          r.Pressed(padButtons.Down),
		LeftShoulder:  r.Pressed(padButtons.LeftShoulder),
		RightShoulder: r.Pressed(padButtons.RightShoulder),
		A:             r.Pressed(padButtons.A),
		B:             r.Pressed(padButtons.B),
		Start:         r.Pressed(padButtons.Start),
		StickY:        -r.LeftStickY(),
	}
}

func anyKey(pressed func(ebiten.Key) bool, keys []ebiten.Key) bool {
	for _, k := range keys {
		if pressed(k) {
			return true
		}
	}
	return false
}

func keyboardState(pressed func(ebiten.Key) bool) shell.PadState {
	return shell.PadState{
		Up:            anyKey(pressed, keyboardButtons.Up),
		Down:          anyKey(pressed, keyboardButtons.Down),
		LeftShoulder:  anyKey(pressed, keyboardButtons.LeftShoulder),
		RightShoulder: anyKey(pressed, keyboardButtons.RightShoulder),
		A:             anyKey(pressed, keyboardButtons.A),
		B:             anyKey(pressed, keyboardButtons.B),
		Start:         anyKey(pressed, keyboardButtons.Start),
	}
}

// pollPads samples the keyboard and every connected standard-layout gamepad
func pollPads(pads []shell.PadState) []shell.PadState {
	pads = append(pads[:0], keyboardState(ebiten.IsKeyPressed))
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		pads = append(pads, padState(ebitenPad(id)))
	}
	return pads
}
