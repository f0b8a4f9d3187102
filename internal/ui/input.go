package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

type ButtonState int

const (
	Pressed ButtonState = iota
	Released
)

func (s ButtonState) String() string {
	if s == Pressed {
		return "Pressed"
	}
	return "Released"
}

// MouseButton identifies a mouse button. Buttons past Forward are
// numbered with MouseOther.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
	MouseBack
	MouseForward
	mouseOther
)

// MouseOther returns the n-th extra button.
func MouseOther(n uint16) MouseButton {
	return mouseOther + MouseButton(n)
}

// Other reports the extra button number, if b is one.
func (b MouseButton) Other() (uint16, bool) {
	if b < mouseOther {
		return 0, false
	}
	return uint16(b - mouseOther), true
}

type KeyboardModifiers struct {
	Alt     bool
	Shift   bool
	Control bool
	System  bool
}

type TouchPhase int

const (
	TouchStarted TouchPhase = iota
	TouchMoved
	TouchEnded
	TouchCancelled
)

// Force is the pressure of a touch. Calibrated forces carry the device
// maximum and optionally the stylus altitude angle; normalized forces are
// in [0, 1].
type Force struct {
	Calibrated       bool
	Value            float64
	MaxPossibleForce float64
	AltitudeAngle    *float64
}

// OsEvent is an input event already expressed in UI terms.
type OsEvent interface {
	osEvent()
}

type KeyboardInputEvent struct {
	Button KeyCode
	State  ButtonState
	Text   string
}

type CursorMovedEvent struct {
	Position rl.Vector2
}

type MouseWheelEvent struct {
	X, Y float32
}

type MouseInputEvent struct {
	Button MouseButton
	State  ButtonState
}

type KeyboardModifiersEvent struct {
	Modifiers KeyboardModifiers
}

type TouchEvent struct {
	Phase    TouchPhase
	Location rl.Vector2
	Force    *Force
	ID       uint64
}

func (KeyboardInputEvent) osEvent()     {}
func (CursorMovedEvent) osEvent()       {}
func (MouseWheelEvent) osEvent()        {}
func (MouseInputEvent) osEvent()        {}
func (KeyboardModifiersEvent) osEvent() {}
func (TouchEvent) osEvent()             {}
