package platform

import (
	"mirgo/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// WindowEvent is an input event as reported by the window system.
type WindowEvent interface {
	windowEvent()
}

type KeyboardInput struct {
	Key     int32
	Pressed bool
	// Text typed by this key press, if any.
	Text string
}

type CursorMoved struct {
	Position rl.Vector2
}

// MouseWheel carries either line deltas or, when Pixel is set, pixel
// deltas.
type MouseWheel struct {
	Delta rl.Vector2
	Pixel bool
}

type MouseInput struct {
	Button  rl.MouseButton
	Pressed bool
}

type Modifiers struct {
	Alt     bool
	Shift   bool
	Control bool
	Super   bool
}

type ModifiersChanged struct {
	Modifiers Modifiers
}

type TouchPhase int

const (
	TouchStarted TouchPhase = iota
	TouchMoved
	TouchEnded
	TouchCancelled
)

// Force is either a CalibratedForce or a NormalizedForce.
type Force interface {
	force()
}

type CalibratedForce struct {
	Force            float64
	MaxPossibleForce float64
	AltitudeAngle    *float64
}

type NormalizedForce float64

func (CalibratedForce) force() {}
func (NormalizedForce) force() {}

type Touch struct {
	Phase    TouchPhase
	Location rl.Vector2
	Force    Force
	ID       uint64
}

// Resized, FocusChanged and CloseRequested have no UI counterpart.
type Resized struct {
	Width, Height int32
}

type FocusChanged struct {
	Focused bool
}

type CloseRequested struct{}

func (KeyboardInput) windowEvent()    {}
func (CursorMoved) windowEvent()      {}
func (MouseWheel) windowEvent()       {}
func (MouseInput) windowEvent()       {}
func (ModifiersChanged) windowEvent() {}
func (Touch) windowEvent()            {}
func (Resized) windowEvent()          {}
func (FocusChanged) windowEvent()     {}
func (CloseRequested) windowEvent()   {}

var buttonByMouse = map[rl.MouseButton]ui.MouseButton{
	rl.MouseButtonLeft:    ui.MouseLeft,
	rl.MouseButtonRight:   ui.MouseRight,
	rl.MouseButtonMiddle:  ui.MouseMiddle,
	rl.MouseButtonForward: ui.MouseForward,
	rl.MouseButtonBack:    ui.MouseBack,
	rl.MouseButtonSide:    ui.MouseOther(0),
	rl.MouseButtonExtra:   ui.MouseOther(1),
}

func TranslateButton(button rl.MouseButton) ui.MouseButton {
	if b, ok := buttonByMouse[button]; ok {
		return b
	}
	return ui.MouseOther(uint16(button))
}

func TranslateState(pressed bool) ui.ButtonState {
	if pressed {
		return ui.Pressed
	}
	return ui.Released
}

func TranslateKeyboardModifiers(m Modifiers) ui.KeyboardModifiers {
	return ui.KeyboardModifiers{
		Alt:     m.Alt,
		Shift:   m.Shift,
		Control: m.Control,
		System:  m.Super,
	}
}

var touchPhases = [...]ui.TouchPhase{
	TouchStarted:   ui.TouchStarted,
	TouchMoved:     ui.TouchMoved,
	TouchEnded:     ui.TouchEnded,
	TouchCancelled: ui.TouchCancelled,
}

func translateForce(f Force) *ui.Force {
	switch f := f.(type) {
	case CalibratedForce:
		var angle *float64
		if f.AltitudeAngle != nil {
			a := *f.AltitudeAngle
			angle = &a
		}
		return &ui.Force{
			Calibrated:       true,
			Value:            f.Force,
			MaxPossibleForce: f.MaxPossibleForce,
			AltitudeAngle:    angle,
		}
	case NormalizedForce:
		return &ui.Force{Value: float64(f)}
	}
	return nil
}

// TranslateEvent converts a window event into a UI event. It reports false
// for events the UI does not consume.
func TranslateEvent(event WindowEvent) (ui.OsEvent, bool) {
	switch ev := event.(type) {
	case KeyboardInput:
		return ui.KeyboardInputEvent{
			Button: TranslateKeyToUI(ev.Key),
			State:  TranslateState(ev.Pressed),
			Text:   ev.Text,
		}, true
	case CursorMoved:
		return ui.CursorMovedEvent{Position: ev.Position}, true
	case MouseWheel:
		return ui.MouseWheelEvent{X: ev.Delta.X, Y: ev.Delta.Y}, true
	case MouseInput:
		return ui.MouseInputEvent{
			Button: TranslateButton(ev.Button),
			State:  TranslateState(ev.Pressed),
		}, true
	case ModifiersChanged:
		return ui.KeyboardModifiersEvent{Modifiers: TranslateKeyboardModifiers(ev.Modifiers)}, true
	case Touch:
		if ev.Phase < 0 || int(ev.Phase) >= len(touchPhases) {
			return nil, false
		}
		return ui.TouchEvent{
			Phase:    touchPhases[ev.Phase],
			Location: ev.Location,
			Force:    translateForce(ev.Force),
			ID:       ev.ID,
		}, true
	}
	return nil, false
}
