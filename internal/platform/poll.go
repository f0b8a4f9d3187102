package platform

import (
	"slices"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// InputSource is the per-frame input state a Poller samples. The raylib
// window is the default source.
type InputSource interface {
	KeyPressed() int32
	CharPressed() rune
	KeyDown(key int32) bool
	KeyReleased(key int32) bool
	MousePosition() rl.Vector2
	MouseWheel() rl.Vector2
	MouseButtonPressed(b rl.MouseButton) bool
	MouseButtonReleased(b rl.MouseButton) bool
	TouchPoints() map[int32]rl.Vector2
	Resized() (width, height int32, ok bool)
}

type raylibSource struct{}

func (raylibSource) KeyPressed() int32                         { return rl.GetKeyPressed() }
func (raylibSource) CharPressed() rune                         { return rune(rl.GetCharPressed()) }
func (raylibSource) KeyDown(key int32) bool                    { return rl.IsKeyDown(key) }
func (raylibSource) KeyReleased(key int32) bool                { return rl.IsKeyReleased(key) }
func (raylibSource) MousePosition() rl.Vector2                 { return rl.GetMousePosition() }
func (raylibSource) MouseWheel() rl.Vector2                    { return rl.GetMouseWheelMoveV() }
func (raylibSource) MouseButtonPressed(b rl.MouseButton) bool  { return rl.IsMouseButtonPressed(b) }
func (raylibSource) MouseButtonReleased(b rl.MouseButton) bool { return rl.IsMouseButtonReleased(b) }

func (raylibSource) TouchPoints() map[int32]rl.Vector2 {
	n := rl.GetTouchPointCount()
	points := make(map[int32]rl.Vector2, n)
	for i := int32(0); i < n; i++ {
		points[rl.GetTouchPointId(i)] = rl.GetTouchPosition(i)
	}
	return points
}

func (raylibSource) Resized() (int32, int32, bool) {
	if !rl.IsWindowResized() {
		return 0, 0, false
	}
	return int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()), true
}

var mouseButtons = []rl.MouseButton{
	rl.MouseButtonLeft,
	rl.MouseButtonRight,
	rl.MouseButtonMiddle,
	rl.MouseButtonSide,
	rl.MouseButtonExtra,
	rl.MouseButtonForward,
	rl.MouseButtonBack,
}

// Poller turns raylib's polled input state into a stream of window events.
// Call Poll once per frame after rl.BeginDrawing's input update.
type Poller struct {
	src       InputSource
	keys      []int32
	cursor    rl.Vector2
	modifiers Modifiers
	touches   map[int32]rl.Vector2
	started   bool
}

func NewPoller() *Poller {
	return NewPollerWithSource(raylibSource{})
}

func NewPollerWithSource(src InputSource) *Poller {
	keys := make([]int32, 0, len(uiByKey))
	for key := range uiByKey {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return &Poller{src: src, keys: keys, touches: map[int32]rl.Vector2{}}
}

// Poll returns the events since the previous call.
func (p *Poller) Poll() []WindowEvent {
	var events []WindowEvent

	if w, h, ok := p.src.Resized(); ok {
		events = append(events, Resized{Width: w, Height: h})
	}

	if mods := p.sampleModifiers(); mods != p.modifiers {
		p.modifiers = mods
		events = append(events, ModifiersChanged{Modifiers: mods})
	}

	// Typed characters belong to the last key pressed this frame.
	lastPress := -1
	for key := p.src.KeyPressed(); key != 0; key = p.src.KeyPressed() {
		events = append(events, KeyboardInput{Key: key, Pressed: true})
		lastPress = len(events) - 1
	}
	var text []rune
	for r := p.src.CharPressed(); r != 0; r = p.src.CharPressed() {
		text = append(text, r)
	}
	if len(text) > 0 {
		if lastPress >= 0 {
			ev := events[lastPress].(KeyboardInput)
			ev.Text = string(text)
			events[lastPress] = ev
		} else {
			events = append(events, KeyboardInput{Key: rl.KeyNull, Pressed: true, Text: string(text)})
		}
	}
	for _, key := range p.keys {
		if p.src.KeyReleased(key) {
			events = append(events, KeyboardInput{Key: key})
		}
	}

	if pos := p.src.MousePosition(); !p.started || pos != p.cursor {
		p.cursor = pos
		p.started = true
		events = append(events, CursorMoved{Position: pos})
	}
	if wheel := p.src.MouseWheel(); wheel.X != 0 || wheel.Y != 0 {
		events = append(events, MouseWheel{Delta: wheel})
	}
	for _, b := range mouseButtons {
		if p.src.MouseButtonPressed(b) {
			events = append(events, MouseInput{Button: b, Pressed: true})
		}
		if p.src.MouseButtonReleased(b) {
			events = append(events, MouseInput{Button: b})
		}
	}

	return append(events, p.pollTouches()...)
}

func (p *Poller) sampleModifiers() Modifiers {
	down := func(keys ...int32) bool {
		return slices.ContainsFunc(keys, p.src.KeyDown)
	}
	return Modifiers{
		Alt:     down(rl.KeyLeftAlt, rl.KeyRightAlt),
		Shift:   down(rl.KeyLeftShift, rl.KeyRightShift),
		Control: down(rl.KeyLeftControl, rl.KeyRightControl),
		Super:   down(rl.KeyLeftSuper, rl.KeyRightSuper),
	}
}

func (p *Poller) pollTouches() []WindowEvent {
	var events []WindowEvent
	current := p.src.TouchPoints()

	ids := make([]int32, 0, len(current)+len(p.touches))
	for id := range current {
		ids = append(ids, id)
	}
	for id := range p.touches {
		if _, ok := current[id]; !ok {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)

	for _, id := range ids {
		pos, now := current[id]
		prev, before := p.touches[id]
		switch {
		case now && !before:
			events = append(events, Touch{Phase: TouchStarted, Location: pos, ID: uint64(id)})
		case now && pos != prev:
			events = append(events, Touch{Phase: TouchMoved, Location: pos, ID: uint64(id)})
		case !now:
			events = append(events, Touch{Phase: TouchEnded, Location: prev, ID: uint64(id)})
		}
	}
	p.touches = current
	return events
}
