package ui

import (
	"io"
	"log"
	"slices"

	"mirgo/internal/ui/draw"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type slot struct {
	generation uint32
	control    Control
}

// UserInterface owns every widget, routes messages between them and turns
// OS events into widget messages. It is not safe for concurrent use; all
// calls belong on the UI thread.
type UserInterface struct {
	slots []slot
	free  []uint32
	roots []Handle // z-order, last on top
	modal []Handle
	queue []UiMessage

	screenSize rl.Vector2
	cursorPos  rl.Vector2
	picked     Handle
	captured   Handle
	focused    Handle
	modifiers  KeyboardModifiers

	ctx *draw.DrawingContext
}

func New(width, height float32) *UserInterface {
	return &UserInterface{
		screenSize: rl.Vector2{X: width, Y: height},
		ctx:        draw.NewDrawingContext(),
	}
}

func (u *UserInterface) ScreenSize() rl.Vector2 { return u.screenSize }

func (u *UserInterface) SetScreenSize(width, height float32) {
	u.screenSize = rl.Vector2{X: width, Y: height}
}

func (u *UserInterface) CursorPosition() rl.Vector2           { return u.cursorPos }
func (u *UserInterface) KeyboardModifiers() KeyboardModifiers { return u.modifiers }
func (u *UserInterface) Focused() Handle                      { return u.focused }

// --- Node pool ---

// AddNode stores c and links the children its widget was built with.
func (u *UserInterface) AddNode(c Control) Handle {
	var h Handle
	if n := len(u.free); n > 0 {
		idx := u.free[n-1]
		u.free = u.free[:n-1]
		u.slots[idx].generation++
		u.slots[idx].control = c
		h = Handle{index: idx, generation: u.slots[idx].generation}
	} else {
		u.slots = append(u.slots, slot{generation: 1, control: c})
		h = Handle{index: uint32(len(u.slots) - 1), generation: 1}
	}

	w := c.Base()
	w.handle = h
	w.parent = NoHandle
	for _, child := range w.children {
		if cw := u.widget(child); cw != nil {
			u.detach(child)
			cw.parent = h
		}
	}
	u.roots = append(u.roots, h)
	return h
}

// Node returns the control for h, or nil for stale or empty handles.
func (u *UserInterface) Node(h Handle) Control {
	if h.IsNone() || int(h.index) >= len(u.slots) {
		return nil
	}
	s := u.slots[h.index]
	if s.generation != h.generation {
		return nil
	}
	return s.control
}

// NodeAs returns the control for h if it has type T.
func NodeAs[T Control](u *UserInterface, h Handle) (T, bool) {
	c, ok := u.Node(h).(T)
	return c, ok
}

func (u *UserInterface) widget(h Handle) *Widget {
	if c := u.Node(h); c != nil {
		return c.Base()
	}
	return nil
}

// LinkNodes makes child the last child of parent.
func (u *UserInterface) LinkNodes(child, parent Handle) {
	cw := u.widget(child)
	pw := u.widget(parent)
	if cw == nil || pw == nil || child == parent {
		return
	}
	u.detach(child)
	cw.parent = parent
	pw.children = append(pw.children, child)
}

// detach removes h from its parent's children or from the root list.
func (u *UserInterface) detach(h Handle) {
	w := u.widget(h)
	if w == nil {
		return
	}
	if pw := u.widget(w.parent); pw != nil {
		pw.children = slices.DeleteFunc(pw.children, func(c Handle) bool { return c == h })
	}
	u.roots = slices.DeleteFunc(u.roots, func(c Handle) bool { return c == h })
	w.parent = NoHandle
}

// RemoveNode removes h and its whole subtree.
func (u *UserInterface) RemoveNode(h Handle) {
	w := u.widget(h)
	if w == nil {
		return
	}
	u.detach(h)
	u.removeSubtree(h)
}

func (u *UserInterface) removeSubtree(h Handle) {
	c := u.Node(h)
	if c == nil {
		return
	}
	for _, child := range slices.Clone(c.Base().children) {
		u.removeSubtree(child)
	}
	if closer, ok := c.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			log.Printf("ui: closing %s: %v", h, err)
		}
	}
	for _, ref := range []*Handle{&u.picked, &u.captured, &u.focused} {
		if *ref == h {
			*ref = NoHandle
		}
	}
	u.modal = slices.DeleteFunc(u.modal, func(m Handle) bool { return m == h })
	u.slots[h.index].control = nil
	u.free = append(u.free, h.index)
}

// IsDescendant reports whether h is ancestor or lies below it.
func (u *UserInterface) IsDescendant(h, ancestor Handle) bool {
	for h.IsSome() {
		if h == ancestor {
			return true
		}
		w := u.widget(h)
		if w == nil {
			return false
		}
		h = w.parent
	}
	return false
}

// BringToFront moves a root node to the top of the z-order.
func (u *UserInterface) BringToFront(h Handle) {
	if i := slices.Index(u.roots, h); i >= 0 {
		u.roots = append(slices.Delete(u.roots, i, i+1), h)
	}
}

func (u *UserInterface) PushModal(h Handle) {
	u.PopModal(h)
	u.modal = append(u.modal, h)
}

func (u *UserInterface) PopModal(h Handle) {
	u.modal = slices.DeleteFunc(u.modal, func(m Handle) bool { return m == h })
}

func (u *UserInterface) TopModal() Handle {
	if len(u.modal) == 0 {
		return NoHandle
	}
	return u.modal[len(u.modal)-1]
}

func (u *UserInterface) CaptureMouse(h Handle) { u.captured = h }
func (u *UserInterface) ReleaseMouse()         { u.captured = NoHandle }

// --- Messages ---

// SendMessage queues msg; it is routed when polled.
func (u *UserInterface) SendMessage(msg UiMessage) {
	u.queue = append(u.queue, msg)
}

// PollMessage pops the oldest message, routes it and hands it back to the
// caller. Messages to a widget are delivered to that widget only; messages
// from a widget bubble up through its ancestors until one handles them.
func (u *UserInterface) PollMessage() (UiMessage, bool) {
	if len(u.queue) == 0 {
		return UiMessage{}, false
	}
	msg := u.queue[0]
	u.queue = u.queue[1:]

	switch msg.Direction {
	case ToWidget:
		if c := u.Node(msg.Destination); c != nil {
			c.HandleRoutedMessage(u, &msg)
		}
	case FromWidget:
		for h := msg.Destination; h.IsSome() && !msg.Handled(); {
			c := u.Node(h)
			if c == nil {
				break
			}
			c.HandleRoutedMessage(u, &msg)
			h = c.Base().parent
		}
	}
	return msg, true
}

// --- Layout and drawing ---

// Update ticks updaters and recomputes screen and clip bounds.
func (u *UserInterface) Update(deltaTime float32) {
	for i := range u.slots {
		if up, ok := u.slots[i].control.(Updater); ok {
			up.Update(u, deltaTime)
		}
	}
	screen := rl.Rectangle{Width: u.screenSize.X, Height: u.screenSize.Y}
	for _, root := range u.roots {
		u.layout(root, rl.Vector2{}, screen)
	}
}

func (u *UserInterface) layout(h Handle, origin rl.Vector2, parentClip rl.Rectangle) {
	w := u.widget(h)
	if w == nil {
		return
	}
	w.screen = rl.Rectangle{X: origin.X + w.Bounds.X, Y: origin.Y + w.Bounds.Y, Width: w.Bounds.Width, Height: w.Bounds.Height}
	w.clip = draw.Intersect(parentClip, w.screen)
	for _, child := range w.children {
		u.layout(child, rl.Vector2{X: w.screen.X, Y: w.screen.Y}, w.clip)
	}
}

// ScreenBounds computes the screen rectangle of h from the parent chain,
// independent of the last layout pass.
func (u *UserInterface) ScreenBounds(h Handle) rl.Rectangle {
	w := u.widget(h)
	if w == nil {
		return rl.Rectangle{}
	}
	r := w.Bounds
	for p := u.widget(w.parent); p != nil; p = u.widget(p.parent) {
		r.X += p.Bounds.X
		r.Y += p.Bounds.Y
	}
	return r
}

// Draw lays out and draws every visible root in z-order.
func (u *UserInterface) Draw() *draw.DrawingContext {
	u.Update(0)
	u.ctx.Clear()
	for _, root := range u.roots {
		u.DrawNode(root, u.ctx)
	}
	return u.ctx
}

// DrawNode draws the subtree at h into ctx.
func (u *UserInterface) DrawNode(h Handle, ctx *draw.DrawingContext) {
	c := u.Node(h)
	if c == nil || !c.Base().visible {
		return
	}
	c.Draw(ctx)
	for _, child := range c.Base().children {
		u.DrawNode(child, ctx)
	}
}

// --- Input ---

// Cursor is the icon requested by the hovered widget.
func (u *UserInterface) Cursor() CursorIcon {
	if w := u.widget(u.captured); w != nil {
		return w.Cursor
	}
	if w := u.widget(u.picked); w != nil {
		return w.Cursor
	}
	return CursorDefault
}

// HitTest returns the topmost enabled, visible widget under pos. While a
// modal window is open only its subtree can be hit.
func (u *UserInterface) HitTest(pos rl.Vector2) Handle {
	if modal := u.TopModal(); modal.IsSome() {
		return u.pick(modal, pos)
	}
	for i := len(u.roots) - 1; i >= 0; i-- {
		if h := u.pick(u.roots[i], pos); h.IsSome() {
			return h
		}
	}
	return NoHandle
}

func (u *UserInterface) pick(h Handle, pos rl.Vector2) Handle {
	w := u.widget(h)
	if w == nil || !w.visible || !w.enabled || !contains(w.clip, pos) {
		return NoHandle
	}
	for i := len(w.children) - 1; i >= 0; i-- {
		if hit := u.pick(w.children[i], pos); hit.IsSome() {
			return hit
		}
	}
	return h
}

func contains(r rl.Rectangle, p rl.Vector2) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// ProcessOsEvent converts an OS event into widget messages. It reports
// whether a widget was under the cursor.
func (u *UserInterface) ProcessOsEvent(event OsEvent) bool {
	switch ev := event.(type) {
	case CursorMovedEvent:
		return u.moveCursor(ev.Position)

	case MouseInputEvent:
		return u.mouseButton(ev.Button, ev.State)

	case MouseWheelEvent:
		if u.picked.IsSome() {
			u.SendMessage(UiMessage{Destination: u.picked, Direction: FromWidget, Data: MouseWheel{Amount: ev.Y}})
			return true
		}

	case KeyboardInputEvent:
		if u.focused.IsNone() {
			return false
		}
		if ev.State == Pressed {
			u.SendMessage(UiMessage{Destination: u.focused, Direction: FromWidget, Data: KeyDown{Code: ev.Button}})
			if ev.Text != "" {
				u.SendMessage(UiMessage{Destination: u.focused, Direction: FromWidget, Data: TextInput{Text: ev.Text}})
			}
		}
		return true

	case KeyboardModifiersEvent:
		u.modifiers = ev.Modifiers

	case TouchEvent:
		switch ev.Phase {
		case TouchStarted:
			u.moveCursor(ev.Location)
			return u.mouseButton(MouseLeft, Pressed)
		case TouchMoved:
			return u.moveCursor(ev.Location)
		case TouchEnded, TouchCancelled:
			u.moveCursor(ev.Location)
			return u.mouseButton(MouseLeft, Released)
		}
	}
	return false
}

func (u *UserInterface) moveCursor(pos rl.Vector2) bool {
	delta := rl.Vector2Subtract(pos, u.cursorPos)
	u.cursorPos = pos
	u.picked = u.HitTest(pos)

	target := u.picked
	if u.captured.IsSome() {
		target = u.captured
	}
	if target.IsSome() {
		u.SendMessage(UiMessage{Destination: target, Direction: FromWidget, Data: MouseMove{Pos: pos, Delta: delta}})
	}
	return u.picked.IsSome()
}

func (u *UserInterface) mouseButton(button MouseButton, state ButtonState) bool {
	u.picked = u.HitTest(u.cursorPos)
	if state == Pressed {
		if u.picked.IsNone() {
			return false
		}
		u.focused = u.picked
		u.SendMessage(UiMessage{Destination: u.picked, Direction: FromWidget, Data: MouseDown{Pos: u.cursorPos, Button: button}})
		return true
	}

	target := u.picked
	if u.captured.IsSome() {
		target = u.captured
	}
	if target.IsNone() {
		return false
	}
	u.SendMessage(UiMessage{Destination: target, Direction: FromWidget, Data: MouseUp{Pos: u.cursorPos, Button: button}})
	return true
}
