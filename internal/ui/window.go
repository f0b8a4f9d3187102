package ui

import (
	"mirgo/internal/ui/draw"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const TitleBarHeight = 24

var (
	windowBackground = draw.SolidBrush(rl.Color{R: 38, G: 38, B: 42, A: 250})
	windowTitleBar   = draw.SolidBrush(rl.Color{R: 50, G: 50, B: 56, A: 255})
	windowOutline    = draw.SolidBrush(rl.Color{R: 80, G: 80, B: 85, A: 255})
)

// Window is a movable top-level panel with a title bar. Closed windows are
// hidden, not removed.
type Window struct {
	Widget
	title    Handle
	content  Handle
	dragging bool
}

func (w *Window) Content() Handle { return w.content }
func (w *Window) IsOpen() bool    { return w.visible }

func (w *Window) Draw(ctx *draw.DrawingContext) {
	ctx.PushRectFilled(w.screen)
	ctx.Commit(w.clip, windowBackground, nil)
	ctx.PushRectFilled(rl.Rectangle{X: w.screen.X, Y: w.screen.Y, Width: w.screen.Width, Height: TitleBarHeight})
	ctx.Commit(w.clip, windowTitleBar, nil)
	ctx.PushRect(w.screen, 1)
	ctx.Commit(w.clip, windowOutline, nil)
}

func (w *Window) HandleRoutedMessage(u *UserInterface, msg *UiMessage) {
	w.Widget.HandleRoutedMessage(u, msg)

	if msg.IsTo() {
		if msg.Destination != w.handle {
			return
		}
		switch data := msg.Data.(type) {
		case WindowOpen:
			w.open(u, data)
		case WindowClose:
			w.close(u)
		case TextSet:
			if w.title.IsSome() {
				u.SendMessage(TextMessage(w.title, ToWidget, data.Text))
			}
		}
		return
	}

	switch data := msg.Data.(type) {
	case MouseDown:
		if msg.Destination != w.handle && msg.Destination != w.title {
			return
		}
		if data.Pos.Y-w.screen.Y <= TitleBarHeight {
			w.dragging = true
			u.CaptureMouse(w.handle)
		}
		msg.SetHandled()
	case MouseMove:
		if w.dragging {
			w.Bounds.X += data.Delta.X
			w.Bounds.Y += data.Delta.Y
			msg.SetHandled()
		}
	case MouseUp:
		if w.dragging {
			w.dragging = false
			u.ReleaseMouse()
			msg.SetHandled()
		}
	}
}

func (w *Window) open(u *UserInterface, data WindowOpen) {
	w.visible = true
	if data.Center {
		size := u.ScreenSize()
		w.Bounds.X = (size.X - w.Bounds.Width) / 2
		w.Bounds.Y = (size.Y - w.Bounds.Height) / 2
	}
	if data.Modal {
		u.PushModal(w.handle)
	}
	u.BringToFront(w.handle)
}

func (w *Window) close(u *UserInterface) {
	w.visible = false
	w.dragging = false
	u.PopModal(w.handle)
}

type WindowBuilder struct {
	widget  *WidgetBuilder
	title   string
	content Handle
	open    bool
}

func NewWindowBuilder(wb *WidgetBuilder) *WindowBuilder {
	return &WindowBuilder{widget: wb, open: true}
}

func (b *WindowBuilder) WithTitle(title string) *WindowBuilder {
	b.title = title
	return b
}

// WithContent sets the node placed under the title bar. Its bounds are
// taken relative to the content area.
func (b *WindowBuilder) WithContent(content Handle) *WindowBuilder {
	b.content = content
	return b
}

func (b *WindowBuilder) Open(open bool) *WindowBuilder {
	b.open = open
	return b
}

func (b *WindowBuilder) build(u *UserInterface) Window {
	bounds := b.widget.widget.Bounds
	title := NewTextBuilder(NewWidgetBuilder().
		WithBounds(6, 0, bounds.Width-12, TitleBarHeight)).
		WithText(b.title).
		Build(u)
	b.widget.WithChild(title)

	if cw := u.widget(b.content); cw != nil {
		cw.Bounds.Y += TitleBarHeight
		b.widget.WithChild(b.content)
	}
	b.widget.WithVisibility(b.open)
	return Window{Widget: b.widget.Build(), title: title, content: b.content}
}

func (b *WindowBuilder) Build(u *UserInterface) Handle {
	w := b.build(u)
	return u.AddNode(&w)
}
