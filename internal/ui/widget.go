package ui

import (
	"mirgo/internal/ui/draw"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Control is implemented by every node kept in a UserInterface.
type Control interface {
	Base() *Widget
	Draw(ctx *draw.DrawingContext)
	HandleRoutedMessage(u *UserInterface, msg *UiMessage)
}

// Updater is implemented by controls that need a tick before layout.
type Updater interface {
	Update(u *UserInterface, deltaTime float32)
}

// Selectable is implemented by list items that render a selected state.
type Selectable interface {
	SetSelected(selected bool)
}

// Widget holds the state shared by all controls. Bounds are relative to
// the parent; screen and clip bounds are refreshed by the layout pass.
type Widget struct {
	Name       string
	Bounds     rl.Rectangle
	Foreground draw.Brush
	Background draw.Brush
	Cursor     CursorIcon

	handle   Handle
	parent   Handle
	children []Handle
	enabled  bool
	visible  bool
	screen   rl.Rectangle
	clip     rl.Rectangle
}

func (w *Widget) Base() *Widget              { return w }
func (w *Widget) Handle() Handle             { return w.handle }
func (w *Widget) Parent() Handle             { return w.parent }
func (w *Widget) Children() []Handle         { return w.children }
func (w *Widget) Enabled() bool              { return w.enabled }
func (w *Widget) Visible() bool              { return w.visible }
func (w *Widget) ScreenBounds() rl.Rectangle { return w.screen }
func (w *Widget) ClipBounds() rl.Rectangle   { return w.clip }

// Center is the middle of the widget in screen space.
func (w *Widget) Center() rl.Vector2 {
	return rl.Vector2{X: w.screen.X + w.screen.Width/2, Y: w.screen.Y + w.screen.Height/2}
}

// Draw draws nothing; plain widgets are containers.
func (w *Widget) Draw(ctx *draw.DrawingContext) {}

// HandleRoutedMessage applies the messages every widget understands.
func (w *Widget) HandleRoutedMessage(u *UserInterface, msg *UiMessage) {
	if msg.Destination != w.handle || !msg.IsTo() {
		return
	}
	if data, ok := msg.Data.(WidgetEnabled); ok {
		w.enabled = data.Enabled
	}
}

// WidgetBuilder collects the common widget properties for a control
// builder.
type WidgetBuilder struct {
	widget Widget
}

func NewWidgetBuilder() *WidgetBuilder {
	return &WidgetBuilder{
		widget: Widget{
			Foreground: draw.SolidBrush(rl.White),
			enabled:    true,
			visible:    true,
		},
	}
}

func (b *WidgetBuilder) WithName(name string) *WidgetBuilder {
	b.widget.Name = name
	return b
}

func (b *WidgetBuilder) WithBounds(x, y, width, height float32) *WidgetBuilder {
	b.widget.Bounds = rl.Rectangle{X: x, Y: y, Width: width, Height: height}
	return b
}

func (b *WidgetBuilder) WithHeight(height float32) *WidgetBuilder {
	b.widget.Bounds.Height = height
	return b
}

func (b *WidgetBuilder) WithForeground(brush draw.Brush) *WidgetBuilder {
	b.widget.Foreground = brush
	return b
}

func (b *WidgetBuilder) WithBackground(brush draw.Brush) *WidgetBuilder {
	b.widget.Background = brush
	return b
}

func (b *WidgetBuilder) WithEnabled(enabled bool) *WidgetBuilder {
	b.widget.enabled = enabled
	return b
}

func (b *WidgetBuilder) WithVisibility(visible bool) *WidgetBuilder {
	b.widget.visible = visible
	return b
}

func (b *WidgetBuilder) WithCursor(cursor CursorIcon) *WidgetBuilder {
	b.widget.Cursor = cursor
	return b
}

func (b *WidgetBuilder) WithChild(child Handle) *WidgetBuilder {
	if child.IsSome() {
		b.widget.children = append(b.widget.children, child)
	}
	return b
}

// Build returns the configured widget. Children are linked when the
// owning control is added to a UserInterface.
func (b *WidgetBuilder) Build() Widget {
	w := b.widget
	w.children = append([]Handle(nil), b.widget.children...)
	return w
}
