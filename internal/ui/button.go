package ui

import (
	"mirgo/internal/ui/draw"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	buttonNormal   = draw.SolidBrush(rl.Color{R: 60, G: 60, B: 65, A: 255})
	buttonPressed  = draw.SolidBrush(rl.Color{R: 40, G: 40, B: 45, A: 255})
	buttonDisabled = draw.SolidBrush(rl.Color{R: 45, G: 45, B: 48, A: 255})
	buttonOutline  = draw.SolidBrush(rl.Color{R: 90, G: 90, B: 95, A: 255})
)

// Button emits ButtonClick when pressed and released over itself.
type Button struct {
	Widget
	content Handle
	pressed bool
}

// Content is the text node showing the button caption, if any.
func (b *Button) Content() Handle { return b.content }

func (b *Button) Draw(ctx *draw.DrawingContext) {
	brush := buttonNormal
	switch {
	case !b.enabled:
		brush = buttonDisabled
	case b.pressed:
		brush = buttonPressed
	}
	ctx.PushRectFilled(b.screen)
	ctx.Commit(b.clip, brush, nil)
	ctx.PushRect(b.screen, 1)
	ctx.Commit(b.clip, buttonOutline, nil)
}

func (b *Button) HandleRoutedMessage(u *UserInterface, msg *UiMessage) {
	b.Widget.HandleRoutedMessage(u, msg)

	switch data := msg.Data.(type) {
	case MouseDown:
		if data.Button != MouseLeft || !u.IsDescendant(msg.Destination, b.handle) {
			return
		}
		b.pressed = true
		u.CaptureMouse(b.handle)
		msg.SetHandled()
	case MouseUp:
		if !b.pressed {
			return
		}
		b.pressed = false
		u.ReleaseMouse()
		if b.enabled && contains(b.clip, data.Pos) {
			u.SendMessage(ButtonClickMessage(b.handle, FromWidget))
		}
		msg.SetHandled()
	case TextSet:
		if msg.Destination == b.handle && msg.IsTo() && b.content.IsSome() {
			u.SendMessage(TextMessage(b.content, ToWidget, data.Text))
		}
	}
}

type ButtonBuilder struct {
	widget   *WidgetBuilder
	text     string
	fontSize float32
}

func NewButtonBuilder(wb *WidgetBuilder) *ButtonBuilder {
	return &ButtonBuilder{widget: wb, fontSize: DefaultFontSize}
}

func (b *ButtonBuilder) WithText(text string) *ButtonBuilder {
	b.text = text
	return b
}

func (b *ButtonBuilder) WithFontSize(size float32) *ButtonBuilder {
	b.fontSize = size
	return b
}

func (b *ButtonBuilder) Build(u *UserInterface) Handle {
	var content Handle
	if b.text != "" {
		bounds := b.widget.widget.Bounds
		content = NewTextBuilder(NewWidgetBuilder().
			WithBounds(4, 0, bounds.Width-8, bounds.Height)).
			WithText(b.text).
			WithFontSize(b.fontSize).
			Build(u)
		b.widget.WithChild(content)
	}
	return u.AddNode(&Button{Widget: b.widget.Build(), content: content})
}
