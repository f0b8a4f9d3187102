package ui

import (
	"mirgo/internal/ui/draw"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const DefaultFontSize = 15

// Text draws a single block of text, vertically centred in its bounds.
type Text struct {
	Widget
	text string
	size float32
}

func (t *Text) Text() string { return t.text }

func (t *Text) Draw(ctx *draw.DrawingContext) {
	if t.text == "" {
		return
	}
	lines := float32(1)
	for _, r := range t.text {
		if r == '\n' {
			lines++
		}
	}
	y := t.screen.Y + (t.screen.Height-lines*t.size)/2
	if y < t.screen.Y {
		y = t.screen.Y
	}
	ctx.Commit(t.clip, t.Foreground, draw.TextRun{Text: t.text, Pos: rl.Vector2{X: t.screen.X + 2, Y: y}, Size: t.size})
}

func (t *Text) HandleRoutedMessage(u *UserInterface, msg *UiMessage) {
	t.Widget.HandleRoutedMessage(u, msg)
	if msg.Destination != t.handle || !msg.IsTo() {
		return
	}
	if data, ok := msg.Data.(TextSet); ok {
		t.text = data.Text
	}
}

type TextBuilder struct {
	widget *WidgetBuilder
	text   string
	size   float32
}

func NewTextBuilder(wb *WidgetBuilder) *TextBuilder {
	return &TextBuilder{widget: wb, size: DefaultFontSize}
}

func (b *TextBuilder) WithText(text string) *TextBuilder {
	b.text = text
	return b
}

func (b *TextBuilder) WithFontSize(size float32) *TextBuilder {
	b.size = size
	return b
}

func (b *TextBuilder) Build(u *UserInterface) Handle {
	return u.AddNode(&Text{Widget: b.widget.Build(), text: b.text, size: b.size})
}
