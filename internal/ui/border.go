package ui

import (
	"mirgo/internal/ui/draw"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var selectionBrush = draw.SolidBrush(rl.Color{R: 70, G: 100, B: 160, A: 255})

// Border fills its bounds with the background brush and outlines them.
type Border struct {
	Widget
	Thickness float32
	selected  bool
}

func (b *Border) SetSelected(selected bool) { b.selected = selected }
func (b *Border) Selected() bool            { return b.selected }

func (b *Border) Draw(ctx *draw.DrawingContext) {
	background := b.Background
	if b.selected {
		background = selectionBrush
	}
	if background.Color.A > 0 {
		ctx.PushRectFilled(b.screen)
		ctx.Commit(b.clip, background, nil)
	}
	if b.Thickness > 0 {
		ctx.PushRect(b.screen, b.Thickness)
		ctx.Commit(b.clip, b.Foreground, nil)
	}
}

type BorderBuilder struct {
	widget    *WidgetBuilder
	thickness float32
}

func NewBorderBuilder(wb *WidgetBuilder) *BorderBuilder {
	return &BorderBuilder{widget: wb}
}

func (b *BorderBuilder) WithThickness(thickness float32) *BorderBuilder {
	b.thickness = thickness
	return b
}

func (b *BorderBuilder) Build(u *UserInterface) Handle {
	return u.AddNode(&Border{Widget: b.widget.Build(), Thickness: b.thickness})
}
