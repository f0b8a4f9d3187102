// Package absm holds the widgets of the animation state machine editor:
// state nodes laid out on a canvas and the connections between them.
package absm

import (
	"mirgo/internal/ui"
	"mirgo/internal/ui/draw"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const connectionThickness = 2

// Segment is a line between two nodes, with the screen positions it was
// last drawn at.
type Segment struct {
	Source    ui.Handle
	SourcePos rl.Vector2
	Dest      ui.Handle
	DestPos   rl.Vector2
}

// Connection draws the segment between two state nodes. It has no
// children and draws nothing else.
type Connection struct {
	ui.Widget
	Segment Segment
}

// DrawConnection pushes a line from source to dest and commits it.
func DrawConnection(ctx *draw.DrawingContext, source, dest rl.Vector2, clip rl.Rectangle, brush draw.Brush) {
	ctx.PushLine(source, dest, connectionThickness)
	ctx.Commit(clip, brush, nil)
}

func (c *Connection) Draw(ctx *draw.DrawingContext) {
	DrawConnection(ctx, c.Segment.SourcePos, c.Segment.DestPos, c.ClipBounds(), c.Foreground)
}

func (c *Connection) HandleRoutedMessage(u *ui.UserInterface, msg *ui.UiMessage) {
	c.Widget.HandleRoutedMessage(u, msg)
}

// Sync moves the endpoints to the current centres of the source and
// destination nodes.
func (c *Connection) Sync(u *ui.UserInterface) {
	c.Segment.SourcePos = FetchNodeCenter(u, c.Segment.Source)
	c.Segment.DestPos = FetchNodeCenter(u, c.Segment.Dest)
}

// FetchNodeCenter returns the screen-space centre of h, or the origin if
// h does not resolve.
func FetchNodeCenter(u *ui.UserInterface, h ui.Handle) rl.Vector2 {
	r := u.ScreenBounds(h)
	return rl.Vector2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

type ConnectionBuilder struct {
	widget *ui.WidgetBuilder
	source ui.Handle
	dest   ui.Handle
}

func NewConnectionBuilder(wb *ui.WidgetBuilder) *ConnectionBuilder {
	return &ConnectionBuilder{widget: wb, source: ui.NoHandle, dest: ui.NoHandle}
}

func (b *ConnectionBuilder) WithSource(source ui.Handle) *ConnectionBuilder {
	b.source = source
	return b
}

func (b *ConnectionBuilder) WithDest(dest ui.Handle) *ConnectionBuilder {
	b.dest = dest
	return b
}

// Build adds the connection to u. Endpoint positions are taken from the
// nodes as they are placed now.
func (b *ConnectionBuilder) Build(u *ui.UserInterface) ui.Handle {
	return u.AddNode(&Connection{
		Widget: b.widget.Build(),
		Segment: Segment{
			Source:    b.source,
			SourcePos: FetchNodeCenter(u, b.source),
			Dest:      b.dest,
			DestPos:   FetchNodeCenter(u, b.dest),
		},
	})
}
