package absm

import (
	"fmt"
	"log"
	"slices"

	"mirgo/internal/ui"
	"mirgo/internal/ui/draw"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	StateWidth  = 120
	StateHeight = 40
)

var (
	stateBrush      = draw.SolidBrush(rl.Color{R: 50, G: 50, B: 56, A: 255})
	stateLineBrush  = draw.SolidBrush(rl.Color{R: 150, G: 150, B: 160, A: 255})
	connectionBrush = draw.SolidBrush(rl.Color{R: 230, G: 230, B: 230, A: 255})
)

// StateNode is a named box on the canvas. It can be dragged with the left
// mouse button.
type StateNode struct {
	ui.Border
	name     string
	dragging bool
}

func (s *StateNode) Name() string { return s.name }

func (s *StateNode) HandleRoutedMessage(u *ui.UserInterface, msg *ui.UiMessage) {
	s.Border.HandleRoutedMessage(u, msg)
	if !msg.IsFrom() {
		return
	}

	switch data := msg.Data.(type) {
	case ui.MouseDown:
		if data.Button != ui.MouseLeft || !u.IsDescendant(msg.Destination, s.Handle()) {
			return
		}
		s.dragging = true
		u.CaptureMouse(s.Handle())
		msg.SetHandled()
	case ui.MouseMove:
		if s.dragging {
			s.Bounds.X += data.Delta.X
			s.Bounds.Y += data.Delta.Y
			msg.SetHandled()
		}
	case ui.MouseUp:
		if s.dragging {
			s.dragging = false
			u.ReleaseMouse()
			msg.SetHandled()
		}
	}
}

// Canvas owns the state nodes and connections of one state machine.
// Connections follow their nodes on every update.
type Canvas struct {
	ui.Widget
	states      []ui.Handle
	connections []ui.Handle
}

func (c *Canvas) States() []ui.Handle      { return c.states }
func (c *Canvas) Connections() []ui.Handle { return c.connections }

func (c *Canvas) Draw(ctx *draw.DrawingContext) {
	if c.Background.Color.A == 0 {
		return
	}
	ctx.PushRectFilled(c.ScreenBounds())
	ctx.Commit(c.ClipBounds(), c.Background, nil)
}

func (c *Canvas) Update(u *ui.UserInterface, deltaTime float32) {
	for _, h := range c.connections {
		if conn, ok := ui.NodeAs[*Connection](u, h); ok {
			conn.Bounds.Width = c.Bounds.Width
			conn.Bounds.Height = c.Bounds.Height
			conn.Sync(u)
		}
	}
}

// AddState places a new state node at pos, relative to the canvas.
func (c *Canvas) AddState(u *ui.UserInterface, name string, pos rl.Vector2) ui.Handle {
	label := ui.NewTextBuilder(ui.NewWidgetBuilder().
		WithBounds(6, 0, StateWidth-12, StateHeight)).
		WithText(name).
		Build(u)
	wb := ui.NewWidgetBuilder().
		WithName(name).
		WithBounds(pos.X, pos.Y, StateWidth, StateHeight).
		WithBackground(stateBrush).
		WithForeground(stateLineBrush).
		WithCursor(ui.CursorMove).
		WithChild(label)
	node := &StateNode{Border: ui.Border{Widget: wb.Build(), Thickness: 1}, name: name}
	h := u.AddNode(node)
	u.LinkNodes(h, c.Handle())
	c.states = append(c.states, h)
	return h
}

// Connect adds a connection from source to dest. Both must be states of
// this canvas.
func (c *Canvas) Connect(u *ui.UserInterface, source, dest ui.Handle) (ui.Handle, error) {
	if !slices.Contains(c.states, source) || !slices.Contains(c.states, dest) {
		return ui.NoHandle, fmt.Errorf("connect %v -> %v: not a state of this canvas", source, dest)
	}
	if source == dest {
		return ui.NoHandle, fmt.Errorf("connect %v to itself", source)
	}

	// Connections cover the whole canvas and must not take mouse input.
	h := NewConnectionBuilder(ui.NewWidgetBuilder().
		WithBounds(0, 0, c.Bounds.Width, c.Bounds.Height).
		WithForeground(connectionBrush).
		WithEnabled(false)).
		WithSource(source).
		WithDest(dest).
		Build(u)
	u.LinkNodes(h, c.Handle())
	c.connections = append(c.connections, h)
	return h, nil
}

// RemoveState removes a state node together with every connection that
// touches it.
func (c *Canvas) RemoveState(u *ui.UserInterface, state ui.Handle) {
	i := slices.Index(c.states, state)
	if i < 0 {
		return
	}
	c.states = slices.Delete(c.states, i, i+1)

	c.connections = slices.DeleteFunc(c.connections, func(h ui.Handle) bool {
		conn, ok := ui.NodeAs[*Connection](u, h)
		if !ok {
			return true
		}
		if conn.Segment.Source == state || conn.Segment.Dest == state {
			u.RemoveNode(h)
			return true
		}
		return false
	})
	u.RemoveNode(state)
}

// ExportPNG renders the canvas, without text, to a PNG of the canvas
// size with the canvas origin at the top left.
func (c *Canvas) ExportPNG(u *ui.UserInterface, path string) error {
	u.Update(0)
	ctx := draw.NewDrawingContext()
	u.DrawNode(c.Handle(), ctx)

	screen := c.ScreenBounds()
	ctx.Translate(rl.Vector2{X: -screen.X, Y: -screen.Y})
	width := int(screen.Width)
	height := int(screen.Height)
	if err := draw.SavePNG(ctx, width, height, path); err != nil {
		return fmt.Errorf("export canvas: %w", err)
	}
	log.Printf("Exported state machine canvas to %s", path)
	return nil
}

type CanvasBuilder struct {
	widget *ui.WidgetBuilder
}

func NewCanvasBuilder(wb *ui.WidgetBuilder) *CanvasBuilder {
	return &CanvasBuilder{widget: wb}
}

func (b *CanvasBuilder) Build(u *ui.UserInterface) ui.Handle {
	return u.AddNode(&Canvas{Widget: b.widget.Build()})
}
