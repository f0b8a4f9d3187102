package absm

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"mirgo/internal/ui"
	"mirgo/internal/ui/draw"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pump(u *ui.UserInterface) {
	for {
		if _, ok := u.PollMessage(); !ok {
			return
		}
	}
}

func TestDrawConnection(t *testing.T) {
	ctx := draw.NewDrawingContext()
	clip := rl.Rectangle{X: 0, Y: 0, Width: 200, Height: 200}
	brush := draw.SolidBrush(rl.Green)

	DrawConnection(ctx, rl.Vector2{X: 10, Y: 50}, rl.Vector2{X: 110, Y: 50}, clip, brush)

	cmds := ctx.Commands()
	require.Len(t, cmds, 1)
	cmd := cmds[0]
	assert.Equal(t, clip, cmd.ClipBounds)
	assert.Equal(t, brush, cmd.Brush)
	assert.Nil(t, cmd.Texture)
	assert.Len(t, cmd.Vertices, 4)
	assert.Len(t, cmd.Triangles, 2)
	// thickness 2 around y=50
	assert.InDelta(t, 49, cmd.Bounds.Y, 1e-4)
	assert.InDelta(t, 2, cmd.Bounds.Height, 1e-4)
	assert.InDelta(t, 100, cmd.Bounds.Width, 1e-4)
}

func TestDrawConnectionSamePointDrawsNothing(t *testing.T) {
	ctx := draw.NewDrawingContext()
	p := rl.Vector2{X: 5, Y: 5}
	DrawConnection(ctx, p, p, rl.Rectangle{Width: 10, Height: 10}, draw.SolidBrush(rl.White))
	assert.Empty(t, ctx.Commands())
}

func TestConnectionBuilderFetchesCenters(t *testing.T) {
	u := ui.New(800, 600)
	a := ui.NewBorderBuilder(ui.NewWidgetBuilder().WithBounds(10, 10, 100, 40)).Build(u)
	b := ui.NewBorderBuilder(ui.NewWidgetBuilder().WithBounds(300, 200, 50, 50)).Build(u)

	h := NewConnectionBuilder(ui.NewWidgetBuilder().
		WithBounds(0, 0, 800, 600).
		WithForeground(draw.SolidBrush(rl.Red))).
		WithSource(a).
		WithDest(b).
		Build(u)

	conn, ok := ui.NodeAs[*Connection](u, h)
	require.True(t, ok)
	assert.Equal(t, Segment{
		Source:    a,
		SourcePos: rl.Vector2{X: 60, Y: 30},
		Dest:      b,
		DestPos:   rl.Vector2{X: 325, Y: 225},
	}, conn.Segment)

	ctx := u.Draw()
	var found bool
	for _, cmd := range ctx.Commands() {
		if cmd.Brush.Color == rl.Red {
			found = true
			assert.Equal(t, rl.Rectangle{Width: 800, Height: 600}, cmd.ClipBounds)
			assert.Nil(t, cmd.Texture)
		}
	}
	assert.True(t, found, "connection was not drawn")
}

func TestConnectionDefaultMessageHandling(t *testing.T) {
	u := ui.New(800, 600)
	h := NewConnectionBuilder(ui.NewWidgetBuilder()).Build(u)
	conn, _ := ui.NodeAs[*Connection](u, h)
	assert.Equal(t, rl.Vector2{}, conn.Segment.SourcePos, "missing endpoints resolve to the origin")

	u.SendMessage(ui.EnabledMessage(h, ui.ToWidget, false))
	pump(u)
	assert.False(t, conn.Enabled())
}

func newCanvas(t *testing.T) (*ui.UserInterface, *Canvas) {
	t.Helper()
	u := ui.New(800, 600)
	h := NewCanvasBuilder(ui.NewWidgetBuilder().WithBounds(0, 0, 800, 600)).Build(u)
	c, ok := ui.NodeAs[*Canvas](u, h)
	require.True(t, ok)
	return u, c
}

func TestCanvasConnectionsFollowStates(t *testing.T) {
	u, c := newCanvas(t)
	idle := c.AddState(u, "Idle", rl.Vector2{X: 100, Y: 100})
	walk := c.AddState(u, "Walk", rl.Vector2{X: 400, Y: 100})
	h, err := c.Connect(u, idle, walk)
	require.NoError(t, err)
	u.Update(0)

	conn, _ := ui.NodeAs[*Connection](u, h)
	assert.Equal(t, rl.Vector2{X: 160, Y: 120}, conn.Segment.SourcePos)
	assert.Equal(t, rl.Vector2{X: 460, Y: 120}, conn.Segment.DestPos)

	// drag Walk down by 50
	u.ProcessOsEvent(ui.CursorMovedEvent{Position: rl.Vector2{X: 460, Y: 120}})
	u.ProcessOsEvent(ui.MouseInputEvent{Button: ui.MouseLeft, State: ui.Pressed})
	pump(u)
	u.ProcessOsEvent(ui.CursorMovedEvent{Position: rl.Vector2{X: 460, Y: 170}})
	u.ProcessOsEvent(ui.MouseInputEvent{Button: ui.MouseLeft, State: ui.Released})
	pump(u)
	u.Update(0)

	state, _ := ui.NodeAs[*StateNode](u, walk)
	assert.Equal(t, "Walk", state.Name())
	assert.Equal(t, float32(150), state.Bounds.Y)
	assert.Equal(t, rl.Vector2{X: 460, Y: 170}, conn.Segment.DestPos)
	assert.Equal(t, rl.Vector2{X: 160, Y: 120}, conn.Segment.SourcePos)
}

func TestCanvasConnectRejectsForeignNodes(t *testing.T) {
	u, c := newCanvas(t)
	idle := c.AddState(u, "Idle", rl.Vector2{})
	other := ui.NewBorderBuilder(ui.NewWidgetBuilder()).Build(u)

	_, err := c.Connect(u, idle, other)
	assert.Error(t, err)
	_, err = c.Connect(u, idle, idle)
	assert.Error(t, err)
	assert.Empty(t, c.Connections())
}

func TestCanvasRemoveState(t *testing.T) {
	u, c := newCanvas(t)
	a := c.AddState(u, "A", rl.Vector2{X: 0, Y: 0})
	b := c.AddState(u, "B", rl.Vector2{X: 200, Y: 0})
	d := c.AddState(u, "C", rl.Vector2{X: 400, Y: 0})
	ab, err := c.Connect(u, a, b)
	require.NoError(t, err)
	bc, err := c.Connect(u, b, d)
	require.NoError(t, err)
	ac, err := c.Connect(u, a, d)
	require.NoError(t, err)

	c.RemoveState(u, b)
	assert.Equal(t, []ui.Handle{a, d}, c.States())
	assert.Equal(t, []ui.Handle{ac}, c.Connections())
	assert.Nil(t, u.Node(ab))
	assert.Nil(t, u.Node(bc))
	assert.Nil(t, u.Node(b))
}

func TestCanvasExportPNG(t *testing.T) {
	u, c := newCanvas(t)
	a := c.AddState(u, "A", rl.Vector2{X: 10, Y: 10})
	b := c.AddState(u, "B", rl.Vector2{X: 300, Y: 200})
	_, err := c.Connect(u, a, b)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "machine.png")
	require.NoError(t, c.ExportPNG(u, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestCanvasExportStartsAtCanvasOrigin(t *testing.T) {
	u := ui.New(400, 300)
	h := NewCanvasBuilder(ui.NewWidgetBuilder().
		WithBounds(0, 36, 400, 264).
		WithBackground(draw.SolidBrush(rl.Blue))).
		Build(u)
	c, ok := ui.NodeAs[*Canvas](u, h)
	require.True(t, ok)
	c.AddState(u, "Idle", rl.Vector2{X: 0, Y: 0})

	path := filepath.Join(t.TempDir(), "machine.png")
	require.NoError(t, c.ExportPNG(u, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 264, img.Bounds().Dy())
	// the state box sits at the canvas origin, not below an empty band
	r, g, b, _ := img.At(StateWidth/2, StateHeight/2).RGBA()
	assert.InDelta(t, 0xffff*uint32(stateBrush.Color.R)/255, r, 0x300)
	assert.InDelta(t, 0xffff*uint32(stateBrush.Color.G)/255, g, 0x300)
	assert.InDelta(t, 0xffff*uint32(stateBrush.Color.B)/255, b, 0x300)
	_, _, b, _ = img.At(300, 200).RGBA()
	assert.InDelta(t, 0xffff*uint32(rl.Blue.B)/255, b, 0x300)
}

func TestConnectionsFollowCanvasResize(t *testing.T) {
	u, c := newCanvas(t)
	a := c.AddState(u, "A", rl.Vector2{X: 10, Y: 10})
	b := c.AddState(u, "B", rl.Vector2{X: 700, Y: 500})
	h, err := c.Connect(u, a, b)
	require.NoError(t, err)

	u.SetScreenSize(1600, 1200)
	c.Bounds.Width = 1600
	c.Bounds.Height = 1200
	u.Update(0)

	conn, ok := ui.NodeAs[*Connection](u, h)
	require.True(t, ok)
	assert.Equal(t, rl.Rectangle{X: 0, Y: 0, Width: 1600, Height: 1200}, conn.ClipBounds())
}
