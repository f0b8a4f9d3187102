package draw

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Brush is the paint used to fill committed geometry.
type Brush struct {
	Color rl.Color
}

// SolidBrush returns a brush that fills with a single color.
func SolidBrush(c rl.Color) Brush {
	return Brush{Color: c}
}

// Vertex is a single point of the triangle soup.
type Vertex struct {
	Pos rl.Vector2
}

// Triangle indexes three vertices of a command.
type Triangle [3]uint32

// CommandTexture is what a command samples from. A nil texture means
// plain brush fill.
type CommandTexture interface {
	commandTexture()
}

// TextRun is a texture made from a line (or lines) of text.
type TextRun struct {
	Text string
	Pos  rl.Vector2
	Size float32
}

func (TextRun) commandTexture() {}

// Command is a batch of geometry sharing clip bounds, brush and texture.
type Command struct {
	ClipBounds rl.Rectangle
	Bounds     rl.Rectangle
	Brush      Brush
	Texture    CommandTexture
	Vertices   []Vertex
	Triangles  []Triangle
}

// DrawingContext collects geometry pushed by widgets. Geometry stays
// pending until Commit turns it into a Command.
type DrawingContext struct {
	vertices  []Vertex
	triangles []Triangle
	commands  []Command
}

func NewDrawingContext() *DrawingContext {
	return &DrawingContext{}
}

// Clear drops all commands and pending geometry.
func (c *DrawingContext) Clear() {
	c.vertices = c.vertices[:0]
	c.triangles = c.triangles[:0]
	c.commands = c.commands[:0]
}

// Commands returns the committed commands in draw order.
func (c *DrawingContext) Commands() []Command {
	return c.commands
}

// PushLine adds a quad of the given thickness between a and b.
func (c *DrawingContext) PushLine(a, b rl.Vector2, thickness float32) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	length := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	if length == 0 {
		return
	}
	half := thickness / 2
	// Perpendicular offset
	nx := -dy / length * half
	ny := dx / length * half

	c.pushQuad(
		rl.Vector2{X: a.X + nx, Y: a.Y + ny},
		rl.Vector2{X: b.X + nx, Y: b.Y + ny},
		rl.Vector2{X: b.X - nx, Y: b.Y - ny},
		rl.Vector2{X: a.X - nx, Y: a.Y - ny},
	)
}

// PushRect adds the outline of r.
func (c *DrawingContext) PushRect(r rl.Rectangle, thickness float32) {
	tl := rl.Vector2{X: r.X, Y: r.Y}
	tr := rl.Vector2{X: r.X + r.Width, Y: r.Y}
	br := rl.Vector2{X: r.X + r.Width, Y: r.Y + r.Height}
	bl := rl.Vector2{X: r.X, Y: r.Y + r.Height}
	c.PushLine(tl, tr, thickness)
	c.PushLine(tr, br, thickness)
	c.PushLine(br, bl, thickness)
	c.PushLine(bl, tl, thickness)
}

// PushRectFilled adds a solid rectangle.
func (c *DrawingContext) PushRectFilled(r rl.Rectangle) {
	c.pushQuad(
		rl.Vector2{X: r.X, Y: r.Y},
		rl.Vector2{X: r.X + r.Width, Y: r.Y},
		rl.Vector2{X: r.X + r.Width, Y: r.Y + r.Height},
		rl.Vector2{X: r.X, Y: r.Y + r.Height},
	)
}

func (c *DrawingContext) pushQuad(p0, p1, p2, p3 rl.Vector2) {
	base := uint32(len(c.vertices))
	c.vertices = append(c.vertices, Vertex{Pos: p0}, Vertex{Pos: p1}, Vertex{Pos: p2}, Vertex{Pos: p3})
	c.triangles = append(c.triangles,
		Triangle{base, base + 1, base + 2},
		Triangle{base, base + 2, base + 3},
	)
}

// Commit turns pending geometry into a command. Text runs carry no
// geometry and are committed even when nothing is pending.
func (c *DrawingContext) Commit(clip rl.Rectangle, brush Brush, texture CommandTexture) {
	if len(c.triangles) == 0 && texture == nil {
		return
	}

	cmd := Command{
		ClipBounds: clip,
		Brush:      brush,
		Texture:    texture,
		Vertices:   append([]Vertex(nil), c.vertices...),
		Triangles:  append([]Triangle(nil), c.triangles...),
	}
	cmd.Bounds = boundsOf(cmd.Vertices)
	c.commands = append(c.commands, cmd)

	c.vertices = c.vertices[:0]
	c.triangles = c.triangles[:0]
}

// Translate moves every committed command, its clip and its text by offset.
func (c *DrawingContext) Translate(offset rl.Vector2) {
	for i := range c.commands {
		cmd := &c.commands[i]
		for j := range cmd.Vertices {
			cmd.Vertices[j].Pos = rl.Vector2Add(cmd.Vertices[j].Pos, offset)
		}
		cmd.Bounds.X += offset.X
		cmd.Bounds.Y += offset.Y
		cmd.ClipBounds.X += offset.X
		cmd.ClipBounds.Y += offset.Y
		if run, ok := cmd.Texture.(TextRun); ok {
			run.Pos = rl.Vector2Add(run.Pos, offset)
			cmd.Texture = run
		}
	}
}

func boundsOf(vertices []Vertex) rl.Rectangle {
	if len(vertices) == 0 {
		return rl.Rectangle{}
	}
	minX, minY := vertices[0].Pos.X, vertices[0].Pos.Y
	maxX, maxY := minX, minY
	for _, v := range vertices[1:] {
		minX = min(minX, v.Pos.X)
		minY = min(minY, v.Pos.Y)
		maxX = max(maxX, v.Pos.X)
		maxY = max(maxY, v.Pos.Y)
	}
	return rl.Rectangle{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Intersect returns the overlap of a and b, or an empty rectangle.
func Intersect(a, b rl.Rectangle) rl.Rectangle {
	x0 := max(a.X, b.X)
	y0 := max(a.Y, b.Y)
	x1 := min(a.X+a.Width, b.X+b.Width)
	y1 := min(a.Y+a.Height, b.Y+b.Height)
	if x1 <= x0 || y1 <= y0 {
		return rl.Rectangle{X: x0, Y: y0}
	}
	return rl.Rectangle{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}
