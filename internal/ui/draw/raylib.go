package draw

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RaylibRenderer replays commands through raylib. Must be called between
// rl.BeginDrawing and rl.EndDrawing.
type RaylibRenderer struct {
	Font rl.Font
}

func (r *RaylibRenderer) Render(ctx *DrawingContext) {
	for _, cmd := range ctx.Commands() {
		if cmd.ClipBounds.Width <= 0 || cmd.ClipBounds.Height <= 0 {
			continue
		}
		rl.BeginScissorMode(int32(cmd.ClipBounds.X), int32(cmd.ClipBounds.Y), int32(cmd.ClipBounds.Width), int32(cmd.ClipBounds.Height))

		for _, tri := range cmd.Triangles {
			a := cmd.Vertices[tri[0]].Pos
			b := cmd.Vertices[tri[1]].Pos
			c := cmd.Vertices[tri[2]].Pos
			// raylib culls clockwise triangles
			if cross(a, b, c) > 0 {
				b, c = c, b
			}
			rl.DrawTriangle(a, b, c, cmd.Brush.Color)
		}

		if run, ok := cmd.Texture.(TextRun); ok {
			r.drawText(run, cmd.Brush.Color)
		}

		rl.EndScissorMode()
	}
}

func (r *RaylibRenderer) drawText(run TextRun, color rl.Color) {
	y := run.Pos.Y
	for _, line := range strings.Split(run.Text, "\n") {
		if r.Font.Texture.ID > 0 {
			rl.DrawTextEx(r.Font, line, rl.Vector2{X: run.Pos.X, Y: y}, run.Size, 0, color)
		} else {
			rl.DrawText(line, int32(run.Pos.X), int32(y), int32(run.Size), color)
		}
		y += run.Size + 2
	}
}

func cross(a, b, c rl.Vector2) float32 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
