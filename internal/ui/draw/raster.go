package draw

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"
)

// Rasterize renders the committed commands into an image with the
// software renderer. Text runs are skipped: the software path has no
// font loaded.
func Rasterize(ctx *DrawingContext, width, height int) (image.Image, error) {
	dc := gg.NewContext(width, height)
	defer dc.Close()

	if err := rasterize(dc, ctx); err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// SavePNG rasterizes ctx and writes it to path.
func SavePNG(ctx *DrawingContext, width, height int, path string) error {
	dc := gg.NewContext(width, height)
	defer dc.Close()

	if err := rasterize(dc, ctx); err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	return nil
}

func rasterize(dc *gg.Context, ctx *DrawingContext) error {
	for _, cmd := range ctx.Commands() {
		if len(cmd.Triangles) == 0 {
			continue
		}
		c := cmd.Brush.Color
		dc.SetRGBA(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, float64(c.A)/255)
		dc.ClipRect(float64(cmd.ClipBounds.X), float64(cmd.ClipBounds.Y), float64(cmd.ClipBounds.Width), float64(cmd.ClipBounds.Height))

		for _, tri := range cmd.Triangles {
			a := cmd.Vertices[tri[0]].Pos
			b := cmd.Vertices[tri[1]].Pos
			p := cmd.Vertices[tri[2]].Pos
			dc.MoveTo(float64(a.X), float64(a.Y))
			dc.LineTo(float64(b.X), float64(b.Y))
			dc.LineTo(float64(p.X), float64(p.Y))
			dc.ClosePath()
		}
		if err := dc.Fill(); err != nil {
			dc.ResetClip()
			return fmt.Errorf("fill command: %w", err)
		}
		dc.ResetClip()
	}
	return nil
}
