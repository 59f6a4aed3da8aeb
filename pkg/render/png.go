// Raster output through gg. Paths are filled and stroked as vectors and
// anti-aliased by the rasterizer; text uses the same Go fonts the layout
// was measured with.

package render

import (
	"fmt"
	"io"

	"github.com/gogpu/gg"

	"github.com/ha1tch/automata-plot/pkg/canvas"
	"github.com/ha1tch/automata-plot/pkg/geom"
)

// WritePNG rasterizes fig at opts.DPI and encodes it to w.
func WritePNG(w io.Writer, fig *canvas.Figure, opts Options) error {
	opts = opts.withDefaults()

	scene, fr, err := resolve(fig, opts)
	if err != nil {
		return err
	}
	defer scene.Fonts.Close()

	dc := gg.NewContext(fr.width, fr.height)
	defer dc.Close()
	dc.ClearWithColor(gg.White)
	dc.SetLineJoin(gg.LineJoinRound)
	dc.SetLineCap(gg.LineCapButt)

	for i, p := range scene.Prims {
		if err := paint(dc, fr, scene.Fonts, p); err != nil {
			return fmt.Errorf("render: primitive %d: %w", i, err)
		}
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

func paint(dc *gg.Context, fr frame, fonts *canvas.FontBook, p canvas.Primitive) error {
	switch p := p.(type) {
	case canvas.FillPath:
		tracePath(dc, fr, p.Path)
		setColor(dc, p.Color)
		return dc.Fill()

	case canvas.StrokePath:
		tracePath(dc, fr, p.Path)
		setColor(dc, p.Color)
		dc.SetLineWidth(p.Width * fr.scale)
		return dc.Stroke()

	case canvas.Glyphs:
		setColor(dc, p.Color)
		for _, run := range p.Runs {
			dc.SetFont(fonts.Face(run.Style, run.Size*fr.scale))
			o := fr.pt(run.Origin)
			dc.DrawString(run.Text, o.X, o.Y)
		}
		return nil

	default:
		return fmt.Errorf("unsupported primitive %T", p)
	}
}

func setColor(dc *gg.Context, c gg.RGBA) {
	dc.SetRGBA(c.R, c.G, c.B, c.A)
}

func tracePath(dc *gg.Context, fr frame, path geom.Path) {
	for _, seg := range path.Transform(fr.pt) {
		pts := seg.Pts
		switch seg.Op {
		case geom.MoveTo:
			dc.MoveTo(pts[0].X, pts[0].Y)
		case geom.LineTo:
			dc.LineTo(pts[0].X, pts[0].Y)
		case geom.QuadTo:
			dc.QuadraticTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y)
		case geom.CubicTo:
			dc.CubicTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case geom.Close:
			dc.ClosePath()
		}
	}
}
