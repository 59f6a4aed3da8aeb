// SVG output. Same layout as the PNG path; sizes are in pixels at the
// requested DPI so both exports share one frame.

package render

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/gogpu/gg"

	"github.com/ha1tch/automata-plot/pkg/canvas"
	"github.com/ha1tch/automata-plot/pkg/geom"
)

// WriteSVG writes fig to w as a standalone SVG document.
func WriteSVG(w io.Writer, fig *canvas.Figure, opts Options) error {
	opts = opts.withDefaults()

	scene, fr, err := resolve(fig, opts)
	if err != nil {
		return err
	}
	defer scene.Fonts.Close()

	family := "monospace"
	if scene.Fonts.Family() == canvas.FamilySans {
		family = "sans-serif"
	}

	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
`)
	sb.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
`, fr.width, fr.height, fr.width, fr.height))
	sb.WriteString(fmt.Sprintf(`<rect width="100%%" height="100%%" fill="white"/>
<g stroke-linejoin="round" stroke-linecap="butt" font-family="%s">
`, family))

	for i, p := range scene.Prims {
		switch p := p.(type) {
		case canvas.FillPath:
			sb.WriteString(fmt.Sprintf(`<path d="%s" fill="%s"%s stroke="none"/>
`, pathData(fr, p.Path), svgColor(p.Color), svgOpacity("fill-opacity", p.Color)))

		case canvas.StrokePath:
			sb.WriteString(fmt.Sprintf(`<path d="%s" fill="none" stroke="%s"%s stroke-width="%.2f"/>
`, pathData(fr, p.Path), svgColor(p.Color), svgOpacity("stroke-opacity", p.Color), p.Width*fr.scale))

		case canvas.Glyphs:
			sb.WriteString(fmt.Sprintf(`<text fill="%s"%s>`, svgColor(p.Color), svgOpacity("fill-opacity", p.Color)))
			for _, run := range p.Runs {
				o := fr.pt(run.Origin)
				sb.WriteString(fmt.Sprintf(`<tspan x="%.2f" y="%.2f" font-size="%.2f"%s>%s</tspan>`,
					o.X, o.Y, run.Size*fr.scale, fontAttrs(run.Style), html.EscapeString(run.Text)))
			}
			sb.WriteString("</text>\n")

		default:
			return fmt.Errorf("render: primitive %d: unsupported primitive %T", i, p)
		}
	}

	sb.WriteString("</g>\n</svg>\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("render: write svg: %w", err)
	}
	return nil
}

func pathData(fr frame, path geom.Path) string {
	var sb strings.Builder
	for _, seg := range path.Transform(fr.pt) {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		switch seg.Op {
		case geom.MoveTo:
			sb.WriteString("M")
		case geom.LineTo:
			sb.WriteString("L")
		case geom.QuadTo:
			sb.WriteString("Q")
		case geom.CubicTo:
			sb.WriteString("C")
		case geom.Close:
			sb.WriteString("Z")
		}
		for _, p := range seg.Pts {
			sb.WriteString(fmt.Sprintf(" %.2f,%.2f", p.X, p.Y))
		}
	}
	return sb.String()
}

func svgColor(c gg.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

func svgOpacity(attr string, c gg.RGBA) string {
	if c.A >= 1 {
		return ""
	}
	return fmt.Sprintf(` %s="%.3g"`, attr, c.A)
}

func fontAttrs(s canvas.FontStyle) string {
	var attrs string
	if s.Bold {
		attrs += ` font-weight="bold"`
	}
	if s.Italic {
		attrs += ` font-style="italic"`
	}
	return attrs
}
