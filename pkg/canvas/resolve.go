// Resolution of artists into device-independent primitives.
// Output coordinates are typographic points, y up; renderers only have to
// scale, flip and paint.

package canvas

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"

	"github.com/ha1tch/automata-plot/pkg/geom"
)

// flattenTolerance is the curve sampling step in points.
const flattenTolerance = 0.25

// DefaultDPI is the export resolution assumed when none is given.
const DefaultDPI = 300.0

// Primitive is a paint operation in point space.
type Primitive interface {
	Bounds() geom.Rect
}

// FillPath paints the interior of Path.
type FillPath struct {
	Path  geom.Path
	Color gg.RGBA
}

// Bounds implements Primitive.
func (p FillPath) Bounds() geom.Rect { return p.Path.Bounds() }

// StrokePath paints the outline of Path with the given width in points.
type StrokePath struct {
	Path  geom.Path
	Color gg.RGBA
	Width float64
}

// Bounds implements Primitive.
func (p StrokePath) Bounds() geom.Rect { return p.Path.Bounds().Expand(p.Width / 2) }

// TextRun is a piece of text sharing one face, positioned by the start of
// its baseline.
type TextRun struct {
	Text   string
	Origin geom.Point
	Size   float64
	Style  FontStyle
}

// Glyphs paints laid-out text.
type Glyphs struct {
	Runs  []TextRun
	Color gg.RGBA
	Box   geom.Rect
}

// Bounds implements Primitive.
func (g Glyphs) Bounds() geom.Rect { return g.Box }

// Scene is a resolved figure.
type Scene struct {
	Prims  []Primitive
	Bounds geom.Rect
	Fonts  *FontBook
}

// Resolve lays out every artist of f. Invalid colors, unroutable
// connections and unknown artists are reported here, at draw time. dpi is
// the export resolution that pixel-sized connection lengths refer to; zero
// means DefaultDPI.
func (f *Figure) Resolve(fonts *FontBook, dpi float64) (*Scene, error) {
	if fonts == nil {
		return nil, fmt.Errorf("canvas: resolve: nil font book")
	}
	if dpi < 0 {
		return nil, fmt.Errorf("canvas: resolve: negative dpi %g", dpi)
	}
	if dpi == 0 {
		dpi = DefaultDPI
	}
	ptPerPx := 72 / dpi
	ppu := f.PointsPerUnit()
	scene := &Scene{Fonts: fonts}

	for i, a := range f.Artists() {
		var prims []Primitive
		var err error

		switch a := a.(type) {
		case *Circle:
			prims, err = resolveCircle(a, ppu)
		case *Shadow:
			prims, err = resolveShadow(a, ppu)
		case *Arrow:
			prims, err = resolveArrow(a, ppu, ptPerPx)
		case *Text:
			prims, err = resolveText(a, ppu, f.FontSize, fonts)
		default:
			err = fmt.Errorf("unsupported artist")
		}
		if err != nil {
			return nil, fmt.Errorf("canvas: artist %d (%T): %w", i, a, err)
		}

		for _, p := range prims {
			scene.Bounds = scene.Bounds.Union(p.Bounds())
		}
		scene.Prims = append(scene.Prims, prims...)
	}
	return scene, nil
}

func alphaOr1(a float64) float64 {
	if a <= 0 {
		return 1
	}
	return a
}

func resolveCircle(c *Circle, ppu float64) ([]Primitive, error) {
	if c.Radius <= 0 {
		return nil, fmt.Errorf("non-positive radius %g", c.Radius)
	}
	path := geom.CirclePath(c.Center.Scale(ppu), c.Radius*ppu)
	alpha := alphaOr1(c.Alpha)

	var prims []Primitive
	if !IsNone(c.Fill) {
		fill, err := ParseColor(c.Fill)
		if err != nil {
			return nil, err
		}
		prims = append(prims, FillPath{Path: path, Color: withAlpha(fill, alpha)})
	}
	if !IsNone(c.Edge) && c.LineWidth > 0 {
		edge, err := ParseColor(c.Edge)
		if err != nil {
			return nil, err
		}
		prims = append(prims, StrokePath{Path: path, Color: withAlpha(edge, alpha), Width: c.LineWidth})
	}
	return prims, nil
}

func resolveShadow(s *Shadow, ppu float64) ([]Primitive, error) {
	if s.Of == nil {
		return nil, fmt.Errorf("shadow without a source shape")
	}
	if s.Of.Radius <= 0 {
		return nil, fmt.Errorf("non-positive radius %g", s.Of.Radius)
	}
	if IsNone(s.Fill) {
		return nil, nil
	}
	fill, err := ParseColor(s.Fill)
	if err != nil {
		return nil, err
	}
	path := geom.CirclePath(s.Center().Scale(ppu), s.Of.Radius*ppu)
	return []Primitive{FillPath{Path: path, Color: withAlpha(fill, alphaOr1(s.Alpha))}}, nil
}

func resolveArrow(a *Arrow, ppu, ptPerPx float64) ([]Primitive, error) {
	st := a.Style
	conn := st.Connection
	if conn == nil {
		conn = Arc3{}
	}
	if ps, ok := conn.(pixelSized); ok {
		conn = ps.scaled(ptPerPx)
	}

	start := a.Start.Scale(ppu)
	end := a.End.Scale(ppu)
	path, err := conn.Connect(start, end)
	if err != nil {
		return nil, err
	}

	pts := path.Flatten(flattenTolerance)
	pts = clipStart(pts, start, st.ShrinkA)
	pts = clipEnd(pts, end, st.ShrinkB)
	if len(pts) < 2 {
		// Everything fell inside the shrink margins.
		return nil, nil
	}

	var edge, fill gg.RGBA
	drawEdge := !IsNone(st.Edge) && st.LineWidth > 0
	if drawEdge {
		if edge, err = ParseColor(st.Edge); err != nil {
			return nil, err
		}
	}
	if !IsNone(st.Fill) {
		if fill, err = ParseColor(st.Fill); err != nil {
			return nil, err
		}
	}

	headLen := st.HeadLength * st.MutationScale
	headW := st.HeadWidth * st.MutationScale
	var prims []Primitive
	stroke := func(line []geom.Point, closed bool) {
		if drawEdge && len(line) >= 2 {
			prims = append(prims, StrokePath{Path: geom.PolylinePath(line, closed), Color: edge, Width: st.LineWidth})
		}
	}

	switch st.Head {
	case HeadFilled, "":
		tip := pts[len(pts)-1]
		line, base := trimEnd(pts, headLen)
		perp := tip.Sub(base).Normalize().Perp().Scale(headW)
		head := []geom.Point{tip, base.Add(perp), base.Sub(perp)}

		stroke(line, false)
		if !IsNone(st.Fill) {
			prims = append(prims, FillPath{Path: geom.PolylinePath(head, true), Color: fill})
		}
		stroke(head, true)
	case HeadOpen:
		tip := pts[len(pts)-1]
		_, base := trimEnd(pts, headLen)
		perp := tip.Sub(base).Normalize().Perp().Scale(headW)

		stroke(pts, false)
		stroke([]geom.Point{base.Add(perp), tip, base.Sub(perp)}, false)
	case HeadNone:
		stroke(pts, false)
	default:
		return nil, fmt.Errorf("unknown arrow head %q", st.Head)
	}
	return prims, nil
}

// clipStart drops the part of pts inside the circle of radius r around c,
// measured from the first point.
func clipStart(pts []geom.Point, c geom.Point, r float64) []geom.Point {
	if r <= 0 || len(pts) == 0 {
		return pts
	}
	for i, p := range pts {
		if p.Dist(c) < r {
			continue
		}
		if i == 0 {
			return pts
		}
		exit := circleExit(pts[i-1], p, c, r)
		out := make([]geom.Point, 0, len(pts)-i+1)
		out = append(out, exit)
		return append(out, pts[i:]...)
	}
	return nil
}

// clipEnd is clipStart walking from the last point backwards.
func clipEnd(pts []geom.Point, c geom.Point, r float64) []geom.Point {
	return reversed(clipStart(reversed(pts), c, r))
}

func reversed(pts []geom.Point) []geom.Point {
	out := make([]geom.Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

// circleExit returns where segment p0-p1 leaves the circle (c, r), with
// p0 inside and p1 outside.
func circleExit(p0, p1, c geom.Point, r float64) geom.Point {
	d := p1.Sub(p0)
	f := p0.Sub(c)
	a := d.X*d.X + d.Y*d.Y
	if a == 0 {
		return p1
	}
	b := 2 * (f.X*d.X + f.Y*d.Y)
	cc := f.X*f.X + f.Y*f.Y - r*r
	disc := b*b - 4*a*cc
	if disc < 0 {
		return p1
	}
	t := (-b + math.Sqrt(disc)) / (2 * a)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return p0.Lerp(p1, t)
}

// trimEnd removes length from the end of pts along the polyline. It returns
// the remaining polyline and the point where it now ends.
func trimEnd(pts []geom.Point, length float64) ([]geom.Point, geom.Point) {
	if length <= 0 {
		return pts, pts[len(pts)-1]
	}
	remaining := length
	for i := len(pts) - 1; i > 0; i-- {
		seg := pts[i].Dist(pts[i-1])
		if seg >= remaining {
			base := pts[i].Lerp(pts[i-1], remaining/seg)
			out := make([]geom.Point, 0, i+1)
			out = append(out, pts[:i]...)
			return append(out, base), base
		}
		remaining -= seg
	}
	return pts[:1], pts[0]
}
