// Path representation and Bézier evaluation for arrow routing.

package geom

import "math"

// Op identifies a path segment kind.
type Op int

const (
	MoveTo Op = iota
	LineTo
	QuadTo  // one control point, then the end point
	CubicTo // two control points, then the end point
	Close
)

// Segment is one path command. Pts holds the control points followed by
// the end point; MoveTo and LineTo carry a single point.
type Segment struct {
	Op  Op
	Pts []Point
}

// Path is an ordered list of segments.
type Path []Segment

// MoveTo starts a new subpath.
func (p Path) MoveTo(pt Point) Path {
	return append(p, Segment{MoveTo, []Point{pt}})
}

// LineTo adds a straight segment.
func (p Path) LineTo(pt Point) Path {
	return append(p, Segment{LineTo, []Point{pt}})
}

// QuadTo adds a quadratic Bézier segment.
func (p Path) QuadTo(ctrl, end Point) Path {
	return append(p, Segment{QuadTo, []Point{ctrl, end}})
}

// CubicTo adds a cubic Bézier segment.
func (p Path) CubicTo(c1, c2, end Point) Path {
	return append(p, Segment{CubicTo, []Point{c1, c2, end}})
}

// ClosePath closes the current subpath.
func (p Path) ClosePath() Path {
	return append(p, Segment{Op: Close})
}

// Transform returns a copy of p with f applied to every point.
func (p Path) Transform(f func(Point) Point) Path {
	out := make(Path, len(p))
	for i, s := range p {
		pts := make([]Point, len(s.Pts))
		for j, pt := range s.Pts {
			pts[j] = f(pt)
		}
		out[i] = Segment{s.Op, pts}
	}
	return out
}

// Bounds returns the bounding box of the control polygon. Bézier curves
// never leave the hull of their control points, so this is conservative.
func (p Path) Bounds() Rect {
	var r Rect
	for _, s := range p {
		for _, pt := range s.Pts {
			r = r.AddPoint(pt)
		}
	}
	return r
}

// Flatten converts p into a polyline of its first subpath, sampling each
// curve with segments of roughly tol length.
func (p Path) Flatten(tol float64) []Point {
	if tol <= 0 {
		tol = 0.5
	}
	var out []Point
	var cur Point
	for _, s := range p {
		switch s.Op {
		case MoveTo:
			if len(out) > 0 {
				return out
			}
			cur = s.Pts[0]
			out = append(out, cur)
		case LineTo:
			cur = s.Pts[0]
			out = append(out, cur)
		case QuadTo:
			pts := FlattenQuad(cur, s.Pts[0], s.Pts[1], tol)
			out = append(out, pts[1:]...)
			cur = s.Pts[1]
		case CubicTo:
			pts := FlattenCubic(cur, s.Pts[0], s.Pts[1], s.Pts[2], tol)
			out = append(out, pts[1:]...)
			cur = s.Pts[2]
		}
	}
	return out
}

// QuadAt evaluates the quadratic Bézier (p0, p1, p2) at t.
func QuadAt(p0, p1, p2 Point, t float64) Point {
	mt := 1 - t
	return Point{
		X: mt*mt*p0.X + 2*mt*t*p1.X + t*t*p2.X,
		Y: mt*mt*p0.Y + 2*mt*t*p1.Y + t*t*p2.Y,
	}
}

// CubicAt evaluates the cubic Bézier (p0, p1, p2, p3) at t.
func CubicAt(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t

	return Point{
		X: mt3*p0.X + 3*mt2*t*p1.X + 3*mt*t2*p2.X + t3*p3.X,
		Y: mt3*p0.Y + 3*mt2*t*p1.Y + 3*mt*t2*p2.Y + t3*p3.Y,
	}
}

// FlattenQuad samples a quadratic Bézier, endpoints included.
func FlattenQuad(p0, p1, p2 Point, tol float64) []Point {
	n := segmentsFor(p0.Dist(p1)+p1.Dist(p2), tol)
	pts := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		pts = append(pts, QuadAt(p0, p1, p2, float64(i)/float64(n)))
	}
	return pts
}

// FlattenCubic samples a cubic Bézier, endpoints included.
func FlattenCubic(p0, p1, p2, p3 Point, tol float64) []Point {
	n := segmentsFor(p0.Dist(p1)+p1.Dist(p2)+p2.Dist(p3), tol)
	pts := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		pts = append(pts, CubicAt(p0, p1, p2, p3, float64(i)/float64(n)))
	}
	return pts
}

func segmentsFor(length, tol float64) int {
	n := int(math.Ceil(length / tol))
	if n < 4 {
		n = 4
	}
	if n > 512 {
		n = 512
	}
	return n
}

// PolylineLength returns the total length of pts.
func PolylineLength(pts []Point) float64 {
	length := 0.0
	for i := 1; i < len(pts); i++ {
		length += pts[i-1].Dist(pts[i])
	}
	return length
}

// circleKappa places cubic control points for a quarter circle.
const circleKappa = 0.5522847498307936

// CirclePath returns a closed circle made of four cubic segments.
func CirclePath(c Point, r float64) Path {
	k := r * circleKappa
	return Path{}.
		MoveTo(Point{c.X + r, c.Y}).
		CubicTo(Point{c.X + r, c.Y + k}, Point{c.X + k, c.Y + r}, Point{c.X, c.Y + r}).
		CubicTo(Point{c.X - k, c.Y + r}, Point{c.X - r, c.Y + k}, Point{c.X - r, c.Y}).
		CubicTo(Point{c.X - r, c.Y - k}, Point{c.X - k, c.Y - r}, Point{c.X, c.Y - r}).
		CubicTo(Point{c.X + k, c.Y - r}, Point{c.X + r, c.Y - k}, Point{c.X + r, c.Y}).
		ClosePath()
}

// PolylinePath turns pts into a path, optionally closed.
func PolylinePath(pts []Point, closed bool) Path {
	var p Path
	for i, pt := range pts {
		if i == 0 {
			p = p.MoveTo(pt)
			continue
		}
		p = p.LineTo(pt)
	}
	if closed && len(pts) > 0 {
		p = p.ClosePath()
	}
	return p
}
