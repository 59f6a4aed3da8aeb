// Geometric utilities for automaton diagram drawing.
// All angles at the API surface are in degrees, counter-clockwise from +x,
// in a y-up coordinate system.

package geom

import (
	"errors"
	"math"
)

// ErrParallel is returned when two rays never meet.
var ErrParallel = errors.New("geom: lines do not intersect")

// Point represents a 2D coordinate or vector.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Dir2D converts an angle in degrees to a unit vector.
func Dir2D(deg float64) Point {
	theta := deg * math.Pi / 180
	return Point{math.Cos(theta), math.Sin(theta)}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale returns p scaled by k.
func (p Point) Scale(k float64) Point {
	return Point{p.X * k, p.Y * k}
}

// Len returns the Euclidean length of p.
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Dist returns the distance between p and q.
func (p Point) Dist(q Point) float64 {
	return q.Sub(p).Len()
}

// Angle returns the direction of p in degrees.
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X) * 180 / math.Pi
}

// Normalize returns p scaled to unit length. The zero vector is returned
// unchanged.
func (p Point) Normalize() Point {
	l := p.Len()
	if l == 0 {
		return p
	}
	return Point{p.X / l, p.Y / l}
}

// Perp returns p rotated by +90 degrees.
func (p Point) Perp() Point {
	return Point{-p.Y, p.X}
}

// Lerp interpolates between p and q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

// LineIntersection returns the point where the line through p1 with
// direction angle1 crosses the line through p2 with direction angle2.
func LineIntersection(p1 Point, angle1 float64, p2 Point, angle2 float64) (Point, error) {
	d1 := Dir2D(angle1)
	d2 := Dir2D(angle2)

	// Solve p1 + t*d1 = p2 + s*d2
	det := d1.X*(-d2.Y) - d1.Y*(-d2.X)
	if math.Abs(det) < 1e-12 {
		return Point{}, ErrParallel
	}
	r := p2.Sub(p1)
	t := (r.X*(-d2.Y) - r.Y*(-d2.X)) / det
	return p1.Add(d1.Scale(t)), nil
}

// Rect represents an axis-aligned bounding box. The zero Rect is empty.
type Rect struct {
	Min, Max Point
	valid    bool
}

// RectFromPoints returns the bounding box of pts.
func RectFromPoints(pts ...Point) Rect {
	var r Rect
	for _, p := range pts {
		r = r.AddPoint(p)
	}
	return r
}

// Empty reports whether r contains no points.
func (r Rect) Empty() bool {
	return !r.valid
}

// AddPoint grows r to contain p.
func (r Rect) AddPoint(p Point) Rect {
	if !r.valid {
		return Rect{Min: p, Max: p, valid: true}
	}
	r.Min.X = math.Min(r.Min.X, p.X)
	r.Min.Y = math.Min(r.Min.Y, p.Y)
	r.Max.X = math.Max(r.Max.X, p.X)
	r.Max.Y = math.Max(r.Max.Y, p.Y)
	return r
}

// Union returns the smallest box containing r and o.
func (r Rect) Union(o Rect) Rect {
	if !o.valid {
		return r
	}
	return r.AddPoint(o.Min).AddPoint(o.Max)
}

// Expand grows r by d on every side.
func (r Rect) Expand(d float64) Rect {
	if !r.valid {
		return r
	}
	r.Min = r.Min.Sub(Point{d, d})
	r.Max = r.Max.Add(Point{d, d})
	return r
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent of r.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Contains reports whether p lies inside r (inclusive).
func (r Rect) Contains(p Point) bool {
	return r.valid && p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}
