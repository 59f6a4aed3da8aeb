package canvas

import "github.com/ha1tch/automata-plot/pkg/geom"

// Default stacking orders. Later additions draw on top within one level.
const (
	ZShadow = -1.0
	ZPatch  = 1.0
	ZText   = 3.0
)

// Artist is anything that can be added to a Figure. Positions and sizes
// of artists are in data units unless noted otherwise.
type Artist interface {
	ZOrder() float64
}

// Circle is a filled, optionally outlined circle.
type Circle struct {
	Center    geom.Point
	Radius    float64
	Fill      string
	Edge      string
	LineWidth float64 // points
	Alpha     float64 // 0 means opaque
	Z         float64
}

// ZOrder implements Artist.
func (c *Circle) ZOrder() float64 { return c.Z }

// Shadow is a flat copy of a circle shifted by Offset and drawn beneath it.
type Shadow struct {
	Of     *Circle
	Offset geom.Point
	Fill   string
	Alpha  float64
	Z      float64
}

// ZOrder implements Artist.
func (s *Shadow) ZOrder() float64 { return s.Z }

// Center returns the shifted center of the shadow.
func (s *Shadow) Center() geom.Point {
	return s.Of.Center.Add(s.Offset)
}

// Arrow is a directed connection between two points.
type Arrow struct {
	Start geom.Point
	End   geom.Point
	Style ArrowStyle
}

// ZOrder implements Artist.
func (a *Arrow) ZOrder() float64 { return a.Style.ZOrder }

// Text is a label centered on Pos. Content between dollar signs is set in
// italics and "_x" inside it is a subscript.
type Text struct {
	Pos     geom.Point
	Content string
	Size    float64 // points; 0 uses the figure default
	Bold    bool
	Color   string
	Z       float64
}

// ZOrder implements Artist.
func (t *Text) ZOrder() float64 { return t.Z }
