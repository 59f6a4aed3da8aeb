// Package automaton provides the drawing helpers for finite-automaton
// pictures: shadowed circles, default-styled arrows and the Node type.
package automaton

import (
	"github.com/ha1tch/automata-plot/pkg/canvas"
	"github.com/ha1tch/automata-plot/pkg/geom"
)

// Drop shadow placement and color.
const (
	ShadowAngle  = -45.0 // degrees
	ShadowOffset = 0.085 // fraction of the radius
	ShadowColor  = "gray"
	ShadowAlpha  = 0.5
)

type circleConfig struct {
	fill      string
	edge      string
	lineWidth float64
	shadow    bool
}

// CircleOption configures DrawCircle.
type CircleOption func(*circleConfig)

// Fill sets the circle's fill color.
func Fill(c string) CircleOption {
	return func(cfg *circleConfig) { cfg.fill = c }
}

// Edge sets the outline color and width in points.
func Edge(c string, width float64) CircleOption {
	return func(cfg *circleConfig) {
		cfg.edge = c
		cfg.lineWidth = width
	}
}

// NoShadow disables the drop shadow.
func NoShadow() CircleOption {
	return func(cfg *circleConfig) { cfg.shadow = false }
}

// DrawCircle adds a circle to s, with a flat gray copy shifted along
// ShadowAngle and stacked beneath it unless NoShadow is given.
func DrawCircle(s canvas.Surface, center geom.Point, radius float64, opts ...CircleOption) *canvas.Circle {
	cfg := circleConfig{fill: "w", edge: "k", lineWidth: 1, shadow: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &canvas.Circle{
		Center:    center,
		Radius:    radius,
		Fill:      cfg.fill,
		Edge:      cfg.edge,
		LineWidth: cfg.lineWidth,
		Z:         canvas.ZPatch,
	}
	s.Add(c)

	if cfg.shadow {
		s.Add(&canvas.Shadow{
			Of:     c,
			Offset: geom.Dir2D(ShadowAngle).Scale(radius * ShadowOffset),
			Fill:   ShadowColor,
			Alpha:  ShadowAlpha,
			Z:      canvas.ZShadow,
		})
	}
	return c
}

// NewArrow returns an arrow from start to end in the default style with
// opts applied on top. It is not drawn until added to a surface.
func NewArrow(start, end geom.Point, opts ...canvas.ArrowOption) *canvas.Arrow {
	return &canvas.Arrow{
		Start: start,
		End:   end,
		Style: canvas.DefaultArrowStyle().Apply(opts...),
	}
}
