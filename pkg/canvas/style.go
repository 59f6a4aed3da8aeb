package canvas

import (
	"fmt"
	"strings"
)

// HeadKind selects how the tip of an arrow is drawn.
type HeadKind string

const (
	HeadFilled HeadKind = "-|>" // closed triangle, filled
	HeadOpen   HeadKind = "->"  // two open wings
	HeadNone   HeadKind = "-"   // plain line
)

// ArrowStyle describes how an Arrow is drawn. Lengths are in points;
// head dimensions are multiplied by MutationScale.
type ArrowStyle struct {
	Head          HeadKind
	HeadWidth     float64
	HeadLength    float64
	Fill          string
	Edge          string
	LineWidth     float64
	ShrinkA       float64
	ShrinkB       float64
	MutationScale float64
	Connection    Connection
	ZOrder        float64
}

// DefaultArrowStyle returns the arrow look used throughout the diagrams.
func DefaultArrowStyle() ArrowStyle {
	return ArrowStyle{
		Head:          HeadFilled,
		HeadWidth:     0.12,
		HeadLength:    0.4,
		Fill:          "k",
		Edge:          "k",
		LineWidth:     1.25,
		ShrinkA:       4,
		ShrinkB:       1,
		MutationScale: 15,
		Connection:    Arc3{},
		ZOrder:        ZPatch,
	}
}

func (s ArrowStyle) String() string {
	conn := "<nil>"
	if s.Connection != nil {
		conn = s.Connection.String()
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s,head_width=%g,head_length=%g", s.Head, s.HeadWidth, s.HeadLength))
	sb.WriteString(fmt.Sprintf(" fc=%s ec=%s lw=%g", s.Fill, s.Edge, s.LineWidth))
	sb.WriteString(fmt.Sprintf(" shrinkA=%g shrinkB=%g mutation_scale=%g", s.ShrinkA, s.ShrinkB, s.MutationScale))
	sb.WriteString(" connection=" + conn)
	return sb.String()
}

// ArrowOption overrides one field of an ArrowStyle.
type ArrowOption func(*ArrowStyle)

// WithColor sets both the fill and the edge color.
func WithColor(c string) ArrowOption {
	return func(s *ArrowStyle) {
		s.Fill = c
		s.Edge = c
	}
}

// WithFill sets the head fill color.
func WithFill(c string) ArrowOption {
	return func(s *ArrowStyle) { s.Fill = c }
}

// WithEdge sets the line color.
func WithEdge(c string) ArrowOption {
	return func(s *ArrowStyle) { s.Edge = c }
}

// WithLineWidth sets the stroke width in points.
func WithLineWidth(w float64) ArrowOption {
	return func(s *ArrowStyle) { s.LineWidth = w }
}

// WithHead sets the head kind and its width and length factors.
func WithHead(kind HeadKind, width, length float64) ArrowOption {
	return func(s *ArrowStyle) {
		s.Head = kind
		s.HeadWidth = width
		s.HeadLength = length
	}
}

// WithShrink sets how many points are trimmed off each end.
func WithShrink(a, b float64) ArrowOption {
	return func(s *ArrowStyle) {
		s.ShrinkA = a
		s.ShrinkB = b
	}
}

// WithMutationScale sets the head scale factor.
func WithMutationScale(m float64) ArrowOption {
	return func(s *ArrowStyle) { s.MutationScale = m }
}

// WithConnection sets the routing between the two end points.
func WithConnection(c Connection) ArrowOption {
	return func(s *ArrowStyle) { s.Connection = c }
}

// WithZOrder sets the stacking order.
func WithZOrder(z float64) ArrowOption {
	return func(s *ArrowStyle) { s.ZOrder = z }
}

// Apply applies opts on top of s and returns the result.
func (s ArrowStyle) Apply(opts ...ArrowOption) ArrowStyle {
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}
