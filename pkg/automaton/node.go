package automaton

import (
	"github.com/ha1tch/automata-plot/pkg/canvas"
	"github.com/ha1tch/automata-plot/pkg/geom"
)

// Inner disk of an accepting state, relative to the outer ring.
const acceptInnerScale = 0.85

// Self-loop geometry: the ends sit loopSpread degrees either side of the
// requested angle. loopArm and loopRad are output pixels, so the loop keeps
// its on-screen size relative to the text rather than the node.
const (
	loopSpread = 10.0
	loopArm    = 100.0
	loopRad    = 30.0
)

// Node is one drawn automaton state.
type Node struct {
	Pos    geom.Point
	Label  string
	Accept bool
	Radius float64
}

// NodeOption configures NewNode.
type NodeOption func(*Node)

// WithLabel sets the text drawn at the node center.
func WithLabel(label string) NodeOption {
	return func(n *Node) { n.Label = label }
}

// WithAccept selects the double-ring (true) or single-disk (false) look.
func WithAccept(accept bool) NodeOption {
	return func(n *Node) { n.Accept = accept }
}

// WithRadius sets the circle radius in data units.
func WithRadius(r float64) NodeOption {
	return func(n *Node) { n.Radius = r }
}

// NewNode creates an accepting node of radius 1 at pos, then applies opts.
func NewNode(pos geom.Point, opts ...NodeOption) *Node {
	n := &Node{Pos: pos, Accept: true, Radius: 1}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

type drawConfig struct {
	textOnly bool
	color    string
	fontSize float64
	bold     bool
	text     string
}

// DrawOption configures Node.Draw.
type DrawOption func(*drawConfig)

// TextOnly skips the circles and draws the label alone.
func TextOnly() DrawOption {
	return func(c *drawConfig) { c.textOnly = true }
}

// Color sets the fill of the state disk.
func Color(c string) DrawOption {
	return func(cfg *drawConfig) { cfg.color = c }
}

// FontSize sets the label size in points.
func FontSize(pt float64) DrawOption {
	return func(c *drawConfig) { c.fontSize = pt }
}

// Bold sets the label in bold.
func Bold() DrawOption {
	return func(c *drawConfig) { c.bold = true }
}

// TextColor sets the label color.
func TextColor(col string) DrawOption {
	return func(c *drawConfig) { c.text = col }
}

// Draw renders the node on s and returns n for chaining.
func (n *Node) Draw(s canvas.Surface, opts ...DrawOption) *Node {
	cfg := drawConfig{color: "g"}
	for _, opt := range opts {
		opt(&cfg)
	}

	if !cfg.textOnly {
		if n.Accept {
			DrawCircle(s, n.Pos, n.Radius, Fill("w"), Edge("k", 1))
			DrawCircle(s, n.Pos, n.Radius*acceptInnerScale, Fill(cfg.color), Edge("k", 1))
		} else {
			DrawCircle(s, n.Pos, n.Radius, Fill(cfg.color), Edge("k", 1))
		}
	}

	if n.Label != "" {
		s.Add(&canvas.Text{
			Pos:     n.Pos,
			Content: n.Label,
			Size:    cfg.fontSize,
			Bold:    cfg.bold,
			Color:   cfg.text,
			Z:       canvas.ZText,
		})
	}
	return n
}

// ArrowTo draws a straight arrow from n's boundary to other's boundary
// along the line joining the two centers.
func (n *Node) ArrowTo(s canvas.Surface, other *Node, opts ...canvas.ArrowOption) *canvas.Arrow {
	dir := geom.Dir2D(other.Pos.Sub(n.Pos).Angle())
	start := n.Pos.Add(dir.Scale(n.Radius))
	end := other.Pos.Sub(dir.Scale(other.Radius))

	arrow := NewArrow(start, end, opts...)
	s.Add(arrow)
	return arrow
}

// CurveArrowTo draws a curved arrow that leaves n at angleA and arrives at
// other travelling along angleB. The connection style always follows the
// two angles.
func (n *Node) CurveArrowTo(s canvas.Surface, other *Node, angleA, angleB float64, opts ...canvas.ArrowOption) *canvas.Arrow {
	start := n.Pos.Add(geom.Dir2D(angleA).Scale(n.Radius))
	end := other.Pos.Sub(geom.Dir2D(angleB).Scale(other.Radius))

	arrow := NewArrow(start, end, opts...)
	arrow.Style.Connection = canvas.Angle3{AngleA: angleA, AngleB: angleB}
	s.Add(arrow)
	return arrow
}

// Loop draws a self-transition leaving n at deg-10 and returning at deg+10.
// A connection passed in opts replaces the default wide arc.
func (n *Node) Loop(s canvas.Surface, deg float64, opts ...canvas.ArrowOption) *canvas.Arrow {
	angleA := deg - loopSpread
	angleB := deg + loopSpread
	start := n.Pos.Add(geom.Dir2D(angleA).Scale(n.Radius))
	end := n.Pos.Add(geom.Dir2D(angleB).Scale(n.Radius))

	var given canvas.ArrowStyle
	given = given.Apply(opts...)
	if given.Connection == nil {
		loop := canvas.Arc{AngleA: angleA, AngleB: angleB, ArmA: loopArm, ArmB: loopArm, Rad: loopRad}
		opts = append([]canvas.ArrowOption{canvas.WithConnection(loop)}, opts...)
	}

	arrow := NewArrow(start, end, opts...)
	s.Add(arrow)
	return arrow
}
