// Connection styles route an arrow between its two end points.
// Every routine works in display points with y pointing up.

package canvas

import (
	"fmt"
	"math"

	"github.com/ha1tch/automata-plot/pkg/geom"
)

// Connection builds the path joining a to b.
type Connection interface {
	Connect(a, b geom.Point) (geom.Path, error)
	String() string
}

// pixelSized is implemented by connections with lengths in output pixels.
type pixelSized interface {
	scaled(k float64) Connection
}

// Arc3 is a quadratic curve whose control point sits off the chord
// midpoint by Rad times the chord length. Rad 0 gives a straight line.
type Arc3 struct {
	Rad float64
}

// Connect implements Connection.
func (c Arc3) Connect(a, b geom.Point) (geom.Path, error) {
	path := geom.Path{}.MoveTo(a)
	if c.Rad == 0 {
		return path.LineTo(b), nil
	}
	mid := a.Lerp(b, 0.5)
	d := b.Sub(a)
	ctrl := mid.Add(geom.Pt(d.Y, -d.X).Scale(c.Rad))
	return path.QuadTo(ctrl, b), nil
}

func (c Arc3) String() string {
	return fmt.Sprintf("arc3,rad=%g", c.Rad)
}

// Angle3 is a quadratic curve leaving a at AngleA and arriving at b along
// AngleB. The control point is where the two rays cross.
type Angle3 struct {
	AngleA, AngleB float64
}

// Connect implements Connection.
func (c Angle3) Connect(a, b geom.Point) (geom.Path, error) {
	ctrl, err := geom.LineIntersection(a, c.AngleA, b, c.AngleB)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c, err)
	}
	return geom.Path{}.MoveTo(a).QuadTo(ctrl, b), nil
}

func (c Angle3) String() string {
	return fmt.Sprintf("angle3,angleA=%g,angleB=%g", c.AngleA, c.AngleB)
}

// Arc leaves a along AngleA for ArmA, leaves b along AngleB for ArmB, and
// joins the two arm ends with a straight line. Corners are rounded with
// radius Rad. ArmA, ArmB and Rad are output pixels; Resolve converts them
// to points at the export resolution.
type Arc struct {
	AngleA, AngleB float64
	ArmA, ArmB     float64
	Rad            float64
}

// Connect implements Connection. The lengths are taken as given, in the
// same units as a and b.
func (c Arc) Connect(a, b geom.Point) (geom.Path, error) {
	route := []geom.Point{a}
	if c.ArmA > 0 {
		route = append(route, a.Add(geom.Dir2D(c.AngleA).Scale(c.ArmA)))
	}
	if c.ArmB > 0 {
		route = append(route, b.Add(geom.Dir2D(c.AngleB).Scale(c.ArmB)))
	}
	route = append(route, b)

	// A leg shared by two corners gives each at most half its length, so
	// neighbouring corners never overlap and the path never backtracks.
	r := math.Max(c.Rad, 0)
	for i := 1; i < len(route); i++ {
		corners := 0
		if i > 1 {
			corners++
		}
		if i < len(route)-1 {
			corners++
		}
		if corners > 0 {
			r = math.Min(r, route[i].Dist(route[i-1])/float64(corners))
		}
	}

	path := geom.Path{}.MoveTo(a)
	for i := 1; i < len(route)-1; i++ {
		apex := route[i]
		before := towards(apex, route[i-1], r)
		after := towards(apex, route[i+1], r)
		path = path.LineTo(before).QuadTo(apex, after)
	}
	return path.LineTo(b), nil
}

// scaled returns c with its pixel lengths multiplied by k.
func (c Arc) scaled(k float64) Connection {
	c.ArmA *= k
	c.ArmB *= k
	c.Rad *= k
	return c
}

func (c Arc) String() string {
	return fmt.Sprintf("arc,angleA=%g,angleB=%g,armA=%g,armB=%g,rad=%g",
		c.AngleA, c.AngleB, c.ArmA, c.ArmB, c.Rad)
}

// towards returns the point at distance d from p in the direction of q.
func towards(p, q geom.Point, d float64) geom.Point {
	v := q.Sub(p)
	l := v.Len()
	if l == 0 || math.IsNaN(l) {
		return p
	}
	return p.Add(v.Scale(d / l))
}
