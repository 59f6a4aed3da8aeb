package automaton

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ha1tch/automata-plot/pkg/canvas"
	"github.com/ha1tch/automata-plot/pkg/geom"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

// recorder is a Surface that keeps everything added to it, in order.
type recorder struct {
	added []canvas.Artist
}

func (r *recorder) Add(a canvas.Artist) { r.added = append(r.added, a) }

func (r *recorder) circles() []*canvas.Circle {
	var out []*canvas.Circle
	for _, a := range r.added {
		if c, ok := a.(*canvas.Circle); ok {
			out = append(out, c)
		}
	}
	return out
}

func (r *recorder) count(kind string) int {
	n := 0
	for _, a := range r.added {
		switch a.(type) {
		case *canvas.Circle:
			if kind == "circle" {
				n++
			}
		case *canvas.Shadow:
			if kind == "shadow" {
				n++
			}
		case *canvas.Text:
			if kind == "text" {
				n++
			}
		case *canvas.Arrow:
			if kind == "arrow" {
				n++
			}
		}
	}
	return n
}

func TestNewNodeDefaults(t *testing.T) {
	n := NewNode(geom.Pt(1, 2))
	want := &Node{Pos: geom.Pt(1, 2), Accept: true, Radius: 1}
	if diff := cmp.Diff(want, n); diff != "" {
		t.Errorf("NewNode mismatch (-want +got):\n%s", diff)
	}

	n = NewNode(geom.Pt(0, 0), WithLabel("$q_0$"), WithAccept(false), WithRadius(0.2))
	if n.Label != "$q_0$" || n.Accept || n.Radius != 0.2 {
		t.Errorf("options not applied: %+v", n)
	}
}

func TestDrawCircleShadow(t *testing.T) {
	r := &recorder{}
	c := DrawCircle(r, geom.Pt(1, 1), 2, Fill("r"))

	if len(r.added) != 2 {
		t.Fatalf("got %d artists, want circle + shadow", len(r.added))
	}
	if c.Fill != "r" || c.Edge != "k" || c.LineWidth != 1 || c.Z != canvas.ZPatch {
		t.Errorf("unexpected circle: %+v", c)
	}

	sh, ok := r.added[1].(*canvas.Shadow)
	if !ok {
		t.Fatalf("second artist is %T, want *canvas.Shadow", r.added[1])
	}
	if sh.Of != c || sh.Fill != ShadowColor || sh.Alpha != ShadowAlpha || sh.Z != canvas.ZShadow {
		t.Errorf("unexpected shadow: %+v", sh)
	}
	// Offset points down and to the right, scaled by the radius.
	d := 2 * ShadowOffset / math.Sqrt2
	if diff := cmp.Diff(geom.Pt(d, -d), sh.Offset, approx); diff != "" {
		t.Errorf("shadow offset (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(geom.Pt(1+d, 1-d), sh.Center(), approx); diff != "" {
		t.Errorf("shadow center (-want +got):\n%s", diff)
	}

	r = &recorder{}
	DrawCircle(r, geom.Pt(0, 0), 1, NoShadow())
	if len(r.added) != 1 {
		t.Errorf("NoShadow: got %d artists, want 1", len(r.added))
	}
}

func TestNewArrowColor(t *testing.T) {
	a := NewArrow(geom.Pt(0, 0), geom.Pt(1, 0), canvas.WithColor("y"))
	if a.Style.Fill != "y" || a.Style.Edge != "y" {
		t.Errorf("color override: fill=%q edge=%q", a.Style.Fill, a.Style.Edge)
	}
	def := canvas.DefaultArrowStyle()
	if a.Style.LineWidth != def.LineWidth || a.Style.HeadLength != def.HeadLength {
		t.Error("defaults should survive a color override")
	}
}

func TestDrawCircleCounts(t *testing.T) {
	tests := []struct {
		name    string
		accept  bool
		circles int
	}{
		{"accepting", true, 2},
		{"plain", false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{}
			n := NewNode(geom.Pt(0, 0), WithAccept(tt.accept), WithLabel("q"))
			n.Draw(r, Color("r"))

			if got := r.count("circle"); got != tt.circles {
				t.Errorf("circles = %d, want %d", got, tt.circles)
			}
			if got := r.count("shadow"); got != tt.circles {
				t.Errorf("shadows = %d, want %d", got, tt.circles)
			}
			if got := r.count("text"); got != 1 {
				t.Errorf("texts = %d, want 1", got)
			}
		})
	}
}

func TestDrawAcceptingRings(t *testing.T) {
	r := &recorder{}
	NewNode(geom.Pt(0, 0), WithRadius(0.2)).Draw(r, Color("r"))

	cs := r.circles()
	if len(cs) != 2 {
		t.Fatalf("got %d circles", len(cs))
	}
	if cs[0].Fill != "w" || cs[0].Radius != 0.2 {
		t.Errorf("outer ring: %+v", cs[0])
	}
	if cs[1].Fill != "r" || math.Abs(cs[1].Radius-0.17) > 1e-12 {
		t.Errorf("inner disk: %+v", cs[1])
	}
}

func TestDrawTextOnly(t *testing.T) {
	r := &recorder{}
	NewNode(geom.Pt(-0.7, 0), WithLabel("start"), WithRadius(0.15)).Draw(r, TextOnly(), FontSize(10), Bold())

	if len(r.added) != 1 {
		t.Fatalf("got %d artists, want only the label", len(r.added))
	}
	txt := r.added[0].(*canvas.Text)
	if txt.Content != "start" || txt.Size != 10 || !txt.Bold || txt.Z != canvas.ZText {
		t.Errorf("unexpected text: %+v", txt)
	}
}

func TestDrawNoLabel(t *testing.T) {
	r := &recorder{}
	NewNode(geom.Pt(0, 0), WithAccept(false)).Draw(r)
	if r.count("text") != 0 {
		t.Error("unlabeled node should not add text")
	}
	if c := r.circles()[0]; c.Fill != "g" {
		t.Errorf("default fill = %q, want g", c.Fill)
	}
}

func TestDrawIdempotent(t *testing.T) {
	r := &recorder{}
	n := NewNode(geom.Pt(1, 0), WithLabel("$q_1$"), WithRadius(0.2))
	n.Draw(r, Color("r"))
	first := len(r.added)
	n.Draw(r, Color("r"))

	if len(r.added) != 2*first {
		t.Fatalf("second draw added %d artists, want %d", len(r.added)-first, first)
	}
	for i := 0; i < first; i++ {
		a, b := r.added[i], r.added[first+i]
		if a == b {
			t.Errorf("artist %d is shared between draws", i)
		}
		switch a := a.(type) {
		case *canvas.Circle:
			if *a != *b.(*canvas.Circle) {
				t.Errorf("circle %d differs: %+v vs %+v", i, a, b)
			}
		case *canvas.Text:
			if *a != *b.(*canvas.Text) {
				t.Errorf("text %d differs: %+v vs %+v", i, a, b)
			}
		}
	}
	if n.Pos != geom.Pt(1, 0) || n.Radius != 0.2 {
		t.Errorf("node mutated by Draw: %+v", n)
	}
}

func TestArrowToBoundary(t *testing.T) {
	tests := []struct {
		name string
		a, b *Node
	}{
		{"horizontal", NewNode(geom.Pt(0, 0), WithRadius(0.2)), NewNode(geom.Pt(1, 0), WithRadius(0.2))},
		{"diagonal", NewNode(geom.Pt(1, 1), WithRadius(0.5)), NewNode(geom.Pt(-2, 3), WithRadius(0.25))},
		{"vertical down", NewNode(geom.Pt(0, 5), WithRadius(1)), NewNode(geom.Pt(0, 0), WithRadius(2))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{}
			arrow := tt.a.ArrowTo(r, tt.b)

			if len(r.added) != 1 || r.added[0] != arrow {
				t.Fatal("ArrowTo should add exactly the returned arrow")
			}
			if d := arrow.Start.Dist(tt.a.Pos); math.Abs(d-tt.a.Radius) > 1e-9 {
				t.Errorf("start is %v from A, want %v", d, tt.a.Radius)
			}
			if d := arrow.End.Dist(tt.b.Pos); math.Abs(d-tt.b.Radius) > 1e-9 {
				t.Errorf("end is %v from B, want %v", d, tt.b.Radius)
			}

			dir := tt.b.Pos.Sub(tt.a.Pos).Normalize()
			if diff := cmp.Diff(tt.a.Pos.Add(dir.Scale(tt.a.Radius)), arrow.Start, approx); diff != "" {
				t.Errorf("start (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.b.Pos.Sub(dir.Scale(tt.b.Radius)), arrow.End, approx); diff != "" {
				t.Errorf("end (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCurveArrowTo(t *testing.T) {
	r := &recorder{}
	q3 := NewNode(geom.Pt(3, 0), WithRadius(0.2))
	q0 := NewNode(geom.Pt(0, 0), WithRadius(0.2))

	// A caller connection is overridden by the two angles.
	arrow := q3.CurveArrowTo(r, q0, 250, 150, canvas.WithColor("y"), canvas.WithConnection(canvas.Arc3{Rad: 0.3}))

	want := canvas.Angle3{AngleA: 250, AngleB: 150}
	if arrow.Style.Connection != want {
		t.Errorf("connection = %v, want %v", arrow.Style.Connection, want)
	}
	if arrow.Style.Fill != "y" {
		t.Errorf("fill = %q, want y", arrow.Style.Fill)
	}
	if diff := cmp.Diff(q3.Pos.Add(geom.Dir2D(250).Scale(0.2)), arrow.Start, approx); diff != "" {
		t.Errorf("start (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(q0.Pos.Sub(geom.Dir2D(150).Scale(0.2)), arrow.End, approx); diff != "" {
		t.Errorf("end (-want +got):\n%s", diff)
	}
}

func TestLoopEndpoints(t *testing.T) {
	for _, deg := range []float64{0, 90, 200, -45} {
		r := &recorder{}
		n := NewNode(geom.Pt(1, 0), WithRadius(0.2))
		arrow := n.Loop(r, deg)

		if d := arrow.Start.Dist(n.Pos); math.Abs(d-0.2) > 1e-9 {
			t.Errorf("deg %v: start is %v from center", deg, d)
		}
		if d := arrow.End.Dist(n.Pos); math.Abs(d-0.2) > 1e-9 {
			t.Errorf("deg %v: end is %v from center", deg, d)
		}
		if diff := cmp.Diff(n.Pos.Add(geom.Dir2D(deg-10).Scale(0.2)), arrow.Start, approx); diff != "" {
			t.Errorf("deg %v start (-want +got):\n%s", deg, diff)
		}
		if diff := cmp.Diff(n.Pos.Add(geom.Dir2D(deg+10).Scale(0.2)), arrow.End, approx); diff != "" {
			t.Errorf("deg %v end (-want +got):\n%s", deg, diff)
		}

		want := canvas.Arc{AngleA: deg - 10, AngleB: deg + 10, ArmA: 100, ArmB: 100, Rad: 30}
		if arrow.Style.Connection != want {
			t.Errorf("deg %v: connection = %v, want %v", deg, arrow.Style.Connection, want)
		}
	}
}

func TestLoopCustomConnection(t *testing.T) {
	r := &recorder{}
	custom := canvas.Arc3{Rad: -0.5}
	arrow := NewNode(geom.Pt(0, 0)).Loop(r, 90, canvas.WithConnection(custom), canvas.WithLineWidth(2))

	if arrow.Style.Connection != custom {
		t.Errorf("connection = %v, want caller's %v", arrow.Style.Connection, custom)
	}
	if arrow.Style.LineWidth != 2 {
		t.Errorf("line width = %v, want 2", arrow.Style.LineWidth)
	}
}

func TestLoopHeightAtExportResolution(t *testing.T) {
	fonts, err := canvas.NewFontBook(canvas.FamilyMono)
	if err != nil {
		t.Fatal(err)
	}
	defer fonts.Close()

	fig := canvas.NewFigure()
	n := NewNode(geom.Pt(0, 0), WithRadius(0.2))
	n.Loop(fig, 90)

	scene, err := fig.Resolve(fonts, 300)
	if err != nil {
		t.Fatal(err)
	}

	// 100 px arms at 300 DPI are 24 points, under 0.3 units above the node.
	ppu := fig.PointsPerUnit()
	above := (scene.Bounds.Max.Y - n.Radius*ppu) / ppu
	if above <= 0 || above > 0.3 {
		t.Errorf("loop rises %.3f units above the node, want (0, 0.3]", above)
	}
}
