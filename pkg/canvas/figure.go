package canvas

import "sort"

// Surface receives artists. Drawing helpers take a Surface rather than
// reaching for a global figure, so tests can capture what was drawn.
type Surface interface {
	Add(a Artist)
}

// Figure is an in-memory drawing surface. It records artists in call
// order; it is not safe for concurrent use.
type Figure struct {
	// UnitInches is the physical size of one data unit.
	UnitInches float64
	// FontSize is the default text size in points.
	FontSize float64

	artists []Artist
}

// FigureOption configures a Figure.
type FigureOption func(*Figure)

// WithUnitInches sets the physical size of one data unit.
func WithUnitInches(in float64) FigureOption {
	return func(f *Figure) { f.UnitInches = in }
}

// WithFontSize sets the default text size in points.
func WithFontSize(pt float64) FigureOption {
	return func(f *Figure) { f.FontSize = pt }
}

// NewFigure creates an empty figure.
func NewFigure(opts ...FigureOption) *Figure {
	f := &Figure{
		UnitInches: 1.2,
		FontSize:   16,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Add appends a to the figure. Nil artists are ignored.
func (f *Figure) Add(a Artist) {
	if a == nil {
		return
	}
	f.artists = append(f.artists, a)
}

// Len returns the number of artists added so far.
func (f *Figure) Len() int {
	return len(f.artists)
}

// Artists returns the artists in paint order: by z-order, then by the
// order they were added.
func (f *Figure) Artists() []Artist {
	out := make([]Artist, len(f.artists))
	copy(out, f.artists)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ZOrder() < out[j].ZOrder()
	})
	return out
}

// PointsPerUnit converts data units to typographic points.
func (f *Figure) PointsPerUnit() float64 {
	return f.UnitInches * 72
}
