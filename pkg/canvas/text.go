package canvas

import (
	"math"
	"strings"
	"unicode"

	"github.com/ha1tch/automata-plot/pkg/geom"
)

// Subscripts are scaled down and dropped below the baseline.
const (
	subscriptScale = 0.7
	subscriptDrop  = 0.25
)

// span is a piece of a label with uniform styling.
type span struct {
	text   string
	italic bool
	sub    bool
}

// parseLabel splits a label into spans. Text between dollar signs is math:
// letters are italic and "_x" or "_{xy}" is a subscript. A backslash drops
// itself and keeps the following word, so "$\delta$" reads "delta".
func parseLabel(s string) []span {
	var spans []span
	var buf strings.Builder
	cur := span{}

	flush := func() {
		if buf.Len() > 0 {
			cur.text = buf.String()
			spans = append(spans, cur)
			buf.Reset()
		}
	}
	setStyle := func(italic, sub bool) {
		if cur.italic != italic || cur.sub != sub {
			flush()
			cur.italic, cur.sub = italic, sub
		}
	}

	runes := []rune(s)
	inMath := false
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '$':
			inMath = !inMath
			setStyle(false, false)
		case inMath && r == '\\':
			// dropped
		case inMath && r == '_' && i+1 < len(runes):
			var group []rune
			if runes[i+1] == '{' {
				j := i + 2
				for j < len(runes) && runes[j] != '}' {
					group = append(group, runes[j])
					j++
				}
				i = j
			} else {
				group = []rune{runes[i+1]}
				i++
			}
			for _, g := range group {
				setStyle(unicode.IsLetter(g), true)
				buf.WriteRune(g)
			}
			setStyle(false, false)
		case inMath && (r == '{' || r == '}'):
			// grouping only
		default:
			setStyle(inMath && unicode.IsLetter(r), false)
			buf.WriteRune(r)
		}
	}
	flush()
	return spans
}

func resolveText(t *Text, ppu, defaultSize float64, fonts *FontBook) ([]Primitive, error) {
	spans := parseLabel(t.Content)
	if len(spans) == 0 {
		return nil, nil
	}

	size := t.Size
	if size <= 0 {
		size = defaultSize
	}
	colorSpec := t.Color
	if colorSpec == "" {
		colorSpec = "k"
	}
	col, err := ParseColor(colorSpec)
	if err != nil {
		return nil, err
	}

	metrics := fonts.Face(FontStyle{Bold: t.Bold}, size).Metrics()
	runs := make([]TextRun, 0, len(spans))
	width := 0.0
	descent := metrics.Descent
	for _, sp := range spans {
		run := TextRun{
			Text:  sp.text,
			Size:  size,
			Style: FontStyle{Bold: t.Bold, Italic: sp.italic},
		}
		dy := 0.0
		if sp.sub {
			run.Size = size * subscriptScale
			dy = -size * subscriptDrop
			subMetrics := fonts.Face(run.Style, run.Size).Metrics()
			descent = math.Max(descent, subMetrics.Descent-dy)
		}
		run.Origin = geom.Pt(width, dy)
		width += fonts.Face(run.Style, run.Size).Advance(sp.text)
		runs = append(runs, run)
	}

	// Center horizontally on the full advance and vertically on the
	// ascent/descent box of the base face.
	center := t.Pos.Scale(ppu)
	x0 := center.X - width/2
	baseline := center.Y - (metrics.Ascent-metrics.Descent)/2
	for i := range runs {
		runs[i].Origin = runs[i].Origin.Add(geom.Pt(x0, baseline))
	}

	box := geom.RectFromPoints(
		geom.Pt(x0, baseline-descent),
		geom.Pt(x0+width, baseline+metrics.Ascent),
	)
	return []Primitive{Glyphs{Runs: runs, Color: col, Box: box}}, nil
}
