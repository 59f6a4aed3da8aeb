// Package example assembles the four-state automaton picture.
package example

import (
	"fmt"
	"log/slog"

	"github.com/ha1tch/automata-plot/internal/config"
	"github.com/ha1tch/automata-plot/pkg/automaton"
	"github.com/ha1tch/automata-plot/pkg/canvas"
	"github.com/ha1tch/automata-plot/pkg/geom"
	"github.com/ha1tch/automata-plot/pkg/render"
)

// Nodes are the states of the example automaton.
type Nodes struct {
	Start *automaton.Node // text-only entry marker
	Q     [4]*automaton.Node
}

// Automaton draws the example onto s: an entry arrow into q0, a chain
// q0 -> q1 -> q2 -> q3, self-loops on q0 and q1, and three curved
// transitions back and across.
func Automaton(s canvas.Surface) Nodes {
	start := automaton.NewNode(geom.Pt(-0.7, 0), automaton.WithLabel("start"), automaton.WithRadius(0.15))
	start.Draw(s, automaton.TextOnly(), automaton.FontSize(10), automaton.Bold())

	var q [4]*automaton.Node
	for i := range q {
		q[i] = automaton.NewNode(geom.Pt(float64(i), 0),
			automaton.WithLabel(fmt.Sprintf("$q_%d$", i)),
			automaton.WithRadius(0.2))
	}

	start.ArrowTo(s, q[0])
	q[0].Draw(s, automaton.Color("r"))
	for i := 1; i < len(q); i++ {
		q[i].Draw(s)
		q[i-1].ArrowTo(s, q[i])
	}

	for _, n := range q[:2] {
		n.Loop(s, 90)
	}

	q[3].CurveArrowTo(s, q[0], 250, 150, canvas.WithColor("y"))
	q[1].CurveArrowTo(s, q[2], -30, 30)
	q[3].CurveArrowTo(s, q[1], 225, 135)

	return Nodes{Start: start, Q: q}
}

// Render draws the example into a fresh figure and writes it to
// cfg.Output.
func Render(cfg *config.Config, logger *slog.Logger) error {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}

	fig := canvas.NewFigure(
		canvas.WithUnitInches(cfg.Figure.UnitInches),
		canvas.WithFontSize(cfg.Font.Size),
	)
	Automaton(fig)
	logger.Debug("built example figure", "artists", fig.Len())

	opts := render.Options{
		DPI:        cfg.Figure.DPI,
		PadInches:  cfg.Figure.PadInches,
		FontFamily: cfg.Font.Family,
		Logger:     logger,
	}
	if err := render.SaveFile(cfg.Output, fig, opts); err != nil {
		return fmt.Errorf("render example: %w", err)
	}
	return nil
}
