// Package render exports a canvas.Figure to image files.
package render

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/ha1tch/automata-plot/pkg/canvas"
	"github.com/ha1tch/automata-plot/pkg/geom"
)

// ErrUnknownFormat is returned by SaveFile for unsupported extensions.
var ErrUnknownFormat = errors.New("render: unknown output format")

// ErrEmptyFigure is returned when a figure has nothing to paint.
var ErrEmptyFigure = errors.New("render: figure is empty")

// Options configures export.
type Options struct {
	DPI        float64      // output resolution
	PadInches  float64      // margin around the tight bounding box
	FontFamily string       // canvas.FamilyMono or canvas.FamilySans
	Logger     *slog.Logger // nil discards
}

// DefaultOptions returns the settings of a plain savefig call with a
// tight bounding box.
func DefaultOptions() Options {
	return Options{
		DPI:        300,
		PadInches:  0.1,
		FontFamily: canvas.FamilyMono,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.DPI <= 0 {
		o.DPI = def.DPI
	}
	if o.PadInches < 0 {
		o.PadInches = def.PadInches
	}
	if o.FontFamily == "" {
		o.FontFamily = def.FontFamily
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

// frame maps scene points (y up) to output pixels (y down).
type frame struct {
	bounds geom.Rect
	pad    float64 // points
	scale  float64 // pixels per point
	width  int
	height int
}

func newFrame(b geom.Rect, opts Options) frame {
	pad := opts.PadInches * 72
	scale := opts.DPI / 72
	return frame{
		bounds: b,
		pad:    pad,
		scale:  scale,
		width:  int(math.Ceil((b.Width() + 2*pad) * scale)),
		height: int(math.Ceil((b.Height() + 2*pad) * scale)),
	}
}

func (f frame) pt(p geom.Point) geom.Point {
	return geom.Point{
		X: (p.X - f.bounds.Min.X + f.pad) * f.scale,
		Y: (f.bounds.Max.Y - p.Y + f.pad) * f.scale,
	}
}

// resolve lays out fig with a fresh font book. The caller closes the book.
func resolve(fig *canvas.Figure, opts Options) (*canvas.Scene, frame, error) {
	fonts, err := canvas.NewFontBook(opts.FontFamily)
	if err != nil {
		return nil, frame{}, err
	}
	scene, err := fig.Resolve(fonts, opts.DPI)
	if err != nil {
		_ = fonts.Close()
		return nil, frame{}, err
	}
	if scene.Bounds.Empty() {
		_ = fonts.Close()
		return nil, frame{}, ErrEmptyFigure
	}
	fr := newFrame(scene.Bounds, opts)
	opts.Logger.Debug("resolved figure",
		"artists", fig.Len(),
		"primitives", len(scene.Prims),
		"width", fr.width,
		"height", fr.height)
	return scene, fr, nil
}

// closeFile is replaced in tests to simulate a failed flush.
var closeFile = (*os.File).Close

// SaveFile writes fig to path, choosing PNG or SVG by extension.
func SaveFile(path string, fig *canvas.Figure, opts Options) error {
	opts = opts.withDefaults()

	var write func(io.Writer, *canvas.Figure, Options) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		write = WritePNG
	case ".svg":
		write = WriteSVG
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := write(f, fig, opts); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := closeFile(f); err != nil {
		os.Remove(path)
		return fmt.Errorf("render: %w", err)
	}

	opts.Logger.Info("wrote figure", "path", path, "dpi", opts.DPI)
	return nil
}
