package canvas

import (
	"fmt"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// Font families available without any font files on disk.
const (
	FamilyMono = "mono"
	FamilySans = "sans"
)

// FontStyle picks one face out of a family.
type FontStyle struct {
	Bold   bool
	Italic bool
}

func (s FontStyle) index() int {
	i := 0
	if s.Bold {
		i |= 1
	}
	if s.Italic {
		i |= 2
	}
	return i
}

// FontBook holds the parsed Go fonts of one family.
type FontBook struct {
	family  string
	sources [4]*text.FontSource
}

// NewFontBook parses the embedded Go fonts for family.
func NewFontBook(family string) (*FontBook, error) {
	var data [4][]byte
	switch family {
	case FamilyMono, "":
		family = FamilyMono
		data = [4][]byte{gomono.TTF, gomonobold.TTF, gomonoitalic.TTF, gomonobolditalic.TTF}
	case FamilySans:
		data = [4][]byte{goregular.TTF, gobold.TTF, goitalic.TTF, gobolditalic.TTF}
	default:
		return nil, fmt.Errorf("canvas: unknown font family %q", family)
	}

	fb := &FontBook{family: family}
	for i, ttf := range data {
		src, err := text.NewFontSource(ttf)
		if err != nil {
			return nil, fmt.Errorf("canvas: parse %s font: %w", family, err)
		}
		fb.sources[i] = src
	}
	return fb, nil
}

// Family returns the family name.
func (fb *FontBook) Family() string {
	return fb.family
}

// Face returns a face of the given style. Size is in points, or in pixels
// when the caller has already applied a DPI scale.
func (fb *FontBook) Face(style FontStyle, size float64) text.Face {
	return fb.sources[style.index()].Face(size)
}

// Close releases the font sources.
func (fb *FontBook) Close() error {
	for _, src := range fb.sources {
		if src == nil {
			continue
		}
		if err := src.Close(); err != nil {
			return err
		}
	}
	return nil
}
