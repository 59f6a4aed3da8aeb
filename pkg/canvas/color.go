package canvas

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/gg"
)

// ErrBadColor is returned for color strings that cannot be parsed.
var ErrBadColor = errors.New("canvas: invalid color")

// Single-letter and named colors, matching the usual plotting shorthands.
var namedColors = map[string]gg.RGBA{
	"b": gg.RGB(0, 0, 1),
	"g": gg.RGB(0, 0.5, 0),
	"r": gg.RGB(1, 0, 0),
	"c": gg.RGB(0, 0.75, 0.75),
	"m": gg.RGB(0.75, 0, 0.75),
	"y": gg.RGB(0.75, 0.75, 0),
	"k": gg.RGB(0, 0, 0),
	"w": gg.RGB(1, 1, 1),

	"black":     gg.Hex("#000000"),
	"white":     gg.Hex("#ffffff"),
	"red":       gg.Hex("#ff0000"),
	"green":     gg.Hex("#008000"),
	"blue":      gg.Hex("#0000ff"),
	"yellow":    gg.Hex("#ffff00"),
	"orange":    gg.Hex("#ffa500"),
	"gray":      gg.Hex("#808080"),
	"grey":      gg.Hex("#808080"),
	"lightgray": gg.Hex("#d3d3d3"),
	"darkgray":  gg.Hex("#a9a9a9"),
	"none":      gg.Transparent,
}

// ParseColor converts a color spec ("r", "gray", "#1565c0", "none") to RGBA.
func ParseColor(s string) (gg.RGBA, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[key]; ok {
		return c, nil
	}
	if strings.HasPrefix(key, "#") && validHex(key[1:]) {
		return gg.Hex(key), nil
	}
	return gg.RGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
}

// IsNone reports whether s disables painting.
func IsNone(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "none") || s == ""
}

func validHex(s string) bool {
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return false
		}
	}
	return true
}

// withAlpha scales the alpha channel of c.
func withAlpha(c gg.RGBA, alpha float64) gg.RGBA {
	c.A *= alpha
	return c
}
