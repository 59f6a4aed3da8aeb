package canvas

import (
	"errors"
	"testing"

	"github.com/gogpu/gg"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want gg.RGBA
	}{
		{"k", gg.RGB(0, 0, 0)},
		{"w", gg.RGB(1, 1, 1)},
		{"r", gg.RGB(1, 0, 0)},
		{"g", gg.RGB(0, 0.5, 0)},
		{"y", gg.RGB(0.75, 0.75, 0)},
		{"Gray", gg.Hex("#808080")},
		{" none ", gg.Transparent},
		{"#1565c0", gg.Hex("1565c0")},
		{"#fff", gg.RGB(1, 1, 1)},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"", "#12", "#zzzzzz", "sky", "rr"} {
		if _, err := ParseColor(in); !errors.Is(err, ErrBadColor) {
			t.Errorf("ParseColor(%q) err = %v, want ErrBadColor", in, err)
		}
	}
}

func TestIsNone(t *testing.T) {
	if !IsNone("none") || !IsNone("NONE") || !IsNone("") {
		t.Error("none/empty should disable painting")
	}
	if IsNone("k") {
		t.Error("k is a real color")
	}
}

func TestArrowStyleApply(t *testing.T) {
	def := DefaultArrowStyle()

	got := def.Apply(WithColor("y"))
	if got.Fill != "y" || got.Edge != "y" {
		t.Errorf("WithColor: fill=%q edge=%q, want both y", got.Fill, got.Edge)
	}
	if got.LineWidth != def.LineWidth || got.ShrinkA != def.ShrinkA || got.MutationScale != def.MutationScale {
		t.Error("WithColor must leave other fields alone")
	}
	if def.Fill != "k" {
		t.Error("Apply must not modify the receiver")
	}

	got = def.Apply(WithFill("r"), WithLineWidth(3), nil, WithShrink(0, 0))
	if got.Fill != "r" || got.Edge != "k" || got.LineWidth != 3 || got.ShrinkA != 0 || got.ShrinkB != 0 {
		t.Errorf("unexpected style: %s", got)
	}
}

func TestDefaultArrowStyle(t *testing.T) {
	s := DefaultArrowStyle()
	want := "-|>,head_width=0.12,head_length=0.4 fc=k ec=k lw=1.25 shrinkA=4 shrinkB=1 mutation_scale=15 connection=arc3,rad=0"
	if got := s.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}
