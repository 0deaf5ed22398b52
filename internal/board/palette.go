package board

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// ErrUnknownColor is returned for palette names outside the fixed set.
var ErrUnknownColor = errors.New("unknown color")

// Color is one of the named pen colors. It satisfies color.Color.
type Color int

const (
	Purple Color = iota
	Blue
	Green
	Red
	Yellow
	Pink
)

var palette = [...]struct {
	name string
	rgb  color.NRGBA
}{
	Purple: {"Purple", color.NRGBA{R: 255, G: 0, B: 255, A: 255}},
	Blue:   {"Blue", color.NRGBA{R: 0, G: 0, B: 255, A: 255}},
	Green:  {"Green", color.NRGBA{R: 0, G: 255, B: 0, A: 255}},
	Red:    {"Red", color.NRGBA{R: 255, G: 0, B: 0, A: 255}},
	Yellow: {"Yellow", color.NRGBA{R: 255, G: 255, B: 0, A: 255}},
	Pink:   {"Pink", color.NRGBA{R: 255, G: 192, B: 203, A: 255}},
}

// Palette lists every pen color in menu order.
func Palette() []Color {
	out := make([]Color, len(palette))
	for i := range palette {
		out[i] = Color(i)
	}
	return out
}

// ParseColor looks a palette entry up by name, ignoring case.
func ParseColor(name string) (Color, error) {
	n := strings.TrimSpace(name)
	for i, p := range palette {
		if strings.EqualFold(p.name, n) {
			return Color(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColor, name)
}

// Valid reports whether c names a palette entry.
func (c Color) Valid() bool { return c >= 0 && int(c) < len(palette) }

func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return palette[c].name
}

// NRGBA returns the channel triple of c, fully opaque.
func (c Color) NRGBA() color.NRGBA {
	if !c.Valid() {
		return color.NRGBA{A: 255}
	}
	return palette[c].rgb
}

func (c Color) RGBA() (r, g, b, a uint32) { return c.NRGBA().RGBA() }

// Hex formats c as #RRGGBB.
func (c Color) Hex() string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B)
}
