package style

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrUnknownColor is returned for color names not in the palette.
	ErrUnknownColor = errors.New("unknown color name")

	// ErrInvalidHex is returned for malformed hex color strings.
	ErrInvalidHex = errors.New("invalid hex color")
)

// named is the color palette: the classic single-letter plotting codes plus
// common CSS names.
var named = map[string]color.NRGBA{
	"b": {0x1f, 0x77, 0xb4, 0xff}, // matplotlib default blue
	"g": {0x2c, 0xa0, 0x2c, 0xff},
	"r": {0xd6, 0x27, 0x28, 0xff},
	"c": {0x17, 0xbe, 0xcf, 0xff},
	"m": {0xe3, 0x77, 0xc2, 0xff},
	"y": {0xbc, 0xbd, 0x22, 0xff},
	"k": {0x00, 0x00, 0x00, 0xff},
	"w": {0xff, 0xff, 0xff, 0xff},

	"black":   {0x00, 0x00, 0x00, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"red":     {0xff, 0x00, 0x00, 0xff},
	"green":   {0x00, 0x80, 0x00, 0xff},
	"blue":    {0x00, 0x00, 0xff, 0xff},
	"cyan":    {0x00, 0xff, 0xff, 0xff},
	"magenta": {0xff, 0x00, 0xff, 0xff},
	"yellow":  {0xff, 0xff, 0x00, 0xff},
	"purple":  {0x80, 0x00, 0x80, 0xff},
	"orange":  {0xff, 0xa5, 0x00, 0xff},
	"gray":    {0x80, 0x80, 0x80, 0xff},
	"grey":    {0x80, 0x80, 0x80, 0xff},
	"brown":   {0xa5, 0x2a, 0x2a, 0xff},
	"pink":    {0xff, 0xc0, 0xcb, 0xff},
	"olive":   {0x80, 0x80, 0x00, 0xff},
	"navy":    {0x00, 0x00, 0x80, 0xff},
	"teal":    {0x00, 0x80, 0x80, 0xff},
	"lime":    {0x00, 0xff, 0x00, 0xff},
}

// Named resolves a palette color name. Lookup is case-insensitive.
func Named(name string) (color.NRGBA, error) {
	c, ok := named[strings.ToLower(name)]
	if !ok {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}
	return c, nil
}

// ParseHex parses "#rrggbb" or "#rrggbbaa". The alpha suffix form carries
// per-color transparency, e.g. "#1f78b4f0".
func ParseHex(s string) (color.NRGBA, error) {
	if !strings.HasPrefix(s, "#") {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	alpha := uint8(0xff)
	rgb := s
	if len(s) == 9 {
		var a uint8
		if _, err := fmt.Sscanf(s[7:9], "%02x", &a); err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
		}
		alpha = a
		rgb = s[:7]
	}
	c, err := colorful.Hex(rgb)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

// Parse resolves a color string: a palette name or a hex form.
func Parse(s string) (color.NRGBA, error) {
	if strings.HasPrefix(s, "#") {
		return ParseHex(s)
	}
	return Named(s)
}

// MustParse is Parse for trusted literals; it panics on error.
func MustParse(s string) color.NRGBA {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// RGB builds an opaque color from components in [0,1].
func RGB(r, g, b float64) color.NRGBA {
	return RGBA(r, g, b, 1)
}

// RGBA builds a color from components in [0,1], including alpha.
func RGBA(r, g, b, a float64) color.NRGBA {
	return color.NRGBA{R: to255(r), G: to255(g), B: to255(b), A: to255(a)}
}

func to255(v float64) uint8 {
	return uint8(math.Round(math.Min(1, math.Max(0, v)) * 255))
}

// WithAlpha scales a color's alpha channel by a in [0,1].
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = to255(float64(c.A) / 255 * math.Min(1, math.Max(0, a)))
	return c
}
