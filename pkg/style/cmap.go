package style

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Colormap maps scalar values in [0,1] to colors by piecewise interpolation
// between anchor colors in Lab space, which keeps perceived lightness smooth.
type Colormap struct {
	name    string
	anchors []colorful.Color
}

// Name returns the colormap's identifier.
func (m Colormap) Name() string { return m.name }

// At returns the color for t; t is clamped to [0,1].
func (m Colormap) At(t float64) color.NRGBA {
	t = math.Min(1, math.Max(0, t))
	if len(m.anchors) == 1 {
		r, g, b := m.anchors[0].RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: 0xff}
	}
	segs := float64(len(m.anchors) - 1)
	i := int(t * segs)
	if i >= len(m.anchors)-1 {
		i = len(m.anchors) - 2
	}
	frac := t*segs - float64(i)
	c := m.anchors[i].BlendLab(m.anchors[i+1], frac).Clamped()
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

var (
	// Viridis is the default sequential colormap.
	Viridis = Colormap{name: "viridis", anchors: []colorful.Color{
		mustHex("#440154"), mustHex("#46327e"), mustHex("#365c8d"),
		mustHex("#277f8e"), mustHex("#1fa187"), mustHex("#4ac16d"),
		mustHex("#a0da39"), mustHex("#fde725"),
	}}

	// Blues runs from near-white to dark blue.
	Blues = Colormap{name: "blues", anchors: []colorful.Color{
		mustHex("#f7fbff"), mustHex("#deebf7"), mustHex("#c6dbef"),
		mustHex("#9ecae1"), mustHex("#6baed6"), mustHex("#4292c6"),
		mustHex("#2171b5"), mustHex("#08519c"), mustHex("#08306b"),
	}}

	// Greys runs from near-white to black.
	Greys = Colormap{name: "greys", anchors: []colorful.Color{
		mustHex("#ffffff"), mustHex("#bdbdbd"), mustHex("#636363"),
		mustHex("#000000"),
	}}
)

// Colormaps indexes the built-in colormaps by name.
var Colormaps = map[string]Colormap{
	Viridis.name: Viridis,
	Blues.name:   Blues,
	Greys.name:   Greys,
}

// Normalize linearly maps values from [Vmin, Vmax] to [0,1] for colormap
// lookup. NaN bounds are taken from the data (min and max of the values),
// which is the default behavior when no explicit bounds are given.
type Normalize struct {
	Vmin, Vmax float64
}

// AutoNorm is the all-defaults normalization: bounds from data.
var AutoNorm = Normalize{Vmin: math.NaN(), Vmax: math.NaN()}

// Apply maps each value to [0,1]. With equal (or inverted) effective bounds,
// every value maps to 0.
func (n Normalize) Apply(values []float64) []float64 {
	vmin, vmax := n.Vmin, n.Vmax
	if math.IsNaN(vmin) || math.IsNaN(vmax) {
		dmin, dmax := math.Inf(1), math.Inf(-1)
		for _, v := range values {
			dmin = math.Min(dmin, v)
			dmax = math.Max(dmax, v)
		}
		if math.IsNaN(vmin) {
			vmin = dmin
		}
		if math.IsNaN(vmax) {
			vmax = dmax
		}
	}
	out := make([]float64, len(values))
	span := vmax - vmin
	if span <= 0 {
		return out
	}
	for i, v := range values {
		out[i] = math.Min(1, math.Max(0, (v-vmin)/span))
	}
	return out
}
