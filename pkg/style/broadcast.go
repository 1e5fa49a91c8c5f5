package style

import "image/color"

// Broadcast fits a per-element style list to n elements:
//
//   - empty list: the default repeated n times
//   - fewer entries than elements: entries cycled
//   - more entries than elements: extras dropped
//
// These are the list-length rules every styling argument (colors, widths,
// sizes, alphas) follows.
func Broadcast[T any](xs []T, n int, def T) []T {
	out := make([]T, n)
	if len(xs) == 0 {
		for i := range out {
			out[i] = def
		}
		return out
	}
	for i := range out {
		out[i] = xs[i%len(xs)]
	}
	return out
}

// Spec selects colors for a set of drawn elements. A Spec is one of:
//
//   - zero value: caller's default color, repeated
//   - explicit colors (One, List): broadcast over the elements
//   - scalar values (Values): normalized and mapped through a colormap
type Spec struct {
	colors []color.NRGBA
	values []float64
}

// One specifies a single color for all elements.
func One(c color.NRGBA) Spec { return Spec{colors: []color.NRGBA{c}} }

// List specifies per-element colors, broadcast by the [Broadcast] rules.
func List(cs ...color.NRGBA) Spec { return Spec{colors: cs} }

// Values specifies scalar values to be mapped through a colormap.
func Values(vs ...float64) Spec { return Spec{values: append([]float64(nil), vs...)} }

// Names builds a List from color names or hex strings.
func Names(names ...string) (Spec, error) {
	cs := make([]color.NRGBA, len(names))
	for i, name := range names {
		c, err := Parse(name)
		if err != nil {
			return Spec{}, err
		}
		cs[i] = c
	}
	return List(cs...), nil
}

// IsZero reports whether the spec carries no color information.
func (s Spec) IsZero() bool { return len(s.colors) == 0 && len(s.values) == 0 }

// IsNumeric reports whether the spec maps scalars through a colormap.
func (s Spec) IsNumeric() bool { return len(s.values) > 0 }

// Resolve produces one color per element. Numeric specs are normalized by
// norm and looked up in cm; explicit color lists are broadcast; a zero spec
// yields def everywhere. The alpha list, broadcast the same way (nil leaves
// color alpha untouched), scales each resolved color's alpha channel.
func (s Spec) Resolve(n int, def color.NRGBA, cm Colormap, norm Normalize, alpha []float64) []color.NRGBA {
	var out []color.NRGBA
	switch {
	case s.IsNumeric():
		scaled := norm.Apply(Broadcast(s.values, n, 0))
		out = make([]color.NRGBA, n)
		for i, t := range scaled {
			out[i] = cm.At(t)
		}
	case len(s.colors) > 0:
		out = Broadcast(s.colors, n, color.NRGBA{})
	default:
		out = Broadcast(nil, n, def)
	}

	if len(alpha) > 0 {
		as := Broadcast(alpha, n, 1)
		for i := range out {
			out[i] = WithAlpha(out[i], as[i])
		}
	}
	return out
}
