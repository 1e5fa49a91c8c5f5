// Package style resolves drawing-option values into per-element colors,
// widths, and alphas.
//
// The drawing functions accept styling arguments that may be a single value
// or a per-element list. This package owns the rules for fitting those
// arguments to the elements actually drawn:
//
//   - scalars repeat; short lists cycle; long lists truncate ([Broadcast])
//   - colors are named strings, hex ("#rrggbb" / "#rrggbbaa"), or RGB(A)
//     component tuples ([Parse], [RGB], [RGBA])
//   - numeric lists map through a [Colormap] after [Normalize] scaling with
//     optional explicit vmin/vmax bounds
//   - alpha is a scalar or list, multiplied into the resolved colors
//
// [Spec] ties these together as the color argument type of the drawing
// functions.
package style
