package draw

import (
	"math"

	"github.com/graphplot/graphplot/pkg/graph"
	"github.com/graphplot/graphplot/pkg/layout"
	"github.com/graphplot/graphplot/pkg/style"
)

// Edges draws graph edges as straight lines, with arrow heads when the
// graph is directed (or Arrows forces them). Width, color, and alpha
// broadcast per edge. Returns an error when the subset references an edge
// or endpoint the graph does not have.
func Edges(ax *Axes, g *graph.Graph, pos layout.Positions, opts EdgeOptions) error {
	opts.normalize()
	ax.ensureLimits(pos)

	edges, err := resolveEdges(g, opts.Edges)
	if err != nil {
		return err
	}

	norm := style.Normalize{Vmin: opts.Vmin, Vmax: opts.Vmax}
	colors := opts.Color.Resolve(len(edges), defaultEdgeColor, opts.Cmap, norm, opts.Alpha)
	widths := style.Broadcast(opts.Width, len(edges), DefaultEdgeWidth)

	arrows := g.IsDirected()
	if opts.Arrows != nil {
		arrows = *opts.Arrows
	}

	for i, e := range edges {
		x1, y1 := ax.toPixel(pos[e.From])
		x2, y2 := ax.toPixel(pos[e.To])

		dx, dy := x2-x1, y2-y1
		length := math.Hypot(dx, dy)
		if length < 1e-9 {
			continue // self loop or coincident endpoints
		}
		ux, uy := dx/length, dy/length

		// margins shorten the visible segment at each end
		srcTrim := ax.ptToPx(opts.MinSourceMargin)
		dstTrim := ax.ptToPx(opts.MinTargetMargin)
		headLen := 0.0
		if arrows {
			headLen = ax.ptToPx(opts.ArrowSize)
		}
		if srcTrim+dstTrim+headLen >= length {
			srcTrim, dstTrim = 0, 0 // margins would swallow the edge
		}

		sx, sy := x1+ux*srcTrim, y1+uy*srcTrim
		tx, ty := x2-ux*dstTrim, y2-uy*dstTrim

		w := ax.ptToPx(widths[i])
		ax.dc.SetColor(colors[i])
		ax.dc.SetLineWidth(w)
		if opts.Dashed {
			ax.dc.SetDash(4*w, 2*w)
		}

		if arrows {
			// line stops at the base of the head
			bx, by := tx-ux*headLen, ty-uy*headLen
			ax.dc.DrawLine(sx, sy, bx, by)
			ax.dc.Stroke()
			drawArrowHead(ax, tx, ty, ux, uy, headLen)
		} else {
			ax.dc.DrawLine(sx, sy, tx, ty)
			ax.dc.Stroke()
		}
		if opts.Dashed {
			ax.dc.SetDash()
		}
	}
	return nil
}

// drawArrowHead fills a triangular head ending at (tx, ty) pointing along
// the unit vector (ux, uy). Color is whatever the context carries.
func drawArrowHead(ax *Axes, tx, ty, ux, uy, size float64) {
	if size <= 0 {
		return
	}
	// base corners perpendicular to the shaft, half as wide as long
	bx, by := tx-ux*size, ty-uy*size
	px, py := -uy, ux
	half := size / 2

	ax.dc.MoveTo(tx, ty)
	ax.dc.LineTo(bx+px*half, by+py*half)
	ax.dc.LineTo(bx-px*half, by-py*half)
	ax.dc.ClosePath()
	ax.dc.Fill()
}

// resolveEdges expands the edge subset (or the full edge set when nil)
// to concrete edges, validating every reference.
func resolveEdges(g *graph.Graph, refs []graph.Ref) ([]*graph.Edge, error) {
	if refs == nil {
		return g.Edges(), nil
	}
	out := make([]*graph.Edge, len(refs))
	for i, r := range refs {
		e, err := g.Edge(r)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}
