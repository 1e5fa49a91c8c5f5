package draw

import (
	"fmt"
	"math"

	"github.com/graphplot/graphplot/pkg/graph"
	"github.com/graphplot/graphplot/pkg/layout"
	"github.com/graphplot/graphplot/pkg/style"
)

// Nodes draws graph nodes as filled circle markers. Marker area follows the
// Size option in pt² so doubling the size doubles the visual area, not the
// diameter. Returns an error when the subset names a node missing from the
// graph or the position map.
func Nodes(ax *Axes, g *graph.Graph, pos layout.Positions, opts NodeOptions) error {
	opts.normalize()
	ax.ensureLimits(pos)

	ids := opts.Nodes
	if ids == nil {
		ids = g.Nodes()
	}
	for _, id := range ids {
		if _, ok := g.Node(id); !ok {
			return fmt.Errorf("%w: %s", graph.ErrUnknownNode, id)
		}
		if _, ok := pos[id]; !ok {
			return fmt.Errorf("%w: no position for %s", graph.ErrUnknownNode, id)
		}
	}

	norm := style.Normalize{Vmin: opts.Vmin, Vmax: opts.Vmax}
	colors := opts.Color.Resolve(len(ids), defaultNodeColor, opts.Cmap, norm, opts.Alpha)
	sizes := style.Broadcast(opts.Size, len(ids), DefaultNodeSize)

	outlines := opts.EdgeColor.Resolve(len(ids), black, opts.Cmap, norm, nil)
	drawOutline := !opts.EdgeColor.IsZero() && opts.LineWidth > 0

	for i, id := range ids {
		area := sizes[i]
		if area <= 0 {
			continue
		}
		// marker area in pt² → radius in px
		radius := ax.ptToPx(math.Sqrt(area / math.Pi))
		x, y := ax.toPixel(pos[id])

		ax.dc.SetColor(colors[i])
		ax.dc.DrawCircle(x, y, radius)
		ax.dc.Fill()

		if drawOutline {
			ax.dc.SetColor(outlines[i])
			ax.dc.SetLineWidth(ax.ptToPx(opts.LineWidth))
			ax.dc.DrawCircle(x, y, radius)
			ax.dc.Stroke()
		}
	}
	return nil
}
