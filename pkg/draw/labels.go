package draw

import (
	"fmt"
	"math"

	"github.com/graphplot/graphplot/pkg/graph"
	"github.com/graphplot/graphplot/pkg/layout"
)

// Labels draws node label text centered on each node position. Nodes
// without an entry in opts.Labels fall back to their ID; a nil map labels
// every node with its ID.
func Labels(ax *Axes, g *graph.Graph, pos layout.Positions, opts LabelOptions) error {
	ax.ensureLimits(pos)

	size := opts.FontSize
	if size == 0 {
		size = DefaultFontSize
	}
	face, err := fontFace(ax.ptToPx(size))
	if err != nil {
		return fmt.Errorf("load label font: %w", err)
	}
	ax.dc.SetFontFace(face)

	col := opts.Color
	if col.A == 0 {
		col = black
	}
	ax.dc.SetColor(col)

	for _, id := range g.Nodes() {
		p, ok := pos[id]
		if !ok {
			continue
		}
		text := id
		if opts.Labels != nil {
			t, ok := opts.Labels[id]
			if !ok {
				continue
			}
			text = t
		}
		x, y := ax.toPixel(p)
		ax.dc.DrawStringAnchored(text, x, y, 0.5, 0.35)
	}
	return nil
}

// EdgeLabels draws text along each edge at the LabelPos fraction from the
// source. A nil map labels every edge "from-to". Returns an error when a
// label references an edge the graph does not have.
func EdgeLabels(ax *Axes, g *graph.Graph, pos layout.Positions, opts EdgeLabelOptions) error {
	ax.ensureLimits(pos)

	size := opts.FontSize
	if size == 0 {
		size = DefaultFontSize
	}
	face, err := fontFace(ax.ptToPx(size))
	if err != nil {
		return fmt.Errorf("load edge label font: %w", err)
	}
	ax.dc.SetFontFace(face)

	col := opts.Color
	if col.A == 0 {
		col = black
	}
	ax.dc.SetColor(col)

	t := opts.LabelPos
	if t == 0 {
		t = 0.5
	}

	type labeled struct {
		ref  graph.Ref
		text string
	}
	var items []labeled
	if opts.Labels == nil {
		for _, e := range g.Edges() {
			items = append(items, labeled{
				ref:  graph.Ref{From: e.From, To: e.To, Key: e.Key},
				text: e.From + "-" + e.To,
			})
		}
	} else {
		for _, e := range g.Edges() {
			r := graph.Ref{From: e.From, To: e.To, Key: e.Key}
			if text, ok := opts.Labels[r]; ok {
				items = append(items, labeled{ref: r, text: text})
				continue
			}
			if !g.IsDirected() {
				rev := graph.Ref{From: e.To, To: e.From, Key: e.Key}
				if text, ok := opts.Labels[rev]; ok {
					items = append(items, labeled{ref: r, text: text})
				}
			}
		}
		for r := range opts.Labels {
			if _, err := g.Edge(r); err != nil {
				return err
			}
		}
	}

	for _, it := range items {
		p1, p2 := pos[it.ref.From], pos[it.ref.To]
		x1, y1 := ax.toPixel(p1)
		x2, y2 := ax.toPixel(p2)
		x := x1 + (x2-x1)*t
		y := y1 + (y2-y1)*t

		if opts.Rotate {
			angle := math.Atan2(y2-y1, x2-x1)
			// keep text readable: never upside down
			if angle > math.Pi/2 {
				angle -= math.Pi
			} else if angle < -math.Pi/2 {
				angle += math.Pi
			}
			ax.dc.Push()
			ax.dc.RotateAbout(angle, x, y)
			ax.dc.DrawStringAnchored(it.text, x, y, 0.5, 0.35)
			ax.dc.Pop()
		} else {
			ax.dc.DrawStringAnchored(it.text, x, y, 0.5, 0.35)
		}
	}
	return nil
}
