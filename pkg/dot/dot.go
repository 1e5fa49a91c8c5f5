// Package dot exports graphs to Graphviz DOT and renders them through the
// Graphviz layout engines. It is an alternative backend to the raster
// pipeline in package draw: Graphviz picks the positions, so it suits quick
// structural previews rather than baseline-compared output.
package dot

import (
	"bytes"
	"context"
	"fmt"
	"image/color"
	"maps"
	"slices"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/graphplot/graphplot/pkg/graph"
)

// Options configures DOT export.
type Options struct {
	// Labels overrides node label text; nodes without an entry keep
	// their ID.
	Labels map[string]string
	// NodeColor fills node shapes when set.
	NodeColor *color.NRGBA
	// EdgeColor strokes edges when set.
	EdgeColor *color.NRGBA
	// Detailed appends node metadata lines to each label.
	Detailed bool
}

// ToDOT converts a graph to Graphviz DOT. Undirected graphs emit "graph"
// with "--" edges, directed graphs "digraph" with "->". The result renders
// with [RenderSVG] or [RenderPNG], or any external dot binary.
func ToDOT(g *graph.Graph, opts Options) string {
	var buf bytes.Buffer

	keyword, arrow := "graph", "--"
	if g.IsDirected() {
		keyword, arrow = "digraph", "->"
	}
	fmt.Fprintf(&buf, "%s G {\n", keyword)
	buf.WriteString("  bgcolor=\"white\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=\"#1f78b4\", fontcolor=white];\n")
	if g.IsMultigraph() {
		// parallel edges must stay distinct
		buf.WriteString("  concentrate=false;\n")
	}
	buf.WriteString("\n")

	for _, id := range g.Nodes() {
		n, _ := g.Node(id)
		attrs := nodeAttrs(n, opts)
		fmt.Fprintf(&buf, "  %q [%s];\n", id, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		if opts.EdgeColor != nil {
			fmt.Fprintf(&buf, "  %q %s %q [color=%q];\n", e.From, arrow, e.To, hex(*opts.EdgeColor))
		} else {
			fmt.Fprintf(&buf, "  %q %s %q;\n", e.From, arrow, e.To)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(n *graph.Node, opts Options) []string {
	label := n.ID
	if l, ok := opts.Labels[n.ID]; ok {
		label = l
	}
	if opts.Detailed && len(n.Meta) > 0 {
		parts := []string{label}
		for _, k := range slices.Sorted(maps.Keys(n.Meta)) {
			parts = append(parts, fmt.Sprintf("%s: %v", k, n.Meta[k]))
		}
		label = strings.Join(parts, "\n")
	}

	attrs := []string{fmt.Sprintf("label=%q", label)}
	if opts.NodeColor != nil {
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", hex(*opts.NodeColor)))
	}
	return attrs
}

func hex(c color.NRGBA) string {
	if c.A != 0xff {
		return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RenderSVG lays out and renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.SVG)
}

// RenderPNG lays out and renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
