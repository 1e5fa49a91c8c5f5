package draw

import (
	"image/color"
	"math"

	"github.com/graphplot/graphplot/pkg/graph"
	"github.com/graphplot/graphplot/pkg/style"
)

// Defaults matching the composite [Graph] entry point.
const (
	DefaultNodeSize  = 300 // marker area in pt²
	DefaultEdgeWidth = 1.0 // stroke width in pt
	DefaultFontSize  = 12  // label size in pt
	DefaultArrowSize = 10  // arrow head length in pt
)

var (
	defaultNodeColor = style.MustParse("#1f78b4")
	defaultEdgeColor = style.MustParse("k")
	black            = color.NRGBA{A: 0xff}
)

// NodeOptions configures [Nodes]. Zero values mean defaults; list-valued
// fields follow the broadcasting rules of package style.
type NodeOptions struct {
	// Nodes restricts drawing to a subset; nil draws every node.
	Nodes []string
	// Color selects fill colors (default steel blue).
	Color style.Spec
	// Size is the marker area per node in pt² (default 300, 0 hides
	// the node). A single entry applies to all nodes.
	Size []float64
	// Alpha scales fill opacity per node.
	Alpha []float64
	// Cmap resolves numeric Color values (default viridis).
	Cmap style.Colormap
	// Vmin, Vmax bound the colormap normalization. Leaving both zero
	// (or NaN) takes the bounds from the data.
	Vmin, Vmax float64
	// EdgeColor strokes the marker outline; zero draws no outline.
	EdgeColor style.Spec
	// LineWidth is the outline stroke width in pt.
	LineWidth float64
}

func (o *NodeOptions) normalize() {
	if o.Cmap.Name() == "" {
		o.Cmap = style.Viridis
	}
	if o.Vmin == 0 && o.Vmax == 0 {
		o.Vmin, o.Vmax = math.NaN(), math.NaN()
	}
}

// EdgeOptions configures [Edges].
type EdgeOptions struct {
	// Edges restricts drawing to a subset; nil draws every edge.
	// Multigraph edges are addressed by their (From, To, Key) reference.
	Edges []graph.Ref
	// Width is the stroke width per edge in pt (default 1).
	Width []float64
	// Color selects stroke colors (default black).
	Color style.Spec
	// Alpha scales stroke opacity per edge.
	Alpha []float64
	// Cmap resolves numeric Color values (default viridis).
	Cmap style.Colormap
	// Vmin, Vmax bound the colormap normalization. Leaving both zero
	// (or NaN) takes the bounds from the data.
	Vmin, Vmax float64
	// Arrows forces arrow heads on or off; nil follows the graph's
	// directedness.
	Arrows *bool
	// ArrowSize is the arrow head length in pt (default 10).
	ArrowSize float64
	// MinSourceMargin and MinTargetMargin shorten the edge at its
	// endpoints, in pt.
	MinSourceMargin float64
	MinTargetMargin float64
	// Dashed strokes edges with a dash pattern instead of solid.
	Dashed bool
}

func (o *EdgeOptions) normalize() {
	if o.Cmap.Name() == "" {
		o.Cmap = style.Viridis
	}
	if o.Vmin == 0 && o.Vmax == 0 {
		o.Vmin, o.Vmax = math.NaN(), math.NaN()
	}
	if o.ArrowSize == 0 {
		o.ArrowSize = DefaultArrowSize
	}
}

// LabelOptions configures [Labels].
type LabelOptions struct {
	// Labels overrides the text per node; missing nodes fall back to
	// their ID. nil labels every node with its ID.
	Labels map[string]string
	// FontSize in pt (default 12).
	FontSize float64
	// Color is the text color (default black).
	Color color.NRGBA
}

// EdgeLabelOptions configures [EdgeLabels].
type EdgeLabelOptions struct {
	// Labels maps edge references to text. nil labels every edge
	// "from-to".
	Labels map[graph.Ref]string
	// LabelPos places the label along the edge: 0 at the source,
	// 1 at the target, default 0.5 (midpoint).
	LabelPos float64
	// Rotate aligns the text with the edge direction (default true via
	// [Options]; zero value here means no rotation).
	Rotate bool
	// FontSize in pt (default 12).
	FontSize float64
	// Color is the text color (default black).
	Color color.NRGBA
}

// Options configures the composite [Graph] entry point. Node and edge
// styling carry separate prefixed fields, mirroring the per-pass options.
type Options struct {
	// Nodes and Edges restrict the respective passes; nil draws all.
	Nodes []string
	Edges []graph.Ref

	NodeColor style.Spec
	NodeSize  []float64 // pt² per node (default 300)
	EdgeColor style.Spec
	Width     []float64 // pt per edge (default 1)
	Alpha     []float64 // node fill opacity

	Cmap               style.Colormap // node colormap
	Vmin, Vmax         float64
	EdgeCmap           style.Colormap // edge colormap
	EdgeVmin, EdgeVmax float64

	Arrows    *bool
	ArrowSize float64

	// WithLabels adds node labels after nodes and edges are drawn.
	WithLabels bool
	// FontSize in pt for node labels (default 12).
	FontSize float64
}

func (o Options) nodeOptions() NodeOptions {
	return NodeOptions{
		Nodes: o.Nodes,
		Color: o.NodeColor,
		Size:  o.NodeSize,
		Alpha: o.Alpha,
		Cmap:  o.Cmap,
		Vmin:  o.Vmin,
		Vmax:  o.Vmax,
	}
}

func (o Options) edgeOptions() EdgeOptions {
	return EdgeOptions{
		Edges:     o.Edges,
		Width:     o.Width,
		Color:     o.EdgeColor,
		Cmap:      o.EdgeCmap,
		Vmin:      o.EdgeVmin,
		Vmax:      o.EdgeVmax,
		Arrows:    o.Arrows,
		ArrowSize: o.ArrowSize,
	}
}

func (o Options) labelOptions() LabelOptions {
	return LabelOptions{FontSize: o.FontSize}
}
