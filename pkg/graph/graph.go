package graph

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] when the node ID is
	// empty. All nodes must have non-empty identifiers.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrUnknownNode is returned by operations that reference a node ID
	// not present in the graph.
	ErrUnknownNode = errors.New("unknown node")

	// ErrDuplicateEdge is returned by [Graph.AddEdge] on a simple graph
	// when an edge between the same pair of nodes already exists.
	ErrDuplicateEdge = errors.New("duplicate edge")

	// ErrUnknownEdge is returned when an edge reference does not match
	// any edge in the graph.
	ErrUnknownEdge = errors.New("unknown edge")
)

// Metadata stores arbitrary key-value pairs attached to nodes or edges.
// It is commonly used to carry display labels, weights, or rendering hints.
// Metadata maps are never nil after a node or edge has been added.
type Metadata map[string]any

// Node represents a vertex. The zero value is not usable - ID must be set
// before adding to a Graph.
type Node struct {
	ID   string   // Unique identifier (also used as default display label)
	Meta Metadata // Arbitrary key-value metadata (never nil after AddNode)
}

// Edge represents a connection between two nodes. In undirected graphs the
// (From, To) orientation records insertion order but carries no direction.
// Key disambiguates parallel edges in multigraphs; it is always 0 in simple
// graphs.
type Edge struct {
	From string
	To   string
	Key  int
	Meta Metadata
}

// Ref identifies an edge by endpoints and key. It is the form drawing
// functions accept for edge subsets. For simple graphs the Key is 0.
type Ref struct {
	From string
	To   string
	Key  int
}

// E builds a Ref with key 0, the common case for simple graphs.
func E(from, to string) Ref { return Ref{From: from, To: to} }

// Graph is a node-and-edge container supporting undirected, directed, and
// multi-edge directed variants. Iteration order over nodes and edges is
// insertion order, which keeps layouts and rendering deterministic.
//
// The zero value is not usable - use New, NewDirected, or NewMultiDigraph.
// Graph is not safe for concurrent use without external synchronization.
type Graph struct {
	directed bool
	multi    bool

	order []string         // node IDs in insertion order
	nodes map[string]*Node // id -> node
	edges []*Edge          // insertion order
	adj   map[string][]string
	keys  map[[2]string]int // next parallel-edge key per endpoint pair
}

// New creates an empty undirected graph.
func New() *Graph { return newGraph(false, false) }

// NewDirected creates an empty directed graph.
func NewDirected() *Graph { return newGraph(true, false) }

// NewMultiDigraph creates an empty directed graph allowing parallel edges.
func NewMultiDigraph() *Graph { return newGraph(true, true) }

func newGraph(directed, multi bool) *Graph {
	return &Graph{
		directed: directed,
		multi:    multi,
		nodes:    make(map[string]*Node),
		adj:      make(map[string][]string),
		keys:     make(map[[2]string]int),
	}
}

// IsDirected reports whether edges carry direction.
func (g *Graph) IsDirected() bool { return g.directed }

// IsMultigraph reports whether parallel edges are allowed.
func (g *Graph) IsMultigraph() bool { return g.multi }

// AddNode adds a node. Adding an existing ID is a no-op that merges metadata,
// matching the usual graph-library convention so generators can be layered.
// Returns ErrInvalidNodeID for an empty ID.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if existing, ok := g.nodes[n.ID]; ok {
		for k, v := range n.Meta {
			existing.Meta[k] = v
		}
		return nil
	}
	if n.Meta == nil {
		n.Meta = Metadata{}
	}
	node := &n
	g.nodes[node.ID] = node
	g.order = append(g.order, node.ID)
	return nil
}

// AddEdge adds an edge, creating missing endpoint nodes automatically.
// On simple graphs a second edge between the same endpoints returns
// ErrDuplicateEdge (for undirected graphs the check ignores orientation).
// On multigraphs the stored edge receives the next free key for the pair,
// and the returned pointer exposes it.
func (g *Graph) AddEdge(e Edge) (*Edge, error) {
	if e.From == "" || e.To == "" {
		return nil, ErrInvalidNodeID
	}
	for _, id := range []string{e.From, e.To} {
		if err := g.AddNode(Node{ID: id}); err != nil {
			return nil, err
		}
	}
	if !g.multi && g.hasEdge(e.From, e.To) {
		return nil, ErrDuplicateEdge
	}
	if e.Meta == nil {
		e.Meta = Metadata{}
	}
	if g.multi {
		pair := [2]string{e.From, e.To}
		e.Key = g.keys[pair]
		g.keys[pair]++
	} else {
		e.Key = 0
	}
	edge := &e
	g.edges = append(g.edges, edge)
	g.adj[e.From] = append(g.adj[e.From], e.To)
	if !g.directed && e.From != e.To {
		g.adj[e.To] = append(g.adj[e.To], e.From)
	}
	return edge, nil
}

func (g *Graph) hasEdge(from, to string) bool {
	for _, e := range g.edges {
		if e.From == from && e.To == to {
			return true
		}
		if !g.directed && e.From == to && e.To == from {
			return true
		}
	}
	return false
}

// HasEdge reports whether an edge exists between from and to.
// For undirected graphs orientation is ignored.
func (g *Graph) HasEdge(from, to string) bool { return g.hasEdge(from, to) }

// Node returns the node with the given ID and true, or nil and false.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns all node IDs in insertion order.
func (g *Graph) Nodes() []string { return slices.Clone(g.order) }

// Edges returns all edges in insertion order. The returned slice contains
// pointers to the actual edge structs, so metadata changes affect the graph.
func (g *Graph) Edges() []*Edge { return slices.Clone(g.edges) }

// Edge resolves an edge reference. For undirected graphs the reference may
// name the endpoints in either order. Returns ErrUnknownEdge if no edge
// matches.
func (g *Graph) Edge(r Ref) (*Edge, error) {
	for _, e := range g.edges {
		if e.From == r.From && e.To == r.To && e.Key == r.Key {
			return e, nil
		}
		if !g.directed && e.From == r.To && e.To == r.From && e.Key == r.Key {
			return e, nil
		}
	}
	return nil, fmt.Errorf("%w: %s-%s/%d", ErrUnknownEdge, r.From, r.To, r.Key)
}

// Neighbors returns the IDs adjacent to the node. For directed graphs these
// are the successors only. The returned slice is a read-only view.
func (g *Graph) Neighbors(id string) []string { return g.adj[id] }

// Degree returns the number of edges incident to the node
// (out-degree for directed graphs).
func (g *Graph) Degree(id string) int { return len(g.adj[id]) }

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// ToDirected returns a directed copy. Each undirected edge becomes a pair of
// reciprocal directed edges; already-directed graphs are copied as-is.
func (g *Graph) ToDirected() *Graph {
	out := newGraph(true, g.multi)
	for _, id := range g.order {
		n := g.nodes[id]
		out.AddNode(Node{ID: n.ID, Meta: copyMeta(n.Meta)})
	}
	for _, e := range g.edges {
		out.AddEdge(Edge{From: e.From, To: e.To, Meta: copyMeta(e.Meta)})
		if !g.directed && e.From != e.To {
			out.AddEdge(Edge{From: e.To, To: e.From, Meta: copyMeta(e.Meta)})
		}
	}
	return out
}

// ToUndirected returns an undirected copy. Reciprocal directed edge pairs
// and parallel edges collapse to a single undirected edge.
func (g *Graph) ToUndirected() *Graph {
	out := newGraph(false, false)
	for _, id := range g.order {
		n := g.nodes[id]
		out.AddNode(Node{ID: n.ID, Meta: copyMeta(n.Meta)})
	}
	for _, e := range g.edges {
		if out.hasEdge(e.From, e.To) {
			continue
		}
		out.AddEdge(Edge{From: e.From, To: e.To, Meta: copyMeta(e.Meta)})
	}
	return out
}

// copyMeta creates a shallow copy of metadata to avoid cross-graph mutation.
func copyMeta(m Metadata) Metadata {
	if m == nil {
		return nil
	}
	out := make(Metadata, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
