package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
)

// graphJSON is the canonical serialization format for graphs.
// The format is human-readable and designed for round-trip fidelity:
// write → read produces an equivalent graph.
type graphJSON struct {
	Directed bool       `json:"directed,omitempty"`
	Multi    bool       `json:"multigraph,omitempty"`
	Nodes    []nodeJSON `json:"nodes"`
	Edges    []edgeJSON `json:"edges"`
}

type nodeJSON struct {
	ID   string         `json:"id"`
	Meta map[string]any `json:"meta,omitempty"`
}

type edgeJSON struct {
	From string         `json:"from"`
	To   string         `json:"to"`
	Key  int            `json:"key,omitempty"`
	Meta map[string]any `json:"meta,omitempty"`
}

// Marshal converts a graph to indented JSON bytes.
// Nodes are sorted by ID for deterministic output.
func Marshal(g *Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write writes a graph as JSON to an io.Writer.
// Use Marshal for in-memory serialization or WriteFile for files.
func Write(g *Graph, w io.Writer) error {
	out := graphJSON{
		Directed: g.directed,
		Multi:    g.multi,
		Nodes:    make([]nodeJSON, 0, g.NodeCount()),
		Edges:    make([]edgeJSON, 0, g.EdgeCount()),
	}
	ids := g.Nodes()
	slices.Sort(ids)
	for _, id := range ids {
		n := g.nodes[id]
		meta := n.Meta
		if len(meta) == 0 {
			meta = nil
		}
		out.Nodes = append(out.Nodes, nodeJSON{ID: n.ID, Meta: meta})
	}
	for _, e := range g.edges {
		meta := e.Meta
		if len(meta) == 0 {
			meta = nil
		}
		out.Edges = append(out.Edges, edgeJSON{From: e.From, To: e.To, Key: e.Key, Meta: meta})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteFile writes a graph to a JSON file.
// The file is created with 0644 permissions.
func WriteFile(g *Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(g, f)
}

// Read decodes a JSON graph from an io.Reader.
func Read(r io.Reader) (*Graph, error) {
	var data graphJSON
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	g := newGraph(data.Directed, data.Multi)
	for _, nj := range data.Nodes {
		if err := g.AddNode(Node{ID: nj.ID, Meta: nj.Meta}); err != nil {
			return nil, fmt.Errorf("add node %s: %w", nj.ID, err)
		}
	}
	for _, ej := range data.Edges {
		if _, err := g.AddEdge(Edge{From: ej.From, To: ej.To, Meta: ej.Meta}); err != nil {
			return nil, fmt.Errorf("add edge %s→%s: %w", ej.From, ej.To, err)
		}
	}
	return g, nil
}

// ReadFile reads a JSON file and returns the decoded graph.
func ReadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// Unmarshal deserializes JSON bytes to a graph.
func Unmarshal(data []byte) (*Graph, error) {
	return Read(bytes.NewReader(data))
}
