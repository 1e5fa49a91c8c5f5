package graph

import (
	"errors"
	"testing"
)

func TestAddNode(t *testing.T) {
	tests := []struct {
		name    string
		node    Node
		wantErr error
	}{
		{"valid", Node{ID: "a"}, nil},
		{"empty ID", Node{}, ErrInvalidNodeID},
		{"with metadata", Node{ID: "b", Meta: Metadata{"weight": 2}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			err := g.AddNode(tt.node)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("AddNode: err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil {
				n, ok := g.Node(tt.node.ID)
				if !ok {
					t.Fatalf("node %q not found after AddNode", tt.node.ID)
				}
				if n.Meta == nil {
					t.Error("Meta not initialized")
				}
			}
		})
	}
}

func TestAddNodeMergesMetadata(t *testing.T) {
	g := New()
	g.AddNode(Node{ID: "a", Meta: Metadata{"x": 1}})
	g.AddNode(Node{ID: "a", Meta: Metadata{"y": 2}})

	if g.NodeCount() != 1 {
		t.Fatalf("NodeCount = %d, want 1", g.NodeCount())
	}
	n, _ := g.Node("a")
	if n.Meta["x"] != 1 || n.Meta["y"] != 2 {
		t.Errorf("Meta = %v, want both x and y preserved", n.Meta)
	}
}

func TestAddEdge(t *testing.T) {
	t.Run("creates missing endpoints", func(t *testing.T) {
		g := New()
		if _, err := g.AddEdge(Edge{From: "a", To: "b"}); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
		if g.NodeCount() != 2 {
			t.Errorf("NodeCount = %d, want 2", g.NodeCount())
		}
	})

	t.Run("duplicate rejected on simple graph", func(t *testing.T) {
		g := New()
		g.AddEdge(Edge{From: "a", To: "b"})
		if _, err := g.AddEdge(Edge{From: "b", To: "a"}); !errors.Is(err, ErrDuplicateEdge) {
			t.Errorf("err = %v, want ErrDuplicateEdge", err)
		}
	})

	t.Run("reverse edge allowed when directed", func(t *testing.T) {
		g := NewDirected()
		g.AddEdge(Edge{From: "a", To: "b"})
		if _, err := g.AddEdge(Edge{From: "b", To: "a"}); err != nil {
			t.Errorf("AddEdge reverse: %v", err)
		}
	})

	t.Run("parallel edges keyed on multigraph", func(t *testing.T) {
		g := NewMultiDigraph()
		e0, _ := g.AddEdge(Edge{From: "a", To: "b"})
		e1, _ := g.AddEdge(Edge{From: "a", To: "b"})
		if e0.Key != 0 || e1.Key != 1 {
			t.Errorf("keys = %d, %d, want 0, 1", e0.Key, e1.Key)
		}
	})
}

func TestEdgeLookup(t *testing.T) {
	g := New()
	g.AddEdge(Edge{From: "a", To: "b"})

	if _, err := g.Edge(E("a", "b")); err != nil {
		t.Errorf("Edge(a,b): %v", err)
	}
	// undirected lookup ignores orientation
	if _, err := g.Edge(E("b", "a")); err != nil {
		t.Errorf("Edge(b,a): %v", err)
	}
	if _, err := g.Edge(E("a", "c")); !errors.Is(err, ErrUnknownEdge) {
		t.Errorf("err = %v, want ErrUnknownEdge", err)
	}

	d := NewDirected()
	d.AddEdge(Edge{From: "a", To: "b"})
	if _, err := d.Edge(E("b", "a")); !errors.Is(err, ErrUnknownEdge) {
		t.Errorf("directed reverse lookup: err = %v, want ErrUnknownEdge", err)
	}
}

func TestNodeOrderIsInsertionOrder(t *testing.T) {
	g := New()
	for _, id := range []string{"c", "a", "b"} {
		g.AddNode(Node{ID: id})
	}
	got := g.Nodes()
	want := []string{"c", "a", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Nodes() = %v, want %v", got, want)
		}
	}
}

func TestToDirected(t *testing.T) {
	g := New()
	g.AddEdge(Edge{From: "a", To: "b"})
	g.AddEdge(Edge{From: "b", To: "c"})

	d := g.ToDirected()
	if !d.IsDirected() {
		t.Fatal("ToDirected returned undirected graph")
	}
	if d.EdgeCount() != 4 {
		t.Errorf("EdgeCount = %d, want 4 (reciprocal pairs)", d.EdgeCount())
	}
	if _, err := d.Edge(E("b", "a")); err != nil {
		t.Errorf("missing reciprocal edge b→a: %v", err)
	}
}

func TestToUndirected(t *testing.T) {
	d := NewDirected()
	d.AddEdge(Edge{From: "a", To: "b"})
	d.AddEdge(Edge{From: "b", To: "a"})

	g := d.ToUndirected()
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount = %d, want 1 (reciprocal pair collapsed)", g.EdgeCount())
	}
}

func TestNeighborsAndDegree(t *testing.T) {
	g := New()
	g.AddEdge(Edge{From: "a", To: "b"})
	g.AddEdge(Edge{From: "a", To: "c"})

	if got := g.Degree("a"); got != 2 {
		t.Errorf("Degree(a) = %d, want 2", got)
	}
	if got := g.Degree("b"); got != 1 {
		t.Errorf("Degree(b) = %d, want 1", got)
	}

	d := NewDirected()
	d.AddEdge(Edge{From: "a", To: "b"})
	if got := d.Degree("b"); got != 0 {
		t.Errorf("directed Degree(b) = %d, want 0 (out-degree only)", got)
	}
}
