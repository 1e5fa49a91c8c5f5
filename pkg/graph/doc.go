// Package graph provides the graph container and generators used by the
// drawing layer.
//
// Graphs are node-and-edge containers with string node IDs and arbitrary
// metadata on nodes and edges. Three variants exist behind one type:
// undirected ([New]), directed ([NewDirected]), and directed with parallel
// edges ([NewMultiDigraph]). Iteration order is insertion order everywhere,
// which keeps layout and rendering output deterministic.
//
// # Generators
//
// Small deterministic graphs for tests and demos:
//
//	g := graph.Barbell(4, 6)   // two K4 bells joined by a 6-node path
//	g := graph.Cubical()       // the 3-cube, 8 nodes / 12 edges
//	g := graph.Path(3)         // 0-1-2
//	g := graph.Gnp(20, 0.2, 42) // seeded random graph
//
// # Serialization
//
// Graphs use a simple node-link JSON format:
//
//	{
//	  "nodes": [{"id": "0"}, {"id": "1"}],
//	  "edges": [{"from": "0", "to": "1"}]
//	}
//
// Common operations:
//
//	g, _ := graph.ReadFile("graph.json")  // File → Graph
//	graph.WriteFile(g, "out.json")        // Graph → File
//	data, _ := graph.Marshal(g)           // Graph → []byte
package graph
