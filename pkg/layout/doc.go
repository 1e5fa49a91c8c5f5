// Package layout computes 2D node positions for graph drawings.
//
// All layout functions take a [graph.Graph] and return [Positions], a map
// from node ID to [Point]. Coordinates are rescaled to the [-1,1] square
// centered on the origin, except [Random] (unit square, matching the usual
// convention for random placements).
//
// Randomized layouts ([Random], [Spring]) take an explicit seed and are
// fully deterministic for a given seed and graph, so rendered output can be
// compared pixel-for-pixel across runs.
//
// Available layouts:
//
//   - [Circular]: evenly spaced on a circle
//   - [Shell]: concentric circles from an explicit shell list
//   - [Random]: uniform in the unit square
//   - [Spring]: Fruchterman-Reingold force simulation
//   - [KamadaKawai]: stress minimization over shortest-path distances
//   - [Spectral]: Laplacian eigenvector coordinates
//   - [Planar]: Tutte barycentric embedding, crossing-free for suitable
//     planar graphs
package layout
