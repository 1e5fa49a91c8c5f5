// Package draw rasterizes graphs onto figures. A [Figure] holds one or
// more [Axes]; each drawing pass ([Nodes], [Edges], [Labels],
// [EdgeLabels]) paints onto an axes using positions from package layout
// and styling resolved by package style. [Graph] combines the passes with
// sensible defaults, and the Draw* helpers pair it with a layout on a
// fresh figure.
package draw
