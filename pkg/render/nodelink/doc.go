// Package nodelink renders ladder results as player→outcome graphs.
//
// # Overview
//
// This package produces a bipartite directed graph of the final assignment
// using Graphviz: one node per player on the top rank, one per outcome on
// the bottom rank, and an arrow from each player to the outcome their path
// reaches. It's an alternative to the ladder diagram for cases where only
// the result matters.
//
// # Usage
//
// Convert a permutation to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(perm, players, outcomes, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := nodelink.RenderPDF(dot)
//	png, err := nodelink.RenderPNG(dot, 2.0)  // 2x scale
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG]
//   - Saved and processed with external Graphviz tools
//   - Customized before rendering
//
// The generated DOT uses top-to-bottom layout (rankdir=TB) with the player
// and outcome nodes pinned to their own ranks, matching the ladder
// diagram's vertical orientation.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
