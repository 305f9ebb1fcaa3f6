// Package render provides diagram rendering for ladder lotteries.
//
// # Overview
//
// This package contains the rendering pipeline that transforms generated
// ladders into visual outputs. It provides:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Ladder diagrams (in [ladderviz] subpackage)
//   - Mapping graphs (in [nodelink] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). These are used by both
// ladder and node-link renderers.
//
//	svg := sink.RenderSVG(diagram, opts...)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Ladder Diagrams
//
// The [ladderviz] subpackage renders the ladder itself: vertical player
// lines, horizontal rungs at each level, and name labels, read top to
// bottom as time progression.
//
// Key ladderviz subpackages:
//   - [ladderviz/layout]: Line/rung coordinate computation
//   - [ladderviz/sink]: Output formats (SVG, JSON, PDF, PNG)
//   - [ladderviz/styles]: Visual styles (simple, ink)
//
// # Mapping Graphs
//
// The [nodelink] subpackage renders the resulting player→outcome assignment
// as a bipartite directed graph using Graphviz.
//
//	dot := nodelink.ToDOT(perm, players, outcomes, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//	pdf, err := render.ToPDF(svg)
//
// [ladderviz]: github.com/yosukei/amida/pkg/render/ladderviz
// [ladderviz/layout]: github.com/yosukei/amida/pkg/render/ladderviz/layout
// [ladderviz/sink]: github.com/yosukei/amida/pkg/render/ladderviz/sink
// [ladderviz/styles]: github.com/yosukei/amida/pkg/render/ladderviz/styles
// [nodelink]: github.com/yosukei/amida/pkg/render/nodelink
package render
