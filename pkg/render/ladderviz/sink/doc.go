// Package sink provides output format renderers for ladder diagrams.
//
// # Overview
//
// A "sink" transforms a computed [layout.Diagram] into a final output
// format. This package provides renderers for:
//
//   - SVG: Scalable vector graphics (the native format)
//   - JSON: Diagram and mapping data export for external tools
//   - PDF: Print-ready output (requires rsvg-convert)
//   - PNG: Raster image output (requires rsvg-convert)
//
// # SVG Output
//
// [RenderSVG] produces a standalone SVG document:
//
//	svg := sink.RenderSVG(diagram,
//	    sink.WithStyle(styles.NewInk(seed)),
//	    sink.WithTrace(2),  // highlight player 2's path
//	)
//
// # PDF and PNG Output
//
// [RenderPDF] and [RenderPNG] render the diagram by first generating SVG,
// then converting via [render.ToPDF] and [render.ToPNG]. These require
// librsvg to be installed:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// [render.ToPDF]: github.com/yosukei/amida/pkg/render.ToPDF
// [render.ToPNG]: github.com/yosukei/amida/pkg/render.ToPNG
// [layout.Diagram]: github.com/yosukei/amida/pkg/render/ladderviz/layout.Diagram
package sink
