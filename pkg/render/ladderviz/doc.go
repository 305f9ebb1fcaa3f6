// Package ladderviz renders ladder lotteries as diagrams.
//
// # Overview
//
// A ladder diagram shows one vertical line per player, horizontal rungs at
// each level, player names above the lines, and slot numbers below. Reading
// top to bottom follows time progression: a token entering at a player's
// line jogs sideways at every rung it meets and exits at its outcome slot.
//
// The pipeline has three stages, one subpackage each:
//
//	ladder.Layout → layout.Build → layout.Diagram → sink.RenderSVG → bytes
//
//   - [layout]: pure geometry (line/rung/label coordinates, path tracing)
//   - [styles]: visual styles (simple, ink) drawing individual primitives
//   - [sink]: output formats (SVG, JSON, PDF, PNG)
//
// # Usage
//
//	l, _ := ladder.Generate(cfg, ladder.SeededSource(42))
//	d := layout.Build(l, names)
//	svg := sink.RenderSVG(d, sink.WithStyle(styles.NewInk(42)), sink.WithTrace(0))
//
// [layout]: github.com/yosukei/amida/pkg/render/ladderviz/layout
// [styles]: github.com/yosukei/amida/pkg/render/ladderviz/styles
// [sink]: github.com/yosukei/amida/pkg/render/ladderviz/sink
package ladderviz
