// Package styles defines the visual styles for ladder diagram rendering.
//
// A [Style] turns positioned primitives (lines, rungs, labels, traces) into
// SVG fragments. Two styles ship with amida: [Simple], clean strokes for
// screens and printing, and [Ink], a hand-sketched look with deterministic
// jitter. Sinks pick a style via their options; Simple is the default.
package styles

import "bytes"

// Style defines the visual appearance for ladder rendering.
// Implementations control how lines, rungs, labels, and traced paths are drawn.
type Style interface {
	// RenderDefs writes SVG <defs> content (filters, patterns, gradients).
	RenderDefs(buf *bytes.Buffer)
	// RenderLine writes the SVG for one vertical player line.
	RenderLine(buf *bytes.Buffer, ln Line)
	// RenderRung writes the SVG for one horizontal rung.
	RenderRung(buf *bytes.Buffer, r Rung)
	// RenderLabel writes the SVG for a name label or slot tick.
	RenderLabel(buf *bytes.Buffer, lb Label)
	// RenderTrace writes the SVG for a highlighted player path.
	RenderTrace(buf *bytes.Buffer, tr Trace)
}

// Line contains positioning data for one vertical player line.
type Line struct {
	Index  int     // player index, usable for per-line styling
	X      float64 // horizontal position
	Y1, Y2 float64 // top and bottom extents
}

// Rung contains positioning data for one horizontal rung.
type Rung struct {
	Level  int     // 0-based level index
	Gap    int     // gap index (connects lines Gap and Gap+1)
	X1, X2 float64 // endpoints on the adjacent lines
	Y      float64 // vertical position (midway through the level)
}

// Label contains a positioned text element.
type Label struct {
	Text string
	X, Y float64
	Tick bool // true for bottom slot ticks (smaller, dimmer)
}

// Trace contains the polyline of one player's traced path.
type Trace struct {
	Player int // top index of the traced player
	Xs, Ys []float64
}
