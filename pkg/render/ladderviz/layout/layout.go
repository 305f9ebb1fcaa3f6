// Package layout computes diagram geometry for ladder visualizations.
//
// Build maps a [ladder.Layout] onto a pixel frame: one vertical line per
// player, one horizontal rung segment per placed rung, name labels above
// the line tops and slot ticks below the bottoms. The y axis grows
// downward, so the diagram reads top to bottom as time progression.
//
// The package is pure geometry. It draws nothing; the sink package turns a
// [Diagram] into SVG and other formats.
package layout

import (
	"strconv"

	"github.com/yosukei/amida/pkg/ladder"
)

// Frame defaults, in pixels.
const (
	DefaultWidth  = 640.0
	DefaultHeight = 480.0

	marginX      = 60.0 // left/right padding around the outer lines
	marginTop    = 48.0 // room for player name labels
	marginBottom = 36.0 // room for bottom slot ticks
)

// Line is one player's vertical line.
type Line struct {
	Index  int     `json:"index"` // player (top slot) index
	X      float64 `json:"x"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// Rung is one horizontal connector between adjacent lines.
type Rung struct {
	Level int     `json:"level"` // 0-based level, top to bottom
	Gap   int     `json:"gap"`   // connects lines Gap and Gap+1
	X1    float64 `json:"x1"`
	X2    float64 `json:"x2"`
	Y     float64 `json:"y"`
}

// Label is a positioned text element.
type Label struct {
	Text string  `json:"text"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// Point is a vertex on a traced path.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Diagram is the computed geometry for one ladder, ready for a sink.
type Diagram struct {
	FrameWidth  float64 `json:"frame_width"`
	FrameHeight float64 `json:"frame_height"`
	Lines       []Line  `json:"lines"`
	Rungs       []Rung  `json:"rungs"`
	TopLabels   []Label `json:"top_labels"`    // player names above each line
	BottomTicks []Label `json:"bottom_ticks"`  // 1-based slot numbers below each line
	rowHeight   float64 // cached for Trace
	source      ladder.Layout
}

// Option configures Build.
type Option func(*builder)

type builder struct {
	width, height float64
}

// WithFrameSize overrides the default frame dimensions.
func WithFrameSize(width, height float64) Option {
	return func(b *builder) {
		b.width = width
		b.height = height
	}
}

// Build computes diagram geometry for a ladder layout and its player names.
// playerNames must have one entry per player; normalize raw input with
// [ladder.NormalizeNames] first.
//
// Lines are spaced evenly across the frame interior. A rung at gap i of
// level c spans lines i..i+1 at y = top + (c+0.5)*rowHeight, the halfway
// mark of its level, mirroring the pencil-and-paper drawing.
func Build(l ladder.Layout, playerNames []string, opts ...Option) Diagram {
	b := builder{width: DefaultWidth, height: DefaultHeight}
	for _, opt := range opts {
		opt(&b)
	}

	players := l.Players()
	levels := l.Levels()

	top := marginTop
	bottom := b.height - marginBottom
	spacing := 0.0
	if players > 1 {
		spacing = (b.width - 2*marginX) / float64(players-1)
	}
	rowHeight := 0.0
	if levels > 0 {
		rowHeight = (bottom - top) / float64(levels)
	}

	d := Diagram{
		FrameWidth:  b.width,
		FrameHeight: b.height,
		Lines:       make([]Line, 0, players),
		TopLabels:   make([]Label, 0, players),
		BottomTicks: make([]Label, 0, players),
		rowHeight:   rowHeight,
		source:      l,
	}

	for i := 0; i < players; i++ {
		x := marginX + float64(i)*spacing
		d.Lines = append(d.Lines, Line{Index: i, X: x, Top: top, Bottom: bottom})
		name := ""
		if i < len(playerNames) {
			name = playerNames[i]
		}
		d.TopLabels = append(d.TopLabels, Label{Text: name, X: x, Y: top - 14})
		// 1-based to match how players count slots on paper.
		d.BottomTicks = append(d.BottomTicks, Label{Text: strconv.Itoa(i + 1), X: x, Y: bottom + 22})
	}

	for c, level := range l.Rungs {
		y := top + (float64(c)+0.5)*rowHeight
		for i, rung := range level {
			if !rung {
				continue
			}
			d.Rungs = append(d.Rungs, Rung{
				Level: c,
				Gap:   i,
				X1:    marginX + float64(i)*spacing,
				X2:    marginX + float64(i+1)*spacing,
				Y:     y,
			})
		}
	}
	return d
}

// Trace returns the polyline a token starting at top index start travels:
// straight down each level, jogging sideways at every rung it crosses.
// The returned points run from the line top to the line bottom and can be
// drawn by a sink as a highlighted path.
//
// Trace returns nil if start is out of range.
func (d Diagram) Trace(start int) []Point {
	players := d.source.Players()
	if start < 0 || start >= players || len(d.Lines) != players {
		return nil
	}

	pos := start
	pts := []Point{{X: d.Lines[pos].X, Y: d.Lines[pos].Top}}

	for c, level := range d.source.Rungs {
		y := d.Lines[pos].Top + (float64(c)+0.5)*d.rowHeight
		switch {
		case pos < len(level) && level[pos]:
			pts = append(pts,
				Point{X: d.Lines[pos].X, Y: y},
				Point{X: d.Lines[pos+1].X, Y: y})
			pos++
		case pos > 0 && level[pos-1]:
			pts = append(pts,
				Point{X: d.Lines[pos].X, Y: y},
				Point{X: d.Lines[pos-1].X, Y: y})
			pos--
		}
	}

	pts = append(pts, Point{X: d.Lines[pos].X, Y: d.Lines[pos].Bottom})
	return pts
}
