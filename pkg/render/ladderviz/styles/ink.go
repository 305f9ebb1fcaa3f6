package styles

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"math"
)

// Palette for the ink style.
const (
	inkLineColor  = "#2b2b2b"
	inkRungColor  = "#27597f"
	inkTraceColor = "#a03030"
	inkTickColor  = "#7a7a7a"
)

// Ink renders a hand-sketched look: strokes are drawn as quadratic bezier
// paths with small deterministic wobbles, as if ruled by hand. The wobble is
// derived from the seed and each stroke's coordinates, so the same diagram
// always renders identically.
type Ink struct {
	seed int64
}

// NewInk creates an Ink style with the given wobble seed.
func NewInk(seed int64) Ink {
	return Ink{seed: seed}
}

func (Ink) RenderDefs(buf *bytes.Buffer) {}

func (s Ink) RenderLine(buf *bytes.Buffer, ln Line) {
	path := s.wobbledStroke(ln.X, ln.Y1, ln.X, ln.Y2, fmt.Sprintf("line-%d", ln.Index))
	fmt.Fprintf(buf, `  <path d="%s" fill="none" stroke="%s" stroke-width="2.2" stroke-linecap="round"/>`+"\n",
		path, inkLineColor)
}

func (s Ink) RenderRung(buf *bytes.Buffer, r Rung) {
	path := s.wobbledStroke(r.X1, r.Y, r.X2, r.Y, fmt.Sprintf("rung-%d-%d", r.Level, r.Gap))
	fmt.Fprintf(buf, `  <path d="%s" fill="none" stroke="%s" stroke-width="3.2" stroke-linecap="round"/>`+"\n",
		path, inkRungColor)
}

func (s Ink) RenderLabel(buf *bytes.Buffer, lb Label) {
	size, fill := 15, inkLineColor
	if lb.Tick {
		size, fill = 12, inkTickColor
	}
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-family="Comic Sans MS, Chalkboard, cursive" font-size="%d" fill="%s">%s</text>`+"\n",
		lb.X, lb.Y, size, fill, escapeText(lb.Text))
}

func (s Ink) RenderTrace(buf *bytes.Buffer, tr Trace) {
	fmt.Fprintf(buf, `  <polyline points="%s" fill="none" stroke="%s" stroke-width="4.5" stroke-opacity="0.55" stroke-linejoin="round" stroke-linecap="round"/>`+"\n",
		polylinePoints(tr), inkTraceColor)
}

// wobbleAmp is the maximum perpendicular displacement of a stroke midpoint.
const wobbleAmp = 2.5

// wobbledStroke builds an SVG path from (x1,y1) to (x2,y2) as two quadratic
// segments whose control points are nudged off the straight line. The nudge
// is a pure function of the seed, the stroke id, and the endpoints.
func (s Ink) wobbledStroke(x1, y1, x2, y2 float64, id string) string {
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length == 0 {
		return fmt.Sprintf("M%.1f,%.1f", x1, y1)
	}

	// Unit normal to the stroke direction.
	nx, ny := -dy/length, dx/length

	w1 := s.wobble(id, 0)
	w2 := s.wobble(id, 1)

	qx1 := x1 + dx*0.25 + nx*w1
	qy1 := y1 + dy*0.25 + ny*w1
	mx := x1 + dx*0.5
	my := y1 + dy*0.5
	qx2 := x1 + dx*0.75 + nx*w2
	qy2 := y1 + dy*0.75 + ny*w2

	return fmt.Sprintf("M%.1f,%.1f Q%.1f,%.1f %.1f,%.1f Q%.1f,%.1f %.1f,%.1f",
		x1, y1, qx1, qy1, mx, my, qx2, qy2, x2, y2)
}

// wobble hashes the seed, stroke id, and segment index into [-wobbleAmp, wobbleAmp].
func (s Ink) wobble(id string, segment int) float64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d:%s:%d", s.seed, id, segment)
	v := h.Sum64()
	return (float64(v%1000)/999*2 - 1) * wobbleAmp
}
