package styles

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

// Palette for the simple style.
const (
	simpleLineColor  = "#1a1a1a"
	simpleRungColor  = "#1f77b4"
	simpleTraceColor = "#d62728"
	simpleTickColor  = "#888888"
)

// Simple renders clean solid strokes with a sans-serif font.
// It is the default style and the closest match to the classic
// matplotlib-drawn ladder: black verticals, blue rungs.
type Simple struct{}

func (Simple) RenderDefs(buf *bytes.Buffer) {}

func (Simple) RenderLine(buf *bytes.Buffer, ln Line) {
	fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="2"/>`+"\n",
		ln.X, ln.Y1, ln.X, ln.Y2, simpleLineColor)
}

func (Simple) RenderRung(buf *bytes.Buffer, r Rung) {
	fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="3" stroke-linecap="round"/>`+"\n",
		r.X1, r.Y, r.X2, r.Y, simpleRungColor)
}

func (Simple) RenderLabel(buf *bytes.Buffer, lb Label) {
	size, fill := 14, simpleLineColor
	if lb.Tick {
		size, fill = 11, simpleTickColor
	}
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-family="Helvetica, Arial, sans-serif" font-size="%d" fill="%s">%s</text>`+"\n",
		lb.X, lb.Y, size, fill, escapeText(lb.Text))
}

func (Simple) RenderTrace(buf *bytes.Buffer, tr Trace) {
	fmt.Fprintf(buf, `  <polyline points="%s" fill="none" stroke="%s" stroke-width="4" stroke-opacity="0.65" stroke-linejoin="round" stroke-linecap="round"/>`+"\n",
		polylinePoints(tr), simpleTraceColor)
}

// polylinePoints formats trace vertices as an SVG points attribute.
func polylinePoints(tr Trace) string {
	var b bytes.Buffer
	for i := range tr.Xs {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%.1f,%.1f", tr.Xs[i], tr.Ys[i])
	}
	return b.String()
}

// escapeText escapes a label for safe embedding in SVG text elements.
func escapeText(s string) string {
	var b bytes.Buffer
	xml.EscapeText(&b, []byte(s))
	return b.String()
}
