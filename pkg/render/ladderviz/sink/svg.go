package sink

import (
	"bytes"
	"fmt"

	"github.com/yosukei/amida/pkg/render/ladderviz/layout"
	"github.com/yosukei/amida/pkg/render/ladderviz/styles"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style styles.Style
	trace int // player index to highlight, -1 for none
}

// WithStyle sets the visual style. Default is [styles.Simple].
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithTrace highlights the path of the given player (top index) through the
// ladder. Out-of-range indices are ignored.
func WithTrace(player int) SVGOption { return func(r *svgRenderer) { r.trace = player } }

// RenderSVG renders the diagram as a standalone SVG document.
//
// Draw order is lines, then rungs, then the optional trace, then labels, so
// text always stays legible on top of strokes.
func RenderSVG(d layout.Diagram, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		d.FrameWidth, d.FrameHeight, d.FrameWidth, d.FrameHeight)

	r.style.RenderDefs(&buf)

	for _, ln := range d.Lines {
		r.style.RenderLine(&buf, styles.Line{Index: ln.Index, X: ln.X, Y1: ln.Top, Y2: ln.Bottom})
	}
	for _, rg := range d.Rungs {
		r.style.RenderRung(&buf, styles.Rung{Level: rg.Level, Gap: rg.Gap, X1: rg.X1, X2: rg.X2, Y: rg.Y})
	}

	if pts := d.Trace(r.trace); len(pts) > 0 {
		tr := styles.Trace{Player: r.trace}
		for _, p := range pts {
			tr.Xs = append(tr.Xs, p.X)
			tr.Ys = append(tr.Ys, p.Y)
		}
		r.style.RenderTrace(&buf, tr)
	}

	for _, lb := range d.TopLabels {
		r.style.RenderLabel(&buf, styles.Label{Text: lb.Text, X: lb.X, Y: lb.Y})
	}
	for _, lb := range d.BottomTicks {
		r.style.RenderLabel(&buf, styles.Label{Text: lb.Text, X: lb.X, Y: lb.Y, Tick: true})
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: styles.Simple{}, trace: -1}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}
