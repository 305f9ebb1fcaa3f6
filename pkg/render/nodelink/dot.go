package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/yosukei/amida/pkg/ladder"
	"github.com/yosukei/amida/pkg/render"
)

// Options configures mapping graph generation.
type Options struct {
	// Detailed includes slot indices in node labels.
	// When false, only the names are shown.
	Detailed bool
}

// ToDOT converts a permutation and its name lists to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG], [RenderPDF],
// or [RenderPNG].
//
// Player nodes are pinned to the top rank and outcome nodes to the bottom
// rank, so the arrows read downward like the ladder itself. Names need not
// be unique; node identity comes from slot indices.
func ToDOT(p ladder.Permutation, playerNames, outcomeNames []string, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=18, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=1.0;\n")
	buf.WriteString("  nodesep=0.4;\n")
	buf.WriteString("\n")

	for top := range p {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", playerID(top), nodeLabel(playerNames, top, opts.Detailed))
	}
	for bottom := range p {
		fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=\"#eef4fa\"];\n", outcomeID(bottom), nodeLabel(outcomeNames, bottom, opts.Detailed))
	}

	buf.WriteString("\n")
	fmt.Fprintf(&buf, "  { rank=source; %s }\n", rankList(playerID, len(p)))
	fmt.Fprintf(&buf, "  { rank=sink; %s }\n", rankList(outcomeID, len(p)))

	buf.WriteString("\n")
	for top, bottom := range p {
		fmt.Fprintf(&buf, "  %q -> %q;\n", playerID(top), outcomeID(bottom))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func playerID(i int) string  { return fmt.Sprintf("p%d", i) }
func outcomeID(i int) string { return fmt.Sprintf("o%d", i) }

func nodeLabel(names []string, i int, detailed bool) string {
	name := ""
	if i < len(names) {
		name = names[i]
	}
	if name == "" {
		name = fmt.Sprintf("#%d", i+1)
	}
	if detailed {
		return fmt.Sprintf("%s\nslot %d", name, i+1)
	}
	return name
}

func rankList(id func(int) string, n int) string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("%q;", id(i))
	}
	return strings.Join(ids, " ")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with
// [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPDF].
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPNG].
//
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
