package sink

import (
	"encoding/json"

	"github.com/yosukei/amida/pkg/ladder"
	"github.com/yosukei/amida/pkg/render/ladderviz/layout"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	rungs    ladder.Layout
	mapping  ladder.Permutation
	players  []string
	outcomes []string
	style    string
	seed     uint64
	seeded   bool
}

// WithJSONRungs includes the raw rung layout in the output, enabling
// round-trip rendering (re-import and render identically).
func WithJSONRungs(l ladder.Layout) JSONOption { return func(r *jsonRenderer) { r.rungs = l } }

// WithJSONMapping includes the simulated player→outcome permutation.
// With name lists attached via [WithJSONNames], resolved pairs are included too.
func WithJSONMapping(p ladder.Permutation) JSONOption {
	return func(r *jsonRenderer) { r.mapping = p }
}

// WithJSONNames attaches player and outcome name lists for resolved pairs.
func WithJSONNames(players, outcomes []string) JSONOption {
	return func(r *jsonRenderer) { r.players = players; r.outcomes = outcomes }
}

// WithJSONStyle records the style name (e.g., "simple", "ink") in the JSON
// output for documentation or round-trip rendering.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

// WithJSONSeed records the generation seed in the JSON output, enabling
// reproducible regeneration of the same ladder.
func WithJSONSeed(seed uint64) JSONOption {
	return func(r *jsonRenderer) { r.seed = seed; r.seeded = true }
}

type jsonOutput struct {
	Width    float64            `json:"width"`
	Height   float64            `json:"height"`
	Style    string             `json:"style,omitempty"`
	Seed     uint64             `json:"seed,omitempty"`
	Seeded   bool               `json:"seeded,omitempty"`
	Lines    []layout.Line      `json:"lines"`
	Rungs    []layout.Rung      `json:"rungs"`
	Labels   []layout.Label     `json:"labels,omitempty"`
	Ticks    []layout.Label     `json:"ticks,omitempty"`
	Source   [][]bool           `json:"source_rungs,omitempty"`
	Mapping  ladder.Permutation `json:"mapping,omitempty"`
	Pairs    []ladder.Pair      `json:"pairs,omitempty"`
	Players  []string           `json:"players,omitempty"`
	Outcomes []string           `json:"outcomes,omitempty"`
}

// RenderJSON exports the diagram geometry and associated game data as a
// pretty-printed JSON document. This is the data interchange format for
// amida, enabling:
//
//   - Integration with external visualization tools
//   - Replaying a stored ladder without regenerating
//   - Round-trip rendering (re-import and render identically)
//
// RenderJSON returns an error only if JSON marshaling fails (should not
// happen with well-formed diagrams). It does not modify its inputs and is
// safe to call concurrently.
func RenderJSON(d layout.Diagram, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Width:    d.FrameWidth,
		Height:   d.FrameHeight,
		Style:    r.style,
		Seed:     r.seed,
		Seeded:   r.seeded,
		Lines:    d.Lines,
		Rungs:    d.Rungs,
		Labels:   d.TopLabels,
		Ticks:    d.BottomTicks,
		Source:   r.rungs.Rungs,
		Mapping:  r.mapping,
		Players:  r.players,
		Outcomes: r.outcomes,
	}

	if len(r.mapping) > 0 && len(r.players) >= len(r.mapping) && len(r.outcomes) >= len(r.mapping) {
		out.Pairs = r.mapping.Pairs(r.players, r.outcomes)
	}

	return json.MarshalIndent(out, "", "  ")
}
