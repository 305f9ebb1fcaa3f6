package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yosukei/amida/pkg/errors"
	"github.com/yosukei/amida/pkg/ladder"
	"github.com/yosukei/amida/pkg/manifest"
	"github.com/yosukei/amida/pkg/render/ladderviz/layout"
	"github.com/yosukei/amida/pkg/render/ladderviz/sink"
	"github.com/yosukei/amida/pkg/render/ladderviz/styles"
	"github.com/yosukei/amida/pkg/render/nodelink"
	"github.com/yosukei/amida/pkg/session"
)

const (
	styleSimple = "simple" // plain straight strokes
	styleInk    = "ink"    // hand-inked style with wobbled strokes

	defaultOutputBase = "ladder" // base name when no game file or -o given
	inkSeed           = 42       // wobble seed for reproducible ink output
)

// drawOpts holds the command-line flags for the draw command.
type drawOpts struct {
	output    string   // output file path (or base path for multiple formats)
	formats   []string // output formats: "svg", "png", "pdf", "json", "dot"
	style     string   // visual style: "simple" or "ink"
	highlight int      // player index whose path is traced (-1 = none)
	width     float64  // viewport width in pixels
	height    float64  // viewport height in pixels
	seed      uint64   // random seed override (0 = manifest seed or fresh)
	detailed  bool     // include slot indices in DOT node labels
	noSave    bool     // skip saving the drawn game as the current game
}

// newDrawCmd creates the draw command for generating ladder diagrams.
// It reads an optional TOML game file and renders the drawn ladder to one
// or more output formats.
func newDrawCmd() *cobra.Command {
	var formatsStr string
	opts := drawOpts{
		style:     styleSimple,
		highlight: -1,
		width:     layout.DefaultWidth,
		height:    layout.DefaultHeight,
	}

	cmd := &cobra.Command{
		Use:   "draw [game.toml]",
		Short: "Draw a ladder and render it to SVG(s)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			if err := validateStyle(opts.style); err != nil {
				return err
			}
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			return runDraw(cmd.Context(), input, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json, dot (comma-separated)")
	cmd.Flags().StringVar(&opts.style, "style", opts.style, "visual style: simple (default), ink")
	cmd.Flags().IntVar(&opts.highlight, "highlight", -1, "trace the path of the given player index")
	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "frame width")
	cmd.Flags().Float64Var(&opts.height, "height", opts.height, "frame height")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed for a reproducible draw")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show slot indices in dot output")
	cmd.Flags().BoolVar(&opts.noSave, "no-save", false, "do not save the draw as the current game")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{"svg"}
	}
	return strings.Split(s, ",")
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{"svg": true, "png": true, "pdf": true, "json": true, "dot": true}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'svg', 'png', 'pdf', 'json', or 'dot')", f)
		}
	}
	return nil
}

// validateStyle checks that the style is either "simple" or "ink".
func validateStyle(s string) error {
	if s != styleSimple && s != styleInk {
		return errors.New(errors.ErrCodeInvalidStyle, "invalid style: %s (must be 'simple' or 'ink')", s)
	}
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input (or falls back to
// "ladder" when drawing without a game file). If output ends in a known
// format extension, that extension is stripped.
func basePath(output, input string) string {
	if output == "" {
		if input == "" {
			return defaultOutputBase
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// loadManifest resolves the game description for a command: the given TOML
// file, or the built-in defaults when no file is named.
func loadManifest(input string) (*manifest.Manifest, error) {
	if input == "" {
		return manifest.Default(), nil
	}
	return manifest.Load(input)
}

// runDraw generates a ladder from the game file (or defaults) and renders
// it to every requested format. Unless --no-save is given, the draw becomes
// the current game for a later `amida play`.
func runDraw(ctx context.Context, input string, opts *drawOpts) error {
	logger := loggerFromContext(ctx)

	m, err := loadManifest(input)
	if err != nil {
		return err
	}
	if opts.seed != 0 {
		m.Seed = opts.seed
	}

	prog := newProgress(logger)
	l, err := ladder.Generate(m.Config, m.Source())
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Drew %d levels for %d players", m.Config.Levels, m.Config.Players))

	if !opts.noSave {
		if err := saveCurrent(ctx, m, l); err != nil {
			logger.Warn("could not save current game", "error", err)
		}
	}

	base := basePath(opts.output, input)
	for _, format := range opts.formats {
		data, err := renderLadder(ctx, m, l, format, opts)
		if err != nil {
			return err
		}
		logger.Debugf("Generated %s: %d bytes", format, len(data))

		path := base + "." + format
		if opts.output != "" && len(opts.formats) == 1 {
			path = opts.output
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return err
		}
		logger.Infof("Generated %s", path)
	}
	return nil
}

// saveCurrent stores the draw as the CLI's current game.
func saveCurrent(ctx context.Context, m *manifest.Manifest, l ladder.Layout) error {
	store, err := session.NewCurrentStore()
	if err != nil {
		return err
	}
	game := session.New(m.Config, l, m.Players, m.Outcomes, session.DefaultTTL)
	return store.Save(ctx, game)
}

// renderLadder dispatches to the renderer for the requested format.
func renderLadder(ctx context.Context, m *manifest.Manifest, l ladder.Layout, format string, opts *drawOpts) ([]byte, error) {
	logger := loggerFromContext(ctx)

	if format == "dot" {
		logger.Info("Generating mapping graph DOT")
		mapping := ladder.Simulate(l)
		return []byte(nodelink.ToDOT(mapping, m.Players, m.Outcomes, nodelink.Options{Detailed: opts.detailed})), nil
	}

	d := layout.Build(l, m.Players, layout.WithFrameSize(opts.width, opts.height))
	svgOpts := buildSVGOpts(opts)

	switch format {
	case "svg":
		logger.Infof("Rendering ladder SVG (%s style)", opts.style)
		return sink.RenderSVG(d, svgOpts...), nil
	case "png":
		logger.Info("Rendering ladder PNG")
		return sink.RenderPNG(d, sink.WithPNGSVGOptions(svgOpts...))
	case "pdf":
		logger.Info("Rendering ladder PDF")
		return sink.RenderPDF(d, sink.WithPDFSVGOptions(svgOpts...))
	case "json":
		logger.Info("Rendering ladder layout as JSON")
		return sink.RenderJSON(d, buildJSONOpts(m, l, opts)...)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format: %s", format)
	}
}

// buildSVGOpts constructs SVG rendering options from the style and highlight flags.
func buildSVGOpts(opts *drawOpts) []sink.SVGOption {
	var result []sink.SVGOption
	if opts.style == styleInk {
		result = append(result, sink.WithStyle(styles.NewInk(inkSeed)))
	}
	if opts.highlight >= 0 {
		result = append(result, sink.WithTrace(opts.highlight))
	}
	return result
}

// buildJSONOpts constructs JSON rendering options including the mapping and names.
func buildJSONOpts(m *manifest.Manifest, l ladder.Layout, opts *drawOpts) []sink.JSONOption {
	result := []sink.JSONOption{
		sink.WithJSONRungs(l),
		sink.WithJSONMapping(ladder.Simulate(l)),
		sink.WithJSONNames(m.Players, m.Outcomes),
		sink.WithJSONStyle(opts.style),
	}
	if m.Seed != 0 {
		result = append(result, sink.WithJSONSeed(m.Seed))
	}
	return result
}
