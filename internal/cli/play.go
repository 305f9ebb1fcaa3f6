package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yosukei/amida/pkg/ladder"
	"github.com/yosukei/amida/pkg/session"
)

// playOpts holds the command-line flags for the play command.
type playOpts struct {
	redraw      bool   // force a fresh ladder even if a current game exists
	interactive bool   // reveal outcomes one player at a time
	seed        uint64 // random seed override for a fresh draw
}

// newPlayCmd creates the play command for running a lottery.
// Without a game file it replays the current game saved by `amida draw`,
// drawing a fresh ladder only when none exists or --redraw is given.
func newPlayCmd() *cobra.Command {
	opts := playOpts{}

	cmd := &cobra.Command{
		Use:   "play [game.toml]",
		Short: "Play a ladder lottery and show who gets what",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			return runPlay(cmd.Context(), input, &opts)
		},
	}

	cmd.Flags().BoolVar(&opts.redraw, "redraw", false, "draw a fresh ladder instead of replaying the current game")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "reveal outcomes one player at a time")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed for a reproducible draw")

	return cmd
}

// runPlay resolves the game to play and prints its results.
func runPlay(ctx context.Context, input string, opts *playOpts) error {
	logger := loggerFromContext(ctx)

	game, err := resolveGame(ctx, input, opts)
	if err != nil {
		return err
	}

	mapping := game.Mapping()
	logger.Debugf("Mapping: %v", mapping)

	if opts.interactive {
		return runReveal(game)
	}

	fmt.Println(resultTable(mapping.Pairs(game.Players, game.Outcomes)))
	return nil
}

// resolveGame picks the game to play: the saved current game when no file
// is given, otherwise a fresh draw from the named game file. A fresh draw
// replaces the current game.
func resolveGame(ctx context.Context, input string, opts *playOpts) (*session.Game, error) {
	logger := loggerFromContext(ctx)

	store, storeErr := session.NewCurrentStore()
	if storeErr != nil {
		logger.Debug("current game store unavailable", "error", storeErr)
	}

	if input == "" && !opts.redraw && store != nil {
		game, err := store.Current(ctx)
		if err != nil {
			logger.Debug("could not read current game", "error", err)
		}
		if game != nil {
			logger.Info("Replaying current game", "players", game.Config.Players, "levels", game.Config.Levels)
			return game, nil
		}
	}

	m, err := loadManifest(input)
	if err != nil {
		return nil, err
	}
	if opts.seed != 0 {
		m.Seed = opts.seed
	}

	prog := newProgress(logger)
	l, err := ladder.Generate(m.Config, m.Source())
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Drew %d levels for %d players", m.Config.Levels, m.Config.Players))

	game := session.New(m.Config, l, m.Players, m.Outcomes, session.DefaultTTL)
	if store != nil {
		if err := store.Save(ctx, game); err != nil {
			logger.Warn("could not save current game", "error", err)
		}
	}
	return game, nil
}
