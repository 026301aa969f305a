package main

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-blackbox/internal/config"
	"github.com/vovakirdan/tui-blackbox/internal/core"
	"github.com/vovakirdan/tui-blackbox/internal/games/blackbox"
	"github.com/vovakirdan/tui-blackbox/internal/platform/tui"
	"github.com/vovakirdan/tui-blackbox/internal/storage"
)

var (
	flagDifficulty string
	flagAtoms      string
)

var playCmd = &cobra.Command{
	Use:   "play [layout]",
	Short: "Play a game",
	Long: `Start a game on the given layout, or on the configured default.

Controls:
  Arrows/WASD/HJKL  - Move the cursor
  Space/F           - Fire a ray from the cursor (border cells)
  Enter/G           - Guess an atom at the cursor (inside the border)
  V                 - Give up and reveal the atoms
  R                 - New game (after the end)
  ?                 - More keys
  Q/Ctrl+C          - Quit

Border marks: matching numbers are the two ends of one ray,
H is a hit and R a reflection.

Difficulty options (random layout):
  easy   - 3 atoms
  normal - 4 atoms
  hard   - 5 atoms
  expert - 6 atoms

Examples:
  blackbox play
  blackbox play corners
  blackbox play random --difficulty expert --seed 42
  blackbox play --atoms "2,2;5,7;7,3"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, expert")
	playCmd.Flags().StringVar(&flagAtoms, "atoms", "", `Explicit atom placement, e.g. "3,2;1,7"`)
}

func runPlay(cmd *cobra.Command, args []string) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("play needs a terminal, use 'blackbox run' for scripted games")
	}

	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		config.ApplyPreset(&appConfig, preset)
		blackbox.SetRandomAtoms(appConfig.Atoms())
	}

	layout, err := resolveLayout(args, flagAtoms)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(fd); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	// The TUI owns the terminal; logs only go to an explicit log file.
	if logFile == nil {
		logger.SetOutput(io.Discard)
	}

	opts := tui.Options{
		Logger:   logger,
		ShowHelp: appConfig.UI.ShowHelp,
	}

	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		// Continue without storage - game still works
		logger.Warn("could not open scores database", "err", err)
	} else {
		defer store.Close()
		opts.Store = store
	}

	logger.Info("starting game", "layout", layout.ID(), "seed", cfg.Seed)
	return tui.Run(blackbox.NewSession(layout), cfg, opts)
}
