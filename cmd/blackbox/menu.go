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
	"github.com/vovakirdan/tui-blackbox/internal/registry"
	"github.com/vovakirdan/tui-blackbox/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick layouts from a menu",
	Long: `Start in interactive menu mode.

Pick a layout with the arrow keys and Enter; left/right changes the
difficulty of the random layout. When you quit a game you return to
the menu.

Controls:
  Up/Down      - Select layout
  Left/Right   - Easier/harder random layout
  Enter        - Play
  Tab          - Scoreboard
  Q            - Quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("menu needs a terminal")
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(fd); err == nil {
		width = w
		height = h
	}
	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	if logFile == nil {
		logger.SetOutput(io.Discard)
	}

	opts := tui.Options{
		Logger:   logger,
		ShowHelp: appConfig.UI.ShowHelp,
	}
	var scores tui.HighScorer
	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
	} else {
		defer store.Close()
		opts.Store = store
		scores = store
	}

	layoutID := appConfig.Game.DefaultLayout
	preset := appConfig.Game.Difficulty

	for {
		result, err := tui.RunMenu(scores, cfg, layoutID, preset)
		if err != nil {
			return err
		}
		cfg = result.Config
		preset = result.Difficulty

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			if store == nil {
				continue
			}
			goBack, err := tui.RunScoreboard(store, layoutID, appConfig.UI.ScoreboardTop, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		layoutID = result.LayoutID
		config.ApplyPreset(&appConfig, preset)
		blackbox.SetRandomAtoms(appConfig.Atoms())

		layout, err := registry.Create(layoutID)
		if err != nil {
			return err
		}

		logger.Info("starting game", "layout", layoutID, "difficulty", preset)
		if err := tui.Run(blackbox.NewSession(layout), cfg, opts); err != nil {
			logger.Error("game failed", "layout", layoutID, "err", err)
			return err
		}
		cfg.Seed = 0 // Fresh placement for the next random game
	}
}
