package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-blackbox/internal/platform/tui"
	"github.com/vovakirdan/tui-blackbox/internal/registry"
	"github.com/vovakirdan/tui-blackbox/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [layout]",
	Short: "Show results",
	Long: `Without a layout, shows a summary of every layout played.
With a layout, shows its best solved games.

Examples:
  blackbox scores
  blackbox scores classic
  blackbox scores classic --limit 20
  blackbox scores --tui
  blackbox scores classic --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 0, "Number of results to show (default from config)")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all results for the layout")
}

func runScores(cmd *cobra.Command, args []string) error {
	layoutID := ""
	if len(args) > 0 {
		layoutID = args[0]
		if !registry.Exists(layoutID) && layoutID != "custom" {
			return fmt.Errorf("unknown layout %q, run 'blackbox list' to see available layouts", layoutID)
		}
	}

	limit := flagScoresLimit
	if limit <= 0 {
		limit = appConfig.UI.ScoreboardTop
	}

	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if layoutID == "" {
			return errors.New("--clear needs a layout")
		}
		if err := store.ClearScores(layoutID); err != nil {
			return err
		}
		logger.Info("scores cleared", "layout", layoutID)
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared results for %s.\n", layoutID)
		return nil

	case flagScoresTUI:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		_, err := tui.RunScoreboard(store, firstNonEmpty(layoutID, appConfig.Game.DefaultLayout), limit, width, height)
		return err

	case layoutID == "":
		return printSummary(cmd, store)
	}

	return printTopScores(cmd, store, layoutID, limit)
}

func printTopScores(cmd *cobra.Command, store *storage.Store, layoutID string, limit int) error {
	out := cmd.OutOrStdout()

	scores, err := store.TopScores(layoutID, limit)
	if err != nil {
		return err
	}

	title := layoutID
	if layout, err := registry.Create(layoutID); err == nil {
		title = layout.Title()
	}
	fmt.Fprintf(out, "High Scores - %s\n", title)
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No solved games yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'blackbox play %s' to set the first score!\n", layoutID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-5s  %-4s  %-5s  %s\n", "Rank", "Score", "Rays", "Wrong", "Date")
	fmt.Fprintf(out, "  %-4s  %-5s  %-4s  %-5s  %s\n", "----", "-----", "----", "-----", "----")
	for i, r := range scores {
		fmt.Fprintf(out, "  %-4d  %-5d  %-4d  %-5d  %s\n", i+1, r.Score, r.Rays, r.WrongGuesses, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(layoutID)
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d   Played: %d   Solved: %d\n", stats.HighScore, stats.Games, stats.Solved)
	}
	return nil
}

func printSummary(cmd *cobra.Command, store *storage.Store) error {
	out := cmd.OutOrStdout()

	all, err := store.AllStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Fprintln(out, "No games played yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-12s  %-6s  %-6s  %-4s  %-8s  %s\n", "Layout", "Played", "Solved", "Best", "Avg rays", "Last played")
	fmt.Fprintf(out, "  %-12s  %-6s  %-6s  %-4s  %-8s  %s\n", "------", "------", "------", "----", "--------", "-----------")
	for _, st := range all {
		last := "-"
		if !st.LastPlayed.IsZero() {
			last = st.LastPlayed.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(out, "  %-12s  %-6d  %-6d  %-4d  %-8.1f  %s\n", st.LayoutID, st.Games, st.Solved, st.HighScore, st.AvgRays, last)
	}
	return nil
}
