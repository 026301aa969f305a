package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blackbox/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available layouts",
	Long: `Shows the built-in layouts and those loaded from the layouts directory
(~/.blackbox/layouts by default, or --layouts).`,
	Run: runList,
}

func runList(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	all := registry.List()

	if len(all) == 0 {
		fmt.Fprintln(out, "No layouts available.")
		return
	}

	fmt.Fprintln(out, "Available layouts:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range all {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, l := range all {
		marker := ""
		if l.ID == appConfig.Game.DefaultLayout {
			marker = " (default)"
		}
		fmt.Fprintf(out, "  %-*s  %s%s\n", maxIDLen, l.ID, l.Title, marker)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'blackbox play <id>' to play a layout.")
}
