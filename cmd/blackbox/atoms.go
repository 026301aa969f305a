package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-blackbox/internal/core"
	"github.com/vovakirdan/tui-blackbox/internal/games/blackbox"
	"github.com/vovakirdan/tui-blackbox/internal/registry"
)

// parseCoord parses "row,col".
func parseCoord(s string) (core.Coord, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return core.Coord{}, fmt.Errorf("invalid coordinate %q (want row,col)", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return core.Coord{}, fmt.Errorf("invalid row in %q: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return core.Coord{}, fmt.Errorf("invalid column in %q: %w", s, err)
	}
	return core.C(row, col), nil
}

// parseAtoms parses a placement like "3,2;1,7;4,6".
func parseAtoms(s string) ([]core.Coord, error) {
	var atoms []core.Coord
	for _, part := range strings.Split(s, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		c, err := parseCoord(part)
		if err != nil {
			return nil, err
		}
		atoms = append(atoms, c)
	}
	if len(atoms) == 0 {
		return nil, fmt.Errorf("no atoms in %q", s)
	}
	return atoms, nil
}

// resolveLayout picks the layout for a game: an explicit placement, the
// named layout, or the configured default.
func resolveLayout(args []string, atoms string) (registry.Layout, error) {
	if atoms != "" {
		placement, err := parseAtoms(atoms)
		if err != nil {
			return nil, err
		}
		return blackbox.FixedLayout{LayoutID: "custom", LayoutTitle: "Custom", Placement: placement}, nil
	}

	id := appConfig.Game.DefaultLayout
	if len(args) > 0 {
		id = args[0]
	}
	if !registry.Exists(id) {
		return nil, fmt.Errorf("unknown layout %q, run 'blackbox list' to see available layouts", id)
	}
	return registry.Create(id)
}
