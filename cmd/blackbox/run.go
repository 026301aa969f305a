package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blackbox/internal/games/blackbox"
)

var flagRunAtoms string

var runCmd = &cobra.Command{
	Use:   "run [layout] <move>...",
	Short: "Play a scripted game",
	Long: `Play a game without the interactive UI. Each move is applied in order
and its result printed, followed by the final score.

Moves:
  ray:ROW,COL    - Fire a ray from a border cell
  guess:ROW,COL  - Guess an atom position
  board          - Print the board markers

The first argument is a layout ID unless it looks like a move.

Examples:
  blackbox run classic ray:0,1 ray:5,9 guess:3,2
  blackbox run --atoms "2,2;7,7" ray:2,0 board`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagRunAtoms, "atoms", "", `Explicit atom placement, e.g. "3,2;1,7"`)
}

func runRun(cmd *cobra.Command, args []string) error {
	var layoutArgs []string
	if len(args) > 0 && !isMove(args[0]) {
		layoutArgs, args = args[:1], args[1:]
	}

	layout, err := resolveLayout(layoutArgs, flagRunAtoms)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game, err := blackbox.New(layout.Atoms(seed))
	if err != nil {
		return fmt.Errorf("layout %s: %w", layout.ID(), err)
	}

	logger.Debug("scripted game", "layout", layout.ID(), "moves", len(args))
	return playScript(cmd.OutOrStdout(), game, args)
}

// isMove reports whether arg is a move rather than a layout ID.
func isMove(arg string) bool {
	return arg == "board" || strings.HasPrefix(arg, "ray:") || strings.HasPrefix(arg, "guess:")
}

// playScript applies moves to game, printing one line per move and the
// final score. An unparsable move stops the script with an error.
func playScript(w io.Writer, game *blackbox.Game, moves []string) error {
	for _, move := range moves {
		kind, arg, _ := strings.Cut(move, ":")

		switch kind {
		case "board":
			fmt.Fprint(w, game.Board().Render())

		case "ray":
			c, err := parseCoord(arg)
			if err != nil {
				return fmt.Errorf("move %q: %w", move, err)
			}
			res := game.ShootRay(c.Row, c.Col)
			if err := res.Err(); err != nil {
				fmt.Fprintf(w, "ray %v: %v\n", c, err)
				continue
			}
			fmt.Fprintf(w, "ray %v: %v (score %d)\n", c, res, game.Score())

		case "guess":
			c, err := parseCoord(arg)
			if err != nil {
				return fmt.Errorf("move %q: %w", move, err)
			}
			verdict := "no atom"
			if game.GuessAtom(c.Row, c.Col) {
				verdict = "atom"
			}
			fmt.Fprintf(w, "guess %v: %s (score %d, atoms left %d)\n", c, verdict, game.Score(), game.AtomsRemaining())

		default:
			return fmt.Errorf("unknown move %q (want ray:ROW,COL, guess:ROW,COL or board)", move)
		}
	}

	fmt.Fprintf(w, "score %d, atoms left %d\n", game.Score(), game.AtomsRemaining())
	return nil
}
