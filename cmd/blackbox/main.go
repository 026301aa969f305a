// blackbox is the Black Box deduction game for the terminal.
//
// Usage:
//
//	blackbox play [layout]            - Play interactively
//	blackbox menu                     - Pick layouts from a menu
//	blackbox run [layout] <move>...   - Play a scripted game and print the results
//	blackbox list                     - List available layouts
//	blackbox scores [layout]          - Show results
//	blackbox config                   - Print the effective configuration
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for random layouts
//	--db <path>          - Set database path (default: ~/.blackbox/scores.db)
//	--config <path>      - Use a specific config file
//	--layouts <dir>      - Load layout files from this directory
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blackbox/internal/config"
	"github.com/vovakirdan/tui-blackbox/internal/games/blackbox"
	"github.com/vovakirdan/tui-blackbox/internal/games/blackbox/layouts"
)

// Environment variables read after loading .env.
const (
	envDB       = "BLACKBOX_DB"
	envConfig   = "BLACKBOX_CONFIG"
	envLogLevel = "BLACKBOX_LOG_LEVEL"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLayouts  string
	flagLogLevel string
	flagLogFile  string
)

var (
	appConfig config.Config
	logger    = log.New(io.Discard)
	logFile   *os.File
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blackbox",
	Short: "Black Box - find the hidden atoms by firing rays",
	Long: `Black Box is a deduction game on a 10x10 grid. Atoms are hidden in the
8x8 interior. Fire rays from the border and watch where they come out:
a ray is absorbed by an atom it runs into, turned by atoms it passes
diagonally and reflected back when it can't go anywhere else. Then guess
where the atoms are.

Scoring starts at 25. Each border cell used for the first time costs 1,
each wrong guess costs 5.

Examples:
  blackbox play
  blackbox menu
  blackbox play random --difficulty hard
  blackbox run classic ray:0,1 guess:3,2 board
  blackbox scores classic`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logFile != nil {
			logFile.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default from config, $"+envDB+")")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML ($"+envConfig+")")
	rootCmd.PersistentFlags().StringVar(&flagLayouts, "layouts", "", "Directory of layout YAML files (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error ($"+envLogLevel+")")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads .env, the logger, the config and the layout files, in that
// order. Flags win over the environment, which wins over the config file.
func setup(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	if err := setupLogger(firstNonEmpty(flagLogLevel, os.Getenv(envLogLevel), "info"), flagLogFile); err != nil {
		return err
	}

	cfg, err := config.Load(firstNonEmpty(flagConfig, os.Getenv(envConfig)))
	if err != nil {
		return err
	}
	cfg.Storage.DBPath = firstNonEmpty(flagDBPath, os.Getenv(envDB), cfg.Storage.DBPath)
	cfg.Layouts.Dir = firstNonEmpty(flagLayouts, cfg.Layouts.Dir)
	appConfig = cfg

	blackbox.SetRandomAtoms(cfg.Atoms())
	loadLayoutFiles(cfg.Layouts.Dir)

	logger.Debug("config loaded", "layout", cfg.Game.DefaultLayout, "difficulty", cfg.Game.Difficulty, "db", cfg.Storage.DBPath)
	return nil
}

func setupLogger(level, path string) error {
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var out io.Writer = os.Stderr
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		out = f
	}

	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "blackbox",
		Level:           lvl,
	})
	return nil
}

// loadLayoutFiles registers the layouts found in dir. A missing directory
// is not an error; broken files are logged and skipped.
func loadLayoutFiles(dir string) {
	if dir == "" {
		return
	}
	dir, err := config.ExpandHome(dir)
	if err != nil {
		logger.Warn("cannot resolve layouts directory", "err", err)
		return
	}
	if _, err := os.Stat(dir); err != nil {
		logger.Debug("no layouts directory", "dir", dir)
		return
	}

	loader := layouts.NewLoader(dir)
	found, err := loader.LoadAll()
	if err != nil {
		logger.Warn("cannot load layouts", "dir", dir, "err", err)
		return
	}
	for _, skipped := range loader.Skipped {
		logger.Warn("skipping layout file", "err", skipped)
	}
	for _, err := range layouts.Register(found) {
		logger.Warn("skipping layout", "err", err)
	}
	logger.Debug("layouts loaded", "dir", dir, "count", len(found))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
