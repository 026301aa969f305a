package config

import (
	_ "embed"
)

//go:embed defaults/blackbox.yaml
var defaultYAML []byte

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Game: GameConfig{
			DefaultLayout: "classic",
			Difficulty:    DifficultyNormal,
		},
		Layouts: LayoutsConfig{
			Dir: "~/.blackbox/layouts",
		},
		UI: UIConfig{
			ShowHelp:      true,
			ScoreboardTop: 10,
		},
		Storage: StorageConfig{
			DBPath: "~/.blackbox/scores.db",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
