// Package config provides YAML-based configuration loading and
// difficulty presets for the Black Box game.
package config

// Config contains all configuration for the game.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Layouts LayoutsConfig `yaml:"layouts"`
	UI      UIConfig      `yaml:"ui"`
	Storage StorageConfig `yaml:"storage"`
}

// GameConfig selects what a new game is played on.
type GameConfig struct {
	DefaultLayout string           `yaml:"default_layout"`
	Difficulty    DifficultyPreset `yaml:"difficulty"`
	RandomAtoms   int              `yaml:"random_atoms"` // Overrides the preset when > 0
}

// LayoutsConfig defines where user layout files are read from.
type LayoutsConfig struct {
	Dir string `yaml:"dir"`
}

// UIConfig defines terminal UI options.
type UIConfig struct {
	ShowHelp      bool `yaml:"show_help"`
	ScoreboardTop int  `yaml:"scoreboard_top"` // Rows shown by the scoreboard
}

// StorageConfig defines where finished games are recorded.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// Atoms returns the number of atoms a random layout should place.
func (c Config) Atoms() int {
	if c.Game.RandomAtoms > 0 {
		return c.Game.RandomAtoms
	}
	return AtomsForPreset(c.Game.Difficulty)
}
