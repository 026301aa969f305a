// Package layouts loads atom layouts from YAML files.
// It depends on the registry and core packages; the game package does not
// depend on it.
package layouts

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-blackbox/internal/core"
)

// ErrInvalidLayout is returned for layout files that parse but cannot be played.
var ErrInvalidLayout = errors.New("layouts: invalid layout")

// YAMLLayout represents the YAML structure of a layout file.
//
//	id: ring
//	name: Ring
//	atoms:
//	  - {row: 2, col: 2}
//	  - {row: 7, col: 7}
type YAMLLayout struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Atoms    []YAMLAtom        `yaml:"atoms"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLAtom is a single atom position.
type YAMLAtom struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// ParseYAML parses and validates a YAML layout file.
func ParseYAML(data []byte) (Layout, error) {
	var yl YAMLLayout
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Layout{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	layout := Layout{
		LayoutID: yl.ID,
		Name:     yl.Name,
		Metadata: yl.Metadata,
	}
	for _, a := range yl.Atoms {
		layout.Placement = append(layout.Placement, core.C(a.Row, a.Col))
	}

	if err := layout.Validate(); err != nil {
		return Layout{}, err
	}
	return layout, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
