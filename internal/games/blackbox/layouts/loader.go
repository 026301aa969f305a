package layouts

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-blackbox/internal/core"
	"github.com/vovakirdan/tui-blackbox/internal/registry"
)

// Layout is an atom layout read from a file. It implements registry.Layout.
type Layout struct {
	LayoutID  string
	Name      string
	Placement []core.Coord
	Metadata  map[string]string
	FilePath  string
}

// ID returns the layout identifier.
func (l Layout) ID() string { return l.LayoutID }

// Title returns the display name, falling back to the ID.
func (l Layout) Title() string {
	if l.Name == "" {
		return l.LayoutID
	}
	return l.Name
}

// Atoms returns a copy of the placement. The seed is ignored.
func (l Layout) Atoms(int64) []core.Coord {
	return slices.Clone(l.Placement)
}

// Validate checks that the layout has an ID and at least one atom, all of
// them interior.
func (l Layout) Validate() error {
	if l.LayoutID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidLayout)
	}
	if len(l.Placement) == 0 {
		return fmt.Errorf("%w: %s has no atoms", ErrInvalidLayout, l.LayoutID)
	}
	for _, a := range l.Placement {
		if !a.IsInterior() {
			return fmt.Errorf("%w: %s atom %v is outside the interior", ErrInvalidLayout, l.LayoutID, a)
		}
	}
	return nil
}

// Loader handles loading layouts from a directory.
type Loader struct {
	Root string

	// Skipped collects the errors of files LoadAll passed over.
	Skipped []error
}

// NewLoader creates a new layout loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all layout files.
// Invalid files are skipped and recorded in Skipped.
// Returns layouts sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Layout, error) {
	var layouts []Layout
	l.Skipped = nil

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !isSupportedExtension(ext) {
			return nil
		}

		layout, err := l.LoadFile(path)
		if err != nil {
			l.Skipped = append(l.Skipped, err)
			return nil
		}

		layouts = append(layouts, layout)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(layouts, func(i, j int) bool {
		return layouts[i].LayoutID < layouts[j].LayoutID
	})

	return layouts, nil
}

// LoadFile loads a single layout file.
func (l *Loader) LoadFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	layout, err := ParseYAML(data)
	if err != nil {
		return Layout{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	layout.FilePath = path
	return layout, nil
}

// LoadByID loads a specific layout by ID.
func (l *Loader) LoadByID(id string) (Layout, error) {
	layouts, err := l.LoadAll()
	if err != nil {
		return Layout{}, err
	}

	for _, layout := range layouts {
		if layout.LayoutID == id {
			return layout, nil
		}
	}

	return Layout{}, fmt.Errorf("layout not found: %s", id)
}

// Register adds layouts to the global registry. Layouts whose ID is
// already taken are not registered; their errors are returned.
func Register(layouts []Layout) []error {
	var errs []error
	for _, layout := range layouts {
		layout := layout
		if err := registry.TryRegister(layout.LayoutID, func() registry.Layout { return layout }); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", layout.FilePath, err))
		}
	}
	return errs
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	return slices.Contains(FormatExtensions(), ext)
}
