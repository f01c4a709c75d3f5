package gamedata

import (
	"errors"
	"fmt"
	"strings"
)

// ThemeRegistry holds loaded themes and provides lookup utilities.
type ThemeRegistry struct {
	themes map[string]*Theme
	all    []Theme
}

// NewThemeRegistry creates a registry from loaded theme definitions.
func NewThemeRegistry(themes []Theme) *ThemeRegistry {
	registry := &ThemeRegistry{
		themes: make(map[string]*Theme),
		all:    themes,
	}
	for i := range themes {
		registry.themes[themes[i].ID] = &themes[i]
	}
	return registry
}

// LoadThemeRegistry loads and creates a registry from the embedded themes.json.
func LoadThemeRegistry() (*ThemeRegistry, error) {
	themes, err := LoadThemes()
	if err != nil {
		return nil, err
	}
	if len(themes) == 0 {
		return nil, errors.New("no themes loaded from themes.json")
	}
	return NewThemeRegistry(themes), nil
}

// MustLoadThemeRegistry loads a registry, panicking on error.
func MustLoadThemeRegistry() *ThemeRegistry {
	registry, err := LoadThemeRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the theme with the given ID, or nil if not found.
func (r *ThemeRegistry) GetByID(id string) *Theme {
	return r.themes[id]
}

// Lookup returns the theme with the given ID, or an error listing the known IDs.
func (r *ThemeRegistry) Lookup(id string) (*Theme, error) {
	if theme := r.themes[id]; theme != nil {
		return theme, nil
	}
	ids := make([]string, len(r.all))
	for i, theme := range r.all {
		ids[i] = theme.ID
	}
	return nil, fmt.Errorf("unknown theme %q (known: %s)", id, strings.Join(ids, ", "))
}

// Count returns the number of themes in the registry.
func (r *ThemeRegistry) Count() int {
	return len(r.all)
}
