package gamedata

import (
	"encoding/json"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/torchcrawl/internal/world"
)

// Glyph is a character and the color it is drawn in.
type Glyph struct {
	Char  string `json:"char"`  // Single character for rendering (e.g., "#")
	Color string `json:"color"` // Hex color code (e.g., "#C0C0C0")
}

// Rune returns the glyph character, or ' ' when none is set.
func (g Glyph) Rune() rune {
	for _, r := range g.Char {
		return r
	}
	return ' '
}

// TCellColor returns the color as a tcell.Color.
func (g Glyph) TCellColor() tcell.Color {
	color, err := ParseHexColor(g.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// TileGlyphs holds one glyph per tile kind.
type TileGlyphs struct {
	Wall  Glyph `json:"wall"`
	Floor Glyph `json:"floor"`
}

// For returns the glyph of a tile kind. Unset tiles get a blank glyph.
func (t TileGlyphs) For(tile world.Tile) Glyph {
	switch tile {
	case world.TileWall:
		return t.Wall
	case world.TileFloor:
		return t.Floor
	default:
		return Glyph{Char: " "}
	}
}

// Theme defines how the map is drawn: lit cells, remembered cells and the player.
type Theme struct {
	ID       string     `json:"id"`       // Unique identifier (e.g., "classic")
	Name     string     `json:"name"`     // Display name
	Player   Glyph      `json:"player"`   // Always drawn on top of the player's cell
	Visible  TileGlyphs `json:"visible"`  // Cells lit this frame
	Explored TileGlyphs `json:"explored"` // Cells seen before but not lit now
}

// ThemesFile represents the structure of themes.json.
type ThemesFile struct {
	Themes []Theme `json:"themes"`
}

const themesFile = "themes.json"

// LoadThemes loads theme definitions from the embedded themes.json file.
func LoadThemes() ([]Theme, error) {
	content, err := dataFS.ReadFile(themesFile)
	if err != nil {
		return nil, fmt.Errorf("read embedded %s: %w", themesFile, err)
	}

	var file ThemesFile
	if err := json.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", themesFile, err)
	}
	return file.Themes, nil
}
