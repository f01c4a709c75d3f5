// Package gamedata provides embedded glyph themes and utilities for loading them.
package gamedata

import "embed"

//go:embed themes.json
var dataFS embed.FS
