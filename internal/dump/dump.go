// Package dump prints a session snapshot as plain text, for scripts and quick looks
// at generated maps outside the interactive game.
package dump

import (
	"bufio"
	"io"
	"os"

	"github.com/gookit/color"
	"golang.org/x/term"

	"github.com/samdwyer/torchcrawl/internal/fov"
	"github.com/samdwyer/torchcrawl/internal/game"
	"github.com/samdwyer/torchcrawl/internal/gamedata"
)

// Printer writes snapshots using a theme's glyphs.
type Printer struct {
	w     io.Writer
	theme *gamedata.Theme

	// Color wraps each glyph in its theme color.
	Color bool
	// Reveal draws every cell as visible, ignoring what the player has seen.
	Reveal bool
}

// NewPrinter returns a printer writing to w.
func NewPrinter(w io.Writer, theme *gamedata.Theme) *Printer {
	return &Printer{w: w, theme: theme}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Print writes the header lines and then one line per map row.
func (p *Printer) Print(snap *game.Snapshot, header []string) error {
	bw := bufio.NewWriter(p.w)

	for _, line := range header {
		bw.WriteString(line)
		bw.WriteByte('\n')
	}

	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			bw.WriteString(p.cell(snap, x, y))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func (p *Printer) cell(snap *game.Snapshot, x, y int) string {
	var glyph gamedata.Glyph
	if snap.IsPlayer(x, y) {
		glyph = p.theme.Player
	} else {
		view, _ := snap.At(x, y)
		visibility := view.Visibility
		if p.Reveal {
			visibility = fov.Visible
		}
		switch visibility {
		case fov.Visible:
			glyph = p.theme.Visible.For(view.Kind)
		case fov.Explored:
			glyph = p.theme.Explored.For(view.Kind)
		default:
			return " "
		}
	}

	s := string(glyph.Rune())
	if p.Color && glyph.Color != "" {
		return color.HEX(glyph.Color).Sprint(s)
	}
	return s
}
