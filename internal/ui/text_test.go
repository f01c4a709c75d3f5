package ui

import (
	"strings"
	"testing"

	"github.com/samdwyer/torchcrawl/internal/game"
)

func TestCatalogEnglish(t *testing.T) {
	c, err := NewCatalog("en")
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	if got, want := c.Text("TORCH_RADIUS"), "Torch radius: %d"; got != want {
		t.Errorf("Text(TORCH_RADIUS) = %q, want %q", got, want)
	}
	if got := c.Text("NO_SUCH_ID"); got != "NO_SUCH_ID" {
		t.Errorf("missing id = %q, want it returned unchanged", got)
	}

	hud := c.HUD(&game.Snapshot{Radius: 4, Generator: "rooms", FOV: "sampled"})
	if len(hud) != 3 {
		t.Fatalf("HUD has %d lines, want 3", len(hud))
	}
	if !strings.Contains(hud[2], "Torch radius: 4") || !strings.Contains(hud[2], "Map: rooms  Sight: sampled") {
		t.Errorf("HUD status line = %q", hud[2])
	}
}

func TestCatalogRussian(t *testing.T) {
	c, err := NewCatalog("ru")
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	if got, want := c.Text("GOODBYE"), "Спасибо за игру!"; got != want {
		t.Errorf("Text(GOODBYE) = %q, want %q", got, want)
	}

	hud := c.HUD(&game.Snapshot{Radius: 6, Generator: "noise", FOV: "raycast"})
	for _, line := range hud {
		if strings.Contains(line, "%!") {
			t.Errorf("HUD line %q has a formatting error", line)
		}
	}
}

func TestCatalogUnknownLanguage(t *testing.T) {
	if _, err := NewCatalog("xx"); err == nil {
		t.Error("NewCatalog(xx) should fail")
	}
}
