// Package main is the entry point for torchcrawl.
//
// Usage:
//
//	torchcrawl              play in the terminal
//	torchcrawl dump         print the starting view and exit
//	torchcrawl dump reveal  print the whole generated map and exit
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/torchcrawl/internal/dump"
	"github.com/samdwyer/torchcrawl/internal/game"
	"github.com/samdwyer/torchcrawl/internal/gamedata"
	"github.com/samdwyer/torchcrawl/internal/telemetry"
	"github.com/samdwyer/torchcrawl/internal/ui"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code. Deferred telemetry shutdown runs before
// main exits, so spans are flushed on failure paths too.
func run() int {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	ctx := context.Background()

	enabled, err := telemetry.ConfigureEnv(os.Getenv, os.Setenv)
	if err != nil {
		log.Printf("Warning: telemetry environment not configured: %v", err)
	}
	if enabled {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Game will run without observability")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	cfg, err := game.LoadConfig()
	if err != nil {
		log.Printf("Invalid configuration: %v", err)
		return 2
	}

	theme, err := gamedata.MustLoadThemeRegistry().Lookup(cfg.Theme)
	if err != nil {
		log.Printf("Invalid configuration: %v", err)
		return 2
	}
	catalog, err := ui.NewCatalog(cfg.Lang)
	if err != nil {
		log.Printf("Invalid configuration: %v", err)
		return 2
	}

	session, err := game.NewSession(ctx, cfg)
	if err != nil {
		log.Printf("Failed to initialize game: %v", err)
		return 1
	}

	if len(os.Args) > 1 && os.Args[1] == "dump" {
		if err := runDump(session, theme, catalog, len(os.Args) > 2 && os.Args[2] == "reveal"); err != nil {
			log.Printf("Dump failed: %v", err)
			return 1
		}
		return 0
	}

	g, err := ui.NewGame(session, theme, catalog)
	if err != nil {
		log.Printf("Failed to open terminal: %v", err)
		return 1
	}
	if err := g.Run(ctx); err != nil {
		log.Printf("Game error: %v", err)
		return 1
	}
	fmt.Println(catalog.Text("GOODBYE"))
	return 0
}

func runDump(session *game.Session, theme *gamedata.Theme, catalog *ui.Catalog, reveal bool) error {
	snap := session.Snapshot()

	p := dump.NewPrinter(os.Stdout, theme)
	p.Color = dump.IsTerminal(os.Stdout)
	p.Reveal = reveal

	header := []string{
		catalog.Text("TITLE"),
		fmt.Sprintf("seed=%d session=%s", session.Seed, session.ID),
	}
	return p.Print(&snap, header)
}
