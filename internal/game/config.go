package game

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/samdwyer/torchcrawl/internal/fov"
	"github.com/samdwyer/torchcrawl/internal/world"
)

// Torch radius bounds
const (
	MinRadius     = 3
	MaxRadius     = 12
	DefaultRadius = 5
)

// Environment variables read by LoadConfig.
const (
	EnvSeed      = "TORCHCRAWL_SEED"
	EnvWidth     = "TORCHCRAWL_WIDTH"
	EnvHeight    = "TORCHCRAWL_HEIGHT"
	EnvRadius    = "TORCHCRAWL_RADIUS"
	EnvGenerator = "TORCHCRAWL_GENERATOR"
	EnvFOV       = "TORCHCRAWL_FOV"
	EnvTheme     = "TORCHCRAWL_THEME"
	EnvLang      = "TORCHCRAWL_LANG"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	Width, Height int    // Dungeon size in cells
	Radius        int    // Initial torch radius
	Generator     string // Generation strategy name ("rooms" or "noise")
	FOV           string // Visibility strategy name ("sampled" or "raycast")
	Theme         string // Glyph theme id
	Lang          string // HUD text language
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Width:     world.DefaultWidth,
		Height:    world.DefaultHeight,
		Radius:    DefaultRadius,
		Generator: "rooms",
		FOV:       "sampled",
		Theme:     "classic",
		Lang:      "en",
	}
}

// LoadConfig reads the configuration from the process environment.
func LoadConfig() (Config, error) {
	return LoadConfigFrom(os.Getenv)
}

// LoadConfigFrom reads the configuration through getenv, falling back to
// DefaultConfig for unset variables, and validates the result.
func LoadConfigFrom(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	ints := []struct {
		env string
		dst *int
	}{
		{EnvWidth, &cfg.Width},
		{EnvHeight, &cfg.Height},
		{EnvRadius, &cfg.Radius},
	}
	for _, v := range ints {
		raw := strings.TrimSpace(getenv(v.env))
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return cfg, &world.ConfigError{Field: v.env, Reason: "not an integer: " + raw}
		}
		*v.dst = n
	}

	if raw := strings.TrimSpace(getenv(EnvSeed)); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return cfg, &world.ConfigError{Field: EnvSeed, Reason: "not an integer: " + raw}
		}
		cfg.Seed = seed
	}

	strs := []struct {
		env string
		dst *string
	}{
		{EnvGenerator, &cfg.Generator},
		{EnvFOV, &cfg.FOV},
		{EnvTheme, &cfg.Theme},
		{EnvLang, &cfg.Lang},
	}
	for _, v := range strs {
		if raw := strings.TrimSpace(getenv(v.env)); raw != "" {
			*v.dst = strings.ToLower(raw)
		}
	}

	return cfg, cfg.Validate()
}

// Validate checks the values that can be checked without generating a map.
// Room sizes against the grid are checked by the generator itself.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return &world.ConfigError{Field: "size", Reason: fmt.Sprintf("width and height must be positive, got %dx%d", c.Width, c.Height)}
	}
	if c.Radius < MinRadius || c.Radius > MaxRadius {
		return &world.ConfigError{Field: "radius", Reason: fmt.Sprintf("must be within [%d,%d], got %d", MinRadius, MaxRadius, c.Radius)}
	}
	if _, err := world.StrategyByName(c.Generator); err != nil {
		return err
	}
	if _, err := fov.StrategyByName(c.FOV); err != nil {
		return &world.ConfigError{Field: "fov", Reason: err.Error()}
	}
	return nil
}
