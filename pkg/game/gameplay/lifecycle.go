// Package gameplay provides the actions a detective takes during a case.
package gameplay

import (
	"log/slog"
	"time"

	"noir/internal/config"
	"noir/pkg/engine/random"
	"noir/pkg/game/generator"
	"noir/pkg/game/state"
	"noir/pkg/game/story"
)

// NewGame starts a case with a story drawn from cfg. A zero cfg.Seed draws a
// time-based seed.
func NewGame(cfg *config.Config, logger *slog.Logger) *state.Game {
	gen := story.NewGenerator(cfg.Generation(), logger)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return buildGame(gen, seed)
}

// Restart replaces the case with a new mystery. The next seed follows from the
// current one, so a seeded session stays reproducible.
func Restart(g *state.Game) {
	*g = *buildGame(g.Generator, g.Seed+1)
}

// ResetCase starts the current mystery over from its seed.
func ResetCase(g *state.Game) {
	*g = *buildGame(g.Generator, g.Seed)
}

// buildGame draws the story for seed. A game made directly with
// state.NewGame has no generator, so it falls back to the default one.
func buildGame(gen *story.Generator, seed int64) *state.Game {
	if gen == nil {
		gen = story.NewGenerator(generator.DefaultConfig(), nil)
	}
	g := state.NewGame(gen.Generate(random.New(seed)))
	g.Generator = gen
	g.Seed = seed
	return g
}
