// Package generator draws the parts of a mystery: the victim, the suspects, the
// clues and the connections the player has to discover between them.
package generator

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/zyedidia/generic/mapset"

	"noir/pkg/engine/random"
	"noir/pkg/game/catalog"
	"noir/pkg/game/levelgen"
)

var (
	ErrInvalidCount = errors.New("count must be at least 1")
	ErrTooManyClues = errors.New("not enough weapons for distinct clues")
)

// Config controls mystery generation.
type Config struct {
	SuspectCount int
	ClueCount    int
	// KillerTell colors the killer differently from the other suspects.
	KillerTell bool
	// AllowIncidentalOverlap lets innocent suspects share the killer's traces
	// and lets clues repeat weapon names.
	AllowIncidentalOverlap bool
	// HonestSuspects makes the killer admit guilt when asked.
	HonestSuspects bool
	// MarkerAttempts is the number of random spots tried per marker.
	MarkerAttempts int

	// Logger receives placement warnings. Nil discards.
	Logger *slog.Logger
}

// DefaultConfig returns the configuration of the classic three-suspect mystery.
func DefaultConfig() Config {
	return Config{
		SuspectCount:           3,
		ClueCount:              3,
		AllowIncidentalOverlap: true,
		MarkerAttempts:         levelgen.DefaultAttempts,
	}
}

// Validate reports every problem with the configuration.
func (c Config) Validate() error {
	var errs []error
	if c.SuspectCount < 1 {
		errs = append(errs, fmt.Errorf("suspects %d: %w", c.SuspectCount, ErrInvalidCount))
	}
	if c.ClueCount < 1 {
		errs = append(errs, fmt.Errorf("clues %d: %w", c.ClueCount, ErrInvalidCount))
	}
	if c.MarkerAttempts < 1 {
		errs = append(errs, fmt.Errorf("marker attempts %d: %w", c.MarkerAttempts, ErrInvalidCount))
	}
	if !c.AllowIncidentalOverlap && c.ClueCount > len(catalog.Weapons) {
		errs = append(errs, fmt.Errorf("%d clues, %d weapons: %w", c.ClueCount, len(catalog.Weapons), ErrTooManyClues))
	}
	return errors.Join(errs...)
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}

// drawDistinct picks a value of pool not yet in used and records it. Once every
// value is used it falls back to a plain draw.
func drawDistinct(src random.Source, pool []string, used mapset.Set[string]) string {
	free := make([]string, 0, len(pool))
	for _, v := range pool {
		if !used.Has(v) {
			free = append(free, v)
		}
	}
	var v string
	if len(free) > 0 {
		v = random.Pick(src, free)
	} else {
		v = random.Pick(src, pool)
	}
	used.Put(v)
	return v
}
