// Package story assembles a complete mystery.
package story

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	nlog "noir/internal/logger"
	"noir/pkg/engine/random"
	"noir/pkg/game/entities"
	"noir/pkg/game/generator"
	"noir/pkg/game/notes"
	"noir/pkg/game/setup"
)

// Story is one mystery: who died, who did it, what was left behind, and which
// deductions the player can still make. A new game replaces it wholesale.
type Story struct {
	ID          uuid.UUID
	Victim      *entities.Victim
	Suspects    []*entities.Suspect
	Clues       []*entities.Clue
	Connections notes.Connections
}

// Generator builds stories from a fixed configuration.
type Generator struct {
	cfg    generator.Config
	logger *slog.Logger
}

// NewGenerator returns a generator for cfg. It panics if cfg is invalid, since
// that can only be a startup mistake.
func NewGenerator(cfg generator.Config, logger *slog.Logger) *Generator {
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("story: invalid generator config: %v", err))
	}
	logger = nlog.Component(logger, "story")
	if cfg.Logger == nil {
		cfg.Logger = logger
	}
	return &Generator{cfg: cfg, logger: logger}
}

// Generate draws the victim, the suspects, the clues and the connections, in
// that order. The same source sequence yields the same story.
func (g *Generator) Generate(src random.Source) *Story {
	ids := notes.NewIDAllocator()

	s := &Story{ID: uuid.Must(uuid.NewRandomFromReader(src))}
	s.Victim = generator.Victim(src, ids, g.cfg)
	s.Suspects = generator.Suspects(src, ids, s.Victim, g.cfg)
	s.Clues = generator.Clues(src, ids, s.Victim, g.cfg)
	s.Connections = generator.Connections(ids, s.Victim, s.Clues)
	s.Connections = append(s.Connections, generator.Testimony(ids, s.Victim, s.Clues, s.Suspects)...)

	g.logger.Debug("story generated",
		slog.String("id", s.ID.String()),
		slog.String("victim", s.Victim.Name),
		slog.String("weapon", s.Victim.WeaponUsed),
		slog.String("killer", s.Killer().Name),
		slog.Int("connections", len(s.Connections)))
	if err := s.Validate(); err != nil {
		g.logger.Error("generated story is inconsistent", slog.Any("error", err))
	}

	return s
}

// Generate builds a story with the default configuration.
func Generate(src random.Source) *Story {
	return NewGenerator(generator.DefaultConfig(), nil).Generate(src)
}

// Validate checks every invariant of the story.
func (s *Story) Validate() error {
	return setup.Validate(s.Victim, s.Suspects, s.Clues, s.Connections)
}

// Killer returns the guilty suspect.
func (s *Story) Killer() *entities.Suspect {
	return setup.Killer(s.Suspects)
}

// MurderWeapon returns the clue the victim was killed with.
func (s *Story) MurderWeapon() *entities.Clue {
	for _, c := range s.Clues {
		if c.IsMurderWeapon {
			return c
		}
	}
	return nil
}

// Suspect returns the suspect at index i, or nil.
func (s *Story) Suspect(i int) *entities.Suspect {
	if i < 0 || i >= len(s.Suspects) {
		return nil
	}
	return s.Suspects[i]
}

// Examinables returns the victim's body followed by the clues.
func (s *Story) Examinables() []*entities.Clue {
	out := make([]*entities.Clue, 0, len(s.Clues)+1)
	if s.Victim != nil && s.Victim.Body != nil {
		out = append(out, s.Victim.Body)
	}
	return append(out, s.Clues...)
}
