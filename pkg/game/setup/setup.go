// Package setup holds the post-generation passes that keep a mystery solvable
// and the checks that verify it.
package setup

import (
	"noir/pkg/engine/random"
	"noir/pkg/game/catalog"
	"noir/pkg/game/entities"
)

// ApplyKillerTraces overrides the killer's hair color and shoe size with the
// traces recorded on the victim. Traces that were not left ("none") leave the
// killer's drawn attribute untouched.
func ApplyKillerTraces(victim *entities.Victim, suspects []*entities.Suspect) {
	for _, s := range suspects {
		if !s.IsKiller {
			continue
		}
		if victim.HasHairTrace() {
			s.HairColor = victim.HairFound
		}
		if victim.HasShoeTrace() {
			s.ShoeSize = victim.ShoePrint
		}
	}
}

// AvoidIncidentalOverlap redraws every innocent suspect attribute that equals a
// trace recorded on the victim, so only the killer matches the evidence.
func AvoidIncidentalOverlap(src random.Source, victim *entities.Victim, suspects []*entities.Suspect) {
	for _, s := range suspects {
		if s.IsKiller {
			continue
		}
		if victim.HasHairTrace() && s.HairColor == victim.HairFound {
			if hair, ok := random.PickExcept(src, catalog.HairColors, victim.HairFound); ok {
				s.HairColor = hair
			}
		}
		if victim.HasShoeTrace() && s.ShoeSize == victim.ShoePrint {
			if size, ok := random.PickExcept(src, catalog.ShoeSizes, victim.ShoePrint); ok {
				s.ShoeSize = size
			}
		}
	}
}

// Killer returns the killer among suspects, or nil.
func Killer(suspects []*entities.Suspect) *entities.Suspect {
	for _, s := range suspects {
		if s.IsKiller {
			return s
		}
	}
	return nil
}

// MatchesEvidence reports whether a suspect's attributes agree with every trace
// recorded on the victim.
func MatchesEvidence(victim *entities.Victim, s *entities.Suspect) bool {
	if victim.HasHairTrace() && s.HairColor != victim.HairFound {
		return false
	}
	if victim.HasShoeTrace() && s.ShoeSize != victim.ShoePrint {
		return false
	}
	return true
}
