package setup

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"noir/pkg/game/entities"
	"noir/pkg/game/levelgen"
	"noir/pkg/game/notes"
)

var (
	ErrKillerCount       = errors.New("story must have exactly one killer")
	ErrUnsolvable        = errors.New("killer does not match the evidence")
	ErrMurderWeapon      = errors.New("murder weapon clue is inconsistent")
	ErrMarkerPlacement   = errors.New("markers are misplaced")
	ErrDuplicateNoteID   = errors.New("note id used twice")
	ErrNoWeaponDeduction = errors.New("murder weapon cannot be deduced")
)

// Validate checks every invariant of a generated mystery and reports all
// violations at once.
func Validate(victim *entities.Victim, suspects []*entities.Suspect, clues []*entities.Clue, pool notes.Connections) error {
	var errs []error

	killers := 0
	for _, s := range suspects {
		if s.IsKiller {
			killers++
		}
	}
	if killers != 1 {
		errs = append(errs, fmt.Errorf("%d killers: %w", killers, ErrKillerCount))
	}
	if k := Killer(suspects); k != nil && !MatchesEvidence(victim, k) {
		errs = append(errs, fmt.Errorf("%s has %s hair and %s shoes, victim shows %s and %s: %w",
			k.Name, k.HairColor, k.ShoeSize, victim.HairFound, victim.ShoePrint, ErrUnsolvable))
	}

	weapons := 0
	for i, c := range clues {
		if !c.IsMurderWeapon {
			if len(c.Markers) > 0 {
				errs = append(errs, fmt.Errorf("clue %d (%s) carries markers: %w", i, c.Name, ErrMurderWeapon))
			}
			continue
		}
		weapons++
		if c.Name != victim.WeaponUsed {
			errs = append(errs, fmt.Errorf("clue %d is %s, victim was killed with %s: %w", i, c.Name, victim.WeaponUsed, ErrMurderWeapon))
		}
	}
	if weapons != 1 {
		errs = append(errs, fmt.Errorf("%d murder weapons: %w", weapons, ErrMurderWeapon))
	}

	displays := clues
	if victim.Body != nil {
		displays = append([]*entities.Clue{victim.Body}, clues...)
	}
	for _, c := range displays {
		if err := checkMarkers(c); err != nil {
			errs = append(errs, err)
		}
	}

	if err := checkNoteIDs(displays, suspects, pool); err != nil {
		errs = append(errs, err)
	}

	if len(pool.OfType(notes.MurderWeapon)) == 0 {
		errs = append(errs, ErrNoWeaponDeduction)
	}

	return errors.Join(errs...)
}

func checkMarkers(c *entities.Clue) error {
	positions := c.Positions()
	if !levelgen.WellSpaced(positions) {
		return fmt.Errorf("%s markers closer than %d: %w", c.Name, entities.MinMarkerSpacing+1, ErrMarkerPlacement)
	}
	for _, p := range positions {
		if !levelgen.PanelBounds.Contains(p) {
			return fmt.Errorf("%s marker at %v outside the panel: %w", c.Name, p, ErrMarkerPlacement)
		}
	}
	return nil
}

func checkNoteIDs(displays []*entities.Clue, suspects []*entities.Suspect, pool notes.Connections) error {
	seen := mapset.New[notes.ID]()
	var dup error
	add := func(n notes.Note) {
		if dup == nil && seen.Has(n.ID) {
			dup = fmt.Errorf("note %d: %w", n.ID, ErrDuplicateNoteID)
		}
		seen.Put(n.ID)
	}

	for _, c := range displays {
		for _, m := range c.Markers {
			add(m.Note)
		}
	}
	for _, s := range suspects {
		for _, n := range s.Testimony() {
			add(n)
		}
	}
	for _, c := range pool {
		add(c.Note)
	}
	return dup
}
