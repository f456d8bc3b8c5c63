package generator

import (
	"github.com/leonelquinteros/gotext"
	"github.com/zyedidia/generic/mapset"

	"noir/pkg/engine/random"
	"noir/pkg/game/catalog"
	"noir/pkg/game/entities"
	"noir/pkg/game/levelgen"
	"noir/pkg/game/notes"
)

// Clues draws cfg.ClueCount clues. The first one is the murder weapon, named
// after victim.WeaponUsed, and is the only clue carrying markers.
func Clues(src random.Source, ids *notes.IDAllocator, victim *entities.Victim, cfg Config) []*entities.Clue {
	usedNames := mapset.New[string]()
	usedNames.Put(victim.WeaponUsed)

	clues := make([]*entities.Clue, cfg.ClueCount)
	clues[0] = murderWeapon(src, ids, victim, cfg)
	for i := 1; i < len(clues); i++ {
		var name string
		if cfg.AllowIncidentalOverlap {
			name = random.Pick(src, catalog.Weapons)
		} else {
			name = drawDistinct(src, catalog.Weapons, usedNames)
		}
		clues[i] = entities.NewClue(name, catalog.ColorClue, false)
	}
	return clues
}

func murderWeapon(src random.Source, ids *notes.IDAllocator, victim *entities.Victim, cfg Config) *entities.Clue {
	weapon := victim.WeaponUsed
	clue := entities.NewClue(weapon, catalog.ColorMurderClue, true)

	pending := []notes.Note{
		ids.New(notes.MurderWeapon, weapon,
			notes.Plain(gotext.Get("There is ")),
			notes.Highlight(catalog.WeaponTrace(weapon)),
			notes.Plain(gotext.Get(" on the ")),
			notes.Colored(weapon, catalog.ColorMurderClue),
			notes.Plain(".")),
	}
	if victim.HasHairTrace() {
		pending = append(pending, ids.New(notes.EvidenceHair, victim.HairFound,
			notes.Plain(gotext.Get("A ")),
			notes.Highlight(gotext.Get("%s hair", victim.HairFound)),
			notes.Plain(gotext.Get(" is stuck to the ")),
			notes.Colored(weapon, catalog.ColorMurderClue),
			notes.Plain(".")))
	}

	clue.Markers = levelgen.PlaceMarkers(src, clue.Bounds(), pending, cfg.MarkerAttempts, cfg.logger())
	return clue
}
