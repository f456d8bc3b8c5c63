package generator

import (
	"github.com/leonelquinteros/gotext"

	"noir/pkg/engine/random"
	"noir/pkg/game/catalog"
	"noir/pkg/game/entities"
	"noir/pkg/game/levelgen"
	"noir/pkg/game/notes"
)

// Victim draws the murdered person and the markers on the body: the cause of
// death, and the shoe print next to it when one was left.
func Victim(src random.Source, ids *notes.IDAllocator, cfg Config) *entities.Victim {
	v := &entities.Victim{
		Name:       random.Pick(src, catalog.VictimNames),
		Age:        random.Range(src, catalog.AgeMin, catalog.AgeMax),
		WeaponUsed: random.Pick(src, catalog.Weapons),
		HairFound:  random.Pick(src, catalog.HairTraces),
		ShoePrint:  random.Pick(src, catalog.ShoeTraces),
	}

	pending := []notes.Note{
		ids.New(notes.MurderWeapon, v.WeaponUsed,
			notes.Colored(v.Name, catalog.ColorBody),
			notes.Plain(gotext.Get(" shows ")),
			notes.Highlight(catalog.CauseOfDeath(v.WeaponUsed)),
			notes.Plain(".")),
	}
	if v.HasShoeTrace() {
		pending = append(pending, ids.New(notes.EvidenceShoeSize, v.ShoePrint,
			notes.Plain(gotext.Get("There is a ")),
			notes.Highlight(gotext.Get("%s shoe print", v.ShoePrint)),
			notes.Plain(gotext.Get(" next to the body."))))
	}

	body := entities.NewClue(catalog.BodyKey, catalog.ColorBody, false)
	body.Markers = levelgen.PlaceMarkers(src, body.Bounds(), pending, cfg.MarkerAttempts, cfg.logger())
	v.Body = body

	return v
}
