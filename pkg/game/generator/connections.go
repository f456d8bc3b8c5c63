package generator

import (
	"github.com/leonelquinteros/gotext"

	"noir/pkg/game/catalog"
	"noir/pkg/game/entities"
	"noir/pkg/game/notes"
)

// Connections pairs every tagged marker on the victim's body with every clue
// marker of the same connection type. Matching is by type only.
func Connections(ids *notes.IDAllocator, victim *entities.Victim, clues []*entities.Clue) notes.Connections {
	var pool notes.Connections
	if victim.Body == nil {
		return pool
	}
	for _, bm := range victim.Body.Markers {
		if !bm.Note.Tagged() {
			continue
		}
		for _, c := range clues {
			for _, cm := range c.Markers {
				if cm.Note.Connection != bm.Note.Connection {
					continue
				}
				pool = append(pool, notes.Connection{
					From: bm.Note.ID,
					To:   cm.Note.ID,
					Type: bm.Note.Connection,
					Note: clueDeduction(ids, bm.Note.Connection, c),
				})
			}
		}
	}
	return pool
}

// Testimony pairs every piece of hair or shoe evidence with each suspect
// testimony note of the same type asserting the same trace.
func Testimony(ids *notes.IDAllocator, victim *entities.Victim, clues []*entities.Clue, suspects []*entities.Suspect) notes.Connections {
	var evidence []notes.Note
	displays := clues
	if victim.Body != nil {
		displays = append([]*entities.Clue{victim.Body}, clues...)
	}
	for _, c := range displays {
		for _, m := range c.Markers {
			if t := m.Note.Connection; t == notes.EvidenceHair || t == notes.EvidenceShoeSize {
				evidence = append(evidence, m.Note)
			}
		}
	}

	var pool notes.Connections
	for _, e := range evidence {
		for _, s := range suspects {
			for _, n := range s.Testimony() {
				if n.Connection != e.Connection || n.Detail != e.Detail {
					continue
				}
				pool = append(pool, notes.Connection{
					From: e.ID,
					To:   n.ID,
					Type: e.Connection,
					Note: suspectDeduction(ids, e, s),
				})
			}
		}
	}
	return pool
}

func clueDeduction(ids *notes.IDAllocator, t notes.ConnectionType, c *entities.Clue) notes.Note {
	if t == notes.MurderWeapon {
		return ids.New(notes.ConnectionNone, c.Name,
			notes.Plain(gotext.Get("The murder weapon must have been the ")),
			notes.Colored(c.Name, catalog.ColorDeduction),
			notes.Plain("."))
	}
	return ids.New(notes.ConnectionNone, c.Name,
		notes.Plain(gotext.Get("The body and the ")),
		notes.Colored(c.Name, catalog.ColorDeduction),
		notes.Plain(gotext.Get(" tell the same story.")))
}

func suspectDeduction(ids *notes.IDAllocator, evidence notes.Note, s *entities.Suspect) notes.Note {
	var trace string
	switch evidence.Connection {
	case notes.EvidenceHair:
		trace = gotext.Get("The %s hair", evidence.Detail)
	default:
		trace = gotext.Get("The %s shoe print", evidence.Detail)
	}
	return ids.New(notes.ConnectionNone, s.Name,
		notes.Plain(trace),
		notes.Plain(gotext.Get(" could belong to ")),
		notes.Colored(s.Name, catalog.ColorDeduction),
		notes.Plain("."))
}
