package entities

import (
	"github.com/gookit/color"

	"noir/pkg/game/notes"
)

// DialogueOption is one fixed question the player can put to a suspect.
type DialogueOption struct {
	Prompt   string
	Response string
	// Unlocks is the testimony note the answer adds to the player's notes, if any.
	Unlocks *notes.Note
}

// Suspect is a person who may have committed the murder.
type Suspect struct {
	Name      string
	Age       int
	Color     color.RGBColor
	IsKiller  bool
	HairColor string
	ShoeSize  string
	Dialogue  []DialogueOption
}

// Glyph returns the map glyph of the suspect: the first letter of the name.
func (s *Suspect) Glyph() rune {
	for _, r := range s.Name {
		return r
	}
	return '?'
}

// Testimony returns the notes unlocked by the suspect's dialogue.
func (s *Suspect) Testimony() []notes.Note {
	var out []notes.Note
	for _, opt := range s.Dialogue {
		if opt.Unlocks != nil {
			out = append(out, *opt.Unlocks)
		}
	}
	return out
}
