package entities

import (
	"noir/pkg/game/catalog"
)

// Victim is the murdered person. Immutable once generated, apart from marker
// reveal state on Body.
type Victim struct {
	Name       string
	Age        int
	WeaponUsed string
	HairFound  string // catalog.None when no hair was left
	ShoePrint  string // catalog.None when no print was left
	Body       *Clue
}

// HasHairTrace reports whether a hair was found on the murder weapon.
func (v *Victim) HasHairTrace() bool {
	return v.HairFound != catalog.None
}

// HasShoeTrace reports whether a shoe print was found next to the body.
func (v *Victim) HasShoeTrace() bool {
	return v.ShoePrint != catalog.None
}
