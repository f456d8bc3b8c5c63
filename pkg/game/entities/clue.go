// Package entities defines the people and objects of a mystery.
package entities

import (
	"github.com/gookit/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"noir/pkg/engine/world"
	"noir/pkg/game/catalog"
	"noir/pkg/game/notes"
)

// ActivationRadius is how close (Chebyshev) the cursor must be to a marker to activate it.
const ActivationRadius = 1

// MinMarkerSpacing is the Chebyshev distance two markers of one display must exceed.
const MinMarkerSpacing = 2

// Marker is a hotspot on a clue's display that reveals a note when examined.
type Marker struct {
	Pos      world.Point
	Note     notes.Note
	Revealed bool
}

// Clue is an examinable object: a weapon lying around, or the victim's body.
type Clue struct {
	Name           string
	Color          color.RGBColor
	IsMurderWeapon bool
	Display        []string
	Markers        []Marker
}

// NewClue creates a clue with the display registered for name.
func NewClue(name string, c color.RGBColor, isMurderWeapon bool) *Clue {
	return &Clue{
		Name:           name,
		Color:          c,
		IsMurderWeapon: isMurderWeapon,
		Display:        catalog.Display(name),
	}
}

// Heading returns the clue name as shown at the top of the examination panel.
func (c *Clue) Heading() string {
	return cases.Upper(language.English).String(c.Name)
}

// Bounds returns the area of the examination panel covered by the display.
func (c *Clue) Bounds() world.Box {
	return catalog.DisplayBounds(c.Display)
}

// MarkerAt returns the index of the marker within activation range of p.
// When several are in range the closest wins, ties going to the earliest.
func (c *Clue) MarkerAt(p world.Point) (int, bool) {
	best, bestDist := -1, ActivationRadius+1
	for i, m := range c.Markers {
		if d := m.Pos.Chebyshev(p); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, best >= 0
}

// RevealMarker flags marker i as revealed and returns its note.
// Revealing an already revealed marker is a no-op. Returns false if i is out of range.
func (c *Clue) RevealMarker(i int) (notes.Note, bool) {
	if i < 0 || i >= len(c.Markers) {
		return notes.Note{}, false
	}
	c.Markers[i].Revealed = true
	return c.Markers[i].Note, true
}

// MarkerWith returns the index of the first marker whose note has the given connection type.
func (c *Clue) MarkerWith(t notes.ConnectionType) (int, bool) {
	for i, m := range c.Markers {
		if m.Note.Connection == t {
			return i, true
		}
	}
	return -1, false
}

// Revealed returns the number of revealed markers.
func (c *Clue) Revealed() int {
	n := 0
	for _, m := range c.Markers {
		if m.Revealed {
			n++
		}
	}
	return n
}

// FullyExamined reports whether every marker has been revealed.
func (c *Clue) FullyExamined() bool {
	return c.Revealed() == len(c.Markers)
}

// Positions returns the marker positions in order.
func (c *Clue) Positions() []world.Point {
	out := make([]world.Point, len(c.Markers))
	for i, m := range c.Markers {
		out[i] = m.Pos
	}
	return out
}
