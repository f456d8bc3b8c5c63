// Package notes models the facts a detective collects and the connections between them.
//
// A Note is an atomic fact made of colored text fragments. Notes tagged with a
// ConnectionType can take part in a deduction: presenting two notes joined by a
// Connection yields the connection's synthesized note.
package notes

import (
	"strings"

	"github.com/gookit/color"

	"noir/pkg/game/catalog"
)

// ID identifies a note within one story.
type ID uint64

// IDAllocator hands out note IDs. Each story generation owns one, so IDs never
// depend on what other stories or tests did before.
type IDAllocator struct {
	next ID
}

// NewIDAllocator returns an allocator whose first ID is 1.
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{next: 1}
}

// Next returns a fresh ID.
func (a *IDAllocator) Next() ID {
	id := a.next
	a.next++
	return id
}

// New builds a note with a fresh ID.
func (a *IDAllocator) New(conn ConnectionType, detail string, fragments ...Fragment) Note {
	return Note{
		ID:         a.Next(),
		Fragments:  fragments,
		Connection: conn,
		Detail:     detail,
	}
}

// ConnectionType is the kind of deduction a note can take part in.
type ConnectionType int

const (
	ConnectionNone   ConnectionType = iota // Not part of any deduction
	MurderWeapon                           // Cause of death vs. traces on a weapon
	EvidenceHair                           // Hair on the weapon vs. a suspect's hair
	EvidenceShoeSize                       // Print at the scene vs. a suspect's shoes
)

// ConnectionTypes returns every taggable connection type.
func ConnectionTypes() []ConnectionType {
	return []ConnectionType{MurderWeapon, EvidenceHair, EvidenceShoeSize}
}

// String returns the name of the connection type.
func (c ConnectionType) String() string {
	switch c {
	case ConnectionNone:
		return "None"
	case MurderWeapon:
		return "MurderWeapon"
	case EvidenceHair:
		return "EvidenceHair"
	case EvidenceShoeSize:
		return "EvidenceShoeSize"
	default:
		return "Unknown"
	}
}

// Fragment is a run of text in a single color. The highlighted fragment is the
// part of a note the player clicks to link it.
type Fragment struct {
	Text        string
	Color       color.RGBColor
	Highlighted bool
}

// Plain returns an unhighlighted fragment in the default text color.
func Plain(text string) Fragment {
	return Fragment{Text: text, Color: catalog.ColorText}
}

// Highlight returns a highlighted fragment in the highlight color.
func Highlight(text string) Fragment {
	return Fragment{Text: text, Color: catalog.ColorHighlight, Highlighted: true}
}

// Colored returns an unhighlighted fragment in c.
func Colored(text string, c color.RGBColor) Fragment {
	return Fragment{Text: text, Color: c}
}

// Note is a single fact the player can discover.
type Note struct {
	ID         ID
	Fragments  []Fragment
	Connection ConnectionType
	// Detail is the trace value the note asserts, e.g. "knife" or "red".
	Detail string
}

// Tagged reports whether the note can take part in a deduction.
func (n Note) Tagged() bool {
	return n.Connection != ConnectionNone
}

// Text returns the note as plain text.
func (n Note) Text() string {
	var sb strings.Builder
	for _, f := range n.Fragments {
		sb.WriteString(f.Text)
	}
	return sb.String()
}

// Highlighted returns the text of the highlighted fragments.
func (n Note) Highlighted() string {
	var sb strings.Builder
	for _, f := range n.Fragments {
		if f.Highlighted {
			sb.WriteString(f.Text)
		}
	}
	return sb.String()
}

// Styled returns the note rendered with ANSI colors; highlighted fragments are underlined.
func (n Note) Styled() string {
	var sb strings.Builder
	for _, f := range n.Fragments {
		style := color.NewRGBStyle(f.Color)
		if f.Highlighted {
			style.AddOpts(color.OpUnderscore)
		}
		sb.WriteString(style.Sprint(f.Text))
	}
	return sb.String()
}

// Equal reports whether two notes have the same ID and the same content.
func (n Note) Equal(o Note) bool {
	if n.ID != o.ID || n.Connection != o.Connection || n.Detail != o.Detail {
		return false
	}
	if len(n.Fragments) != len(o.Fragments) {
		return false
	}
	for i := range n.Fragments {
		if n.Fragments[i] != o.Fragments[i] {
			return false
		}
	}
	return true
}
