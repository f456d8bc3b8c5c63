package notes

import (
	"slices"
)

// Connection links two notes under a connection type. Presenting both ends
// together reveals Note.
type Connection struct {
	From ID
	To   ID
	Type ConnectionType
	Note Note
}

// Links reports whether the connection joins a and b, in either order.
func (c Connection) Links(a, b ID) bool {
	return (c.From == a && c.To == b) || (c.From == b && c.To == a)
}

// Connections is the pool of undiscovered connections of a story.
// Each connection can be consumed exactly once.
type Connections []Connection

// Take removes and returns the first connection whose two ends both satisfy
// selected. Returns false if none does.
func (cs *Connections) Take(selected func(ID) bool) (Connection, bool) {
	for i, c := range *cs {
		if selected(c.From) && selected(c.To) {
			*cs = slices.Delete(*cs, i, i+1)
			return c, true
		}
	}
	return Connection{}, false
}

// OfType returns the connections of type t.
func (cs Connections) OfType(t ConnectionType) Connections {
	var out Connections
	for _, c := range cs {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}

// Touching returns the connections with id at either end.
func (cs Connections) Touching(id ID) Connections {
	var out Connections
	for _, c := range cs {
		if c.From == id || c.To == id {
			out = append(out, c)
		}
	}
	return out
}
