package notes

import (
	"slices"

	"github.com/leonelquinteros/gotext"
	"github.com/zyedidia/generic/mapset"
)

// MatchResult is the outcome of presenting the selected notes together.
type MatchResult struct {
	Matched    bool
	Connection Connection // Valid when Matched
	Note       Note       // The synthesized note, valid when Matched
	Message    string     // Player-facing summary of the attempt
}

// Tracker holds the notes the player has discovered and the notes currently
// selected for linking.
//
// It is idle while fewer than two notes are selected and match-pending otherwise.
// An attempt made while match-pending always returns the tracker to idle.
type Tracker struct {
	notes     []Note
	known     mapset.Set[ID]
	selected  mapset.Set[ID]
	canAccuse bool
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		known:    mapset.New[ID](),
		selected: mapset.New[ID](),
	}
}

// Discover adds n to the player's notes. Adding a note whose ID is already known
// is a no-op; returns true only when the note is new.
func (t *Tracker) Discover(n Note) bool {
	if t.known.Has(n.ID) {
		return false
	}
	t.known.Put(n.ID)
	t.notes = append(t.notes, n)
	return true
}

// Has reports whether the note with id has been discovered.
func (t *Tracker) Has(id ID) bool {
	return t.known.Has(id)
}

// Len returns the number of discovered notes.
func (t *Tracker) Len() int {
	return len(t.notes)
}

// Notes returns the discovered notes in discovery order.
func (t *Tracker) Notes() []Note {
	return slices.Clone(t.notes)
}

// Note returns the discovered note with id.
func (t *Tracker) Note(id ID) (Note, bool) {
	for _, n := range t.notes {
		if n.ID == id {
			return n, true
		}
	}
	return Note{}, false
}

// Select marks a discovered note for linking. Unknown IDs are ignored.
func (t *Tracker) Select(id ID) bool {
	if !t.known.Has(id) {
		return false
	}
	t.selected.Put(id)
	return true
}

// Deselect removes a note from the selection.
func (t *Tracker) Deselect(id ID) {
	t.selected.Remove(id)
}

// Toggle flips the selection state of a discovered note and returns whether it is
// now selected.
func (t *Tracker) Toggle(id ID) bool {
	if t.selected.Has(id) {
		t.selected.Remove(id)
		return false
	}
	return t.Select(id)
}

// IsSelected reports whether id is in the selection.
func (t *Tracker) IsSelected(id ID) bool {
	return t.selected.Has(id)
}

// Selected returns the selected IDs in ascending order.
func (t *Tracker) Selected() []ID {
	ids := make([]ID, 0, t.selected.Size())
	t.selected.Each(func(id ID) {
		ids = append(ids, id)
	})
	slices.Sort(ids)
	return ids
}

// MatchPending reports whether enough notes are selected to attempt a match.
func (t *Tracker) MatchPending() bool {
	return t.selected.Size() >= 2
}

// ClearSelection empties the selection.
func (t *Tracker) ClearSelection() {
	t.selected = mapset.New[ID]()
}

// AttemptMatch looks for a connection in pool whose two ends are both selected.
// On success the connection is consumed, its note is discovered and accusing
// becomes possible. The selection is cleared after every attempt made with at least
// two notes selected, whatever the outcome.
func (t *Tracker) AttemptMatch(pool *Connections) MatchResult {
	if !t.MatchPending() {
		return MatchResult{Message: gotext.Get("Select at least two notes to link.")}
	}
	defer t.ClearSelection()

	conn, ok := pool.Take(t.selected.Has)
	if !ok {
		return MatchResult{Message: gotext.Get("No connection found.")}
	}

	t.Discover(conn.Note)
	t.canAccuse = true
	return MatchResult{
		Matched:    true,
		Connection: conn,
		Note:       conn.Note,
		Message:    conn.Note.Text(),
	}
}

// Match replaces the selection with ids and attempts a match.
func (t *Tracker) Match(pool *Connections, ids ...ID) MatchResult {
	t.ClearSelection()
	for _, id := range ids {
		t.Select(id)
	}
	return t.AttemptMatch(pool)
}

// CanAccuse reports whether any connection has been matched. Once true it stays true.
func (t *Tracker) CanAccuse() bool {
	return t.canAccuse
}
