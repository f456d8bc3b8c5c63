package notes

import (
	"slices"
	"strings"
	"testing"
)

func TestIDAllocator_DistinctIDsForIdenticalContent(t *testing.T) {
	ids := NewIDAllocator()
	a := ids.New(MurderWeapon, "knife", Plain("There is "), Highlight("blood"), Plain(" on the knife."))
	b := ids.New(MurderWeapon, "knife", Plain("There is "), Highlight("blood"), Plain(" on the knife."))

	if a.ID == b.ID {
		t.Errorf("identical notes share ID %d", a.ID)
	}
	if a.Text() != b.Text() {
		t.Errorf("texts differ: %q vs %q", a.Text(), b.Text())
	}
	if a.Equal(b) {
		t.Error("notes with different IDs are equal")
	}
	if !a.Equal(a) {
		t.Error("a note is not equal to itself")
	}
}

func TestIDAllocator_IndependentAllocators(t *testing.T) {
	first := NewIDAllocator()
	second := NewIDAllocator()
	first.Next()
	first.Next()
	if got := second.Next(); got != 1 {
		t.Errorf("second allocator started at %d, want 1", got)
	}
}

func TestNote_TextAndHighlight(t *testing.T) {
	n := NewIDAllocator().New(EvidenceHair, "red",
		Plain("A strand of "), Highlight("red hair"), Plain(" is caught on the knife."))

	if got := n.Text(); got != "A strand of red hair is caught on the knife." {
		t.Errorf("Text = %q", got)
	}
	if got := n.Highlighted(); got != "red hair" {
		t.Errorf("Highlighted = %q, want red hair", got)
	}
	if !n.Tagged() {
		t.Error("hair note is not tagged")
	}
	if !strings.Contains(n.Styled(), "red hair") {
		t.Errorf("Styled lost the highlight: %q", n.Styled())
	}
}

func TestConnectionType_String(t *testing.T) {
	if got := MurderWeapon.String(); got != "MurderWeapon" {
		t.Errorf("MurderWeapon.String() = %q", got)
	}
	if got := ConnectionNone.String(); got != "None" {
		t.Errorf("ConnectionNone.String() = %q", got)
	}
	types := ConnectionTypes()
	if len(types) != 3 || slices.Contains(types, ConnectionNone) {
		t.Errorf("ConnectionTypes() = %v, want the three real types", types)
	}
}

func TestConnection_Links(t *testing.T) {
	c := Connection{From: 1, To: 2}
	if !c.Links(1, 2) || !c.Links(2, 1) {
		t.Error("connection does not link its ends in both orders")
	}
	if c.Links(1, 3) {
		t.Error("connection links an unrelated note")
	}
}

func TestConnections_OfTypeAndTouching(t *testing.T) {
	pool := Connections{
		{From: 1, To: 2, Type: MurderWeapon},
		{From: 3, To: 4, Type: EvidenceHair},
		{From: 3, To: 5, Type: EvidenceHair},
	}
	tests := []struct {
		name string
		got  Connections
		want int
	}{
		{name: "hair", got: pool.OfType(EvidenceHair), want: 2},
		{name: "shoes", got: pool.OfType(EvidenceShoeSize), want: 0},
		{name: "touching 3", got: pool.Touching(3), want: 2},
		{name: "touching 2", got: pool.Touching(2), want: 1},
	}
	for _, tt := range tests {
		if len(tt.got) != tt.want {
			t.Errorf("%s: got %d connections, want %d", tt.name, len(tt.got), tt.want)
		}
	}
}

// fixture builds a pool with one connection per type and a tracker that has
// discovered both ends of every connection.
func fixture(t *testing.T) (*Tracker, *Connections, []Note) {
	t.Helper()
	ids := NewIDAllocator()
	wound := ids.New(MurderWeapon, "knife", Plain("The victim shows "), Highlight("stab wounds"), Plain("."))
	blood := ids.New(MurderWeapon, "knife", Plain("There is "), Highlight("blood"), Plain(" on the knife."))
	hair := ids.New(EvidenceHair, "red", Plain("A strand of "), Highlight("red hair"), Plain("."))
	adam := ids.New(EvidenceHair, "red", Highlight("Adam"), Plain(" has red hair."))
	deduced := ids.New(ConnectionNone, "knife", Plain("The murder weapon must have been the "), Highlight("knife"), Plain("."))
	hairDeduced := ids.New(ConnectionNone, "Adam", Highlight("Adam"), Plain("'s hair matches."))

	pool := Connections{
		{From: wound.ID, To: blood.ID, Type: MurderWeapon, Note: deduced},
		{From: hair.ID, To: adam.ID, Type: EvidenceHair, Note: hairDeduced},
	}
	tr := NewTracker()
	for _, n := range []Note{wound, blood, hair, adam} {
		if !tr.Discover(n) {
			t.Fatalf("note %d already discovered", n.ID)
		}
	}
	return tr, &pool, []Note{wound, blood, hair, adam}
}

func TestTracker_DiscoverIsIdempotent(t *testing.T) {
	tr, _, found := fixture(t)
	size := tr.Len()

	if tr.Discover(found[0]) {
		t.Error("rediscovering a note reported it as new")
	}
	if tr.Len() != size {
		t.Errorf("Len = %d after rediscovery, want %d", tr.Len(), size)
	}
	if !tr.Has(found[0].ID) {
		t.Error("discovered note missing")
	}

	got, ok := tr.Note(found[1].ID)
	if !ok || !got.Equal(found[1]) {
		t.Errorf("Note(%d) = %+v, %v", found[1].ID, got, ok)
	}
}

func TestTracker_SelectRequiresDiscovery(t *testing.T) {
	tr := NewTracker()
	if tr.Select(99) {
		t.Error("selected an undiscovered note")
	}
	if len(tr.Selected()) != 0 {
		t.Errorf("Selected = %v, want none", tr.Selected())
	}
}

func TestTracker_SelectDeselectToggle(t *testing.T) {
	tr, _, found := fixture(t)

	if !tr.Select(found[2].ID) || !tr.Select(found[0].ID) {
		t.Fatal("could not select discovered notes")
	}
	if got, want := tr.Selected(), []ID{found[0].ID, found[2].ID}; !slices.Equal(got, want) {
		t.Errorf("Selected = %v, want %v", got, want)
	}
	if !tr.MatchPending() {
		t.Error("two selected notes should make a match pending")
	}

	tr.Deselect(found[2].ID)
	if tr.MatchPending() {
		t.Error("match still pending with one note selected")
	}

	if !tr.Toggle(found[3].ID) || !tr.IsSelected(found[3].ID) {
		t.Error("Toggle did not select")
	}
	if tr.Toggle(found[3].ID) || tr.IsSelected(found[3].ID) {
		t.Error("second Toggle did not deselect")
	}
}

func TestTracker_AttemptMatch(t *testing.T) {
	tests := []struct {
		name        string
		pick        []int
		wantMatched bool
		wantMessage string
		wantPool    int
	}{
		{name: "weapon pair", pick: []int{0, 1}, wantMatched: true, wantMessage: "The murder weapon must have been the knife.", wantPool: 1},
		{name: "hair pair in reverse order", pick: []int{3, 2}, wantMatched: true, wantMessage: "Adam's hair matches.", wantPool: 1},
		{name: "unrelated pair", pick: []int{0, 2}, wantMatched: false, wantMessage: "No connection found.", wantPool: 2},
		{name: "three notes containing a pair", pick: []int{0, 2, 1}, wantMatched: true, wantMessage: "The murder weapon must have been the knife.", wantPool: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, pool, found := fixture(t)
			for _, i := range tt.pick {
				if !tr.Select(found[i].ID) {
					t.Fatalf("could not select note %d", found[i].ID)
				}
			}

			res := tr.AttemptMatch(pool)

			if res.Matched != tt.wantMatched {
				t.Errorf("Matched = %v, want %v", res.Matched, tt.wantMatched)
			}
			if res.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", res.Message, tt.wantMessage)
			}
			if len(*pool) != tt.wantPool {
				t.Errorf("pool has %d connections, want %d", len(*pool), tt.wantPool)
			}
			if len(tr.Selected()) != 0 {
				t.Errorf("selection %v not cleared after the attempt", tr.Selected())
			}
			if tr.CanAccuse() != tt.wantMatched {
				t.Errorf("CanAccuse = %v, want %v", tr.CanAccuse(), tt.wantMatched)
			}
			if tt.wantMatched && !tr.Has(res.Note.ID) {
				t.Error("synthesized note was not discovered")
			}
		})
	}
}

func TestTracker_AttemptMatchNeedsTwoNotes(t *testing.T) {
	tr, pool, found := fixture(t)
	tr.Select(found[0].ID)

	res := tr.AttemptMatch(pool)

	if res.Matched {
		t.Error("matched with a single note")
	}
	if len(*pool) != 2 {
		t.Errorf("pool has %d connections, want 2", len(*pool))
	}
	if got := tr.Selected(); !slices.Equal(got, []ID{found[0].ID}) {
		t.Errorf("idle attempt changed the selection to %v", got)
	}
}

func TestTracker_ConnectionConsumedOnce(t *testing.T) {
	tr, pool, found := fixture(t)

	first := tr.Match(pool, found[0].ID, found[1].ID)
	if !first.Matched {
		t.Fatalf("first match failed: %s", first.Message)
	}
	for _, c := range *pool {
		if c.Links(first.Connection.From, first.Connection.To) {
			t.Errorf("consumed connection %d-%d still in the pool", c.From, c.To)
		}
	}

	second := tr.Match(pool, found[0].ID, found[1].ID)
	if second.Matched || second.Message != "No connection found." {
		t.Errorf("second match = %v %q, want no connection", second.Matched, second.Message)
	}
}

func TestTracker_CanAccuseLatches(t *testing.T) {
	tr, pool, found := fixture(t)
	if tr.CanAccuse() {
		t.Fatal("fresh tracker can accuse")
	}

	tr.Match(pool, found[0].ID, found[1].ID)
	if !tr.CanAccuse() {
		t.Fatal("weapon match did not enable accusing")
	}

	// A later failed match does not revoke accusing.
	tr.Match(pool, found[0].ID, found[3].ID)
	if !tr.CanAccuse() {
		t.Error("failed match revoked accusing")
	}
}
