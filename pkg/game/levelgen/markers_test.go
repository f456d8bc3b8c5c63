package levelgen

import (
	"log/slog"
	"slices"
	"testing"

	"noir/pkg/engine/random"
	"noir/pkg/engine/world"
	"noir/pkg/game/catalog"
	"noir/pkg/game/entities"
	"noir/pkg/game/notes"
)

func pendingNotes(n int) []notes.Note {
	ids := notes.NewIDAllocator()
	out := make([]notes.Note, n)
	for i := range out {
		out[i] = ids.New(notes.ConnectionNone, "", notes.Plain("note"))
	}
	return out
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func positions(markers []entities.Marker) []world.Point {
	points := make([]world.Point, len(markers))
	for i, m := range markers {
		points[i] = m.Pos
	}
	return points
}

func TestPlaceMarkers_SpacedAndInsideDisplay(t *testing.T) {
	for _, key := range append(slices.Clone(catalog.Weapons), catalog.BodyKey) {
		t.Run(key, func(t *testing.T) {
			bounds := catalog.DisplayBounds(catalog.Display(key))
			for seed := int64(1); seed <= 50; seed++ {
				markers := PlaceMarkers(random.New(seed), bounds, pendingNotes(2), DefaultAttempts, discardLogger())
				if len(markers) != 2 {
					t.Fatalf("seed %d: placed %d markers, want 2", seed, len(markers))
				}
				for _, m := range markers {
					if !bounds.Contains(m.Pos) {
						t.Errorf("seed %d: marker %v outside %v", seed, m.Pos, bounds)
					}
					if m.Revealed {
						t.Errorf("seed %d: marker %v placed revealed", seed, m.Pos)
					}
				}
				if points := positions(markers); !WellSpaced(points) {
					t.Errorf("seed %d: markers too close: %v", seed, points)
				}
			}
		})
	}
}

func TestPlaceMarkers_KeepsNoteOrder(t *testing.T) {
	pending := pendingNotes(3)
	markers := PlaceMarkers(random.New(9), world.Bx(10, 10, 20, 10), pending, DefaultAttempts, discardLogger())
	for i, m := range markers {
		if m.Note.ID != pending[i].ID {
			t.Errorf("marker %d carries note %d, want %d", i, m.Note.ID, pending[i].ID)
		}
	}
}

func TestPlaceMarkers_FallbackKeepsSpacing(t *testing.T) {
	// A 4x1 box fits two spaced markers only at its ends, which a single random
	// attempt rarely finds.
	box := world.Bx(0, 5, 4, 1)
	for seed := int64(1); seed <= 20; seed++ {
		markers := PlaceMarkers(random.New(seed), box, pendingNotes(2), 1, discardLogger())
		if len(markers) != 2 {
			t.Fatalf("seed %d: placed %d markers, want 2", seed, len(markers))
		}
		if points := positions(markers); !WellSpaced(points) {
			t.Errorf("seed %d: markers too close: %v", seed, points)
		}
		if !box.Contains(markers[0].Pos) {
			t.Errorf("seed %d: first marker %v outside %v", seed, markers[0].Pos, box)
		}
		if !PanelBounds.Contains(markers[1].Pos) {
			t.Errorf("seed %d: second marker %v off the panel", seed, markers[1].Pos)
		}
	}
}

func TestFindGridSpot(t *testing.T) {
	box := world.Bx(0, 5, 4, 1)

	if p, ok := findGridSpot(box, []world.Point{world.Pt(0, 5)}); !ok || p != world.Pt(3, 5) {
		t.Errorf("findGridSpot = %v, %v; want (3,5), true", p, ok)
	}
	if p, ok := findGridSpot(box, []world.Point{world.Pt(1, 5)}); ok {
		t.Errorf("findGridSpot found %v in a box with no spaced cell", p)
	}
}

func TestPlaceMarkers_PanelFallbackForTinyDisplay(t *testing.T) {
	box := world.Bx(30, 15, 1, 1)
	markers := PlaceMarkers(random.New(4), box, pendingNotes(3), 10, discardLogger())
	if len(markers) != 3 {
		t.Fatalf("placed %d markers, want 3", len(markers))
	}
	points := positions(markers)
	if !WellSpaced(points) {
		t.Errorf("markers too close: %v", points)
	}
	for _, p := range points {
		if !PanelBounds.Contains(p) {
			t.Errorf("marker %v off the panel", p)
		}
	}
}

func TestPlaceMarkers_EmptyDisplayTerminates(t *testing.T) {
	markers := PlaceMarkers(random.New(2), world.Box{}, pendingNotes(2), DefaultAttempts, nil)
	if len(markers) != 2 {
		t.Fatalf("placed %d markers, want 2", len(markers))
	}
	if points := positions(markers); !WellSpaced(points) {
		t.Errorf("markers too close: %v", points)
	}
}

func TestPlaceMarkers_OvercrowdedPanelTerminates(t *testing.T) {
	// More markers than spaced cells on the panel: placement must still finish.
	cells := (catalog.ExamPanelWidth/3 + 1) * (catalog.ExamPanelHeight/3 + 1)
	markers := PlaceMarkers(random.New(5), world.Bx(0, 0, 3, 3), pendingNotes(cells+2), 5, discardLogger())
	if len(markers) != cells+2 {
		t.Errorf("placed %d markers, want %d", len(markers), cells+2)
	}
}

func TestWellSpaced(t *testing.T) {
	tests := []struct {
		name   string
		points []world.Point
		want   bool
	}{
		{name: "none", points: nil, want: true},
		{name: "three apart", points: []world.Point{world.Pt(0, 0), world.Pt(3, 0)}, want: true},
		{name: "diagonal two apart", points: []world.Point{world.Pt(0, 0), world.Pt(2, 2)}, want: false},
	}
	for _, tt := range tests {
		if got := WellSpaced(tt.points); got != tt.want {
			t.Errorf("%s: WellSpaced(%v) = %v, want %v", tt.name, tt.points, got, tt.want)
		}
	}
}
