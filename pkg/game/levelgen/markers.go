// Package levelgen places examination markers on clue displays.
package levelgen

import (
	"log/slog"

	"noir/pkg/engine/random"
	"noir/pkg/engine/world"
	"noir/pkg/game/catalog"
	"noir/pkg/game/entities"
	"noir/pkg/game/notes"
)

// DefaultAttempts is the number of random candidates tried per marker before
// falling back to a grid scan.
const DefaultAttempts = 1000

// PanelBounds is the whole examination panel.
var PanelBounds = world.Bx(0, 0, catalog.ExamPanelWidth, catalog.ExamPanelHeight)

// PlaceMarkers creates one marker per note inside bounds, keeping every pair of
// markers more than entities.MinMarkerSpacing apart.
//
// Each marker first tries up to attempts uniform random candidates inside bounds.
// If none fits, the box is scanned row by row, then the whole panel. If the panel
// has no free spot either, the spot farthest from the placed markers is used and a
// warning is logged, so placement always terminates.
func PlaceMarkers(src random.Source, bounds world.Box, pending []notes.Note, attempts int, logger *slog.Logger) []entities.Marker {
	if attempts <= 0 {
		attempts = DefaultAttempts
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	markers := make([]entities.Marker, 0, len(pending))
	placed := make([]world.Point, 0, len(pending))

	for _, note := range pending {
		pos, ok := findRandomSpot(src, bounds, placed, attempts)
		if !ok {
			pos, ok = findGridSpot(bounds, placed)
		}
		if !ok {
			logger.Warn("marker does not fit on display, scanning whole panel",
				slog.Int("note_id", int(note.ID)),
				slog.Int("placed", len(placed)))
			pos, ok = findGridSpot(PanelBounds, placed)
		}
		if !ok {
			pos = bestEffortSpot(bounds, placed)
			logger.Warn("no spaced spot left for marker",
				slog.Int("note_id", int(note.ID)),
				slog.Int("x", pos.X),
				slog.Int("y", pos.Y))
		}

		placed = append(placed, pos)
		markers = append(markers, entities.Marker{Pos: pos, Note: note})
	}

	return markers
}

// WellSpaced reports whether every pair of points is more than
// entities.MinMarkerSpacing apart.
func WellSpaced(points []world.Point) bool {
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if points[i].Chebyshev(points[j]) <= entities.MinMarkerSpacing {
				return false
			}
		}
	}
	return true
}

func farEnough(p world.Point, placed []world.Point) bool {
	for _, q := range placed {
		if p.Chebyshev(q) <= entities.MinMarkerSpacing {
			return false
		}
	}
	return true
}

// findRandomSpot samples candidates uniformly inside box.
func findRandomSpot(src random.Source, box world.Box, placed []world.Point, attempts int) (world.Point, bool) {
	if box.Empty() {
		return world.Point{}, false
	}
	for range attempts {
		p := world.Pt(
			random.Range(src, box.Min.X, box.Max.X),
			random.Range(src, box.Min.Y, box.Max.Y),
		)
		if farEnough(p, placed) {
			return p, true
		}
	}
	return world.Point{}, false
}

// findGridSpot returns the first spaced cell of box in row-major order.
func findGridSpot(box world.Box, placed []world.Point) (world.Point, bool) {
	var (
		found world.Point
		ok    bool
	)
	box.ForEachPoint(func(p world.Point) {
		if !ok && farEnough(p, placed) {
			found, ok = p, true
		}
	})
	return found, ok
}

// bestEffortSpot returns the cell of box (or the panel, if box is empty) whose
// nearest placed marker is farthest away.
func bestEffortSpot(box world.Box, placed []world.Point) world.Point {
	if box.Empty() {
		box = PanelBounds
	}
	best, bestDist := box.Center(), -1
	box.ForEachPoint(func(p world.Point) {
		nearest := catalog.ExamPanelWidth + catalog.ExamPanelHeight
		for _, q := range placed {
			if d := p.Chebyshev(q); d < nearest {
				nearest = d
			}
		}
		if nearest > bestDist {
			best, bestDist = p, nearest
		}
	})
	return best
}
