// Package world provides generic 2D grid primitives shared by game packages.
package world

// Point is a cell position on a panel; X grows right, Y grows down.
type Point struct {
	X int
	Y int
}

// Pt is a convenience constructor for Point.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns the component-wise sum of two points.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns the component-wise difference of two points.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Chebyshev returns the king-move distance between two points.
func (p Point) Chebyshev(o Point) int {
	dx := abs(p.X - o.X)
	dy := abs(p.Y - o.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// Box is a half-open rectangle: Min is inclusive, Max is exclusive.
type Box struct {
	Min Point
	Max Point
}

// Bx is a convenience constructor for Box from its origin and size.
func Bx(x, y, width, height int) Box {
	return Box{Min: Pt(x, y), Max: Pt(x+width, y+height)}
}

// Width returns the number of columns in the box.
func (b Box) Width() int {
	if b.Max.X < b.Min.X {
		return 0
	}
	return b.Max.X - b.Min.X
}

// Height returns the number of rows in the box.
func (b Box) Height() int {
	if b.Max.Y < b.Min.Y {
		return 0
	}
	return b.Max.Y - b.Min.Y
}

// Empty reports whether the box contains no cells.
func (b Box) Empty() bool {
	return b.Width() == 0 || b.Height() == 0
}

// Contains reports whether p lies inside the box.
func (b Box) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X < b.Max.X && p.Y >= b.Min.Y && p.Y < b.Max.Y
}

// Intersect returns the overlap of two boxes, which may be empty.
func (b Box) Intersect(o Box) Box {
	r := Box{
		Min: Pt(max(b.Min.X, o.Min.X), max(b.Min.Y, o.Min.Y)),
		Max: Pt(min(b.Max.X, o.Max.X), min(b.Max.Y, o.Max.Y)),
	}
	if r.Empty() {
		return Box{}
	}
	return r
}

// Center returns the middle cell of the box.
func (b Box) Center() Point {
	return Pt(b.Min.X+b.Width()/2, b.Min.Y+b.Height()/2)
}

// ForEachPoint calls fn for every cell in row-major order.
func (b Box) ForEachPoint(fn func(p Point)) {
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			fn(Pt(x, y))
		}
	}
}

// CenteredIn returns a width x height box centered within a panel of the given size,
// using the same rounding as row-by-row centered printing.
func CenteredIn(panelWidth, panelHeight, width, height int) Box {
	return Bx(panelWidth/2-width/2, panelHeight/2-height/2, width, height)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
