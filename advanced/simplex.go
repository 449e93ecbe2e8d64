package advanced

import (
	"fmt"
	"strings"
)

// A simplex in the Minkowski difference: one to three points, stored in
// insertion order so the newest point is always last. Evicting a point keeps
// the relative order of the others, which the line and triangle cases rely on
// to know which point is which.
type Simplex struct {
	points [3]Point
	count  int
}

// The structural view of a simplex. Only Line and Triangle occur while
// evolving; a single point is never evolved.
type Shape interface {
	isShape()
}

// Two points. A is the newest.
type Line struct {
	B, A Point
}

// Three points. C is the oldest, A the newest.
type Triangle struct {
	C, B, A Point
}

func (Line) isShape()     {}
func (Triangle) isShape() {}

func NewSimplex(points ...Point) *Simplex {
	s := &Simplex{}
	for _, p := range points {
		s.Push(p)
	}
	return s
}

func (s *Simplex) Len() int {
	return s.count
}

// Copy of the points, oldest first.
func (s *Simplex) Points() []Point {
	return append([]Point(nil), s.points[:s.count]...)
}

func (s *Simplex) Last() Point {
	if s.count == 0 {
		fatalf(ErrInternal, "last point of empty simplex")
	}
	return s.points[s.count-1]
}

func (s *Simplex) Push(p Point) {
	if s.count == len(s.points) {
		fatalf(ErrInternal, "simplex overflow pushing %v onto %s", p, s)
	}
	s.points[s.count] = p
	s.count++
}

// Remove the point at index i, shifting newer points down so order is kept.
func (s *Simplex) Evict(i int) {
	if i < 0 || i >= s.count {
		fatalf(ErrInternal, "evicting index %d from simplex of %d points", i, s.count)
	}
	copy(s.points[i:s.count], s.points[i+1:s.count])
	s.count--
	s.points[s.count] = Point{}
}

func (s *Simplex) Shape() Shape {
	switch s.count {
	case 2:
		return Line{B: s.points[0], A: s.points[1]}
	case 3:
		return Triangle{C: s.points[0], B: s.points[1], A: s.points[2]}
	}
	fatalf(ErrInternal, "simplex with %d points has no evolvable shape", s.count)
	return nil
}

// Given the simplex after a new point was pushed, decide whether it encloses
// the origin. If not, the simplex is reduced to the feature nearest the origin
// and the next search direction is returned.
func (s *Simplex) Evolve(direction Point) (next Point, enclosed bool) {
	switch shape := s.Shape().(type) {
	case Line:
		return evolveLine(shape), false
	case Triangle:
		return s.evolveTriangle(shape, direction)
	}
	fatalf(ErrInternal, "unknown simplex shape %T", s.Shape())
	return direction, false
}

// A segment cannot enclose a point in the plane, so this only picks the
// direction perpendicular to the segment, facing the origin.
func evolveLine(line Line) Point {
	ab := line.B.Sub(line.A)
	ao := Origin.Sub(line.A)
	return TripleCross(ab, ao)
}

// The origin is known to be beyond edge BC (A was found by searching past it),
// so only the regions of edges AB and AC need testing. Anything else,
// including boundary ties, counts as enclosed.
func (s *Simplex) evolveTriangle(tri Triangle, direction Point) (Point, bool) {
	ab := tri.B.Sub(tri.A)
	ac := tri.C.Sub(tri.A)
	ao := Origin.Sub(tri.A)
	abPerp := TripleCross(ab, ao)
	acPerp := TripleCross(ac, ao)

	abOut := abPerp.Dot(ac) < 0
	acOut := acPerp.Dot(ab) < 0

	if abOut && !acOut {
		// Origin is in the region of edge AB. Drop C.
		s.Evict(0)
		return abPerp, false
	} else if !abOut && acOut {
		// Origin is in the region of edge AC. Drop B.
		s.Evict(1)
		return acPerp, false
	}
	return direction, true
}

func (s *Simplex) String() string {
	var parts []string
	for _, p := range s.points[:s.count] {
		parts = append(parts, p.String())
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, " "))
}
