package advanced

import (
	"math"

	"github.com/pkg/errors"
)

// Check the caller contract for the intersection test: at least one vertex,
// no nil vertices, and only finite coordinates. Convexity is not checked here,
// see IsConvex.
func (poly Polygon) Validate() error {
	if len(poly.Points) == 0 {
		return errors.Wrap(ErrInvalidInput, "polygon has no vertices")
	}
	for i, p := range poly.Points {
		if p == nil {
			return errors.Wrapf(ErrInvalidInput, "vertex %d is nil", i)
		}
		if !p.IsFinite() {
			return errors.Wrapf(ErrInvalidInput, "vertex %d is not finite: %v", i, *p)
		}
	}
	return nil
}

// Mean of the vertices. For a convex polygon this always lies inside it.
func (poly Polygon) Centroid() Point {
	var sum Point
	for _, p := range poly.Points {
		sum = sum.Add(*p)
	}
	return sum.Scale(1 / float64(len(poly.Points)))
}

// Shoelace area. Positive for counterclockwise polygons.
func (poly Polygon) SignedArea() float64 {
	var area float64
	for i, p := range poly.Points {
		q := poly.Points[CircularIndex(i+1, len(poly.Points))]
		area += Cross(*p, *q)
	}
	return area / 2
}

func (poly Polygon) IsCCW() bool {
	return poly.SignedArea() > 0
}

// A polygon is convex if every turn goes the same way. Colinear vertices are
// allowed. Fewer than three vertices is treated as (degenerately) convex.
func (poly Polygon) IsConvex() bool {
	n := len(poly.Points)
	if n < 3 {
		return true
	}
	var sign float64
	for i := range poly.Points {
		a := *poly.Points[i]
		b := *poly.Points[CircularIndex(i+1, n)]
		c := *poly.Points[CircularIndex(i+2, n)]
		turn := Cross(b.Sub(a), c.Sub(b))
		if Equal(turn, 0) {
			continue
		}
		if sign == 0 {
			sign = math.Copysign(1, turn)
		} else if sign*turn < 0 {
			return false
		}
	}
	return true
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Copy of the polygon moved by offset. The receiver's points are untouched.
func (poly Polygon) Translate(offset Point) Polygon {
	newPoly := Polygon{Points: make([]*Point, len(poly.Points))}
	for i, p := range poly.Points {
		moved := p.Add(offset)
		newPoly.Points[i] = &moved
	}
	return newPoly
}

// Axis aligned bounds of the polygon as min and max corners.
func (poly Polygon) Bounds() (min, max Point) {
	min = Point{math.Inf(1), math.Inf(1)}
	max = Point{math.Inf(-1), math.Inf(-1)}
	for _, p := range poly.Points {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
