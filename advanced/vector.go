package advanced

import (
	"fmt"
	"math"
)

const Epsilon = 1e-9

// Tolerance based float comparison. The intersection test itself uses exact
// comparisons; this is for helpers and tests.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Neg() Point {
	return Point{-p.X, -p.Y}
}

func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Unit vector in the direction of p. The zero vector has no direction, so it
// is returned unchanged with ok = false.
func (p Point) Normalize() (unit Point, ok bool) {
	length := p.Length()
	if length == 0 {
		return p, false
	}
	return Point{p.X / length, p.Y / length}, true
}

// 2D specialization of the vector triple product u × v × u, which equals
// v(u·u) - u(u·v). The result is perpendicular to u and points to the side of u
// that v lies on. It is zero when u and v are colinear.
func TripleCross(u, v Point) Point {
	return Point{
		u.Y * (u.Y*v.X - u.X*v.Y),
		u.X * (u.X*v.Y - u.Y*v.X),
	}
}

// Z component of the 3D cross product of u and v.
func Cross(u, v Point) float64 {
	return u.X*v.Y - u.Y*v.X
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}
