package advanced

import "sort"

// Brute force Minkowski difference p1 - p2: the convex hull of every pairwise
// vertex difference, counterclockwise. GJK never builds this; it exists for
// drawing and as an oracle in tests.
func MinkowskiDifference(p1, p2 Polygon) Polygon {
	points := make([]Point, 0, len(p1.Points)*len(p2.Points))
	for _, a := range p1.Points {
		for _, b := range p2.Points {
			points = append(points, a.Sub(*b))
		}
	}
	return ConvexHull(points)
}

// Andrew's monotone chain. Colinear points on the hull boundary are dropped.
func ConvexHull(points []Point) Polygon {
	sorted := append([]Point(nil), points...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X == sorted[j].X {
			return sorted[i].Y < sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})
	if len(sorted) < 3 {
		return polygonFromValues(sorted)
	}

	hull := make([]Point, 0, 2*len(sorted))
	// Lower hull
	for _, p := range sorted {
		for len(hull) >= 2 && Cross(hull[len(hull)-1].Sub(hull[len(hull)-2]), p.Sub(hull[len(hull)-1])) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	// Upper hull
	lowerLen := len(hull) + 1
	for i := len(sorted) - 2; i >= 0; i-- {
		p := sorted[i]
		for len(hull) >= lowerLen && Cross(hull[len(hull)-1].Sub(hull[len(hull)-2]), p.Sub(hull[len(hull)-1])) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	// The last point is the first point again
	return polygonFromValues(hull[:len(hull)-1])
}

// Whether p lies inside or on the boundary of a counterclockwise convex
// polygon, within Epsilon.
func (poly Polygon) ContainsPoint(p Point) bool {
	n := len(poly.Points)
	switch n {
	case 0:
		return false
	case 1:
		return Equal(poly.Points[0].X, p.X) && Equal(poly.Points[0].Y, p.Y)
	}
	for i, a := range poly.Points {
		b := poly.Points[CircularIndex(i+1, n)]
		if Cross(b.Sub(*a), p.Sub(*a)) < -Epsilon {
			return false
		}
	}
	return true
}

func polygonFromValues(points []Point) Polygon {
	poly := Polygon{Points: make([]*Point, len(points))}
	for i := range points {
		p := points[i]
		poly.Points[i] = &p
	}
	return poly
}
