package advanced

// The vertex of the polygon furthest along direction. Ties keep the first
// vertex encountered, so the answer is stable for a given vertex order.
func FurthestPoint(poly Polygon, direction Point) Point {
	furthest := *poly.Points[0]
	maxDot := furthest.Dot(direction)
	for _, p := range poly.Points[1:] {
		if d := p.Dot(direction); d > maxDot {
			maxDot = d
			furthest = *p
		}
	}
	return furthest
}

// Support point of the Minkowski difference p1 - p2 in the given direction:
// the furthest point of p1 along direction minus the furthest point of p2 in
// the opposite direction. The result is always an exact difference of two
// vertices, never an interpolated point.
func Support(p1, p2 Polygon, direction Point) Point {
	return FurthestPoint(p1, direction).Sub(FurthestPoint(p2, direction.Neg()))
}
