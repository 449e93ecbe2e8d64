package advanced

type Polygon struct {
	Points []*Point
}

// A Point doubles as a position and a free vector. Polygon vertices are held
// by pointer so debug output can name them, but the algorithm itself only ever
// works on copies; input polygons are never modified.
type Point struct {
	X float64
	Y float64
}

// The fixed origin of the Minkowski difference space. Two polygons intersect
// iff their difference contains it.
var Origin = Point{}

type PolygonList []Polygon
