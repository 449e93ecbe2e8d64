// Convex polygon intersection for Go, using the Gilbert-Johnson-Keerthi
// algorithm.
//
// Two convex polygons overlap exactly when their Minkowski difference contains
// the origin. GJK answers that question by walking a small simplex of support
// points toward the origin, without ever building the difference itself.
package gjk

import "github.com/osuushi/gjk/advanced"

type Point = advanced.Point
type Polygon = advanced.Polygon
type Options = advanced.Options
type Step = advanced.Step

var (
	ErrInvalidInput  = advanced.ErrInvalidInput
	ErrNoConvergence = advanced.ErrNoConvergence
)

// Report whether two convex polygons overlap. Polygons that only touch along an
// edge or at a vertex count as overlapping.
//
// Each polygon must be convex and have at least one vertex. Winding order does
// not matter. Convexity is not checked; see advanced.Polygon.IsConvex.
func Intersect(polygon1, polygon2 []*Point) (bool, error) {
	return IntersectWithOptions(polygon1, polygon2, advanced.DefaultOptions())
}

// Like Intersect, with control over the iteration limit, centroid policy,
// logging and tracing. Use errors.Is with ErrInvalidInput or ErrNoConvergence
// to tell the failures apart.
func IntersectWithOptions(polygon1, polygon2 []*Point, opts Options) (result bool, err error) {
	defer func() {
		recoveredErr := advanced.HandleIntersectPanicRecover(recover())
		if recoveredErr != nil {
			result = false
			err = recoveredErr
		}
	}()
	return advanced.IntersectWithOptions(
		advanced.Polygon{Points: polygon1},
		advanced.Polygon{Points: polygon2},
		opts,
	), nil
}
