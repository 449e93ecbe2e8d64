package advanced

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Result struct {
	Intersecting bool
	// The simplex when the test stopped. When intersecting, a triangle (or a
	// degenerate one) around the origin.
	Simplex *Simplex
	// Number of support queries made after the initial one.
	Iterations int
}

// Report whether two convex polygons overlap. Touching counts as overlapping.
// Panics with an *IntersectError on invalid input or if the iteration limit is
// reached; use HandleIntersectPanicRecover to convert.
func Intersect(p1, p2 Polygon) bool {
	return Run(p1, p2, DefaultOptions()).Intersecting
}

func IntersectWithOptions(p1, p2 Polygon, opts Options) bool {
	return Run(p1, p2, opts).Intersecting
}

// GJK over the Minkowski difference p1 - p2. Each iteration finds the support
// point in the current search direction. If that point does not reach the
// origin, no point of the difference can, and the polygons are separate.
// Otherwise the point is added to the simplex, which is then either found to
// enclose the origin or reduced and given a new direction.
func Run(p1, p2 Polygon, opts Options) Result {
	if !opts.SkipValidation {
		throw(errors.WithMessage(p1.Validate(), "first polygon"))
		throw(errors.WithMessage(p2.Validate(), "second polygon"))
	}
	log := opts.logger()

	direction, ok := p2.Centroid().Sub(p1.Centroid()).Normalize()
	if !ok {
		if opts.StrictCentroids {
			fatalf(ErrInvalidInput, "polygons share centroid %v", p1.Centroid())
		}
		log.Debug("centroids coincide, using seed direction", zap.Stringer("seed", SeedDirection))
		direction = SeedDirection
	}

	simplex := NewSimplex(Support(p1, p2, direction))
	direction = Origin.Sub(simplex.Last())

	record := func(step Step) {
		if ce := log.Check(zap.DebugLevel, "gjk iteration"); ce != nil {
			ce.Write(
				zap.Int("iteration", step.Iteration),
				zap.Stringer("direction", step.Direction),
				zap.Stringer("support", step.Support),
				zap.Stringer("simplex", simplex),
				zap.Stringer("outcome", step.Outcome),
			)
		}
		if opts.Trace != nil {
			opts.Trace(step)
		}
	}

	limit := opts.maxIterations()
	for i := 1; ; i++ {
		if limit > 0 && i > limit {
			fatalf(ErrNoConvergence, "simplex %s unresolved after %d iterations", simplex, limit)
		}

		a := Support(p1, p2, direction)
		step := Step{Iteration: i, Direction: direction, Support: a}

		if a.Dot(direction) < 0 {
			step.Outcome = Separated
			step.Simplex = simplex.Points()
			record(step)
			return Result{Intersecting: false, Simplex: simplex, Iterations: i}
		}

		simplex.Push(a)
		next, enclosed := simplex.Evolve(direction)
		step.Simplex = simplex.Points()
		if enclosed {
			step.Outcome = Enclosed
			record(step)
			return Result{Intersecting: true, Simplex: simplex, Iterations: i}
		}
		step.Outcome = Searching
		record(step)
		direction = next
	}
}
