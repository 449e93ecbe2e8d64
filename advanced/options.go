package advanced

import "go.uber.org/zap"

// The reference algorithm has no iteration bound. Convex inputs resolve in a
// handful of iterations, so this only trips on numerically degenerate input.
const DefaultMaxIterations = 64

// Search direction used when the two centroids coincide and their difference
// cannot be normalized.
var SeedDirection = Point{X: 1, Y: 0}

type Options struct {
	// Upper bound on support point queries after the first. Zero means
	// DefaultMaxIterations; negative means unbounded.
	MaxIterations int
	// Fail with ErrInvalidInput on coincident centroids instead of falling back
	// to SeedDirection.
	StrictCentroids bool
	// Validate the polygons before running. Disable only for trusted input.
	SkipValidation bool
	// Receives one Debug entry per iteration. Nil means no logging.
	Logger *zap.Logger
	// Called after every iteration with a snapshot of the state.
	Trace func(Step)
}

func DefaultOptions() Options {
	return Options{MaxIterations: DefaultMaxIterations}
}

func (o Options) maxIterations() int {
	if o.MaxIterations == 0 {
		return DefaultMaxIterations
	}
	return o.MaxIterations
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
