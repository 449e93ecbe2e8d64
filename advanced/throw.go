package advanced

import "github.com/pkg/errors"

// Threading errors through the iteration and the simplex helpers would clutter
// the algorithm. Instead, we panic with an *IntersectError, and the public API
// recovers to convert to an error.

var (
	// The polygons break the caller contract: empty, nil or non-finite
	// vertices, or coincident centroids when StrictCentroids is set.
	ErrInvalidInput = errors.New("invalid input")
	// The iteration limit was hit before the simplex resolved.
	ErrNoConvergence = errors.New("no convergence")
	// A broken invariant inside the algorithm. Seeing this is a bug.
	ErrInternal = errors.New("internal error")
)

type IntersectError struct {
	err error
}

func (e *IntersectError) Error() string {
	return e.err.Error()
}

func (e *IntersectError) Cause() error {
	return e.err
}

func (e *IntersectError) Unwrap() error {
	return e.err
}

// Panic with an *IntersectError wrapping kind.
func fatalf(kind error, format string, args ...interface{}) {
	panic(&IntersectError{errors.Wrapf(kind, format, args...)})
}

// Panic with an *IntersectError if err is not nil.
func throw(err error) {
	if err != nil {
		panic(&IntersectError{err})
	}
}

func HandleIntersectPanicRecover(r interface{}) error {
	if r != nil {
		if intersectError, ok := r.(*IntersectError); ok {
			return intersectError.err
		}
		panic(r)
	}
	return nil
}
