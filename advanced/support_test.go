package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFurthestPoint(t *testing.T) {
	square := unitSquare()

	t.Run("unique maximum", func(t *testing.T) {
		assert.Equal(t, Point{1, 1}, FurthestPoint(square, Point{1, 1}))
		assert.Equal(t, Point{0, 0}, FurthestPoint(square, Point{-1, -2}))
	})

	t.Run("ties keep the first vertex", func(t *testing.T) {
		// (1, 0) and (1, 1) tie
		assert.Equal(t, Point{1, 0}, FurthestPoint(square, Point{1, 0}))
		// (1, 1) and (0, 1) tie
		assert.Equal(t, Point{1, 1}, FurthestPoint(square, Point{0, 1}))
		// Everything ties
		assert.Equal(t, Point{0, 0}, FurthestPoint(square, Point{}))
	})

	t.Run("single vertex", func(t *testing.T) {
		assert.Equal(t, Point{4, 2}, FurthestPoint(poly(4, 2), Point{-1, 3}))
	})
}

func TestSupport(t *testing.T) {
	square := unitSquare()
	far := square.Translate(Point{5, 5})

	// Furthest of square along (1, 1) is (1, 1); furthest of far along (-1, -1)
	// is (5, 5).
	assert.Equal(t, Point{-4, -4}, Support(square, far, Point{1, 1}))
	assert.Equal(t, Point{6, 6}, Support(far, square, Point{1, 1}))

	t.Run("always a vertex difference", func(t *testing.T) {
		p1 := poly(0, 0, 2, 0, 1, 2)
		p2 := poly(1, 1, 3, 1, 2, 3)
		differences := map[Point]struct{}{}
		for _, a := range p1.Points {
			for _, b := range p2.Points {
				differences[a.Sub(*b)] = struct{}{}
			}
		}
		for _, direction := range []Point{{1, 0}, {0, 1}, {-1, 0.3}, {0.2, -7}, {1e-9, 1}} {
			_, ok := differences[Support(p1, p2, direction)]
			assert.True(t, ok, "support in direction %v is not a vertex difference", direction)
		}
	})

	t.Run("does not modify the polygons", func(t *testing.T) {
		p1 := poly(0, 0, 2, 0, 1, 2)
		before := p1.Points[1]
		Support(p1, square, Point{1, 0})
		assert.Same(t, before, p1.Points[1])
		assert.Equal(t, Point{2, 0}, *p1.Points[1])
	})
}
