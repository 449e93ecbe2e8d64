package dbg

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type point struct{ X, Y float64 }

func TestName(t *testing.T) {
	a := point{1, 2}
	name := Name(a)
	assert.NotEmpty(t, name)
	assert.Equal(t, name, Name(point{1, 2}), "equal values share a name")

	p := &point{1, 2}
	assert.Equal(t, Name(p), Name(p))

	var nilPoint *point
	assert.Equal(t, "Ø", Name(nilPoint))
	assert.Equal(t, "Ø", Name(nil))
}

func TestNameConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	names := make([]string, 16)
	for i := range names {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			names[i] = Name(point{-7, 7})
		}()
	}
	wg.Wait()
	for _, name := range names {
		assert.Equal(t, names[0], name)
	}
}
