// Package scenario loads YAML files describing pairs of polygons with their
// expected intersection verdict, and checks them against the GJK test.
package scenario

import (
	"fmt"
	"io"
	"os"

	"github.com/osuushi/gjk"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type File struct {
	MaxIterations   int    `yaml:"max_iterations,omitempty"`
	StrictCentroids bool   `yaml:"strict_centroids,omitempty"`
	Cases           []Case `yaml:"cases"`
}

type Case struct {
	Name string      `yaml:"name"`
	A    [][]float64 `yaml:"a"`
	B    [][]float64 `yaml:"b"`
	// Nil means the case is expected to fail with an error.
	Expect *bool `yaml:"expect"`
}

// Load a case file from a YAML reader. Unknown keys are rejected so typos do
// not silently drop expectations.
func Load(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, errors.Wrap(err, "decoding cases")
	}
	for i, c := range f.Cases {
		if c.Name == "" {
			f.Cases[i].Name = fmt.Sprintf("case %d", i+1)
		}
		if _, err := c.Polygons(); err != nil {
			return nil, errors.Wrapf(err, "case %q", f.Cases[i].Name)
		}
	}
	return &f, nil
}

func LoadFile(path string) (*File, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer r.Close()
	f, err := Load(r)
	return f, errors.Wrap(err, path)
}

func (f *File) Options() gjk.Options {
	return gjk.Options{
		MaxIterations:   f.MaxIterations,
		StrictCentroids: f.StrictCentroids,
	}
}

// Both polygons of the case as point lists.
func (c Case) Polygons() ([2][]*gjk.Point, error) {
	var polygons [2][]*gjk.Point
	for i, raw := range [][][]float64{c.A, c.B} {
		for j, pair := range raw {
			if len(pair) != 2 {
				return polygons, errors.Errorf("polygon %c vertex %d has %d coordinates, want 2", 'a'+i, j, len(pair))
			}
			polygons[i] = append(polygons[i], &gjk.Point{X: pair[0], Y: pair[1]})
		}
	}
	return polygons, nil
}
