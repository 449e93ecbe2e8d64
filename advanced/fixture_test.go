package advanced

import (
	"embed"
	"log"
	"math"
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs polygons. It is not a full (or
// even correct) svg parser. It finds whatever the first polygon is, then
// converts that into a CCW Polygon. If anything goes wrong, it stops the test
// binary.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, false)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected one polygon in fixture %q, found %d", name, len(polygons))
	}

	var points []*Point
	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		points = append(points, &Point{x, y})
	}
	result := Polygon{Points: points}

	if !result.IsCCW() {
		result = result.Reverse()
	}
	return result
}

// Some ad hoc fixtures

// Build a polygon from flat x, y pairs.
func poly(coords ...float64) Polygon {
	if len(coords)%2 != 0 {
		log.Fatalf("odd coordinate count %d", len(coords))
	}
	var points []*Point
	for i := 0; i < len(coords); i += 2 {
		points = append(points, &Point{coords[i], coords[i+1]})
	}
	return Polygon{points}
}

func unitSquare() Polygon {
	return poly(0, 0, 1, 0, 1, 1, 0, 1)
}

// Regular n-gon with the given circumradius, rotated by phase.
func regularPolygon(center Point, radius float64, n int, phase float64) Polygon {
	var points []*Point
	for i := 0; i < n; i++ {
		angle := phase + 2*math.Pi*float64(i)/float64(n)
		points = append(points, &Point{center.X + radius*math.Cos(angle), center.Y + radius*math.Sin(angle)})
	}
	return Polygon{points}
}

// Convex polygon with n vertices at random angles on a circle. Points on a
// circle are always in convex position.
func randomConvex(rng *rand.Rand, center Point, radius float64, n int) Polygon {
	angles := make([]float64, n)
	for i := range angles {
		angles[i] = rng.Float64() * 2 * math.Pi
	}
	sort.Float64s(angles)
	var points []*Point
	for _, angle := range angles {
		points = append(points, &Point{center.X + radius*math.Cos(angle), center.Y + radius*math.Sin(angle)})
	}
	return Polygon{points}
}
