package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/gjk/advanced"
	"github.com/pkg/errors"
)

// Input is newline separated points in the form "x y", with each polygon
// separated by an extra newline. Lines starting with # are ignored.
func readPolygons(in io.Reader) (advanced.PolygonList, error) {
	var polygons advanced.PolygonList
	scanner := bufio.NewScanner(in)
	points := []*advanced.Point{}
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			if len(points) > 0 {
				polygons = append(polygons, advanced.Polygon{Points: points})
				points = []*advanced.Point{}
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, &point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading polygons")
	}

	// Handle trailing polygon if any
	if len(points) > 0 {
		polygons = append(polygons, advanced.Polygon{Points: points})
	}
	return polygons, nil
}

func parsePoint(line string) (advanced.Point, error) {
	parts := strings.Fields(strings.ReplaceAll(line, ",", " "))
	if len(parts) != 2 {
		return advanced.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return advanced.Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return advanced.Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return advanced.Point{X: x, Y: y}, nil
}
