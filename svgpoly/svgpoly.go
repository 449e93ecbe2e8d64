// Package svgpoly reads convex polygons out of SVG documents. This is not a
// full (or even correct) SVG reader: it collects every <polygon> and <rect>
// element in document order and ignores transforms and styling.
package svgpoly

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/gjk/advanced"
	"github.com/pkg/errors"
)

func Parse(r io.Reader) (advanced.PolygonList, error) {
	rootEl, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var list advanced.PolygonList
	err = walk(rootEl, func(el *svgparser.Element) error {
		var poly advanced.Polygon
		var err error
		switch el.Name {
		case "polygon":
			poly, err = parsePolygon(el)
		case "rect":
			poly, err = parseRect(el)
		default:
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "<%s> #%d", el.Name, len(list))
		}
		list = append(list, poly)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

func LoadFile(path string) (advanced.PolygonList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()
	list, err := Parse(f)
	return list, errors.Wrap(err, path)
}

// Depth first, document order.
func walk(el *svgparser.Element, fn func(*svgparser.Element) error) error {
	if err := fn(el); err != nil {
		return err
	}
	for _, child := range el.Children {
		if err := walk(child, fn); err != nil {
			return err
		}
	}
	return nil
}

// Points are "x,y" pairs separated by whitespace, though SVG also allows any
// mix of commas and whitespace between all numbers.
func parsePolygon(el *svgparser.Element) (advanced.Polygon, error) {
	fields := strings.FieldsFunc(el.Attributes["points"], func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) == 0 {
		return advanced.Polygon{}, errors.New("no points")
	}
	if len(fields)%2 != 0 {
		return advanced.Polygon{}, errors.Errorf("odd number of coordinates: %d", len(fields))
	}

	points := make([]*advanced.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return advanced.Polygon{}, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return advanced.Polygon{}, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, &advanced.Point{X: x, Y: y})
	}
	return advanced.Polygon{Points: points}, nil
}

func parseRect(el *svgparser.Element) (advanced.Polygon, error) {
	var values [4]float64
	for i, name := range []string{"x", "y", "width", "height"} {
		raw, ok := el.Attributes[name]
		if !ok {
			// x and y default to zero
			if i < 2 {
				continue
			}
			return advanced.Polygon{}, errors.Errorf("missing %s", name)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return advanced.Polygon{}, errors.Wrapf(err, "invalid %s %q", name, raw)
		}
		values[i] = v
	}
	x, y, w, h := values[0], values[1], values[2], values[3]
	return advanced.Polygon{Points: []*advanced.Point{
		{X: x, Y: y},
		{X: x + w, Y: y},
		{X: x + w, Y: y + h},
		{X: x, Y: y + h},
	}}, nil
}
