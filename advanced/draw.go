package advanced

import (
	"math"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

// Padding around the shapes, in pixels
const drawPadding = 40

// Render both polygons, their Minkowski difference, the origin, and the final
// simplex of result (if any) to a PNG file. Scale is pixels per unit.
func DrawPNG(path string, p1, p2 Polygon, result *Result, scale float64) error {
	difference := MinkowskiDifference(p1, p2)
	shapes := PolygonList{p1, p2, difference, polygonFromValues([]Point{Origin})}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, poly := range shapes {
		min, max := poly.Bounds()
		minX = math.Min(minX, min.X)
		minY = math.Min(minY, min.Y)
		maxX = math.Max(maxX, max.X)
		maxY = math.Max(maxY, max.Y)
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	tracePolygon(c, difference)
	c.SetRGBA(1, 1, 0, 0.2)
	c.FillPreserve()
	c.SetRGB(1, 1, 0)
	c.Stroke()

	tracePolygon(c, p1)
	c.SetRGBA(0, 0.8, 0, 0.5)
	c.FillPreserve()
	c.SetRGB(0, 1, 0)
	c.Stroke()

	tracePolygon(c, p2)
	c.SetRGBA(0.2, 0.3, 1, 0.5)
	c.FillPreserve()
	c.SetRGB(0.4, 0.6, 1)
	c.Stroke()

	if result != nil && result.Simplex != nil && result.Simplex.Len() > 0 {
		simplex := polygonFromValues(result.Simplex.Points())
		tracePolygon(c, simplex)
		c.SetRGB(1, 0, 0)
		c.Stroke()
		for _, p := range simplex.Points {
			c.DrawCircle(p.X, p.Y, 3/scale)
		}
		c.Fill()
	}

	// Origin marker
	arm := 6 / scale
	c.SetRGB(1, 1, 1)
	c.DrawLine(-arm, 0, arm, 0)
	c.DrawLine(0, -arm, 0, arm)
	c.Stroke()

	return errors.Wrapf(c.SavePNG(path), "saving %s", path)
}

func tracePolygon(c *gg.Context, poly Polygon) {
	if len(poly.Points) == 0 {
		return
	}
	c.MoveTo(poly.Points[0].X, poly.Points[0].Y)
	for _, p := range poly.Points[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
}
