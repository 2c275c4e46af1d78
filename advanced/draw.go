package advanced

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Blank space around the shapes, in pixels
const drawPadding = 20

// Longest side of the rendered image, before padding
const drawSize = 480

// Render the two polygons to a PNG at path, for debugging. The first polygon is
// filled green, the second blue, both translucent so the overlap shows.
func DrawPNG(path string, a, b *Polygon) error {
	return drawContext(a, b).SavePNG(path)
}

// Print a PNG inline in the terminal (iTerm only).
func CatPNG(path string, w io.Writer) {
	imgcat.CatFile(path, w)
}

func drawContext(a, b *Polygon) *gg.Context {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, poly := range []*Polygon{a, b} {
		for _, p := range poly.Points {
			minX = math.Min(minX, float64(p.X))
			minY = math.Min(minY, float64(p.Y))
			maxX = math.Max(maxX, float64(p.X))
			maxY = math.Max(maxY, float64(p.Y))
		}
	}
	scale := drawSize / math.Max(math.Max(maxX-minX, maxY-minY), 1)

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

	// Line width is in user space, so undo the scale
	c.SetLineWidth(2 / scale)
	drawPolygon(c, a)
	c.SetRGBA(0, 0.8, 0, 0.5)
	c.FillPreserve()
	c.SetRGB(0, 1, 0)
	c.Stroke()

	drawPolygon(c, b)
	c.SetRGBA(0.2, 0.3, 1, 0.5)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()
	return c
}

func drawPolygon(c *gg.Context, poly *Polygon) {
	c.MoveTo(float64(poly.Points[0].X), float64(poly.Points[0].Y))
	for _, p := range poly.Points[1:] {
		c.LineTo(float64(p.X), float64(p.Y))
	}
	c.ClosePath()
}
