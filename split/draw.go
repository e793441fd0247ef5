package split

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

const drawPadding = 10

// Fill colors cycle per slice so adjacent strips are distinguishable.
var sliceColors = [][3]float64{
	{0.13, 0.55, 0.13},
	{0.80, 0.52, 0.05},
	{0.15, 0.35, 0.70},
	{0.60, 0.20, 0.50},
	{0.70, 0.25, 0.15},
	{0.10, 0.55, 0.55},
}

// RenderPNG draws the split result to a PNG file, one color per slice, with
// the source polygon's outline on top. scale is pixels per source unit.
func (res Result) RenderPNG(path string, source Ring, scale float64) error {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	rings := []Ring{source}
	for _, slice := range res {
		rings = append(rings, slice.Rings...)
	}
	for _, r := range rings {
		for _, p := range r {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}

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

	c.SetLineWidth(1)
	for i, slice := range res {
		for _, r := range slice.Rings {
			tracePath(c, r)
		}
		rgb := sliceColors[i%len(sliceColors)]
		c.SetRGB(rgb[0], rgb[1], rgb[2])
		c.FillPreserve()
		c.SetRGB(1, 1, 1)
		c.Stroke()
	}

	if len(source) > 0 {
		tracePath(c, source)
		c.SetLineWidth(2)
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}

	return c.SavePNG(path)
}

func tracePath(c *gg.Context, r Ring) {
	c.MoveTo(r[0].X, r[0].Y)
	for _, p := range r[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
}

// CatPNG prints a rendered preview to the terminal for terminals that speak
// the iTerm2 inline image protocol.
func CatPNG(path string) error {
	return imgcat.CatFile(path, os.Stdout)
}
