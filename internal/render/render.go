// Package render rasterizes the schematic world background served behind
// the map markers.
package render

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"geoatlas/internal/geo"
)

// Point is a polygon vertex on the 800x400 map canvas.
type Point struct {
	X, Y float64
}

// Ocean gradient stops, top to bottom.
var (
	oceanTop = color.NRGBA{R: 0xe1, G: 0xf5, B: 0xfe, A: 0xff}
	oceanMid = color.NRGBA{R: 0xb3, G: 0xe5, B: 0xfc, A: 0xff}
	oceanBot = color.NRGBA{R: 0x4f, G: 0xc3, B: 0xf7, A: 0xff}

	landTop = color.NRGBA{R: 0xc8, G: 0xe6, B: 0xc9, A: 0xff}
	landBot = color.NRGBA{R: 0xa5, G: 0xd6, B: 0xa7, A: 0xff}
)

// OceanColor returns the ocean gradient color at a relative height
// t in [0, 1].
func OceanColor(t float64) color.NRGBA {
	if t < 0.5 {
		return lerpColor(oceanTop, oceanMid, t*2)
	}
	return lerpColor(oceanMid, oceanBot, (t-0.5)*2)
}

// LandColor returns the landmass gradient color at a relative height
// t in [0, 1].
func LandColor(t float64) color.NRGBA {
	return lerpColor(landTop, landBot, t)
}

func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.NRGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: 0xff}
}

// Map renders the schematic world at the requested width, keeping the 2:1
// canvas aspect. The image is rasterized at canvas resolution and scaled
// with Catmull-Rom interpolation, which smooths the polygon edges enough
// for a background layer.
func Map(width int) *image.RGBA {
	base := rasterize()

	height := width * int(geo.CanvasHeight) / int(geo.CanvasWidth)
	if width == base.Bounds().Dx() {
		out := image.NewRGBA(base.Bounds())
		xdraw.Copy(out, image.Point{}, base, base.Bounds(), xdraw.Over, nil)
		return out
	}

	out := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(out, out.Bounds(), base, base.Bounds(), xdraw.Over, nil)
	return out
}

// rasterize paints the gradient ocean and fills the continent polygons at
// the native 800x400 canvas size.
func rasterize() *image.RGBA {
	w, h := int(geo.CanvasWidth), int(geo.CanvasHeight)
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		t := float64(y) / float64(h-1)
		ocean := OceanColor(t)
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: ocean.R, G: ocean.G, B: ocean.B, A: 0xff})
		}
	}

	for _, poly := range Continents() {
		fillPolygon(img, poly)
	}

	return img
}

// fillPolygon paints a polygon with the land gradient using even-odd
// scanline filling.
func fillPolygon(img *image.RGBA, poly []Point) {
	if len(poly) < 3 {
		return
	}

	minY, maxY := poly[0].Y, poly[0].Y
	for _, p := range poly {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	height := float64(img.Bounds().Dy())
	for y := int(minY); y <= int(maxY); y++ {
		scanY := float64(y) + 0.5

		var xs []float64
		for i := range poly {
			a := poly[i]
			b := poly[(i+1)%len(poly)]
			if (a.Y <= scanY) == (b.Y <= scanY) {
				continue
			}
			xs = append(xs, a.X+(scanY-a.Y)/(b.Y-a.Y)*(b.X-a.X))
		}
		if len(xs) < 2 {
			continue
		}

		sortFloats(xs)

		land := LandColor(float64(y) / (height - 1))
		for i := 0; i+1 < len(xs); i += 2 {
			for x := int(xs[i] + 0.5); x < int(xs[i+1]+0.5); x++ {
				img.SetRGBA(x, y, color.RGBA{R: land.R, G: land.G, B: land.B, A: 0xff})
			}
		}
	}
}

// insertion sort, intersection lists are tiny
func sortFloats(xs []float64) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j] < xs[j-1]; j-- {
			xs[j], xs[j-1] = xs[j-1], xs[j]
		}
	}
}
