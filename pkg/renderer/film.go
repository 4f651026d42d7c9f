package renderer

import (
	"image"
	"image/color"

	"github.com/Aofusa/gemspt-go/pkg/core"
)

// Film accumulates linear radiance values per pixel. Row 0 is the top of
// the image.
type Film struct {
	Width  int
	Height int
	pixels []core.Color
}

// NewFilm creates a black film of the given dimensions.
func NewFilm(width, height int) *Film {
	return &Film{
		Width:  width,
		Height: height,
		pixels: make([]core.Color, width*height),
	}
}

// SetPixel stores the final linear color for a pixel.
func (f *Film) SetPixel(x, y int, c core.Color) {
	f.pixels[y*f.Width+x] = c
}

// Pixel returns the linear color stored for a pixel.
func (f *Film) Pixel(x, y int) core.Color {
	return f.pixels[y*f.Width+x]
}

// ToRGBA converts the film to an 8-bit image, applying gamma correction
// and clamping. Values are rounded to the nearest step.
func (f *Film) ToRGBA(gamma float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			img.SetRGBA(x, y, toRGBA(f.Pixel(x, y), gamma))
		}
	}
	return img
}

// toRGBA converts a linear color to 8-bit sRGB-style output.
func toRGBA(c core.Color, gamma float64) color.RGBA {
	corrected := c.Clamp(0.0, 1.0).GammaCorrect(gamma)
	return color.RGBA{
		R: uint8(corrected.X*255.0 + 0.5),
		G: uint8(corrected.Y*255.0 + 0.5),
		B: uint8(corrected.Z*255.0 + 0.5),
		A: 255,
	}
}
