package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/tiff"

	"github.com/Aofusa/gemspt-go/pkg/core"
)

// SavePNG writes the image to path in PNG format.
func SavePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %v", path, err)
	}
	defer file.Close()

	return png.Encode(file, img)
}

// SaveTIFF writes the image to path as a Deflate-compressed TIFF.
func SaveTIFF(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %v", path, err)
	}
	defer file.Close()

	return tiff.Encode(file, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
}

// SavePPM writes the image to path in binary PPM format.
func SavePPM(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %v", path, err)
	}
	defer file.Close()

	return WritePPM(file, img)
}

// SaveHDR writes the film to path in the Radiance HDR format.
func SaveHDR(path string, film *Film) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %v", path, err)
	}
	defer file.Close()

	return WriteHDR(file, film)
}

// WritePPM writes the image as binary PPM (P6).
func WritePPM(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", bounds.Dx(), bounds.Dy()); err != nil {
		return err
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if _, err := bw.Write([]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// WriteHDR writes the film in the Radiance RGBE format, preserving the
// full dynamic range of the linear radiance values.
func WriteHDR(w io.Writer, film *Film) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "#?RADIANCE\nFORMAT=32-bit_rle_rgbe\n\n-Y %d +X %d\n", film.Height, film.Width); err != nil {
		return err
	}
	for y := 0; y < film.Height; y++ {
		for x := 0; x < film.Width; x++ {
			pixel := rgbe(film.Pixel(x, y))
			if _, err := bw.Write(pixel[:]); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// rgbe packs a linear color into the shared-exponent RGBE pixel format.
func rgbe(c core.Color) [4]byte {
	maxComp := c.MaxComponent()
	if maxComp < 1e-32 {
		return [4]byte{}
	}

	frac, exp := math.Frexp(maxComp)
	scale := frac * 256.0 / maxComp
	return [4]byte{
		byte(c.X * scale),
		byte(c.Y * scale),
		byte(c.Z * scale),
		byte(exp + 128),
	}
}
