// ABOUTME: Image import: decodes PNG, JPEG, GIF, and WebP and converts them into color canvases
// ABOUTME: Scales with CatmullRom and keeps source opacity so translucent pixels blend later

package image

import (
	"bufio"
	"errors"
	"fmt"
	goimage "image"
	gocolor "image/color"
	"io"
	"math"
	"os"

	// Register decoders for standard formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/mauromedda/termpix/pkg/canvas"
	"github.com/mauromedda/termpix/pkg/color"
	"github.com/mauromedda/termpix/pkg/pixel"
)

// ErrUnsupportedFormat reports data that is not a known image format.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Format returns the MIME type detected from the magic bytes of data, or
// the empty string when the format is not recognised.
func Format(data []byte) string {
	switch {
	case len(data) >= 4 && data[0] == 0x89 && data[1] == 'P' && data[2] == 'N' && data[3] == 'G':
		return "image/png"
	case len(data) >= 2 && data[0] == 0xFF && data[1] == 0xD8:
		return "image/jpeg"
	case len(data) >= 3 && data[0] == 'G' && data[1] == 'I' && data[2] == 'F':
		return "image/gif"
	case len(data) >= 12 && string(data[0:4]) == "RIFF" && string(data[8:12]) == "WEBP":
		return "image/webp"
	}
	return ""
}

// Decode reads an image, rejecting unknown formats before decoding.
func Decode(r io.Reader) (goimage.Image, error) {
	br := bufio.NewReader(r)
	header, _ := br.Peek(12)
	if Format(header) == "" {
		return nil, ErrUnsupportedFormat
	}
	img, _, err := goimage.Decode(br)
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return img, nil
}

// Load decodes the image file at path.
func Load(path string) (goimage.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// FitSize returns the largest canvas size in sub-pixels, spanning whole
// cells of shape S within cols×rows, that keeps the image aspect ratio.
// Cells are taken to be twice as tall as they are wide.
func FitSize[S pixel.Shape](img goimage.Image, cols, rows int) (width, height int) {
	bw, bh := pixel.Size[S]()
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 || cols < 1 || rows < 1 {
		return bw, bh
	}

	scale := math.Min(float64(cols)/float64(b.Dx()), float64(2*rows)/float64(b.Dy()))
	usedCols := max(1, int(float64(b.Dx())*scale))
	usedRows := max(1, int(float64(b.Dy())*scale/2))
	return usedCols * bw, usedRows * bh
}

// ToCanvas scales img to width×height sub-pixels and copies it into a
// color canvas of shape S.
func ToCanvas[S pixel.Shape](img goimage.Image, width, height int) (*canvas.Canvas[S, color.Color], error) {
	c, err := canvas.New[S](width, height, color.Transparent)
	if err != nil {
		return nil, err
	}

	scaled := resize(img, width, height)
	origin := scaled.Bounds().Min
	for y := range height {
		for x := range width {
			if err := c.SetPixel(x, y, colorAt(scaled, origin.X+x, origin.Y+y)); err != nil {
				return nil, err
			}
		}
	}
	return c, nil
}

// resize scales src with CatmullRom interpolation, skipping the work
// when the size already matches.
func resize(src goimage.Image, w, h int) goimage.Image {
	b := src.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return src
	}
	dst := goimage.NewNRGBA(goimage.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// colorAt returns the non-premultiplied color of the pixel at (x, y).
func colorAt(img goimage.Image, x, y int) color.Color {
	c := gocolor.NRGBAModel.Convert(img.At(x, y)).(gocolor.NRGBA)
	return color.Of(color.ARGB{A: c.A, RGB: color.RGB{R: c.R, G: c.G, B: c.B}})
}
