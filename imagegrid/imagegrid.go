package imagegrid

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
	"github.com/katalvlaran/gridsearch/grid"
)

// ErrEmptyImage indicates an image with zero width or height.
var ErrEmptyImage = errors.New("imagegrid: image has no pixels")

// Options controls the pixel-to-symbol conversion.
type Options struct {
	// Grayscale converts the image to luminance before packing pixels.
	Grayscale bool
	// AutoOrient applies the EXIF orientation tag when decoding JPEG files.
	AutoOrient bool
}

// DefaultOptions returns Options{Grayscale: false, AutoOrient: true}.
func DefaultOptions() Options {
	return Options{AutoOrient: true}
}

// FromImage converts img into a grid with one packed RGBA symbol per pixel.
// Row 0 is the top row of img.Bounds().
// Complexity: O(W×H) time and memory.
func FromImage(img image.Image, opts Options) (*grid.Grid[uint32], error) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, ErrEmptyImage
	}
	var px *image.NRGBA
	if opts.Grayscale {
		px = imaging.Grayscale(img)
	} else {
		px = imaging.Clone(img)
	}

	w, h := px.Rect.Dx(), px.Rect.Dy()
	rows := make([][]uint32, h)
	for y := 0; y < h; y++ {
		row := make([]uint32, w)
		off := y * px.Stride
		for x := 0; x < w; x++ {
			p := px.Pix[off+4*x : off+4*x+4 : off+4*x+4]
			row[x] = Pack(p[0], p[1], p[2], p[3])
		}
		rows[y] = row
	}

	return grid.New(rows)
}

// Decode reads an image from r and converts it with FromImage.
func Decode(r io.Reader, opts Options) (*grid.Grid[uint32], error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(opts.AutoOrient))
	if err != nil {
		return nil, fmt.Errorf("imagegrid: Decode: %w", err)
	}

	return FromImage(img, opts)
}

// Load opens the image file at path and converts it with FromImage.
func Load(path string, opts Options) (*grid.Grid[uint32], error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(opts.AutoOrient))
	if err != nil {
		return nil, fmt.Errorf("imagegrid: Load %s: %w", path, err)
	}

	return FromImage(img, opts)
}

// Pack packs non-premultiplied RGBA bytes into one symbol.
func Pack(r, g, b, a uint8) uint32 {
	return uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a)
}

// Unpack splits a packed symbol into its RGBA bytes.
func Unpack(v uint32) (r, g, b, a uint8) {
	return uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)
}
