// Package raster holds the in-memory 8-bit RGBA pixel grid the
// conversion pipeline mutates in place.
package raster

import "fmt"

// bytesPerPixel is fixed: the codec collaborator normalizes every
// input to 8-bit RGBA before the core sees it.
const bytesPerPixel = 4

// maxBytes caps a single raster buffer at 2 GiB. Go cannot trap a
// failed allocation, so oversized requests are rejected up front.
const maxBytes = 1 << 31

// AllocationError reports a raster buffer that cannot be sized,
// carrying the byte count that would have been required.
type AllocationError struct {
	Width, Height int
	Bytes         uint64
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("raster: cannot allocate %d bytes for %dx%d RGBA buffer", e.Bytes, e.Width, e.Height)
}

// Raster is a width×height grid of RGBA8 pixels, row-major with no
// stride padding. Pix holds 4 bytes per pixel.
type Raster struct {
	Width  int
	Height int
	Pix    []uint8
}

// New allocates a zeroed raster. Dimensions must be positive; any
// positive size including 1×1 is valid.
func New(width, height int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster: invalid dimensions %dx%d", width, height)
	}
	need := uint64(width) * uint64(height) * bytesPerPixel
	if need > maxBytes {
		return nil, &AllocationError{Width: width, Height: height, Bytes: need}
	}
	return &Raster{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, need),
	}, nil
}

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (r *Raster) PixOffset(x, y int) int {
	return (y*r.Width + x) * bytesPerPixel
}

// RGBA returns the four samples of the pixel at (x, y).
func (r *Raster) RGBA(x, y int) (uint8, uint8, uint8, uint8) {
	i := r.PixOffset(x, y)
	return r.Pix[i], r.Pix[i+1], r.Pix[i+2], r.Pix[i+3]
}

// SetRGB overwrites the color samples of the pixel at (x, y), leaving
// alpha untouched.
func (r *Raster) SetRGB(x, y int, red, green, blue uint8) {
	i := r.PixOffset(x, y)
	r.Pix[i] = red
	r.Pix[i+1] = green
	r.Pix[i+2] = blue
}

// Clone returns a deep copy of the raster.
func (r *Raster) Clone() *Raster {
	pix := make([]uint8, len(r.Pix))
	copy(pix, r.Pix)
	return &Raster{Width: r.Width, Height: r.Height, Pix: pix}
}
