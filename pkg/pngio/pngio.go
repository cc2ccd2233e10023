// Package pngio decodes and encodes PNG files to and from the
// pipeline's RGBA8 raster. It is a thin wrapper: any input color type
// or bit depth is normalized to 8-bit non-premultiplied RGBA before the
// core sees it, and output is always 8-bit RGBA.
package pngio

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/retrotex/ntscjpng/pkg/raster"
)

// DecodeError wraps a failure to read or parse the input file.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError wraps a failure to encode or write the output file.
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode %s: %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// Decode reads a PNG file and normalizes it to an RGBA8 raster.
func Decode(path string) (*raster.Raster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	b := img.Bounds()
	r, err := raster.New(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}

	// NRGBA keeps color samples independent of alpha; the transform
	// must see authored color values, not premultiplied ones.
	dst := &image.NRGBA{Pix: r.Pix, Stride: r.Width * 4, Rect: image.Rect(0, 0, r.Width, r.Height)}
	draw.Draw(dst, dst.Rect, img, b.Min, draw.Src)
	return r, nil
}

// Encode writes the raster to path as an 8-bit RGBA PNG.
func Encode(r *raster.Raster, path string) error {
	img := &image.NRGBA{Pix: r.Pix, Stride: r.Width * 4, Rect: image.Rect(0, 0, r.Width, r.Height)}

	f, err := os.Create(path)
	if err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return &EncodeError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	return nil
}

// Info describes a PNG file without decoding its pixel data.
type Info struct {
	Width      int
	Height     int
	ColorModel string
}

// Identify reads just the PNG header.
func Identify(path string) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return &Info{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ColorModel: colorModelName(cfg),
	}, nil
}

func colorModelName(cfg image.Config) string {
	switch cfg.ColorModel {
	case color.NRGBAModel:
		return "RGBA8"
	case color.NRGBA64Model:
		return "RGBA16"
	case color.RGBAModel:
		return "RGB8"
	case color.RGBA64Model:
		return "RGB16"
	case color.GrayModel:
		return "Gray8"
	case color.Gray16Model:
		return "Gray16"
	default:
		if _, ok := cfg.ColorModel.(color.Palette); ok {
			return "Paletted"
		}
		return "unknown"
	}
}
