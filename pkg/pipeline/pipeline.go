// Package pipeline drives the per-pixel gamut conversion over a raster.
package pipeline

import (
	"github.com/retrotex/ntscjpng/pkg/dither"
	"github.com/retrotex/ntscjpng/pkg/gamut"
	"github.com/retrotex/ntscjpng/pkg/raster"
)

// Options selects the conversion direction and dithering strategy for
// one run.
type Options struct {
	Direction gamut.Direction
	Dither    dither.Strategy
}

// Run converts every pixel of r in place: normalize R,G,B to [0,1],
// apply the gamut transform for the selected direction, quantize each
// channel back to 8 bits with the selected dithering strategy. Alpha is
// copied through untouched. Visitation is row-major, ascending x within
// ascending y; error diffusion depends on that order.
func Run(r *raster.Raster, opts Options) {
	m := opts.Direction.Matrix()
	quant := [3]dither.Quantizer{
		dither.New(opts.Dither, dither.Red, r.Width, r.Height),
		dither.New(opts.Dither, dither.Green, r.Width, r.Height),
		dither.New(opts.Dither, dither.Blue, r.Width, r.Height),
	}

	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			red, green, blue, _ := r.RGBA(x, y)
			rgb := gamut.Transform([3]float64{
				float64(red) / 255,
				float64(green) / 255,
				float64(blue) / 255,
			}, m)
			r.SetRGB(x, y,
				quant[0].Quantize(rgb[0], x, y),
				quant[1].Quantize(rgb[1], x, y),
				quant[2].Quantize(rgb[2], x, y),
			)
		}
	}
}
