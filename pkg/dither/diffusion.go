package dither

import "math"

// Floyd–Steinberg error diffusion. Each channel owns a per-pixel carry
// plane; residual error propagates 7/16 right, 3/16 down-left, 5/16
// down, 1/16 down-right. Correct only for naturally-ordered rasters
// visited row-major, left to right: across swizzled tile boundaries the
// accumulator bleeds into pixels that are not really neighbors.
type diffusionQuantizer struct {
	width, height int
	carry         []float64
}

func (q *diffusionQuantizer) Quantize(value float64, x, y int) uint8 {
	exact := (value + q.carry[y*q.width+x]) * 255
	quantized := int(math.Round(exact))
	out := clampByte(quantized)
	residual := (exact - float64(out)) / 255

	if x+1 < q.width {
		q.carry[y*q.width+x+1] += residual * 7 / 16
	}
	if y+1 < q.height {
		if x-1 >= 0 {
			q.carry[(y+1)*q.width+x-1] += residual * 3 / 16
		}
		q.carry[(y+1)*q.width+x] += residual * 5 / 16
		if x+1 < q.width {
			q.carry[(y+1)*q.width+x+1] += residual * 1 / 16
		}
	}
	return out
}
