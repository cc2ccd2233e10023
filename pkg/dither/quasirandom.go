package dither

import "math"

// 2D additive recurrence constants (low-discrepancy, plastic-ratio
// family). The dither value at any coordinate is independent of every
// other coordinate, so tile reordering cannot bias the output.
const (
	alphaX = 0.7548776662
	alphaY = 0.56984029
)

type quasirandomQuantizer struct {
	channel       Channel
	width, height int
}

func (q *quasirandomQuantizer) Quantize(value float64, x, y int) uint8 {
	switch q.channel {
	case Red:
		x = q.width - 1 - x
	case Blue:
		y = q.height - 1 - y
	}
	// 1-indexed coordinates into the recurrence.
	_, f := math.Modf(float64(x+1)*alphaX + float64(y+1)*alphaY)
	// Fold into a triangular wave. Leave exactly 0.5 alone so a value
	// sitting on a meaningful threshold (full black, full transparent)
	// is never pushed across it.
	var d float64
	switch {
	case f < 0.5:
		d = 2 * f
	case f > 0.5:
		d = 2 - 2*f
	default:
		d = 0.5
	}
	// Additive truncation, not round-to-nearest: the dither term
	// already carries the rounding bias.
	return clampByte(int(value*255 + d))
}
