package dither

// 8×8 Bayer threshold matrix, values 0–63, each appearing exactly once.
// The permutation is load-bearing for bit-compatibility with prior
// output; do not regenerate it.
var bayerMatrix = [8][8]int{
	{0, 32, 8, 40, 2, 34, 10, 42},
	{48, 16, 56, 24, 50, 18, 58, 26},
	{12, 44, 4, 36, 14, 46, 6, 38},
	{60, 28, 52, 20, 62, 30, 54, 22},
	{3, 35, 11, 43, 1, 33, 9, 41},
	{51, 19, 59, 27, 49, 17, 57, 25},
	{15, 47, 7, 39, 13, 45, 5, 37},
	{63, 31, 55, 23, 61, 29, 53, 21},
}

type bayerQuantizer struct {
	channel       Channel
	width, height int
}

func (q *bayerQuantizer) Quantize(value float64, x, y int) uint8 {
	switch q.channel {
	case Red:
		x = q.width - 1 - x
	case Blue:
		y = q.height - 1 - y
	}
	out := int(value*255 + float64(bayerMatrix[y%8][x%8])/64)
	return clampByte(out)
}
