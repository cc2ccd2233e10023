// Package gamut converts gamma-encoded RGB triples between the NTSC-J
// and sRGB color gamuts using precomputed Bradford adaptation matrices.
package gamut

// Transform maps one gamma-encoded RGB triple to the other gamut.
// Order is fixed: linearize each channel, multiply by the matrix,
// clamp to [0,1], re-encode. Clamping happens between the multiply and
// the re-encode because the adaptation can overshoot the gamut and the
// gamma curve is undefined outside [0,1]. Alpha never passes through here.
func Transform(rgb [3]float64, m Matrix) [3]float64 {
	var lin [3]float64
	for i, v := range rgb {
		lin[i] = ToLinear(v)
	}
	var out [3]float64
	for i := range out {
		v := m[i][0]*lin[0] + m[i][1]*lin[1] + m[i][2]*lin[2]
		out[i] = ToGamma(Clamp01(v))
	}
	return out
}
