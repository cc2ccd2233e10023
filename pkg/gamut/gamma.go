package gamut

import "math"

// sRGB piecewise transfer function. Both NTSC-J and sRGB share this curve
// shape in our model; only the primaries (and so the matrices) differ.
const (
	linearThreshold = 0.0031308
	gammaThreshold  = 0.04045
	linearSlope     = 12.92
)

// Clamp01 clamps v to the [0,1] range.
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ToLinear converts a gamma-encoded channel value to linear light.
// Output is clamped to [0,1]; float overshoot near the piecewise
// boundary must not propagate into the matrix multiply.
func ToLinear(v float64) float64 {
	if v <= gammaThreshold {
		return Clamp01(v / linearSlope)
	}
	return Clamp01(math.Pow((v+0.055)/1.055, 2.4))
}

// ToGamma converts a linear-light channel value back to gamma encoding.
// Output is clamped to [0,1].
func ToGamma(v float64) float64 {
	if v <= linearThreshold {
		return Clamp01(v * linearSlope)
	}
	return Clamp01(1.055*math.Pow(v, 1.0/2.4) - 0.055)
}
