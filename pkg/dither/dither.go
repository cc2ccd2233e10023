// Package dither quantizes normalized channel values to 8-bit samples,
// spreading quantization error so the mean error over any large pixel
// set approaches zero.
//
// Inputs may be swizzled (tile-reordered) textures, where raster
// adjacency is meaningless. The quasirandom strategy is the default
// because its dither value is a pure function of the coordinate:
// cutting and splicing the image cannot introduce bias. Bayer is
// locally unbalanced at tile seams, and error diffusion is wrong
// across any reordering.
package dither

import "fmt"

// Quantizer converts a normalized gamma-encoded value at raster
// coordinate (x, y) to an 8-bit sample.
type Quantizer interface {
	Quantize(value float64, x, y int) uint8
}

// Strategy identifies a dithering strategy.
type Strategy int

const (
	Quasirandom Strategy = iota
	Bayer
	FloydSteinberg
)

// Channel identifies the color channel a quantizer serves. Bayer and
// quasirandom flip the sample coordinate per channel (width-relative
// for red, height-relative for blue) to decorrelate the dither
// patterns; the mapping is load-bearing for bit-compatibility with
// prior output.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

// ParseStrategy maps a CLI token to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "quasirandom":
		return Quasirandom, nil
	case "bayer":
		return Bayer, nil
	case "floyd-steinberg":
		return FloydSteinberg, nil
	default:
		return 0, fmt.Errorf("unknown dither strategy %q (want quasirandom, bayer or floyd-steinberg)", s)
	}
}

func (s Strategy) String() string {
	switch s {
	case Bayer:
		return "bayer"
	case FloydSteinberg:
		return "floyd-steinberg"
	default:
		return "quasirandom"
	}
}

// SwizzleSafe reports whether the strategy produces identical samples
// for a pixel regardless of how the raster has been spatially reordered.
func (s Strategy) SwizzleSafe() bool {
	return s != FloydSteinberg
}

// New returns a quantizer for one channel of a width×height raster.
// The caller always passes true raster coordinates; any per-channel
// decorrelation happens inside the strategy.
func New(s Strategy, ch Channel, width, height int) Quantizer {
	switch s {
	case Bayer:
		return &bayerQuantizer{channel: ch, width: width, height: height}
	case FloydSteinberg:
		return &diffusionQuantizer{width: width, height: height, carry: make([]float64, width*height)}
	default:
		return &quasirandomQuantizer{channel: ch, width: width, height: height}
	}
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
