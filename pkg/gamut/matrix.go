package gamut

import "fmt"

// Matrix is a 3×3 gamut conversion matrix applied to linear RGB,
// out[i] = Σ_j m[i][j]·in[j].
type Matrix [3][3]float64

// Direction selects one of the two supported conversions.
type Direction int

const (
	// NTSCJToSRGB corrects pixels authored for the NTSC-J gamut but
	// tagged as sRGB.
	NTSCJToSRGB Direction = iota
	// SRGBToNTSCJ is the reverse correction.
	SRGBToNTSCJ
)

// CLI mode tokens.
const (
	TokenNTSCJToSRGB = "ntscj-to-srgb"
	TokenSRGBToNTSCJ = "srgb-to-ntscj"
)

// Both matrices are precomputed offline with the Bradford chromatic
// adaptation method and shipped as constants; they are derived
// independently per direction, so round trips are close but not
// bit-exact even before quantization.
var (
	matNTSCJToSRGB = Matrix{
		{1.42849423843304, -0.343794575385404, -0.084699613295359},
		{-0.028230868456879, 0.937886666562635, 0.09034421347425},
		{-0.026451048534459, -0.04977408617468, 1.07622507193376},
	}
	matSRGBToNTSCJ = Matrix{
		{0.705809847091386, 0.260511152438085, 0.033678964452371},
		{0.019487416571909, 1.068690622831279, -0.088178058283586},
		{0.018248393747227, 0.055828370717870, 0.925923292105696},
	}
)

// ParseDirection maps a CLI mode token to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case TokenNTSCJToSRGB:
		return NTSCJToSRGB, nil
	case TokenSRGBToNTSCJ:
		return SRGBToNTSCJ, nil
	default:
		return 0, fmt.Errorf("unknown conversion mode %q (want %s or %s)",
			s, TokenNTSCJToSRGB, TokenSRGBToNTSCJ)
	}
}

// String returns the CLI token for the direction.
func (d Direction) String() string {
	if d == SRGBToNTSCJ {
		return TokenSRGBToNTSCJ
	}
	return TokenNTSCJToSRGB
}

// Matrix returns the conversion matrix bound to the direction.
func (d Direction) Matrix() Matrix {
	if d == SRGBToNTSCJ {
		return matSRGBToNTSCJ
	}
	return matNTSCJToSRGB
}
