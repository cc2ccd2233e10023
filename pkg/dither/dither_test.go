package dither

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStrategy(t *testing.T) {
	for tok, want := range map[string]Strategy{
		"quasirandom":     Quasirandom,
		"bayer":           Bayer,
		"floyd-steinberg": FloydSteinberg,
	} {
		got, err := ParseStrategy(tok)
		require.NoError(t, err, tok)
		assert.Equal(t, want, got, tok)
		assert.Equal(t, tok, got.String())
	}
	_, err := ParseStrategy("random")
	assert.Error(t, err)
}

func TestSwizzleSafe(t *testing.T) {
	assert.True(t, Quasirandom.SwizzleSafe())
	assert.True(t, Bayer.SwizzleSafe())
	assert.False(t, FloydSteinberg.SwizzleSafe())
}

func TestBayer_MatrixBalanced(t *testing.T) {
	// Every threshold 0–63 appears exactly once.
	var seen [64]int
	for _, row := range bayerMatrix {
		for _, v := range row {
			require.GreaterOrEqual(t, v, 0)
			require.Less(t, v, 64)
			seen[v]++
		}
	}
	for v, n := range seen {
		assert.Equal(t, 1, n, "threshold %d", v)
	}
}

func TestQuantize_ExtremesAreExact(t *testing.T) {
	// Full black and full white carry no quantization error; no
	// strategy may perturb them.
	const w, h = 16, 16
	for _, s := range []Strategy{Quasirandom, Bayer, FloydSteinberg} {
		for _, ch := range []Channel{Red, Green, Blue} {
			q := New(s, ch, w, h)
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					require.Equal(t, uint8(0), q.Quantize(0, x, y), "%s ch=%d black at (%d,%d)", s, ch, x, y)
				}
			}
			q = New(s, ch, w, h)
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					require.Equal(t, uint8(255), q.Quantize(1, x, y), "%s ch=%d white at (%d,%d)", s, ch, x, y)
				}
			}
		}
	}
}

func TestQuasirandom_Unbiased(t *testing.T) {
	const w, h = 16, 16 // 256 samples, well past the 64-pixel floor
	for _, value := range []float64{0.1, 1.0 / 3, 0.5, 0.73, 0.9} {
		for _, ch := range []Channel{Red, Green, Blue} {
			q := New(Quasirandom, ch, w, h)
			sum := 0.0
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					sum += float64(q.Quantize(value, x, y))/255 - value
				}
			}
			mean := sum / (w * h)
			assert.InDelta(t, 0, mean, 2e-3, "value=%v channel=%d", value, ch)
		}
	}
}

func TestQuasirandom_OrderIndependent(t *testing.T) {
	// The dither value at a coordinate depends on nothing but the
	// coordinate, so any visitation order (a swizzled read pattern)
	// yields identical samples. Error diffusion must fail this.
	const w, h = 32, 32
	value := func(x, y int) float64 { return float64(x+y*w) / float64(w*h) }

	type coord struct{ x, y int }
	coords := make([]coord, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			coords = append(coords, coord{x, y})
		}
	}
	shuffled := make([]coord, len(coords))
	copy(shuffled, coords)
	rand.New(rand.NewSource(1)).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	runOrder := func(s Strategy, order []coord) map[coord]uint8 {
		q := New(s, Green, w, h)
		out := make(map[coord]uint8, len(order))
		for _, c := range order {
			out[c] = q.Quantize(value(c.x, c.y), c.x, c.y)
		}
		return out
	}

	rowMajor := runOrder(Quasirandom, coords)
	scrambled := runOrder(Quasirandom, shuffled)
	require.Equal(t, rowMajor, scrambled, "quasirandom output changed with visitation order")

	fsRowMajor := runOrder(FloydSteinberg, coords)
	fsScrambled := runOrder(FloydSteinberg, shuffled)
	assert.NotEqual(t, fsRowMajor, fsScrambled, "error diffusion is order dependent; identical output means the accumulator is dead")
}

func TestChannelDecorrelation_CoordinateFlips(t *testing.T) {
	// Red mirrors across width, blue across height, green untouched.
	const w, h = 8, 8
	for _, s := range []Strategy{Quasirandom, Bayer} {
		red := New(s, Red, w, h)
		green := New(s, Green, w, h)
		blue := New(s, Blue, w, h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				v := 0.41
				assert.Equal(t, green.Quantize(v, w-1-x, y), red.Quantize(v, x, y), "%s red flip at (%d,%d)", s, x, y)
				assert.Equal(t, green.Quantize(v, x, h-1-y), blue.Quantize(v, x, y), "%s blue flip at (%d,%d)", s, x, y)
			}
		}
	}
}

func TestFloydSteinberg_MeanErrorConverges(t *testing.T) {
	const w, h = 64, 64
	for _, value := range []float64{0.25, 0.5, 0.7321} {
		q := New(FloydSteinberg, Green, w, h)
		sum := 0.0
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				sum += float64(q.Quantize(value, x, y))/255 - value
			}
		}
		mean := sum / (w * h)
		assert.InDelta(t, 0, mean, 1e-3, "value=%v", value)
	}
}
