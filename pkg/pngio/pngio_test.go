package pngio

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/retrotex/ntscjpng/pkg/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	r, err := raster.New(3, 2)
	require.NoError(t, err)
	// Include translucent and transparent pixels; NRGBA must survive
	// the trip without premultiplication loss.
	copy(r.Pix, []uint8{
		255, 0, 0, 255, 0, 255, 0, 128, 0, 0, 255, 0,
		10, 20, 30, 255, 200, 100, 50, 64, 0, 0, 0, 255,
	})

	path := filepath.Join(t.TempDir(), "rt.png")
	require.NoError(t, Encode(r, path))

	got, err := Decode(path)
	require.NoError(t, err)
	assert.Equal(t, r.Width, got.Width)
	assert.Equal(t, r.Height, got.Height)
	assert.Equal(t, r.Pix, got.Pix)
}

func TestDecode_NormalizesGray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 1))
	img.SetGray(0, 0, color.Gray{Y: 0})
	img.SetGray(1, 0, color.Gray{Y: 200})

	path := filepath.Join(t.TempDir(), "gray.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	r, err := Decode(path)
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 0, 0, 255, 200, 200, 200, 255}, r.Pix)
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode(filepath.Join(t.TempDir(), "missing.png"))
	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)

	corrupt := filepath.Join(t.TempDir(), "corrupt.png")
	require.NoError(t, os.WriteFile(corrupt, []byte("not a png at all"), 0644))
	_, err = Decode(corrupt)
	require.ErrorAs(t, err, &decErr)
	assert.Contains(t, decErr.Error(), corrupt)
}

func TestEncode_Error(t *testing.T) {
	r, err := raster.New(1, 1)
	require.NoError(t, err)

	err = Encode(r, filepath.Join(t.TempDir(), "no", "such", "dir", "out.png"))
	var encErr *EncodeError
	require.ErrorAs(t, err, &encErr)
}

func TestIdentify(t *testing.T) {
	r, err := raster.New(5, 7)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "id.png")
	require.NoError(t, Encode(r, path))

	info, err := Identify(path)
	require.NoError(t, err)
	assert.Equal(t, 5, info.Width)
	assert.Equal(t, 7, info.Height)
	assert.Equal(t, "RGBA8", info.ColorModel)
}
