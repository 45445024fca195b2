package service

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x += 10 {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 80, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestOptimizeThumbnailDownscalesLargeImages(t *testing.T) {
	data := encodePNG(t, 1600, 900)

	optimized, err := OptimizeThumbnail(data)
	require.NoError(t, err)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(optimized))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 720, cfg.Width)
	assert.Equal(t, 405, cfg.Height, "aspect ratio preserved")
}

func TestOptimizeThumbnailKeepsSmallImages(t *testing.T) {
	data := encodePNG(t, 320, 180)

	optimized, err := OptimizeThumbnail(data)
	require.NoError(t, err)

	cfg, _, err := image.DecodeConfig(bytes.NewReader(optimized))
	require.NoError(t, err)
	assert.Equal(t, 320, cfg.Width)
	assert.Equal(t, 180, cfg.Height)
}

func TestOptimizeThumbnailRejectsGarbage(t *testing.T) {
	_, err := OptimizeThumbnail([]byte("not an image"))
	require.Error(t, err)
}
