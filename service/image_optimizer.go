package service

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/disintegration/imaging"
)

const (
	thumbnailQuality = 75
	thumbnailMaxDim  = 720
)

// OptimizeThumbnail re-encodes a thumbnail as JPEG, downscaling it so
// neither dimension exceeds thumbnailMaxDim. Aspect ratio is preserved.
// Callers fall back to the raw bytes when optimization fails.
func OptimizeThumbnail(imageData []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode thumbnail: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	var resized image.Image = img
	if width > thumbnailMaxDim || height > thumbnailMaxDim {
		var newWidth, newHeight int
		if width > height {
			newWidth = thumbnailMaxDim
			newHeight = int(float64(height) * float64(thumbnailMaxDim) / float64(width))
		} else {
			newHeight = thumbnailMaxDim
			newWidth = int(float64(width) * float64(thumbnailMaxDim) / float64(height))
		}
		resized = imaging.Resize(img, newWidth, newHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: thumbnailQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}
