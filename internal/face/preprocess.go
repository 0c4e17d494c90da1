package face

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
)

// Preprocess decodes raw image bytes and normalizes them for face detection:
// the longer side is capped at maxSide, and a portrait result is rotated 90°
// to correct uploads from rotated camera sensors. Returns JPEG bytes.
func Preprocess(data []byte, maxSide int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	img = capSize(img, maxSide)

	bounds := img.Bounds()
	if bounds.Dy() > bounds.Dx() {
		img = rotate90(img)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// capSize scales the image down so its longer side is at most maxSide,
// keeping aspect ratio. Smaller images pass through untouched.
func capSize(img image.Image, maxSide int) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width <= maxSide && height <= maxSide {
		return img
	}

	var newWidth, newHeight int
	if width > height {
		newWidth = maxSide
		newHeight = int(float64(height) * float64(maxSide) / float64(width))
	} else {
		newHeight = maxSide
		newWidth = int(float64(width) * float64(maxSide) / float64(height))
	}

	resized := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)
	return resized
}

// rotate90 rotates the image 90° clockwise.
func rotate90(img image.Image) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	rotated := image.NewRGBA(image.Rect(0, 0, height, width))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			rotated.Set(height-1-y, x, img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}
	return rotated
}
