package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testImage(w, h int) *bytes.Buffer {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return &buf
}

func TestScaleFactorNeverUpscales(t *testing.T) {
	assert.Equal(t, 1.0, ScaleFactor(400, 800))
	assert.Equal(t, 1.0, ScaleFactor(800, 800))
	assert.Equal(t, 0.5, ScaleFactor(1600, 800))
	assert.Equal(t, 1.0, ScaleFactor(0, 800))
	assert.Equal(t, 1.0, ScaleFactor(800, 0))
}

func TestProcessSmallImageKeepsSize(t *testing.T) {
	data, w, h, err := Process(testImage(400, 300), nil, 800)
	assert.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, 400, w)
	assert.Equal(t, 300, h)

	decoded, err := jpeg.Decode(bytes.NewReader(data))
	assert.NoError(t, err)
	assert.Equal(t, 400, decoded.Bounds().Dx())
}

func TestProcessWideImageHitsMaxWidthExactly(t *testing.T) {
	data, w, h, err := Process(testImage(1600, 900), nil, 800)
	assert.NoError(t, err)
	assert.Equal(t, 800, w)
	assert.Equal(t, 450, h)

	decoded, err := jpeg.Decode(bytes.NewReader(data))
	assert.NoError(t, err)
	assert.Equal(t, 800, decoded.Bounds().Dx())
	assert.Equal(t, 450, decoded.Bounds().Dy())
}

func TestProcessCropThenScale(t *testing.T) {
	// Crop 1000x500 out of a 1600x900 frame, cap at 500 wide.
	rect := &CropRect{X: 100, Y: 100, Width: 1000, Height: 500}
	_, w, h, err := Process(testImage(1600, 900), rect, 500)
	assert.NoError(t, err)
	assert.Equal(t, 500, w)
	assert.Equal(t, 250, h)
}

func TestProcessCropSmallerThanMaxIsUntouched(t *testing.T) {
	rect := &CropRect{X: 0, Y: 0, Width: 300, Height: 200}
	_, w, h, err := Process(testImage(1600, 900), rect, 800)
	assert.NoError(t, err)
	assert.Equal(t, 300, w)
	assert.Equal(t, 200, h)
}

func TestProcessCropOutsideBounds(t *testing.T) {
	rect := &CropRect{X: 5000, Y: 5000, Width: 100, Height: 100}
	_, _, _, err := Process(testImage(400, 300), rect, 800)
	assert.Error(t, err)
}

func TestProcessGarbageInput(t *testing.T) {
	_, _, _, err := Process(bytes.NewBufferString("not an image"), nil, 800)
	assert.Error(t, err)
}
