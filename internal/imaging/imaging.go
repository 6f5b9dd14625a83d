package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"

	"golang.org/x/image/draw"
)

const jpegQuality = 85

// CropRect is a crop region in source-pixel space.
type CropRect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ScaleFactor returns the uniform scale applied to a crop of the given width
// so the output never exceeds maxWidth and never upscales.
func ScaleFactor(cropWidth, maxWidth int) float64 {
	if cropWidth <= 0 || maxWidth <= 0 {
		return 1
	}
	s := float64(maxWidth) / float64(cropWidth)
	if s > 1 {
		return 1
	}
	return s
}

// Process decodes an image from src, crops it to rect (nil means the full
// frame), scales it down to at most maxWidth, and re-encodes it as JPEG.
// Returns the encoded bytes and the output dimensions.
func Process(src io.Reader, rect *CropRect, maxWidth int) ([]byte, int, int, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	crop := bounds
	if rect != nil {
		crop = image.Rect(
			bounds.Min.X+rect.X,
			bounds.Min.Y+rect.Y,
			bounds.Min.X+rect.X+rect.Width,
			bounds.Min.Y+rect.Y+rect.Height,
		).Intersect(bounds)
	}
	if crop.Dx() <= 0 || crop.Dy() <= 0 {
		return nil, 0, 0, fmt.Errorf("crop region outside image bounds")
	}

	scale := ScaleFactor(crop.Dx(), maxWidth)
	outW := crop.Dx()
	outH := crop.Dy()
	if scale < 1 {
		outW = maxWidth
		outH = int(float64(crop.Dy())*scale + 0.5)
		if outH < 1 {
			outH = 1
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, outW, outH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, crop, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, 0, 0, fmt.Errorf("encode jpeg: %w", err)
	}
	if buf.Len() == 0 {
		return nil, 0, 0, fmt.Errorf("encode produced empty output")
	}

	return buf.Bytes(), outW, outH, nil
}
