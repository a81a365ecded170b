package output

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestThumbnail(t *testing.T) {
	img := solidImage(16, 8, color.RGBA{R: 200, G: 100, B: 50, A: 255})

	tests := []struct {
		name      string
		width     uint
		expectedW int
		expectedH int
	}{
		{"Half size keeps aspect", 8, 8, 4},
		{"Zero width is a no-op", 0, 16, 8},
		{"Larger than source is a no-op", 32, 16, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Thumbnail(img, tt.width).Bounds()
			if b.Dx() != tt.expectedW || b.Dy() != tt.expectedH {
				t.Errorf("Expected %dx%d, got %dx%d", tt.expectedW, tt.expectedH, b.Dx(), b.Dy())
			}
		})
	}
}

func TestEncodeThumbnail(t *testing.T) {
	data, err := EncodeThumbnail(solidImage(20, 10, color.RGBA{A: 255}), 10)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Thumbnail does not decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 10 || b.Dy() != 5 {
		t.Errorf("Expected 10x5, got %v", b)
	}
}
