package imaging

import (
	"encoding/base64"
	"image/color"
	"testing"
)

func TestCropRegion(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	result, err := CropRegion(img, [4]int{0, 0, 50, 50}, 1.0)
	if err != nil {
		t.Fatalf("CropRegion failed: %v", err)
	}

	if result.Width != 50 || result.Height != 50 {
		t.Errorf("dimensions: got %dx%d, want 50x50", result.Width, result.Height)
	}
	if result.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", result.MimeType)
	}
	if _, err := base64.StdEncoding.DecodeString(result.ImageBase64); err != nil {
		t.Errorf("failed to decode base64: %v", err)
	}
}

func TestCropRegion_WithScale(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	result, err := CropRegion(img, [4]int{0, 0, 50, 50}, 2.0)
	if err != nil {
		t.Fatalf("CropRegion with scale failed: %v", err)
	}
	if result.Width != 100 || result.Height != 100 {
		t.Errorf("scaled dimensions: got %dx%d, want 100x100", result.Width, result.Height)
	}
}

func TestCropRegion_OutOfBounds(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	tests := []struct {
		name string
		box  [4]int
	}{
		{"x1 negative", [4]int{-1, 0, 50, 50}},
		{"y1 negative", [4]int{0, -1, 50, 50}},
		{"x2 too large", [4]int{0, 0, 101, 50}},
		{"y2 too large", [4]int{0, 0, 50, 101}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CropRegion(img, tt.box, 1.0); err == nil {
				t.Error("CropRegion should fail for out-of-bounds region")
			}
		})
	}
}

func TestCropRegion_InvalidRegion(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	tests := []struct {
		name string
		box  [4]int
	}{
		{"x1 >= x2", [4]int{50, 0, 50, 50}},
		{"y1 >= y2", [4]int{0, 50, 50, 50}},
		{"zero area", [4]int{50, 50, 50, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CropRegion(img, tt.box, 1.0); err == nil {
				t.Error("CropRegion should fail for invalid region")
			}
		})
	}
}
