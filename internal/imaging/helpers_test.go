package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// createInMemoryImage returns a solid-color RGBA image.
func createInMemoryImage(width, height int, c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// writeTempPNG writes a solid white PNG to a temp file and returns its path.
func writeTempPNG(t *testing.T, width, height int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create temp image: %v", err)
	}
	defer f.Close()

	img := createInMemoryImage(width, height, color.RGBA{255, 255, 255, 255})
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode temp image: %v", err)
	}
	return path
}
