package imaging

import (
	"image/color"
	"testing"
)

func TestResizeToWidth(t *testing.T) {
	img := createInMemoryImage(800, 400, color.RGBA{255, 0, 0, 255})

	out, err := ResizeToWidth(img, 1024)
	if err != nil {
		t.Fatalf("ResizeToWidth failed: %v", err)
	}

	bounds := out.Bounds()
	if bounds.Dx() != 1024 || bounds.Dy() != 512 {
		t.Errorf("dimensions: got %dx%d, want 1024x512", bounds.Dx(), bounds.Dy())
	}
}

func TestResizeToWidth_InvalidWidth(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	for _, width := range []int{0, -1, -512} {
		if _, err := ResizeToWidth(img, width); err == nil {
			t.Errorf("ResizeToWidth(%d) should fail", width)
		}
	}
}

func TestPrepareForModel(t *testing.T) {
	tests := []struct {
		name           string
		srcW, srcH     int
		resizeWidth    int
		wantProcHeight int
	}{
		{"2:1 landscape", 1024, 512, 1024, 256},
		{"4:3 landscape", 800, 600, 1024, 384},
		{"square", 640, 640, 1024, 512},
		{"2:1 with smaller first stage", 1024, 512, 512, 256},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := createInMemoryImage(tt.srcW, tt.srcH, color.RGBA{0, 255, 0, 255})

			proc, size, err := PrepareForModel(img, tt.resizeWidth)
			if err != nil {
				t.Fatalf("PrepareForModel failed: %v", err)
			}

			if size.Width != ProcessingWidth || size.Height != tt.wantProcHeight {
				t.Errorf("size: got %dx%d, want %dx%d",
					size.Width, size.Height, ProcessingWidth, tt.wantProcHeight)
			}
			bounds := proc.Bounds()
			if bounds.Dx() != size.Width || bounds.Dy() != size.Height {
				t.Errorf("image is %dx%d but reported size is %dx%d",
					bounds.Dx(), bounds.Dy(), size.Width, size.Height)
			}
		})
	}
}

func TestPrepareForModel_DegenerateAspect(t *testing.T) {
	// A sliver this wide collapses to zero processing height.
	img := createInMemoryImage(2000, 1, color.RGBA{0, 255, 0, 255})

	if _, _, err := PrepareForModel(img, 1024); err == nil {
		t.Error("PrepareForModel should fail when the processing height truncates to zero")
	}
}

func TestPrepareForModel_InvalidResizeWidth(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{0, 255, 0, 255})

	if _, _, err := PrepareForModel(img, 0); err == nil {
		t.Error("PrepareForModel should fail for zero resize width")
	}
}

func TestSize_Area(t *testing.T) {
	s := Size{Width: 512, Height: 256}
	if got := s.Area(); got != 131072 {
		t.Errorf("Area() = %d, want 131072", got)
	}
}
