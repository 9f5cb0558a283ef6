package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

const (
	// DefaultResizeWidth is the first-stage resize target. Requests may
	// override it; the aspect ratio is always preserved.
	DefaultResizeWidth = 1024

	// ProcessingWidth is the fixed width of the model input. The height
	// follows the aspect ratio of the first-stage output. Mask candidates
	// come back in this coordinate space.
	ProcessingWidth = 512
)

// Size holds pixel dimensions.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Area returns the pixel count, Width times Height.
func (s Size) Area() int {
	return s.Width * s.Height
}

// ResizeToWidth scales img to the given width with the height following the
// aspect ratio. Lanczos resampling, matching the quality-first first stage.
func ResizeToWidth(img image.Image, width int) (image.Image, error) {
	if width <= 0 {
		return nil, fmt.Errorf("resize width must be positive, got %d", width)
	}
	return imaging.Resize(img, width, 0, imaging.Lanczos), nil
}

// PrepareForModel runs the two-stage resize chain the generator expects:
// first to resizeWidth (aspect preserved), then down to the fixed
// ProcessingWidth with proportional, truncated height. The second stage uses
// box resampling, the area-average filter suited to downscaling.
//
// The returned Size describes the processing image; callers retain the
// original dimensions themselves for the final remap.
func PrepareForModel(img image.Image, resizeWidth int) (image.Image, Size, error) {
	first, err := ResizeToWidth(img, resizeWidth)
	if err != nil {
		return nil, Size{}, err
	}

	fb := first.Bounds()
	procHeight := int(float64(ProcessingWidth) * (float64(fb.Dy()) / float64(fb.Dx())))
	if procHeight <= 0 {
		return nil, Size{}, fmt.Errorf("degenerate processing height %d for %dx%d input",
			procHeight, fb.Dx(), fb.Dy())
	}

	proc := imaging.Resize(first, ProcessingWidth, procHeight, imaging.Box)
	return proc, Size{Width: ProcessingWidth, Height: procHeight}, nil
}
