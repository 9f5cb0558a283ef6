package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"strconv"

	"github.com/anthonynsimon/bild/clone"
	"github.com/lucasb-eyer/go-colorful"
)

// AnnotateResult contains the annotated image data.
type AnnotateResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	RegionCount int    `json:"region_count"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// DrawRegions outlines each box on a copy of img and numbers it, one hue per
// region. Boxes are clamped to the image bounds, so out-of-range coordinates
// are safe. lineWidth defaults to 2 when non-positive.
func DrawRegions(img image.Image, boxes [][4]int, lineWidth int) (*AnnotateResult, error) {
	if lineWidth <= 0 {
		lineWidth = 2
	}

	result := clone.AsRGBA(img)
	bounds := result.Bounds()

	for i, b := range boxes {
		outline := regionColor(i)
		drawRect(result, b[0], b[1], b[2], b[3], lineWidth, outline)
		drawLabel(result, b[0]+lineWidth+1, b[1]+lineWidth+1, strconv.Itoa(i),
			color.RGBA{255, 255, 255, 255}, color.RGBA{0, 0, 0, 180})
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, result); err != nil {
		return nil, fmt.Errorf("failed to encode annotated image: %w", err)
	}

	return &AnnotateResult{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		RegionCount: len(boxes),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// regionColor picks a saturated hue for region i. Stepping by the golden
// angle keeps neighboring indices visually distinct.
func regionColor(i int) color.RGBA {
	hue := math.Mod(float64(i)*137.5, 360)
	c := colorful.Hsv(hue, 0.9, 0.95)
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// drawRect draws an axis-aligned rectangle outline of the given line width.
func drawRect(img *image.RGBA, x1, y1, x2, y2, width int, col color.RGBA) {
	for t := 0; t < width; t++ {
		drawHorizontal(img, x1, x2, y1+t, col)
		drawHorizontal(img, x1, x2, y2-t, col)
		drawVertical(img, y1, y2, x1+t, col)
		drawVertical(img, y1, y2, x2-t, col)
	}
}

func drawHorizontal(img *image.RGBA, x1, x2, y int, col color.RGBA) {
	bounds := img.Bounds()
	if y < bounds.Min.Y || y >= bounds.Max.Y {
		return
	}
	if x1 < bounds.Min.X {
		x1 = bounds.Min.X
	}
	if x2 >= bounds.Max.X {
		x2 = bounds.Max.X - 1
	}
	for x := x1; x <= x2; x++ {
		img.Set(x, y, col)
	}
}

func drawVertical(img *image.RGBA, y1, y2, x int, col color.RGBA) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X {
		return
	}
	if y1 < bounds.Min.Y {
		y1 = bounds.Min.Y
	}
	if y2 >= bounds.Max.Y {
		y2 = bounds.Max.Y - 1
	}
	for y := y1; y <= y2; y++ {
		img.Set(x, y, col)
	}
}

// drawLabel draws a small pixel-font label at the given position.
func drawLabel(img *image.RGBA, x, y int, text string, fg, bg color.RGBA) {
	// 3x5 pixel font, digits only.
	glyphs := map[rune][]string{
		'0': {"111", "101", "101", "101", "111"},
		'1': {"010", "110", "010", "010", "111"},
		'2': {"111", "001", "111", "100", "111"},
		'3': {"111", "001", "111", "001", "111"},
		'4': {"101", "101", "111", "001", "001"},
		'5': {"111", "100", "111", "001", "111"},
		'6': {"111", "100", "111", "101", "111"},
		'7': {"111", "001", "001", "001", "001"},
		'8': {"111", "101", "111", "101", "111"},
		'9': {"111", "101", "111", "001", "111"},
	}

	bounds := img.Bounds()
	charWidth := 4
	labelWidth := len(text) * charWidth
	labelHeight := 7

	for dy := -1; dy < labelHeight; dy++ {
		for dx := -1; dx < labelWidth; dx++ {
			px, py := x+dx, y+dy
			if px >= bounds.Min.X && px < bounds.Max.X && py >= bounds.Min.Y && py < bounds.Max.Y {
				img.Set(px, py, bg)
			}
		}
	}

	cx := x
	for _, ch := range text {
		glyph, ok := glyphs[ch]
		if !ok {
			cx += charWidth
			continue
		}
		for row, line := range glyph {
			for col, pixel := range line {
				if pixel == '1' {
					px, py := cx+col, y+row
					if px >= bounds.Min.X && px < bounds.Max.X && py >= bounds.Min.Y && py < bounds.Max.Y {
						img.Set(px, py, fg)
					}
				}
			}
		}
		cx += charWidth
	}
}
