package mask

// IntBox is a remapped bounding box in original-image pixel coordinates,
// in [x1, y1, x2, y2] order. It marshals as a JSON array, which is the
// pipeline's output encoding.
type IntBox [4]int

// Remap scales a processing-resolution box back to original-image
// coordinates. Each of the four fields is scaled independently by its axis
// ratio and truncated toward zero. Truncation rather than rounding is part
// of the output contract; upstream coordinates are non-negative, so this is
// the integer floor.
//
// Area and confidence are not remapped; only the box survives into the
// output. Dimensions are positive by construction upstream, so there are no
// failure modes for finite input.
func Remap(b Box, procWidth, procHeight, origWidth, origHeight int) IntBox {
	sx := float64(origWidth) / float64(procWidth)
	sy := float64(origHeight) / float64(procHeight)
	return IntBox{
		int(b.X1 * sx),
		int(b.Y1 * sy),
		int(b.X2 * sx),
		int(b.Y2 * sy),
	}
}
