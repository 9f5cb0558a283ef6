package mask

// Box is an axis-aligned bounding box in processing-resolution pixel
// coordinates. Coordinates are not necessarily integral until remapping.
//
// The coordinate convention follows standard image bounds: (X1, Y1) is the
// top-left corner and (X2, Y2) the bottom-right corner.
type Box struct {
	X1 float64 `json:"x1"` // Left edge
	Y1 float64 `json:"y1"` // Top edge
	X2 float64 `json:"x2"` // Right edge
	Y2 float64 `json:"y2"` // Bottom edge
}

// Valid reports whether the corners are ordered, i.e. X1 <= X2 and Y1 <= Y2.
func (b Box) Valid() bool {
	return b.X1 <= b.X2 && b.Y1 <= b.Y2
}

// GeometricArea returns the area spanned by the box itself. This is distinct
// from Candidate.Area, which is the model-reported pixel-mask area.
func (b Box) GeometricArea() float64 {
	return (b.X2 - b.X1) * (b.Y2 - b.Y1)
}

// Intersection returns the area of overlap between two boxes. Disjoint boxes
// yield 0; negative extents are clamped per axis before multiplying.
func (b Box) Intersection(o Box) float64 {
	xOverlap := min(b.X2, o.X2) - max(b.X1, o.X1)
	if xOverlap < 0 {
		xOverlap = 0
	}
	yOverlap := min(b.Y2, o.Y2) - max(b.Y1, o.Y1)
	if yOverlap < 0 {
		yOverlap = 0
	}
	return xOverlap * yOverlap
}
