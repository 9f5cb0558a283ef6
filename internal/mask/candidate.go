package mask

import (
	"errors"
	"fmt"
)

// ErrInvalidCandidate marks a malformed candidate: negative area or a box
// whose max corner lies before its min corner. Malformed candidates are
// dropped before filtering, never propagated as fatal errors.
var ErrInvalidCandidate = errors.New("invalid mask candidate")

// Candidate is one region proposal produced by the segmentation model.
type Candidate struct {
	// Box is the candidate's bounding box at processing resolution.
	Box Box `json:"box"`

	// Area is the pixel-mask area as reported by the model. It is treated
	// as an opaque size metric and is never recomputed from Box; for
	// non-rectangular masks the two differ, and deduplication depends on
	// the reported value.
	Area float64 `json:"area"`

	// Confidence is the model's quality score, nominally in [0,1] but
	// not clamped.
	Confidence float64 `json:"confidence"`
}

// Validate checks the candidate's structural invariants.
func (c Candidate) Validate() error {
	if c.Area < 0 {
		return fmt.Errorf("%w: negative area %g", ErrInvalidCandidate, c.Area)
	}
	if !c.Box.Valid() {
		return fmt.Errorf("%w: inverted box (%g,%g)-(%g,%g)",
			ErrInvalidCandidate, c.Box.X1, c.Box.Y1, c.Box.X2, c.Box.Y2)
	}
	return nil
}

// Sanitize splits candidates into the well-formed subsequence (original order
// preserved) and one validation error per rejected record.
func Sanitize(in []Candidate) ([]Candidate, []error) {
	out := make([]Candidate, 0, len(in))
	var rejected []error
	for _, c := range in {
		if err := c.Validate(); err != nil {
			rejected = append(rejected, err)
			continue
		}
		out = append(out, c)
	}
	return out, rejected
}
