package mask

// DefaultIntersectionThreshold is the stand-alone default overlap ratio for
// Deduplicate. The pipeline deliberately passes a much looser 0.01, so in
// production a 1% overlap already triggers suppression.
const DefaultIntersectionThreshold = 0.5

// Deduplicate suppresses candidates that overlap a larger candidate by more
// than intersectionThreshold, measured as a fraction of the smaller of the
// two reported areas.
//
// The pass walks every ordered pair (i, j), i < j, of a snapshot of the input
// taken once at the start; removals mark a tombstone rather than deleting
// from the slice being walked. The exact interaction rules:
//
//   - ratio = intersection(box_i, box_j) / min(area_i, area_j); suppression
//     requires ratio strictly above the threshold. Areas are the reported
//     mask areas, not box areas.
//   - The smaller-area candidate of the pair is removed. On an exact area
//     tie, j (the one compared second) is removed.
//   - Removing an already-removed candidate is a silent no-op.
//   - When removal of i itself succeeds, the inner walk for that i stops,
//     so later partners of i are never compared against it. The outer walk
//     still advances to i+1.
//   - Tombstoned candidates keep participating in comparisons: a removed i
//     can still suppress a live j, and a live i can still lose to a removed
//     j. Which of several mutually overlapping boxes survives depends on
//     this, so it is preserved exactly rather than normalized.
//
// Survivors are returned in their original relative order, though callers
// must not rely on any ordering.
func Deduplicate(in []Candidate, intersectionThreshold float64) []Candidate {
	alive := make([]bool, len(in))
	for i := range alive {
		alive[i] = true
	}

	for i := 0; i < len(in); i++ {
		for j := i + 1; j < len(in); j++ {
			overlap := in[i].Box.Intersection(in[j].Box)
			smaller := in[i].Area
			if in[j].Area < smaller {
				smaller = in[j].Area
			}
			ratio := overlap / smaller
			if ratio <= intersectionThreshold {
				continue
			}
			if in[i].Area < in[j].Area {
				if alive[i] {
					alive[i] = false
					break
				}
			} else {
				alive[j] = false
			}
		}
	}

	out := make([]Candidate, 0, len(in))
	for i, c := range in {
		if alive[i] {
			out = append(out, c)
		}
	}
	return out
}
