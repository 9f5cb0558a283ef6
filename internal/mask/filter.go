package mask

// Filter returns the subsequence of candidates whose area lies strictly
// inside the open interval (lowerArea, upperArea) and whose confidence
// strictly exceeds confidenceThreshold.
//
// All three comparisons are exclusive: a candidate sitting exactly on a bound
// is dropped. Relative order is preserved and the input slice is not mutated.
func Filter(in []Candidate, lowerArea, upperArea, confidenceThreshold float64) []Candidate {
	out := make([]Candidate, 0, len(in))
	for _, c := range in {
		if lowerArea < c.Area && c.Area < upperArea && c.Confidence > confidenceThreshold {
			out = append(out, c)
		}
	}
	return out
}
