// Package mask implements the candidate post-processing core: validation of
// raw mask candidates, size/confidence filtering, greedy overlap-based
// deduplication, and remapping of surviving bounding boxes from the
// processing resolution back to original-image pixel coordinates.
//
// All functions are pure: they never mutate their input slices and hold no
// state between calls. One prediction request owns its candidate slice for
// the duration of the pipeline.
package mask
