// Package imaging provides the image plumbing around the mask pipeline:
// cached loading and decoding, the two-stage resize chain that produces the
// model's processing-resolution input, and region cropping and annotation of
// results on the original image.
package imaging
