package pipeline

import (
	"context"
	"encoding/json"
	"image"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/segmentkit/segment-mcp/internal/imaging"
	"github.com/segmentkit/segment-mcp/internal/mask"
	"github.com/segmentkit/segment-mcp/internal/sam"
)

// Area thresholds as fractions of the processing image's pixel count: masks
// smaller than a 0.05-side square or larger than a 0.8-side square of the
// image are discarded. Scale-relative rather than absolute pixel counts.
const (
	lowerAreaFraction = 0.05 * 0.05
	upperAreaFraction = 0.8 * 0.8
)

// DefaultConfidenceThreshold is the minimum (exclusive) predicted quality a
// candidate needs to survive filtering.
const DefaultConfidenceThreshold = 0.9

// IntersectionThreshold is the overlap ratio passed to deduplication.
// Deliberately loose: a 1% overlap relative to the smaller mask already
// suppresses it. Much tighter than mask.DefaultIntersectionThreshold.
const IntersectionThreshold = 0.01

// ErrBadGeometry marks configuration errors caught before the model runs:
// zero-area input, non-positive resize target, or an empty area window.
var ErrBadGeometry = errors.New("bad pipeline geometry")

// Options configures a single run.
type Options struct {
	// ResizeWidth is the first-stage resize target. Must be positive;
	// the server substitutes its configured default before calling Run.
	ResizeWidth int

	// ConfidenceThreshold overrides DefaultConfidenceThreshold when
	// non-zero.
	ConfidenceThreshold float64

	// Params is the opaque generator parameter bundle, passed through
	// unmodified.
	Params sam.Params
}

// Result is the outcome of one run.
type Result struct {
	// Regions are the surviving bounding boxes in original-image pixel
	// coordinates, the pipeline's actual product.
	Regions []mask.IntBox `json:"regions"`

	RawCount      int `json:"raw_count"`      // candidates returned by the model
	DroppedCount  int `json:"dropped_count"`  // malformed candidates rejected up front
	FilteredCount int `json:"filtered_count"` // survivors of the size/confidence filter
	RegionCount   int `json:"region_count"`   // survivors after deduplication

	OriginalSize   imaging.Size `json:"original_size"`
	ProcessingSize imaging.Size `json:"processing_size"`
}

// RegionsJSON returns the output-boundary encoding: a JSON array of
// [x1, y1, x2, y2] integer tuples, one per surviving region, ordered.
func (r *Result) RegionsJSON() (string, error) {
	b, err := json.Marshal(r.Regions)
	if err != nil {
		return "", errors.Wrap(err, "encoding regions")
	}
	return string(b), nil
}

// Pipeline runs the filter → deduplicate → remap sequence around one
// generator invocation.
type Pipeline struct {
	gen sam.Generator
	log *logrus.Logger
}

// New creates a Pipeline. A nil logger falls back to the logrus standard
// logger.
func New(gen sam.Generator, log *logrus.Logger) *Pipeline {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Pipeline{gen: gen, log: log}
}

// Run processes one decoded image through the full pipeline. The context
// bounds only the generator call; the pure post-processing stages have no
// suspension points.
func (p *Pipeline) Run(ctx context.Context, img image.Image, opts Options) (*Result, error) {
	bounds := img.Bounds()
	orig := imaging.Size{Width: bounds.Dx(), Height: bounds.Dy()}

	if orig.Width <= 0 || orig.Height <= 0 {
		return nil, errors.Wrapf(ErrBadGeometry, "zero-area input image %dx%d",
			orig.Width, orig.Height)
	}
	if opts.ResizeWidth <= 0 {
		return nil, errors.Wrapf(ErrBadGeometry, "resize width %d", opts.ResizeWidth)
	}

	proc, procSize, err := imaging.PrepareForModel(img, opts.ResizeWidth)
	if err != nil {
		return nil, errors.Wrap(ErrBadGeometry, err.Error())
	}

	imageArea := float64(procSize.Area())
	lowerArea := imageArea * lowerAreaFraction
	upperArea := imageArea * upperAreaFraction
	if lowerArea >= upperArea {
		return nil, errors.Wrapf(ErrBadGeometry, "empty area window [%g, %g]",
			lowerArea, upperArea)
	}

	confidence := opts.ConfidenceThreshold
	if confidence == 0 {
		confidence = DefaultConfidenceThreshold
	}

	raw, err := p.gen.Generate(ctx, proc, opts.Params)
	if err != nil {
		if !errors.Is(err, sam.ErrModelInvocation) {
			err = errors.Wrap(sam.ErrModelInvocation, err.Error())
		}
		return nil, err
	}

	valid, rejected := mask.Sanitize(raw)
	for _, rerr := range rejected {
		p.log.WithError(rerr).Warn("dropping malformed candidate")
	}

	filtered := mask.Filter(valid, lowerArea, upperArea, confidence)
	kept := mask.Deduplicate(filtered, IntersectionThreshold)

	regions := make([]mask.IntBox, 0, len(kept))
	for _, c := range kept {
		regions = append(regions, mask.Remap(c.Box,
			procSize.Width, procSize.Height, orig.Width, orig.Height))
	}

	p.log.WithField("regions", len(regions)).Info("deduplicated mask candidates")

	return &Result{
		Regions:        regions,
		RawCount:       len(raw),
		DroppedCount:   len(rejected),
		FilteredCount:  len(filtered),
		RegionCount:    len(regions),
		OriginalSize:   orig,
		ProcessingSize: procSize,
	}, nil
}
