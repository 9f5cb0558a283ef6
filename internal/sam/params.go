package sam

// Params bundles the tuning knobs forwarded to the automatic mask generator.
// They are opaque to the post-processing core: the pipeline passes them
// through unmodified, and none of them affects filtering, deduplication, or
// remapping.
type Params struct {
	// PointsPerSide is the number of points sampled along one side of the
	// image; the total grid is PointsPerSide squared.
	PointsPerSide int `json:"points_per_side"`

	// PredIoUThresh filters masks by the model's own predicted quality.
	PredIoUThresh float64 `json:"pred_iou_thresh"`

	// StabilityScoreThresh filters masks by their stability under changes
	// to the binarization cutoff.
	StabilityScoreThresh float64 `json:"stability_score_thresh"`

	// StabilityScoreOffset shifts the cutoff used when computing the
	// stability score.
	StabilityScoreOffset float64 `json:"stability_score_offset"`

	// BoxNMSThresh is the box IoU cutoff for the generator's own
	// non-maximal suppression.
	BoxNMSThresh float64 `json:"box_nms_thresh"`

	// CropNLayers enables re-running prediction on image crops when
	// greater than zero; layer i runs on 2^i crops.
	CropNLayers int `json:"crop_n_layers"`

	// CropNMSThresh suppresses duplicate masks between crops.
	CropNMSThresh float64 `json:"crop_nms_thresh"`

	// CropOverlapRatio sets how much first-layer crops overlap, as a
	// fraction of image length.
	CropOverlapRatio float64 `json:"crop_overlap_ratio"`

	// CropNPointsDownscaleFactor scales down points-per-side in layer n
	// by this factor to the power of n.
	CropNPointsDownscaleFactor int `json:"crop_n_points_downscale_factor"`

	// MinMaskRegionArea removes disconnected regions and holes smaller
	// than this area during the generator's postprocessing, when
	// greater than zero.
	MinMaskRegionArea int `json:"min_mask_region_area"`
}

// DefaultParams returns the generator defaults used when a request does not
// override them.
func DefaultParams() Params {
	return Params{
		PointsPerSide:              32,
		PredIoUThresh:              0.88,
		StabilityScoreThresh:       0.95,
		StabilityScoreOffset:       1.0,
		BoxNMSThresh:               0.7,
		CropNLayers:                0,
		CropNMSThresh:              0.7,
		CropOverlapRatio:           512.0 / 1500.0,
		CropNPointsDownscaleFactor: 1,
		MinMaskRegionArea:          0,
	}
}
