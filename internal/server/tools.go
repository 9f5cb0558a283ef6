package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// segmentProperties is the argument schema shared by the segmentation tools:
// the image path, the pipeline knobs, and the generator parameter overrides.
func segmentProperties() map[string]interface{} {
	return map[string]interface{}{
		"path": map[string]interface{}{
			"type":        "string",
			"description": "Absolute path to the image file",
		},
		"resize_width": map[string]interface{}{
			"type":        "integer",
			"description": "First-stage resize target width in pixels (default 1024, or the server's configured default)",
		},
		"confidence_threshold": map[string]interface{}{
			"type":        "number",
			"description": "Minimum predicted mask quality, exclusive (default 0.9)",
			"default":     0.9,
		},
		"points_per_side": map[string]interface{}{
			"type":        "integer",
			"description": "Sampling grid density for the mask generator (default 32)",
			"default":     32,
		},
		"pred_iou_thresh": map[string]interface{}{
			"type":        "number",
			"description": "Model-side predicted IoU cutoff (default 0.88)",
			"default":     0.88,
		},
		"stability_score_thresh": map[string]interface{}{
			"type":        "number",
			"description": "Model-side stability score cutoff (default 0.95)",
			"default":     0.95,
		},
		"stability_score_offset": map[string]interface{}{
			"type":        "number",
			"description": "Offset used when computing the stability score (default 1.0)",
			"default":     1.0,
		},
		"box_nms_thresh": map[string]interface{}{
			"type":        "number",
			"description": "Model-side box NMS IoU cutoff (default 0.7)",
			"default":     0.7,
		},
		"crop_n_layers": map[string]interface{}{
			"type":        "integer",
			"description": "Number of crop layers the generator runs (default 0)",
			"default":     0,
		},
		"crop_nms_thresh": map[string]interface{}{
			"type":        "number",
			"description": "NMS cutoff between crop layers (default 0.7)",
			"default":     0.7,
		},
		"crop_overlap_ratio": map[string]interface{}{
			"type":        "number",
			"description": "Overlap between crops as a fraction of image size (default 512/1500)",
		},
		"crop_n_points_downscale_factor": map[string]interface{}{
			"type":        "integer",
			"description": "Point grid downscaling per crop layer (default 1)",
			"default":     1,
		},
		"min_mask_region_area": map[string]interface{}{
			"type":        "integer",
			"description": "Model-side minimum mask region area in pixels (default 0, disabled)",
			"default":     0,
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	annotateProps := segmentProperties()
	annotateProps["line_width"] = map[string]interface{}{
		"type":        "integer",
		"description": "Outline thickness in pixels (default 2)",
		"default":     2,
	}

	return []Tool{
		// Segmentation
		{
			Name:        "segment_image",
			Description: "Run automatic mask generation on an image and return the surviving region bounding boxes in original-image pixel coordinates, after size/confidence filtering and overlap deduplication.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": segmentProperties(),
				"required":   []string{"path"},
			},
		},
		{
			Name:        "segment_annotate",
			Description: "Segment an image and return it with each surviving region outlined and numbered, as base64-encoded PNG. Useful for visually checking what the pipeline kept.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": annotateProps,
				"required":   []string{"path"},
			},
		},

		// Region Operations
		{
			Name:        "region_crop",
			Description: "Crop a rectangular region from an image and return it as base64-encoded PNG. Use this to zoom into a region returned by segment_image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x1": map[string]interface{}{
						"type":        "integer",
						"description": "Left edge X coordinate (0-based)",
					},
					"y1": map[string]interface{}{
						"type":        "integer",
						"description": "Top edge Y coordinate (0-based)",
					},
					"x2": map[string]interface{}{
						"type":        "integer",
						"description": "Right edge X coordinate (exclusive)",
					},
					"y2": map[string]interface{}{
						"type":        "integer",
						"description": "Bottom edge Y coordinate (exclusive)",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor (e.g., 2.0 to double size). Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path", "x1", "y1", "x2", "y2"},
			},
		},

		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions and format. Caches the decoded image for subsequent operations.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
