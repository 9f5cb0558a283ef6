package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentkit/segment-mcp/internal/imaging"
	"github.com/segmentkit/segment-mcp/internal/pipeline"
	"github.com/segmentkit/segment-mcp/internal/sam"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "segment_image", "region_crop").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads images from cache as needed
//  4. Calls the appropriate pipeline/imaging function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Segmentation
	case "segment_image":
		return s.handleSegmentImage(args)
	case "segment_annotate":
		return s.handleSegmentAnnotate(args)

	// Region Operations
	case "region_crop":
		return s.handleRegionCrop(args)

	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Segmentation Handlers ===

type segmentArgs struct {
	Path                string  `json:"path"`
	ResizeWidth         int     `json:"resize_width"`
	ConfidenceThreshold float64 `json:"confidence_threshold"`

	PointsPerSide              int     `json:"points_per_side"`
	PredIoUThresh              float64 `json:"pred_iou_thresh"`
	StabilityScoreThresh       float64 `json:"stability_score_thresh"`
	StabilityScoreOffset       float64 `json:"stability_score_offset"`
	BoxNMSThresh               float64 `json:"box_nms_thresh"`
	CropNLayers                int     `json:"crop_n_layers"`
	CropNMSThresh              float64 `json:"crop_nms_thresh"`
	CropOverlapRatio           float64 `json:"crop_overlap_ratio"`
	CropNPointsDownscaleFactor int     `json:"crop_n_points_downscale_factor"`
	MinMaskRegionArea          int     `json:"min_mask_region_area"`
}

// options turns the request arguments into pipeline options, substituting the
// server's configured resize width and the generator defaults for anything
// the caller left unset.
func (a segmentArgs) options(defaultResizeWidth int) pipeline.Options {
	params := sam.DefaultParams()
	if a.PointsPerSide != 0 {
		params.PointsPerSide = a.PointsPerSide
	}
	if a.PredIoUThresh != 0 {
		params.PredIoUThresh = a.PredIoUThresh
	}
	if a.StabilityScoreThresh != 0 {
		params.StabilityScoreThresh = a.StabilityScoreThresh
	}
	if a.StabilityScoreOffset != 0 {
		params.StabilityScoreOffset = a.StabilityScoreOffset
	}
	if a.BoxNMSThresh != 0 {
		params.BoxNMSThresh = a.BoxNMSThresh
	}
	if a.CropNLayers != 0 {
		params.CropNLayers = a.CropNLayers
	}
	if a.CropNMSThresh != 0 {
		params.CropNMSThresh = a.CropNMSThresh
	}
	if a.CropOverlapRatio != 0 {
		params.CropOverlapRatio = a.CropOverlapRatio
	}
	if a.CropNPointsDownscaleFactor != 0 {
		params.CropNPointsDownscaleFactor = a.CropNPointsDownscaleFactor
	}
	if a.MinMaskRegionArea != 0 {
		params.MinMaskRegionArea = a.MinMaskRegionArea
	}

	resizeWidth := a.ResizeWidth
	if resizeWidth == 0 {
		resizeWidth = defaultResizeWidth
	}

	return pipeline.Options{
		ResizeWidth:         resizeWidth,
		ConfidenceThreshold: a.ConfidenceThreshold,
		Params:              params,
	}
}

func (s *Server) handleSegmentImage(args json.RawMessage) (interface{}, error) {
	var a segmentArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return s.pipe.Run(context.Background(), img, a.options(s.resizeWidth))
}

type segmentAnnotateArgs struct {
	segmentArgs
	LineWidth int `json:"line_width"`
}

// segmentAnnotateResult pairs the segmentation counts with the annotated
// image so a client gets both from one call.
type segmentAnnotateResult struct {
	*pipeline.Result
	Annotated *imaging.AnnotateResult `json:"annotated"`
}

func (s *Server) handleSegmentAnnotate(args json.RawMessage) (interface{}, error) {
	var a segmentAnnotateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	result, err := s.pipe.Run(context.Background(), img, a.options(s.resizeWidth))
	if err != nil {
		return nil, err
	}

	boxes := make([][4]int, len(result.Regions))
	for i, r := range result.Regions {
		boxes[i] = r
	}
	annotated, err := imaging.DrawRegions(img, boxes, a.LineWidth)
	if err != nil {
		return nil, err
	}

	return &segmentAnnotateResult{Result: result, Annotated: annotated}, nil
}

// === Region Operation Handlers ===

type regionCropArgs struct {
	Path  string  `json:"path"`
	X1    int     `json:"x1"`
	Y1    int     `json:"y1"`
	X2    int     `json:"x2"`
	Y2    int     `json:"y2"`
	Scale float64 `json:"scale"`
}

func (s *Server) handleRegionCrop(args json.RawMessage) (interface{}, error) {
	var a regionCropArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.CropRegion(img, [4]int{a.X1, a.Y1, a.X2, a.Y2}, a.Scale)
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}
