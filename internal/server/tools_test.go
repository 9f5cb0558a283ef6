package server

import (
	"encoding/json"
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	want := []string{
		"segment_image",
		"segment_annotate",
		"region_crop",
		"image_load",
		"image_dimensions",
	}
	if len(tools) != len(want) {
		t.Fatalf("got %d tools, want %d", len(tools), len(want))
	}
	for i, name := range want {
		if tools[i].Name != name {
			t.Errorf("tools[%d].Name = %s, want %s", i, tools[i].Name, name)
		}
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("missing description")
			}

			if tool.InputSchema["type"] != "object" {
				t.Errorf("schema type = %v, want object", tool.InputSchema["type"])
			}

			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			if !ok {
				t.Fatal("schema has no properties map")
			}
			if _, ok := props["path"]; !ok {
				t.Error("every tool takes a path argument")
			}

			required, ok := tool.InputSchema["required"].([]string)
			if !ok || len(required) == 0 {
				t.Fatal("schema has no required list")
			}
			if required[0] != "path" {
				t.Errorf("required[0] = %s, want path", required[0])
			}
		})
	}
}

func TestToolDefinitions_SegmentKnobs(t *testing.T) {
	tools := GetToolDefinitions()

	knobs := []string{
		"resize_width",
		"confidence_threshold",
		"points_per_side",
		"pred_iou_thresh",
		"stability_score_thresh",
		"stability_score_offset",
		"box_nms_thresh",
		"crop_n_layers",
		"crop_nms_thresh",
		"crop_overlap_ratio",
		"crop_n_points_downscale_factor",
		"min_mask_region_area",
	}

	for _, name := range []string{"segment_image", "segment_annotate"} {
		t.Run(name, func(t *testing.T) {
			var tool *Tool
			for i := range tools {
				if tools[i].Name == name {
					tool = &tools[i]
					break
				}
			}
			if tool == nil {
				t.Fatalf("tool %s not defined", name)
			}

			props := tool.InputSchema["properties"].(map[string]interface{})
			for _, knob := range knobs {
				if _, ok := props[knob]; !ok {
					t.Errorf("missing knob %s", knob)
				}
			}
		})
	}

	// Only the annotate variant takes a line width.
	for _, tool := range tools {
		props := tool.InputSchema["properties"].(map[string]interface{})
		_, hasLineWidth := props["line_width"]
		if tool.Name == "segment_annotate" && !hasLineWidth {
			t.Error("segment_annotate should take line_width")
		}
		if tool.Name == "segment_image" && hasLineWidth {
			t.Error("segment_image should not take line_width")
		}
	}
}

func TestToolDefinitions_Marshal(t *testing.T) {
	data, err := json.Marshal(GetToolDefinitions())
	if err != nil {
		t.Fatalf("Failed to marshal tool definitions: %v", err)
	}

	var decoded []map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}

	for _, tool := range decoded {
		if _, ok := tool["inputSchema"]; !ok {
			t.Errorf("tool %v missing inputSchema key", tool["name"])
		}
	}
}
