package server

import (
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	expectedTools := []string{
		"image_load",
		"image_grayscale",
		"image_binarize",
		"image_compose",
	}

	if len(tools) != len(expectedTools) {
		t.Errorf("got %d tools, want %d", len(tools), len(expectedTools))
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		toolMap[tool.Name] = tool
	}

	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}

			if tool.InputSchema["type"] != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", tool.InputSchema["type"])
			}

			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			if !ok {
				t.Fatal("InputSchema properties should be a map")
			}
			if _, ok := props["path"]; !ok {
				t.Error("every tool takes a 'path' property")
			}

			required, ok := tool.InputSchema["required"].([]string)
			if !ok {
				t.Fatal("'required' should be a string slice")
			}
			if len(required) != 1 || required[0] != "path" {
				t.Errorf("required: got %v, want [path]", required)
			}
		})
	}
}

func TestToolDefinitions_ThresholdRange(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		props := tool.InputSchema["properties"].(map[string]interface{})
		prop, ok := props["threshold"]
		if !ok {
			continue
		}

		t.Run(tool.Name, func(t *testing.T) {
			threshold := prop.(map[string]interface{})
			if threshold["type"] != "integer" {
				t.Errorf("type: got %v, want integer", threshold["type"])
			}
			if threshold["minimum"] != 0 || threshold["maximum"] != 255 {
				t.Errorf("range: got [%v,%v], want [0,255]", threshold["minimum"], threshold["maximum"])
			}
		})
	}
}

func TestHandleToolsList(t *testing.T) {
	s := New(127)
	resp := s.handleToolsList(&MCPRequest{JSONRPC: "2.0", ID: 7})

	if resp.ID != 7 {
		t.Errorf("ID: got %v, want 7", resp.ID)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	tools, ok := result["tools"].([]Tool)
	if !ok {
		t.Fatal("tools should be a slice of Tool")
	}
	if len(tools) != 4 {
		t.Errorf("Expected 4 tools, got %d", len(tools))
	}
}
