package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/image-binarize/internal/display"
	imgproc "github.com/ironsheep/image-binarize/internal/imaging"
	"github.com/ironsheep/image-binarize/internal/pipeline"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_binarize").
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

	return s.resultResponse(req.ID, result)
}

// resultResponse wraps a tool result as MCP text content. A result that
// cannot be encoded yields a -32603 internal error.
func (s *Server) resultResponse(id interface{}, result interface{}) *MCPResponse {
	text, err := marshalJSON(result)
	if err != nil {
		return s.errorResponse(id, -32603, "Internal error", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": text,
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "image_grayscale":
		return s.handleImageGrayscale(args)
	case "image_binarize":
		return s.handleImageBinarize(args)
	case "image_compose":
		return s.handleImageCompose(args)
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

// marshalJSON converts a value to a pretty-printed JSON string.
func marshalJSON(v interface{}) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}
	return string(b), nil
}

// ImageResult carries an image produced by a tool.
type ImageResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Mode        string `json:"mode"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

func encodeImage(img image.Image) (*ImageResult, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	b := img.Bounds()
	return &ImageResult{
		Width:       b.Dx(),
		Height:      b.Dy(),
		Mode:        imgproc.ModeOf(img).String(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// thresholdOr returns *t when set, the server default otherwise.
func (s *Server) thresholdOr(t *int) int {
	if t == nil {
		return s.threshold
	}
	return *t
}

type imageLoadArgs struct {
	Path string `json:"path"`
}

// LoadResult combines file metadata with a content summary.
type LoadResult struct {
	*imgproc.ImageInfo
	Summary *imgproc.Summary `json:"summary"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	info, err := imgproc.LoadImageInfo(s.cache, a.Path)
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return &LoadResult{ImageInfo: info, Summary: imgproc.Summarize(img)}, nil
}

func (s *Server) handleImageGrayscale(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return encodeImage(imgproc.Grayscale(img))
}

type imageBinarizeArgs struct {
	Path      string `json:"path"`
	Threshold *int   `json:"threshold"`
}

func (s *Server) handleImageBinarize(args json.RawMessage) (interface{}, error) {
	var a imageBinarizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	threshold := s.thresholdOr(a.Threshold)
	if err := imgproc.ValidateThreshold(threshold); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	bin, err := imgproc.BinarizeImage(img, threshold)
	if err != nil {
		return nil, err
	}
	return encodeImage(bin)
}

type imageComposeArgs struct {
	Path      string `json:"path"`
	Threshold *int   `json:"threshold"`
	Labels    bool   `json:"labels"`
}

func (s *Server) handleImageCompose(args json.RawMessage) (interface{}, error) {
	var a imageComposeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	p := pipeline.New(s.thresholdOr(a.Threshold))
	p.Load = s.cache.Load
	res, err := p.Run(a.Path)
	if err != nil {
		return nil, err
	}

	var out image.Image = res.Composite
	if a.Labels {
		out, err = display.Caption(res.Composite, imgproc.Offsets(res.Images()), pipeline.Labels)
		if err != nil {
			return nil, err
		}
	}
	return encodeImage(out)
}
