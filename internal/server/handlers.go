package server

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ironsheep/recolor-mcp/internal/imaging"
	"github.com/ironsheep/recolor-mcp/internal/palette"
	"github.com/ironsheep/recolor-mcp/internal/recolor"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "palette_list", "image_recolor").
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
//  3. Reads the input image from disk as needed
//  4. Calls the appropriate palette/recolor/imaging function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Palette Registry
	case "palette_list":
		return s.handlePaletteList(args)
	case "palette_get":
		return s.handlePaletteGet(args)
	case "palette_groups":
		return s.handlePaletteGroups(args)
	case "palette_extract":
		return s.handlePaletteExtract(args)

	// Image Operations
	case "image_info":
		return s.handleImageInfo(args)
	case "image_recolor":
		return s.handleImageRecolor(args)
	case "image_remap":
		return s.handleImageRemap(args)

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

// === Palette Registry Handlers ===

// PaletteListResult lists palettes in declaration order.
type PaletteListResult struct {
	Names    []string                `json:"names"`
	Palettes []imaging.PaletteResult `json:"palettes"`
}

func (s *Server) handlePaletteList(args json.RawMessage) (interface{}, error) {
	reg := s.engine.Registry()
	names := s.engine.Palettes()
	out := &PaletteListResult{
		Names:    names,
		Palettes: make([]imaging.PaletteResult, 0, len(names)),
	}
	for _, name := range names {
		p, err := reg.Get(name)
		if err != nil {
			return nil, err
		}
		out.Palettes = append(out.Palettes, imaging.DescribePalette(p))
	}
	return out, nil
}

type paletteGetArgs struct {
	Name string `json:"name"`
}

func (s *Server) handlePaletteGet(args json.RawMessage) (interface{}, error) {
	var a paletteGetArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	p, err := s.engine.Registry().Get(a.Name)
	if err != nil {
		return nil, err
	}
	return imaging.DescribePalette(p), nil
}

// PaletteGroupsResult lists palette groups in declaration order.
type PaletteGroupsResult struct {
	Groups []palette.Group `json:"groups"`
}

func (s *Server) handlePaletteGroups(args json.RawMessage) (interface{}, error) {
	return &PaletteGroupsResult{Groups: s.engine.Registry().Groups()}, nil
}

type paletteExtractArgs struct {
	imageSource
	Count int `json:"count"`
}

func (s *Server) handlePaletteExtract(args json.RawMessage) (interface{}, error) {
	var a paletteExtractArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	data, err := a.read()
	if err != nil {
		return nil, err
	}
	img, _, err := imaging.DecodePixels(data)
	if err != nil {
		return nil, err
	}
	p, err := palette.Extract("extracted", img, a.Count)
	if err != nil {
		return nil, err
	}
	return imaging.DescribePalette(p), nil
}

// === Image Operation Handlers ===

type imageInfoArgs struct {
	imageSource
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imageInfoArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	data, err := a.read()
	if err != nil {
		return nil, err
	}
	return imaging.Inspect(data)
}

// RecolorResult describes a recolored image. Exactly one of OutputPath and
// ImageBase64 is set.
type RecolorResult struct {
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	Format         string `json:"format"`
	MimeType       string `json:"mime_type"`
	Palette        string `json:"palette"`
	DistinctColors int    `json:"distinct_colors,omitempty"`
	OutputPath     string `json:"output_path,omitempty"`
	ImageBase64    string `json:"image_base64,omitempty"`
}

type imageRecolorArgs struct {
	imageSource
	Palette    string   `json:"palette"`
	Colors     []string `json:"colors"`
	OutputPath string   `json:"output_path"`
}

func (s *Server) handleImageRecolor(args json.RawMessage) (interface{}, error) {
	var a imageRecolorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if (a.Palette == "") == (len(a.Colors) == 0) {
		return nil, fmt.Errorf("exactly one of palette or colors is required")
	}

	data, err := a.read()
	if err != nil {
		return nil, err
	}

	var res *recolor.Result
	if a.Palette != "" {
		res, err = s.engine.Recolor(data, a.Palette)
	} else {
		res, err = s.engine.RecolorSpecs(data, a.Colors)
	}
	if err != nil {
		return nil, err
	}

	return writeResult(res, a.OutputPath)
}

type imageRemapArgs struct {
	imageSource
	Source     string `json:"source"`
	Target     string `json:"target"`
	Emissive   bool   `json:"emissive"`
	OutputPath string `json:"output_path"`
}

func (s *Server) handleImageRemap(args json.RawMessage) (interface{}, error) {
	var a imageRemapArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Source == "" {
		a.Source = palette.DefaultSource
	}
	if a.Target == "" {
		return nil, fmt.Errorf("target palette is required")
	}

	data, err := a.read()
	if err != nil {
		return nil, err
	}
	res, err := s.engine.Remap(data, a.Source, a.Target, a.Emissive)
	if err != nil {
		return nil, err
	}
	return writeResult(res, a.OutputPath)
}

// imageSource is the input image argument shared by the image tools: a file
// path or the encoded image inline.
type imageSource struct {
	Path        string `json:"path"`
	ImageBase64 string `json:"image_base64"`
}

func (src imageSource) read() ([]byte, error) {
	switch {
	case src.Path != "" && src.ImageBase64 != "":
		return nil, fmt.Errorf("only one of path or image_base64 may be given")
	case src.Path != "":
		return imaging.ReadFile(src.Path)
	case src.ImageBase64 != "":
		data, err := base64.StdEncoding.DecodeString(src.ImageBase64)
		if err != nil {
			return nil, fmt.Errorf("failed to decode image_base64: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("path or image_base64 is required")
	}
}

// writeResult stores res at outputPath, or inlines it as base64 when
// outputPath is empty.
func writeResult(res *recolor.Result, outputPath string) (*RecolorResult, error) {
	out := &RecolorResult{
		Width:          res.Width,
		Height:         res.Height,
		Format:         res.Format,
		MimeType:       imaging.MimeType(res.Format),
		Palette:        res.Palette,
		DistinctColors: res.DistinctColors,
	}

	if outputPath == "" {
		out.ImageBase64 = base64.StdEncoding.EncodeToString(res.Data)
		return out, nil
	}

	if err := os.WriteFile(outputPath, res.Data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write output image: %w", err)
	}
	out.OutputPath = outputPath
	return out, nil
}
