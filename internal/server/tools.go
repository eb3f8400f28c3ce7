package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pathProperty is the input image argument shared by the image tools.
var pathProperty = map[string]interface{}{
	"type":        "string",
	"description": "Absolute path to the image file (PNG, JPEG, GIF, BMP, TIFF or WebP)",
}

// imageBase64Property is the inline alternative to pathProperty.
var imageBase64Property = map[string]interface{}{
	"type":        "string",
	"description": "Base64-encoded image data, used instead of path",
}

// outputPathProperty is the optional destination shared by the recoloring tools.
var outputPathProperty = map[string]interface{}{
	"type":        "string",
	"description": "Optional path to write the result to. When omitted the image is returned base64-encoded.",
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Palette Registry
		{
			Name:        "palette_list",
			Description: "List the registered palettes in declaration order, with every color in hex, RGB and HSL.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "palette_get",
			Description: "Get the colors of one registered palette.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": map[string]interface{}{
						"type":        "string",
						"description": "Palette name as returned by palette_list",
					},
				},
				"required": []string{"name"},
			},
		},
		{
			Name:        "palette_groups",
			Description: "List palette groups. Each group names an ordered selection of palettes to apply together.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "palette_extract",
			Description: "Derive a palette from the dominant colors of an image. Fully transparent pixels are ignored.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":         pathProperty,
					"image_base64": imageBase64Property,
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum number of colors to extract. Default 5",
						"default":     5,
					},
				},
			},
		},

		// Image Operations
		{
			Name:        "image_info",
			Description: "Report image dimensions, format, color model, alpha support and the number of distinct visible colors.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":         pathProperty,
					"image_base64": imageBase64Property,
				},
			},
		},
		{
			Name:        "image_recolor",
			Description: "Recolor every visible pixel to its nearest palette color. Alpha is preserved exactly and fully transparent pixels are left untouched. Give either a palette name or an explicit color list.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":         pathProperty,
					"image_base64": imageBase64Property,
					"palette": map[string]interface{}{
						"type":        "string",
						"description": "Registered palette name",
					},
					"colors": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Explicit ordered palette: hex (#RRGGBB), r,g,b tuples, gray levels or SVG color names",
					},
					"output_path": outputPathProperty,
				},
			},
		},
		{
			Name:        "image_remap",
			Description: "Swap colors that exactly match a source palette for the color at the same position in a target palette. With emissive set, everything else becomes transparent.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":         pathProperty,
					"image_base64": imageBase64Property,
					"source": map[string]interface{}{
						"type":        "string",
						"description": "Source palette name. Default \"Default\"",
						"default":     "Default",
					},
					"target": map[string]interface{}{
						"type":        "string",
						"description": "Target palette name",
					},
					"emissive": map[string]interface{}{
						"type":        "boolean",
						"description": "Keep only remapped pixels (glow mask). Default false",
						"default":     false,
					},
					"output_path": outputPathProperty,
				},
				"required": []string{"target"},
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
