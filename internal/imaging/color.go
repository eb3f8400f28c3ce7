package imaging

import (
	"math"

	"github.com/ironsheep/recolor-mcp/internal/palette"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a palette color in multiple representations.
//
//   - Hex: Compact string format for CSS/web usage
//   - RGB: Standard 8-bit components
//   - HSL: Perceptual color space, handy when comparing palette shades
type ColorResult struct {
	Hex string   `json:"hex"` // Hex format "#RRGGBB"
	RGB RGBColor `json:"rgb"` // RGB components
	HSL HSLColor `json:"hsl"` // HSL representation
}

// DescribeColor returns c in hex, RGB and HSL form.
func DescribeColor(c palette.Color) ColorResult {
	h, s, l := c.HSL()
	return ColorResult{
		Hex: c.Hex(),
		RGB: RGBColor{R: c.R, G: c.G, B: c.B},
		HSL: HSLColor{
			H: int(math.Round(h)) % 360,
			S: int(math.Round(s)),
			L: int(math.Round(l)),
		},
	}
}

// PaletteResult describes a palette and its colors in declared order.
type PaletteResult struct {
	Name   string        `json:"name"`
	Colors []ColorResult `json:"colors"`
}

// DescribePalette returns every color of p in declared order.
func DescribePalette(p *palette.Palette) PaletteResult {
	colors := make([]ColorResult, p.Len())
	for i := range colors {
		colors[i] = DescribeColor(p.At(i))
	}
	return PaletteResult{Name: p.Name(), Colors: colors}
}
