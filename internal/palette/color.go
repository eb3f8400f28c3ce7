package palette

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Color is an opaque RGB color with 8-bit components.
//
// Alpha is deliberately absent: palettes only describe hue, and a pixel's
// transparency is carried separately by the image being recolored.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// RGB returns a Color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// RGBA implements color.Color. The color is always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// Hex returns the color as "#RRGGBB" with upper-case digits.
func (c Color) Hex() string {
	return strings.ToUpper(c.colorful().Hex())
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// HSL returns hue in degrees (0-360), saturation and lightness in percent (0-100).
func (c Color) HSL() (h, s, l float64) {
	h, s, l = c.colorful().Hsl()
	return h, s * 100, l * 100
}

// DistanceSq returns the squared Euclidean distance between two colors in RGB space.
func (c Color) DistanceSq(o Color) int {
	dr := int(c.R) - int(o.R)
	dg := int(c.G) - int(o.G)
	db := int(c.B) - int(o.B)
	return dr*dr + dg*dg + db*db
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// FromColor converts any color.Color to a Color, dropping alpha.
//
// The conversion is non-premultiplied, so a half transparent red still yields
// pure red. Fully transparent colors carry no RGB information after
// premultiplication and convert to black.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B}
}

// ParseColor parses a color written as hex, an "r,g,b" tuple, a gray level or
// an SVG color name.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Color{}, fmt.Errorf("empty color")
	}

	if strings.Count(s, ",") == 2 {
		return parseTuple(s)
	}

	if c, ok := parseHex(s); ok {
		return c, nil
	}

	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 255 {
			return Color{}, fmt.Errorf("gray level %d must be in the range 0-255", n)
		}
		return Color{R: uint8(n), G: uint8(n), B: uint8(n)}, nil
	}

	if named, ok := colornames.Map[strings.ToLower(s)]; ok {
		return FromColor(named), nil
	}

	return Color{}, fmt.Errorf("%q not recognized as a hex code, RGB tuple, number 0-255, or SVG color name", s)
}

func parseHex(s string) (Color, bool) {
	switch {
	case strings.HasPrefix(s, "#") && (len(s) == 7 || len(s) == 4):
	case !strings.HasPrefix(s, "#") && len(s) == 6:
		s = "#" + s
	default:
		return Color{}, false
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return Color{}, false
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, true
}

func parseTuple(s string) (Color, error) {
	parts := strings.Split(s, ",")
	var v [3]uint8
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 || n > 255 {
			return Color{}, fmt.Errorf("%q is not a valid RGB tuple, example: 25,200,150", s)
		}
		v[i] = uint8(n)
	}
	return Color{R: v[0], G: v[1], B: v[2]}, nil
}
