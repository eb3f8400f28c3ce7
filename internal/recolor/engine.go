package recolor

import (
	"fmt"
	"image"

	"github.com/ironsheep/recolor-mcp/internal/imaging"
	"github.com/ironsheep/recolor-mcp/internal/palette"
)

// CustomPaletteName names palettes built from an explicit color list.
const CustomPaletteName = "custom"

// Result is an encoded recolored image.
type Result struct {
	// Data holds the encoded image.
	Data []byte
	// Format is the lower-case name of the format Data is encoded in.
	Format string
	// Width and Height equal the input dimensions.
	Width  int
	Height int
	// Palette names the palette that was applied.
	Palette string
	// DistinctColors counts the distinct visible input colors that were matched.
	DistinctColors int
}

// Engine recolors encoded images against palettes from a registry.
type Engine struct {
	registry *palette.Registry
}

// NewEngine returns an Engine resolving palette names through registry.
func NewEngine(registry *palette.Registry) *Engine {
	return &Engine{registry: registry}
}

// Palettes lists the registered palette names in declaration order.
func (e *Engine) Palettes() []string {
	return e.registry.List()
}

// Registry returns the registry the engine resolves names against.
func (e *Engine) Registry() *palette.Registry {
	return e.registry
}

// Recolor decodes data, maps every visible pixel onto the named palette and
// encodes the result.
//
// Errors:
//   - *palette.UnknownPaletteError if name is not registered
//   - *imaging.DecodeError if data is not a supported image
//
// The palette is looked up before any decoding, and no output is produced on
// error.
func (e *Engine) Recolor(data []byte, name string) (*Result, error) {
	p, err := e.registry.Get(name)
	if err != nil {
		return nil, err
	}
	return RecolorWith(data, p)
}

// RecolorColors recolors data against an explicit, ordered color list.
//
// The list obeys the same rules as a registered palette: it must be non-empty
// (*palette.EmptyPaletteError) and free of duplicates
// (*palette.DuplicateColorError).
func (e *Engine) RecolorColors(data []byte, colors []palette.Color) (*Result, error) {
	p, err := palette.New(CustomPaletteName, colors)
	if err != nil {
		return nil, err
	}
	return RecolorWith(data, p)
}

// RecolorSpecs is RecolorColors for colors written in any form ParseColor
// accepts.
func (e *Engine) RecolorSpecs(data []byte, specs []string) (*Result, error) {
	colors := make([]palette.Color, len(specs))
	for i, spec := range specs {
		c, err := palette.ParseColor(spec)
		if err != nil {
			return nil, fmt.Errorf("color %d: %w", i, err)
		}
		colors[i] = c
	}
	return e.RecolorColors(data, colors)
}

// RecolorWith recolors data against p.
func RecolorWith(data []byte, p *palette.Palette) (*Result, error) {
	if p == nil {
		return nil, &palette.EmptyPaletteError{}
	}

	src, format, err := imaging.DecodePixels(data)
	if err != nil {
		return nil, err
	}

	m := NewMatcher(p)
	var dst image.Image
	switch src := src.(type) {
	case *image.NRGBA64:
		dst = recolorPixels64(src, m)
	case *image.NRGBA:
		dst = recolorPixels(src, m)
	default:
		return nil, fmt.Errorf("unsupported pixel buffer %T", src)
	}

	out, outFormat, err := imaging.Encode(dst, format)
	if err != nil {
		return nil, err
	}

	return &Result{
		Data:           out,
		Format:         outFormat,
		Width:          dst.Bounds().Dx(),
		Height:         dst.Bounds().Dy(),
		Palette:        p.Name(),
		DistinctColors: m.Distinct(),
	}, nil
}

// RecolorImage returns a copy of src whose visible pixels are drawn from p.
//
// src is not modified. Fully transparent pixels are copied verbatim; every
// other pixel takes the nearest palette color and keeps its alpha.
func RecolorImage(src *image.NRGBA, p *palette.Palette) *image.NRGBA {
	return recolorPixels(src, NewMatcher(p))
}

func recolorPixels(src *image.NRGBA, m *Matcher) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))

	for y := 0; y < b.Dy(); y++ {
		si := src.PixOffset(b.Min.X, b.Min.Y+y)
		di := dst.PixOffset(0, y)
		for x := 0; x < b.Dx(); x, si, di = x+1, si+4, di+4 {
			s := src.Pix[si : si+4 : si+4]
			d := dst.Pix[di : di+4 : di+4]

			if s[3] == 0 {
				copy(d, s)
				continue
			}

			c := m.Match(palette.Color{R: s[0], G: s[1], B: s[2]})
			d[0], d[1], d[2], d[3] = c.R, c.G, c.B, s[3]
		}
	}

	return dst
}

// RecolorImage64 is RecolorImage for 16-bit buffers.
//
// A pixel counts as fully transparent only when all 16 bits of its alpha are
// zero. Colors are matched on the high byte of each channel and written back
// as the palette color scaled to 16 bits; alpha is kept bit for bit.
func RecolorImage64(src *image.NRGBA64, p *palette.Palette) *image.NRGBA64 {
	return recolorPixels64(src, NewMatcher(p))
}

func recolorPixels64(src *image.NRGBA64, m *Matcher) *image.NRGBA64 {
	b := src.Bounds()
	dst := image.NewNRGBA64(image.Rect(0, 0, b.Dx(), b.Dy()))

	for y := 0; y < b.Dy(); y++ {
		si := src.PixOffset(b.Min.X, b.Min.Y+y)
		di := dst.PixOffset(0, y)
		for x := 0; x < b.Dx(); x, si, di = x+1, si+8, di+8 {
			s := src.Pix[si : si+8 : si+8]
			d := dst.Pix[di : di+8 : di+8]
			if s[6] == 0 && s[7] == 0 {
				copy(d, s)
				continue
			}
			c := m.Match(palette.Color{R: s[0], G: s[2], B: s[4]})
			// v*0x101 puts v in both bytes of the big-endian sample.
			d[0], d[1] = c.R, c.R
			d[2], d[3] = c.G, c.G
			d[4], d[5] = c.B, c.B
			d[6], d[7] = s[6], s[7]
		}
	}

	return dst
}
