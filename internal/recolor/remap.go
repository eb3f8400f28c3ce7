package recolor

import (
	"fmt"
	"image"

	"github.com/ironsheep/recolor-mcp/internal/imaging"
	"github.com/ironsheep/recolor-mcp/internal/palette"
)

// RemapImage swaps exact color matches from source to target.
//
// A pixel whose RGB equals source.At(i) becomes target.At(i) with its alpha
// kept. Pairs are taken position by position up to the shorter palette.
// Pixels matching no source color are copied unchanged, or set to
// (0,0,0,0) when emissive is true.
func RemapImage(src *image.NRGBA, source, target *palette.Palette, emissive bool) *image.NRGBA {
	swap := swapTable(source, target)

	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))

	for y := 0; y < b.Dy(); y++ {
		si := src.PixOffset(b.Min.X, b.Min.Y+y)
		di := dst.PixOffset(0, y)
		for x := 0; x < b.Dx(); x, si, di = x+1, si+4, di+4 {
			s := src.Pix[si : si+4 : si+4]
			d := dst.Pix[di : di+4 : di+4]

			c, ok := swap[palette.Color{R: s[0], G: s[1], B: s[2]}]
			switch {
			case ok:
				d[0], d[1], d[2], d[3] = c.R, c.G, c.B, s[3]
			case !emissive:
				copy(d, s)
			}
		}
	}

	return dst
}

// RemapImage64 is RemapImage for 16-bit buffers.
//
// A pixel matches source.At(i) only when every channel equals the 8-bit
// value scaled to 16 bits. Alpha is kept bit for bit.
func RemapImage64(src *image.NRGBA64, source, target *palette.Palette, emissive bool) *image.NRGBA64 {
	swap := swapTable(source, target)

	b := src.Bounds()
	dst := image.NewNRGBA64(image.Rect(0, 0, b.Dx(), b.Dy()))

	for y := 0; y < b.Dy(); y++ {
		si := src.PixOffset(b.Min.X, b.Min.Y+y)
		di := dst.PixOffset(0, y)
		for x := 0; x < b.Dx(); x, si, di = x+1, si+8, di+8 {
			s := src.Pix[si : si+8 : si+8]
			d := dst.Pix[di : di+8 : di+8]

			var c palette.Color
			ok := s[0] == s[1] && s[2] == s[3] && s[4] == s[5]
			if ok {
				c, ok = swap[palette.Color{R: s[0], G: s[2], B: s[4]}]
			}
			switch {
			case ok:
				d[0], d[1] = c.R, c.R
				d[2], d[3] = c.G, c.G
				d[4], d[5] = c.B, c.B
				d[6], d[7] = s[6], s[7]
			case !emissive:
				copy(d, s)
			}
		}
	}

	return dst
}

func swapTable(source, target *palette.Palette) map[palette.Color]palette.Color {
	n := source.Len()
	if target.Len() < n {
		n = target.Len()
	}
	swap := make(map[palette.Color]palette.Color, n)
	for i := 0; i < n; i++ {
		swap[source.At(i)] = target.At(i)
	}
	return swap
}

// Remap decodes data, swaps colors of the named source palette for those of
// the named target palette and encodes the result.
func (e *Engine) Remap(data []byte, sourceName, targetName string, emissive bool) (*Result, error) {
	source, err := e.registry.Get(sourceName)
	if err != nil {
		return nil, err
	}
	target, err := e.registry.Get(targetName)
	if err != nil {
		return nil, err
	}
	return RemapWith(data, source, target, emissive)
}

// RemapWith is Remap with explicit palettes.
func RemapWith(data []byte, source, target *palette.Palette, emissive bool) (*Result, error) {
	if source == nil || target == nil {
		return nil, &palette.EmptyPaletteError{}
	}

	src, format, err := imaging.DecodePixels(data)
	if err != nil {
		return nil, err
	}

	var dst image.Image
	switch src := src.(type) {
	case *image.NRGBA64:
		dst = RemapImage64(src, source, target, emissive)
	case *image.NRGBA:
		dst = RemapImage(src, source, target, emissive)
	default:
		return nil, fmt.Errorf("unsupported pixel buffer %T", src)
	}

	out, outFormat, err := imaging.Encode(dst, format)
	if err != nil {
		return nil, err
	}

	return &Result{
		Data:    out,
		Format:  outFormat,
		Width:   dst.Bounds().Dx(),
		Height:  dst.Bounds().Dy(),
		Palette: target.Name(),
	}, nil
}
