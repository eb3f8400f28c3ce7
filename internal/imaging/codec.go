package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	"image/png"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// DecodeError reports input bytes that are not a well-formed image in any
// registered format.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode image: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ReadFile reads raw image bytes from disk.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	return data, nil
}

// Decode decodes image bytes into a fully expanded 8-bit pixel buffer.
//
// Returns:
//   - *image.NRGBA: 8-bit non-premultiplied RGBA pixels with origin (0,0).
//     Grayscale, indexed, YCbCr and 16-bit sources are expanded; sources
//     without an alpha channel come back fully opaque.
//   - string: the detected format name ("png", "jpeg", "gif", "bmp", "tiff", "webp").
//   - error: *DecodeError if the bytes cannot be decoded.
//
// 16-bit sources lose their low byte here, including the low byte of alpha.
// Use DecodePixels when alpha must survive unchanged.
//
// # Transparent Pixels
//
// The buffer is non-premultiplied so that the RGB stored under fully
// transparent pixels survives decoding. Formats that store premultiplied
// color have no such RGB to keep; those pixels read as (0,0,0,0).
func Decode(data []byte) (*image.NRGBA, string, error) {
	img, format, err := decode(data)
	if err != nil {
		return nil, "", err
	}
	return Expand(img), format, nil
}

// DecodePixels decodes image bytes keeping the source channel depth.
//
// 16-bit sources (see Is16Bit) come back as *image.NRGBA64, everything else
// as the same *image.NRGBA Decode returns. Both have origin (0,0).
func DecodePixels(data []byte) (image.Image, string, error) {
	img, format, err := decode(data)
	if err != nil {
		return nil, "", err
	}
	if Is16Bit(img) {
		return Expand16(img), format, nil
	}
	return Expand(img), format, nil
}

func decode(data []byte) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", &DecodeError{Err: fmt.Errorf("empty input")}
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", &DecodeError{Err: err}
	}
	return img, format, nil
}

// Is16Bit reports whether img stores 16 bits per channel.
func Is16Bit(img image.Image) bool {
	switch img.(type) {
	case *image.NRGBA64, *image.RGBA64, *image.Gray16:
		return true
	}
	return false
}

// Expand copies any image into a new 8-bit NRGBA buffer anchored at (0,0).
//
// Indexed images are expanded through their own color table first, so the
// source palette never leaks into later processing.
func Expand(img image.Image) *image.NRGBA {
	if p, ok := img.(*image.Paletted); ok {
		return expandPaletted(p)
	}
	// imaging.Clone keeps non-premultiplied sources byte for byte and
	// always returns a fresh buffer with a zero origin.
	return imaging.Clone(img)
}

// Expand16 copies any image into a new 16-bit NRGBA buffer anchored at (0,0).
//
// Alpha is carried over at full precision. Premultiplied sources are
// un-premultiplied, so fully transparent pixels read as (0,0,0,0).
func Expand16(img image.Image) *image.NRGBA64 {
	b := img.Bounds()
	dst := image.NewNRGBA64(image.Rect(0, 0, b.Dx(), b.Dy()))

	if src, ok := img.(*image.NRGBA64); ok {
		rowLen := b.Dx() * 8
		for y := 0; y < b.Dy(); y++ {
			si := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+rowLen], src.Pix[si:si+rowLen])
		}
		return dst
	}

	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := color.NRGBA64Model.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA64)
			dst.SetNRGBA64(x, y, c)
		}
	}
	return dst
}

func expandPaletted(src *image.Paletted) *image.NRGBA {
	table := make([]color.NRGBA, len(src.Palette))
	for i, c := range src.Palette {
		table[i] = color.NRGBAModel.Convert(c).(color.NRGBA)
	}

	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			idx := src.ColorIndexAt(b.Min.X+x, b.Min.Y+y)
			var c color.NRGBA
			if int(idx) < len(table) {
				c = table[idx]
			}
			dst.SetNRGBA(x, y, c)
		}
	}
	return dst
}

// OutputFormat picks the format a recolored image is written in.
//
// PNG and TIFF keep their family and round-trip alpha exactly. BMP keeps
// its family too, but the BMP decoder reads every BMP as opaque, so a BMP
// source never carries alpha and alpha written to a BMP output (an emissive
// remap, for instance) is not guaranteed to read back. JPEG and WebP are
// lossy and GIF is limited to 256 indexed colors with 1-bit transparency;
// re-encoding any of them would pull pixels off the target palette or
// flatten alpha, so they are written as PNG.
func OutputFormat(inputFormat string) imaging.Format {
	switch strings.ToLower(inputFormat) {
	case "bmp":
		return imaging.BMP
	case "tiff":
		return imaging.TIFF
	default:
		return imaging.PNG
	}
}

// Encode writes img in the output format chosen for inputFormat.
//
// Returns the encoded bytes and the lower-case name of the format used.
func Encode(img image.Image, inputFormat string) ([]byte, string, error) {
	format := OutputFormat(inputFormat)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format, imaging.PNGCompressionLevel(png.DefaultCompression)); err != nil {
		return nil, "", fmt.Errorf("failed to encode %s image: %w", format, err)
	}
	return buf.Bytes(), strings.ToLower(format.String()), nil
}

// MimeType returns the MIME type for a lower-case format name.
func MimeType(format string) string {
	switch format {
	case "bmp":
		return "image/bmp"
	case "tiff":
		return "image/tiff"
	default:
		return "image/png"
	}
}
