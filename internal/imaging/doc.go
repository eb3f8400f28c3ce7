// Package imaging converts between encoded image bytes and the pixel buffer the
// recolor engine works on.
//
// Decoders for PNG, JPEG, GIF, BMP, TIFF and WebP are registered on import.
// Whatever the source color model, Decode returns an *image.NRGBA whose bounds
// start at (0,0), so callers can index rows and columns directly.
//
// # Pixel Buffer
//
// The buffer is non-premultiplied RGBA:
//   - 16-bit sources (16-bit PNG and TIFF) decode through DecodePixels into an
//     *image.NRGBA64 so alpha keeps all 16 bits; Decode reduces them to 8
//   - Grayscale, YCbCr, CMYK and other 8-bit images are expanded to 8-bit RGB
//   - Images without an alpha channel get alpha 255 everywhere
//   - Indexed images are expanded entry by entry, so a transparent palette
//     entry keeps the RGB it was declared with
//   - The RGB of a fully transparent pixel is whatever the file stored
//
// # Output Formats
//
// Encode writes PNG, BMP and TIFF inputs back in the same format. JPEG, GIF and
// WebP inputs are written as PNG: JPEG would smear colors outside the palette,
// GIF would re-quantize, and there is no WebP encoder. OutputFormat reports the
// choice without encoding anything.
//
// Only PNG and TIFF round-trip alpha. BMP files always decode as opaque, so
// BMP in, BMP out is safe for recoloring but transparency written to a BMP
// should not be relied on. 16-bit buffers are written as 16-bit PNG or TIFF.
//
// # Color Reports
//
// DescribeColor and DescribePalette render palette colors as hex, RGB and HSL
// for tool responses:
//   - Hex: 6-character format "#RRGGBB" in upper case
//   - RGB: 8-bit components (0-255)
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
//
// # Error Handling
//
// Input that cannot be decoded is reported as *DecodeError so callers can tell
// bad image data apart from I/O failures. Everything else is wrapped with
// context using fmt.Errorf and %w.
//
// # Thread Safety
//
// All functions are stateless and may be called concurrently. Decode never
// returns a buffer shared with its input.
package imaging
