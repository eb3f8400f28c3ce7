package imaging

import (
	"image"
	"strings"
)

// ImageInfo contains metadata about an input image.
//
// This struct lets the caller judge an image before recoloring it, for
// instance how many distinct colors the matcher will have to resolve.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the detected image format: "png", "jpeg", "gif", "bmp", "tiff" or "webp".
	Format string `json:"format"`

	// OutputFormat is the format a recolored copy will be written in.
	OutputFormat string `json:"output_format"`

	// ColorModel names the source pixel layout: "rgba", "gray", "indexed",
	// "ycbcr", "cmyk" or "other".
	ColorModel string `json:"color_model"`

	// ColorDepth indicates the bit depth per channel: "8-bit" or "16-bit".
	ColorDepth string `json:"color_depth"`

	// HasAlpha indicates whether the source can carry transparency.
	HasAlpha bool `json:"has_alpha"`

	// DistinctColors counts distinct RGB values among non-transparent pixels.
	DistinctColors int `json:"distinct_colors"`

	// TransparentPixels counts pixels with alpha 0.
	TransparentPixels int `json:"transparent_pixels"`

	// SizeBytes is the size of the encoded input in bytes.
	SizeBytes int `json:"size_bytes"`
}

// Inspect decodes data and reports metadata about it.
//
// # Color Model Detection
//
// The color model and depth are determined by the decoded Go image type:
//   - *image.RGBA, *image.NRGBA -> "rgba", alpha
//   - *image.RGBA64, *image.NRGBA64 -> "rgba", alpha, 16-bit
//   - *image.Gray, *image.Gray16 -> "gray"
//   - *image.Paletted -> "indexed", alpha if any table entry is translucent
//   - *image.YCbCr -> "ycbcr"; *image.NYCbCrA -> "ycbcr", alpha
func Inspect(data []byte) (*ImageInfo, error) {
	img, format, err := decode(data)
	if err != nil {
		return nil, err
	}

	info := &ImageInfo{
		Format:       format,
		OutputFormat: strings.ToLower(OutputFormat(format).String()),
		ColorModel:   "other",
		ColorDepth:   "8-bit",
		SizeBytes:    len(data),
	}

	switch m := img.(type) {
	case *image.RGBA, *image.NRGBA:
		info.ColorModel, info.HasAlpha = "rgba", true
	case *image.RGBA64, *image.NRGBA64:
		info.ColorModel, info.HasAlpha, info.ColorDepth = "rgba", true, "16-bit"
	case *image.Gray:
		info.ColorModel = "gray"
	case *image.Gray16:
		info.ColorModel, info.ColorDepth = "gray", "16-bit"
	case *image.Paletted:
		info.ColorModel = "indexed"
		for _, c := range m.Palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				info.HasAlpha = true
				break
			}
		}
	case *image.YCbCr:
		info.ColorModel = "ycbcr"
	case *image.NYCbCrA:
		info.ColorModel, info.HasAlpha = "ycbcr", true
	case *image.CMYK:
		info.ColorModel = "cmyk"
	}

	seen := make(map[[3]uint8]struct{})
	if Is16Bit(img) {
		buf := Expand16(img)
		info.Width, info.Height = buf.Rect.Dx(), buf.Rect.Dy()
		for i := 0; i+7 < len(buf.Pix); i += 8 {
			if buf.Pix[i+6] == 0 && buf.Pix[i+7] == 0 {
				info.TransparentPixels++
				continue
			}
			// Colors are matched on their high bytes.
			seen[[3]uint8{buf.Pix[i], buf.Pix[i+2], buf.Pix[i+4]}] = struct{}{}
		}
	} else {
		buf := Expand(img)
		info.Width, info.Height = buf.Rect.Dx(), buf.Rect.Dy()
		for i := 0; i+3 < len(buf.Pix); i += 4 {
			if buf.Pix[i+3] == 0 {
				info.TransparentPixels++
				continue
			}
			seen[[3]uint8{buf.Pix[i], buf.Pix[i+1], buf.Pix[i+2]}] = struct{}{}
		}
	}
	info.DistinctColors = len(seen)

	return info, nil
}
