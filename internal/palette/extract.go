package palette

import (
	"fmt"
	"image"
	"image/color"
	"sort"

	"github.com/disintegration/imaging"
	"github.com/mccutchen/palettor"
)

const (
	// extractThumbSize bounds the image k-means runs over.
	extractThumbSize = 200
	extractMaxIter   = 500
)

// Extract derives a palette of at most k colors from img.
//
// Fully transparent pixels are ignored. When the image holds k or fewer
// distinct opaque colors those colors are returned as-is, most frequent first.
// Otherwise the image is reduced to a thumbnail and clustered with k-means;
// clustering starts from random centroids, so repeated calls on the same large
// image may return slightly different palettes. The result is ordered by
// cluster weight, heaviest first, with ties broken by hex value.
func Extract(name string, img image.Image, k int) (*Palette, error) {
	if k < 1 {
		return nil, fmt.Errorf("palette size must be at least 1, got %d", k)
	}

	b := img.Bounds()
	if b.Dx() > extractThumbSize || b.Dy() > extractThumbSize {
		img = imaging.Fit(img, extractThumbSize, extractThumbSize, imaging.NearestNeighbor)
		b = img.Bounds()
	}

	counts := make(map[Color]int)
	opaque := make([]color.NRGBA, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.At(x, y)
			if _, _, _, a := c.RGBA(); a == 0 {
				continue
			}
			n := color.NRGBAModel.Convert(c).(color.NRGBA)
			n.A = 0xff
			counts[Color{R: n.R, G: n.G, B: n.B}]++
			opaque = append(opaque, n)
		}
	}
	if len(opaque) == 0 {
		return nil, &EmptyPaletteError{Name: name}
	}

	if len(counts) <= k {
		weights := make(map[Color]float64, len(counts))
		for c, n := range counts {
			weights[c] = float64(n)
		}
		return New(name, byWeight(weights))
	}

	// palettor walks every pixel of the image it is given, so the opaque
	// pixels are packed into a single row.
	row := image.NewNRGBA(image.Rect(0, 0, len(opaque), 1))
	for i, n := range opaque {
		row.SetNRGBA(i, 0, n)
	}

	clusters, err := palettor.Extract(k, extractMaxIter, row)
	if err != nil {
		return nil, fmt.Errorf("failed to extract palette: %w", err)
	}

	weights := make(map[Color]float64, k)
	for _, c := range clusters.Colors() {
		weights[FromColor(c)] += clusters.Weight(c)
	}
	return New(name, byWeight(weights))
}

func byWeight(weights map[Color]float64) []Color {
	colors := make([]Color, 0, len(weights))
	for c := range weights {
		colors = append(colors, c)
	}
	sort.Slice(colors, func(i, j int) bool {
		wi, wj := weights[colors[i]], weights[colors[j]]
		if wi != wj {
			return wi > wj
		}
		return colors[i].Hex() < colors[j].Hex()
	})
	return colors
}
