package palette

import "fmt"

// Palette is a named, ordered, non-empty set of unique colors.
//
// A Palette is immutable once constructed and may be shared freely.
type Palette struct {
	name   string
	colors []Color
}

// New builds a palette from colors, keeping their order.
//
// It returns *EmptyPaletteError when colors is empty and *DuplicateColorError
// when any color appears more than once.
func New(name string, colors []Color) (*Palette, error) {
	if len(colors) == 0 {
		return nil, &EmptyPaletteError{Name: name}
	}

	seen := make(map[Color]struct{}, len(colors))
	for i, c := range colors {
		if _, ok := seen[c]; ok {
			return nil, &DuplicateColorError{Name: name, Color: c, Index: i}
		}
		seen[c] = struct{}{}
	}

	owned := make([]Color, len(colors))
	copy(owned, colors)
	return &Palette{name: name, colors: owned}, nil
}

// Parse builds a palette from color strings accepted by ParseColor.
func Parse(name string, specs []string) (*Palette, error) {
	colors := make([]Color, 0, len(specs))
	for i, s := range specs {
		c, err := ParseColor(s)
		if err != nil {
			return nil, fmt.Errorf("palette %q color %d: %w", name, i, err)
		}
		colors = append(colors, c)
	}
	return New(name, colors)
}

// Name returns the palette name.
func (p *Palette) Name() string { return p.name }

// Len returns the number of colors.
func (p *Palette) Len() int { return len(p.colors) }

// At returns the i-th color in declared order.
func (p *Palette) At(i int) Color { return p.colors[i] }

// Colors returns a copy of the palette colors in declared order.
func (p *Palette) Colors() []Color {
	out := make([]Color, len(p.colors))
	copy(out, p.colors)
	return out
}

// Contains reports whether c is one of the palette colors.
func (p *Palette) Contains(c Color) bool {
	for _, pc := range p.colors {
		if pc == c {
			return true
		}
	}
	return false
}

// Hex returns the palette colors as "#RRGGBB" strings.
func (p *Palette) Hex() []string {
	out := make([]string, len(p.colors))
	for i, c := range p.colors {
		out[i] = c.Hex()
	}
	return out
}

