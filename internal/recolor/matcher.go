package recolor

import "github.com/ironsheep/recolor-mcp/internal/palette"

// Nearest returns the entry of p closest to c by squared Euclidean RGB
// distance. On equal distance the earliest entry wins.
func Nearest(c palette.Color, p *palette.Palette) palette.Color {
	best := p.At(0)
	bestDist := c.DistanceSq(best)
	for i := 1; i < p.Len() && bestDist > 0; i++ {
		pc := p.At(i)
		if d := c.DistanceSq(pc); d < bestDist {
			best, bestDist = pc, d
		}
	}
	return best
}

// Matcher memoizes Nearest for a single palette.
//
// A Matcher is not safe for concurrent use. Create one per recolor call.
type Matcher struct {
	palette *palette.Palette
	cache   map[palette.Color]palette.Color
}

// NewMatcher returns a Matcher with an empty cache bound to p.
func NewMatcher(p *palette.Palette) *Matcher {
	return &Matcher{
		palette: p,
		cache:   make(map[palette.Color]palette.Color, p.Len()*4),
	}
}

// Match returns Nearest(c, palette), computing it at most once per distinct c.
func (m *Matcher) Match(c palette.Color) palette.Color {
	if out, ok := m.cache[c]; ok {
		return out
	}
	out := Nearest(c, m.palette)
	m.cache[c] = out
	return out
}

// Palette returns the palette the matcher resolves against.
func (m *Matcher) Palette() *palette.Palette {
	return m.palette
}

// Distinct returns how many distinct colors have been resolved.
func (m *Matcher) Distinct() int {
	return len(m.cache)
}
