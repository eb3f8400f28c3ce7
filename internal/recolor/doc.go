// Package recolor remaps the visible pixels of an image onto a target palette.
//
// # Matching
//
// Nearest picks the palette entry with the smallest squared Euclidean distance
// to an input color in RGB space, no channel weighting. Ties go to the entry
// declared first, so the result is a pure function of (color, palette).
//
// A Matcher memoizes Nearest for one palette. Images usually carry far fewer
// distinct colors than pixels, so each distinct color is resolved once. A
// Matcher lives for a single recolor call and is never reused for another
// palette.
//
// # Alpha
//
// Alpha is never modified:
//   - alpha 0: the pixel is copied through untouched, RGB included
//   - any other alpha: RGB is replaced by the matched palette color and the
//     original alpha is kept
//
// 16-bit sources are worked on in an *image.NRGBA64 buffer so that no alpha
// bit is lost; RecolorImage64 and RemapImage64 are the 16-bit variants.
//
// # Exact Remap
//
// RemapImage swaps colors that exactly equal an entry of a source palette for
// the entry at the same position in a target palette. In emissive mode only
// the swapped pixels are kept and everything else becomes transparent, which
// produces a glow mask for the recolored areas.
//
// # Concurrency
//
// Engine holds only a read-only palette registry and may serve concurrent
// calls. Every call owns its pixel buffers and Matcher.
package recolor
