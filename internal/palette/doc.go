// Package palette holds the named target palettes a recolored image is drawn from.
//
// A Palette is an immutable, ordered, non-empty list of unique RGB colors. The
// order matters: when two palette entries are equally close to an input color
// the earlier one wins, so the declared order is part of a palette's identity.
//
// # Registry
//
// A Registry is built once from Definitions and is read-only afterwards. It is
// safe to share between goroutines without locking. Palettes are listed in the
// order they were declared:
//
//	reg := palette.Default()
//	for _, name := range reg.List() {
//	    p, _ := reg.Get(name) // never fails for a listed name
//	    fmt.Println(p.Name(), p.Len())
//	}
//
// Definitions are the JSON form of a registry. They can be read from a file
// and merged over the built-in set; entries with the same name replace the
// built-in entry in place and new entries are appended. Two file shapes are
// read:
//
//	{"palettes": [{"name": "Teal", "colors": ["#008080"]}],
//	 "groups":   [{"name": "Cool", "palettes": ["Teal"]}]}
//
//	{"source_palettes": {"Default": ["#FBFBFB"]},
//	 "target_palettes": {"Teal": ["#008080"]},
//	 "palette_groups":  {"Cool": ["Teal"]}}
//
// The second is the legacy export format; WriteDefinitions always writes the
// first.
//
// # Color Syntax
//
// ParseColor accepts:
//   - Hex: "#RRGGBB", "RRGGBB" or "#RGB"
//   - RGB tuple: "25,200,150"
//   - Gray level: a single number 0-255
//   - SVG color names: "teal", "hotpink", ...
//
// # Errors
//
// Construction failures are reported with typed errors so callers can tell
// them apart with errors.As: EmptyPaletteError, DuplicateColorError,
// UnknownPaletteError and UnknownGroupError.
package palette
