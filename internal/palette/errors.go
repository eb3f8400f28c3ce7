package palette

import "fmt"

// UnknownPaletteError is returned when a palette name is not registered.
type UnknownPaletteError struct {
	Name string
}

func (e *UnknownPaletteError) Error() string {
	return fmt.Sprintf("unknown palette: %q", e.Name)
}

// UnknownGroupError is returned when a palette group name is not registered.
type UnknownGroupError struct {
	Name string
}

func (e *UnknownGroupError) Error() string {
	return fmt.Sprintf("unknown palette group: %q", e.Name)
}

// EmptyPaletteError is returned when a palette is constructed with no colors.
type EmptyPaletteError struct {
	Name string
}

func (e *EmptyPaletteError) Error() string {
	return fmt.Sprintf("palette %q has no colors", e.Name)
}

// DuplicateColorError is returned when a palette lists the same color twice.
type DuplicateColorError struct {
	Name  string
	Color Color
	// Index is the position of the second occurrence.
	Index int
}

func (e *DuplicateColorError) Error() string {
	return fmt.Sprintf("palette %q repeats color %s at index %d", e.Name, e.Color.Hex(), e.Index)
}
