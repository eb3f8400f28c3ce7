package palette

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Definition is the serialized form of one palette.
type Definition struct {
	Name   string   `json:"name"`
	Colors []string `json:"colors"`
}

// GroupDefinition is the serialized form of one palette group.
type GroupDefinition struct {
	Name     string   `json:"name"`
	Palettes []string `json:"palettes"`
}

// Definitions is the serialized form of a whole registry.
type Definitions struct {
	Palettes []Definition      `json:"palettes"`
	Groups   []GroupDefinition `json:"groups,omitempty"`
}

// Group is a named, ordered selection of registered palettes.
type Group struct {
	Name     string   `json:"name"`
	Palettes []string `json:"palettes"`
}

// Registry is a read-only set of named palettes and palette groups.
//
// Build one with NewRegistry or Default at process start and pass it to the
// code that needs it. A Registry is never modified after construction, so it
// is safe for concurrent use.
type Registry struct {
	order    []string
	palettes map[string]*Palette
	groups   []Group
}

// NewRegistry validates defs and builds a registry from them.
//
// Every palette must be non-empty, free of duplicate colors and uniquely
// named. Every group must be named, list at least one palette and only
// reference palettes present in defs.
func NewRegistry(defs Definitions) (*Registry, error) {
	r := &Registry{
		order:    make([]string, 0, len(defs.Palettes)),
		palettes: make(map[string]*Palette, len(defs.Palettes)),
		groups:   make([]Group, 0, len(defs.Groups)),
	}

	for _, d := range defs.Palettes {
		if d.Name == "" {
			return nil, fmt.Errorf("palette definition without a name")
		}
		if _, ok := r.palettes[d.Name]; ok {
			return nil, fmt.Errorf("palette %q defined more than once", d.Name)
		}
		p, err := Parse(d.Name, d.Colors)
		if err != nil {
			return nil, err
		}
		r.order = append(r.order, d.Name)
		r.palettes[d.Name] = p
	}

	seenGroups := make(map[string]struct{}, len(defs.Groups))
	for _, g := range defs.Groups {
		if g.Name == "" {
			return nil, fmt.Errorf("palette group definition without a name")
		}
		if len(g.Palettes) == 0 {
			return nil, fmt.Errorf("palette group %q has no palettes", g.Name)
		}
		if _, ok := seenGroups[g.Name]; ok {
			return nil, fmt.Errorf("palette group %q defined more than once", g.Name)
		}
		seenGroups[g.Name] = struct{}{}

		members := make([]string, len(g.Palettes))
		for i, name := range g.Palettes {
			if _, ok := r.palettes[name]; !ok {
				return nil, fmt.Errorf("palette group %q: %w", g.Name, &UnknownPaletteError{Name: name})
			}
			members[i] = name
		}
		r.groups = append(r.groups, Group{Name: g.Name, Palettes: members})
	}

	return r, nil
}

// List returns palette names in declaration order.
func (r *Registry) List() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Get returns the named palette or *UnknownPaletteError.
func (r *Registry) Get(name string) (*Palette, error) {
	p, ok := r.palettes[name]
	if !ok {
		return nil, &UnknownPaletteError{Name: name}
	}
	return p, nil
}

// Groups returns all palette groups in declaration order.
func (r *Registry) Groups() []Group {
	out := make([]Group, len(r.groups))
	for i, g := range r.groups {
		out[i] = g.clone()
	}
	return out
}

// Group returns the named group or *UnknownGroupError.
func (r *Registry) Group(name string) (Group, error) {
	for _, g := range r.groups {
		if g.Name == name {
			return g.clone(), nil
		}
	}
	return Group{}, &UnknownGroupError{Name: name}
}

// Definitions returns the serialized form of the registry.
func (r *Registry) Definitions() Definitions {
	defs := Definitions{
		Palettes: make([]Definition, 0, len(r.order)),
		Groups:   make([]GroupDefinition, 0, len(r.groups)),
	}
	for _, name := range r.order {
		defs.Palettes = append(defs.Palettes, Definition{Name: name, Colors: r.palettes[name].Hex()})
	}
	for _, g := range r.groups {
		c := g.clone()
		defs.Groups = append(defs.Groups, GroupDefinition{Name: c.Name, Palettes: c.Palettes})
	}
	return defs
}

func (g Group) clone() Group {
	members := make([]string, len(g.Palettes))
	copy(members, g.Palettes)
	return Group{Name: g.Name, Palettes: members}
}

// Merge returns defs with other laid over it.
//
// Palettes and groups in other replace same-named entries of defs in place;
// entries new to defs are appended in the order other declares them.
func (defs Definitions) Merge(other Definitions) Definitions {
	out := Definitions{
		Palettes: append([]Definition(nil), defs.Palettes...),
		Groups:   append([]GroupDefinition(nil), defs.Groups...),
	}

	for _, d := range other.Palettes {
		replaced := false
		for i := range out.Palettes {
			if out.Palettes[i].Name == d.Name {
				out.Palettes[i] = d
				replaced = true
				break
			}
		}
		if !replaced {
			out.Palettes = append(out.Palettes, d)
		}
	}

	for _, g := range other.Groups {
		replaced := false
		for i := range out.Groups {
			if out.Groups[i].Name == g.Name {
				out.Groups[i] = g
				replaced = true
				break
			}
		}
		if !replaced {
			out.Groups = append(out.Groups, g)
		}
	}

	return out
}

// definitionsFile is the on-disk form read by ReadDefinitions. Besides the
// current "palettes"/"groups" lists it accepts the legacy export, which keys
// palettes and groups by name in "source_palettes", "target_palettes" and
// "palette_groups" objects.
type definitionsFile struct {
	Palettes []Definition      `json:"palettes"`
	Groups   []GroupDefinition `json:"groups"`

	SourcePalettes json.RawMessage `json:"source_palettes"`
	TargetPalettes json.RawMessage `json:"target_palettes"`
	PaletteGroups  json.RawMessage `json:"palette_groups"`
}

// ReadDefinitions decodes JSON palette definitions.
//
// Legacy exports are converted on the way in: source palettes come first,
// then target palettes, each in the order the file lists them. Unknown
// fields are rejected.
func ReadDefinitions(r io.Reader) (Definitions, error) {
	var f definitionsFile
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return Definitions{}, fmt.Errorf("failed to decode palette definitions: %w", err)
	}

	defs := Definitions{Palettes: f.Palettes, Groups: f.Groups}

	for _, section := range []struct {
		key string
		raw json.RawMessage
	}{
		{"source_palettes", f.SourcePalettes},
		{"target_palettes", f.TargetPalettes},
	} {
		lists, err := readNamedLists(section.raw)
		if err != nil {
			return Definitions{}, fmt.Errorf("failed to decode %s: %w", section.key, err)
		}
		for _, l := range lists {
			defs.Palettes = append(defs.Palettes, Definition{Name: l.name, Colors: l.values})
		}
	}

	groups, err := readNamedLists(f.PaletteGroups)
	if err != nil {
		return Definitions{}, fmt.Errorf("failed to decode palette_groups: %w", err)
	}
	for _, l := range groups {
		defs.Groups = append(defs.Groups, GroupDefinition{Name: l.name, Palettes: l.values})
	}

	return defs, nil
}

type namedList struct {
	name   string
	values []string
}

// readNamedLists decodes a JSON object of string arrays, keeping key order.
func readNamedLists(raw json.RawMessage) ([]namedList, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected an object, got %v", tok)
	}

	var out []namedList
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, _ := tok.(string)

		var values []string
		if err := dec.Decode(&values); err != nil {
			return nil, fmt.Errorf("%q: %w", name, err)
		}
		out = append(out, namedList{name: name, values: values})
	}
	return out, nil
}

// WriteDefinitions encodes defs as indented JSON.
func WriteDefinitions(w io.Writer, defs Definitions) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(defs); err != nil {
		return fmt.Errorf("failed to encode palette definitions: %w", err)
	}
	return nil
}
