package palette

// DefaultSource is the name of the built-in palette holding the shades the
// stock textures are drawn with. It is the usual source for an exact remap.
const DefaultSource = "Default"

// DefaultDefinitions returns the built-in palettes and groups.
func DefaultDefinitions() Definitions {
	return Definitions{
		Palettes: []Definition{
			{Name: DefaultSource, Colors: []string{"#FBFBFB", "#CAC1D1", "#9788A2", "#6A5976"}},
			{Name: "Purple", Colors: []string{"#B23CED", "#8734C3", "#672FA0", "#582888"}},
			{Name: "Magenta", Colors: []string{"#ED3CED", "#B634C3", "#8D2FA0", "#782888"}},
			{Name: "Pink", Colors: []string{"#FF42B5", "#D53DA2", "#A33788", "#8B2F74"}},
		},
		Groups: []GroupDefinition{
			{Name: "All Colors", Palettes: []string{"Purple", "Magenta", "Pink"}},
			{Name: "Warm Tones", Palettes: []string{"Magenta", "Pink"}},
			{Name: "Cool Tones", Palettes: []string{"Purple"}},
		},
	}
}

// Default returns a registry holding only the built-in palettes.
func Default() *Registry {
	r, err := NewRegistry(DefaultDefinitions())
	if err != nil {
		panic("palette: invalid built-in definitions: " + err.Error())
	}
	return r
}
