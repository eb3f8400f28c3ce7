package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ironsheep/recolor-mcp/internal/palette"
)

func writePalettesFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "palettes.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write palettes file: %v", err)
	}
	return path
}

func TestLoadRegistry_BuiltIn(t *testing.T) {
	reg, err := loadRegistry("")
	if err != nil {
		t.Fatalf("loadRegistry failed: %v", err)
	}

	want := palette.Default().List()
	got := reg.List()
	if len(got) != len(want) {
		t.Fatalf("List: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("List[%d]: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestLoadRegistry_MergesFile(t *testing.T) {
	path := writePalettesFile(t, `{
  "palettes": [
    {"name": "Pink", "colors": ["#FF0000", "#00FF00"]},
    {"name": "Teal", "colors": ["teal", "0,100,100", "#0FF"]}
  ],
  "groups": [
    {"name": "Cool Tones", "palettes": ["Purple", "Teal"]}
  ]
}`)

	reg, err := loadRegistry(path)
	if err != nil {
		t.Fatalf("loadRegistry failed: %v", err)
	}

	names := reg.List()
	if len(names) != 5 || names[3] != "Pink" || names[4] != "Teal" {
		t.Errorf("List: got %v", names)
	}

	pink, err := reg.Get("Pink")
	if err != nil {
		t.Fatalf("Get(Pink) failed: %v", err)
	}
	if pink.Len() != 2 || pink.At(0) != palette.RGB(255, 0, 0) {
		t.Errorf("Pink was not replaced: %v", pink.Hex())
	}

	g, err := reg.Group("Cool Tones")
	if err != nil {
		t.Fatalf("Group failed: %v", err)
	}
	if len(g.Palettes) != 2 || g.Palettes[1] != "Teal" {
		t.Errorf("Cool Tones: got %v", g.Palettes)
	}
}

func TestLoadRegistry_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed json", `{"palettes": [`},
		{"unknown field", `{"palettes": [], "colours": []}`},
		{"empty palette", `{"palettes": [{"name": "Empty", "colors": []}]}`},
		{"bad color", `{"palettes": [{"name": "Bad", "colors": ["nope"]}]}`},
		{"unknown group member", `{"groups": [{"name": "G", "palettes": ["Missing"]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := loadRegistry(writePalettesFile(t, tt.content)); err == nil {
				t.Error("expected error")
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := loadRegistry(filepath.Join(t.TempDir(), "missing.json"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected os.ErrNotExist, got %v", err)
		}
	})
}
