package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConstellations(t *testing.T) {
	sets := DefaultConstellations()

	if len(sets) != 2 {
		t.Fatalf("got %d figures, want 2", len(sets))
	}
	if sets[0].Name != "Homem Velho (Tuya'i)" || len(sets[0].Stars) != 2 {
		t.Errorf("first figure = %+v, want Homem Velho with 2 stars", sets[0])
	}
	if sets[1].Name != "Ema (Guyra Nhandu)" || len(sets[1].Stars) != 5 {
		t.Errorf("second figure = %+v, want Ema with 5 stars", sets[1])
	}
}

func TestLoadConstellations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sets.yaml")
	content := `constellations:
  - name: Cruzeiro do Sul
    stars:
      - Alpha Crucis
      - Beta Crucis
      - Gamma Crucis
  - name: Tres Marias
    stars: [Alnitak, Alnilam, Mintaka]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	sets, err := LoadConstellations(path)
	if err != nil {
		t.Fatalf("LoadConstellations: %v", err)
	}

	if len(sets) != 2 {
		t.Fatalf("got %d figures, want 2", len(sets))
	}
	if sets[0].Name != "Cruzeiro do Sul" || len(sets[0].Stars) != 3 {
		t.Errorf("first figure = %+v", sets[0])
	}
	if sets[1].Stars[2] != "Mintaka" {
		t.Errorf("flow-style stars = %v, want Mintaka last", sets[1].Stars)
	}
}

func TestLoadConstellations_Errors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("writing fixture: %v", err)
		}
		return path
	}

	tests := []struct {
		name    string
		path    string
		wantMsg string
	}{
		{"missing file", filepath.Join(dir, "absent.yaml"), "reading constellations"},
		{"invalid yaml", write("bad.yaml", "constellations: ["), "parsing constellations"},
		{"empty list", write("empty.yaml", "constellations: []"), "no constellations"},
		{"unnamed figure", write("unnamed.yaml", "constellations:\n  - stars: [Vega]"), "has no name"},
		{"no stars", write("starless.yaml", "constellations:\n  - name: Vazio"), "lists no stars"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConstellations(tt.path)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %v, want %q in it", err, tt.wantMsg)
			}
		})
	}
}
