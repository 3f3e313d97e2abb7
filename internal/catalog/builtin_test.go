package catalog

import (
	"context"
	"errors"
	"testing"
)

func TestBuiltin_Resolve(t *testing.T) {
	var b Builtin

	star, err := b.Resolve(context.Background(), "Sirius")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if star.Name != "Sirius" {
		t.Errorf("Name = %q, want Sirius", star.Name)
	}
	if star.RAdeg != 101.287 || star.DecDeg != -16.716 {
		t.Errorf("position = (%v, %v), want (101.287, -16.716)", star.RAdeg, star.DecDeg)
	}
	if star.Mag != -1.46 {
		t.Errorf("Mag = %v, want -1.46", star.Mag)
	}
}

func TestBuiltin_Aliases(t *testing.T) {
	var b Builtin
	ctx := context.Background()

	tests := []struct {
		alias     string
		canonical string
	}{
		{"Alpha Canis Majoris", "Sirius"},
		{"Beta Centauri", "Hadar"},
		{"Alpha Centauri", "Rigil Kentaurus"},
		{"Alpha Crucis", "Acrux"},
		{"Alpha Cru", "Acrux"},
		{"Beta Cen", "Hadar"},
		{"Gamma Cru", "Gacrux"},
	}

	for _, tt := range tests {
		t.Run(tt.alias, func(t *testing.T) {
			byAlias, err := b.Resolve(ctx, tt.alias)
			if err != nil {
				t.Fatalf("Resolve(%q): %v", tt.alias, err)
			}
			byName, err := b.Resolve(ctx, tt.canonical)
			if err != nil {
				t.Fatalf("Resolve(%q): %v", tt.canonical, err)
			}
			if byAlias.RAdeg != byName.RAdeg || byAlias.DecDeg != byName.DecDeg || byAlias.Mag != byName.Mag {
				t.Errorf("%q resolved to (%v, %v, %v), want the %q row (%v, %v, %v)",
					tt.alias, byAlias.RAdeg, byAlias.DecDeg, byAlias.Mag,
					tt.canonical, byName.RAdeg, byName.DecDeg, byName.Mag)
			}
			if byAlias.Name != tt.alias {
				t.Errorf("resolved name = %q, want the requested %q", byAlias.Name, tt.alias)
			}
		})
	}
}

func TestBuiltin_NormalizesSpelling(t *testing.T) {
	var b Builtin
	ctx := context.Background()

	for _, name := range []string{"sirius", "SIRIUS", "  Sirius  ", "alpha   canis   majoris"} {
		if _, err := b.Resolve(ctx, name); err != nil {
			t.Errorf("Resolve(%q): %v", name, err)
		}
	}
}

func TestBuiltin_Unknown(t *testing.T) {
	var b Builtin

	_, err := b.Resolve(context.Background(), "Nonexistium Prime")
	if !errors.Is(err, ErrUnknownStar) {
		t.Fatalf("error = %v, want ErrUnknownStar", err)
	}
}

func TestBuiltin_CoversDefaultConstellations(t *testing.T) {
	var b Builtin
	ctx := context.Background()

	for _, set := range DefaultConstellations() {
		for _, name := range set.Stars {
			if _, err := b.Resolve(ctx, name); err != nil {
				t.Errorf("default figure %q needs %q: %v", set.Name, name, err)
			}
		}
	}
}

func TestBuiltinTable_Sane(t *testing.T) {
	seen := make(map[string]string, len(builtinStars))
	for _, info := range builtinStars {
		if info.Name == "" {
			t.Fatal("table row with empty name")
		}
		if info.RAdeg < 0 || info.RAdeg >= 360 {
			t.Errorf("%s: RA %v out of [0, 360)", info.Name, info.RAdeg)
		}
		if info.DecDeg < -90 || info.DecDeg > 90 {
			t.Errorf("%s: dec %v out of [-90, 90]", info.Name, info.DecDeg)
		}
		if info.Mag < -2 || info.Mag > 4 {
			t.Errorf("%s: magnitude %v outside the bright star range", info.Name, info.Mag)
		}
		key := normalizeName(info.Name)
		if prev, dup := seen[key]; dup {
			t.Errorf("duplicate table entry %q (also %q)", info.Name, prev)
		}
		seen[key] = info.Name
	}
}
