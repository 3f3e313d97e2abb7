package dome

import (
	"errors"
	"testing"
)

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default config invalid: %v", err)
	}
}

func TestDefault_Values(t *testing.T) {
	cfg := Default()
	if cfg.OuterRadiusMm != 150.0 {
		t.Errorf("OuterRadiusMm = %v, want 150", cfg.OuterRadiusMm)
	}
	if cfg.WallThicknessMm != 3.0 {
		t.Errorf("WallThicknessMm = %v, want 3", cfg.WallThicknessMm)
	}
	if cfg.LimitingMagnitude != 6.0 {
		t.Errorf("LimitingMagnitude = %v, want 6", cfg.LimitingMagnitude)
	}
	if cfg.HoleRadiusMinMm != 1.0 || cfg.HoleRadiusMaxMm != 3.0 {
		t.Errorf("hole radius range = %v..%v, want 1..3", cfg.HoleRadiusMinMm, cfg.HoleRadiusMaxMm)
	}
	if cfg.SurfaceResolution != 120 {
		t.Errorf("SurfaceResolution = %v, want 120", cfg.SurfaceResolution)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		wantErr  bool
		sentinel error
	}{
		{"stock", func(c *Config) {}, false, nil},
		{"wall equals radius", func(c *Config) { c.WallThicknessMm = c.OuterRadiusMm }, true, ErrWallTooThick},
		{"wall exceeds radius", func(c *Config) { c.WallThicknessMm = c.OuterRadiusMm + 10 }, true, ErrWallTooThick},
		{"zero outer radius", func(c *Config) { c.OuterRadiusMm = 0 }, true, nil},
		{"negative outer radius", func(c *Config) { c.OuterRadiusMm = -5 }, true, nil},
		{"zero wall", func(c *Config) { c.WallThicknessMm = 0 }, true, nil},
		{"zero min hole", func(c *Config) { c.HoleRadiusMinMm = 0 }, true, nil},
		{"inverted hole range", func(c *Config) { c.HoleRadiusMaxMm = 0.5 }, true, nil},
		{"limit below anchor", func(c *Config) { c.LimitingMagnitude = -2 }, true, nil},
		{"coarse resolution", func(c *Config) { c.SurfaceResolution = 4 }, true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.sentinel != nil && !errors.Is(err, tt.sentinel) {
					t.Errorf("error = %v, want %v", err, tt.sentinel)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
