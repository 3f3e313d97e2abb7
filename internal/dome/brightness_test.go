package dome

import (
	"math"
	"testing"
)

func TestHoleRadius_Anchors(t *testing.T) {
	cfg := Default()

	// Boundary magnitudes map to the exact configured radii, no
	// interpolation rounding allowed.
	if got := cfg.HoleRadius(-1.5); got != cfg.HoleRadiusMaxMm {
		t.Errorf("HoleRadius(-1.5) = %v, want exactly %v", got, cfg.HoleRadiusMaxMm)
	}
	if got := cfg.HoleRadius(6.0); got != cfg.HoleRadiusMinMm {
		t.Errorf("HoleRadius(6.0) = %v, want exactly %v", got, cfg.HoleRadiusMinMm)
	}
}

func TestHoleRadius_ClampsBeyondAnchors(t *testing.T) {
	cfg := Default()

	// Nothing brighter than the bright anchor gets a bigger hole, and
	// nothing fainter than the limit gets a smaller one.
	if got := cfg.HoleRadius(-27.0); got != cfg.HoleRadiusMaxMm {
		t.Errorf("HoleRadius(-27) = %v, want %v", got, cfg.HoleRadiusMaxMm)
	}
	if got := cfg.HoleRadius(11.0); got != cfg.HoleRadiusMinMm {
		t.Errorf("HoleRadius(11) = %v, want %v", got, cfg.HoleRadiusMinMm)
	}
}

func TestHoleRadius_Interpolation(t *testing.T) {
	cfg := Default()

	tests := []struct {
		name string
		mag  float64
		want float64
	}{
		{"midpoint", 2.25, 2.0},
		{"sirius", -1.46, 1.0 + (6.0-(-1.46))/7.5*2.0},
		{"vega", 0.03, 1.0 + (6.0-0.03)/7.5*2.0},
		{"naked eye limit minus one", 5.0, 1.0 + 1.0/7.5*2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cfg.HoleRadius(tt.mag)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("HoleRadius(%v) = %v, want %v", tt.mag, got, tt.want)
			}
		})
	}
}

func TestHoleRadius_MonotonicInBrightness(t *testing.T) {
	cfg := Default()

	prev := math.Inf(1)
	for mag := -3.0; mag <= 8.0; mag += 0.25 {
		r := cfg.HoleRadius(mag)
		if r > prev {
			t.Fatalf("HoleRadius(%v) = %v grew past %v for a fainter star", mag, r, prev)
		}
		if r < cfg.HoleRadiusMinMm || r > cfg.HoleRadiusMaxMm {
			t.Fatalf("HoleRadius(%v) = %v outside [%v, %v]", mag, r, cfg.HoleRadiusMinMm, cfg.HoleRadiusMaxMm)
		}
		prev = r
	}
}

func TestHoleRadius_CustomRange(t *testing.T) {
	cfg := Default()
	cfg.HoleRadiusMinMm = 0.4
	cfg.HoleRadiusMaxMm = 5.0
	cfg.LimitingMagnitude = 4.0

	if got := cfg.HoleRadius(-1.5); got != 5.0 {
		t.Errorf("bright anchor = %v, want 5.0", got)
	}
	if got := cfg.HoleRadius(4.0); got != 0.4 {
		t.Errorf("limit = %v, want 0.4", got)
	}
	mid := cfg.HoleRadius(1.25)
	want := 0.4 + 0.5*(5.0-0.4)
	if math.Abs(mid-want) > 1e-12 {
		t.Errorf("midpoint = %v, want %v", mid, want)
	}
}
