package astro

import (
	"errors"
	"math"
	"testing"
)

func TestProjectSphere_OnAxis(t *testing.T) {
	tests := []struct {
		name   string
		ra     float64
		dec    float64
		radius float64
		want   Vec3
	}{
		{"north pole", 0, 90, 150, Vec3{0, 0, 150}},
		{"south pole", 0, -90, 150, Vec3{0, 0, -150}},
		{"equator ra 0", 0, 0, 150, Vec3{150, 0, 0}},
		{"equator ra 90", 90, 0, 150, Vec3{0, 150, 0}},
		{"equator ra 180", 180, 0, 1, Vec3{-1, 0, 0}},
		{"equator ra 270", 270, 0, 2, Vec3{0, -2, 0}},
	}

	const tol = 1e-9
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ProjectSphere(tt.ra, tt.dec, tt.radius)
			if err != nil {
				t.Fatalf("ProjectSphere returned error: %v", err)
			}
			if math.Abs(got.X-tt.want.X) > tol ||
				math.Abs(got.Y-tt.want.Y) > tol ||
				math.Abs(got.Z-tt.want.Z) > tol {
				t.Errorf("ProjectSphere(%v, %v, %v) = %v, want %v",
					tt.ra, tt.dec, tt.radius, got, tt.want)
			}
		})
	}
}

func TestProjectSphere_RadiusScaling(t *testing.T) {
	// The projected point must sit on the sphere, and scaling the
	// radius must only scale the vector.
	tests := []struct {
		ra, dec float64
	}{
		{101.287, -16.716}, // Sirius
		{219.902, -60.834}, // Alpha Centauri
		{37.955, 89.264},   // Polaris, nearly polar
		{310.358, 45.280},  // Deneb
	}

	const tol = 1e-9
	for _, tt := range tests {
		unit, err := ProjectSphere(tt.ra, tt.dec, 1)
		if err != nil {
			t.Fatalf("ProjectSphere unit: %v", err)
		}
		if math.Abs(unit.Norm()-1) > tol {
			t.Errorf("unit projection norm = %v, want 1", unit.Norm())
		}

		scaled, err := ProjectSphere(tt.ra, tt.dec, 150)
		if err != nil {
			t.Fatalf("ProjectSphere scaled: %v", err)
		}
		if math.Abs(scaled.Norm()-150) > 1e-6 {
			t.Errorf("scaled projection norm = %v, want 150", scaled.Norm())
		}

		want := unit.Scale(150)
		if scaled.Sub(want).Norm() > 1e-6 {
			t.Errorf("scaled projection = %v, want %v", scaled, want)
		}

		// z follows the declination directly
		wantZ := 150 * math.Sin(tt.dec*math.Pi/180)
		if math.Abs(scaled.Z-wantZ) > 1e-6 {
			t.Errorf("z = %v, want %v", scaled.Z, wantZ)
		}
	}
}

func TestProjectSphere_NonFinite(t *testing.T) {
	tests := []struct {
		name   string
		ra     float64
		dec    float64
		radius float64
	}{
		{"nan ra", math.NaN(), 0, 150},
		{"nan dec", 0, math.NaN(), 150},
		{"nan radius", 0, 0, math.NaN()},
		{"inf ra", math.Inf(1), 0, 150},
		{"neg inf dec", 0, math.Inf(-1), 150},
		{"inf radius", 0, 0, math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ProjectSphere(tt.ra, tt.dec, tt.radius)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrNonFinite) {
				t.Errorf("error = %v, want ErrNonFinite", err)
			}
		})
	}
}
