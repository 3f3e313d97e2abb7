package dome

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/litescript/ls-skydome/internal/version"
)

// Report is the JSON-serializable record of one generation run.
type Report struct {
	RunID       string       `json:"run_id"`
	GeneratedAt time.Time    `json:"generated_at"`
	Tool        string       `json:"tool"`
	Config      ConfigExport `json:"config"`
	Holes       []HoleExport `json:"holes"`
	Skipped     []SkipExport `json:"skipped,omitempty"`
}

// ConfigExport is the effective configuration of a run.
type ConfigExport struct {
	OuterRadiusMm     float64 `json:"outer_radius_mm"`
	WallThicknessMm   float64 `json:"wall_thickness_mm"`
	LimitingMagnitude float64 `json:"limiting_magnitude"`
	HoleRadiusMinMm   float64 `json:"hole_radius_min_mm"`
	HoleRadiusMaxMm   float64 `json:"hole_radius_max_mm"`
	SurfaceResolution int     `json:"surface_resolution"`
}

// HoleExport is one perforation row.
type HoleExport struct {
	Star          string  `json:"star"`
	Constellation string  `json:"constellation,omitempty"`
	RAdeg         float64 `json:"ra_deg"`
	DecDeg        float64 `json:"dec_deg"`
	Mag           float64 `json:"mag"`
	HoleRadiusMm  float64 `json:"hole_radius_mm"`
	XMm           float64 `json:"x_mm"`
	YMm           float64 `json:"y_mm"`
	ZMm           float64 `json:"z_mm"`
}

// SkipExport is one dropped star.
type SkipExport struct {
	Star   string `json:"star"`
	Reason string `json:"reason"`
}

// NewReport flattens a build result into an exportable report.
// constellationOf maps star names to figure names and may be nil.
func NewReport(res *Result, cfg Config, constellationOf map[string]string) *Report {
	rep := &Report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Tool:        "ls-skydome v" + version.Version,
		Config: ConfigExport{
			OuterRadiusMm:     cfg.OuterRadiusMm,
			WallThicknessMm:   cfg.WallThicknessMm,
			LimitingMagnitude: cfg.LimitingMagnitude,
			HoleRadiusMinMm:   cfg.HoleRadiusMinMm,
			HoleRadiusMaxMm:   cfg.HoleRadiusMaxMm,
			SurfaceResolution: cfg.SurfaceResolution,
		},
	}

	for _, p := range res.Placements {
		rep.Holes = append(rep.Holes, HoleExport{
			Star:          p.Star.Name,
			Constellation: constellationOf[p.Star.Name],
			RAdeg:         p.Star.RAdeg,
			DecDeg:        p.Star.DecDeg,
			Mag:           p.Star.Mag,
			HoleRadiusMm:  p.HoleRadiusMm,
			XMm:           p.Surface.X,
			YMm:           p.Surface.Y,
			ZMm:           p.Surface.Z,
		})
	}

	for _, s := range res.Skipped {
		rep.Skipped = append(rep.Skipped, SkipExport{Star: s.Star.Name, Reason: s.Err.Error()})
	}

	return rep
}

// WriteJSON writes the report as indented JSON to the given writer.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteSummaryTable writes the report as a fixed-width text table.
func WriteSummaryTable(w io.Writer, r *Report) {
	fmt.Fprintf(w, "Dome run %s @ %s\n", r.RunID, r.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintln(w, strings.Repeat("─", 80))

	if len(r.Holes) == 0 {
		fmt.Fprintln(w, "No holes drilled")
		return
	}

	fmt.Fprintf(w, "%-18s %-22s %9s %9s %6s %8s\n",
		"Star", "Constellation", "RA", "Dec", "Mag", "Hole mm")
	fmt.Fprintln(w, strings.Repeat("─", 80))

	for _, h := range r.Holes {
		fmt.Fprintf(w, "%-18s %-22s %9.3f %9.3f %6.2f %8.2f\n",
			truncateStr(h.Star, 18),
			truncateStr(h.Constellation, 22),
			h.RAdeg,
			h.DecDeg,
			h.Mag,
			h.HoleRadiusMm,
		)
	}

	fmt.Fprintf(w, "\nTotal: %d holes", len(r.Holes))
	if len(r.Skipped) > 0 {
		fmt.Fprintf(w, ", %d skipped", len(r.Skipped))
		for _, s := range r.Skipped {
			fmt.Fprintf(w, "\n  skipped %s: %s", s.Star, s.Reason)
		}
	}
	fmt.Fprintln(w)
}

func truncateStr(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-2] + ".."
}
