package dome

// HoleRadius maps apparent magnitude to a drill radius in mm. The map
// is linear between the bright anchor and the limiting magnitude and
// clamps to the exact configured bounds outside that range, boundary
// values included.
func (c Config) HoleRadius(mag float64) float64 {
	if mag <= brightAnchorMag {
		return c.HoleRadiusMaxMm
	}
	if mag >= c.LimitingMagnitude {
		return c.HoleRadiusMinMm
	}

	factor := (c.LimitingMagnitude - mag) / (c.LimitingMagnitude - brightAnchorMag)
	return c.HoleRadiusMinMm + factor*(c.HoleRadiusMaxMm-c.HoleRadiusMinMm)
}
