package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/litescript/ls-skydome/internal/astro"
)

// Builtin resolves against the bundled bright star table without
// touching the network.
type Builtin struct{}

// Resolve implements Resolver. Lookups are case-insensitive and accept
// proper names, Bayer designations, and short designations like
// "Alpha Cru". The returned star keeps the requested spelling so
// grouping by name downstream stays stable.
func (Builtin) Resolve(_ context.Context, name string) (astro.Star, error) {
	info, ok := builtinIndex[normalizeName(name)]
	if !ok {
		return astro.Star{}, fmt.Errorf("star %q: %w", name, ErrUnknownStar)
	}
	return astro.Star{Name: name, RAdeg: info.RAdeg, DecDeg: info.DecDeg, Mag: info.Mag}, nil
}

// starInfo is one row of the bundled table.
type starInfo struct {
	Name   string  // IAU proper name, or the designation when none exists
	Bayer  string  // Bayer designation spelled out ("Alpha Crucis")
	RAdeg  float64 // Right ascension in degrees (J2000)
	DecDeg float64 // Declination in degrees (J2000)
	Mag    float64 // Apparent visual magnitude (lower = brighter)
}

// builtinStars lists the bright stars every dome should be able to
// drill offline. Coordinates are J2000, data from the Yale Bright Star
// Catalog and IAU star names, ordered roughly brightest first.
var builtinStars = []starInfo{
	// Brighter than magnitude 0
	{"Sirius", "Alpha Canis Majoris", 101.287, -16.716, -1.46},
	{"Canopus", "Alpha Carinae", 95.988, -52.696, -0.74},
	{"Rigil Kentaurus", "Alpha Centauri", 219.902, -60.834, -0.27},
	{"Arcturus", "Alpha Bootis", 213.915, 19.182, -0.05},

	// Magnitude 0-1
	{"Vega", "Alpha Lyrae", 279.235, 38.784, 0.03},
	{"Capella", "Alpha Aurigae", 79.172, 45.998, 0.08},
	{"Rigel", "Beta Orionis", 78.634, -8.202, 0.13},
	{"Procyon", "Alpha Canis Minoris", 114.825, 5.225, 0.34},
	{"Achernar", "Alpha Eridani", 24.429, -57.237, 0.46},
	{"Betelgeuse", "Alpha Orionis", 88.793, 7.407, 0.50},
	{"Hadar", "Beta Centauri", 210.956, -60.373, 0.61},
	{"Acrux", "Alpha Crucis", 186.650, -63.099, 0.76},
	{"Altair", "Alpha Aquilae", 297.696, 8.868, 0.77},
	{"Aldebaran", "Alpha Tauri", 68.980, 16.509, 0.86},
	{"Spica", "Alpha Virginis", 201.298, -11.161, 0.97},

	// Magnitude 1-1.5
	{"Antares", "Alpha Scorpii", 247.352, -26.432, 1.06},
	{"Pollux", "Beta Geminorum", 116.329, 28.026, 1.14},
	{"Fomalhaut", "Alpha Piscis Austrini", 344.413, -29.622, 1.16},
	{"Deneb", "Alpha Cygni", 310.358, 45.280, 1.25},
	{"Mimosa", "Beta Crucis", 191.930, -59.689, 1.25},
	{"Regulus", "Alpha Leonis", 152.093, 11.967, 1.35},
	{"Adhara", "Epsilon Canis Majoris", 104.656, -28.972, 1.50},

	// Magnitude 1.5-2
	{"Castor", "Alpha Geminorum", 113.650, 31.888, 1.58},
	{"Shaula", "Lambda Scorpii", 263.402, -37.104, 1.62},
	{"Gacrux", "Gamma Crucis", 187.791, -57.113, 1.63},
	{"Bellatrix", "Gamma Orionis", 81.283, 6.350, 1.64},
	{"Elnath", "Beta Tauri", 81.573, 28.608, 1.65},
	{"Miaplacidus", "Beta Carinae", 138.300, -69.717, 1.69},
	{"Alnilam", "Epsilon Orionis", 84.053, -1.202, 1.69},
	{"Alnair", "Alpha Gruis", 332.058, -46.961, 1.74},
	{"Alnitak", "Zeta Orionis", 85.190, -1.943, 1.77},
	{"Alioth", "Epsilon Ursae Majoris", 193.507, 55.960, 1.77},
	{"Dubhe", "Alpha Ursae Majoris", 165.932, 61.751, 1.79},
	{"Mirfak", "Alpha Persei", 51.081, 49.861, 1.80},
	{"Regor", "Gamma Velorum", 122.383, -47.337, 1.83},
	{"Wezen", "Delta Canis Majoris", 107.098, -26.393, 1.84},
	{"Kaus Australis", "Epsilon Sagittarii", 276.043, -34.385, 1.85},
	{"Avior", "Epsilon Carinae", 125.628, -59.510, 1.86},
	{"Alkaid", "Eta Ursae Majoris", 206.885, 49.313, 1.86},
	{"Sargas", "Theta Scorpii", 264.330, -42.998, 1.87},
	{"Menkalinan", "Beta Aurigae", 89.882, 44.947, 1.90},
	{"Atria", "Alpha Trianguli Australis", 252.166, -69.028, 1.92},
	{"Alhena", "Gamma Geminorum", 99.428, 16.399, 1.92},
	{"Peacock", "Alpha Pavonis", 306.412, -56.735, 1.94},
	{"Alsephina", "Delta Velorum", 131.176, -54.709, 1.96},
	{"Mirzam", "Beta Canis Majoris", 95.675, -17.956, 1.98},
	{"Alphard", "Alpha Hydrae", 141.897, -8.659, 1.98},
	{"Polaris", "Alpha Ursae Minoris", 37.955, 89.264, 1.98},

	// Magnitude 2-2.5
	{"Hamal", "Alpha Arietis", 31.793, 23.462, 2.00},
	{"Diphda", "Beta Ceti", 10.897, -17.987, 2.02},
	{"Mizar", "Zeta Ursae Majoris", 200.981, 54.925, 2.04},
	{"Mirach", "Beta Andromedae", 17.433, 35.621, 2.05},
	{"Nunki", "Sigma Sagittarii", 283.816, -26.297, 2.06},
	{"Menkent", "Theta Centauri", 211.671, -36.370, 2.06},
	{"Alpheratz", "Alpha Andromedae", 2.097, 29.090, 2.06},
	{"Rasalhague", "Alpha Ophiuchi", 263.734, 12.560, 2.07},
	{"Kochab", "Beta Ursae Minoris", 222.676, 74.156, 2.08},
	{"Algieba", "Gamma Leonis", 154.993, 19.842, 2.08},
	{"Saiph", "Kappa Orionis", 86.939, -9.670, 2.09},
	{"Tiaki", "Beta Gruis", 340.667, -46.885, 2.10},
	{"Denebola", "Beta Leonis", 177.265, 14.572, 2.11},
	{"Algol", "Beta Persei", 47.042, 40.956, 2.12},
	{"Muhlifain", "Gamma Centauri", 190.379, -48.960, 2.17},
	{"Suhail", "Lambda Velorum", 136.999, -43.433, 2.21},
	{"Aspidiske", "Iota Carinae", 139.273, -59.275, 2.21},
	{"Alphecca", "Alpha Coronae Borealis", 233.672, 26.715, 2.23},
	{"Mintaka", "Delta Orionis", 83.002, -0.299, 2.23},
	{"Sadr", "Gamma Cygni", 305.557, 40.257, 2.23},
	{"Eltanin", "Gamma Draconis", 269.152, 51.489, 2.23},
	{"Schedar", "Alpha Cassiopeiae", 10.127, 56.537, 2.24},
	{"Naos", "Zeta Puppis", 120.896, -40.003, 2.25},
	{"Almach", "Gamma Andromedae", 30.975, 42.330, 2.26},
	{"Caph", "Beta Cassiopeiae", 2.295, 59.150, 2.27},
	{"Larawag", "Epsilon Scorpii", 254.655, -34.293, 2.29},
	{"Epsilon Centauri", "", 204.972, -53.466, 2.30},
	{"Dschubba", "Delta Scorpii", 240.083, -22.622, 2.32},
	{"Eta Centauri", "", 218.877, -42.158, 2.33},
	{"Merak", "Beta Ursae Majoris", 165.460, 56.382, 2.37},
	{"Izar", "Epsilon Bootis", 221.247, 27.074, 2.37},

	// Magnitude 2.5 and fainter
	{"Ankaa", "Alpha Phoenicis", 6.571, -42.306, 2.38},
	{"Enif", "Epsilon Pegasi", 326.046, 9.875, 2.39},
	{"Girtab", "Kappa Scorpii", 265.622, -39.030, 2.41},
	{"Scheat", "Beta Pegasi", 345.944, 28.083, 2.42},
	{"Sabik", "Eta Ophiuchi", 257.595, -15.725, 2.43},
	{"Phecda", "Gamma Ursae Majoris", 178.458, 53.695, 2.44},
	{"Aludra", "Eta Canis Majoris", 111.024, -29.303, 2.45},
	{"Markeb", "Kappa Velorum", 140.528, -55.011, 2.47},
	{"Navi", "Gamma Cassiopeiae", 14.177, 60.717, 2.47},
	{"Aljanah", "Epsilon Cygni", 311.553, 33.970, 2.48},
	{"Markab", "Alpha Pegasi", 346.190, 15.205, 2.49},
	{"Alderamin", "Alpha Cephei", 319.645, 62.586, 2.51},
	{"Zeta Centauri", "", 208.885, -47.288, 2.55},
	{"Delta Centauri", "", 182.090, -50.722, 2.57},
	{"Acrab", "Beta Scorpii", 241.359, -19.805, 2.62},
	{"Iota Centauri", "", 200.149, -36.712, 2.75},
	{"Imai", "Delta Crucis", 183.786, -58.749, 2.79},
	{"Ginan", "Epsilon Crucis", 185.340, -60.401, 3.59},
}

// builtinIndex maps normalized proper names, Bayer designations, and
// their short forms ("Alpha Cru") to table rows.
var builtinIndex = func() map[string]starInfo {
	idx := make(map[string]starInfo, 3*len(builtinStars))
	add := func(key string, info starInfo) {
		if key != "" {
			idx[normalizeName(key)] = info
		}
	}
	for _, info := range builtinStars {
		add(info.Name, info)
		add(info.Bayer, info)
		if parts := strings.Fields(info.Bayer); len(parts) == 2 && len(parts[1]) > 3 {
			add(parts[0]+" "+parts[1][:3], info)
		}
	}
	return idx
}()

func normalizeName(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
