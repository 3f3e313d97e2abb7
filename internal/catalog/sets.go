package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Constellation is a named figure and the stars that draw it. The name
// is free text; the stars must resolve through a Resolver.
type Constellation struct {
	Name  string   `yaml:"name" json:"name"`
	Stars []string `yaml:"stars" json:"stars"`
}

// DefaultConstellations returns the figures drilled when no file is
// given: two Tupi-Guarani constellations of the southern sky.
func DefaultConstellations() []Constellation {
	return []Constellation{
		{
			Name:  "Homem Velho (Tuya'i)",
			Stars: []string{"Beta Centauri", "Alpha Centauri"},
		},
		{
			Name: "Ema (Guyra Nhandu)",
			Stars: []string{
				"Alpha Crucis",
				"Beta Crucis",
				"Gamma Crucis",
				"Delta Crucis",
				"Epsilon Crucis",
			},
		},
	}
}

type constellationFile struct {
	Constellations []Constellation `yaml:"constellations"`
}

// LoadConstellations reads a constellation file.
//
// The format is YAML:
//
//	constellations:
//	  - name: Ema (Guyra Nhandu)
//	    stars: [Alpha Crucis, Beta Crucis]
func LoadConstellations(path string) ([]Constellation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading constellations: %w", err)
	}

	var file constellationFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing constellations %s: %w", path, err)
	}

	if len(file.Constellations) == 0 {
		return nil, fmt.Errorf("%s defines no constellations", path)
	}
	for i, c := range file.Constellations {
		if c.Name == "" {
			return nil, fmt.Errorf("%s: constellation %d has no name", path, i+1)
		}
		if len(c.Stars) == 0 {
			return nil, fmt.Errorf("%s: constellation %q lists no stars", path, c.Name)
		}
	}
	return file.Constellations, nil
}
