package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	EnvIngestRegion  = "MODUGIS_INGEST_REGION"
	EnvIngestSpecies = "MODUGIS_INGEST_SPECIES"
)

// SpeciesConfig pairs an eBird species code with the display name exports
// tag features with.
type SpeciesConfig struct {
	Code string `toml:"code"`
	Name string `toml:"name"`
}

// IngestConfig holds the default region and species set pulled by the
// ingest job. Defaults target the project's home ground: mottled duck and
// mallard in Orange County, Florida.
type IngestConfig struct {
	Region  string          `toml:"region"`
	Species []SpeciesConfig `toml:"species"`
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *IngestConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *IngestConfig) Merge(overlay *IngestConfig) {
	if overlay.Region != "" {
		c.Region = overlay.Region
	}
	if overlay.Species != nil {
		c.Species = overlay.Species
	}
}

// Codes returns the configured species codes in order.
func (c *IngestConfig) Codes() []string {
	codes := make([]string, len(c.Species))
	for i, s := range c.Species {
		codes[i] = s.Code
	}
	return codes
}

// Name returns the display name for a species code, falling back to the
// code itself.
func (c *IngestConfig) Name(code string) string {
	for _, s := range c.Species {
		if s.Code == code && s.Name != "" {
			return s.Name
		}
	}
	return code
}

func (c *IngestConfig) loadDefaults() {
	if c.Region == "" {
		c.Region = "US-FL-095"
	}
	if len(c.Species) == 0 {
		c.Species = []SpeciesConfig{
			{Code: "motduc", Name: "mottled duck"},
			{Code: "mallar3", Name: "mallard"},
		}
	}
}

func (c *IngestConfig) loadEnv() {
	if v := os.Getenv(EnvIngestRegion); v != "" {
		c.Region = v
	}
	if v := os.Getenv(EnvIngestSpecies); v != "" {
		codes := strings.Split(v, ",")
		species := make([]SpeciesConfig, 0, len(codes))
		for _, code := range codes {
			if trimmed := strings.TrimSpace(code); trimmed != "" {
				species = append(species, SpeciesConfig{Code: trimmed, Name: trimmed})
			}
		}
		if len(species) > 0 {
			c.Species = species
		}
	}
}

func (c *IngestConfig) validate() error {
	if c.Region == "" {
		return fmt.Errorf("region required")
	}
	if len(c.Species) == 0 {
		return fmt.Errorf("at least one species required")
	}
	for _, s := range c.Species {
		if s.Code == "" {
			return fmt.Errorf("species code required")
		}
	}
	return nil
}
