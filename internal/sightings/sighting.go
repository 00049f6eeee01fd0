// Package sightings implements the bird-observation domain: types, data
// access, and business logic for registering eBird observations and serving
// them to the export pipeline.
package sightings

import (
	"time"

	"github.com/google/uuid"

	"github.com/brotherjack/CFL-MODU-GIS-Project/pkg/geojson"
)

// Sighting is one registered eBird observation. SubID is the eBird
// checklist submission id; together with the species code it identifies an
// observation uniquely and drives ingest deduplication.
type Sighting struct {
	ID              uuid.UUID `json:"id"`
	SubID           string    `json:"ebird_sub_id"`
	LocID           string    `json:"ebird_loc_id"`
	LocationName    string    `json:"ebird_location_name"`
	SpeciesCode     string    `json:"species_code"`
	SpeciesName     string    `json:"species_name"`
	ObservationDate time.Time `json:"observation_date"`
	ObservationRaw  string    `json:"observation_date_raw"`
	Individuals     *int      `json:"individuals"`
	Valid           bool      `json:"ebird_valid"`
	Reviewed        bool      `json:"ebird_reviewed"`
	LocationPrivate bool      `json:"location_private"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	CreatedAt       time.Time `json:"created_at"`
}

// CreateCommand carries the data needed to register a new sighting.
type CreateCommand struct {
	SubID           string    `json:"ebird_sub_id"`
	LocID           string    `json:"ebird_loc_id"`
	LocationName    string    `json:"ebird_location_name"`
	SpeciesCode     string    `json:"species_code"`
	SpeciesName     string    `json:"species_name"`
	ObservationDate time.Time `json:"observation_date"`
	ObservationRaw  string    `json:"observation_date_raw"`
	Individuals     *int      `json:"individuals"`
	Valid           bool      `json:"ebird_valid"`
	Reviewed        bool      `json:"ebird_reviewed"`
	LocationPrivate bool      `json:"location_private"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
}

// Feature converts the sighting to a GeoJSON point feature using the
// property names the original QGIS layer is styled against. The observation
// date keeps the precision eBird reported it with: date-only observations
// stay date-only rather than gaining a midnight timestamp.
func (s *Sighting) Feature() geojson.Feature {
	date := s.ObservationRaw
	if date == "" {
		date = s.ObservationDate.Format("2006-01-02 15:04")
	}

	props := map[string]any{
		"ebird_subId":         s.SubID,
		"ebird_locid":         s.LocID,
		"ebird_location_name": s.LocationName,
		"observation_date":    date,
		"ebird_valid":         s.Valid,
		"ebird_reviewed":      s.Reviewed,
		"locationPrivate":     s.LocationPrivate,
		"species":             s.SpeciesName,
	}
	if s.Individuals != nil {
		props["individuals"] = *s.Individuals
	}

	return geojson.NewPointFeature(s.Longitude, s.Latitude, props)
}
