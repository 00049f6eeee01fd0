package sightings

import (
	"net/url"
	"strconv"
	"time"

	"github.com/brotherjack/CFL-MODU-GIS-Project/pkg/query"
	"github.com/brotherjack/CFL-MODU-GIS-Project/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "sightings", "s").
	Project("id", "ID").
	Project("sub_id", "SubID").
	Project("loc_id", "LocID").
	Project("location_name", "LocationName").
	Project("species_code", "SpeciesCode").
	Project("species_name", "SpeciesName").
	Project("observation_date", "ObservationDate").
	Project("observation_date_raw", "ObservationRaw").
	Project("individuals", "Individuals").
	Project("valid", "Valid").
	Project("reviewed", "Reviewed").
	Project("location_private", "LocationPrivate").
	Project("latitude", "Latitude").
	Project("longitude", "Longitude").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{
	Field:      "ObservationDate",
	Descending: true,
}

// Filters contains optional filtering criteria for sighting queries.
// Nil fields are ignored. SpeciesCode and LocID use exact matching;
// ObservedFrom/ObservedTo bound the observation date inclusively.
type Filters struct {
	SpeciesCode     *string    `json:"species_code,omitempty"`
	LocID           *string    `json:"ebird_loc_id,omitempty"`
	Valid           *bool      `json:"ebird_valid,omitempty"`
	Reviewed        *bool      `json:"ebird_reviewed,omitempty"`
	LocationPrivate *bool      `json:"location_private,omitempty"`
	ObservedFrom    *time.Time `json:"observed_from,omitempty"`
	ObservedTo      *time.Time `json:"observed_to,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("SpeciesCode", f.SpeciesCode).
		WhereEquals("LocID", f.LocID).
		WhereEquals("Valid", f.Valid).
		WhereEquals("Reviewed", f.Reviewed).
		WhereEquals("LocationPrivate", f.LocationPrivate).
		WhereGTE("ObservationDate", f.ObservedFrom).
		WhereLTE("ObservationDate", f.ObservedTo)
}

// FiltersFromQuery extracts filter values from URL query parameters.
// Date bounds accept RFC 3339 timestamps or bare dates.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if sc := values.Get("species_code"); sc != "" {
		f.SpeciesCode = &sc
	}

	if l := values.Get("loc_id"); l != "" {
		f.LocID = &l
	}

	if v := values.Get("valid"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			f.Valid = &b
		}
	}

	if v := values.Get("reviewed"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			f.Reviewed = &b
		}
	}

	if v := values.Get("location_private"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			f.LocationPrivate = &b
		}
	}

	if v := values.Get("observed_from"); v != "" {
		if t, ok := parseDateParam(v); ok {
			f.ObservedFrom = &t
		}
	}

	if v := values.Get("observed_to"); v != "" {
		if t, ok := parseDateParam(v); ok {
			f.ObservedTo = &t
		}
	}

	return f
}

func parseDateParam(v string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func scanSighting(s repository.Scanner) (Sighting, error) {
	var sg Sighting
	err := s.Scan(
		&sg.ID,
		&sg.SubID,
		&sg.LocID,
		&sg.LocationName,
		&sg.SpeciesCode,
		&sg.SpeciesName,
		&sg.ObservationDate,
		&sg.ObservationRaw,
		&sg.Individuals,
		&sg.Valid,
		&sg.Reviewed,
		&sg.LocationPrivate,
		&sg.Latitude,
		&sg.Longitude,
		&sg.CreatedAt,
	)
	return sg, err
}
