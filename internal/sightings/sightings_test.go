package sightings_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/brotherjack/CFL-MODU-GIS-Project/internal/sightings"
)

func ptr[T any](v T) *T { return &v }

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", sightings.ErrNotFound, http.StatusNotFound},
		{"duplicate", sightings.ErrDuplicate, http.StatusConflict},
		{"invalid", sightings.ErrInvalid, http.StatusBadRequest},
		{"unknown error", errors.New("something else"), http.StatusInternalServerError},
		{"wrapped not found", fmt.Errorf("find failed: %w", sightings.ErrNotFound), http.StatusNotFound},
		{"wrapped duplicate", fmt.Errorf("insert failed: %w", sightings.ErrDuplicate), http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sightings.MapHTTPStatus(tt.err)
			if got != tt.want {
				t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestFiltersFromQuery(t *testing.T) {
	t.Run("all params present", func(t *testing.T) {
		values := url.Values{
			"species_code":     {"motduc"},
			"loc_id":           {"L123"},
			"valid":            {"true"},
			"reviewed":         {"false"},
			"location_private": {"true"},
			"observed_from":    {"2026-08-01"},
			"observed_to":      {"2026-08-29T12:00:00Z"},
		}

		f := sightings.FiltersFromQuery(values)

		if f.SpeciesCode == nil || *f.SpeciesCode != "motduc" {
			t.Errorf("SpeciesCode = %v, want motduc", f.SpeciesCode)
		}
		if f.LocID == nil || *f.LocID != "L123" {
			t.Errorf("LocID = %v, want L123", f.LocID)
		}
		if f.Valid == nil || !*f.Valid {
			t.Errorf("Valid = %v, want true", f.Valid)
		}
		if f.Reviewed == nil || *f.Reviewed {
			t.Errorf("Reviewed = %v, want false", f.Reviewed)
		}
		if f.LocationPrivate == nil || !*f.LocationPrivate {
			t.Errorf("LocationPrivate = %v, want true", f.LocationPrivate)
		}
		if f.ObservedFrom == nil || !f.ObservedFrom.Equal(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("ObservedFrom = %v", f.ObservedFrom)
		}
		if f.ObservedTo == nil || !f.ObservedTo.Equal(time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)) {
			t.Errorf("ObservedTo = %v", f.ObservedTo)
		}
	})

	t.Run("empty params yield nil fields", func(t *testing.T) {
		f := sightings.FiltersFromQuery(url.Values{})

		if f.SpeciesCode != nil || f.LocID != nil || f.Valid != nil ||
			f.Reviewed != nil || f.LocationPrivate != nil ||
			f.ObservedFrom != nil || f.ObservedTo != nil {
			t.Errorf("filters = %+v, want all nil", f)
		}
	})

	t.Run("invalid values ignored", func(t *testing.T) {
		values := url.Values{
			"valid":         {"yes please"},
			"observed_from": {"last tuesday"},
		}

		f := sightings.FiltersFromQuery(values)

		if f.Valid != nil {
			t.Errorf("Valid = %v, want nil for invalid input", f.Valid)
		}
		if f.ObservedFrom != nil {
			t.Errorf("ObservedFrom = %v, want nil for invalid input", f.ObservedFrom)
		}
	})
}

func TestFeature(t *testing.T) {
	s := sightings.Sighting{
		SubID:           "S987654321",
		LocID:           "L123",
		LocationName:    "Lake Apopka North Shore",
		SpeciesCode:     "motduc",
		SpeciesName:     "mottled duck",
		ObservationDate: time.Date(2026, 8, 27, 7, 45, 0, 0, time.UTC),
		Individuals:     ptr(6),
		Valid:           true,
		Latitude:        28.6847,
		Longitude:       -81.5902,
	}

	f := s.Feature()

	if f.Geometry.Type != "Point" {
		t.Errorf("geometry type = %q, want Point", f.Geometry.Type)
	}
	// GeoJSON coordinate order is [lng, lat]
	if f.Geometry.Coordinates[0] != -81.5902 || f.Geometry.Coordinates[1] != 28.6847 {
		t.Errorf("coordinates = %v", f.Geometry.Coordinates)
	}

	if f.Properties["ebird_subId"] != "S987654321" {
		t.Errorf("ebird_subId = %v", f.Properties["ebird_subId"])
	}
	if f.Properties["observation_date"] != "2026-08-27 07:45" {
		t.Errorf("observation_date = %v", f.Properties["observation_date"])
	}
	if f.Properties["individuals"] != 6 {
		t.Errorf("individuals = %v", f.Properties["individuals"])
	}
	if f.Properties["species"] != "mottled duck" {
		t.Errorf("species = %v", f.Properties["species"])
	}
}

func TestFeatureKeepsReportedPrecision(t *testing.T) {
	s := sightings.Sighting{
		SubID:           "S555",
		SpeciesName:     "mottled duck",
		ObservationDate: time.Date(2026, 8, 21, 0, 0, 0, 0, time.UTC),
		ObservationRaw:  "2026-08-21",
	}

	f := s.Feature()

	if f.Properties["observation_date"] != "2026-08-21" {
		t.Errorf("observation_date = %v, want 2026-08-21", f.Properties["observation_date"])
	}
}

func TestFeatureWithoutCount(t *testing.T) {
	s := sightings.Sighting{SubID: "S1", SpeciesName: "mallard"}

	f := s.Feature()

	if _, ok := f.Properties["individuals"]; ok {
		t.Error("individuals property present for presence-only sighting")
	}
}
