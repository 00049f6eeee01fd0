// Package geojson provides the minimal GeoJSON feature model used by the
// sightings pipeline: point features in a feature collection, with free-form
// properties.
package geojson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Type names for the GeoJSON objects the pipeline produces.
const (
	TypeFeatureCollection = "FeatureCollection"
	TypeFeature           = "Feature"
	TypePoint             = "Point"
)

// ErrNotFeatureCollection indicates a decoded document is not a GeoJSON
// feature collection.
var ErrNotFeatureCollection = errors.New("not a feature collection")

// Geometry is a GeoJSON geometry. Only Point is produced by this project;
// coordinates are [longitude, latitude].
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// Feature is a GeoJSON feature with a geometry and free-form properties.
type Feature struct {
	Type       string         `json:"type"`
	Geometry   Geometry       `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

// FeatureCollection is a GeoJSON feature collection. Features is never nil
// after NewFeatureCollection or a successful Decode.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// NewFeatureCollection creates an empty feature collection.
func NewFeatureCollection() *FeatureCollection {
	return &FeatureCollection{
		Type:     TypeFeatureCollection,
		Features: []Feature{},
	}
}

// NewPointFeature creates a point feature at (lng, lat) with the given
// properties.
func NewPointFeature(lng, lat float64, properties map[string]any) Feature {
	return Feature{
		Type: TypeFeature,
		Geometry: Geometry{
			Type:        TypePoint,
			Coordinates: []float64{lng, lat},
		},
		Properties: properties,
	}
}

// Append adds a feature to the collection.
func (fc *FeatureCollection) Append(f Feature) {
	fc.Features = append(fc.Features, f)
}

// Decode reads a feature collection from r. Documents whose type is not
// FeatureCollection, or whose features member is absent, are rejected with
// ErrNotFeatureCollection.
func Decode(r io.Reader) (*FeatureCollection, error) {
	var raw struct {
		Type     string           `json:"type"`
		Features *json.RawMessage `json:"features"`
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read geojson: %w", err)
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse geojson: %w", err)
	}
	if raw.Type != TypeFeatureCollection || raw.Features == nil {
		return nil, ErrNotFeatureCollection
	}

	var fc FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse feature collection: %w", err)
	}
	if fc.Features == nil {
		fc.Features = []Feature{}
	}

	return &fc, nil
}

// Encode writes the collection to w as JSON.
func (fc *FeatureCollection) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(fc); err != nil {
		return fmt.Errorf("encode feature collection: %w", err)
	}
	return nil
}
