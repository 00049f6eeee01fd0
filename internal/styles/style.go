// Package styles implements the layer-style domain: registration, metadata
// management, and blob storage for QGIS layer-style (QML) documents. Uploads
// are validated and linted through pkg/qml before acceptance; lint warnings
// are reported to the caller but never block registration, since the host
// file's content is authoritative even when it contains authoring mistakes.
package styles

import (
	"time"

	"github.com/google/uuid"

	"github.com/brotherjack/CFL-MODU-GIS-Project/pkg/qml"
)

// Style represents a registered layer-style document with its metadata and
// blob storage reference.
type Style struct {
	ID           uuid.UUID `json:"id"`
	LayerName    string    `json:"layer_name"`
	Filename     string    `json:"filename"`
	GeometryType string    `json:"geometry_type"`
	RuleCount    int       `json:"rule_count"`
	FieldCount   int       `json:"field_count"`
	Temporal     bool      `json:"temporal"`
	SizeBytes    int64     `json:"size_bytes"`
	StorageKey   string    `json:"storage_key"`
	UploadedAt   time.Time `json:"uploaded_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateCommand carries the data needed to upload and register a new style
// document. Data holds the raw QML bytes.
type CreateCommand struct {
	Data      []byte
	LayerName string
	Filename  string
}

// UploadResult pairs the registered style with any lint warnings raised by
// its classification rules.
type UploadResult struct {
	Style    *Style        `json:"style"`
	Warnings []qml.Warning `json:"warnings,omitempty"`
}

// geometry type names indexed by the QML layerGeometryType code
var geometryNames = map[int]string{
	0: "point",
	1: "line",
	2: "polygon",
}

// describe derives registry metadata from a parsed style document.
func describe(doc *qml.Document) (geometry string, ruleCount, fieldCount int, temporal bool) {
	geometry = "unknown"
	if doc.GeometryType != nil {
		if name, ok := geometryNames[*doc.GeometryType]; ok {
			geometry = name
		}
	}

	if doc.Renderer != nil && doc.Renderer.Rules != nil {
		ruleCount = len(doc.Renderer.Rules.Rules)
	}
	if doc.Fields != nil {
		fieldCount = len(doc.Fields.Fields)
	}

	return geometry, ruleCount, fieldCount, doc.Temporal.IsEnabled()
}
