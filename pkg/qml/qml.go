// Package qml models QGIS vector-layer style documents (.qml): rule-based
// marker symbology, field edit-widget configuration, temporal playback
// settings, and attribute-table layout. Documents are parsed and serialized
// without rewriting their content; authoring mistakes in the source file
// (overlapping or unsatisfiable rule filters) survive a round-trip verbatim
// and are surfaced through Lint rather than corrected.
package qml

import "encoding/xml"

// Document is a QGIS layer style document rooted at the <qgis> element.
// Elements the model does not interpret are retained as raw fragments so
// serialization does not drop host-application settings.
type Document struct {
	XMLName         xml.Name   `xml:"qgis"`
	Version         string     `xml:"version,attr"`
	StyleCategories string     `xml:"styleCategories,attr,omitempty"`
	Attrs           []xml.Attr `xml:",any,attr"`

	Temporal     *Temporal           `xml:"temporal"`
	Renderer     *Renderer           `xml:"renderer-v2"`
	Fields       *FieldConfiguration `xml:"fieldConfiguration"`
	Aliases      *Aliases            `xml:"aliases"`
	Defaults     *Defaults           `xml:"defaults"`
	Constraints  *Constraints        `xml:"constraints"`
	TableConfig  *TableConfig        `xml:"attributetableconfig"`
	GeometryType *int                `xml:"layerGeometryType"`
	Extra        []RawElement        `xml:",any"`
}

// RawElement preserves an element the model does not interpret.
// Content holds the verbatim inner XML and is re-emitted on serialization.
type RawElement struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Content string     `xml:",innerxml"`
}

// Option is a node in a QGIS option tree. Containers carry Type "Map" or
// "List" and child options; leaves carry a value and its declared type
// (QString, int, double, bool).
type Option struct {
	Name    string   `xml:"name,attr,omitempty"`
	Type    string   `xml:"type,attr,omitempty"`
	Value   string   `xml:"value,attr,omitempty"`
	Options []Option `xml:"Option"`
}

// Lookup returns the value of the named child option and whether it exists.
// Only direct children are searched.
func (o *Option) Lookup(name string) (string, bool) {
	for i := range o.Options {
		if o.Options[i].Name == name {
			return o.Options[i].Value, true
		}
	}
	return "", false
}
