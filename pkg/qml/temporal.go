package qml

// Temporal is the <temporal> element: dynamic temporal-display settings for
// the layer. The source instance uses a single playback mode keyed on the
// observation-date field.
type Temporal struct {
	Enabled       string `xml:"enabled,attr"`
	Mode          string `xml:"mode,attr,omitempty"`
	StartField    string `xml:"startField,attr,omitempty"`
	EndField      string `xml:"endField,attr,omitempty"`
	DurationField string `xml:"durationField,attr,omitempty"`
	DurationUnit  string `xml:"durationUnit,attr,omitempty"`
	FixedDuration string `xml:"fixedDuration,attr,omitempty"`
	Accumulate    string `xml:"accumulate,attr,omitempty"`
	StartExpr     string `xml:"startExpression,attr,omitempty"`
	EndExpr       string `xml:"endExpression,attr,omitempty"`
	LimitMode     string `xml:"limitMode,attr,omitempty"`
}

// IsEnabled reports whether temporal display is switched on.
func (t *Temporal) IsEnabled() bool {
	return t != nil && t.Enabled == "1"
}

// TableConfig is the <attributetableconfig> element.
type TableConfig struct {
	ActionWidgetStyle string        `xml:"actionWidgetStyle,attr,omitempty"`
	SortExpression    string        `xml:"sortExpression,attr,omitempty"`
	SortOrder         string        `xml:"sortOrder,attr,omitempty"`
	Columns           *TableColumns `xml:"columns"`
}

// TableColumns holds the ordered column list of the attribute table.
type TableColumns struct {
	Columns []TableColumn `xml:"column"`
}

// TableColumn is one attribute-table column: field binding, width in pixels
// (-1 means automatic), and visibility.
type TableColumn struct {
	Name   string `xml:"name,attr,omitempty"`
	Type   string `xml:"type,attr"`
	Width  string `xml:"width,attr"`
	Hidden string `xml:"hidden,attr"`
}
