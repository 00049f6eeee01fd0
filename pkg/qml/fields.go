package qml

// FieldConfiguration is the <fieldConfiguration> element: one entry per
// attribute field with its bound edit widget.
type FieldConfiguration struct {
	Fields []Field `xml:"field"`
}

// Field binds an attribute field to an edit widget.
type Field struct {
	Name               string      `xml:"name,attr"`
	ConfigurationFlags string      `xml:"configurationFlags,attr,omitempty"`
	EditWidget         *EditWidget `xml:"editWidget"`
}

// EditWidget is a host-defined UI control bound to a field. Type names the
// widget kind (TextEdit, Range, CheckBox, DateTime, ...); Config carries the
// widget's option map untouched.
type EditWidget struct {
	Type   string        `xml:"type,attr"`
	Config *WidgetConfig `xml:"config"`
}

// WidgetConfig wraps the option tree under <config>.
type WidgetConfig struct {
	Options *Option `xml:"Option"`
}

// Aliases is the <aliases> element: display names per field.
type Aliases struct {
	Aliases []Alias `xml:"alias"`
}

// Alias sets the display name for a field at the given attribute index.
type Alias struct {
	Field string `xml:"field,attr"`
	Index string `xml:"index,attr,omitempty"`
	Name  string `xml:"name,attr"`
}

// Defaults is the <defaults> element: default-value expressions per field.
type Defaults struct {
	Defaults []Default `xml:"default"`
}

// Default holds a field's default-value expression. Empty expressions are
// common and preserved.
type Default struct {
	Field         string `xml:"field,attr"`
	Expression    string `xml:"expression,attr"`
	ApplyOnUpdate string `xml:"applyOnUpdate,attr,omitempty"`
}

// Constraints is the <constraints> element: per-field constraint flags.
type Constraints struct {
	Constraints []Constraint `xml:"constraint"`
}

// Constraint carries the packed constraint flags and per-kind strengths for
// a field. All strengths are "0" (disabled) in the source instance but any
// value is representable.
type Constraint struct {
	Field           string `xml:"field,attr"`
	ConstraintFlags string `xml:"constraints,attr"`
	NotNullStrength string `xml:"notnull_strength,attr,omitempty"`
	UniqueStrength  string `xml:"unique_strength,attr,omitempty"`
	ExpressionStr   string `xml:"exp_strength,attr,omitempty"`
}

// Field returns the field configuration entry with the given name, or nil.
func (fc *FieldConfiguration) Field(name string) *Field {
	if fc == nil {
		return nil
	}
	for i := range fc.Fields {
		if fc.Fields[i].Name == name {
			return &fc.Fields[i]
		}
	}
	return nil
}

// HasField reports whether a field with the given name is configured.
func (fc *FieldConfiguration) HasField(name string) bool {
	return fc.Field(name) != nil
}
