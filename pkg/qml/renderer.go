package qml

// Renderer is the <renderer-v2> element. Only the rule-based renderer is
// interpreted; other renderer types still parse (the rule and symbol lists
// are simply empty) and serialize with their attributes intact.
type Renderer struct {
	Type          string     `xml:"type,attr"`
	ForceRaster   string     `xml:"forceraster,attr,omitempty"`
	SymbolLevels  string     `xml:"symbollevels,attr,omitempty"`
	EnableOrderBy string     `xml:"enableorderby,attr,omitempty"`
	Rules         *RuleSet   `xml:"rules"`
	Symbols       *SymbolSet `xml:"symbols"`
}

// RendererTypeRuleBased identifies the rule-based renderer.
const RendererTypeRuleBased = "RuleRenderer"

// RuleSet is the ordered rule list under <rules>. Order is the order the
// host evaluates rules in and must be preserved.
type RuleSet struct {
	Key   string `xml:"key,attr,omitempty"`
	Rules []Rule `xml:"rule"`
}

// Rule binds a filter expression to a symbol reference and a legend label.
// Filter is an opaque host expression; it is never rewritten, even when it
// is self-contradictory (see Lint).
type Rule struct {
	Filter      string `xml:"filter,attr,omitempty"`
	Key         string `xml:"key,attr"`
	Symbol      string `xml:"symbol,attr"`
	Label       string `xml:"label,attr,omitempty"`
	Description string `xml:"description,attr,omitempty"`
	Else        string `xml:"checkstate,attr,omitempty"`
}

// SymbolSet holds the marker symbol definitions referenced by rules.
type SymbolSet struct {
	Symbols []Symbol `xml:"symbol"`
}

// Symbol is a reusable marker style referenced by rules through its Name.
type Symbol struct {
	Type         string        `xml:"type,attr"`
	Name         string        `xml:"name,attr"`
	Alpha        string        `xml:"alpha,attr,omitempty"`
	ClipToExtent string        `xml:"clip_to_extent,attr,omitempty"`
	ForceRHR     string        `xml:"force_rhr,attr,omitempty"`
	Layers       []SymbolLayer `xml:"layer"`
}

// SymbolLayer is one drawing layer of a symbol (e.g. class SimpleMarker)
// with its option map (color, outline_color, outline_width, size, name).
type SymbolLayer struct {
	Class   string  `xml:"class,attr"`
	Enabled string  `xml:"enabled,attr,omitempty"`
	Pass    string  `xml:"pass,attr,omitempty"`
	Locked  string  `xml:"locked,attr,omitempty"`
	Options *Option `xml:"Option"`
}

// Symbol returns the symbol with the given name, or nil.
func (s *SymbolSet) Symbol(name string) *Symbol {
	if s == nil {
		return nil
	}
	for i := range s.Symbols {
		if s.Symbols[i].Name == name {
			return &s.Symbols[i]
		}
	}
	return nil
}

// RuleBased reports whether the renderer is the rule-based renderer.
func (r *Renderer) RuleBased() bool {
	return r != nil && r.Type == RendererTypeRuleBased
}
