package styles

import (
	"net/url"
	"strconv"

	"github.com/brotherjack/CFL-MODU-GIS-Project/pkg/query"
	"github.com/brotherjack/CFL-MODU-GIS-Project/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "styles", "st").
	Project("id", "ID").
	Project("layer_name", "LayerName").
	Project("filename", "Filename").
	Project("geometry_type", "GeometryType").
	Project("rule_count", "RuleCount").
	Project("field_count", "FieldCount").
	Project("temporal", "Temporal").
	Project("size_bytes", "SizeBytes").
	Project("storage_key", "StorageKey").
	Project("uploaded_at", "UploadedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field:      "UploadedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for style queries.
// Nil fields are ignored. GeometryType and Temporal use exact matching;
// LayerName and Filename use case-insensitive contains matching.
type Filters struct {
	LayerName    *string `json:"layer_name,omitempty"`
	Filename     *string `json:"filename,omitempty"`
	GeometryType *string `json:"geometry_type,omitempty"`
	Temporal     *bool   `json:"temporal,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereContains("LayerName", f.LayerName).
		WhereContains("Filename", f.Filename).
		WhereEquals("GeometryType", f.GeometryType).
		WhereEquals("Temporal", f.Temporal)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if ln := values.Get("layer_name"); ln != "" {
		f.LayerName = &ln
	}

	if fn := values.Get("filename"); fn != "" {
		f.Filename = &fn
	}

	if gt := values.Get("geometry_type"); gt != "" {
		f.GeometryType = &gt
	}

	if tp := values.Get("temporal"); tp != "" {
		if b, err := strconv.ParseBool(tp); err == nil {
			f.Temporal = &b
		}
	}

	return f
}

func scanStyle(s repository.Scanner) (Style, error) {
	var st Style
	err := s.Scan(
		&st.ID,
		&st.LayerName,
		&st.Filename,
		&st.GeometryType,
		&st.RuleCount,
		&st.FieldCount,
		&st.Temporal,
		&st.SizeBytes,
		&st.StorageKey,
		&st.UploadedAt,
		&st.UpdatedAt,
	)
	return st, err
}
