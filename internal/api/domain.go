package api

import (
	"github.com/brotherjack/CFL-MODU-GIS-Project/internal/exports"
	"github.com/brotherjack/CFL-MODU-GIS-Project/internal/ingest"
	"github.com/brotherjack/CFL-MODU-GIS-Project/internal/sightings"
	"github.com/brotherjack/CFL-MODU-GIS-Project/internal/styles"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Sightings sightings.System
	Styles    styles.System
	Ingest    ingest.System
	Exports   exports.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	sightingsSystem := sightings.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	stylesSystem := styles.New(
		runtime.Database.Connection(),
		runtime.Storage,
		runtime.Logger,
		runtime.Pagination,
	)

	ingestSystem := ingest.New(
		runtime.Ebird,
		sightingsSystem,
		runtime.Ingest,
		runtime.Logger,
	)

	exportsSystem := exports.New(
		sightingsSystem,
		runtime.Storage,
		runtime.Ingest,
		runtime.Logger,
	)

	return &Domain{
		Sightings: sightingsSystem,
		Styles:    stylesSystem,
		Ingest:    ingestSystem,
		Exports:   exportsSystem,
	}
}
