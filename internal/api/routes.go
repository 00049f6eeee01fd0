package api

import (
	"net/http"

	"github.com/brotherjack/CFL-MODU-GIS-Project/internal/config"
	"github.com/brotherjack/CFL-MODU-GIS-Project/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
) {
	routes.Register(
		mux,
		domain.Sightings.Handler().Routes(),
		domain.Styles.Handler(cfg.API.MaxUploadSizeBytes()).Routes(),
		domain.Ingest.Handler().Routes(),
		domain.Exports.Handler().Routes(),
	)
}
