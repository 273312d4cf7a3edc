package wire

import (
	"salon-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler) {
	// GET /api/catalog - categories + active services, optional
	// ?category_id= filter ("all" or absent shows everything)
	r.Get("/api/catalog", catalogHandler.GetCatalog)
}
