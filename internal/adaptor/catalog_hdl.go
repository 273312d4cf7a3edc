package adaptor

import (
	"net/http"

	"salon-booking/internal/usecase"
	"salon-booking/pkg/utils"

	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// GetCatalog handles GET /api/catalog?category_id=
//
// Always 200: fetch failures degrade to empty lists, the storefront shows
// whatever it gets.
func (h *CatalogHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	categoryID := r.URL.Query().Get("category_id")

	catalog := h.service.GetCatalog(r.Context(), categoryID)

	utils.ResponseSuccess(w, "success", catalog)
}
