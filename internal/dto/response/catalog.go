package response

import (
	"time"

	"salon-booking/internal/data/entity"
)

type CategoryResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Icon         string    `json:"icon"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

type ServiceResponse struct {
	ID              string    `json:"id"`
	CategoryID      string    `json:"category_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	DurationMinutes int       `json:"duration_minutes"`
	Price           float64   `json:"price"`
	ImageURL        *string   `json:"image_url,omitempty"`
	Icon            string    `json:"icon"`
	CreatedAt       time.Time `json:"created_at"`
}

type CatalogResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Services   []ServiceResponse  `json:"services"`
}

// Helper converters
func CategoryToResponse(category *entity.ServiceCategory) CategoryResponse {
	return CategoryResponse{
		ID:           category.ID.String(),
		Name:         category.Name,
		Icon:         entity.NormalizeIcon(category.Icon),
		DisplayOrder: category.DisplayOrder,
		CreatedAt:    category.CreatedAt,
	}
}

// ServiceToResponse carries the owning category's icon so each card can
// render one; icon falls back to Sparkles when the category is unknown.
func ServiceToResponse(service *entity.Service, icon string) ServiceResponse {
	return ServiceResponse{
		ID:              service.ID.String(),
		CategoryID:      service.CategoryID.String(),
		Name:            service.Name,
		Description:     service.Description,
		DurationMinutes: service.DurationMinutes,
		Price:           service.Price,
		ImageURL:        service.ImageURL,
		Icon:            entity.NormalizeIcon(icon),
		CreatedAt:       service.CreatedAt,
	}
}
