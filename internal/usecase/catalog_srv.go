package usecase

import (
	"context"
	"sync"

	"salon-booking/internal/data/entity"
	"salon-booking/internal/data/repository"
	"salon-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CategoryFilterAll clears the category filter.
const CategoryFilterAll = "all"

type CatalogService interface {
	// GetCatalog loads all categories (display order ascending) and all
	// active services, optionally restricted to one category. Fetch errors
	// are logged and swallowed; the catalog degrades to empty lists.
	GetCatalog(ctx context.Context, categoryID string) *response.CatalogResponse
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) GetCatalog(ctx context.Context, categoryID string) *response.CatalogResponse {
	var (
		wg         sync.WaitGroup
		categories []*entity.ServiceCategory
		services   []*entity.Service
	)

	// Both fetches run concurrently, same as the storefront always loaded them.
	wg.Add(2)
	go func() {
		defer wg.Done()
		var err error
		categories, err = s.repo.Category.FindAll(ctx)
		if err != nil {
			s.log.Error("Failed to load categories", zap.Error(err))
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		services, err = s.repo.Service.FindActive(ctx)
		if err != nil {
			s.log.Error("Failed to load active services", zap.Error(err))
		}
	}()
	wg.Wait()

	services = filterByCategory(services, categoryID)

	iconByCategory := make(map[uuid.UUID]string, len(categories))
	categoryResponses := make([]response.CategoryResponse, len(categories))
	for i, category := range categories {
		iconByCategory[category.ID] = category.Icon
		categoryResponses[i] = response.CategoryToResponse(category)
	}

	serviceResponses := make([]response.ServiceResponse, len(services))
	for i, service := range services {
		serviceResponses[i] = response.ServiceToResponse(service, iconByCategory[service.CategoryID])
	}

	s.log.Debug("Catalog loaded",
		zap.Int("categories", len(categories)),
		zap.Int("services", len(services)),
		zap.String("category_filter", categoryID),
	)

	return &response.CatalogResponse{
		Categories: categoryResponses,
		Services:   serviceResponses,
	}
}

// filterByCategory keeps the services whose category reference matches the
// selection. Empty or "all" returns the set unchanged; an unparseable
// selection matches nothing.
func filterByCategory(services []*entity.Service, categoryID string) []*entity.Service {
	if categoryID == "" || categoryID == CategoryFilterAll {
		return services
	}

	id, err := uuid.Parse(categoryID)
	if err != nil {
		return nil
	}

	var filtered []*entity.Service
	for _, service := range services {
		if service.CategoryID == id {
			filtered = append(filtered, service)
		}
	}
	return filtered
}
