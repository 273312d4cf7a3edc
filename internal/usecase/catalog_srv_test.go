package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"salon-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func makeCategory(name, icon string, order int) *entity.ServiceCategory {
	category := &entity.ServiceCategory{
		Name:         name,
		Icon:         icon,
		DisplayOrder: order,
	}
	category.ID = uuid.New()
	category.CreatedAt = time.Now()
	return category
}

func makeService(categoryID uuid.UUID, name string, price float64) *entity.Service {
	service := &entity.Service{
		CategoryID:      categoryID,
		Name:            name,
		Description:     name + " description",
		DurationMinutes: 45,
		Price:           price,
		IsActive:        true,
	}
	service.ID = uuid.New()
	service.CreatedAt = time.Now()
	return service
}

func TestGetCatalog_NoFilterReturnsEverything(t *testing.T) {
	hair := makeCategory("Cabelo", entity.IconScissors, 1)
	nails := makeCategory("Unhas", entity.IconHand, 2)
	services := []*entity.Service{
		makeService(hair.ID, "Corte Feminino", 80),
		makeService(nails.ID, "Manicure", 45),
		makeService(nails.ID, "Pedicure", 55),
	}

	svc := NewCatalogService(newTestRepo(
		&fakeCategoryRepo{findAll: func(ctx context.Context) ([]*entity.ServiceCategory, error) {
			return []*entity.ServiceCategory{hair, nails}, nil
		}},
		&fakeServiceRepo{findActive: func(ctx context.Context) ([]*entity.Service, error) {
			return services, nil
		}},
		nil,
	), zap.NewNop())

	catalog := svc.GetCatalog(context.Background(), "")
	require.Len(t, catalog.Categories, 2)
	require.Len(t, catalog.Services, 3)

	// "all" behaves the same as no filter
	catalog = svc.GetCatalog(context.Background(), "all")
	assert.Len(t, catalog.Services, 3)
}

func TestGetCatalog_CategoryFilter(t *testing.T) {
	hair := makeCategory("Cabelo", entity.IconScissors, 1)
	nails := makeCategory("Unhas", entity.IconHand, 2)
	services := []*entity.Service{
		makeService(hair.ID, "Corte Feminino", 80),
		makeService(nails.ID, "Manicure", 45),
		makeService(nails.ID, "Pedicure", 55),
	}

	svc := NewCatalogService(newTestRepo(
		&fakeCategoryRepo{findAll: func(ctx context.Context) ([]*entity.ServiceCategory, error) {
			return []*entity.ServiceCategory{hair, nails}, nil
		}},
		&fakeServiceRepo{findActive: func(ctx context.Context) ([]*entity.Service, error) {
			return services, nil
		}},
		nil,
	), zap.NewNop())

	catalog := svc.GetCatalog(context.Background(), nails.ID.String())
	require.Len(t, catalog.Services, 2)
	for _, service := range catalog.Services {
		assert.Equal(t, nails.ID.String(), service.CategoryID)
		assert.Equal(t, entity.IconHand, service.Icon)
	}

	// Categories stay complete regardless of the service filter
	assert.Len(t, catalog.Categories, 2)
}

func TestGetCatalog_UnknownCategoryMatchesNothing(t *testing.T) {
	hair := makeCategory("Cabelo", entity.IconScissors, 1)

	svc := NewCatalogService(newTestRepo(
		&fakeCategoryRepo{findAll: func(ctx context.Context) ([]*entity.ServiceCategory, error) {
			return []*entity.ServiceCategory{hair}, nil
		}},
		&fakeServiceRepo{findActive: func(ctx context.Context) ([]*entity.Service, error) {
			return []*entity.Service{makeService(hair.ID, "Corte Feminino", 80)}, nil
		}},
		nil,
	), zap.NewNop())

	assert.Empty(t, svc.GetCatalog(context.Background(), uuid.NewString()).Services)
	assert.Empty(t, svc.GetCatalog(context.Background(), "not-a-uuid").Services)
}

func TestGetCatalog_FetchErrorsDegradeToEmpty(t *testing.T) {
	svc := NewCatalogService(newTestRepo(
		&fakeCategoryRepo{findAll: func(ctx context.Context) ([]*entity.ServiceCategory, error) {
			return nil, errors.New("connection refused")
		}},
		&fakeServiceRepo{findActive: func(ctx context.Context) ([]*entity.Service, error) {
			return nil, errors.New("connection refused")
		}},
		nil,
	), zap.NewNop())

	catalog := svc.GetCatalog(context.Background(), "")
	assert.Empty(t, catalog.Categories)
	assert.Empty(t, catalog.Services)
}

func TestGetCatalog_UnknownIconFallsBackToSparkles(t *testing.T) {
	category := makeCategory("Outros", "Rocket", 9)

	svc := NewCatalogService(newTestRepo(
		&fakeCategoryRepo{findAll: func(ctx context.Context) ([]*entity.ServiceCategory, error) {
			return []*entity.ServiceCategory{category}, nil
		}},
		&fakeServiceRepo{findActive: func(ctx context.Context) ([]*entity.Service, error) {
			return []*entity.Service{makeService(category.ID, "Design", 30)}, nil
		}},
		nil,
	), zap.NewNop())

	catalog := svc.GetCatalog(context.Background(), "")
	require.Len(t, catalog.Categories, 1)
	require.Len(t, catalog.Services, 1)
	assert.Equal(t, entity.IconSparkles, catalog.Categories[0].Icon)
	assert.Equal(t, entity.IconSparkles, catalog.Services[0].Icon)
}
