package interfaces

import (
	"context"

	"clicknova_admin/internal/domain/entities"
)

type ICatalogServiceRepository interface {
	Create(ctx context.Context, s entities.CatalogService) (entities.CatalogService, error)
	GetByID(ctx context.Context, id string) (entities.CatalogService, error)
	Update(ctx context.Context, s entities.CatalogService) (entities.CatalogService, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entities.CatalogService, error)
}
