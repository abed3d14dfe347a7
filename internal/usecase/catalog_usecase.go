package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"clicknova_admin/internal/domain/entities"
	"clicknova_admin/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCatalogServiceNotFound  = errors.New("catalog service not found")
	ErrInvalidCatalogServiceID = errors.New("invalid catalog service id")
	ErrInvalidCatalogInput     = errors.New("service name is required")
)

type ICatalogUseCase interface {
	Create(ctx context.Context, s entities.CatalogService) (entities.CatalogService, error)
	GetByID(ctx context.Context, id string) (entities.CatalogService, error)
	Update(ctx context.Context, s entities.CatalogService) (entities.CatalogService, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entities.CatalogService, error)
}

type CatalogUseCase struct {
	repo interfaces.ICatalogServiceRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogServiceRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (u *CatalogUseCase) Create(ctx context.Context, s entities.CatalogService) (entities.CatalogService, error) {
	s.ServiceName = strings.TrimSpace(s.ServiceName)
	if s.ServiceName == "" {
		return entities.CatalogService{}, ErrInvalidCatalogInput
	}

	now := time.Now().UTC()
	s.ID = uuid.NewString()
	s.CreatedAt = now
	s.UpdatedAt = now
	return u.repo.Create(ctx, s)
}

func (u *CatalogUseCase) GetByID(ctx context.Context, id string) (entities.CatalogService, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CatalogService{}, ErrInvalidCatalogServiceID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.CatalogService{}, err
	}
	if s.ID == "" {
		return entities.CatalogService{}, ErrCatalogServiceNotFound
	}
	return s, nil
}

func (u *CatalogUseCase) Update(ctx context.Context, s entities.CatalogService) (entities.CatalogService, error) {
	s.ID = strings.TrimSpace(s.ID)
	if s.ID == "" {
		return entities.CatalogService{}, ErrInvalidCatalogServiceID
	}
	s.ServiceName = strings.TrimSpace(s.ServiceName)
	if s.ServiceName == "" {
		return entities.CatalogService{}, ErrInvalidCatalogInput
	}

	updated, err := u.repo.Update(ctx, s)
	if err != nil {
		return entities.CatalogService{}, err
	}
	if updated.ID == "" {
		return entities.CatalogService{}, ErrCatalogServiceNotFound
	}
	return updated, nil
}

func (u *CatalogUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, strings.TrimSpace(id))
}

func (u *CatalogUseCase) List(ctx context.Context) ([]entities.CatalogService, error) {
	return u.repo.List(ctx)
}
