package interfaces

import (
	"context"

	"clicknova_admin/internal/domain/entities"
)

// ILeadRepository abstracts lead persistence. Reads of absent documents
// return a zero-value Lead without error; use cases translate that into
// their own not-found sentinel.
type ILeadRepository interface {
	Create(ctx context.Context, l entities.Lead) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	Update(ctx context.Context, l entities.Lead) (entities.Lead, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entities.Lead, error)
}
