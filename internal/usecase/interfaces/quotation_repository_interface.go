package interfaces

import (
	"context"

	"clicknova_admin/internal/domain/entities"
)

type IQuotationRepository interface {
	Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	Update(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entities.Quotation, error)
}
