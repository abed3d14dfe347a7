package interfaces

import (
	"context"

	"clicknova_admin/internal/domain/entities"
)

type ICareerRequestRepository interface {
	Create(ctx context.Context, r entities.CareerRequest) (entities.CareerRequest, error)
	GetByID(ctx context.Context, id string) (entities.CareerRequest, error)
	Update(ctx context.Context, r entities.CareerRequest) (entities.CareerRequest, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entities.CareerRequest, error)
}

// Website submission repositories deliberately lack Create: the public site
// is the only producer of these collections.

type ICareerSubmissionRepository interface {
	GetByID(ctx context.Context, id string) (entities.CareerSubmission, error)
	Update(ctx context.Context, s entities.CareerSubmission) (entities.CareerSubmission, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entities.CareerSubmission, error)
}

type IContactSubmissionRepository interface {
	GetByID(ctx context.Context, id string) (entities.ContactSubmission, error)
	Update(ctx context.Context, s entities.ContactSubmission) (entities.ContactSubmission, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entities.ContactSubmission, error)
}

type IFreeQuoteSubmissionRepository interface {
	GetByID(ctx context.Context, id string) (entities.FreeQuoteSubmission, error)
	Update(ctx context.Context, s entities.FreeQuoteSubmission) (entities.FreeQuoteSubmission, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entities.FreeQuoteSubmission, error)
}
