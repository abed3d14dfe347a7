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
	ErrCareerRequestNotFound  = errors.New("career request not found")
	ErrInvalidCareerRequestID = errors.New("invalid career request id")
	ErrInvalidCareerInput     = errors.New("candidate name and mobile number are required")
	ErrInvalidCareerRole      = errors.New("invalid requested role")
	ErrInvalidCareerRating    = errors.New("rating must be between 1 and 5")
)

type ICareerRequestUseCase interface {
	Create(ctx context.Context, r entities.CareerRequest) (entities.CareerRequest, error)
	GetByID(ctx context.Context, id string) (entities.CareerRequest, error)
	Update(ctx context.Context, r entities.CareerRequest) (entities.CareerRequest, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entities.CareerRequest, error)
	Roles() []string
}

type CareerRequestUseCase struct {
	repo interfaces.ICareerRequestRepository
}

var _ ICareerRequestUseCase = (*CareerRequestUseCase)(nil)

func NewCareerRequestUseCase(repo interfaces.ICareerRequestRepository) *CareerRequestUseCase {
	return &CareerRequestUseCase{repo: repo}
}

func (u *CareerRequestUseCase) Create(ctx context.Context, r entities.CareerRequest) (entities.CareerRequest, error) {
	if err := validateCareerRequest(&r); err != nil {
		return entities.CareerRequest{}, err
	}

	now := time.Now().UTC()
	r.ID = uuid.NewString()
	r.CreatedAt = now
	r.UpdatedAt = now
	return u.repo.Create(ctx, r)
}

func (u *CareerRequestUseCase) GetByID(ctx context.Context, id string) (entities.CareerRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CareerRequest{}, ErrInvalidCareerRequestID
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.CareerRequest{}, err
	}
	if r.ID == "" {
		return entities.CareerRequest{}, ErrCareerRequestNotFound
	}
	return r, nil
}

func (u *CareerRequestUseCase) Update(ctx context.Context, r entities.CareerRequest) (entities.CareerRequest, error) {
	r.ID = strings.TrimSpace(r.ID)
	if r.ID == "" {
		return entities.CareerRequest{}, ErrInvalidCareerRequestID
	}
	if err := validateCareerRequest(&r); err != nil {
		return entities.CareerRequest{}, err
	}

	updated, err := u.repo.Update(ctx, r)
	if err != nil {
		return entities.CareerRequest{}, err
	}
	if updated.ID == "" {
		return entities.CareerRequest{}, ErrCareerRequestNotFound
	}
	return updated, nil
}

func (u *CareerRequestUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, strings.TrimSpace(id))
}

func (u *CareerRequestUseCase) List(ctx context.Context) ([]entities.CareerRequest, error) {
	return u.repo.List(ctx)
}

// Roles returns the positions offered on the request form.
func (u *CareerRequestUseCase) Roles() []string {
	roles := make([]string, len(entities.CareerRequestRoles))
	copy(roles, entities.CareerRequestRoles)
	return roles
}

func validateCareerRequest(r *entities.CareerRequest) error {
	r.EmployeeName = strings.TrimSpace(r.EmployeeName)
	r.MobileNumber = strings.TrimSpace(r.MobileNumber)
	if r.EmployeeName == "" || r.MobileNumber == "" {
		return ErrInvalidCareerInput
	}
	if r.RequestedFor != "" && !validCareerRole(r.RequestedFor) {
		return ErrInvalidCareerRole
	}
	if r.Rating < 0 || r.Rating > 5 {
		return ErrInvalidCareerRating
	}
	return nil
}

func validCareerRole(role string) bool {
	for _, r := range entities.CareerRequestRoles {
		if r == role {
			return true
		}
	}
	return false
}
