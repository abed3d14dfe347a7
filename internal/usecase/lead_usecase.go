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
	ErrLeadNotFound      = errors.New("lead not found")
	ErrInvalidLeadID     = errors.New("invalid lead id")
	ErrInvalidLeadInput  = errors.New("customer name and mobile number are required")
	ErrInvalidLeadStatus = errors.New("invalid lead status")
)

var leadStatuses = map[entities.LeadStatus]struct{}{
	entities.LeadStatusNew:                 {},
	entities.LeadStatusFollowup:            {},
	entities.LeadStatusNotReachable:        {},
	entities.LeadStatusContacted:           {},
	entities.LeadStatusDetailsSent:         {},
	entities.LeadStatusMoreChanges:         {},
	entities.LeadStatusConfirmed:           {},
	entities.LeadStatusConvertedToCustomer: {},
}

type ILeadUseCase interface {
	Create(ctx context.Context, l entities.Lead) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	Update(ctx context.Context, l entities.Lead) (entities.Lead, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entities.Lead, error)
}

type LeadUseCase struct {
	repo interfaces.ILeadRepository
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

func NewLeadUseCase(repo interfaces.ILeadRepository) *LeadUseCase {
	return &LeadUseCase{repo: repo}
}

func (u *LeadUseCase) Create(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	l.CustomerName = strings.TrimSpace(l.CustomerName)
	l.MobileNumber = strings.TrimSpace(l.MobileNumber)
	if l.CustomerName == "" || l.MobileNumber == "" {
		return entities.Lead{}, ErrInvalidLeadInput
	}
	if l.Status == "" {
		l.Status = entities.LeadStatusNew
	}
	if _, ok := leadStatuses[l.Status]; !ok {
		return entities.Lead{}, ErrInvalidLeadStatus
	}

	now := time.Now().UTC()
	l.ID = uuid.NewString()
	l.CreatedAt = now
	l.UpdatedAt = now
	return u.repo.Create(ctx, l)
}

func (u *LeadUseCase) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}

	l, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}
	if l.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	return l, nil
}

func (u *LeadUseCase) Update(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	l.ID = strings.TrimSpace(l.ID)
	if l.ID == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}
	l.CustomerName = strings.TrimSpace(l.CustomerName)
	l.MobileNumber = strings.TrimSpace(l.MobileNumber)
	if l.CustomerName == "" || l.MobileNumber == "" {
		return entities.Lead{}, ErrInvalidLeadInput
	}
	if _, ok := leadStatuses[l.Status]; !ok {
		return entities.Lead{}, ErrInvalidLeadStatus
	}

	updated, err := u.repo.Update(ctx, l)
	if err != nil {
		return entities.Lead{}, err
	}
	if updated.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	return updated, nil
}

func (u *LeadUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidLeadID
	}
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

func (u *LeadUseCase) List(ctx context.Context) ([]entities.Lead, error) {
	return u.repo.List(ctx)
}
