package usecase

import (
	"context"
	"errors"
	"strings"

	"clicknova_admin/internal/domain/entities"
	"clicknova_admin/internal/usecase/interfaces"
)

var (
	ErrSubmissionNotFound      = errors.New("submission not found")
	ErrInvalidSubmissionID     = errors.New("invalid submission id")
	ErrInvalidSubmissionStatus = errors.New("invalid submission status")
)

var careerSubmissionStatuses = map[entities.CareerSubmissionStatus]struct{}{
	entities.CareerSubmissionStatusNew:         {},
	entities.CareerSubmissionStatusReviewed:    {},
	entities.CareerSubmissionStatusShortlisted: {},
	entities.CareerSubmissionStatusRejected:    {},
}

var contactSubmissionStatuses = map[entities.ContactSubmissionStatus]struct{}{
	entities.ContactSubmissionStatusNew:        {},
	entities.ContactSubmissionStatusContacted:  {},
	entities.ContactSubmissionStatusInProgress: {},
	entities.ContactSubmissionStatusResolved:   {},
	entities.ContactSubmissionStatusClosed:     {},
}

var freeQuoteSubmissionStatuses = map[entities.FreeQuoteSubmissionStatus]struct{}{
	entities.FreeQuoteSubmissionStatusNew:       {},
	entities.FreeQuoteSubmissionStatusQuoted:    {},
	entities.FreeQuoteSubmissionStatusCompleted: {},
	entities.FreeQuoteSubmissionStatusRejected:  {},
}

// IWebsiteUseCase manages the three inbox collections fed by the public
// site. There is no Create on purpose; the site is the only producer.
type IWebsiteUseCase interface {
	GetCareerSubmission(ctx context.Context, id string) (entities.CareerSubmission, error)
	UpdateCareerSubmission(ctx context.Context, s entities.CareerSubmission) (entities.CareerSubmission, error)
	DeleteCareerSubmission(ctx context.Context, id string) error
	ListCareerSubmissions(ctx context.Context) ([]entities.CareerSubmission, error)

	GetContactSubmission(ctx context.Context, id string) (entities.ContactSubmission, error)
	UpdateContactSubmission(ctx context.Context, s entities.ContactSubmission) (entities.ContactSubmission, error)
	DeleteContactSubmission(ctx context.Context, id string) error
	ListContactSubmissions(ctx context.Context) ([]entities.ContactSubmission, error)

	GetFreeQuoteSubmission(ctx context.Context, id string) (entities.FreeQuoteSubmission, error)
	UpdateFreeQuoteSubmission(ctx context.Context, s entities.FreeQuoteSubmission) (entities.FreeQuoteSubmission, error)
	DeleteFreeQuoteSubmission(ctx context.Context, id string) error
	ListFreeQuoteSubmissions(ctx context.Context) ([]entities.FreeQuoteSubmission, error)
}

type WebsiteUseCase struct {
	careers    interfaces.ICareerSubmissionRepository
	contacts   interfaces.IContactSubmissionRepository
	freeQuotes interfaces.IFreeQuoteSubmissionRepository
}

var _ IWebsiteUseCase = (*WebsiteUseCase)(nil)

func NewWebsiteUseCase(
	careers interfaces.ICareerSubmissionRepository,
	contacts interfaces.IContactSubmissionRepository,
	freeQuotes interfaces.IFreeQuoteSubmissionRepository,
) *WebsiteUseCase {
	return &WebsiteUseCase{careers: careers, contacts: contacts, freeQuotes: freeQuotes}
}

func (u *WebsiteUseCase) GetCareerSubmission(ctx context.Context, id string) (entities.CareerSubmission, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CareerSubmission{}, ErrInvalidSubmissionID
	}
	s, err := u.careers.GetByID(ctx, id)
	if err != nil {
		return entities.CareerSubmission{}, err
	}
	if s.ID == "" {
		return entities.CareerSubmission{}, ErrSubmissionNotFound
	}
	return s, nil
}

func (u *WebsiteUseCase) UpdateCareerSubmission(ctx context.Context, s entities.CareerSubmission) (entities.CareerSubmission, error) {
	s.ID = strings.TrimSpace(s.ID)
	if s.ID == "" {
		return entities.CareerSubmission{}, ErrInvalidSubmissionID
	}
	if _, ok := careerSubmissionStatuses[s.Status]; !ok {
		return entities.CareerSubmission{}, ErrInvalidSubmissionStatus
	}

	updated, err := u.careers.Update(ctx, s)
	if err != nil {
		return entities.CareerSubmission{}, err
	}
	if updated.ID == "" {
		return entities.CareerSubmission{}, ErrSubmissionNotFound
	}
	return updated, nil
}

func (u *WebsiteUseCase) DeleteCareerSubmission(ctx context.Context, id string) error {
	if _, err := u.GetCareerSubmission(ctx, id); err != nil {
		return err
	}
	return u.careers.Delete(ctx, strings.TrimSpace(id))
}

func (u *WebsiteUseCase) ListCareerSubmissions(ctx context.Context) ([]entities.CareerSubmission, error) {
	return u.careers.List(ctx)
}

func (u *WebsiteUseCase) GetContactSubmission(ctx context.Context, id string) (entities.ContactSubmission, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ContactSubmission{}, ErrInvalidSubmissionID
	}
	s, err := u.contacts.GetByID(ctx, id)
	if err != nil {
		return entities.ContactSubmission{}, err
	}
	if s.ID == "" {
		return entities.ContactSubmission{}, ErrSubmissionNotFound
	}
	return s, nil
}

func (u *WebsiteUseCase) UpdateContactSubmission(ctx context.Context, s entities.ContactSubmission) (entities.ContactSubmission, error) {
	s.ID = strings.TrimSpace(s.ID)
	if s.ID == "" {
		return entities.ContactSubmission{}, ErrInvalidSubmissionID
	}
	if _, ok := contactSubmissionStatuses[s.Status]; !ok {
		return entities.ContactSubmission{}, ErrInvalidSubmissionStatus
	}

	updated, err := u.contacts.Update(ctx, s)
	if err != nil {
		return entities.ContactSubmission{}, err
	}
	if updated.ID == "" {
		return entities.ContactSubmission{}, ErrSubmissionNotFound
	}
	return updated, nil
}

func (u *WebsiteUseCase) DeleteContactSubmission(ctx context.Context, id string) error {
	if _, err := u.GetContactSubmission(ctx, id); err != nil {
		return err
	}
	return u.contacts.Delete(ctx, strings.TrimSpace(id))
}

func (u *WebsiteUseCase) ListContactSubmissions(ctx context.Context) ([]entities.ContactSubmission, error) {
	return u.contacts.List(ctx)
}

func (u *WebsiteUseCase) GetFreeQuoteSubmission(ctx context.Context, id string) (entities.FreeQuoteSubmission, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.FreeQuoteSubmission{}, ErrInvalidSubmissionID
	}
	s, err := u.freeQuotes.GetByID(ctx, id)
	if err != nil {
		return entities.FreeQuoteSubmission{}, err
	}
	if s.ID == "" {
		return entities.FreeQuoteSubmission{}, ErrSubmissionNotFound
	}
	return s, nil
}

func (u *WebsiteUseCase) UpdateFreeQuoteSubmission(ctx context.Context, s entities.FreeQuoteSubmission) (entities.FreeQuoteSubmission, error) {
	s.ID = strings.TrimSpace(s.ID)
	if s.ID == "" {
		return entities.FreeQuoteSubmission{}, ErrInvalidSubmissionID
	}
	if _, ok := freeQuoteSubmissionStatuses[s.Status]; !ok {
		return entities.FreeQuoteSubmission{}, ErrInvalidSubmissionStatus
	}

	updated, err := u.freeQuotes.Update(ctx, s)
	if err != nil {
		return entities.FreeQuoteSubmission{}, err
	}
	if updated.ID == "" {
		return entities.FreeQuoteSubmission{}, ErrSubmissionNotFound
	}
	return updated, nil
}

func (u *WebsiteUseCase) DeleteFreeQuoteSubmission(ctx context.Context, id string) error {
	if _, err := u.GetFreeQuoteSubmission(ctx, id); err != nil {
		return err
	}
	return u.freeQuotes.Delete(ctx, strings.TrimSpace(id))
}

func (u *WebsiteUseCase) ListFreeQuoteSubmissions(ctx context.Context) ([]entities.FreeQuoteSubmission, error) {
	return u.freeQuotes.List(ctx)
}
