package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"clicknova_admin/internal/domain/entities"
	"clicknova_admin/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuotationNotFound      = errors.New("quotation not found")
	ErrInvalidQuotationID     = errors.New("invalid quotation id")
	ErrInvalidQuotationInput  = errors.New("customer name and at least one item are required")
	ErrInvalidQuotationStatus = errors.New("invalid quotation status")
)

var quotationStatuses = map[entities.QuotationStatus]struct{}{
	entities.QuotationStatusDraft:    {},
	entities.QuotationStatusSent:     {},
	entities.QuotationStatusAccepted: {},
	entities.QuotationStatusRejected: {},
	entities.QuotationStatusExpired:  {},
}

type IQuotationUseCase interface {
	Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	Update(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entities.Quotation, error)
}

type QuotationUseCase struct {
	repo interfaces.IQuotationRepository
	now  func() time.Time
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(repo interfaces.IQuotationRepository) *QuotationUseCase {
	return &QuotationUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (u *QuotationUseCase) Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	if err := validateQuotation(&q); err != nil {
		return entities.Quotation{}, err
	}
	if q.Status == "" {
		q.Status = entities.QuotationStatusDraft
	}
	if _, ok := quotationStatuses[q.Status]; !ok {
		return entities.Quotation{}, ErrInvalidQuotationStatus
	}

	now := u.now()
	q.ID = uuid.NewString()
	q.QuotationID = displayQuotationID(now)
	if q.QuotationDate == "" {
		q.QuotationDate = now.Format("2006-01-02")
	}
	priceQuotation(&q)
	q.CreatedAt = now
	q.UpdatedAt = now
	return u.repo.Create(ctx, q)
}

func (u *QuotationUseCase) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return q, nil
}

func (u *QuotationUseCase) Update(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	q.ID = strings.TrimSpace(q.ID)
	if q.ID == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}
	if err := validateQuotation(&q); err != nil {
		return entities.Quotation{}, err
	}
	if _, ok := quotationStatuses[q.Status]; !ok {
		return entities.Quotation{}, ErrInvalidQuotationStatus
	}

	existing, err := u.GetByID(ctx, q.ID)
	if err != nil {
		return entities.Quotation{}, err
	}
	// The display id is assigned once at creation.
	q.QuotationID = existing.QuotationID
	priceQuotation(&q)

	updated, err := u.repo.Update(ctx, q)
	if err != nil {
		return entities.Quotation{}, err
	}
	if updated.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return updated, nil
}

func (u *QuotationUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, strings.TrimSpace(id))
}

func (u *QuotationUseCase) List(ctx context.Context) ([]entities.Quotation, error) {
	return u.repo.List(ctx)
}

func validateQuotation(q *entities.Quotation) error {
	q.CustomerName = strings.TrimSpace(q.CustomerName)
	if q.CustomerName == "" || len(q.Items) == 0 {
		return ErrInvalidQuotationInput
	}
	return nil
}

// priceQuotation recomputes every item amount as price - discount and the
// grand total as their sum, discarding whatever the caller sent. Items,
// terms and notes without ids get one assigned.
func priceQuotation(q *entities.Quotation) {
	q.GrandTotal = 0
	for i := range q.Items {
		if q.Items[i].ID == "" {
			q.Items[i].ID = uuid.NewString()
		}
		q.Items[i].Amount = q.Items[i].Price - q.Items[i].Discount
		q.GrandTotal += q.Items[i].Amount
	}
	for i := range q.TermsAndConditions {
		if q.TermsAndConditions[i].ID == "" {
			q.TermsAndConditions[i].ID = uuid.NewString()
		}
	}
	for i := range q.Notes {
		if q.Notes[i].ID == "" {
			q.Notes[i].ID = uuid.NewString()
		}
	}
}

// displayQuotationID builds the human-facing number: CNQT, the year, the
// zero-padded month and the last four digits of the creation unix-millis.
func displayQuotationID(t time.Time) string {
	millis := t.UnixMilli()
	return fmt.Sprintf("CNQT%d%02d%04d", t.Year(), int(t.Month()), millis%10000)
}
