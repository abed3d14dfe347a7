package repository

import (
	"context"
	"errors"

	"clicknova_admin/internal/adapter/persistence/docstore"
	"clicknova_admin/internal/domain/entities"
	"clicknova_admin/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

// The three website intake collections are written by the public site; this
// service only reads, edits and deletes them, so the repositories here have
// no Create.
const (
	careersFromWebsiteCollection   = "careersfromwebsite"
	contactsFromWebsiteCollection  = "contactsfromwebsite"
	freeQuoteFromWebsiteCollection = "freequotefromwebsite"
)

type careerSubmissionItem struct {
	ID            string `dynamodbav:"id"`
	Name          string `dynamodbav:"name"`
	Mobile        string `dynamodbav:"mobile"`
	Email         string `dynamodbav:"email"`
	City          string `dynamodbav:"city"`
	ApplyingFor   string `dynamodbav:"applyingFor"`
	Qualification string `dynamodbav:"qualification"`
	Status        string `dynamodbav:"status"`
	CreatedAt     string `dynamodbav:"createdAt"`
	UpdatedAt     string `dynamodbav:"updatedAt"`
}

type contactSubmissionItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Mobile    string `dynamodbav:"mobile"`
	Email     string `dynamodbav:"email"`
	City      string `dynamodbav:"city"`
	Service   string `dynamodbav:"service"`
	Message   string `dynamodbav:"message"`
	Status    string `dynamodbav:"status"`
	CreatedAt string `dynamodbav:"createdAt"`
	UpdatedAt string `dynamodbav:"updatedAt"`
}

type freeQuoteSubmissionItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Mobile    string `dynamodbav:"mobile"`
	City      string `dynamodbav:"city"`
	Service   string `dynamodbav:"service"`
	Status    string `dynamodbav:"status"`
	CreatedAt string `dynamodbav:"createdAt"`
	UpdatedAt string `dynamodbav:"updatedAt"`
}

type CareerSubmissionDynamoRepository struct {
	store *docstore.Store
}

var _ interfaces.ICareerSubmissionRepository = (*CareerSubmissionDynamoRepository)(nil)

func NewCareerSubmissionDynamoRepository(store *docstore.Store) *CareerSubmissionDynamoRepository {
	return &CareerSubmissionDynamoRepository{store: store}
}

func (r *CareerSubmissionDynamoRepository) GetByID(ctx context.Context, id string) (entities.CareerSubmission, error) {
	av, err := r.store.GetOne(ctx, careersFromWebsiteCollection, id)
	if err != nil || av == nil {
		return entities.CareerSubmission{}, err
	}
	var it careerSubmissionItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.CareerSubmission{}, err
	}
	return fromCareerSubmissionItem(it), nil
}

func (r *CareerSubmissionDynamoRepository) Update(ctx context.Context, s entities.CareerSubmission) (entities.CareerSubmission, error) {
	fields, err := marshalFields(toCareerSubmissionItem(s))
	if err != nil {
		return entities.CareerSubmission{}, err
	}
	av, err := r.store.Update(ctx, careersFromWebsiteCollection, s.ID, fields)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return entities.CareerSubmission{}, nil
		}
		return entities.CareerSubmission{}, err
	}
	var it careerSubmissionItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.CareerSubmission{}, err
	}
	return fromCareerSubmissionItem(it), nil
}

func (r *CareerSubmissionDynamoRepository) Delete(ctx context.Context, id string) error {
	return r.store.Remove(ctx, careersFromWebsiteCollection, id)
}

func (r *CareerSubmissionDynamoRepository) List(ctx context.Context) ([]entities.CareerSubmission, error) {
	avs, err := r.store.List(ctx, careersFromWebsiteCollection)
	if err != nil {
		return nil, err
	}
	out := make([]entities.CareerSubmission, 0, len(avs))
	for _, av := range avs {
		var it careerSubmissionItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		out = append(out, fromCareerSubmissionItem(it))
	}
	return out, nil
}

type ContactSubmissionDynamoRepository struct {
	store *docstore.Store
}

var _ interfaces.IContactSubmissionRepository = (*ContactSubmissionDynamoRepository)(nil)

func NewContactSubmissionDynamoRepository(store *docstore.Store) *ContactSubmissionDynamoRepository {
	return &ContactSubmissionDynamoRepository{store: store}
}

func (r *ContactSubmissionDynamoRepository) GetByID(ctx context.Context, id string) (entities.ContactSubmission, error) {
	av, err := r.store.GetOne(ctx, contactsFromWebsiteCollection, id)
	if err != nil || av == nil {
		return entities.ContactSubmission{}, err
	}
	var it contactSubmissionItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.ContactSubmission{}, err
	}
	return fromContactSubmissionItem(it), nil
}

func (r *ContactSubmissionDynamoRepository) Update(ctx context.Context, s entities.ContactSubmission) (entities.ContactSubmission, error) {
	fields, err := marshalFields(toContactSubmissionItem(s))
	if err != nil {
		return entities.ContactSubmission{}, err
	}
	av, err := r.store.Update(ctx, contactsFromWebsiteCollection, s.ID, fields)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return entities.ContactSubmission{}, nil
		}
		return entities.ContactSubmission{}, err
	}
	var it contactSubmissionItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.ContactSubmission{}, err
	}
	return fromContactSubmissionItem(it), nil
}

func (r *ContactSubmissionDynamoRepository) Delete(ctx context.Context, id string) error {
	return r.store.Remove(ctx, contactsFromWebsiteCollection, id)
}

func (r *ContactSubmissionDynamoRepository) List(ctx context.Context) ([]entities.ContactSubmission, error) {
	avs, err := r.store.List(ctx, contactsFromWebsiteCollection)
	if err != nil {
		return nil, err
	}
	out := make([]entities.ContactSubmission, 0, len(avs))
	for _, av := range avs {
		var it contactSubmissionItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		out = append(out, fromContactSubmissionItem(it))
	}
	return out, nil
}

type FreeQuoteSubmissionDynamoRepository struct {
	store *docstore.Store
}

var _ interfaces.IFreeQuoteSubmissionRepository = (*FreeQuoteSubmissionDynamoRepository)(nil)

func NewFreeQuoteSubmissionDynamoRepository(store *docstore.Store) *FreeQuoteSubmissionDynamoRepository {
	return &FreeQuoteSubmissionDynamoRepository{store: store}
}

func (r *FreeQuoteSubmissionDynamoRepository) GetByID(ctx context.Context, id string) (entities.FreeQuoteSubmission, error) {
	av, err := r.store.GetOne(ctx, freeQuoteFromWebsiteCollection, id)
	if err != nil || av == nil {
		return entities.FreeQuoteSubmission{}, err
	}
	var it freeQuoteSubmissionItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.FreeQuoteSubmission{}, err
	}
	return fromFreeQuoteSubmissionItem(it), nil
}

func (r *FreeQuoteSubmissionDynamoRepository) Update(ctx context.Context, s entities.FreeQuoteSubmission) (entities.FreeQuoteSubmission, error) {
	fields, err := marshalFields(toFreeQuoteSubmissionItem(s))
	if err != nil {
		return entities.FreeQuoteSubmission{}, err
	}
	av, err := r.store.Update(ctx, freeQuoteFromWebsiteCollection, s.ID, fields)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return entities.FreeQuoteSubmission{}, nil
		}
		return entities.FreeQuoteSubmission{}, err
	}
	var it freeQuoteSubmissionItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.FreeQuoteSubmission{}, err
	}
	return fromFreeQuoteSubmissionItem(it), nil
}

func (r *FreeQuoteSubmissionDynamoRepository) Delete(ctx context.Context, id string) error {
	return r.store.Remove(ctx, freeQuoteFromWebsiteCollection, id)
}

func (r *FreeQuoteSubmissionDynamoRepository) List(ctx context.Context) ([]entities.FreeQuoteSubmission, error) {
	avs, err := r.store.List(ctx, freeQuoteFromWebsiteCollection)
	if err != nil {
		return nil, err
	}
	out := make([]entities.FreeQuoteSubmission, 0, len(avs))
	for _, av := range avs {
		var it freeQuoteSubmissionItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		out = append(out, fromFreeQuoteSubmissionItem(it))
	}
	return out, nil
}

func toCareerSubmissionItem(s entities.CareerSubmission) careerSubmissionItem {
	return careerSubmissionItem{
		ID:            s.ID,
		Name:          s.Name,
		Mobile:        s.Mobile,
		Email:         s.Email,
		City:          s.City,
		ApplyingFor:   s.ApplyingFor,
		Qualification: s.Qualification,
		Status:        string(s.Status),
	}
}

func fromCareerSubmissionItem(it careerSubmissionItem) entities.CareerSubmission {
	return entities.CareerSubmission{
		ID:            it.ID,
		Name:          it.Name,
		Mobile:        it.Mobile,
		Email:         it.Email,
		City:          it.City,
		ApplyingFor:   it.ApplyingFor,
		Qualification: it.Qualification,
		Status:        entities.CareerSubmissionStatus(it.Status),
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}

func toContactSubmissionItem(s entities.ContactSubmission) contactSubmissionItem {
	return contactSubmissionItem{
		ID:      s.ID,
		Name:    s.Name,
		Mobile:  s.Mobile,
		Email:   s.Email,
		City:    s.City,
		Service: s.Service,
		Message: s.Message,
		Status:  string(s.Status),
	}
}

func fromContactSubmissionItem(it contactSubmissionItem) entities.ContactSubmission {
	return entities.ContactSubmission{
		ID:        it.ID,
		Name:      it.Name,
		Mobile:    it.Mobile,
		Email:     it.Email,
		City:      it.City,
		Service:   it.Service,
		Message:   it.Message,
		Status:    entities.ContactSubmissionStatus(it.Status),
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}

func toFreeQuoteSubmissionItem(s entities.FreeQuoteSubmission) freeQuoteSubmissionItem {
	return freeQuoteSubmissionItem{
		ID:      s.ID,
		Name:    s.Name,
		Mobile:  s.Mobile,
		City:    s.City,
		Service: s.Service,
		Status:  string(s.Status),
	}
}

func fromFreeQuoteSubmissionItem(it freeQuoteSubmissionItem) entities.FreeQuoteSubmission {
	return entities.FreeQuoteSubmission{
		ID:        it.ID,
		Name:      it.Name,
		Mobile:    it.Mobile,
		City:      it.City,
		Service:   it.Service,
		Status:    entities.FreeQuoteSubmissionStatus(it.Status),
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
