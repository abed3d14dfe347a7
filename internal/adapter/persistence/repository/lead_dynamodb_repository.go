package repository

import (
	"context"
	"errors"

	"clicknova_admin/internal/adapter/persistence/docstore"
	"clicknova_admin/internal/domain/entities"
	"clicknova_admin/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

const leadsCollection = "leads"

type leadItem struct {
	ID           string `dynamodbav:"id"`
	Status       string `dynamodbav:"status"`
	CustomerName string `dynamodbav:"customerName"`
	MobileNumber string `dynamodbav:"mobileNumber"`
	Address      string `dynamodbav:"address"`
	Requirement  string `dynamodbav:"requirement"`
	FollowupDate string `dynamodbav:"followupDate"`
	FollowupTime string `dynamodbav:"followupTime"`
	Comments     string `dynamodbav:"comments"`
	CreatedAt    string `dynamodbav:"createdAt"`
	UpdatedAt    string `dynamodbav:"updatedAt"`
}

// LeadDynamoRepository persists Lead documents in the leads collection.
type LeadDynamoRepository struct {
	store *docstore.Store
}

var _ interfaces.ILeadRepository = (*LeadDynamoRepository)(nil)

func NewLeadDynamoRepository(store *docstore.Store) *LeadDynamoRepository {
	return &LeadDynamoRepository{store: store}
}

func (r *LeadDynamoRepository) Create(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	fields, err := marshalFields(toLeadItem(l))
	if err != nil {
		return entities.Lead{}, err
	}
	if err := r.store.Create(ctx, leadsCollection, l.ID, fields); err != nil {
		return entities.Lead{}, err
	}
	return r.GetByID(ctx, l.ID)
}

func (r *LeadDynamoRepository) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	av, err := r.store.GetOne(ctx, leadsCollection, id)
	if err != nil || av == nil {
		return entities.Lead{}, err
	}
	var it leadItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Lead{}, err
	}
	return fromLeadItem(it), nil
}

func (r *LeadDynamoRepository) Update(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	fields, err := marshalFields(toLeadItem(l))
	if err != nil {
		return entities.Lead{}, err
	}
	av, err := r.store.Update(ctx, leadsCollection, l.ID, fields)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return entities.Lead{}, nil
		}
		return entities.Lead{}, err
	}
	var it leadItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Lead{}, err
	}
	return fromLeadItem(it), nil
}

func (r *LeadDynamoRepository) Delete(ctx context.Context, id string) error {
	return r.store.Remove(ctx, leadsCollection, id)
}

func (r *LeadDynamoRepository) List(ctx context.Context) ([]entities.Lead, error) {
	avs, err := r.store.List(ctx, leadsCollection)
	if err != nil {
		return nil, err
	}
	leads := make([]entities.Lead, 0, len(avs))
	for _, av := range avs {
		var it leadItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		leads = append(leads, fromLeadItem(it))
	}
	return leads, nil
}

func toLeadItem(l entities.Lead) leadItem {
	return leadItem{
		ID:           l.ID,
		Status:       string(l.Status),
		CustomerName: l.CustomerName,
		MobileNumber: l.MobileNumber,
		Address:      l.Address,
		Requirement:  l.Requirement,
		FollowupDate: l.FollowupDate,
		FollowupTime: l.FollowupTime,
		Comments:     l.Comments,
	}
}

func fromLeadItem(it leadItem) entities.Lead {
	return entities.Lead{
		ID:           it.ID,
		Status:       entities.LeadStatus(it.Status),
		CustomerName: it.CustomerName,
		MobileNumber: it.MobileNumber,
		Address:      it.Address,
		Requirement:  it.Requirement,
		FollowupDate: it.FollowupDate,
		FollowupTime: it.FollowupTime,
		Comments:     it.Comments,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
