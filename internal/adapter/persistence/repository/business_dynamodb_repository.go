package repository

import (
	"context"
	"errors"

	"clicknova_admin/internal/adapter/persistence/docstore"
	"clicknova_admin/internal/domain/entities"
	"clicknova_admin/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

const employeeBusinessesCollection = "employeeBusinesses"

type businessItem struct {
	ID           string  `dynamodbav:"id"`
	EmployeeID   string  `dynamodbav:"employeeId"`
	BusinessName string  `dynamodbav:"businessName"`
	Amount       float64 `dynamodbav:"amount"`
	CreatedAt    string  `dynamodbav:"createdAt"`
	UpdatedAt    string  `dynamodbav:"updatedAt"`
}

type BusinessDynamoRepository struct {
	store *docstore.Store
}

var _ interfaces.IBusinessRepository = (*BusinessDynamoRepository)(nil)

func NewBusinessDynamoRepository(store *docstore.Store) *BusinessDynamoRepository {
	return &BusinessDynamoRepository{store: store}
}

func (r *BusinessDynamoRepository) Create(ctx context.Context, b entities.Business) (entities.Business, error) {
	fields, err := marshalFields(toBusinessItem(b))
	if err != nil {
		return entities.Business{}, err
	}
	if err := r.store.Create(ctx, employeeBusinessesCollection, b.ID, fields); err != nil {
		return entities.Business{}, err
	}
	return r.GetByID(ctx, b.ID)
}

func (r *BusinessDynamoRepository) GetByID(ctx context.Context, id string) (entities.Business, error) {
	av, err := r.store.GetOne(ctx, employeeBusinessesCollection, id)
	if err != nil || av == nil {
		return entities.Business{}, err
	}
	var it businessItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Business{}, err
	}
	return fromBusinessItem(it), nil
}

func (r *BusinessDynamoRepository) Update(ctx context.Context, b entities.Business) (entities.Business, error) {
	fields, err := marshalFields(toBusinessItem(b))
	if err != nil {
		return entities.Business{}, err
	}
	av, err := r.store.Update(ctx, employeeBusinessesCollection, b.ID, fields)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return entities.Business{}, nil
		}
		return entities.Business{}, err
	}
	var it businessItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Business{}, err
	}
	return fromBusinessItem(it), nil
}

func (r *BusinessDynamoRepository) Delete(ctx context.Context, id string) error {
	return r.store.Remove(ctx, employeeBusinessesCollection, id)
}

func (r *BusinessDynamoRepository) ListByEmployeeID(ctx context.Context, employeeID string) ([]entities.Business, error) {
	avs, err := r.store.QueryEq(ctx, employeeBusinessesCollection, "employeeId", employeeID)
	if err != nil {
		return nil, err
	}
	businesses := make([]entities.Business, 0, len(avs))
	for _, av := range avs {
		var it businessItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		businesses = append(businesses, fromBusinessItem(it))
	}
	return businesses, nil
}

func toBusinessItem(b entities.Business) businessItem {
	return businessItem{
		ID:           b.ID,
		EmployeeID:   b.EmployeeID,
		BusinessName: b.BusinessName,
		Amount:       b.Amount,
	}
}

func fromBusinessItem(it businessItem) entities.Business {
	return entities.Business{
		ID:           it.ID,
		EmployeeID:   it.EmployeeID,
		BusinessName: it.BusinessName,
		Amount:       it.Amount,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
