package repository

import (
	"context"
	"errors"

	"clicknova_admin/internal/adapter/persistence/docstore"
	"clicknova_admin/internal/domain/entities"
	"clicknova_admin/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

const customersCollection = "customers"

type customerItem struct {
	ID           string `dynamodbav:"id"`
	CustomerName string `dynamodbav:"customerName"`
	MobileNumber string `dynamodbav:"mobileNumber"`
	Address      string `dynamodbav:"address"`
	CreatedAt    string `dynamodbav:"createdAt"`
	UpdatedAt    string `dynamodbav:"updatedAt"`
}

// CustomerDynamoRepository persists Customer documents. Mobile lookups run
// through the mobileNumber-index GSI; the document key is always the opaque
// id.
type CustomerDynamoRepository struct {
	store *docstore.Store
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(store *docstore.Store) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{store: store}
}

func (r *CustomerDynamoRepository) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	fields, err := marshalFields(toCustomerItem(c))
	if err != nil {
		return entities.Customer{}, err
	}
	if err := r.store.Create(ctx, customersCollection, c.ID, fields); err != nil {
		return entities.Customer{}, err
	}
	return r.GetByID(ctx, c.ID)
}

func (r *CustomerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	av, err := r.store.GetOne(ctx, customersCollection, id)
	if err != nil || av == nil {
		return entities.Customer{}, err
	}
	var it customerItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func (r *CustomerDynamoRepository) GetByMobile(ctx context.Context, mobile string) (entities.Customer, error) {
	avs, err := r.store.QueryEq(ctx, customersCollection, "mobileNumber", mobile)
	if err != nil || len(avs) == 0 {
		return entities.Customer{}, err
	}
	var it customerItem
	if err := attributevalue.UnmarshalMap(avs[0], &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func (r *CustomerDynamoRepository) Update(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	fields, err := marshalFields(toCustomerItem(c))
	if err != nil {
		return entities.Customer{}, err
	}
	av, err := r.store.Update(ctx, customersCollection, c.ID, fields)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return entities.Customer{}, nil
		}
		return entities.Customer{}, err
	}
	var it customerItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func (r *CustomerDynamoRepository) Delete(ctx context.Context, id string) error {
	return r.store.Remove(ctx, customersCollection, id)
}

func (r *CustomerDynamoRepository) List(ctx context.Context) ([]entities.Customer, error) {
	avs, err := r.store.List(ctx, customersCollection)
	if err != nil {
		return nil, err
	}
	customers := make([]entities.Customer, 0, len(avs))
	for _, av := range avs {
		var it customerItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		customers = append(customers, fromCustomerItem(it))
	}
	return customers, nil
}

func toCustomerItem(c entities.Customer) customerItem {
	return customerItem{
		ID:           c.ID,
		CustomerName: c.CustomerName,
		MobileNumber: c.MobileNumber,
		Address:      c.Address,
	}
}

func fromCustomerItem(it customerItem) entities.Customer {
	return entities.Customer{
		ID:           it.ID,
		CustomerName: it.CustomerName,
		MobileNumber: it.MobileNumber,
		Address:      it.Address,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
