package repository

import (
	"context"
	"errors"

	"clicknova_admin/internal/adapter/persistence/docstore"
	"clicknova_admin/internal/domain/entities"
	"clicknova_admin/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

const customerServicesCollection = "customerServices"

type customerServiceItem struct {
	ID          string  `dynamodbav:"id"`
	CustomerID  string  `dynamodbav:"customerId"`
	ServiceName string  `dynamodbav:"serviceName"`
	TotalAmount float64 `dynamodbav:"totalAmount"`
	CreatedAt   string  `dynamodbav:"createdAt"`
	UpdatedAt   string  `dynamodbav:"updatedAt"`
}

type CustomerServiceDynamoRepository struct {
	store *docstore.Store
}

var _ interfaces.ICustomerServiceRepository = (*CustomerServiceDynamoRepository)(nil)

func NewCustomerServiceDynamoRepository(store *docstore.Store) *CustomerServiceDynamoRepository {
	return &CustomerServiceDynamoRepository{store: store}
}

func (r *CustomerServiceDynamoRepository) Create(ctx context.Context, s entities.CustomerService) (entities.CustomerService, error) {
	fields, err := marshalFields(toCustomerServiceItem(s))
	if err != nil {
		return entities.CustomerService{}, err
	}
	if err := r.store.Create(ctx, customerServicesCollection, s.ID, fields); err != nil {
		return entities.CustomerService{}, err
	}
	return r.GetByID(ctx, s.ID)
}

func (r *CustomerServiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.CustomerService, error) {
	av, err := r.store.GetOne(ctx, customerServicesCollection, id)
	if err != nil || av == nil {
		return entities.CustomerService{}, err
	}
	var it customerServiceItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.CustomerService{}, err
	}
	return fromCustomerServiceItem(it), nil
}

func (r *CustomerServiceDynamoRepository) Update(ctx context.Context, s entities.CustomerService) (entities.CustomerService, error) {
	fields, err := marshalFields(toCustomerServiceItem(s))
	if err != nil {
		return entities.CustomerService{}, err
	}
	av, err := r.store.Update(ctx, customerServicesCollection, s.ID, fields)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return entities.CustomerService{}, nil
		}
		return entities.CustomerService{}, err
	}
	var it customerServiceItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.CustomerService{}, err
	}
	return fromCustomerServiceItem(it), nil
}

func (r *CustomerServiceDynamoRepository) Delete(ctx context.Context, id string) error {
	return r.store.Remove(ctx, customerServicesCollection, id)
}

func (r *CustomerServiceDynamoRepository) List(ctx context.Context) ([]entities.CustomerService, error) {
	avs, err := r.store.List(ctx, customerServicesCollection)
	if err != nil {
		return nil, err
	}
	return unmarshalCustomerServices(avs)
}

func (r *CustomerServiceDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.CustomerService, error) {
	avs, err := r.store.QueryEq(ctx, customerServicesCollection, "customerId", customerID)
	if err != nil {
		return nil, err
	}
	return unmarshalCustomerServices(avs)
}

func unmarshalCustomerServices(avs []docstore.Item) ([]entities.CustomerService, error) {
	services := make([]entities.CustomerService, 0, len(avs))
	for _, av := range avs {
		var it customerServiceItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		services = append(services, fromCustomerServiceItem(it))
	}
	return services, nil
}

func toCustomerServiceItem(s entities.CustomerService) customerServiceItem {
	return customerServiceItem{
		ID:          s.ID,
		CustomerID:  s.CustomerID,
		ServiceName: s.ServiceName,
		TotalAmount: s.TotalAmount,
	}
}

func fromCustomerServiceItem(it customerServiceItem) entities.CustomerService {
	return entities.CustomerService{
		ID:          it.ID,
		CustomerID:  it.CustomerID,
		ServiceName: it.ServiceName,
		TotalAmount: it.TotalAmount,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
