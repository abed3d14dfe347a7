package repository

import (
	"context"
	"errors"

	"clicknova_admin/internal/adapter/persistence/docstore"
	"clicknova_admin/internal/domain/entities"
	"clicknova_admin/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

const customerPaymentsCollection = "customerPayments"

type customerPaymentItem struct {
	ID               string  `dynamodbav:"id"`
	CustomerID       string  `dynamodbav:"customerId"`
	ServiceID        string  `dynamodbav:"serviceId"`
	Amount           float64 `dynamodbav:"amount"`
	PaymentMethod    string  `dynamodbav:"paymentMethod"`
	InstalmentNumber int     `dynamodbav:"instalmentNumber"`
	Notes            string  `dynamodbav:"notes"`
	CreatedAt        string  `dynamodbav:"createdAt"`
	UpdatedAt        string  `dynamodbav:"updatedAt"`
}

type CustomerPaymentDynamoRepository struct {
	store *docstore.Store
}

var _ interfaces.ICustomerPaymentRepository = (*CustomerPaymentDynamoRepository)(nil)

func NewCustomerPaymentDynamoRepository(store *docstore.Store) *CustomerPaymentDynamoRepository {
	return &CustomerPaymentDynamoRepository{store: store}
}

func (r *CustomerPaymentDynamoRepository) Create(ctx context.Context, p entities.CustomerPayment) (entities.CustomerPayment, error) {
	fields, err := marshalFields(toCustomerPaymentItem(p))
	if err != nil {
		return entities.CustomerPayment{}, err
	}
	if err := r.store.Create(ctx, customerPaymentsCollection, p.ID, fields); err != nil {
		return entities.CustomerPayment{}, err
	}
	return r.GetByID(ctx, p.ID)
}

func (r *CustomerPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.CustomerPayment, error) {
	av, err := r.store.GetOne(ctx, customerPaymentsCollection, id)
	if err != nil || av == nil {
		return entities.CustomerPayment{}, err
	}
	var it customerPaymentItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.CustomerPayment{}, err
	}
	return fromCustomerPaymentItem(it), nil
}

func (r *CustomerPaymentDynamoRepository) Update(ctx context.Context, p entities.CustomerPayment) (entities.CustomerPayment, error) {
	fields, err := marshalFields(toCustomerPaymentItem(p))
	if err != nil {
		return entities.CustomerPayment{}, err
	}
	av, err := r.store.Update(ctx, customerPaymentsCollection, p.ID, fields)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return entities.CustomerPayment{}, nil
		}
		return entities.CustomerPayment{}, err
	}
	var it customerPaymentItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.CustomerPayment{}, err
	}
	return fromCustomerPaymentItem(it), nil
}

func (r *CustomerPaymentDynamoRepository) Delete(ctx context.Context, id string) error {
	return r.store.Remove(ctx, customerPaymentsCollection, id)
}

func (r *CustomerPaymentDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.CustomerPayment, error) {
	avs, err := r.store.QueryEq(ctx, customerPaymentsCollection, "customerId", customerID)
	if err != nil {
		return nil, err
	}
	return unmarshalCustomerPayments(avs)
}

func (r *CustomerPaymentDynamoRepository) ListByServiceID(ctx context.Context, serviceID string) ([]entities.CustomerPayment, error) {
	avs, err := r.store.QueryEq(ctx, customerPaymentsCollection, "serviceId", serviceID)
	if err != nil {
		return nil, err
	}
	return unmarshalCustomerPayments(avs)
}

func unmarshalCustomerPayments(avs []docstore.Item) ([]entities.CustomerPayment, error) {
	payments := make([]entities.CustomerPayment, 0, len(avs))
	for _, av := range avs {
		var it customerPaymentItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		payments = append(payments, fromCustomerPaymentItem(it))
	}
	return payments, nil
}

func toCustomerPaymentItem(p entities.CustomerPayment) customerPaymentItem {
	return customerPaymentItem{
		ID:               p.ID,
		CustomerID:       p.CustomerID,
		ServiceID:        p.ServiceID,
		Amount:           p.Amount,
		PaymentMethod:    string(p.PaymentMethod),
		InstalmentNumber: p.InstalmentNumber,
		Notes:            p.Notes,
	}
}

func fromCustomerPaymentItem(it customerPaymentItem) entities.CustomerPayment {
	return entities.CustomerPayment{
		ID:               it.ID,
		CustomerID:       it.CustomerID,
		ServiceID:        it.ServiceID,
		Amount:           it.Amount,
		PaymentMethod:    entities.PaymentMethod(it.PaymentMethod),
		InstalmentNumber: it.InstalmentNumber,
		Notes:            it.Notes,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
