package repository

import (
	"context"
	"errors"

	"clicknova_admin/internal/adapter/persistence/docstore"
	"clicknova_admin/internal/domain/entities"
	"clicknova_admin/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

const servicesCollection = "services"

type catalogServiceItem struct {
	ID          string `dynamodbav:"id"`
	ServiceName string `dynamodbav:"serviceName"`
	CreatedAt   string `dynamodbav:"createdAt"`
	UpdatedAt   string `dynamodbav:"updatedAt"`
}

type CatalogServiceDynamoRepository struct {
	store *docstore.Store
}

var _ interfaces.ICatalogServiceRepository = (*CatalogServiceDynamoRepository)(nil)

func NewCatalogServiceDynamoRepository(store *docstore.Store) *CatalogServiceDynamoRepository {
	return &CatalogServiceDynamoRepository{store: store}
}

func (r *CatalogServiceDynamoRepository) Create(ctx context.Context, s entities.CatalogService) (entities.CatalogService, error) {
	fields, err := marshalFields(toCatalogServiceItem(s))
	if err != nil {
		return entities.CatalogService{}, err
	}
	if err := r.store.Create(ctx, servicesCollection, s.ID, fields); err != nil {
		return entities.CatalogService{}, err
	}
	return r.GetByID(ctx, s.ID)
}

func (r *CatalogServiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.CatalogService, error) {
	av, err := r.store.GetOne(ctx, servicesCollection, id)
	if err != nil || av == nil {
		return entities.CatalogService{}, err
	}
	var it catalogServiceItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.CatalogService{}, err
	}
	return fromCatalogServiceItem(it), nil
}

func (r *CatalogServiceDynamoRepository) Update(ctx context.Context, s entities.CatalogService) (entities.CatalogService, error) {
	fields, err := marshalFields(toCatalogServiceItem(s))
	if err != nil {
		return entities.CatalogService{}, err
	}
	av, err := r.store.Update(ctx, servicesCollection, s.ID, fields)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return entities.CatalogService{}, nil
		}
		return entities.CatalogService{}, err
	}
	var it catalogServiceItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.CatalogService{}, err
	}
	return fromCatalogServiceItem(it), nil
}

func (r *CatalogServiceDynamoRepository) Delete(ctx context.Context, id string) error {
	return r.store.Remove(ctx, servicesCollection, id)
}

func (r *CatalogServiceDynamoRepository) List(ctx context.Context) ([]entities.CatalogService, error) {
	avs, err := r.store.List(ctx, servicesCollection)
	if err != nil {
		return nil, err
	}
	services := make([]entities.CatalogService, 0, len(avs))
	for _, av := range avs {
		var it catalogServiceItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		services = append(services, fromCatalogServiceItem(it))
	}
	return services, nil
}

func toCatalogServiceItem(s entities.CatalogService) catalogServiceItem {
	return catalogServiceItem{ID: s.ID, ServiceName: s.ServiceName}
}

func fromCatalogServiceItem(it catalogServiceItem) entities.CatalogService {
	return entities.CatalogService{
		ID:          it.ID,
		ServiceName: it.ServiceName,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
