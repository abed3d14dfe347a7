package repository

import (
	"context"
	"errors"

	"clicknova_admin/internal/adapter/persistence/docstore"
	"clicknova_admin/internal/domain/entities"
	"clicknova_admin/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

const careerRequestsCollection = "careerRequests"

type careerRequestItem struct {
	ID                 string `dynamodbav:"id"`
	EmployeeName       string `dynamodbav:"employeeName"`
	MobileNumber       string `dynamodbav:"mobileNumber"`
	Address            string `dynamodbav:"address"`
	RequestedFor       string `dynamodbav:"requestedFor"`
	Experience         string `dynamodbav:"experience"`
	Rating             int    `dynamodbav:"rating"`
	VisitDetails       string `dynamodbav:"visitDetails"`
	InterviewDateTime  string `dynamodbav:"interviewDateTime"`
	InterviewPostponed string `dynamodbav:"interviewPostponed"`
	CreatedAt          string `dynamodbav:"createdAt"`
	UpdatedAt          string `dynamodbav:"updatedAt"`
}

type CareerRequestDynamoRepository struct {
	store *docstore.Store
}

var _ interfaces.ICareerRequestRepository = (*CareerRequestDynamoRepository)(nil)

func NewCareerRequestDynamoRepository(store *docstore.Store) *CareerRequestDynamoRepository {
	return &CareerRequestDynamoRepository{store: store}
}

func (r *CareerRequestDynamoRepository) Create(ctx context.Context, c entities.CareerRequest) (entities.CareerRequest, error) {
	fields, err := marshalFields(toCareerRequestItem(c))
	if err != nil {
		return entities.CareerRequest{}, err
	}
	if err := r.store.Create(ctx, careerRequestsCollection, c.ID, fields); err != nil {
		return entities.CareerRequest{}, err
	}
	return r.GetByID(ctx, c.ID)
}

func (r *CareerRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.CareerRequest, error) {
	av, err := r.store.GetOne(ctx, careerRequestsCollection, id)
	if err != nil || av == nil {
		return entities.CareerRequest{}, err
	}
	var it careerRequestItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.CareerRequest{}, err
	}
	return fromCareerRequestItem(it), nil
}

func (r *CareerRequestDynamoRepository) Update(ctx context.Context, c entities.CareerRequest) (entities.CareerRequest, error) {
	fields, err := marshalFields(toCareerRequestItem(c))
	if err != nil {
		return entities.CareerRequest{}, err
	}
	av, err := r.store.Update(ctx, careerRequestsCollection, c.ID, fields)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return entities.CareerRequest{}, nil
		}
		return entities.CareerRequest{}, err
	}
	var it careerRequestItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.CareerRequest{}, err
	}
	return fromCareerRequestItem(it), nil
}

func (r *CareerRequestDynamoRepository) Delete(ctx context.Context, id string) error {
	return r.store.Remove(ctx, careerRequestsCollection, id)
}

func (r *CareerRequestDynamoRepository) List(ctx context.Context) ([]entities.CareerRequest, error) {
	avs, err := r.store.List(ctx, careerRequestsCollection)
	if err != nil {
		return nil, err
	}
	requests := make([]entities.CareerRequest, 0, len(avs))
	for _, av := range avs {
		var it careerRequestItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		requests = append(requests, fromCareerRequestItem(it))
	}
	return requests, nil
}

func toCareerRequestItem(c entities.CareerRequest) careerRequestItem {
	return careerRequestItem{
		ID:                 c.ID,
		EmployeeName:       c.EmployeeName,
		MobileNumber:       c.MobileNumber,
		Address:            c.Address,
		RequestedFor:       c.RequestedFor,
		Experience:         c.Experience,
		Rating:             c.Rating,
		VisitDetails:       c.VisitDetails,
		InterviewDateTime:  c.InterviewDateTime,
		InterviewPostponed: c.InterviewPostponed,
	}
}

func fromCareerRequestItem(it careerRequestItem) entities.CareerRequest {
	return entities.CareerRequest{
		ID:                 it.ID,
		EmployeeName:       it.EmployeeName,
		MobileNumber:       it.MobileNumber,
		Address:            it.Address,
		RequestedFor:       it.RequestedFor,
		Experience:         it.Experience,
		Rating:             it.Rating,
		VisitDetails:       it.VisitDetails,
		InterviewDateTime:  it.InterviewDateTime,
		InterviewPostponed: it.InterviewPostponed,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}
