package repository

import (
	"context"
	"errors"

	"clicknova_admin/internal/adapter/persistence/docstore"
	"clicknova_admin/internal/domain/entities"
	"clicknova_admin/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

const quotationsCollection = "quotations"

type quotationLineItem struct {
	ID          string  `dynamodbav:"id"`
	Description string  `dynamodbav:"description"`
	Details     string  `dynamodbav:"details"`
	Unit        string  `dynamodbav:"unit"`
	Price       float64 `dynamodbav:"price"`
	Discount    float64 `dynamodbav:"discount"`
	Amount      float64 `dynamodbav:"amount"`
}

type quotationTextItem struct {
	ID   string `dynamodbav:"id"`
	Text string `dynamodbav:"text"`
}

type quotationItem struct {
	ID                 string              `dynamodbav:"id"`
	QuotationID        string              `dynamodbav:"quotationId"`
	QuotationDate      string              `dynamodbav:"quotationDate"`
	CustomerName       string              `dynamodbav:"customerName"`
	CustomerMobile     string              `dynamodbav:"customerMobile"`
	CustomerAddress    string              `dynamodbav:"customerAddress"`
	Status             string              `dynamodbav:"status"`
	Items              []quotationLineItem `dynamodbav:"items"`
	TermsAndConditions []quotationTextItem `dynamodbav:"termsAndConditions"`
	Notes              []quotationTextItem `dynamodbav:"notes"`
	GrandTotal         float64             `dynamodbav:"grandTotal"`
	CreatedAt          string              `dynamodbav:"createdAt"`
	UpdatedAt          string              `dynamodbav:"updatedAt"`
}

// QuotationDynamoRepository persists Quotation documents with their nested
// item/term/note lists as DynamoDB list attributes.
type QuotationDynamoRepository struct {
	store *docstore.Store
}

var _ interfaces.IQuotationRepository = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(store *docstore.Store) *QuotationDynamoRepository {
	return &QuotationDynamoRepository{store: store}
}

func (r *QuotationDynamoRepository) Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	fields, err := marshalFields(toQuotationItem(q))
	if err != nil {
		return entities.Quotation{}, err
	}
	if err := r.store.Create(ctx, quotationsCollection, q.ID, fields); err != nil {
		return entities.Quotation{}, err
	}
	return r.GetByID(ctx, q.ID)
}

func (r *QuotationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	av, err := r.store.GetOne(ctx, quotationsCollection, id)
	if err != nil || av == nil {
		return entities.Quotation{}, err
	}
	var it quotationItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

func (r *QuotationDynamoRepository) Update(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	fields, err := marshalFields(toQuotationItem(q))
	if err != nil {
		return entities.Quotation{}, err
	}
	av, err := r.store.Update(ctx, quotationsCollection, q.ID, fields)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return entities.Quotation{}, nil
		}
		return entities.Quotation{}, err
	}
	var it quotationItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

func (r *QuotationDynamoRepository) Delete(ctx context.Context, id string) error {
	return r.store.Remove(ctx, quotationsCollection, id)
}

func (r *QuotationDynamoRepository) List(ctx context.Context) ([]entities.Quotation, error) {
	avs, err := r.store.List(ctx, quotationsCollection)
	if err != nil {
		return nil, err
	}
	quotations := make([]entities.Quotation, 0, len(avs))
	for _, av := range avs {
		var it quotationItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		quotations = append(quotations, fromQuotationItem(it))
	}
	return quotations, nil
}

func toQuotationItem(q entities.Quotation) quotationItem {
	items := make([]quotationLineItem, 0, len(q.Items))
	for _, i := range q.Items {
		items = append(items, quotationLineItem(i))
	}
	terms := make([]quotationTextItem, 0, len(q.TermsAndConditions))
	for _, t := range q.TermsAndConditions {
		terms = append(terms, quotationTextItem(t))
	}
	notes := make([]quotationTextItem, 0, len(q.Notes))
	for _, n := range q.Notes {
		notes = append(notes, quotationTextItem(n))
	}
	return quotationItem{
		ID:                 q.ID,
		QuotationID:        q.QuotationID,
		QuotationDate:      q.QuotationDate,
		CustomerName:       q.CustomerName,
		CustomerMobile:     q.CustomerMobile,
		CustomerAddress:    q.CustomerAddress,
		Status:             string(q.Status),
		Items:              items,
		TermsAndConditions: terms,
		Notes:              notes,
		GrandTotal:         q.GrandTotal,
	}
}

func fromQuotationItem(it quotationItem) entities.Quotation {
	items := make([]entities.QuotationItem, 0, len(it.Items))
	for _, i := range it.Items {
		items = append(items, entities.QuotationItem(i))
	}
	terms := make([]entities.QuotationTerm, 0, len(it.TermsAndConditions))
	for _, t := range it.TermsAndConditions {
		terms = append(terms, entities.QuotationTerm(t))
	}
	notes := make([]entities.QuotationNote, 0, len(it.Notes))
	for _, n := range it.Notes {
		notes = append(notes, entities.QuotationNote(n))
	}
	return entities.Quotation{
		ID:                 it.ID,
		QuotationID:        it.QuotationID,
		QuotationDate:      it.QuotationDate,
		CustomerName:       it.CustomerName,
		CustomerMobile:     it.CustomerMobile,
		CustomerAddress:    it.CustomerAddress,
		Status:             entities.QuotationStatus(it.Status),
		Items:              items,
		TermsAndConditions: terms,
		Notes:              notes,
		GrandTotal:         it.GrandTotal,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}
