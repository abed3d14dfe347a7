package request

import "clicknova_admin/internal/domain/entities"

type QuotationItemRequest struct {
	ID          string  `json:"id"`
	Description string  `json:"description" binding:"required"`
	Details     string  `json:"details"`
	Unit        string  `json:"unit"`
	Price       float64 `json:"price" binding:"gte=0"`
	Discount    float64 `json:"discount" binding:"gte=0"`
}

type QuotationTextItemRequest struct {
	ID   string `json:"id"`
	Text string `json:"text" binding:"required"`
}

// QuotationRequest carries the composer's full state. Item amounts and the
// grand total are intentionally absent; the server always recomputes them.
type QuotationRequest struct {
	QuotationDate      string                     `json:"quotationDate"`
	CustomerName       string                     `json:"customerName" binding:"required"`
	CustomerMobile     string                     `json:"customerMobile" binding:"omitempty,indianmobile"`
	CustomerAddress    string                     `json:"customerAddress"`
	Status             string                     `json:"status"`
	Items              []QuotationItemRequest     `json:"items" binding:"required,min=1,dive"`
	TermsAndConditions []QuotationTextItemRequest `json:"termsAndConditions" binding:"dive"`
	Notes              []QuotationTextItemRequest `json:"notes" binding:"dive"`
}

func (r QuotationRequest) ToEntity(id string) entities.Quotation {
	q := entities.Quotation{
		ID:              id,
		QuotationDate:   r.QuotationDate,
		CustomerName:    r.CustomerName,
		CustomerMobile:  r.CustomerMobile,
		CustomerAddress: r.CustomerAddress,
		Status:          entities.QuotationStatus(r.Status),
	}
	for _, item := range r.Items {
		q.Items = append(q.Items, entities.QuotationItem{
			ID:          item.ID,
			Description: item.Description,
			Details:     item.Details,
			Unit:        item.Unit,
			Price:       item.Price,
			Discount:    item.Discount,
		})
	}
	for _, term := range r.TermsAndConditions {
		q.TermsAndConditions = append(q.TermsAndConditions, entities.QuotationTerm(term))
	}
	for _, note := range r.Notes {
		q.Notes = append(q.Notes, entities.QuotationNote(note))
	}
	return q
}
