package response

import (
	"time"

	"clicknova_admin/internal/domain/entities"
	"clicknova_admin/internal/usecase"
)

// EmployeeDetailResponse is the employee page aggregate: the record plus
// every business entry credited to it.
type EmployeeDetailResponse struct {
	Employee   entities.Employee   `json:"employee"`
	Businesses []entities.Business `json:"businesses"`
}

// EmployeeTargetResponse is the target view aggregate: the business entries
// credited to one employee inside the selected window and their sum.
type EmployeeTargetResponse struct {
	Employee    entities.Employee   `json:"employee"`
	Range       string              `json:"range"`
	From        *time.Time          `json:"from,omitempty"`
	To          *time.Time          `json:"to,omitempty"`
	Businesses  []entities.Business `json:"businesses"`
	TotalAmount float64             `json:"totalAmount"`
}

func FromEmployeeTarget(t usecase.EmployeeTarget) EmployeeTargetResponse {
	resp := EmployeeTargetResponse{
		Employee:    t.Employee,
		Range:       string(t.Range),
		Businesses:  t.Businesses,
		TotalAmount: t.TotalAmount,
	}
	if resp.Businesses == nil {
		resp.Businesses = []entities.Business{}
	}
	if !t.From.IsZero() {
		from := t.From
		resp.From = &from
	}
	if !t.To.IsZero() {
		to := t.To
		resp.To = &to
	}
	return resp
}
