package request

import "clicknova_admin/internal/domain/entities"

// Website submissions are created by the public site, so the admin payloads
// only cover what the inbox views edit.

type CareerSubmissionUpdateRequest struct {
	Name          string `json:"name" binding:"required"`
	Mobile        string `json:"mobile" binding:"required"`
	Email         string `json:"email" binding:"omitempty,email"`
	City          string `json:"city"`
	ApplyingFor   string `json:"applyingFor"`
	Qualification string `json:"qualification"`
	Status        string `json:"status" binding:"required"`
}

func (r CareerSubmissionUpdateRequest) ToEntity(id string) entities.CareerSubmission {
	return entities.CareerSubmission{
		ID:            id,
		Name:          r.Name,
		Mobile:        r.Mobile,
		Email:         r.Email,
		City:          r.City,
		ApplyingFor:   r.ApplyingFor,
		Qualification: r.Qualification,
		Status:        entities.CareerSubmissionStatus(r.Status),
	}
}

type ContactSubmissionUpdateRequest struct {
	Name    string `json:"name" binding:"required"`
	Mobile  string `json:"mobile" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	City    string `json:"city"`
	Service string `json:"service"`
	Message string `json:"message"`
	Status  string `json:"status" binding:"required"`
}

func (r ContactSubmissionUpdateRequest) ToEntity(id string) entities.ContactSubmission {
	return entities.ContactSubmission{
		ID:      id,
		Name:    r.Name,
		Mobile:  r.Mobile,
		Email:   r.Email,
		City:    r.City,
		Service: r.Service,
		Message: r.Message,
		Status:  entities.ContactSubmissionStatus(r.Status),
	}
}

type FreeQuoteSubmissionUpdateRequest struct {
	Name    string `json:"name" binding:"required"`
	Mobile  string `json:"mobile" binding:"required"`
	City    string `json:"city"`
	Service string `json:"service"`
	Status  string `json:"status" binding:"required"`
}

func (r FreeQuoteSubmissionUpdateRequest) ToEntity(id string) entities.FreeQuoteSubmission {
	return entities.FreeQuoteSubmission{
		ID:      id,
		Name:    r.Name,
		Mobile:  r.Mobile,
		City:    r.City,
		Service: r.Service,
		Status:  entities.FreeQuoteSubmissionStatus(r.Status),
	}
}
