package request

import "clicknova_admin/internal/domain/entities"

type LeadRequest struct {
	Status       string `json:"status"`
	CustomerName string `json:"customerName" binding:"required"`
	MobileNumber string `json:"mobileNumber" binding:"required,indianmobile"`
	Address      string `json:"address"`
	Requirement  string `json:"requirement"`
	FollowupDate string `json:"followupDate"`
	FollowupTime string `json:"followupTime"`
	Comments     string `json:"comments"`
}

func (r LeadRequest) ToEntity(id string) entities.Lead {
	return entities.Lead{
		ID:           id,
		Status:       entities.LeadStatus(r.Status),
		CustomerName: r.CustomerName,
		MobileNumber: r.MobileNumber,
		Address:      r.Address,
		Requirement:  r.Requirement,
		FollowupDate: r.FollowupDate,
		FollowupTime: r.FollowupTime,
		Comments:     r.Comments,
	}
}
