package request

import "clicknova_admin/internal/domain/entities"

type CareerRequestRequest struct {
	EmployeeName       string `json:"employeeName" binding:"required"`
	MobileNumber       string `json:"mobileNumber" binding:"required,indianmobile"`
	Address            string `json:"address"`
	RequestedFor       string `json:"requestedFor"`
	Experience         string `json:"experience"`
	Rating             int    `json:"rating" binding:"gte=0,lte=5"`
	VisitDetails       string `json:"visitDetails"`
	InterviewDateTime  string `json:"interviewDateTime"`
	InterviewPostponed string `json:"interviewPostponed"`
}

func (r CareerRequestRequest) ToEntity(id string) entities.CareerRequest {
	return entities.CareerRequest{
		ID:                 id,
		EmployeeName:       r.EmployeeName,
		MobileNumber:       r.MobileNumber,
		Address:            r.Address,
		RequestedFor:       r.RequestedFor,
		Experience:         r.Experience,
		Rating:             r.Rating,
		VisitDetails:       r.VisitDetails,
		InterviewDateTime:  r.InterviewDateTime,
		InterviewPostponed: r.InterviewPostponed,
	}
}
