package entities

import "time"

// CareerRequestRoles are the positions a walk-in candidate can be considered
// for. The list doubles as the role filter options.
var CareerRequestRoles = []string{
	"Web Developer",
	"Mobile App Developer",
	"UI/UX Designer",
	"Digital Marketing Executive",
	"SEO Specialist",
	"Content Writer",
	"Business Analyst",
	"Project Manager",
	"Quality Assurance Engineer",
	"DevOps Engineer",
	"Data Analyst",
	"Graphic Designer",
}

// CareerRequest is an internally recorded candidate (walk-in or referral),
// distinct from the website career submissions.
//
// Storage model (DynamoDB):
//   - PK: id
type CareerRequest struct {
	ID                 string    `json:"id"`
	EmployeeName       string    `json:"employeeName"`
	MobileNumber       string    `json:"mobileNumber"`
	Address            string    `json:"address"`
	RequestedFor       string    `json:"requestedFor"`
	Experience         string    `json:"experience"`
	Rating             int       `json:"rating"`
	VisitDetails       string    `json:"visitDetails"`
	InterviewDateTime  string    `json:"interviewDateTime"`
	InterviewPostponed string    `json:"interviewPostponed"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}
