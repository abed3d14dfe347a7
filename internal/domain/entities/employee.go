package entities

import "time"

type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "Active"
	EmployeeStatusInactive EmployeeStatus = "Inactive"
)

// Employee is a staff record.
//
// Domain notes:
//   - EmployeeID is a generated 8-digit numeral distinct from the document id.
//     It is drawn at creation, claimed atomically through the employee-id
//     reservations table, and immutable afterwards.
//   - ProfilePicURL and AadharFileURL reference objects previously uploaded to
//     object storage; the upload always completes before the document write.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (employeeId-index): employeeId
type Employee struct {
	ID                       string         `json:"id"`
	EmployeeID               string         `json:"employeeId"`
	ProfilePicURL            string         `json:"profilePicUrl"`
	EmployeeName             string         `json:"employeeName"`
	MobileNumber             string         `json:"mobileNumber"`
	AlternateMobileNumber    string         `json:"alternateMobileNumber"`
	Email                    string         `json:"email"`
	Address                  string         `json:"address"`
	Role                     string         `json:"role"`
	DateOfBirth              string         `json:"dateOfBirth"`
	Status                   EmployeeStatus `json:"status"`
	EmergencyContactRelation string         `json:"emergencyContactRelation"`
	EmergencyContactName     string         `json:"emergencyContactName"`
	EmergencyContactMobile   string         `json:"emergencyContactMobile"`
	AadharNumber             string         `json:"aadharNumber"`
	AadharFileURL            string         `json:"aadharFileUrl"`
	CreatedAt                time.Time      `json:"createdAt"`
	UpdatedAt                time.Time      `json:"updatedAt"`
}
