package request

import "clicknova_admin/internal/domain/entities"

type EmployeeRequest struct {
	ProfilePicURL            string `json:"profilePicUrl"`
	EmployeeName             string `json:"employeeName" binding:"required"`
	MobileNumber             string `json:"mobileNumber" binding:"required,indianmobile"`
	AlternateMobileNumber    string `json:"alternateMobileNumber" binding:"omitempty,indianmobile"`
	Email                    string `json:"email" binding:"omitempty,email"`
	Address                  string `json:"address"`
	Role                     string `json:"role"`
	DateOfBirth              string `json:"dateOfBirth"`
	Status                   string `json:"status"`
	EmergencyContactRelation string `json:"emergencyContactRelation"`
	EmergencyContactName     string `json:"emergencyContactName"`
	EmergencyContactMobile   string `json:"emergencyContactMobile" binding:"omitempty,indianmobile"`
	AadharNumber             string `json:"aadharNumber" binding:"omitempty,aadhar"`
	AadharFileURL            string `json:"aadharFileUrl"`
}

func (r EmployeeRequest) ToEntity(id string) entities.Employee {
	return entities.Employee{
		ID:                       id,
		ProfilePicURL:            r.ProfilePicURL,
		EmployeeName:             r.EmployeeName,
		MobileNumber:             r.MobileNumber,
		AlternateMobileNumber:    r.AlternateMobileNumber,
		Email:                    r.Email,
		Address:                  r.Address,
		Role:                     r.Role,
		DateOfBirth:              r.DateOfBirth,
		Status:                   entities.EmployeeStatus(r.Status),
		EmergencyContactRelation: r.EmergencyContactRelation,
		EmergencyContactName:     r.EmergencyContactName,
		EmergencyContactMobile:   r.EmergencyContactMobile,
		AadharNumber:             r.AadharNumber,
		AadharFileURL:            r.AadharFileURL,
	}
}

type BusinessRequest struct {
	EmployeeID   string  `json:"employeeId" binding:"required"`
	BusinessName string  `json:"businessName" binding:"required"`
	Amount       float64 `json:"amount" binding:"gte=0"`
}

func (r BusinessRequest) ToEntity(id string) entities.Business {
	return entities.Business{
		ID:           id,
		EmployeeID:   r.EmployeeID,
		BusinessName: r.BusinessName,
		Amount:       r.Amount,
	}
}
