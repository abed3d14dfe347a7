package repository

import (
	"context"
	"errors"

	"clicknova_admin/internal/adapter/persistence/docstore"
	"clicknova_admin/internal/domain/entities"
	"clicknova_admin/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

const (
	employeesCollection = "employees"
	// employeeIds holds one reservation document per claimed 8-digit id; the
	// conditional create on that document is what makes the claim atomic.
	employeeIDsCollection = "employeeIds"
)

type employeeItem struct {
	ID                       string `dynamodbav:"id"`
	EmployeeID               string `dynamodbav:"employeeId"`
	ProfilePicURL            string `dynamodbav:"profilePicUrl"`
	EmployeeName             string `dynamodbav:"employeeName"`
	MobileNumber             string `dynamodbav:"mobileNumber"`
	AlternateMobileNumber    string `dynamodbav:"alternateMobileNumber"`
	Email                    string `dynamodbav:"email"`
	Address                  string `dynamodbav:"address"`
	Role                     string `dynamodbav:"role"`
	DateOfBirth              string `dynamodbav:"dateOfBirth"`
	Status                   string `dynamodbav:"status"`
	EmergencyContactRelation string `dynamodbav:"emergencyContactRelation"`
	EmergencyContactName     string `dynamodbav:"emergencyContactName"`
	EmergencyContactMobile   string `dynamodbav:"emergencyContactMobile"`
	AadharNumber             string `dynamodbav:"aadharNumber"`
	AadharFileURL            string `dynamodbav:"aadharFileUrl"`
	CreatedAt                string `dynamodbav:"createdAt"`
	UpdatedAt                string `dynamodbav:"updatedAt"`
}

type EmployeeDynamoRepository struct {
	store *docstore.Store
}

var _ interfaces.IEmployeeRepository = (*EmployeeDynamoRepository)(nil)

func NewEmployeeDynamoRepository(store *docstore.Store) *EmployeeDynamoRepository {
	return &EmployeeDynamoRepository{store: store}
}

func (r *EmployeeDynamoRepository) Create(ctx context.Context, e entities.Employee) (entities.Employee, error) {
	fields, err := marshalFields(toEmployeeItem(e))
	if err != nil {
		return entities.Employee{}, err
	}
	if err := r.store.Create(ctx, employeesCollection, e.ID, fields); err != nil {
		return entities.Employee{}, err
	}
	return r.GetByID(ctx, e.ID)
}

func (r *EmployeeDynamoRepository) GetByID(ctx context.Context, id string) (entities.Employee, error) {
	av, err := r.store.GetOne(ctx, employeesCollection, id)
	if err != nil || av == nil {
		return entities.Employee{}, err
	}
	var it employeeItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Employee{}, err
	}
	return fromEmployeeItem(it), nil
}

func (r *EmployeeDynamoRepository) Update(ctx context.Context, e entities.Employee) (entities.Employee, error) {
	fields, err := marshalFields(toEmployeeItem(e))
	if err != nil {
		return entities.Employee{}, err
	}
	av, err := r.store.Update(ctx, employeesCollection, e.ID, fields)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return entities.Employee{}, nil
		}
		return entities.Employee{}, err
	}
	var it employeeItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Employee{}, err
	}
	return fromEmployeeItem(it), nil
}

func (r *EmployeeDynamoRepository) Delete(ctx context.Context, id string) error {
	return r.store.Remove(ctx, employeesCollection, id)
}

func (r *EmployeeDynamoRepository) List(ctx context.Context) ([]entities.Employee, error) {
	avs, err := r.store.List(ctx, employeesCollection)
	if err != nil {
		return nil, err
	}
	employees := make([]entities.Employee, 0, len(avs))
	for _, av := range avs {
		var it employeeItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		employees = append(employees, fromEmployeeItem(it))
	}
	return employees, nil
}

func (r *EmployeeDynamoRepository) ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error) {
	avs, err := r.store.QueryEq(ctx, employeesCollection, "employeeId", employeeID)
	if err != nil {
		return false, err
	}
	return len(avs) > 0, nil
}

func (r *EmployeeDynamoRepository) ReserveEmployeeID(ctx context.Context, employeeID string) error {
	err := r.store.Create(ctx, employeeIDsCollection, employeeID, docstore.Item{})
	if errors.Is(err, docstore.ErrAlreadyExists) {
		return interfaces.ErrEmployeeIDTaken
	}
	return err
}

func (r *EmployeeDynamoRepository) ReleaseEmployeeID(ctx context.Context, employeeID string) error {
	return r.store.Remove(ctx, employeeIDsCollection, employeeID)
}

func toEmployeeItem(e entities.Employee) employeeItem {
	return employeeItem{
		ID:                       e.ID,
		EmployeeID:               e.EmployeeID,
		ProfilePicURL:            e.ProfilePicURL,
		EmployeeName:             e.EmployeeName,
		MobileNumber:             e.MobileNumber,
		AlternateMobileNumber:    e.AlternateMobileNumber,
		Email:                    e.Email,
		Address:                  e.Address,
		Role:                     e.Role,
		DateOfBirth:              e.DateOfBirth,
		Status:                   string(e.Status),
		EmergencyContactRelation: e.EmergencyContactRelation,
		EmergencyContactName:     e.EmergencyContactName,
		EmergencyContactMobile:   e.EmergencyContactMobile,
		AadharNumber:             e.AadharNumber,
		AadharFileURL:            e.AadharFileURL,
	}
}

func fromEmployeeItem(it employeeItem) entities.Employee {
	return entities.Employee{
		ID:                       it.ID,
		EmployeeID:               it.EmployeeID,
		ProfilePicURL:            it.ProfilePicURL,
		EmployeeName:             it.EmployeeName,
		MobileNumber:             it.MobileNumber,
		AlternateMobileNumber:    it.AlternateMobileNumber,
		Email:                    it.Email,
		Address:                  it.Address,
		Role:                     it.Role,
		DateOfBirth:              it.DateOfBirth,
		Status:                   entities.EmployeeStatus(it.Status),
		EmergencyContactRelation: it.EmergencyContactRelation,
		EmergencyContactName:     it.EmergencyContactName,
		EmergencyContactMobile:   it.EmergencyContactMobile,
		AadharNumber:             it.AadharNumber,
		AadharFileURL:            it.AadharFileURL,
		CreatedAt:                parseTime(it.CreatedAt),
		UpdatedAt:                parseTime(it.UpdatedAt),
	}
}
