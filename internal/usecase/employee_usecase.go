package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"clicknova_admin/internal/domain/entities"
	"clicknova_admin/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrInvalidEmployeeID     = errors.New("invalid employee id")
	ErrInvalidEmployeeInput  = errors.New("employee name and mobile number are required")
	ErrInvalidEmployeeStatus = errors.New("invalid employee status")
	ErrEmployeeIDExhausted   = errors.New("could not reserve a free employee id")

	ErrBusinessNotFound     = errors.New("business entry not found")
	ErrInvalidBusinessID    = errors.New("invalid business id")
	ErrInvalidBusinessInput = errors.New("business name is required")

	ErrInvalidTargetRange = errors.New("invalid target range")
)

var employeeStatuses = map[entities.EmployeeStatus]struct{}{
	entities.EmployeeStatusActive:   {},
	entities.EmployeeStatusInactive: {},
}

// maxEmployeeIDDraws bounds the redraw loop so a near-full id space degrades
// into an error instead of spinning.
const maxEmployeeIDDraws = 64

// TargetRange selects the window the employee target view sums over.
type TargetRange string

const (
	TargetRangeAll       TargetRange = "all"
	TargetRangeThisMonth TargetRange = "thisMonth"
	TargetRangeLastMonth TargetRange = "lastMonth"
	TargetRangeThisYear  TargetRange = "thisYear"
	TargetRangeLastYear  TargetRange = "lastYear"
	TargetRangeCustom    TargetRange = "custom"
)

// EmployeeTarget is the aggregation the target view renders: the businesses
// credited to one employee inside a window, with their sum.
type EmployeeTarget struct {
	Employee    entities.Employee
	Range       TargetRange
	From        time.Time
	To          time.Time
	Businesses  []entities.Business
	TotalAmount float64
}

type IEmployeeUseCase interface {
	Create(ctx context.Context, e entities.Employee) (entities.Employee, error)
	GetByID(ctx context.Context, id string) (entities.Employee, error)
	Update(ctx context.Context, e entities.Employee) (entities.Employee, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entities.Employee, error)

	CreateBusiness(ctx context.Context, b entities.Business) (entities.Business, error)
	UpdateBusiness(ctx context.Context, b entities.Business) (entities.Business, error)
	DeleteBusiness(ctx context.Context, id string) error
	ListBusinesses(ctx context.Context, employeeID string) ([]entities.Business, error)

	Target(ctx context.Context, employeeID string, r TargetRange, from, to time.Time) (EmployeeTarget, error)
}

type EmployeeUseCase struct {
	employees  interfaces.IEmployeeRepository
	businesses interfaces.IBusinessRepository
	now        func() time.Time
}

var _ IEmployeeUseCase = (*EmployeeUseCase)(nil)

func NewEmployeeUseCase(employees interfaces.IEmployeeRepository, businesses interfaces.IBusinessRepository) *EmployeeUseCase {
	return &EmployeeUseCase{employees: employees, businesses: businesses, now: func() time.Time { return time.Now().UTC() }}
}

func (u *EmployeeUseCase) Create(ctx context.Context, e entities.Employee) (entities.Employee, error) {
	e.EmployeeName = strings.TrimSpace(e.EmployeeName)
	e.MobileNumber = strings.TrimSpace(e.MobileNumber)
	if e.EmployeeName == "" || e.MobileNumber == "" {
		return entities.Employee{}, ErrInvalidEmployeeInput
	}
	if e.Status == "" {
		e.Status = entities.EmployeeStatusActive
	}
	if _, ok := employeeStatuses[e.Status]; !ok {
		return entities.Employee{}, ErrInvalidEmployeeStatus
	}

	employeeID, err := u.reserveEmployeeID(ctx)
	if err != nil {
		return entities.Employee{}, err
	}

	now := u.now()
	e.ID = uuid.NewString()
	e.EmployeeID = employeeID
	e.CreatedAt = now
	e.UpdatedAt = now

	created, err := u.employees.Create(ctx, e)
	if err != nil {
		// Free the reservation so the drawn id is not burned.
		_ = u.employees.ReleaseEmployeeID(ctx, employeeID)
		return entities.Employee{}, err
	}
	return created, nil
}

// reserveEmployeeID draws random 8-digit candidates until one is claimed.
// The existence check keeps the expected reservation attempts near one; the
// conditional reservation still closes the check/claim race.
func (u *EmployeeUseCase) reserveEmployeeID(ctx context.Context) (string, error) {
	for i := 0; i < maxEmployeeIDDraws; i++ {
		candidate := fmt.Sprintf("%d", 10000000+rand.Intn(90000000))

		taken, err := u.employees.ExistsByEmployeeID(ctx, candidate)
		if err != nil {
			return "", err
		}
		if taken {
			continue
		}

		err = u.employees.ReserveEmployeeID(ctx, candidate)
		if err == nil {
			return candidate, nil
		}
		if !errors.Is(err, interfaces.ErrEmployeeIDTaken) {
			return "", err
		}
	}
	return "", ErrEmployeeIDExhausted
}

func (u *EmployeeUseCase) GetByID(ctx context.Context, id string) (entities.Employee, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Employee{}, ErrInvalidEmployeeID
	}

	e, err := u.employees.GetByID(ctx, id)
	if err != nil {
		return entities.Employee{}, err
	}
	if e.ID == "" {
		return entities.Employee{}, ErrEmployeeNotFound
	}
	return e, nil
}

func (u *EmployeeUseCase) Update(ctx context.Context, e entities.Employee) (entities.Employee, error) {
	e.ID = strings.TrimSpace(e.ID)
	if e.ID == "" {
		return entities.Employee{}, ErrInvalidEmployeeID
	}
	e.EmployeeName = strings.TrimSpace(e.EmployeeName)
	e.MobileNumber = strings.TrimSpace(e.MobileNumber)
	if e.EmployeeName == "" || e.MobileNumber == "" {
		return entities.Employee{}, ErrInvalidEmployeeInput
	}
	if _, ok := employeeStatuses[e.Status]; !ok {
		return entities.Employee{}, ErrInvalidEmployeeStatus
	}

	existing, err := u.GetByID(ctx, e.ID)
	if err != nil {
		return entities.Employee{}, err
	}
	// The generated id never changes after creation.
	e.EmployeeID = existing.EmployeeID

	updated, err := u.employees.Update(ctx, e)
	if err != nil {
		return entities.Employee{}, err
	}
	if updated.ID == "" {
		return entities.Employee{}, ErrEmployeeNotFound
	}
	return updated, nil
}

// Delete removes the employee, its business entries and its employee-id
// reservation.
func (u *EmployeeUseCase) Delete(ctx context.Context, id string) error {
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}

	businesses, err := u.businesses.ListByEmployeeID(ctx, e.ID)
	if err != nil {
		return err
	}
	for _, b := range businesses {
		if err := u.businesses.Delete(ctx, b.ID); err != nil {
			return err
		}
	}

	if err := u.employees.Delete(ctx, e.ID); err != nil {
		return err
	}
	return u.employees.ReleaseEmployeeID(ctx, e.EmployeeID)
}

func (u *EmployeeUseCase) List(ctx context.Context) ([]entities.Employee, error) {
	return u.employees.List(ctx)
}

func (u *EmployeeUseCase) CreateBusiness(ctx context.Context, b entities.Business) (entities.Business, error) {
	b.BusinessName = strings.TrimSpace(b.BusinessName)
	if b.BusinessName == "" {
		return entities.Business{}, ErrInvalidBusinessInput
	}
	e, err := u.GetByID(ctx, b.EmployeeID)
	if err != nil {
		return entities.Business{}, err
	}

	now := u.now()
	b.EmployeeID = e.ID
	b.ID = uuid.NewString()
	b.CreatedAt = now
	b.UpdatedAt = now
	return u.businesses.Create(ctx, b)
}

func (u *EmployeeUseCase) UpdateBusiness(ctx context.Context, b entities.Business) (entities.Business, error) {
	b.ID = strings.TrimSpace(b.ID)
	if b.ID == "" {
		return entities.Business{}, ErrInvalidBusinessID
	}
	b.BusinessName = strings.TrimSpace(b.BusinessName)
	if b.BusinessName == "" {
		return entities.Business{}, ErrInvalidBusinessInput
	}

	updated, err := u.businesses.Update(ctx, b)
	if err != nil {
		return entities.Business{}, err
	}
	if updated.ID == "" {
		return entities.Business{}, ErrBusinessNotFound
	}
	return updated, nil
}

func (u *EmployeeUseCase) DeleteBusiness(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidBusinessID
	}
	b, err := u.businesses.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b.ID == "" {
		return ErrBusinessNotFound
	}
	return u.businesses.Delete(ctx, id)
}

func (u *EmployeeUseCase) ListBusinesses(ctx context.Context, employeeID string) ([]entities.Business, error) {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return nil, ErrInvalidEmployeeID
	}
	return u.businesses.ListByEmployeeID(ctx, employeeID)
}

func (u *EmployeeUseCase) Target(ctx context.Context, employeeID string, r TargetRange, from, to time.Time) (EmployeeTarget, error) {
	e, err := u.GetByID(ctx, employeeID)
	if err != nil {
		return EmployeeTarget{}, err
	}

	from, to, err = u.resolveRange(r, from, to)
	if err != nil {
		return EmployeeTarget{}, err
	}

	all, err := u.businesses.ListByEmployeeID(ctx, e.ID)
	if err != nil {
		return EmployeeTarget{}, err
	}

	target := EmployeeTarget{Employee: e, Range: r, From: from, To: to, Businesses: []entities.Business{}}
	for _, b := range all {
		if r != TargetRangeAll && (b.CreatedAt.Before(from) || !b.CreatedAt.Before(to)) {
			continue
		}
		target.Businesses = append(target.Businesses, b)
		target.TotalAmount += b.Amount
	}
	return target, nil
}

// resolveRange maps a named range onto a half-open [from, to) window in UTC.
func (u *EmployeeUseCase) resolveRange(r TargetRange, from, to time.Time) (time.Time, time.Time, error) {
	now := u.now()
	switch r {
	case TargetRangeAll:
		return time.Time{}, time.Time{}, nil
	case TargetRangeThisMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, 0), nil
	case TargetRangeLastMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
		return start, start.AddDate(0, 1, 0), nil
	case TargetRangeThisYear:
		start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(1, 0, 0), nil
	case TargetRangeLastYear:
		start := time.Date(now.Year()-1, 1, 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(1, 0, 0), nil
	case TargetRangeCustom:
		if from.IsZero() || to.IsZero() || to.Before(from) {
			return time.Time{}, time.Time{}, ErrInvalidTargetRange
		}
		// The custom window is inclusive of the end date.
		return from, to.AddDate(0, 0, 1), nil
	default:
		return time.Time{}, time.Time{}, ErrInvalidTargetRange
	}
}
