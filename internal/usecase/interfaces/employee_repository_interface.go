package interfaces

import (
	"context"
	"errors"

	"clicknova_admin/internal/domain/entities"
)

// ErrEmployeeIDTaken reports a lost reservation race on a drawn employee id.
var ErrEmployeeIDTaken = errors.New("employee id already reserved")

// IEmployeeRepository persists employees and arbitrates employee-id
// uniqueness.
//
// The id workflow:
//   - ExistsByEmployeeID is the cheap existence check used while drawing
//     candidates.
//   - ReserveEmployeeID claims a drawn id atomically (conditional put into the
//     reservations table); ErrEmployeeIDTaken signals a lost race and the
//     caller redraws.
type IEmployeeRepository interface {
	Create(ctx context.Context, e entities.Employee) (entities.Employee, error)
	GetByID(ctx context.Context, id string) (entities.Employee, error)
	Update(ctx context.Context, e entities.Employee) (entities.Employee, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entities.Employee, error)
	ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error)
	ReserveEmployeeID(ctx context.Context, employeeID string) error
	ReleaseEmployeeID(ctx context.Context, employeeID string) error
}

type IBusinessRepository interface {
	Create(ctx context.Context, b entities.Business) (entities.Business, error)
	GetByID(ctx context.Context, id string) (entities.Business, error)
	Update(ctx context.Context, b entities.Business) (entities.Business, error)
	Delete(ctx context.Context, id string) error
	ListByEmployeeID(ctx context.Context, employeeID string) ([]entities.Business, error)
}
