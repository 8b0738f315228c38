package repository

import (
	"context"

	"github.com/jhoicas/controle-epi-api/internal/domain/entity"
)

// EmployeeRepository define a porta de persistência para funcionario.
type EmployeeRepository interface {
	Create(ctx context.Context, e *entity.Employee) error
	GetByID(ctx context.Context, id int64) (*entity.Employee, error)
	GetByRegistration(ctx context.Context, registration string) (*entity.Employee, error)
	Update(ctx context.Context, e *entity.Employee) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*entity.Employee, error)
	ListByRole(ctx context.Context, roleID int64) ([]*entity.Employee, error)
	UpdatePhoto(ctx context.Context, id int64, path string) error
}
