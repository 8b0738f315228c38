package repository

import (
	"context"

	"github.com/jhoicas/controle-epi-api/internal/domain/entity"
)

// RoleRepository define a porta de persistência para cargo e a associação epi_cargo.
type RoleRepository interface {
	Create(ctx context.Context, r *entity.Role) error
	GetByID(ctx context.Context, id int64) (*entity.Role, error)
	Update(ctx context.Context, r *entity.Role) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*entity.Role, error)
	AddRequiredModel(ctx context.Context, roleID, modelID int64) error
	RemoveRequiredModel(ctx context.Context, roleID, modelID int64) error
}
