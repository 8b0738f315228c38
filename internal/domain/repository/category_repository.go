package repository

import (
	"context"

	"github.com/jhoicas/controle-epi-api/internal/domain/entity"
)

// CategoryRepository define a porta de persistência para categoria.
type CategoryRepository interface {
	Create(ctx context.Context, c *entity.Category) error
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	Update(ctx context.Context, c *entity.Category) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*entity.Category, error)
}
