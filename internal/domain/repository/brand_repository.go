package repository

import (
	"context"

	"github.com/jhoicas/controle-epi-api/internal/domain/entity"
)

// BrandRepository define a porta de persistência para marca.
type BrandRepository interface {
	Create(ctx context.Context, b *entity.Brand) error
	GetByID(ctx context.Context, id int64) (*entity.Brand, error)
	Update(ctx context.Context, b *entity.Brand) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*entity.Brand, error)
}
