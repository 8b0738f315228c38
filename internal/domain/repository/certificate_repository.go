package repository

import (
	"context"

	"github.com/jhoicas/controle-epi-api/internal/domain/entity"
)

// CertificateRepository define a porta de persistência para ca.
type CertificateRepository interface {
	Create(ctx context.Context, c *entity.Certificate) error
	GetByID(ctx context.Context, id int64) (*entity.Certificate, error)
	GetByNumber(ctx context.Context, number string) (*entity.Certificate, error)
	Update(ctx context.Context, c *entity.Certificate) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*entity.Certificate, error)
	ListByModel(ctx context.Context, modelID int64) ([]*entity.Certificate, error)
	ListActive(ctx context.Context) ([]*entity.Certificate, error)
	ListExpiring(ctx context.Context, days int) ([]*entity.Certificate, error)
}
