package repository

import (
	"context"
	"time"

	"github.com/jhoicas/controle-epi-api/internal/domain/entity"
)

// ShipmentRepository define a porta de persistência para remessa.
type ShipmentRepository interface {
	Create(ctx context.Context, s *entity.Shipment) error
	GetByID(ctx context.Context, id int64) (*entity.Shipment, error)
	GetForUpdate(ctx context.Context, id int64) (*entity.Shipment, error)
	Update(ctx context.Context, s *entity.Shipment) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*entity.Shipment, error)
	ListBySupplier(ctx context.Context, supplierID int64) ([]*entity.Shipment, error)
	ListByModel(ctx context.Context, modelID int64) ([]*entity.Shipment, error)
	ListByPeriod(ctx context.Context, from, to time.Time) ([]*entity.Shipment, error)
}
