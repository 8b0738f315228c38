package repository

import (
	"context"

	"github.com/jhoicas/controle-epi-api/internal/domain/entity"
)

// LotStockRepository define a porta de persistência para o saldo dos lotes (estoque_lote).
type LotStockRepository interface {
	Create(ctx context.Context, lot *entity.LotStock) error
	GetByID(ctx context.Context, id int64) (*entity.LotStock, error)
	// GetForUpdate lê o lote com o modelo da remessa e bloqueia a linha (SELECT ... FOR UPDATE).
	GetForUpdate(ctx context.Context, id int64) (*entity.LotStock, error)
	// ApplyDelta soma delta ao saldo e devolve o novo saldo. Retorna domain.ErrInsufficientStock
	// se o saldo ficaria negativo.
	ApplyDelta(ctx context.Context, id int64, delta int) (int, error)
	SetQuantity(ctx context.Context, id int64, quantity int) error
	List(ctx context.Context) ([]*entity.LotStock, error)
	ListByShipment(ctx context.Context, shipmentID int64) ([]*entity.LotStock, error)
	ListByModel(ctx context.Context, modelID int64) ([]*entity.LotStock, error)
	ListLowStock(ctx context.Context, threshold int) ([]*entity.LotStock, error)
	ListExpiring(ctx context.Context, days int) ([]*entity.LotStock, error)
	DeleteByShipment(ctx context.Context, shipmentID int64) error
}
