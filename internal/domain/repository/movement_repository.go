package repository

import (
	"context"

	"github.com/jhoicas/controle-epi-api/internal/domain/entity"
)

// MovementRepository define a porta de persistência para movimentacao_estoque (somente inserção e leitura).
type MovementRepository interface {
	Create(ctx context.Context, m *entity.Movement) error
	GetByID(ctx context.Context, id int64) (*entity.Movement, error)
	List(ctx context.Context) ([]*entity.Movement, error)
	ListByType(ctx context.Context, t entity.MovementType) ([]*entity.Movement, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]*entity.Movement, error)
	ListByModel(ctx context.Context, modelID int64) ([]*entity.Movement, error)
	CountByShipment(ctx context.Context, shipmentID int64) (int, error)
}
