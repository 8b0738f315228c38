package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/controle-epi-api/internal/domain/entity"
)

// PPEModelRepository define a porta de persistência para modelo_epi.
type PPEModelRepository interface {
	Create(ctx context.Context, m *entity.PPEModel) error
	GetByID(ctx context.Context, id int64) (*entity.PPEModel, error)
	// Update altera os campos descritivos; a quantidade agregada só muda por AdjustQuantity.
	Update(ctx context.Context, m *entity.PPEModel) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*entity.PPEModel, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]*entity.PPEModel, error)
	ListByRole(ctx context.Context, roleID int64) ([]*entity.PPEModel, error)
	// AdjustQuantity soma delta ao agregado e devolve o novo valor.
	AdjustQuantity(ctx context.Context, id int64, delta int) (int, error)
	UpdatePhoto(ctx context.Context, id int64, path string) error
	// ListRequirements devolve, para cada modelo exigido por algum cargo, quantos funcionários
	// desses cargos existem e o último custo unitário recebido.
	ListRequirements(ctx context.Context) ([]ModelRequirement, error)
}

// ModelRequirement demanda de um modelo de EPI calculada a partir de epi_cargo.
type ModelRequirement struct {
	ModelID      int64
	ModelName    string
	Quantity     int
	Required     int
	LastUnitCost *decimal.Decimal
}
