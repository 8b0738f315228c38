package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/controle-epi-api/internal/domain/entity"
)

// DeliverySheet dados da ficha de EPI de um funcionário.
type DeliverySheet struct {
	Employee    entity.Employee
	RoleName    string
	Movements   []entity.Movement // ordem cronológica, com ModelName preenchido
	GeneratedAt time.Time
}

// DeliverySheetGenerator desenha a ficha em PDF.
type DeliverySheetGenerator interface {
	GenerateDeliverySheet(ctx context.Context, sheet *DeliverySheet) ([]byte, error)
}

// StockRow uma linha da planilha de estoque: saldo do lote valorizado pelo custo da remessa.
type StockRow struct {
	LotStockID int64
	ShipmentID int64
	ModelID    int64
	ModelName  string
	LotCode    string
	LotExpiry  time.Time
	Quantity   int
	UnitCost   *decimal.Decimal
	Value      decimal.Decimal
}

// StockSheet conteúdo completo da exportação.
type StockSheet struct {
	Rows          []StockRow
	TotalQuantity int
	TotalValue    decimal.Decimal
	GeneratedAt   time.Time
}

// StockSpreadsheet grava a planilha (xlsx).
type StockSpreadsheet interface {
	GenerateStockSheet(ctx context.Context, sheet *StockSheet) ([]byte, error)
}
