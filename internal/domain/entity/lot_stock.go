package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LotStock saldo atual de um lote (1:1 com a remessa que o originou).
type LotStock struct {
	ID         int64
	ShipmentID int64
	Quantity   int

	// Dados da remessa, preenchidos nas leituras.
	ModelID   int64
	ModelName string
	LotCode   string
	LotExpiry time.Time
	UnitCost  *decimal.Decimal
}

// Value valoriza o saldo pelo custo unitário da remessa; zero quando o custo não foi informado.
func (l *LotStock) Value() decimal.Decimal {
	if l.UnitCost == nil {
		return decimal.Zero
	}
	return l.UnitCost.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
