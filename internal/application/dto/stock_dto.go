package dto

import "github.com/shopspring/decimal"

// LotStockResponse saldo de um lote com os dados da remessa.
type LotStockResponse struct {
	ID         int64            `json:"id_estoque_lote"`
	ShipmentID int64            `json:"id_remessa"`
	Quantity   int              `json:"quantidade_estoque"`
	ModelID    int64            `json:"id_modelo_epi"`
	ModelName  string           `json:"nome_epi"`
	LotCode    string           `json:"codigo_lote"`
	LotExpiry  string           `json:"validade_lote"`
	UnitCost   *decimal.Decimal `json:"custo_unitario,omitempty"`
}

// UpdateLotStockRequest ajuste manual do saldo de um lote (inventário físico).
type UpdateLotStockRequest struct {
	Quantity *int `json:"quantidade_estoque" validate:"required,gte=0"`
}

// ReplenishmentSuggestion item da lista de reposição.
type ReplenishmentSuggestion struct {
	ModelID           int64            `json:"id_modelo_epi"`
	ModelName         string           `json:"nome_epi"`
	CurrentQuantity   int              `json:"quantidade_atual"`
	RequiredQuantity  int              `json:"quantidade_necessaria"`
	SuggestedQuantity int              `json:"quantidade_sugerida"`
	LastUnitCost      *decimal.Decimal `json:"ultimo_custo_unitario,omitempty"`
	EstimatedCost     *decimal.Decimal `json:"custo_estimado,omitempty"`
}
