package dto

import "github.com/shopspring/decimal"

// CreateShipmentRequest entrada para registrar o recebimento de uma remessa.
type CreateShipmentRequest struct {
	LotCode       string           `json:"codigo_lote" validate:"required,max=50"`
	Quantity      int              `json:"quantidade" validate:"gt=0"`
	DeliveryDate  string           `json:"data_entrega" validate:"required,datetime=2006-01-02"`
	LotExpiry     string           `json:"validade_lote" validate:"required,datetime=2006-01-02"`
	InvoiceNumber string           `json:"nota_fiscal" validate:"required,max=50"`
	Notes         *string          `json:"observacoes" validate:"omitempty,max=500"`
	UnitCost      *decimal.Decimal `json:"custo_unitario"`
	SupplierID    int64            `json:"id_fornecedor" validate:"required,gt=0"`
	ModelID       int64            `json:"id_modelo_epi" validate:"required,gt=0"`
	CertificateID int64            `json:"id_ca" validate:"required,gt=0"`
}

// UpdateShipmentRequest correção administrativa dos dados descritivos; quantidade e modelo não mudam.
type UpdateShipmentRequest struct {
	LotCode       string           `json:"codigo_lote" validate:"required,max=50"`
	DeliveryDate  string           `json:"data_entrega" validate:"required,datetime=2006-01-02"`
	LotExpiry     string           `json:"validade_lote" validate:"required,datetime=2006-01-02"`
	InvoiceNumber string           `json:"nota_fiscal" validate:"required,max=50"`
	Notes         *string          `json:"observacoes" validate:"omitempty,max=500"`
	UnitCost      *decimal.Decimal `json:"custo_unitario"`
	SupplierID    int64            `json:"id_fornecedor" validate:"required,gt=0"`
	CertificateID int64            `json:"id_ca" validate:"required,gt=0"`
}

// ShipmentResponse saída de uma remessa.
type ShipmentResponse struct {
	ID            int64            `json:"id_remessa"`
	LotCode       string           `json:"codigo_lote"`
	Quantity      int              `json:"quantidade"`
	DeliveryDate  string           `json:"data_entrega"`
	LotExpiry     string           `json:"validade_lote"`
	InvoiceNumber string           `json:"nota_fiscal"`
	Notes         *string          `json:"observacoes"`
	UnitCost      *decimal.Decimal `json:"custo_unitario,omitempty"`
	SupplierID    int64            `json:"id_fornecedor"`
	ModelID       int64            `json:"id_modelo_epi"`
	CertificateID int64            `json:"id_ca"`
}

// ShipmentCreated ids gerados no recebimento.
type ShipmentCreated struct {
	ShipmentID int64 `json:"id_remessa"`
	LotStockID int64 `json:"id_estoque_lote"`
}

// CreateShipmentResponse corpo do 201 de POST /remessas.
type CreateShipmentResponse struct {
	Message string          `json:"message"`
	Data    ShipmentCreated `json:"data"`
}
