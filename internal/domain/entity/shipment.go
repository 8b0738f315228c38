package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shipment remessa recebida de um fornecedor. Quantidade e modelo não mudam após o recebimento.
type Shipment struct {
	ID            int64
	LotCode       string
	Quantity      int
	DeliveryDate  time.Time
	LotExpiry     time.Time
	InvoiceNumber string
	Notes         *string
	UnitCost      *decimal.Decimal
	SupplierID    int64
	ModelID       int64
	CertificateID int64
}
