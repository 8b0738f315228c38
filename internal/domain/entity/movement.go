package entity

import "time"

// MovementType tipo de movimentação de estoque.
type MovementType string

// Tipos de movimentação aceitos.
const (
	MovementTypeDelivery MovementType = "Entrega"   // saída para o funcionário
	MovementTypeExchange MovementType = "Troca"     // troca, sem efeito no saldo
	MovementTypeReturn   MovementType = "Devolucao" // volta ao estoque
	MovementTypeEntry    MovementType = "Entrada"   // entrada avulsa no lote
)

// MovementTypes lista os tipos válidos na ordem em que aparecem na API.
var MovementTypes = []MovementType{
	MovementTypeDelivery,
	MovementTypeExchange,
	MovementTypeReturn,
	MovementTypeEntry,
}

// ParseMovementType converte o texto recebido; ok=false para tipos desconhecidos.
func ParseMovementType(s string) (MovementType, bool) {
	for _, t := range MovementTypes {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// Movement representa um registro do histórico de movimentações (append-only).
type Movement struct {
	ID         int64
	Type       MovementType
	Date       time.Time // somente a data
	Time       string    // HH:MM:SS
	Quantity   int
	Note       string
	EmployeeID int64
	ModelID    int64
	LotStockID int64

	// Preenchidos nas consultas (join).
	EmployeeName string
	ModelName    string
}
