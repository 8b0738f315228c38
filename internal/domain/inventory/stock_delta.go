package inventory

import "github.com/jhoicas/controle-epi-api/internal/domain/entity"

// StockDelta devolve a variação de saldo que uma movimentação aplica ao lote e ao modelo.
// Entrega subtrai, Devolucao e Entrada somam, Troca não altera o saldo.
func StockDelta(t entity.MovementType, quantity int) int {
	switch t {
	case entity.MovementTypeDelivery:
		return -quantity
	case entity.MovementTypeReturn, entity.MovementTypeEntry:
		return quantity
	default:
		return 0
	}
}

// RequiresAvailability indica se o tipo precisa de saldo suficiente no lote.
func RequiresAvailability(t entity.MovementType) bool {
	return t == entity.MovementTypeDelivery
}
