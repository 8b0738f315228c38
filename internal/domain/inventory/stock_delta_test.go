package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/controle-epi-api/internal/domain/entity"
	"github.com/jhoicas/controle-epi-api/internal/domain/inventory"
)

func TestStockDelta(t *testing.T) {
	assert.Equal(t, -4, inventory.StockDelta(entity.MovementTypeDelivery, 4))
	assert.Equal(t, 3, inventory.StockDelta(entity.MovementTypeReturn, 3))
	assert.Equal(t, 7, inventory.StockDelta(entity.MovementTypeEntry, 7))
	assert.Equal(t, 0, inventory.StockDelta(entity.MovementTypeExchange, 5))
}

func TestRequiresAvailability(t *testing.T) {
	assert.True(t, inventory.RequiresAvailability(entity.MovementTypeDelivery))
	for _, mt := range []entity.MovementType{entity.MovementTypeExchange, entity.MovementTypeReturn, entity.MovementTypeEntry} {
		assert.False(t, inventory.RequiresAvailability(mt), string(mt))
	}
}

func TestParseMovementType(t *testing.T) {
	mt, ok := entity.ParseMovementType("Devolucao")
	assert.True(t, ok)
	assert.Equal(t, entity.MovementTypeReturn, mt)

	_, ok = entity.ParseMovementType("Venda")
	assert.False(t, ok)
}
