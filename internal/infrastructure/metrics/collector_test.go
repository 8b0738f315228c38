package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/controle-epi-api/internal/application/inventory"
	"github.com/jhoicas/controle-epi-api/internal/domain/entity"
)

func TestCollector_ContaEventos(t *testing.T) {
	c := NewCollector()
	c.StockChanged(inventory.StockEvent{Kind: inventory.EventMovement, MovementType: entity.MovementTypeDelivery, ModelID: 7, Delta: -3, ModelQuantity: 17})
	c.StockChanged(inventory.StockEvent{Kind: inventory.EventShipmentCreated, ModelID: 7, Delta: 20, ModelQuantity: 37})

	assert.Equal(t, 1.0, testutil.ToFloat64(c.events.WithLabelValues(inventory.EventMovement, "Entrega")))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.units.WithLabelValues("saida")))
	assert.Equal(t, 20.0, testutil.ToFloat64(c.units.WithLabelValues("entrada")))
	assert.Equal(t, 37.0, testutil.ToFloat64(c.modelQuantity.WithLabelValues("7")))

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "epi_stock_events_total")
}
