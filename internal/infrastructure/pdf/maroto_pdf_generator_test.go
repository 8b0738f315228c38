package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/controle-epi-api/internal/application/report"
	"github.com/jhoicas/controle-epi-api/internal/domain/entity"
)

func TestGenerateDeliverySheet_GeraPDF(t *testing.T) {
	sheet := &report.DeliverySheet{
		Employee: entity.Employee{ID: 1, FirstName: "Ana", LastName: "Souza", RegistrationNumber: "M-001", CPF: "12345678901"},
		RoleName: "Eletricista",
		Movements: []entity.Movement{
			{ID: 1, Type: entity.MovementTypeDelivery, Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Time: "08:30:00", Quantity: 2, ModelName: "Luva", LotStockID: 4},
			{ID: 2, Type: entity.MovementTypeReturn, Date: time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), Time: "17:00:00", Quantity: 1, ModelName: "Luva", LotStockID: 4},
		},
		GeneratedAt: time.Now(),
	}

	data, err := NewMarotoPDFGenerator("ACME").GenerateDeliverySheet(context.Background(), sheet)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestFormatadores(t *testing.T) {
	assert.Equal(t, "123.456.789-01", formatCPF("12345678901"))
	assert.Equal(t, "—", formatCPF(""))
	assert.Equal(t, "1.000.000", formatMoney("1000000"))
	assert.Equal(t, "Devolução", movementLabel(entity.MovementTypeReturn))
}
