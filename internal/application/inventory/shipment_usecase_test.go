package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/controle-epi-api/internal/application/dto"
	"github.com/jhoicas/controle-epi-api/internal/application/inventory"
	"github.com/jhoicas/controle-epi-api/internal/domain"
	"github.com/jhoicas/controle-epi-api/internal/domain/entity"
)

func newShipmentUC(st *store) (*inventory.ShipmentUseCase, *recordingNotifier) {
	r := st.repos()
	n := &recordingNotifier{}
	return inventory.NewShipmentUseCase(&fakeTx{st}, r.Shipments, r.Suppliers, r.Models, r.Certificates, n), n
}

func shipmentRequest(sd seed, qty int) dto.CreateShipmentRequest {
	cost := decimal.RequireFromString("12.50")
	return dto.CreateShipmentRequest{
		LotCode:       "L-002",
		Quantity:      qty,
		DeliveryDate:  "2024-03-01",
		LotExpiry:     "2026-03-01",
		InvoiceNumber: "NF-889",
		UnitCost:      &cost,
		SupplierID:    sd.supplierID,
		ModelID:       sd.modelID,
		CertificateID: sd.certID,
	}
}

func TestCreateShipment_SomaAoAgregado(t *testing.T) {
	st := newStore()
	sd := st.seed(50)
	uc, notifier := newShipmentUC(st)

	out, err := uc.Create(context.Background(), shipmentRequest(sd, 20))
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, 70, st.models[sd.modelID].Quantity)
	lot, ok := st.lots[out.LotStockID]
	require.True(t, ok)
	assert.Equal(t, 20, lot.Quantity)
	assert.Equal(t, out.ShipmentID, lot.ShipmentID)

	sh, ok := st.shipments[out.ShipmentID]
	require.True(t, ok)
	assert.Equal(t, 20, sh.Quantity)
	assert.True(t, sh.UnitCost.Equal(decimal.RequireFromString("12.5")))

	require.Len(t, notifier.events, 1)
	assert.Equal(t, inventory.EventShipmentCreated, notifier.events[0].Kind)
	assert.Equal(t, 70, notifier.events[0].ModelQuantity)
}

func TestCreateShipment_FalhaNoLoteDesfazRemessa(t *testing.T) {
	st := newStore()
	sd := st.seed(50)
	st.failOn = "lots.create"
	uc, notifier := newShipmentUC(st)

	_, err := uc.Create(context.Background(), shipmentRequest(sd, 20))
	assert.ErrorIs(t, err, errSimulado)

	assert.Len(t, st.shipments, 1)
	assert.Len(t, st.lots, 1)
	assert.Equal(t, 50, st.models[sd.modelID].Quantity)
	assert.Empty(t, notifier.events)
}

func TestCreateShipment_Validacoes(t *testing.T) {
	st := newStore()
	sd := st.seed(0)
	st.models[77] = entity.PPEModel{ID: 77, Name: "Óculos"}
	st.certs[78] = entity.Certificate{ID: 78, Number: "CA-999", ModelID: 77}
	uc, _ := newShipmentUC(st)
	ctx := context.Background()

	in := shipmentRequest(sd, 5)
	in.LotCode = ""
	_, err := uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrMissingField)

	in = shipmentRequest(sd, 0)
	_, err = uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	in = shipmentRequest(sd, 5)
	in.DeliveryDate = "01/03/2024"
	_, err = uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = shipmentRequest(sd, 5)
	in.SupplierID = 999
	_, err = uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrSupplierNotFound)

	in = shipmentRequest(sd, 5)
	in.ModelID = 999
	_, err = uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrPPEModelNotFound)

	in = shipmentRequest(sd, 5)
	in.CertificateID = 78
	_, err = uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrCertificateModelMismatch)

	assert.Len(t, st.shipments, 1)
	assert.Equal(t, 0, st.models[sd.modelID].Quantity)
}

func TestDeleteShipment_ComMovimentacaoRecusa(t *testing.T) {
	st := newStore()
	sd := st.seed(10)
	rec := inventory.NewRecordMovementUseCase(&fakeTx{st}, nil, nil)
	_, err := rec.RecordMovement(context.Background(), movementInput(sd, "Entrega", 2))
	require.NoError(t, err)

	uc, _ := newShipmentUC(st)
	err = uc.Delete(context.Background(), sd.shipmentID)
	assert.ErrorIs(t, err, domain.ErrDependentRecords)
	assert.Equal(t, domain.KindDependentRecords, domain.KindOf(err))

	assert.Contains(t, st.shipments, sd.shipmentID)
	assert.Equal(t, 8, st.lots[sd.lotID].Quantity)
	assert.Equal(t, 8, st.models[sd.modelID].Quantity)
}

func TestDeleteShipment_SemMovimentacaoRetiraSaldo(t *testing.T) {
	st := newStore()
	sd := st.seed(50)
	uc, notifier := newShipmentUC(st)
	ctx := context.Background()

	out, err := uc.Create(ctx, shipmentRequest(sd, 20))
	require.NoError(t, err)
	require.Equal(t, 70, st.models[sd.modelID].Quantity)

	require.NoError(t, uc.Delete(ctx, out.ShipmentID))
	assert.NotContains(t, st.shipments, out.ShipmentID)
	assert.NotContains(t, st.lots, out.LotStockID)
	assert.Equal(t, 50, st.models[sd.modelID].Quantity)
	require.Len(t, notifier.events, 2)
	assert.Equal(t, -20, notifier.events[1].Delta)
}

func TestDeleteShipment_LoteZeradoInformaAgregadoAtual(t *testing.T) {
	st := newStore()
	sd := st.seed(50)
	uc, notifier := newShipmentUC(st)
	lots, _ := newLotStockUC(st)
	ctx := context.Background()

	out, err := uc.Create(ctx, shipmentRequest(sd, 20))
	require.NoError(t, err)
	_, err = lots.Adjust(ctx, out.LotStockID, 0)
	require.NoError(t, err)
	require.Equal(t, 50, st.models[sd.modelID].Quantity)

	require.NoError(t, uc.Delete(ctx, out.ShipmentID))
	assert.Equal(t, 50, st.models[sd.modelID].Quantity)
	require.Len(t, notifier.events, 2)
	evt := notifier.events[1]
	assert.Equal(t, 0, evt.Delta)
	assert.Equal(t, 0, evt.Quantity)
	assert.Equal(t, 50, evt.ModelQuantity)
}

func TestDeleteShipment_Inexistente(t *testing.T) {
	st := newStore()
	st.seed(1)
	uc, _ := newShipmentUC(st)

	err := uc.Delete(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrShipmentNotFound)
}

func TestUpdateShipment_MantemQuantidadeEModelo(t *testing.T) {
	st := newStore()
	sd := st.seed(10)
	uc, _ := newShipmentUC(st)

	notes := "nota corrigida"
	out, err := uc.Update(context.Background(), sd.shipmentID, dto.UpdateShipmentRequest{
		LotCode:       "L-001-A",
		DeliveryDate:  "2024-02-10",
		LotExpiry:     "2025-02-10",
		InvoiceNumber: "NF-100",
		Notes:         &notes,
		SupplierID:    sd.supplierID,
		CertificateID: sd.certID,
	})
	require.NoError(t, err)
	assert.Equal(t, "L-001-A", out.LotCode)
	assert.Equal(t, 10, out.Quantity)
	assert.Equal(t, sd.modelID, out.ModelID)
	assert.Equal(t, "2025-02-10", out.LotExpiry)
	assert.Equal(t, 10, st.models[sd.modelID].Quantity)
}

func TestListShipments_PorFornecedorEPeriodo(t *testing.T) {
	st := newStore()
	sd := st.seed(10)
	sh := st.shipments[sd.shipmentID]
	sh.DeliveryDate = time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	st.shipments[sd.shipmentID] = sh
	uc, _ := newShipmentUC(st)
	ctx := context.Background()

	list, err := uc.ListBySupplier(ctx, sd.supplierID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = uc.ListBySupplier(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrSupplierNotFound)

	list, err = uc.ListByPeriod(ctx, "2024-03-01", "2024-03-31")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	list, err = uc.ListByPeriod(ctx, "2024-04-01", "2024-04-30")
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = uc.ListByPeriod(ctx, "2024-04-30", "2024-04-01")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.ListByPeriod(ctx, "", "2024-04-01")
	assert.ErrorIs(t, err, domain.ErrMissingField)
}
