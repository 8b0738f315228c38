package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/controle-epi-api/internal/application/inventory"
	"github.com/jhoicas/controle-epi-api/internal/domain"
	"github.com/jhoicas/controle-epi-api/internal/domain/entity"
)

func movementInput(sd seed, tipo string, qty int) inventory.RecordMovementInput {
	return inventory.RecordMovementInput{
		Type:       tipo,
		Date:       "2024-03-15",
		Time:       "08:30",
		Quantity:   qty,
		Note:       "entrega inicial",
		EmployeeID: sd.employeeID,
		ModelID:    sd.modelID,
		LotStockID: sd.lotID,
	}
}

func newRecorder(st *store) (*inventory.RecordMovementUseCase, *recordingNotifier, *recordingHook) {
	n := &recordingNotifier{}
	h := &recordingHook{}
	return inventory.NewRecordMovementUseCase(&fakeTx{st}, h, n), n, h
}

func TestRecordMovement_EntregaBaixaLoteEModelo(t *testing.T) {
	st := newStore()
	sd := st.seed(10)
	uc, notifier, _ := newRecorder(st)

	id, err := uc.RecordMovement(context.Background(), movementInput(sd, "Entrega", 4))
	require.NoError(t, err)
	assert.NotZero(t, id)

	assert.Equal(t, 6, st.lots[sd.lotID].Quantity)
	assert.Equal(t, 6, st.models[sd.modelID].Quantity)
	require.Len(t, st.movements, 1)
	mov := st.movements[0]
	assert.Equal(t, id, mov.ID)
	assert.Equal(t, entity.MovementTypeDelivery, mov.Type)
	assert.Equal(t, 4, mov.Quantity)
	assert.Equal(t, "08:30:00", mov.Time)
	assert.Equal(t, "2024-03-15", mov.Date.Format("2006-01-02"))

	require.Len(t, notifier.events, 1)
	assert.Equal(t, -4, notifier.events[0].Delta)
	assert.Equal(t, 6, notifier.events[0].LotQuantity)
	assert.Equal(t, 6, notifier.events[0].ModelQuantity)
}

func TestRecordMovement_EntregaSemSaldoNaoAlteraNada(t *testing.T) {
	st := newStore()
	sd := st.seed(6)
	uc, notifier, _ := newRecorder(st)

	_, err := uc.RecordMovement(context.Background(), movementInput(sd, "Entrega", 7))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, domain.KindInsufficientStock, domain.KindOf(err))

	assert.Equal(t, 6, st.lots[sd.lotID].Quantity)
	assert.Equal(t, 6, st.models[sd.modelID].Quantity)
	assert.Empty(t, st.movements)
	assert.Empty(t, notifier.events)
}

func TestRecordMovement_DezMenosQuatroDepoisSeteFalha(t *testing.T) {
	st := newStore()
	sd := st.seed(10)
	uc, _, _ := newRecorder(st)
	ctx := context.Background()

	_, err := uc.RecordMovement(ctx, movementInput(sd, "Entrega", 4))
	require.NoError(t, err)
	assert.Equal(t, 6, st.lots[sd.lotID].Quantity)

	_, err = uc.RecordMovement(ctx, movementInput(sd, "Entrega", 7))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 6, st.lots[sd.lotID].Quantity)
	assert.Len(t, st.movements, 1)
}

func TestRecordMovement_DevolucaoEEntradaSomam(t *testing.T) {
	for _, tipo := range []string{"Devolucao", "Entrada"} {
		t.Run(tipo, func(t *testing.T) {
			st := newStore()
			sd := st.seed(5)
			uc, _, _ := newRecorder(st)

			_, err := uc.RecordMovement(context.Background(), movementInput(sd, tipo, 3))
			require.NoError(t, err)
			assert.Equal(t, 8, st.lots[sd.lotID].Quantity)
			assert.Equal(t, 8, st.models[sd.modelID].Quantity)
			assert.Len(t, st.movements, 1)
		})
	}
}

func TestRecordMovement_TrocaRegistraSemAlterarSaldo(t *testing.T) {
	st := newStore()
	sd := st.seed(5)
	uc, notifier, _ := newRecorder(st)

	_, err := uc.RecordMovement(context.Background(), movementInput(sd, "Troca", 2))
	require.NoError(t, err)
	assert.Equal(t, 5, st.lots[sd.lotID].Quantity)
	assert.Equal(t, 5, st.models[sd.modelID].Quantity)
	require.Len(t, st.movements, 1)
	assert.Equal(t, entity.MovementTypeExchange, st.movements[0].Type)
	require.Len(t, notifier.events, 1)
	assert.Zero(t, notifier.events[0].Delta)
}

func TestRecordMovement_TrocaComLoteZerado(t *testing.T) {
	st := newStore()
	sd := st.seed(0)
	uc, _, _ := newRecorder(st)

	_, err := uc.RecordMovement(context.Background(), movementInput(sd, "Troca", 1))
	require.NoError(t, err)
	assert.Equal(t, 0, st.lots[sd.lotID].Quantity)
}

func TestRecordMovement_RepeticaoGeraDoisRegistros(t *testing.T) {
	st := newStore()
	sd := st.seed(10)
	uc, _, _ := newRecorder(st)
	ctx := context.Background()
	in := movementInput(sd, "Entrega", 2)

	id1, err := uc.RecordMovement(ctx, in)
	require.NoError(t, err)
	id2, err := uc.RecordMovement(ctx, in)
	require.NoError(t, err)

	assert.NotEqual(t, id1, id2)
	assert.Len(t, st.movements, 2)
	assert.Equal(t, 6, st.lots[sd.lotID].Quantity)
	assert.Equal(t, 6, st.models[sd.modelID].Quantity)
}

func TestRecordMovement_LoteInexistente(t *testing.T) {
	st := newStore()
	sd := st.seed(10)
	uc, _, _ := newRecorder(st)

	in := movementInput(sd, "Entrega", 1)
	in.LotStockID = 999
	_, err := uc.RecordMovement(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrLotNotFound)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	assert.Empty(t, st.movements)
}

func TestRecordMovement_LoteDeOutroModelo(t *testing.T) {
	st := newStore()
	sd := st.seed(10)
	st.models[77] = entity.PPEModel{ID: 77, Name: "Capacete", Quantity: 0}
	uc, _, _ := newRecorder(st)

	in := movementInput(sd, "Entrega", 1)
	in.ModelID = 77
	_, err := uc.RecordMovement(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrLotModelMismatch)
	assert.Equal(t, 10, st.lots[sd.lotID].Quantity)
}

func TestRecordMovement_FuncionarioInexistente(t *testing.T) {
	st := newStore()
	sd := st.seed(10)
	uc, _, _ := newRecorder(st)

	in := movementInput(sd, "Entrega", 1)
	in.EmployeeID = 999
	_, err := uc.RecordMovement(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func TestRecordMovement_EntradaInvalida(t *testing.T) {
	st := newStore()
	sd := st.seed(10)
	uc, _, _ := newRecorder(st)
	ctx := context.Background()

	_, err := uc.RecordMovement(ctx, movementInput(sd, "Entrega", 0))
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = uc.RecordMovement(ctx, movementInput(sd, "Venda", 1))
	assert.ErrorIs(t, err, domain.ErrInvalidMovementType)

	in := movementInput(sd, "Entrega", 1)
	in.LotStockID = 0
	_, err = uc.RecordMovement(ctx, in)
	assert.ErrorIs(t, err, domain.ErrMissingField)

	in = movementInput(sd, "Entrega", 1)
	in.Time = "25h"
	_, err = uc.RecordMovement(ctx, in)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	assert.Empty(t, st.movements)
}

func TestRecordMovement_FalhaAposInsercaoDesfazTudo(t *testing.T) {
	st := newStore()
	sd := st.seed(10)
	st.failOn = "models.adjust"
	uc, notifier, _ := newRecorder(st)

	_, err := uc.RecordMovement(context.Background(), movementInput(sd, "Entrega", 3))
	assert.ErrorIs(t, err, errSimulado)
	assert.Equal(t, domain.KindStorage, domain.KindOf(err))

	assert.Empty(t, st.movements)
	assert.Equal(t, 10, st.lots[sd.lotID].Quantity)
	assert.Equal(t, 10, st.models[sd.modelID].Quantity)
	assert.Empty(t, notifier.events)
}

func TestRecordMovement_SaldoConsumidoNaAtualizacaoDesfazTudo(t *testing.T) {
	st := newStore()
	sd := st.seed(10)
	st.failOn = "lots.apply.guard"
	uc, notifier, hook := newRecorder(st)

	_, err := uc.RecordMovement(context.Background(), movementInput(sd, "Entrega", 3))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, domain.KindInsufficientStock, domain.KindOf(err))

	assert.Empty(t, st.movements)
	assert.Equal(t, 10, st.lots[sd.lotID].Quantity)
	assert.Equal(t, 10, st.models[sd.modelID].Quantity)
	assert.Empty(t, notifier.events)
	assert.Zero(t, hook.calls)
}

func TestRecordMovement_ModeloRastreavelChamaHook(t *testing.T) {
	st := newStore()
	sd := st.seed(10)
	m := st.models[sd.modelID]
	m.Traceable = true
	st.models[sd.modelID] = m
	uc, _, hook := newRecorder(st)

	_, err := uc.RecordMovement(context.Background(), movementInput(sd, "Entrega", 1))
	require.NoError(t, err)
	assert.Equal(t, 1, hook.calls)
}

func TestRecordMovement_SemHookUsaNoop(t *testing.T) {
	st := newStore()
	sd := st.seed(10)
	m := st.models[sd.modelID]
	m.Traceable = true
	st.models[sd.modelID] = m
	uc := inventory.NewRecordMovementUseCase(&fakeTx{st}, nil, nil)

	_, err := uc.RecordMovement(context.Background(), movementInput(sd, "Entrega", 1))
	require.NoError(t, err)
	assert.Equal(t, 9, st.lots[sd.lotID].Quantity)
}

func TestNormalizeClock(t *testing.T) {
	s, err := inventory.NormalizeClock("7:05")
	require.NoError(t, err)
	assert.Equal(t, "07:05:00", s)

	s, err = inventory.NormalizeClock("17:45:12")
	require.NoError(t, err)
	assert.Equal(t, "17:45:12", s)

	_, err = inventory.NormalizeClock("meio-dia")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
