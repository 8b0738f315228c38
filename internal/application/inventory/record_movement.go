package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/controle-epi-api/internal/domain"
	"github.com/jhoicas/controle-epi-api/internal/domain/entity"
	"github.com/jhoicas/controle-epi-api/internal/domain/inventory"
)

// RecordMovementUseCase registra movimentações de EPI de forma transacional: histórico,
// saldo do lote e agregado do modelo mudam juntos ou nenhum muda.
type RecordMovementUseCase struct {
	txRunner TxRunner
	hook     TraceabilityHook
	notifier StockNotifier
}

// NewRecordMovementUseCase constrói o caso de uso. hook e notifier podem ser nil.
func NewRecordMovementUseCase(txRunner TxRunner, hook TraceabilityHook, notifier StockNotifier) *RecordMovementUseCase {
	if hook == nil {
		hook = NoopTraceability{}
	}
	return &RecordMovementUseCase{txRunner: txRunner, hook: hook, notifier: notifier}
}

// RecordMovementInput dados de uma movimentação. Date no formato YYYY-MM-DD, Time em HH:MM[:SS].
type RecordMovementInput struct {
	Type       string
	Date       string
	Time       string
	Quantity   int
	Note       string
	EmployeeID int64
	ModelID    int64
	LotStockID int64
}

// RecordMovement bloqueia o lote (SELECT FOR UPDATE), verifica o saldo nas entregas, grava o
// histórico e aplica a variação no lote e no modelo. Devolve o id da movimentação.
// Duas chamadas com os mesmos dados geram dois registros.
func (uc *RecordMovementUseCase) RecordMovement(ctx context.Context, input RecordMovementInput) (int64, error) {
	mov, err := buildMovement(input)
	if err != nil {
		return 0, err
	}
	delta := inventory.StockDelta(mov.Type, mov.Quantity)

	evt := StockEvent{
		Kind:         EventMovement,
		MovementType: mov.Type,
		ModelID:      mov.ModelID,
		LotStockID:   mov.LotStockID,
		Quantity:     mov.Quantity,
		Delta:        delta,
	}

	err = uc.txRunner.Run(ctx, func(repos TxRepos) error {
		lot, err := repos.Lots.GetForUpdate(ctx, mov.LotStockID)
		if err != nil {
			return err
		}
		if lot == nil {
			return domain.ErrLotNotFound
		}
		if lot.ModelID != mov.ModelID {
			return domain.ErrLotModelMismatch
		}
		employee, err := repos.Employees.GetByID(ctx, mov.EmployeeID)
		if err != nil {
			return err
		}
		if employee == nil {
			return domain.ErrEmployeeNotFound
		}
		model, err := repos.Models.GetByID(ctx, mov.ModelID)
		if err != nil {
			return err
		}
		if model == nil {
			return domain.ErrPPEModelNotFound
		}

		if inventory.RequiresAvailability(mov.Type) && lot.Quantity < mov.Quantity {
			return domain.ErrInsufficientStock
		}

		if err := repos.Movements.Create(ctx, mov); err != nil {
			return err
		}

		evt.LotQuantity = lot.Quantity
		evt.ModelQuantity = model.Quantity
		if delta != 0 {
			if evt.LotQuantity, err = repos.Lots.ApplyDelta(ctx, lot.ID, delta); err != nil {
				return err
			}
			if evt.ModelQuantity, err = repos.Models.AdjustQuantity(ctx, model.ID, delta); err != nil {
				return err
			}
		}

		if model.Traceable {
			return uc.hook.OnTraceableMovement(ctx, repos, mov)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if uc.notifier != nil {
		uc.notifier.StockChanged(evt)
	}
	return mov.ID, nil
}

func buildMovement(input RecordMovementInput) (*entity.Movement, error) {
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	mt, ok := entity.ParseMovementType(input.Type)
	if !ok {
		return nil, domain.ErrInvalidMovementType
	}
	switch {
	case input.EmployeeID <= 0:
		return nil, domain.MissingField("id_funcionario")
	case input.ModelID <= 0:
		return nil, domain.MissingField("id_modelo_epi")
	case input.LotStockID <= 0:
		return nil, domain.MissingField("id_estoque_lote")
	case input.Date == "":
		return nil, domain.MissingField("data")
	case input.Time == "":
		return nil, domain.MissingField("hora")
	}
	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return nil, domain.Invalid("data deve estar no formato AAAA-MM-DD")
	}
	clock, err := NormalizeClock(input.Time)
	if err != nil {
		return nil, err
	}
	return &entity.Movement{
		Type:       mt,
		Date:       date,
		Time:       clock,
		Quantity:   input.Quantity,
		Note:       input.Note,
		EmployeeID: input.EmployeeID,
		ModelID:    input.ModelID,
		LotStockID: input.LotStockID,
	}, nil
}

// NormalizeClock aceita HH:MM ou HH:MM:SS e devolve sempre HH:MM:SS.
func NormalizeClock(s string) (string, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("15:04:05"), nil
		}
	}
	return "", domain.Invalid("hora deve estar no formato HH:MM ou HH:MM:SS")
}
