package inventory

import (
	"context"

	"github.com/jhoicas/controle-epi-api/internal/application/dto"
	"github.com/jhoicas/controle-epi-api/internal/domain"
	"github.com/jhoicas/controle-epi-api/internal/domain/entity"
	"github.com/jhoicas/controle-epi-api/internal/domain/repository"
)

// LotStockUseCase consultas de saldo por lote e ajuste manual de saldo.
type LotStockUseCase struct {
	txRunner     TxRunner
	lotRepo      repository.LotStockRepository
	shipmentRepo repository.ShipmentRepository
	modelRepo    repository.PPEModelRepository
	notifier     StockNotifier

	lowThreshold int
	expiryDays   int
}

// NewLotStockUseCase constrói o caso de uso. lowThreshold e expiryDays são os padrões das consultas
// de estoque baixo e de vencimento quando o cliente não informa.
func NewLotStockUseCase(
	txRunner TxRunner,
	lotRepo repository.LotStockRepository,
	shipmentRepo repository.ShipmentRepository,
	modelRepo repository.PPEModelRepository,
	notifier StockNotifier,
	lowThreshold, expiryDays int,
) *LotStockUseCase {
	return &LotStockUseCase{
		txRunner:     txRunner,
		lotRepo:      lotRepo,
		shipmentRepo: shipmentRepo,
		modelRepo:    modelRepo,
		notifier:     notifier,
		lowThreshold: lowThreshold,
		expiryDays:   expiryDays,
	}
}

// Adjust define o saldo do lote (inventário físico) e move o agregado do modelo pela diferença.
func (uc *LotStockUseCase) Adjust(ctx context.Context, lotID int64, quantity int) (*dto.LotStockResponse, error) {
	if quantity < 0 {
		return nil, domain.Invalid("quantidade_estoque não pode ser negativa")
	}
	var (
		out *entity.LotStock
		evt StockEvent
	)
	err := uc.txRunner.Run(ctx, func(repos TxRepos) error {
		lot, err := repos.Lots.GetForUpdate(ctx, lotID)
		if err != nil {
			return err
		}
		if lot == nil {
			return domain.ErrLotNotFound
		}
		diff := quantity - lot.Quantity
		evt = StockEvent{Kind: EventLotAdjusted, ModelID: lot.ModelID, LotStockID: lot.ID, ShipmentID: lot.ShipmentID, Quantity: quantity, Delta: diff, LotQuantity: quantity}
		if diff == 0 {
			out = lot
			return nil
		}
		if err := repos.Lots.SetQuantity(ctx, lot.ID, quantity); err != nil {
			return err
		}
		if evt.ModelQuantity, err = repos.Models.AdjustQuantity(ctx, lot.ModelID, diff); err != nil {
			return err
		}
		lot.Quantity = quantity
		out = lot
		return nil
	})
	if err != nil {
		return nil, err
	}
	if evt.Delta != 0 && uc.notifier != nil {
		uc.notifier.StockChanged(evt)
	}
	return toLotStockResponse(out), nil
}

// GetByID obtém o saldo de um lote.
func (uc *LotStockUseCase) GetByID(ctx context.Context, id int64) (*dto.LotStockResponse, error) {
	lot, err := uc.lotRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return nil, domain.ErrLotNotFound
	}
	return toLotStockResponse(lot), nil
}

// List lista todos os lotes.
func (uc *LotStockUseCase) List(ctx context.Context) ([]dto.LotStockResponse, error) {
	return lotResponses(uc.lotRepo.List(ctx))
}

// ListByShipment lista os lotes de uma remessa existente.
func (uc *LotStockUseCase) ListByShipment(ctx context.Context, shipmentID int64) ([]dto.LotStockResponse, error) {
	s, err := uc.shipmentRepo.GetByID(ctx, shipmentID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrShipmentNotFound
	}
	return lotResponses(uc.lotRepo.ListByShipment(ctx, shipmentID))
}

// ListByModel lista os lotes de um modelo de EPI existente.
func (uc *LotStockUseCase) ListByModel(ctx context.Context, modelID int64) ([]dto.LotStockResponse, error) {
	m, err := uc.modelRepo.GetByID(ctx, modelID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrPPEModelNotFound
	}
	return lotResponses(uc.lotRepo.ListByModel(ctx, modelID))
}

// ListLowStock lista lotes com saldo menor ou igual ao limite (0 usa o padrão configurado).
func (uc *LotStockUseCase) ListLowStock(ctx context.Context, threshold int) ([]dto.LotStockResponse, error) {
	if threshold <= 0 {
		threshold = uc.lowThreshold
	}
	return lotResponses(uc.lotRepo.ListLowStock(ctx, threshold))
}

// ListExpiring lista lotes com saldo cuja validade vence em até days dias (0 usa o padrão configurado).
func (uc *LotStockUseCase) ListExpiring(ctx context.Context, days int) ([]dto.LotStockResponse, error) {
	if days <= 0 {
		days = uc.expiryDays
	}
	return lotResponses(uc.lotRepo.ListExpiring(ctx, days))
}

func lotResponses(list []*entity.LotStock, err error) ([]dto.LotStockResponse, error) {
	if err != nil {
		return nil, err
	}
	out := make([]dto.LotStockResponse, 0, len(list))
	for _, l := range list {
		out = append(out, *toLotStockResponse(l))
	}
	return out, nil
}

func toLotStockResponse(l *entity.LotStock) *dto.LotStockResponse {
	if l == nil {
		return nil
	}
	r := &dto.LotStockResponse{
		ID:         l.ID,
		ShipmentID: l.ShipmentID,
		Quantity:   l.Quantity,
		ModelID:    l.ModelID,
		ModelName:  l.ModelName,
		LotCode:    l.LotCode,
		UnitCost:   l.UnitCost,
	}
	if !l.LotExpiry.IsZero() {
		r.LotExpiry = dto.FormatDate(l.LotExpiry)
	}
	return r
}
