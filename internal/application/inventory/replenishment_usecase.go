package inventory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/controle-epi-api/internal/application/dto"
	"github.com/jhoicas/controle-epi-api/internal/domain/repository"
)

// ReplenishmentUseCase gera a lista de reposição: modelos exigidos pelos cargos cujo saldo
// agregado não cobre um EPI por funcionário desses cargos.
type ReplenishmentUseCase struct {
	modelRepo repository.PPEModelRepository
}

// NewReplenishmentUseCase constrói o caso de uso de reposição.
func NewReplenishmentUseCase(modelRepo repository.PPEModelRepository) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{modelRepo: modelRepo}
}

// GenerateReplenishmentList devolve os modelos com falta, do maior para o menor déficit.
// O custo estimado usa o último custo unitário recebido; sem custo conhecido fica nil.
func (uc *ReplenishmentUseCase) GenerateReplenishmentList(ctx context.Context) ([]dto.ReplenishmentSuggestion, error) {
	reqs, err := uc.modelRepo.ListRequirements(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ReplenishmentSuggestion, 0, len(reqs))
	for _, r := range reqs {
		shortfall := r.Required - r.Quantity
		if shortfall <= 0 {
			continue
		}
		s := dto.ReplenishmentSuggestion{
			ModelID:           r.ModelID,
			ModelName:         r.ModelName,
			CurrentQuantity:   r.Quantity,
			RequiredQuantity:  r.Required,
			SuggestedQuantity: shortfall,
			LastUnitCost:      r.LastUnitCost,
		}
		if r.LastUnitCost != nil {
			cost := r.LastUnitCost.Mul(decimal.NewFromInt(int64(shortfall))).Round(2)
			s.EstimatedCost = &cost
		}
		out = append(out, s)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SuggestedQuantity != out[j].SuggestedQuantity {
			return out[i].SuggestedQuantity > out[j].SuggestedQuantity
		}
		return out[i].ModelName < out[j].ModelName
	})
	return out, nil
}
