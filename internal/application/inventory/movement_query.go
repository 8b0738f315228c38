package inventory

import (
	"context"

	"github.com/jhoicas/controle-epi-api/internal/application/dto"
	"github.com/jhoicas/controle-epi-api/internal/domain"
	"github.com/jhoicas/controle-epi-api/internal/domain/entity"
	"github.com/jhoicas/controle-epi-api/internal/domain/repository"
)

// MovementQueryUseCase consultas do histórico de movimentações.
type MovementQueryUseCase struct {
	movRepo      repository.MovementRepository
	employeeRepo repository.EmployeeRepository
	modelRepo    repository.PPEModelRepository
}

// NewMovementQueryUseCase constrói o caso de uso.
func NewMovementQueryUseCase(
	movRepo repository.MovementRepository,
	employeeRepo repository.EmployeeRepository,
	modelRepo repository.PPEModelRepository,
) *MovementQueryUseCase {
	return &MovementQueryUseCase{movRepo: movRepo, employeeRepo: employeeRepo, modelRepo: modelRepo}
}

// GetByID obtém uma movimentação.
func (uc *MovementQueryUseCase) GetByID(ctx context.Context, id int64) (*dto.MovementResponse, error) {
	m, err := uc.movRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrMovementNotFound
	}
	return ToMovementResponse(m), nil
}

// List lista todo o histórico.
func (uc *MovementQueryUseCase) List(ctx context.Context) ([]dto.MovementResponse, error) {
	return movementResponses(uc.movRepo.List(ctx))
}

// ListByType lista por tipo; tipos desconhecidos são ErrInvalidMovementType.
func (uc *MovementQueryUseCase) ListByType(ctx context.Context, tipo string) ([]dto.MovementResponse, error) {
	mt, ok := entity.ParseMovementType(tipo)
	if !ok {
		return nil, domain.ErrInvalidMovementType
	}
	return movementResponses(uc.movRepo.ListByType(ctx, mt))
}

// ListByEmployee lista as movimentações de um funcionário existente.
func (uc *MovementQueryUseCase) ListByEmployee(ctx context.Context, employeeID int64) ([]dto.MovementResponse, error) {
	e, err := uc.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	return movementResponses(uc.movRepo.ListByEmployee(ctx, employeeID))
}

// ListByModel lista as movimentações de um modelo de EPI existente.
func (uc *MovementQueryUseCase) ListByModel(ctx context.Context, modelID int64) ([]dto.MovementResponse, error) {
	m, err := uc.modelRepo.GetByID(ctx, modelID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrPPEModelNotFound
	}
	return movementResponses(uc.movRepo.ListByModel(ctx, modelID))
}

func movementResponses(list []*entity.Movement, err error) ([]dto.MovementResponse, error) {
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, *ToMovementResponse(m))
	}
	return out, nil
}

// ToMovementResponse mapeia a entidade para a saída HTTP.
func ToMovementResponse(m *entity.Movement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:           m.ID,
		Type:         string(m.Type),
		Date:         dto.FormatDate(m.Date),
		Time:         m.Time,
		Quantity:     m.Quantity,
		Note:         m.Note,
		EmployeeID:   m.EmployeeID,
		EmployeeName: m.EmployeeName,
		ModelID:      m.ModelID,
		ModelName:    m.ModelName,
		LotStockID:   m.LotStockID,
	}
}
