package inventory

import (
	"context"

	"github.com/jhoicas/controle-epi-api/internal/application/dto"
)

// RecordMovementFromRequest adapta o request HTTP ao caso de uso RecordMovement.
func (uc *RecordMovementUseCase) RecordMovementFromRequest(ctx context.Context, in dto.CreateMovementRequest) (int64, error) {
	return uc.RecordMovement(ctx, RecordMovementInput{
		Type:       in.Type,
		Date:       in.Date,
		Time:       in.Time,
		Quantity:   in.Quantity,
		Note:       in.Note,
		EmployeeID: in.EmployeeID,
		ModelID:    in.ModelID,
		LotStockID: in.LotStockID,
	})
}
