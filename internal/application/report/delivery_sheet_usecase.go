package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/controle-epi-api/internal/domain"
	"github.com/jhoicas/controle-epi-api/internal/domain/entity"
	"github.com/jhoicas/controle-epi-api/internal/domain/repository"
)

// DeliverySheetUseCase gera a ficha de EPI (histórico de entregas, trocas e devoluções) de um funcionário.
type DeliverySheetUseCase struct {
	employeeRepo repository.EmployeeRepository
	roleRepo     repository.RoleRepository
	movRepo      repository.MovementRepository
	generator    DeliverySheetGenerator
}

// NewDeliverySheetUseCase constrói o caso de uso injetando todas as dependências.
func NewDeliverySheetUseCase(
	employeeRepo repository.EmployeeRepository,
	roleRepo repository.RoleRepository,
	movRepo repository.MovementRepository,
	generator DeliverySheetGenerator,
) *DeliverySheetUseCase {
	return &DeliverySheetUseCase{
		employeeRepo: employeeRepo,
		roleRepo:     roleRepo,
		movRepo:      movRepo,
		generator:    generator,
	}
}

// Generate devolve os bytes do PDF e o nome de arquivo sugerido.
// ErrEmployeeNotFound se o funcionário não existe.
func (uc *DeliverySheetUseCase) Generate(ctx context.Context, employeeID int64) (pdfBytes []byte, filename string, err error) {
	emp, err := uc.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, "", fmt.Errorf("ficha: obter funcionário: %w", err)
	}
	if emp == nil {
		return nil, "", domain.ErrEmployeeNotFound
	}

	roleName := ""
	if r, rErr := uc.roleRepo.GetByID(ctx, emp.RoleID); rErr == nil && r != nil {
		roleName = r.Name
	}

	movs, err := uc.movRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, "", fmt.Errorf("ficha: obter movimentações: %w", err)
	}
	list := make([]entity.Movement, 0, len(movs))
	for _, m := range movs {
		list = append(list, *m)
	}
	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].Date.Equal(list[j].Date) {
			return list[i].Date.Before(list[j].Date)
		}
		if list[i].Time != list[j].Time {
			return list[i].Time < list[j].Time
		}
		return list[i].ID < list[j].ID
	})

	sheet := &DeliverySheet{
		Employee:    *emp,
		RoleName:    roleName,
		Movements:   list,
		GeneratedAt: time.Now(),
	}
	pdfBytes, err = uc.generator.GenerateDeliverySheet(ctx, sheet)
	if err != nil {
		return nil, "", fmt.Errorf("ficha: geração falhou: %w", err)
	}
	filename = fmt.Sprintf("ficha_epi_%s.pdf", nonEmpty(emp.RegistrationNumber, fmt.Sprint(emp.ID)))
	return pdfBytes, filename, nil
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
