package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/controle-epi-api/internal/application/dto"
	"github.com/jhoicas/controle-epi-api/internal/domain"
	"github.com/jhoicas/controle-epi-api/internal/domain/entity"
	"github.com/jhoicas/controle-epi-api/internal/domain/repository"
)

// EmployeeUseCase CRUD de funcionários.
type EmployeeUseCase struct {
	repo     repository.EmployeeRepository
	roleRepo repository.RoleRepository
}

// NewEmployeeUseCase constrói o caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository, roleRepo repository.RoleRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, roleRepo: roleRepo}
}

// Create cadastra o funcionário. Matrícula e CPF repetidos resultam em ErrDuplicate.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	e := &entity.Employee{}
	if err := uc.apply(ctx, e, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return ToEmployeeResponse(e), nil
}

func (uc *EmployeeUseCase) GetByID(ctx context.Context, id int64) (*dto.EmployeeResponse, error) {
	e, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToEmployeeResponse(e), nil
}

func (uc *EmployeeUseCase) GetByRegistration(ctx context.Context, registration string) (*dto.EmployeeResponse, error) {
	registration = strings.TrimSpace(registration)
	if registration == "" {
		return nil, domain.MissingField("numero_matricula")
	}
	e, err := uc.repo.GetByRegistration(ctx, registration)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	return ToEmployeeResponse(e), nil
}

func (uc *EmployeeUseCase) Update(ctx context.Context, id int64, in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	e, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.apply(ctx, e, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return ToEmployeeResponse(e), nil
}

// Delete remove o funcionário; movimentações vinculadas resultam em ErrDependentRecords.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *EmployeeUseCase) List(ctx context.Context) ([]dto.EmployeeResponse, error) {
	return employeeResponses(uc.repo.List(ctx))
}

func (uc *EmployeeUseCase) ListByRole(ctx context.Context, roleID int64) ([]dto.EmployeeResponse, error) {
	r, err := uc.roleRepo.GetByID(ctx, roleID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrRoleNotFound
	}
	return employeeResponses(uc.repo.ListByRole(ctx, roleID))
}

// UpdatePhoto grava o caminho da foto já salva em disco.
func (uc *EmployeeUseCase) UpdatePhoto(ctx context.Context, id int64, path string) (*dto.EmployeeResponse, error) {
	e, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.UpdatePhoto(ctx, id, path); err != nil {
		return nil, err
	}
	e.PhotoPath = &path
	return ToEmployeeResponse(e), nil
}

func (uc *EmployeeUseCase) apply(ctx context.Context, e *entity.Employee, in dto.EmployeeRequest) error {
	first := strings.TrimSpace(in.FirstName)
	if first == "" {
		return domain.MissingField("nome_funcionario")
	}
	registration := strings.TrimSpace(in.RegistrationNumber)
	if registration == "" {
		return domain.MissingField("numero_matricula")
	}
	cpf := onlyDigits(in.CPF)
	if cpf == "" {
		return domain.MissingField("cpf")
	}
	if len(cpf) != 11 {
		return domain.Invalid("cpf deve ter 11 dígitos")
	}
	birth, err := dto.ParseDatePtr(in.BirthDate)
	if err != nil {
		return domain.Invalid("dt_nascimento deve estar no formato AAAA-MM-DD")
	}
	hire, err := dto.ParseDatePtr(in.HireDate)
	if err != nil {
		return domain.Invalid("dt_admissao deve estar no formato AAAA-MM-DD")
	}
	r, err := uc.roleRepo.GetByID(ctx, in.RoleID)
	if err != nil {
		return err
	}
	if r == nil {
		return domain.ErrRoleNotFound
	}
	e.FirstName = first
	e.LastName = strings.TrimSpace(in.LastName)
	e.RegistrationNumber = registration
	e.Department = in.Department
	e.CPF = cpf
	e.BirthDate = birth
	e.HireDate = hire
	e.BloodType = in.BloodType
	e.RoleID = in.RoleID
	return nil
}

func (uc *EmployeeUseCase) get(ctx context.Context, id int64) (*entity.Employee, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	return e, nil
}

func employeeResponses(list []*entity.Employee, err error) ([]dto.EmployeeResponse, error) {
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, *ToEmployeeResponse(e))
	}
	return out, nil
}

// ToEmployeeResponse mapeia a entidade para a saída HTTP.
func ToEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:                 e.ID,
		FirstName:          e.FirstName,
		LastName:           e.LastName,
		RegistrationNumber: e.RegistrationNumber,
		Department:         e.Department,
		CPF:                e.CPF,
		BirthDate:          dto.FormatDatePtr(e.BirthDate),
		HireDate:           dto.FormatDatePtr(e.HireDate),
		BloodType:          e.BloodType,
		RoleID:             e.RoleID,
		PhotoPath:          e.PhotoPath,
	}
}
