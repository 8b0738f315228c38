package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/controle-epi-api/internal/application/dto"
	"github.com/jhoicas/controle-epi-api/internal/domain"
	"github.com/jhoicas/controle-epi-api/internal/domain/entity"
	"github.com/jhoicas/controle-epi-api/internal/domain/repository"
)

// RoleUseCase CRUD de cargos e dos EPIs exigidos por cargo.
type RoleUseCase struct {
	repo      repository.RoleRepository
	modelRepo repository.PPEModelRepository
}

// NewRoleUseCase constrói o caso de uso.
func NewRoleUseCase(repo repository.RoleRepository, modelRepo repository.PPEModelRepository) *RoleUseCase {
	return &RoleUseCase{repo: repo, modelRepo: modelRepo}
}

func (uc *RoleUseCase) Create(ctx context.Context, in dto.RoleRequest) (*dto.RoleResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.MissingField("nome_cargo")
	}
	r := &entity.Role{Name: name}
	if err := uc.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return toRoleResponse(r), nil
}

func (uc *RoleUseCase) GetByID(ctx context.Context, id int64) (*dto.RoleResponse, error) {
	r, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toRoleResponse(r), nil
}

func (uc *RoleUseCase) Update(ctx context.Context, id int64, in dto.RoleRequest) (*dto.RoleResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.MissingField("nome_cargo")
	}
	r, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	r.Name = name
	if err := uc.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return toRoleResponse(r), nil
}

// Delete remove o cargo. Funcionários ou EPIs exigidos vinculados resultam em ErrDependentRecords.
func (uc *RoleUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *RoleUseCase) List(ctx context.Context) ([]dto.RoleResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RoleResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *toRoleResponse(r))
	}
	return out, nil
}

// AddRequiredModel marca o modelo como exigido para o cargo. Repetir a associação não é erro.
func (uc *RoleUseCase) AddRequiredModel(ctx context.Context, roleID, modelID int64) error {
	if err := uc.checkPair(ctx, roleID, modelID); err != nil {
		return err
	}
	return uc.repo.AddRequiredModel(ctx, roleID, modelID)
}

// RemoveRequiredModel desfaz a associação; ErrNotFound se ela não existia.
func (uc *RoleUseCase) RemoveRequiredModel(ctx context.Context, roleID, modelID int64) error {
	if err := uc.checkPair(ctx, roleID, modelID); err != nil {
		return err
	}
	return uc.repo.RemoveRequiredModel(ctx, roleID, modelID)
}

// ListRequiredModels lista os modelos de EPI exigidos para o cargo.
func (uc *RoleUseCase) ListRequiredModels(ctx context.Context, roleID int64) ([]dto.PPEModelResponse, error) {
	if _, err := uc.get(ctx, roleID); err != nil {
		return nil, err
	}
	list, err := uc.modelRepo.ListByRole(ctx, roleID)
	if err != nil {
		return nil, err
	}
	return toPPEModelResponses(list), nil
}

func (uc *RoleUseCase) checkPair(ctx context.Context, roleID, modelID int64) error {
	if _, err := uc.get(ctx, roleID); err != nil {
		return err
	}
	m, err := uc.modelRepo.GetByID(ctx, modelID)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrPPEModelNotFound
	}
	return nil
}

func (uc *RoleUseCase) get(ctx context.Context, id int64) (*entity.Role, error) {
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrRoleNotFound
	}
	return r, nil
}

func toRoleResponse(r *entity.Role) *dto.RoleResponse {
	return &dto.RoleResponse{ID: r.ID, Name: r.Name}
}
