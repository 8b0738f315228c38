package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/controle-epi-api/internal/application/dto"
	"github.com/jhoicas/controle-epi-api/internal/domain"
	"github.com/jhoicas/controle-epi-api/internal/domain/entity"
	"github.com/jhoicas/controle-epi-api/internal/domain/repository"
)

// PPEModelUseCase CRUD de modelos de EPI. A quantidade é o agregado dos lotes e só muda
// por remessas, movimentações e ajustes de lote.
type PPEModelUseCase struct {
	repo         repository.PPEModelRepository
	brandRepo    repository.BrandRepository
	categoryRepo repository.CategoryRepository
	roleRepo     repository.RoleRepository
}

// NewPPEModelUseCase constrói o caso de uso.
func NewPPEModelUseCase(
	repo repository.PPEModelRepository,
	brandRepo repository.BrandRepository,
	categoryRepo repository.CategoryRepository,
	roleRepo repository.RoleRepository,
) *PPEModelUseCase {
	return &PPEModelUseCase{repo: repo, brandRepo: brandRepo, categoryRepo: categoryRepo, roleRepo: roleRepo}
}

// Create cadastra o modelo com quantidade 0.
func (uc *PPEModelUseCase) Create(ctx context.Context, in dto.PPEModelRequest) (*dto.PPEModelResponse, error) {
	m := &entity.PPEModel{}
	if err := uc.apply(ctx, m, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return toPPEModelResponse(m), nil
}

func (uc *PPEModelUseCase) GetByID(ctx context.Context, id int64) (*dto.PPEModelResponse, error) {
	m, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toPPEModelResponse(m), nil
}

// Update altera os dados descritivos; a quantidade é preservada.
func (uc *PPEModelUseCase) Update(ctx context.Context, id int64, in dto.PPEModelRequest) (*dto.PPEModelResponse, error) {
	m, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.apply(ctx, m, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return toPPEModelResponse(m), nil
}

// Delete remove o modelo. Remessas, movimentações, CAs ou cargos vinculados resultam em ErrDependentRecords.
func (uc *PPEModelUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *PPEModelUseCase) List(ctx context.Context) ([]dto.PPEModelResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toPPEModelResponses(list), nil
}

func (uc *PPEModelUseCase) ListByCategory(ctx context.Context, categoryID int64) ([]dto.PPEModelResponse, error) {
	c, err := uc.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCategoryNotFound
	}
	list, err := uc.repo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return toPPEModelResponses(list), nil
}

func (uc *PPEModelUseCase) ListByRole(ctx context.Context, roleID int64) ([]dto.PPEModelResponse, error) {
	r, err := uc.roleRepo.GetByID(ctx, roleID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrRoleNotFound
	}
	list, err := uc.repo.ListByRole(ctx, roleID)
	if err != nil {
		return nil, err
	}
	return toPPEModelResponses(list), nil
}

// UpdatePhoto grava o caminho da foto já salva em disco.
func (uc *PPEModelUseCase) UpdatePhoto(ctx context.Context, id int64, path string) (*dto.PPEModelResponse, error) {
	m, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.UpdatePhoto(ctx, id, path); err != nil {
		return nil, err
	}
	m.PhotoPath = &path
	return toPPEModelResponse(m), nil
}

func (uc *PPEModelUseCase) apply(ctx context.Context, m *entity.PPEModel, in dto.PPEModelRequest) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.MissingField("nome_epi")
	}
	b, err := uc.brandRepo.GetByID(ctx, in.BrandID)
	if err != nil {
		return err
	}
	if b == nil {
		return domain.ErrBrandNotFound
	}
	c, err := uc.categoryRepo.GetByID(ctx, in.CategoryID)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrCategoryNotFound
	}
	m.Name = name
	m.Disposable = in.Disposable
	m.Traceable = in.Traceable
	m.Description = in.Description
	m.BrandID = in.BrandID
	m.CategoryID = in.CategoryID
	return nil
}

func (uc *PPEModelUseCase) get(ctx context.Context, id int64) (*entity.PPEModel, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrPPEModelNotFound
	}
	return m, nil
}

func toPPEModelResponse(m *entity.PPEModel) *dto.PPEModelResponse {
	return &dto.PPEModelResponse{
		ID:          m.ID,
		Name:        m.Name,
		Quantity:    m.Quantity,
		Disposable:  m.Disposable,
		Traceable:   m.Traceable,
		Description: m.Description,
		BrandID:     m.BrandID,
		CategoryID:  m.CategoryID,
		PhotoPath:   m.PhotoPath,
	}
}

func toPPEModelResponses(list []*entity.PPEModel) []dto.PPEModelResponse {
	out := make([]dto.PPEModelResponse, 0, len(list))
	for _, m := range list {
		out = append(out, *toPPEModelResponse(m))
	}
	return out
}
