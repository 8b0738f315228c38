package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/controle-epi-api/internal/application/dto"
	"github.com/jhoicas/controle-epi-api/internal/domain"
	"github.com/jhoicas/controle-epi-api/internal/domain/entity"
	"github.com/jhoicas/controle-epi-api/internal/domain/repository"
)

// BrandUseCase CRUD de marcas.
type BrandUseCase struct {
	repo repository.BrandRepository
}

func NewBrandUseCase(repo repository.BrandRepository) *BrandUseCase {
	return &BrandUseCase{repo: repo}
}

func (uc *BrandUseCase) Create(ctx context.Context, in dto.BrandRequest) (*dto.BrandResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.MissingField("nome_marca")
	}
	b := &entity.Brand{Name: name}
	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return &dto.BrandResponse{ID: b.ID, Name: b.Name}, nil
}

func (uc *BrandUseCase) GetByID(ctx context.Context, id int64) (*dto.BrandResponse, error) {
	b, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.BrandResponse{ID: b.ID, Name: b.Name}, nil
}

func (uc *BrandUseCase) Update(ctx context.Context, id int64, in dto.BrandRequest) (*dto.BrandResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.MissingField("nome_marca")
	}
	b, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	b.Name = name
	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return &dto.BrandResponse{ID: b.ID, Name: b.Name}, nil
}

func (uc *BrandUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *BrandUseCase) List(ctx context.Context) ([]dto.BrandResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BrandResponse, 0, len(list))
	for _, b := range list {
		out = append(out, dto.BrandResponse{ID: b.ID, Name: b.Name})
	}
	return out, nil
}

func (uc *BrandUseCase) get(ctx context.Context, id int64) (*entity.Brand, error) {
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrBrandNotFound
	}
	return b, nil
}
