package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/controle-epi-api/internal/application/dto"
	"github.com/jhoicas/controle-epi-api/internal/domain"
	"github.com/jhoicas/controle-epi-api/internal/domain/entity"
	"github.com/jhoicas/controle-epi-api/internal/domain/repository"
)

// CertificateUseCase CRUD e consultas de Certificados de Aprovação.
type CertificateUseCase struct {
	repo       repository.CertificateRepository
	modelRepo  repository.PPEModelRepository
	expiryDays int
	now        func() time.Time
}

// NewCertificateUseCase constrói o caso de uso. expiryDays é a janela padrão de ListExpiring.
func NewCertificateUseCase(repo repository.CertificateRepository, modelRepo repository.PPEModelRepository, expiryDays int) *CertificateUseCase {
	return &CertificateUseCase{repo: repo, modelRepo: modelRepo, expiryDays: expiryDays, now: time.Now}
}

func (uc *CertificateUseCase) Create(ctx context.Context, in dto.CertificateRequest) (*dto.CertificateResponse, error) {
	c := &entity.Certificate{Active: true}
	if err := uc.apply(ctx, c, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return uc.toResponse(c), nil
}

func (uc *CertificateUseCase) GetByID(ctx context.Context, id int64) (*dto.CertificateResponse, error) {
	c, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(c), nil
}

// GetByNumber busca pelo número do CA impresso no EPI.
func (uc *CertificateUseCase) GetByNumber(ctx context.Context, number string) (*dto.CertificateResponse, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, domain.MissingField("numero_ca")
	}
	c, err := uc.repo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCertificateNotFound
	}
	return uc.toResponse(c), nil
}

func (uc *CertificateUseCase) Update(ctx context.Context, id int64, in dto.CertificateRequest) (*dto.CertificateResponse, error) {
	c, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.apply(ctx, c, in); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return uc.toResponse(c), nil
}

// Delete remove o CA; remessas vinculadas resultam em ErrDependentRecords.
func (uc *CertificateUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *CertificateUseCase) List(ctx context.Context) ([]dto.CertificateResponse, error) {
	return uc.responses(uc.repo.List(ctx))
}

func (uc *CertificateUseCase) ListActive(ctx context.Context) ([]dto.CertificateResponse, error) {
	return uc.responses(uc.repo.ListActive(ctx))
}

func (uc *CertificateUseCase) ListByModel(ctx context.Context, modelID int64) ([]dto.CertificateResponse, error) {
	m, err := uc.modelRepo.GetByID(ctx, modelID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrPPEModelNotFound
	}
	return uc.responses(uc.repo.ListByModel(ctx, modelID))
}

// ListExpiring lista CAs ativos que vencem em até days dias (0 usa o padrão configurado).
func (uc *CertificateUseCase) ListExpiring(ctx context.Context, days int) ([]dto.CertificateResponse, error) {
	if days <= 0 {
		days = uc.expiryDays
	}
	return uc.responses(uc.repo.ListExpiring(ctx, days))
}

func (uc *CertificateUseCase) apply(ctx context.Context, c *entity.Certificate, in dto.CertificateRequest) error {
	number := strings.TrimSpace(in.Number)
	if number == "" {
		return domain.MissingField("numero_ca")
	}
	if in.ExpiresAt == "" {
		return domain.MissingField("validade_ca")
	}
	expires, err := time.Parse(dto.DateLayout, in.ExpiresAt)
	if err != nil {
		return domain.Invalid("validade_ca deve estar no formato AAAA-MM-DD")
	}
	issued, err := dto.ParseDatePtr(in.IssuedAt)
	if err != nil {
		return domain.Invalid("data_emissao deve estar no formato AAAA-MM-DD")
	}
	if issued != nil && issued.After(expires) {
		return domain.Invalid("data_emissao posterior à validade_ca")
	}
	m, err := uc.modelRepo.GetByID(ctx, in.ModelID)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrPPEModelNotFound
	}
	c.Number = number
	c.ExpiresAt = expires
	c.IssuedAt = issued
	if in.Active != nil {
		c.Active = *in.Active
	}
	c.ModelID = in.ModelID
	c.ModelName = m.Name
	return nil
}

func (uc *CertificateUseCase) get(ctx context.Context, id int64) (*entity.Certificate, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCertificateNotFound
	}
	return c, nil
}

func (uc *CertificateUseCase) responses(list []*entity.Certificate, err error) ([]dto.CertificateResponse, error) {
	if err != nil {
		return nil, err
	}
	out := make([]dto.CertificateResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *uc.toResponse(c))
	}
	return out, nil
}

func (uc *CertificateUseCase) toResponse(c *entity.Certificate) *dto.CertificateResponse {
	days := c.DaysToExpire(uc.now())
	return &dto.CertificateResponse{
		ID:           c.ID,
		Number:       c.Number,
		ExpiresAt:    dto.FormatDate(c.ExpiresAt),
		IssuedAt:     dto.FormatDatePtr(c.IssuedAt),
		Active:       c.Active,
		ModelID:      c.ModelID,
		ModelName:    c.ModelName,
		DaysToExpire: &days,
	}
}
