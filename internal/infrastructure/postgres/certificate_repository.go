package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/controle-epi-api/internal/domain"
	"github.com/jhoicas/controle-epi-api/internal/domain/entity"
	"github.com/jhoicas/controle-epi-api/internal/domain/repository"
)

var _ repository.CertificateRepository = (*CertificateRepo)(nil)

// CertificateRepo implementação de CertificateRepository (tabela ca).
type CertificateRepo struct {
	q Querier
}

// NewCertificateRepository constrói o adaptador de CAs. Passar pool ou tx (Querier).
func NewCertificateRepository(q Querier) *CertificateRepo {
	return &CertificateRepo{q: q}
}

const certificateSelect = `
	SELECT ca.id_ca, ca.numero_ca, ca.validade_ca, ca.data_emissao, ca.ativo, ca.id_modelo_epi, me.nome_epi
	FROM ca
	JOIN modelo_epi me ON me.id_modelo_epi = ca.id_modelo_epi`

func scanCertificate(row pgx.Row) (*entity.Certificate, error) {
	var c entity.Certificate
	if err := row.Scan(&c.ID, &c.Number, &c.ExpiresAt, &c.IssuedAt, &c.Active, &c.ModelID, &c.ModelName); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CertificateRepo) Create(ctx context.Context, c *entity.Certificate) error {
	query := `
		INSERT INTO ca (numero_ca, validade_ca, data_emissao, ativo, id_modelo_epi)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id_ca`
	err := r.q.QueryRow(ctx, query, c.Number, c.ExpiresAt, c.IssuedAt, c.Active, c.ModelID).Scan(&c.ID)
	if err != nil {
		return writeErr("insert certificate", err)
	}
	return nil
}

func (r *CertificateRepo) GetByID(ctx context.Context, id int64) (*entity.Certificate, error) {
	return r.getOne(ctx, certificateSelect+` WHERE ca.id_ca = $1`, id)
}

func (r *CertificateRepo) GetByNumber(ctx context.Context, number string) (*entity.Certificate, error) {
	return r.getOne(ctx, certificateSelect+` WHERE ca.numero_ca = $1`, number)
}

func (r *CertificateRepo) getOne(ctx context.Context, query string, arg any) (*entity.Certificate, error) {
	c, err := scanCertificate(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get certificate: %w", err)
	}
	return c, nil
}

func (r *CertificateRepo) Update(ctx context.Context, c *entity.Certificate) error {
	query := `
		UPDATE ca
		SET numero_ca = $2, validade_ca = $3, data_emissao = $4, ativo = $5, id_modelo_epi = $6
		WHERE id_ca = $1`
	tag, err := r.q.Exec(ctx, query, c.ID, c.Number, c.ExpiresAt, c.IssuedAt, c.Active, c.ModelID)
	if err != nil {
		return writeErr("update certificate", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCertificateNotFound
	}
	return nil
}

func (r *CertificateRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM ca WHERE id_ca = $1`, id)
	return deleteResult("delete certificate", tag, err)
}

func (r *CertificateRepo) list(ctx context.Context, op, tail string, args ...any) ([]*entity.Certificate, error) {
	rows, err := r.q.Query(ctx, certificateSelect+tail, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return collect(rows, op, func(rows pgx.Rows) (*entity.Certificate, error) { return scanCertificate(rows) })
}

func (r *CertificateRepo) List(ctx context.Context) ([]*entity.Certificate, error) {
	return r.list(ctx, "list certificates", ` ORDER BY ca.numero_ca`)
}

func (r *CertificateRepo) ListByModel(ctx context.Context, modelID int64) ([]*entity.Certificate, error) {
	return r.list(ctx, "list certificates by model", ` WHERE ca.id_modelo_epi = $1 ORDER BY ca.validade_ca DESC`, modelID)
}

// ListActive CAs marcados como ativos e ainda não vencidos.
func (r *CertificateRepo) ListActive(ctx context.Context) ([]*entity.Certificate, error) {
	return r.list(ctx, "list active certificates",
		` WHERE ca.ativo AND ca.validade_ca >= CURRENT_DATE ORDER BY ca.validade_ca`)
}

// ListExpiring CAs ativos que vencem em até days dias, incluindo os já vencidos.
func (r *CertificateRepo) ListExpiring(ctx context.Context, days int) ([]*entity.Certificate, error) {
	return r.list(ctx, "list expiring certificates",
		` WHERE ca.ativo AND ca.validade_ca <= CURRENT_DATE + $1::int ORDER BY ca.validade_ca`, days)
}
