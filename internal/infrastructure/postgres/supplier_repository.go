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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository constrói o adaptador de fornecedores. Passar pool ou tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

const supplierSelect = `
	SELECT id_fornecedor, nome_fornecedor, cnpj, logradouro, numero, bairro, cidade, estado
	FROM fornecedor`

func scanSupplier(row pgx.Row) (*entity.Supplier, error) {
	var s entity.Supplier
	if err := row.Scan(&s.ID, &s.Name, &s.CNPJ, &s.Street, &s.Number, &s.Neighborhood, &s.City, &s.State); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	query := `
		INSERT INTO fornecedor (nome_fornecedor, cnpj, logradouro, numero, bairro, cidade, estado)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id_fornecedor`
	err := r.q.QueryRow(ctx, query, s.Name, s.CNPJ, s.Street, s.Number, s.Neighborhood, s.City, s.State).Scan(&s.ID)
	if err != nil {
		return writeErr("insert supplier", err)
	}
	return nil
}

func (r *SupplierRepo) GetByID(ctx context.Context, id int64) (*entity.Supplier, error) {
	s, err := scanSupplier(r.q.QueryRow(ctx, supplierSelect+` WHERE id_fornecedor = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return s, nil
}

func (r *SupplierRepo) Update(ctx context.Context, s *entity.Supplier) error {
	query := `
		UPDATE fornecedor
		SET nome_fornecedor = $2, cnpj = $3, logradouro = $4, numero = $5, bairro = $6, cidade = $7, estado = $8
		WHERE id_fornecedor = $1`
	tag, err := r.q.Exec(ctx, query, s.ID, s.Name, s.CNPJ, s.Street, s.Number, s.Neighborhood, s.City, s.State)
	if err != nil {
		return writeErr("update supplier", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSupplierNotFound
	}
	return nil
}

func (r *SupplierRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM fornecedor WHERE id_fornecedor = $1`, id)
	return deleteResult("delete supplier", tag, err)
}

func (r *SupplierRepo) List(ctx context.Context) ([]*entity.Supplier, error) {
	rows, err := r.q.Query(ctx, supplierSelect+` ORDER BY nome_fornecedor`)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	return collect(rows, "list suppliers", func(rows pgx.Rows) (*entity.Supplier, error) { return scanSupplier(rows) })
}
