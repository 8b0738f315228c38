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

var _ repository.BrandRepository = (*BrandRepo)(nil)

type BrandRepo struct {
	q Querier
}

func NewBrandRepository(q Querier) *BrandRepo {
	return &BrandRepo{q: q}
}

func (r *BrandRepo) Create(ctx context.Context, b *entity.Brand) error {
	err := r.q.QueryRow(ctx, `INSERT INTO marca (nome_marca) VALUES ($1) RETURNING id_marca`, b.Name).Scan(&b.ID)
	if err != nil {
		return writeErr("insert brand", err)
	}
	return nil
}

func (r *BrandRepo) GetByID(ctx context.Context, id int64) (*entity.Brand, error) {
	var b entity.Brand
	err := r.q.QueryRow(ctx, `SELECT id_marca, nome_marca FROM marca WHERE id_marca = $1`, id).Scan(&b.ID, &b.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get brand: %w", err)
	}
	return &b, nil
}

func (r *BrandRepo) Update(ctx context.Context, b *entity.Brand) error {
	tag, err := r.q.Exec(ctx, `UPDATE marca SET nome_marca = $2 WHERE id_marca = $1`, b.ID, b.Name)
	if err != nil {
		return writeErr("update brand", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBrandNotFound
	}
	return nil
}

func (r *BrandRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM marca WHERE id_marca = $1`, id)
	return deleteResult("delete brand", tag, err)
}

func (r *BrandRepo) List(ctx context.Context) ([]*entity.Brand, error) {
	rows, err := r.q.Query(ctx, `SELECT id_marca, nome_marca FROM marca ORDER BY nome_marca`)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	return collect(rows, "list brands", func(rows pgx.Rows) (*entity.Brand, error) {
		var b entity.Brand
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			return nil, err
		}
		return &b, nil
	})
}
