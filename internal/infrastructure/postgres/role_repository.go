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

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo cargos e o vínculo epi_cargo com os modelos exigidos.
type RoleRepo struct {
	q Querier
}

func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

func scanRole(row pgx.Row) (*entity.Role, error) {
	var c entity.Role
	if err := row.Scan(&c.ID, &c.Name); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *RoleRepo) Create(ctx context.Context, c *entity.Role) error {
	err := r.q.QueryRow(ctx, `INSERT INTO cargo (nome_cargo) VALUES ($1) RETURNING id_cargo`, c.Name).Scan(&c.ID)
	if err != nil {
		return writeErr("insert role", err)
	}
	return nil
}

func (r *RoleRepo) GetByID(ctx context.Context, id int64) (*entity.Role, error) {
	c, err := scanRole(r.q.QueryRow(ctx, `SELECT id_cargo, nome_cargo FROM cargo WHERE id_cargo = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	return c, nil
}

func (r *RoleRepo) Update(ctx context.Context, c *entity.Role) error {
	tag, err := r.q.Exec(ctx, `UPDATE cargo SET nome_cargo = $2 WHERE id_cargo = $1`, c.ID, c.Name)
	if err != nil {
		return writeErr("update role", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRoleNotFound
	}
	return nil
}

func (r *RoleRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM cargo WHERE id_cargo = $1`, id)
	return deleteResult("delete role", tag, err)
}

func (r *RoleRepo) List(ctx context.Context) ([]*entity.Role, error) {
	rows, err := r.q.Query(ctx, `SELECT id_cargo, nome_cargo FROM cargo ORDER BY nome_cargo`)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return collect(rows, "list roles", func(rows pgx.Rows) (*entity.Role, error) { return scanRole(rows) })
}

// AddRequiredModel vincula o modelo ao cargo; repetir o vínculo não é erro.
func (r *RoleRepo) AddRequiredModel(ctx context.Context, roleID, modelID int64) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO epi_cargo (id_modelo_epi, id_cargo) VALUES ($1, $2)
		ON CONFLICT (id_modelo_epi, id_cargo) DO NOTHING`, modelID, roleID)
	if err != nil {
		return writeErr("add required model", err)
	}
	return nil
}

// RemoveRequiredModel desfaz o vínculo; ErrNotFound se ele não existia.
func (r *RoleRepo) RemoveRequiredModel(ctx context.Context, roleID, modelID int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM epi_cargo WHERE id_modelo_epi = $1 AND id_cargo = $2`, modelID, roleID)
	return deleteResult("remove required model", tag, err)
}
