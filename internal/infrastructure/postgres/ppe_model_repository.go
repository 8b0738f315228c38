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

var _ repository.PPEModelRepository = (*PPEModelRepo)(nil)

// PPEModelRepo implementação de PPEModelRepository sobre PostgreSQL (usável com pool ou tx).
type PPEModelRepo struct {
	q Querier
}

// NewPPEModelRepository constrói o adaptador de modelos de EPI. Passar pool ou tx (Querier).
func NewPPEModelRepository(q Querier) *PPEModelRepo {
	return &PPEModelRepo{q: q}
}

const modelColumns = `me.id_modelo_epi, me.nome_epi, me.quantidade, me.descartavel, me.rastreavel,
	me.descricao_epi, me.id_marca, me.id_categoria, me.foto_epi_path`

func scanModel(row pgx.Row) (*entity.PPEModel, error) {
	var m entity.PPEModel
	err := row.Scan(&m.ID, &m.Name, &m.Quantity, &m.Disposable, &m.Traceable,
		&m.Description, &m.BrandID, &m.CategoryID, &m.PhotoPath)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create insere o modelo com quantidade 0.
func (r *PPEModelRepo) Create(ctx context.Context, m *entity.PPEModel) error {
	query := `
		INSERT INTO modelo_epi (nome_epi, quantidade, descartavel, rastreavel, descricao_epi, id_marca, id_categoria)
		VALUES ($1, 0, $2, $3, $4, $5, $6)
		RETURNING id_modelo_epi`
	err := r.q.QueryRow(ctx, query, m.Name, m.Disposable, m.Traceable, m.Description, m.BrandID, m.CategoryID).Scan(&m.ID)
	if err != nil {
		return writeErr("insert ppe model", err)
	}
	m.Quantity = 0
	return nil
}

func (r *PPEModelRepo) GetByID(ctx context.Context, id int64) (*entity.PPEModel, error) {
	m, err := scanModel(r.q.QueryRow(ctx, `SELECT `+modelColumns+` FROM modelo_epi me WHERE me.id_modelo_epi = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ppe model: %w", err)
	}
	return m, nil
}

// Update altera apenas os campos descritivos.
func (r *PPEModelRepo) Update(ctx context.Context, m *entity.PPEModel) error {
	query := `
		UPDATE modelo_epi
		SET nome_epi = $2, descartavel = $3, rastreavel = $4, descricao_epi = $5, id_marca = $6, id_categoria = $7
		WHERE id_modelo_epi = $1`
	tag, err := r.q.Exec(ctx, query, m.ID, m.Name, m.Disposable, m.Traceable, m.Description, m.BrandID, m.CategoryID)
	if err != nil {
		return writeErr("update ppe model", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPPEModelNotFound
	}
	return nil
}

func (r *PPEModelRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM modelo_epi WHERE id_modelo_epi = $1`, id)
	return deleteResult("delete ppe model", tag, err)
}

func (r *PPEModelRepo) list(ctx context.Context, op, query string, args ...any) ([]*entity.PPEModel, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return collect(rows, op, func(rows pgx.Rows) (*entity.PPEModel, error) { return scanModel(rows) })
}

func (r *PPEModelRepo) List(ctx context.Context) ([]*entity.PPEModel, error) {
	return r.list(ctx, "list ppe models", `SELECT `+modelColumns+` FROM modelo_epi me ORDER BY me.nome_epi`)
}

func (r *PPEModelRepo) ListByCategory(ctx context.Context, categoryID int64) ([]*entity.PPEModel, error) {
	return r.list(ctx, "list ppe models by category",
		`SELECT `+modelColumns+` FROM modelo_epi me WHERE me.id_categoria = $1 ORDER BY me.nome_epi`, categoryID)
}

// ListByRole modelos exigidos para o cargo (epi_cargo).
func (r *PPEModelRepo) ListByRole(ctx context.Context, roleID int64) ([]*entity.PPEModel, error) {
	return r.list(ctx, "list ppe models by role",
		`SELECT `+modelColumns+`
		 FROM modelo_epi me
		 JOIN epi_cargo ec ON ec.id_modelo_epi = me.id_modelo_epi
		 WHERE ec.id_cargo = $1
		 ORDER BY me.nome_epi`, roleID)
}

// AdjustQuantity soma delta ao agregado do modelo sem deixá-lo negativo e devolve o novo valor.
func (r *PPEModelRepo) AdjustQuantity(ctx context.Context, id int64, delta int) (int, error) {
	query := `
		UPDATE modelo_epi
		SET quantidade = quantidade + $2
		WHERE id_modelo_epi = $1 AND quantidade + $2 >= 0
		RETURNING quantidade`
	var qty int
	if err := r.q.QueryRow(ctx, query, id, delta).Scan(&qty); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrInsufficientStock
		}
		return 0, fmt.Errorf("adjust ppe model quantity: %w", err)
	}
	return qty, nil
}

func (r *PPEModelRepo) UpdatePhoto(ctx context.Context, id int64, path string) error {
	tag, err := r.q.Exec(ctx, `UPDATE modelo_epi SET foto_epi_path = $2 WHERE id_modelo_epi = $1`, id, path)
	if err != nil {
		return fmt.Errorf("update ppe model photo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPPEModelNotFound
	}
	return nil
}

// ListRequirements para cada modelo exigido por algum cargo: saldo agregado, número de
// funcionários nesses cargos e o custo unitário da remessa mais recente.
func (r *PPEModelRepo) ListRequirements(ctx context.Context) ([]repository.ModelRequirement, error) {
	query := `
		SELECT me.id_modelo_epi, me.nome_epi, me.quantidade,
		       COUNT(DISTINCT f.id_funcionario) AS exigido,
		       (SELECT r.custo_unitario FROM remessa r
		         WHERE r.id_modelo_epi = me.id_modelo_epi AND r.custo_unitario IS NOT NULL
		         ORDER BY r.data_entrega DESC, r.id_remessa DESC LIMIT 1) AS ultimo_custo
		FROM modelo_epi me
		JOIN epi_cargo ec ON ec.id_modelo_epi = me.id_modelo_epi
		LEFT JOIN funcionario f ON f.id_cargo = ec.id_cargo
		GROUP BY me.id_modelo_epi, me.nome_epi, me.quantidade
		ORDER BY me.nome_epi`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list requirements: %w", err)
	}
	defer rows.Close()
	var out []repository.ModelRequirement
	for rows.Next() {
		var req repository.ModelRequirement
		if err := rows.Scan(&req.ModelID, &req.ModelName, &req.Quantity, &req.Required, &req.LastUnitCost); err != nil {
			return nil, fmt.Errorf("list requirements: scan: %w", err)
		}
		out = append(out, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list requirements: %w", err)
	}
	return out, nil
}
