package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/jhoicas/controle-epi-api/internal/domain/entity"
	"github.com/jhoicas/controle-epi-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementação de MovementRepository sobre PostgreSQL (usável com pool ou tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository constrói o adaptador de movimentações. Passar pool ou tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementSelect = `
	SELECT m.id, m.tipo_movimentacao, m.data, m.hora, m.quantidade, m.descricao,
	       m.id_funcionario, m.id_modelo_epi, m.id_estoque_lote,
	       TRIM(f.nome_funcionario || ' ' || f.sobrenome_funcionario), me.nome_epi
	FROM movimentacao_estoque m
	JOIN funcionario f ON f.id_funcionario = m.id_funcionario
	JOIN modelo_epi me ON me.id_modelo_epi = m.id_modelo_epi`

const movementOrder = ` ORDER BY m.data DESC, m.hora DESC, m.id DESC`

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var (
		m    entity.Movement
		tipo string
		hora pgtype.Time
	)
	err := row.Scan(&m.ID, &tipo, &m.Date, &hora, &m.Quantity, &m.Note,
		&m.EmployeeID, &m.ModelID, &m.LotStockID, &m.EmployeeName, &m.ModelName)
	if err != nil {
		return nil, err
	}
	m.Type = entity.MovementType(tipo)
	m.Time = clockFromPG(hora)
	return &m, nil
}

// Create insere a movimentação; o ajuste de saldo é responsabilidade de quem chama.
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	hora, err := clockToPG(m.Time)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO movimentacao_estoque
			(tipo_movimentacao, data, hora, quantidade, descricao, id_funcionario, id_modelo_epi, id_estoque_lote)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err = r.q.QueryRow(ctx, query,
		string(m.Type), m.Date, hora, m.Quantity, m.Note, m.EmployeeID, m.ModelID, m.LotStockID,
	).Scan(&m.ID)
	if err != nil {
		return writeErr("insert movement", err)
	}
	return nil
}

func (r *MovementRepo) GetByID(ctx context.Context, id int64) (*entity.Movement, error) {
	m, err := scanMovement(r.q.QueryRow(ctx, movementSelect+` WHERE m.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

func (r *MovementRepo) list(ctx context.Context, op, where string, args ...any) ([]*entity.Movement, error) {
	rows, err := r.q.Query(ctx, movementSelect+where+movementOrder, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return collect(rows, op, func(rows pgx.Rows) (*entity.Movement, error) { return scanMovement(rows) })
}

// List todas as movimentações, mais recentes primeiro.
func (r *MovementRepo) List(ctx context.Context) ([]*entity.Movement, error) {
	return r.list(ctx, "list movements", "")
}

func (r *MovementRepo) ListByType(ctx context.Context, t entity.MovementType) ([]*entity.Movement, error) {
	return r.list(ctx, "list movements by type", ` WHERE m.tipo_movimentacao = $1`, string(t))
}

func (r *MovementRepo) ListByEmployee(ctx context.Context, employeeID int64) ([]*entity.Movement, error) {
	return r.list(ctx, "list movements by employee", ` WHERE m.id_funcionario = $1`, employeeID)
}

func (r *MovementRepo) ListByModel(ctx context.Context, modelID int64) ([]*entity.Movement, error) {
	return r.list(ctx, "list movements by model", ` WHERE m.id_modelo_epi = $1`, modelID)
}

// CountByShipment quantas movimentações referenciam o lote da remessa.
func (r *MovementRepo) CountByShipment(ctx context.Context, shipmentID int64) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM movimentacao_estoque m
		JOIN estoque_lote el ON el.id_estoque_lote = m.id_estoque_lote
		WHERE el.id_remessa = $1`
	var n int
	if err := r.q.QueryRow(ctx, query, shipmentID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count movements by shipment: %w", err)
	}
	return n, nil
}
