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

var _ repository.LotStockRepository = (*LotStockRepo)(nil)

// LotStockRepo implementação de LotStockRepository sobre PostgreSQL (usável com pool ou tx).
type LotStockRepo struct {
	q Querier
}

// NewLotStockRepository constrói o adaptador de saldo por lote. Passar pool ou tx (Querier).
func NewLotStockRepository(q Querier) *LotStockRepo {
	return &LotStockRepo{q: q}
}

const lotSelect = `
	SELECT el.id_estoque_lote, el.id_remessa, el.quantidade_estoque,
	       r.id_modelo_epi, me.nome_epi, r.codigo_lote, r.validade_lote, r.custo_unitario
	FROM estoque_lote el
	JOIN remessa r ON r.id_remessa = el.id_remessa
	JOIN modelo_epi me ON me.id_modelo_epi = r.id_modelo_epi`

func scanLot(row pgx.Row) (*entity.LotStock, error) {
	var l entity.LotStock
	err := row.Scan(&l.ID, &l.ShipmentID, &l.Quantity, &l.ModelID, &l.ModelName, &l.LotCode, &l.LotExpiry, &l.UnitCost)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// Create insere o lote da remessa.
func (r *LotStockRepo) Create(ctx context.Context, lot *entity.LotStock) error {
	query := `
		INSERT INTO estoque_lote (quantidade_estoque, id_remessa)
		VALUES ($1, $2)
		RETURNING id_estoque_lote`
	if err := r.q.QueryRow(ctx, query, lot.Quantity, lot.ShipmentID).Scan(&lot.ID); err != nil {
		return writeErr("insert lot stock", err)
	}
	return nil
}

// GetByID obtém o lote com os dados da remessa; nil se não existir.
func (r *LotStockRepo) GetByID(ctx context.Context, id int64) (*entity.LotStock, error) {
	return r.getOne(ctx, lotSelect+` WHERE el.id_estoque_lote = $1`, id)
}

// Sem linha afetada em applyLotDeltaSQL = saldo insuficiente.
const (
	lockLotSQL       = lotSelect + ` WHERE el.id_estoque_lote = $1 FOR UPDATE OF el`
	applyLotDeltaSQL = `
		UPDATE estoque_lote
		SET quantidade_estoque = quantidade_estoque + $2
		WHERE id_estoque_lote = $1 AND quantidade_estoque + $2 >= 0
		RETURNING quantidade_estoque`
)

// GetForUpdate trava a linha do lote até o fim da transação (SELECT ... FOR UPDATE).
func (r *LotStockRepo) GetForUpdate(ctx context.Context, id int64) (*entity.LotStock, error) {
	return r.getOne(ctx, lockLotSQL, id)
}

func (r *LotStockRepo) getOne(ctx context.Context, query string, id int64) (*entity.LotStock, error) {
	l, err := scanLot(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lot stock: %w", err)
	}
	return l, nil
}

// ApplyDelta soma delta ao saldo sem deixá-lo negativo e devolve o novo saldo.
// ErrInsufficientStock quando o saldo não cobre delta.
func (r *LotStockRepo) ApplyDelta(ctx context.Context, id int64, delta int) (int, error) {
	var qty int
	if err := r.q.QueryRow(ctx, applyLotDeltaSQL, id, delta).Scan(&qty); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrInsufficientStock
		}
		return 0, fmt.Errorf("apply lot delta: %w", err)
	}
	return qty, nil
}

// SetQuantity define o saldo do lote (ajuste de inventário).
func (r *LotStockRepo) SetQuantity(ctx context.Context, id int64, quantity int) error {
	tag, err := r.q.Exec(ctx, `UPDATE estoque_lote SET quantidade_estoque = $2 WHERE id_estoque_lote = $1`, id, quantity)
	if err != nil {
		if isCheckViolation(err) {
			return domain.Invalid("quantidade_estoque não pode ser negativa")
		}
		return fmt.Errorf("set lot quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrLotNotFound
	}
	return nil
}

func (r *LotStockRepo) list(ctx context.Context, op, where string, args ...any) ([]*entity.LotStock, error) {
	rows, err := r.q.Query(ctx, lotSelect+where, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return collect(rows, op, func(rows pgx.Rows) (*entity.LotStock, error) { return scanLot(rows) })
}

func (r *LotStockRepo) List(ctx context.Context) ([]*entity.LotStock, error) {
	return r.list(ctx, "list lot stock", ` ORDER BY el.id_estoque_lote`)
}

func (r *LotStockRepo) ListByShipment(ctx context.Context, shipmentID int64) ([]*entity.LotStock, error) {
	return r.list(ctx, "list lot stock by shipment", ` WHERE el.id_remessa = $1 ORDER BY el.id_estoque_lote`, shipmentID)
}

func (r *LotStockRepo) ListByModel(ctx context.Context, modelID int64) ([]*entity.LotStock, error) {
	return r.list(ctx, "list lot stock by model", ` WHERE r.id_modelo_epi = $1 ORDER BY r.validade_lote, el.id_estoque_lote`, modelID)
}

// ListLowStock lotes com saldo até threshold, do menor para o maior.
func (r *LotStockRepo) ListLowStock(ctx context.Context, threshold int) ([]*entity.LotStock, error) {
	return r.list(ctx, "list low stock", ` WHERE el.quantidade_estoque <= $1 ORDER BY el.quantidade_estoque, me.nome_epi`, threshold)
}

// ListExpiring lotes com saldo cuja validade cai em até days dias (inclui vencidos).
func (r *LotStockRepo) ListExpiring(ctx context.Context, days int) ([]*entity.LotStock, error) {
	return r.list(ctx, "list expiring lots",
		` WHERE el.quantidade_estoque > 0 AND r.validade_lote <= CURRENT_DATE + $1::int ORDER BY r.validade_lote`, days)
}

// DeleteByShipment remove os lotes da remessa.
func (r *LotStockRepo) DeleteByShipment(ctx context.Context, shipmentID int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM estoque_lote WHERE id_remessa = $1`, shipmentID); err != nil {
		return writeErr("delete lot stock", err)
	}
	return nil
}
