package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/controle-epi-api/internal/domain"
	"github.com/jhoicas/controle-epi-api/internal/domain/entity"
	"github.com/jhoicas/controle-epi-api/internal/domain/repository"
)

var _ repository.ShipmentRepository = (*ShipmentRepo)(nil)

// ShipmentRepo implementação de ShipmentRepository sobre PostgreSQL (usável com pool ou tx).
type ShipmentRepo struct {
	q Querier
}

// NewShipmentRepository constrói o adaptador de remessas. Passar pool ou tx (Querier).
func NewShipmentRepository(q Querier) *ShipmentRepo {
	return &ShipmentRepo{q: q}
}

const shipmentSelect = `
	SELECT id_remessa, codigo_lote, quantidade, data_entrega, validade_lote, nota_fiscal,
	       observacoes, custo_unitario, id_fornecedor, id_modelo_epi, id_ca
	FROM remessa`

func scanShipment(row pgx.Row) (*entity.Shipment, error) {
	var s entity.Shipment
	err := row.Scan(&s.ID, &s.LotCode, &s.Quantity, &s.DeliveryDate, &s.LotExpiry, &s.InvoiceNumber,
		&s.Notes, &s.UnitCost, &s.SupplierID, &s.ModelID, &s.CertificateID)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ShipmentRepo) Create(ctx context.Context, s *entity.Shipment) error {
	query := `
		INSERT INTO remessa
			(codigo_lote, quantidade, data_entrega, validade_lote, nota_fiscal, observacoes,
			 custo_unitario, id_fornecedor, id_modelo_epi, id_ca)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id_remessa`
	err := r.q.QueryRow(ctx, query,
		s.LotCode, s.Quantity, s.DeliveryDate, s.LotExpiry, s.InvoiceNumber, s.Notes,
		s.UnitCost, s.SupplierID, s.ModelID, s.CertificateID,
	).Scan(&s.ID)
	if err != nil {
		return writeErr("insert shipment", err)
	}
	return nil
}

func (r *ShipmentRepo) GetByID(ctx context.Context, id int64) (*entity.Shipment, error) {
	return r.getOne(ctx, shipmentSelect+` WHERE id_remessa = $1`, id)
}

// GetForUpdate trava a remessa até o fim da transação.
func (r *ShipmentRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Shipment, error) {
	return r.getOne(ctx, shipmentSelect+` WHERE id_remessa = $1 FOR UPDATE`, id)
}

func (r *ShipmentRepo) getOne(ctx context.Context, query string, id int64) (*entity.Shipment, error) {
	s, err := scanShipment(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	return s, nil
}

// Update não altera quantidade nem modelo.
func (r *ShipmentRepo) Update(ctx context.Context, s *entity.Shipment) error {
	query := `
		UPDATE remessa
		SET codigo_lote = $2, data_entrega = $3, validade_lote = $4, nota_fiscal = $5,
		    observacoes = $6, custo_unitario = $7, id_fornecedor = $8, id_ca = $9
		WHERE id_remessa = $1`
	tag, err := r.q.Exec(ctx, query,
		s.ID, s.LotCode, s.DeliveryDate, s.LotExpiry, s.InvoiceNumber, s.Notes, s.UnitCost, s.SupplierID, s.CertificateID)
	if err != nil {
		return writeErr("update shipment", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrShipmentNotFound
	}
	return nil
}

func (r *ShipmentRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM remessa WHERE id_remessa = $1`, id)
	return deleteResult("delete shipment", tag, err)
}

func (r *ShipmentRepo) list(ctx context.Context, op, where string, args ...any) ([]*entity.Shipment, error) {
	rows, err := r.q.Query(ctx, shipmentSelect+where+` ORDER BY data_entrega DESC, id_remessa DESC`, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return collect(rows, op, func(rows pgx.Rows) (*entity.Shipment, error) { return scanShipment(rows) })
}

func (r *ShipmentRepo) List(ctx context.Context) ([]*entity.Shipment, error) {
	return r.list(ctx, "list shipments", "")
}

func (r *ShipmentRepo) ListBySupplier(ctx context.Context, supplierID int64) ([]*entity.Shipment, error) {
	return r.list(ctx, "list shipments by supplier", ` WHERE id_fornecedor = $1`, supplierID)
}

func (r *ShipmentRepo) ListByModel(ctx context.Context, modelID int64) ([]*entity.Shipment, error) {
	return r.list(ctx, "list shipments by model", ` WHERE id_modelo_epi = $1`, modelID)
}

// ListByPeriod remessas com data_entrega entre from e to, inclusive.
func (r *ShipmentRepo) ListByPeriod(ctx context.Context, from, to time.Time) ([]*entity.Shipment, error) {
	return r.list(ctx, "list shipments by period", ` WHERE data_entrega BETWEEN $1 AND $2`, from, to)
}
