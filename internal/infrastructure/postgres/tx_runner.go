package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/controle-epi-api/internal/application/inventory"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run abre a transação (READ COMMITTED; os lotes são travados com FOR UPDATE), executa fn com
// os repositórios atados a ela e faz Commit. Qualquer erro de fn desfaz tudo.
func (r *TxRunner) Run(ctx context.Context, fn func(repos inventory.TxRepos) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(txRepos(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func txRepos(q Querier) inventory.TxRepos {
	return inventory.TxRepos{
		Movements:    NewMovementRepository(q),
		Lots:         NewLotStockRepository(q),
		Models:       NewPPEModelRepository(q),
		Shipments:    NewShipmentRepository(q),
		Employees:    NewEmployeeRepository(q),
		Suppliers:    NewSupplierRepository(q),
		Certificates: NewCertificateRepository(q),
	}
}
