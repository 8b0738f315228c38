package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/controle-epi-api/internal/domain"
)

func TestClock_IdaEVolta(t *testing.T) {
	pg, err := clockToPG("14:05:09")
	require.NoError(t, err)
	assert.True(t, pg.Valid)
	assert.Equal(t, "14:05:09", clockFromPG(pg))

	_, err = clockToPG("14h05")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestWriteErr_TraduzCodigosPostgres(t *testing.T) {
	assert.ErrorIs(t, writeErr("x", &pgconn.PgError{Code: "23505"}), domain.ErrDuplicate)
	assert.ErrorIs(t, writeErr("x", &pgconn.PgError{Code: "23503"}), domain.ErrDependentRecords)

	other := errors.New("conexão perdida")
	err := writeErr("insert x", other)
	assert.ErrorIs(t, err, other)
	assert.Contains(t, err.Error(), "insert x")
}

func TestDeleteResult_SemLinhasEhNotFound(t *testing.T) {
	assert.ErrorIs(t, deleteResult("x", pgconn.NewCommandTag("DELETE 0"), nil), domain.ErrNotFound)
	assert.NoError(t, deleteResult("x", pgconn.NewCommandTag("DELETE 1"), nil))
}

func TestLotSQL_BaixaCondicionalETrava(t *testing.T) {
	assert.Contains(t, applyLotDeltaSQL, "quantidade_estoque + $2 >= 0")
	assert.Contains(t, applyLotDeltaSQL, "RETURNING quantidade_estoque")
	assert.Contains(t, lockLotSQL, "FOR UPDATE OF el")
}
