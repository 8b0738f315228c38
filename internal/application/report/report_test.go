package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/controle-epi-api/internal/application/report"
	"github.com/jhoicas/controle-epi-api/internal/domain"
	"github.com/jhoicas/controle-epi-api/internal/domain/entity"
	"github.com/jhoicas/controle-epi-api/internal/domain/repository"
)

type employees struct {
	repository.EmployeeRepository
	e *entity.Employee
}

func (r employees) GetByID(_ context.Context, id int64) (*entity.Employee, error) {
	if r.e != nil && r.e.ID == id {
		return r.e, nil
	}
	return nil, nil
}

type roles struct{ repository.RoleRepository }

func (roles) GetByID(_ context.Context, id int64) (*entity.Role, error) {
	return &entity.Role{ID: id, Name: "Eletricista"}, nil
}

type movements struct {
	repository.MovementRepository
	list []*entity.Movement
}

func (r movements) ListByEmployee(context.Context, int64) ([]*entity.Movement, error) {
	return r.list, nil
}

type lots struct {
	repository.LotStockRepository
	list []*entity.LotStock
}

func (r lots) List(context.Context) ([]*entity.LotStock, error) { return r.list, nil }

type captureSheet struct{ got *report.DeliverySheet }

func (c *captureSheet) GenerateDeliverySheet(_ context.Context, s *report.DeliverySheet) ([]byte, error) {
	c.got = s
	return []byte("%PDF"), nil
}

type captureStock struct{ got *report.StockSheet }

func (c *captureStock) GenerateStockSheet(_ context.Context, s *report.StockSheet) ([]byte, error) {
	c.got = s
	return []byte("xlsx"), nil
}

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestDeliverySheet_OrdenaHistorico(t *testing.T) {
	emp := &entity.Employee{ID: 7, FirstName: "Rita", RegistrationNumber: "M-007", RoleID: 2}
	movs := movements{list: []*entity.Movement{
		{ID: 3, Type: entity.MovementTypeExchange, Date: day("2024-05-02"), Time: "09:00:00"},
		{ID: 1, Type: entity.MovementTypeDelivery, Date: day("2024-01-10"), Time: "14:00:00"},
		{ID: 2, Type: entity.MovementTypeDelivery, Date: day("2024-01-10"), Time: "08:00:00"},
	}}
	gen := &captureSheet{}
	uc := report.NewDeliverySheetUseCase(employees{e: emp}, roles{}, movs, gen)

	data, name, err := uc.Generate(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), data)
	assert.Equal(t, "ficha_epi_M-007.pdf", name)

	require.NotNil(t, gen.got)
	assert.Equal(t, "Eletricista", gen.got.RoleName)
	require.Len(t, gen.got.Movements, 3)
	assert.Equal(t, int64(2), gen.got.Movements[0].ID)
	assert.Equal(t, int64(1), gen.got.Movements[1].ID)
	assert.Equal(t, int64(3), gen.got.Movements[2].ID)

	_, _, err = uc.Generate(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func TestStockExport_ValorizaPeloCusto(t *testing.T) {
	cost := decimal.RequireFromString("2.35")
	repo := lots{list: []*entity.LotStock{
		{ID: 2, ModelName: "Protetor auricular", Quantity: 100, UnitCost: &cost, LotExpiry: day("2025-01-01")},
		{ID: 1, ModelName: "Capacete", Quantity: 4, LotExpiry: day("2026-01-01")},
	}}
	gen := &captureStock{}
	uc := report.NewStockExportUseCase(repo, gen)

	data, name, err := uc.Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx"), data)
	assert.Regexp(t, `^estoque_\d{8}\.xlsx$`, name)

	require.NotNil(t, gen.got)
	require.Len(t, gen.got.Rows, 2)
	assert.Equal(t, "Capacete", gen.got.Rows[0].ModelName)
	assert.True(t, gen.got.Rows[0].Value.IsZero())
	assert.True(t, gen.got.Rows[1].Value.Equal(decimal.RequireFromString("235")))
	assert.Equal(t, 104, gen.got.TotalQuantity)
	assert.True(t, gen.got.TotalValue.Equal(decimal.RequireFromString("235")))
}
