package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/controle-epi-api/internal/domain/repository"
)

// StockExportUseCase exporta o saldo de todos os lotes com valorização pelo custo unitário da remessa.
type StockExportUseCase struct {
	lotRepo   repository.LotStockRepository
	generator StockSpreadsheet
}

// NewStockExportUseCase constrói o caso de uso.
func NewStockExportUseCase(lotRepo repository.LotStockRepository, generator StockSpreadsheet) *StockExportUseCase {
	return &StockExportUseCase{lotRepo: lotRepo, generator: generator}
}

// BuildSheet monta as linhas ordenadas por modelo e validade, com os totais.
func (uc *StockExportUseCase) BuildSheet(ctx context.Context) (*StockSheet, error) {
	lots, err := uc.lotRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	sheet := &StockSheet{Rows: make([]StockRow, 0, len(lots)), TotalValue: decimal.Zero, GeneratedAt: time.Now()}
	for _, l := range lots {
		v := l.Value()
		sheet.Rows = append(sheet.Rows, StockRow{
			LotStockID: l.ID,
			ShipmentID: l.ShipmentID,
			ModelID:    l.ModelID,
			ModelName:  l.ModelName,
			LotCode:    l.LotCode,
			LotExpiry:  l.LotExpiry,
			Quantity:   l.Quantity,
			UnitCost:   l.UnitCost,
			Value:      v,
		})
		sheet.TotalQuantity += l.Quantity
		sheet.TotalValue = sheet.TotalValue.Add(v)
	}
	sort.SliceStable(sheet.Rows, func(i, j int) bool {
		a, b := sheet.Rows[i], sheet.Rows[j]
		if a.ModelName != b.ModelName {
			return a.ModelName < b.ModelName
		}
		return a.LotExpiry.Before(b.LotExpiry)
	})
	return sheet, nil
}

// Export devolve o xlsx e o nome de arquivo sugerido.
func (uc *StockExportUseCase) Export(ctx context.Context) ([]byte, string, error) {
	sheet, err := uc.BuildSheet(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("exportar estoque: %w", err)
	}
	data, err := uc.generator.GenerateStockSheet(ctx, sheet)
	if err != nil {
		return nil, "", fmt.Errorf("exportar estoque: %w", err)
	}
	return data, fmt.Sprintf("estoque_%s.xlsx", sheet.GeneratedAt.Format("20060102")), nil
}
