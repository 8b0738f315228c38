// Package xlsx grava a planilha de saldo por lote.
package xlsx

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/controle-epi-api/internal/application/report"
)

var _ report.StockSpreadsheet = (*ExcelizeStockSheet)(nil)

const sheetName = "Estoque"

// ExcelizeStockSheet implementa report.StockSpreadsheet com excelize.
type ExcelizeStockSheet struct{}

func NewExcelizeStockSheet() *ExcelizeStockSheet { return &ExcelizeStockSheet{} }

// GenerateStockSheet uma linha por lote mais a linha de totais.
func (g *ExcelizeStockSheet) GenerateStockSheet(_ context.Context, s *report.StockSheet) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), sheetName); err != nil {
		return nil, fmt.Errorf("xlsx: renomear aba: %w", err)
	}

	header := []interface{}{
		"id_estoque_lote",
		"id_remessa",
		"id_modelo_epi",
		"modelo",
		"lote",
		"validade",
		"quantidade",
		"custo_unitario",
		"valor",
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("xlsx: cabeçalho: %w", err)
	}
	if bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		_ = f.SetRowStyle(sheetName, 1, 1, bold)
	}

	row := 2
	for _, r := range s.Rows {
		var cost interface{} = ""
		if r.UnitCost != nil {
			cost = r.UnitCost.InexactFloat64()
		}
		excelRow := []interface{}{
			r.LotStockID,
			r.ShipmentID,
			r.ModelID,
			r.ModelName,
			r.LotCode,
			r.LotExpiry.Format("2006-01-02"),
			r.Quantity,
			cost,
			r.Value.InexactFloat64(),
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, fmt.Errorf("xlsx: célula: %w", err)
		}
		if err := f.SetSheetRow(sheetName, cell, &excelRow); err != nil {
			return nil, fmt.Errorf("xlsx: linha %d: %w", row, err)
		}
		row++
	}

	totals := []interface{}{"TOTAL", "", "", "", "", "", s.TotalQuantity, "", s.TotalValue.InexactFloat64()}
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return nil, fmt.Errorf("xlsx: célula: %w", err)
	}
	if err := f.SetSheetRow(sheetName, cell, &totals); err != nil {
		return nil, fmt.Errorf("xlsx: totais: %w", err)
	}
	_ = f.SetColWidth(sheetName, "D", "D", 32)

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("xlsx: gravar: %w", err)
	}
	return buf.Bytes(), nil
}
