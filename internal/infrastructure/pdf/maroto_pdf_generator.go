// Package pdf gera a ficha de EPI do funcionário (comprovante de entregas, trocas e devoluções).
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  CABEÇALHO: título + data de emissão                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FUNCIONÁRIO: nome, matrícula, CPF, cargo, setor             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Data | Hora | Tipo | EPI | Lote | Qtd.              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TERMO + assinatura + QR de conferência                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/controle-epi-api/internal/application/report"
	"github.com/jhoicas/controle-epi-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

var _ report.DeliverySheetGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa report.DeliverySheetGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	company string
}

// NewMarotoPDFGenerator constrói o gerador; company aparece no cabeçalho e como autor do documento.
func NewMarotoPDFGenerator(company string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{company: nonEmpty(company, "Controle de EPI")}
}

// GenerateDeliverySheet gera o PDF e devolve seus bytes.
func (g *MarotoPDFGenerator) GenerateDeliverySheet(_ context.Context, sheet *report.DeliverySheet) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ficha de EPI", true).
		WithAuthor(g.company, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(sheet))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(employeeRow(sheet))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(sheet.Movements) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Nenhuma movimentação registrada.", props.Text{Size: 8, Align: align.Center, Top: 2, Color: colorGray}),
		)))
	}
	for _, r := range tableDetailRows(sheet.Movements) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(sheet.Movements))

	m.AddRows(line.NewRow(3))
	for _, r := range termRows(sheet) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *MarotoPDFGenerator) headerRow(sheet *report.DeliverySheet) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.company, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("Controle de fornecimento de EPI (NR-6)", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("FICHA DE EPI", props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Emitida em: "+sheet.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

func employeeRow(sheet *report.DeliverySheet) core.Row {
	e := sheet.Employee
	admissao := "—"
	if e.HireDate != nil {
		admissao = e.HireDate.Format("02/01/2006")
	}
	return row.New(20).Add(
		col.New(12).Add(
			text.New("FUNCIONÁRIO", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(e.FullName(), props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(fmt.Sprintf("Matrícula: %s   |   CPF: %s   |   Admissão: %s",
				nonEmpty(e.RegistrationNumber, "—"),
				formatCPF(e.CPF),
				admissao,
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
			text.New(fmt.Sprintf("Cargo: %s   |   Setor: %s",
				nonEmpty(sheet.RoleName, "—"),
				nonEmpty(e.Department, "—"),
			), props.Text{Size: 8, Top: 16, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Data", 2, align.Left),
		h("Hora", 1, align.Center),
		h("Tipo", 2, align.Left),
		h("EPI", 4, align.Left),
		h("Lote", 2, align.Center),
		h("Qtd.", 1, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func tableDetailRows(movs []entity.Movement) []core.Row {
	result := make([]core.Row, 0, len(movs))
	for _, m := range movs {
		cell := props.Text{Size: 8, Top: 1, Left: 1}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(m.Date.Format("02/01/2006"), cell)),
			col.New(1).Add(text.New(m.Time, props.Text{Size: 8, Top: 1, Align: align.Center})),
			col.New(2).Add(text.New(movementLabel(m.Type), cell)),
			col.New(4).Add(text.New(nonEmpty(m.ModelName, fmt.Sprintf("Modelo #%d", m.ModelID)), cell)),
			col.New(2).Add(text.New(fmt.Sprintf("#%d", m.LotStockID), props.Text{Size: 8, Top: 1, Align: align.Center})),
			col.New(1).Add(text.New(fmt.Sprint(m.Quantity), props.Text{Size: 8, Top: 1, Align: align.Right, Right: 1})),
		))
	}
	return result
}

// totalsRow soma por tipo; troca não altera o saldo em posse do funcionário.
func totalsRow(movs []entity.Movement) core.Row {
	var delivered, returned, exchanged int
	for _, m := range movs {
		switch m.Type {
		case entity.MovementTypeDelivery:
			delivered += m.Quantity
		case entity.MovementTypeReturn:
			returned += m.Quantity
		case entity.MovementTypeExchange:
			exchanged += m.Quantity
		}
	}
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(n int) core.Component {
		return text.New(formatMoney(fmt.Sprint(n)), props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	return row.New(16).Add(
		col.New(6),
		col.New(4).Add(label("Entregues:"), label("Devolvidos:"), label("Trocados:")),
		col.New(2).Add(value(delivered), value(returned), value(exchanged)),
	)
}

func termRows(sheet *report.DeliverySheet) []core.Row {
	term := "Declaro ter recebido os equipamentos de proteção individual acima relacionados, " +
		"em perfeito estado, comprometendo-me a usá-los apenas para a finalidade a que se destinam, " +
		"responsabilizar-me por sua guarda e conservação e comunicar qualquer alteração que os torne impróprios para uso."
	qr := fmt.Sprintf("ficha-epi:%s:%s", nonEmpty(sheet.Employee.RegistrationNumber, fmt.Sprint(sheet.Employee.ID)),
		sheet.GeneratedAt.Format("20060102150405"))

	return []core.Row{
		row.New(16).Add(col.New(12).Add(
			text.New(term, props.Text{Size: 8, Color: colorGray, Top: 2}),
		)),
		row.New(30).Add(
			col.New(8).Add(
				text.New("______________________________________________", props.Text{Size: 9, Top: 16}),
				text.New("Assinatura do funcionário", props.Text{Size: 8, Top: 22, Color: colorGray}),
			),
			col.New(4).Add(code.NewQr(qr, props.Rect{Percent: 80, Center: true})),
		),
	}
}

func movementLabel(t entity.MovementType) string {
	switch t {
	case entity.MovementTypeDelivery:
		return "Entrega"
	case entity.MovementTypeExchange:
		return "Troca"
	case entity.MovementTypeReturn:
		return "Devolução"
	case entity.MovementTypeEntry:
		return "Entrada"
	}
	return string(t)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatCPF aplica a máscara 000.000.000-00 a um CPF de 11 dígitos.
func formatCPF(cpf string) string {
	if len(cpf) != 11 {
		return nonEmpty(cpf, "—")
	}
	return cpf[:3] + "." + cpf[3:6] + "." + cpf[6:9] + "-" + cpf[9:]
}

// formatMoney insere pontos de milhar em uma string numérica sem decimais.
// Ex: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
