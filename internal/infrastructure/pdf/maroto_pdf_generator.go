// Package pdf genera el recibo de venta y el estado de cuenta del cliente con Maroto v2.
//
// Layout del recibo (A5):
//
//	┌───────────────────────────────────────────┐
//	│  HEADER: Tienda            │  Recibo N° + Fecha │
//	│  CLIENTE: nombre                            │
//	│  ───────────────────────────────────────  │
//	│  TABLA: Cant | Producto | Precio | Total    │
//	│  ───────────────────────────────────────  │
//	│  TOTALES: Total / Pagado / Deuda            │
//	└───────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-pos/internal/application/dto"
	"github.com/jhoicas/ventas-pos/internal/application/report"
	"github.com/jhoicas/ventas-pos/pkg/format"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDebt    = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ report.PDFRenderer = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa report.PDFRenderer usando Maroto v2.
// La fuente por defecto no trae glifos jemeres: los rótulos van en inglés.
type MarotoPDFGenerator struct {
	shop string
	loc  *time.Location
}

// NewMarotoPDFGenerator construye el generador. shop es el nombre impreso en el encabezado.
func NewMarotoPDFGenerator(shop string, loc *time.Location) *MarotoPDFGenerator {
	if loc == nil {
		loc = time.UTC
	}
	return &MarotoPDFGenerator{shop: shop, loc: loc}
}

func (g *MarotoPDFGenerator) newDocument(title string, size pagesize.Type) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(size).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(g.shop, true).
		Build()
	return maroto.New(cfg)
}

// SaleReceipt genera el recibo de una venta y devuelve sus bytes.
func (g *MarotoPDFGenerator) SaleReceipt(sale dto.SaleResponse) ([]byte, error) {
	m := g.newDocument(fmt.Sprintf("Receipt #%d", sale.ID), pagesize.A5)

	m.AddRows(g.headerRow("RECEIPT", fmt.Sprintf("#%d", sale.ID), sale.CreatedAt))
	m.AddRows(partyRow("CUSTOMER", sale.Customer.Name))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow("Qty", "Product", "Price", "Total"))
	for _, it := range sale.Items {
		m.AddRows(tableRow(fmt.Sprint(it.Qty), it.ProductName, format.USD(it.Price), format.USD(it.LineTotal)))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow([]totalLine{
		{label: "Total", value: sale.TotalPrice},
		{label: "Paid", value: sale.PaidAmount},
		{label: "Debt", value: sale.Debt, highlight: true},
	}))
	if sale.Remark != "" {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New(sale.Remark, props.Text{Size: 8, Top: 2, Color: colorGray}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// CustomerStatement genera el estado de cuenta: ventas, abonos y deuda total.
func (g *MarotoPDFGenerator) CustomerStatement(st dto.CustomerStatementResponse) ([]byte, error) {
	m := g.newDocument("Statement "+st.Customer.Name, pagesize.A4)

	m.AddRows(g.headerRow("STATEMENT", st.Customer.Name, time.Now()))
	if st.Customer.Phone != "" || st.Customer.Address != "" {
		m.AddRows(partyRow("CONTACT", nonEmpty(st.Customer.Phone, "-")+"   |   "+nonEmpty(st.Customer.Address, "-")))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionRow("SALES"))
	m.AddRows(tableHeaderRow("#", "Date", "Paid", "Total"))
	for _, s := range st.Sales {
		m.AddRows(tableRow(fmt.Sprint(s.ID), format.DateAMPM(s.CreatedAt.In(g.loc)), format.USD(s.PaidAmount), format.USD(s.TotalPrice)))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(sectionRow("PAYMENTS"))
	m.AddRows(tableHeaderRow("#", "Date", "Remark", "Amount"))
	for _, p := range st.Payments {
		m.AddRows(tableRow(fmt.Sprint(p.ID), format.DateAMPM(p.PaymentDate.In(g.loc)), p.Remark, format.USD(p.Amount)))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow([]totalLine{
		{label: "Total sales", value: st.TotalSales},
		{label: "Total paid", value: st.TotalPayments},
		{label: "Debt", value: st.TotalDebt, highlight: true},
	}))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar estado de cuenta: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: tienda (izq) y título + referencia + fecha (der).
func (g *MarotoPDFGenerator) headerRow(title, ref string, at time.Time) core.Row {
	return row.New(18).Add(
		col.New(6).Add(
			text.New(g.shop, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(6).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(ref, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 6,
			}),
			text.New(format.DateAMPM(at.In(g.loc)), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

func partyRow(label, value string) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
		),
	)
}

func sectionRow(label string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(label, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1}),
	))
}

// Columnas de tabla: 2 | 5 | 2 | 3.
func tableHeaderRow(a, b, c, d string) core.Row {
	h := func(label string, size int, al align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: al, Color: colorPrimary, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(7).Add(
		h(a, 2, align.Center),
		h(b, 5, align.Left),
		h(c, 2, align.Right),
		h(d, 3, align.Right),
	)
}

func tableRow(a, b, c, d string) core.Row {
	return row.New(6).Add(
		col.New(2).Add(text.New(a, props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(5).Add(text.New(b, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
		col.New(2).Add(text.New(c, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		col.New(3).Add(text.New(d, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
	)
}

type totalLine struct {
	label     string
	value     decimal.Decimal
	highlight bool
}

// totalsRow: bloque de totales alineado a la derecha, un renglón por línea.
func totalsRow(lines []totalLine) core.Row {
	labels := make([]core.Component, 0, len(lines))
	values := make([]core.Component, 0, len(lines))
	for i, l := range lines {
		top := float64(i*6 + 1)
		p := props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: top, Right: 2}
		v := props.Text{Size: 9, Align: align.Right, Top: top, Right: 1}
		if l.highlight {
			p.Color, v.Color, v.Style = colorDebt, colorDebt, fontstyle.Bold
		}
		labels = append(labels, text.New(l.label+":", p))
		values = append(values, text.New(format.USD(l.value), v))
	}
	return row.New(float64(len(lines)*6+4)).Add(
		col.New(6),
		col.New(3).Add(labels...),
		col.New(3).Add(values...),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
