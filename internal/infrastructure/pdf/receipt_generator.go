// Package pdf implementa la generación del comprobante de venta en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio  │  N° Comprobante + Fecha      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Desc. | Subtotal          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Impuesto / TOTAL                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CRÉDITO (si aplica): tabla de cuotas con vencimientos       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	appsales "github.com/Peluchito08/Sistema-guitarshop-sub000/internal/application/sales"
	"github.com/Peluchito08/Sistema-guitarshop-sub000/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReceiptGenerator implementa sales.ReceiptGenerator usando Maroto v2.
type MarotoReceiptGenerator struct {
	businessName string
}

// NewMarotoReceiptGenerator construye el generador con el nombre del negocio
// que encabeza cada comprobante.
func NewMarotoReceiptGenerator(businessName string) *MarotoReceiptGenerator {
	return &MarotoReceiptGenerator{businessName: businessName}
}

// GenerateReceipt genera el PDF del comprobante y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceipt(_ context.Context, data *appsales.ReceiptData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de venta "+data.Order.Number, true).
		WithAuthor(g.businessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.businessName, data.Order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(data.Lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(data.Order))

	if data.Schedule != nil && len(data.Installments) > 0 {
		m.AddRows(line.NewRow(3))
		for _, r := range creditRows(data.Installments) {
			m.AddRows(r)
		}
	}

	if data.Order.Status == entity.OrderStatusVoided {
		m.AddRows(voidedRow())
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del negocio (izq) y número + fecha (der).
func headerRow(businessName string, order *entity.SalesOrder) core.Row {
	fecha := order.CreatedAt.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(businessName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Comprobante de venta", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(order.Number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 2,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
			text.New("Pago: "+paymentLabel(order.PaymentMethod), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 5, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Desc.", 1, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// tableLineRows: una fila por línea de la venta.
func tableLineRows(lines []appsales.ReceiptLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, rl := range lines {
		l := rl.Line
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", l.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				rl.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"$"+l.UnitPrice.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				"$"+l.Discount.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"$"+l.Subtotal.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(order *entity.SalesOrder) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(3).Add(
			label("Subtotal:"),
			label("Impuesto:"),
			grandLabel("TOTAL:"),
		),
		col.New(3).Add(
			value("$"+order.Subtotal.StringFixed(2)),
			value("$"+order.Tax.StringFixed(2)),
			grandValue("$"+order.Total.StringFixed(2)),
		),
		col.New(3),
	)
}

// creditRows: tabla de cuotas del plan de crédito.
func creditRows(installments []*entity.Installment) []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New("PLAN DE CRÉDITO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(6).Add(
			col.New(2).Add(text.New("Cuota", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1,
			})),
			col.New(5).Add(text.New("Vencimiento", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Left, Top: 1,
			})),
			col.New(5).Add(text.New("Monto", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		),
	}
	for _, inst := range installments {
		rows = append(rows, row.New(5).Add(
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", inst.Seq),
				props.Text{Size: 8, Align: align.Center, Top: 0.5},
			)),
			col.New(5).Add(text.New(
				inst.DueDate.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Left, Top: 0.5},
			)),
			col.New(5).Add(text.New(
				"$"+inst.AmountDue.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 0.5, Right: 1},
			)),
		))
	}
	return rows
}

// voidedRow: marca visible cuando el comprobante corresponde a una venta anulada.
func voidedRow() core.Row {
	return row.New(12).Add(col.New(12).Add(
		text.New("*** VENTA ANULADA ***", props.Text{
			Style: fontstyle.Bold, Size: 12, Align: align.Center,
			Color: &props.Color{Red: 180, Green: 30, Blue: 30}, Top: 3,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func paymentLabel(method string) string {
	switch method {
	case entity.PaymentMethodCredit:
		return "Crédito"
	case entity.PaymentMethodCash:
		return "Contado"
	default:
		return method
	}
}
