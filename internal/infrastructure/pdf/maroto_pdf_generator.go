// Package pdf renders the downloadable documents of the admin panel with
// Maroto v2: the per-order receipt and the low-stock purchasing report.
//
// A4 layout of the order receipt:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Store name  │  Order number + date                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CUSTOMER: name + email                                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Qty | Item (size/color) | Unit price | Subtotal     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALS: Subtotal / Shipping / TOTAL                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
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
	coreentity "github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/velvetcart/admin-api/internal/application/dto"
	"github.com/velvetcart/admin-api/internal/application/report"
	"github.com/velvetcart/admin-api/internal/domain/entity"
)

// ── Color palette ─────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 30, Green: 30, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 40, Blue: 40}
)

const storeName = "VelvetCart"

var _ report.PDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implements report.PDFGenerator using Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator builds the generator.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateOrderPDF renders the order receipt and returns its bytes.
func (g *MarotoPDFGenerator) GenerateOrderPDF(_ context.Context, order *entity.Order) ([]byte, error) {
	m := maroto.New(newConfig("Order " + order.Number))

	m.AddRows(orderHeaderRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(itemsHeaderRow())
	for _, r := range itemRows(order.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(order))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate order document: %w", err)
	}
	return doc.GetBytes(), nil
}

// GenerateLowStockPDF renders the low-stock report and returns its bytes.
func (g *MarotoPDFGenerator) GenerateLowStockPDF(_ context.Context, alerts []dto.LowStockAlertDTO, generatedAt time.Time) ([]byte, error) {
	m := maroto.New(newConfig("Low Stock Report"))

	m.AddRows(reportHeaderRow(generatedAt, len(alerts)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(alertsHeaderRow())
	for _, r := range alertRows(alerts) {
		m.AddRows(r)
	}
	if len(alerts) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("All products are above their low-stock thresholds.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate low stock document: %w", err)
	}
	return doc.GetBytes(), nil
}

func newConfig(title string) *coreentity.Config {
	return config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(storeName, true).
		Build()
}

// ── Order receipt sections ────────────────────────────────────────────────────

// orderHeaderRow: store name (left), order number plus date (right).
func orderHeaderRow(order *entity.Order) core.Row {
	date := order.CreatedAt.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Order receipt", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ORDER", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(order.Number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Date: "+date, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// customerRow: buyer name plus contact.
func customerRow(order *entity.Order) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("CUSTOMER", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   %s   |   Status: %s",
				order.CustomerName,
				nonEmpty(order.CustomerEmail, "—"),
				order.Status,
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// itemsHeaderRow: table header for the order lines.
func itemsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qty", 1, align.Center),
		h("Item", 6, align.Left),
		h("Unit price", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// itemRows: one row per order line, variant in parentheses.
func itemRows(items []entity.OrderItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		name := it.ProductName
		if it.Size != "" || it.Color != "" {
			name = fmt.Sprintf("%s (%s/%s)", it.ProductName, it.Size, it.Color)
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"$"+it.UnitPrice.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"$"+it.Subtotal.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: right-aligned totals block.
func totalsRow(order *entity.Order) core.Row {
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
			label("Shipping:"),
			grandLabel("TOTAL:"),
		),
		col.New(3).Add(
			value("$"+order.Subtotal.StringFixed(2)),
			value("$"+order.ShippingCost.StringFixed(2)),
			grandValue("$"+order.Total.StringFixed(2)),
		),
		col.New(3),
	)
}

// ── Low-stock report sections ─────────────────────────────────────────────────

func reportHeaderRow(generatedAt time.Time, count int) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Low stock report", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("%d product(s) below threshold", count), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: colorAlert, Top: 3,
			}),
			text.New("Generated: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

func alertsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Product", 4, align.Left),
		h("Stock", 1, align.Center),
		h("Threshold", 2, align.Center),
		h("Severity", 1, align.Center),
		h("Low variants", 2, align.Left),
	)
}

func alertRows(alerts []dto.LowStockAlertDTO) []core.Row {
	result := make([]core.Row, 0, len(alerts))
	for _, a := range alerts {
		severityColor := colorGray
		if a.AlertType == "critical" {
			severityColor = colorAlert
		}
		variants := ""
		for i, v := range a.LowVariants {
			if i > 0 {
				variants += ", "
			}
			variants += fmt.Sprintf("%s/%s: %d", v.Size, v.Color, v.Quantity)
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(a.SKU, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(a.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", a.TotalStock),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", a.LowStockThreshold),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(a.AlertType, props.Text{
				Size: 8, Align: align.Center, Top: 1, Color: severityColor,
			})),
			col.New(2).Add(text.New(variants, props.Text{
				Size: 7, Top: 1, Left: 1, Color: colorGray,
			})),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
