package report

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
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/will-aam/stock/internal/application/export"
	"github.com/will-aam/stock/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 180, Green: 30, Blue: 30}
)

var _ export.PDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa export.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateCountPDF genera el reporte de conteo y devuelve sus bytes.
// Layout A4: encabezado con ubicación y fecha, tabla de ítems en orden de
// conteo y fila de totales (ítems, cantidad contada, diferencia).
func (g *MarotoPDFGenerator) GenerateCountPDF(
	_ context.Context,
	location string,
	items []entity.CountedItem,
	totals export.Totals,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Conteo Físico", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(location))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, item := range items {
		m.AddRows(itemRow(item))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(totals))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(location string) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Conteo Físico de Inventario", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Ubicación: "+location, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New(time.Now().Format("02/01/2006"), props.Text{
				Size: 10, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	style := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}
	right := style
	right.Align = align.Right
	return row.New(7).Add(
		col.New(4).Add(text.New("Descripción", style)),
		col.New(2).Add(text.New("Código", style)),
		col.New(2).Add(text.New("Cód. Barras", style)),
		col.New(1).Add(text.New("Contado", right)),
		col.New(1).Add(text.New("Sistema", right)),
		col.New(2).Add(text.New("Diferencia", right)),
	)
}

func itemRow(item entity.CountedItem) core.Row {
	varColor := colorGray
	if item.Variance < 0 {
		varColor = colorRed
	}
	return row.New(6).Add(
		col.New(4).Add(text.New(item.Description, props.Text{Size: 8})),
		col.New(2).Add(text.New(item.ProductCode, props.Text{Size: 8})),
		col.New(2).Add(text.New(item.Barcode, props.Text{Size: 8})),
		col.New(1).Add(text.New(fmt.Sprintf("%d", item.Quantity), props.Text{Size: 8, Align: align.Right})),
		col.New(1).Add(text.New(fmt.Sprintf("%d", item.StockBalance), props.Text{Size: 8, Align: align.Right})),
		col.New(2).Add(text.New(fmt.Sprintf("%+d", item.Variance), props.Text{Size: 8, Align: align.Right, Color: varColor})),
	)
}

func totalsRow(totals export.Totals) core.Row {
	bold := props.Text{Style: fontstyle.Bold, Size: 9}
	right := bold
	right.Align = align.Right
	return row.New(8).Add(
		col.New(6).Add(text.New(fmt.Sprintf("Ítems: %d", totals.ItemCount), bold)),
		col.New(3).Add(text.New(fmt.Sprintf("Total contado: %d", totals.TotalCounted), right)),
		col.New(3).Add(text.New(fmt.Sprintf("Diferencia total: %+d", totals.TotalVariance), right)),
	)
}
