package export_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/will-aam/stock/internal/domain/catalog"
	"github.com/will-aam/stock/internal/domain/entity"
	"github.com/will-aam/stock/internal/domain/export"
)

var exportNow = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func sampleItems() []entity.CountedItem {
	return []entity.CountedItem{
		{
			ID: "a", Barcode: "123", ProductCode: "P1", Description: "Water 500ml",
			StockBalance: 50, Quantity: 45, Variance: -5, Location: "BODEGA-1", CountedAt: exportNow,
		},
		{
			ID: "b", Barcode: "124", ProductCode: "P2", Description: "Soda 350ml",
			StockBalance: 30, Quantity: 33, Variance: 3, Location: "BODEGA-1", CountedAt: exportNow,
		},
	}
}

func TestCSV_V2(t *testing.T) {
	out := export.CSV(sampleItems(), catalog.V2)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3, "encabezado + una línea por ítem")
	assert.Equal(t, "description;product_code;barcode;counted_quantity;stock_balance;variance;timestamp", lines[0])
	assert.Equal(t, `"Water 500ml";P1;123;45;50;-5;2025-06-15 10:30:00`, lines[1])
	assert.Equal(t, `"Soda 350ml";P2;124;33;30;3;2025-06-15 10:30:00`, lines[2])
}

func TestCSV_V1SinColumnasDeSaldo(t *testing.T) {
	out := export.CSV(sampleItems(), catalog.V1)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, "description;product_code;barcode;counted_quantity;timestamp", lines[0])
	assert.Equal(t, `"Water 500ml";P1;123;45;2025-06-15 10:30:00`, lines[1])
}

func TestCSV_DescripcionConSaltosDeLinea(t *testing.T) {
	items := []entity.CountedItem{{
		Barcode: "123", ProductCode: "P1",
		Description:  "Water\n500ml\r\npremium\redition",
		StockBalance: 1, Quantity: 1, CountedAt: exportNow,
	}}

	out := export.CSV(items, catalog.V2)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2,
		"los saltos dentro de la descripción se colapsan: una línea por ítem, siempre")
	assert.Contains(t, lines[1], `"Water 500ml premium edition"`)
}

func TestCSV_DescripcionConComillas(t *testing.T) {
	items := []entity.CountedItem{{
		Barcode: "123", ProductCode: "P1",
		Description: `Agua "premium" 1L`,
		Quantity:    1, CountedAt: exportNow,
	}}

	out := export.CSV(items, catalog.V2)
	assert.Contains(t, out, `"Agua ""premium"" 1L"`)
}

func TestCSV_Deterministico(t *testing.T) {
	items := sampleItems()
	first := export.CSV(items, catalog.V2)
	second := export.CSV(items, catalog.V2)
	assert.Equal(t, first, second, "misma lista de ítems, mismos bytes")
}

func TestCSV_ListaVaciaSoloEncabezado(t *testing.T) {
	out := export.CSV(nil, catalog.V2)
	assert.Equal(t, "description;product_code;barcode;counted_quantity;stock_balance;variance;timestamp\n", out)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "count_2025-06-15.csv", export.Filename(exportNow, "csv"))
	assert.Equal(t, "count_2025-06-15.pdf", export.Filename(exportNow, "pdf"))
}

// TestCSV_RoundTripConImportador: las triples (código, descripción, barcode)
// exportadas vuelven a entrar por el importador. El orden de columnas del
// export difiere del import, así que el test reordena y quita las comillas de
// la descripción antes de re-importar.
func TestCSV_RoundTripConImportador(t *testing.T) {
	out := export.CSV(sampleItems(), catalog.V2)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")[1:]

	var rebuilt []string
	for _, line := range lines {
		f := strings.Split(line, ";")
		desc := strings.Trim(f[0], `"`)
		// import v2: barcode;product_code;description;stock_balance
		rebuilt = append(rebuilt, strings.Join([]string{f[2], f[1], desc, f[4]}, ";"))
	}

	result, errs := catalog.Parse(strings.Join(rebuilt, "\n"), map[string]struct{}{}, catalog.Options{})
	require.Empty(t, errs)
	require.Len(t, result.Rows, 2)

	for i, item := range sampleItems() {
		assert.Equal(t, item.Barcode, result.Rows[i].Barcode)
		assert.Equal(t, item.ProductCode, result.Rows[i].Code)
		assert.Equal(t, item.Description, result.Rows[i].Description)
		assert.Equal(t, item.StockBalance, result.Rows[i].StockBalance)
	}
}
