// Package report genera las representaciones descargables (XLSX, PDF) del
// reporte de conteo físico.
package report

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/will-aam/stock/internal/application/export"
	"github.com/will-aam/stock/internal/domain/entity"
)

var _ export.ExcelGenerator = (*ExcelGenerator)(nil)

// ExcelGenerator implementa export.ExcelGenerator usando excelize.
type ExcelGenerator struct{}

// NewExcelGenerator construye el generador.
func NewExcelGenerator() *ExcelGenerator { return &ExcelGenerator{} }

// GenerateCountXLSX una hoja, una fila de encabezado y una fila por ítem en
// orden de conteo.
func (g *ExcelGenerator) GenerateCountXLSX(_ context.Context, items []entity.CountedItem) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Sheet1"

	headers := []string{"Description", "Product Code", "Barcode", "Counted Qty", "Stock Balance", "Variance", "Location", "Counted At"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("encabezado XLSX: %w", err)
		}
	}

	for i, item := range items {
		row := i + 2
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), item.Description)
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), item.ProductCode)
		_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", row), item.Barcode)
		_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", row), item.Quantity)
		_ = f.SetCellValue(sheet, fmt.Sprintf("E%d", row), item.StockBalance)
		_ = f.SetCellValue(sheet, fmt.Sprintf("F%d", row), item.Variance)
		_ = f.SetCellValue(sheet, fmt.Sprintf("G%d", row), item.Location)
		_ = f.SetCellValue(sheet, fmt.Sprintf("H%d", row), item.CountedAt.Format("2006-01-02 15:04:05"))
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("escribir XLSX: %w", err)
	}
	return buf.Bytes(), nil
}
