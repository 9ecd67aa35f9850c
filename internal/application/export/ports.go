package export

import (
	"context"

	"github.com/will-aam/stock/internal/domain/entity"
)

// Totals agregados de la sesión para los reportes.
type Totals struct {
	ItemCount     int
	TotalCounted  int
	TotalVariance int
}

// PDFGenerator puerto para la representación PDF del reporte de conteo.
type PDFGenerator interface {
	GenerateCountPDF(ctx context.Context, location string, items []entity.CountedItem, totals Totals) ([]byte, error)
}

// ExcelGenerator puerto para el reporte XLSX.
type ExcelGenerator interface {
	GenerateCountXLSX(ctx context.Context, items []entity.CountedItem) ([]byte, error)
}
