// Package export arma los archivos descargables de una sesión de conteo.
// El CSV es la serialización núcleo (determinística, mismo delimitador que
// la importación); XLSX y PDF son representaciones vía puertos de
// infraestructura.
package export

import (
	"context"
	"fmt"
	"time"

	"github.com/will-aam/stock/internal/domain"
	"github.com/will-aam/stock/internal/domain/catalog"
	"github.com/will-aam/stock/internal/domain/entity"
	domexport "github.com/will-aam/stock/internal/domain/export"
)

// Formatos de descarga soportados.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

// File archivo listo para descargar.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// UseCase genera los archivos de exportación.
type UseCase struct {
	pdf   PDFGenerator
	excel ExcelGenerator
}

// NewUseCase construye el caso de uso.
func NewUseCase(pdf PDFGenerator, excel ExcelGenerator) *UseCase {
	return &UseCase{pdf: pdf, excel: excel}
}

// Export serializa los ítems al formato pedido. version aplica solo a CSV
// (1 = sin columnas de saldo, 2 = con stock_balance y variance).
func (uc *UseCase) Export(ctx context.Context, location string, items []entity.CountedItem, format string, version int) (*File, error) {
	now := time.Now()
	switch format {
	case FormatCSV, "":
		v := catalog.V2
		if version == 1 {
			v = catalog.V1
		}
		return &File{
			Name:        domexport.Filename(now, "csv"),
			ContentType: "text/csv; charset=utf-8",
			Data:        []byte(domexport.CSV(items, v)),
		}, nil
	case FormatXLSX:
		data, err := uc.excel.GenerateCountXLSX(ctx, items)
		if err != nil {
			return nil, fmt.Errorf("generar XLSX: %w", err)
		}
		return &File{
			Name:        domexport.Filename(now, "xlsx"),
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        data,
		}, nil
	case FormatPDF:
		totals := Totals{}
		for _, item := range items {
			totals.ItemCount++
			totals.TotalCounted += item.Quantity
			totals.TotalVariance += item.Variance
		}
		data, err := uc.pdf.GenerateCountPDF(ctx, location, items, totals)
		if err != nil {
			return nil, fmt.Errorf("generar PDF: %w", err)
		}
		return &File{
			Name:        domexport.Filename(now, "pdf"),
			ContentType: "application/pdf",
			Data:        data,
		}, nil
	default:
		return nil, domain.ErrInvalidInput
	}
}
