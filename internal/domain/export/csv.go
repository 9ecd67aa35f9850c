// Package export serializa los ítems de una sesión de conteo a texto
// delimitado. La salida es determinística: misma lista de ítems, mismos
// bytes (el nombre de archivo con fecha no forma parte del cuerpo).
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/will-aam/stock/internal/domain/catalog"
	"github.com/will-aam/stock/internal/domain/entity"
)

// Encabezados fijos por versión de esquema; mismo delimitador que la
// importación.
const (
	headerV1 = "description;product_code;barcode;counted_quantity;timestamp"
	headerV2 = "description;product_code;barcode;counted_quantity;stock_balance;variance;timestamp"

	timeLayout = "2006-01-02 15:04:05"
)

var newlineCollapser = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// CSV emite una línea de encabezado y una línea por ítem en orden de lista
// (orden de conteo). La descripción siempre va entre comillas y sus saltos
// de línea se colapsan a un espacio, garantizando exactamente una línea de
// salida por ítem.
func CSV(items []entity.CountedItem, v catalog.Version) string {
	var b strings.Builder
	if v == catalog.V2 {
		b.WriteString(headerV2)
	} else {
		b.WriteString(headerV1)
	}
	b.WriteString("\n")

	for _, item := range items {
		b.WriteString(quoteDescription(item.Description))
		b.WriteString(catalog.Delimiter)
		b.WriteString(item.ProductCode)
		b.WriteString(catalog.Delimiter)
		b.WriteString(item.Barcode)
		b.WriteString(catalog.Delimiter)
		b.WriteString(fmt.Sprintf("%d", item.Quantity))
		if v == catalog.V2 {
			b.WriteString(catalog.Delimiter)
			b.WriteString(fmt.Sprintf("%d", item.StockBalance))
			b.WriteString(catalog.Delimiter)
			b.WriteString(fmt.Sprintf("%d", item.Variance))
		}
		b.WriteString(catalog.Delimiter)
		b.WriteString(item.CountedAt.Format(timeLayout))
		b.WriteString("\n")
	}
	return b.String()
}

// Filename nombre de descarga con la fecha del conteo, fuera del cuerpo
// serializado para no romper el determinismo.
func Filename(t time.Time, ext string) string {
	return fmt.Sprintf("count_%s.%s", t.Format("2006-01-02"), ext)
}

func quoteDescription(desc string) string {
	desc = newlineCollapser.Replace(desc)
	desc = strings.ReplaceAll(desc, `"`, `""`)
	return `"` + desc + `"`
}
