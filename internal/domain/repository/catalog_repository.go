package repository

import (
	"context"

	"github.com/will-aam/stock/internal/domain/entity"
)

// CatalogRepository define el puerto de persistencia del catálogo: productos
// más el índice código de barras → producto (DIP).
//
// La unicidad del código de barras es un invariante check-then-act: el caso
// de uso de importación serializa la secuencia verificación + inserción; el
// adaptador además debe garantizar que InsertBatch sea atómico (todo o nada)
// y que los lectores nunca vean un lote parcialmente confirmado.
type CatalogRepository interface {
	// FindByBarcode resuelve un código de barras; coincidencia exacta,
	// sensible a mayúsculas. Devuelve nil sin error si no existe.
	FindByBarcode(ctx context.Context, barcode string) (*entity.Product, error)

	// ExistingBarcodes devuelve cuáles de los códigos dados ya están
	// registrados en el catálogo.
	ExistingBarcodes(ctx context.Context, barcodes []string) (map[string]struct{}, error)

	// InsertBatch confirma un lote ya validado: todos los productos y sus
	// códigos, o nada. Devuelve domain.ErrDuplicate ante colisión de código.
	InsertBatch(ctx context.Context, products []*entity.Product, barcodes []*entity.BarcodeEntry) error

	// ListProducts lista productos con paginación, en orden estable.
	ListProducts(ctx context.Context, limit, offset int) ([]*entity.Product, error)
}
