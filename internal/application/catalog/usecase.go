// Package catalog orquesta la importación y la consulta del catálogo sobre
// el repositorio. La validación de filas vive en el dominio
// (internal/domain/catalog); aquí se resuelve la confirmación atómica.
package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/will-aam/stock/internal/application/dto"
	"github.com/will-aam/stock/internal/domain"
	domcatalog "github.com/will-aam/stock/internal/domain/catalog"
	"github.com/will-aam/stock/internal/domain/entity"
	"github.com/will-aam/stock/internal/domain/repository"
)

// ImportUseCase importación masiva de catálogo, todo o nada.
type ImportUseCase struct {
	repo repository.CatalogRepository

	// La unicidad del código de barras es check-then-act: la verificación
	// contra el almacén y la inserción del lote deben ejecutarse como una
	// sola sección crítica frente a importaciones concurrentes.
	mu sync.Mutex
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(repo repository.CatalogRepository) *ImportUseCase {
	return &ImportUseCase{repo: repo}
}

// Import parsea y valida el lote completo; confirma solo si no hay ningún
// error. En caso contrario devuelve la lista ordenada de errores por línea y
// el almacén queda intacto.
func (uc *ImportUseCase) Import(ctx context.Context, in dto.ImportRequest) (*dto.ImportResponse, []domcatalog.RowError, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	existing, err := uc.repo.ExistingBarcodes(ctx, candidateBarcodes(in.Raw))
	if err != nil {
		return nil, nil, fmt.Errorf("consultar códigos existentes: %w", err)
	}

	result, rowErrs := domcatalog.Parse(in.Raw, existing, domcatalog.Options{
		Version:   domcatalog.Version(in.Version),
		HasHeader: in.HasHeader,
	})
	if len(rowErrs) > 0 {
		return nil, rowErrs, nil
	}

	now := time.Now()
	products := make([]*entity.Product, 0, len(result.Rows))
	barcodes := make([]*entity.BarcodeEntry, 0, len(result.Rows))
	for _, row := range result.Rows {
		p := &entity.Product{
			ID:           uuid.New().String(),
			Code:         row.Code,
			Description:  row.Description,
			StockBalance: row.StockBalance,
			CreatedAt:    now,
		}
		products = append(products, p)
		barcodes = append(barcodes, &entity.BarcodeEntry{Barcode: row.Barcode, ProductID: p.ID})
	}

	if err := uc.repo.InsertBatch(ctx, products, barcodes); err != nil {
		return nil, nil, fmt.Errorf("confirmar lote: %w", err)
	}

	out := &dto.ImportResponse{
		Message:  fmt.Sprintf("%d productos importados con éxito", len(products)),
		Products: make([]dto.ProductResponse, 0, len(products)),
		BarCodes: make([]dto.BarcodeResponse, 0, len(barcodes)),
	}
	for _, p := range products {
		out.Products = append(out.Products, toProductResponse(p))
	}
	for _, b := range barcodes {
		out.BarCodes = append(out.BarCodes, dto.BarcodeResponse{Barcode: b.Barcode, ProductID: b.ProductID})
	}
	return out, nil, nil
}

// candidateBarcodes extrae el primer campo de cada fila no vacía para
// pre-sembrar el conjunto de códigos existentes con una sola consulta.
func candidateBarcodes(raw string) []string {
	var out []string
	for _, rec := range strings.Split(raw, "\n") {
		rec = strings.TrimSuffix(rec, "\r")
		if strings.TrimSpace(rec) == "" {
			continue
		}
		barcode := strings.TrimSpace(strings.SplitN(rec, domcatalog.Delimiter, 2)[0])
		if barcode != "" {
			out = append(out, barcode)
		}
	}
	return out
}

// SearchUseCase resolución de códigos de barras y listado del catálogo.
type SearchUseCase struct {
	repo repository.CatalogRepository
}

// NewSearchUseCase construye el caso de uso.
func NewSearchUseCase(repo repository.CatalogRepository) *SearchUseCase {
	return &SearchUseCase{repo: repo}
}

// ByBarcode resuelve un código escaneado. Devuelve BarcodeNotFoundError si
// no está registrado.
func (uc *SearchUseCase) ByBarcode(ctx context.Context, barcode string) (*dto.SearchResponse, error) {
	if barcode == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.FindByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, &domain.BarcodeNotFoundError{Barcode: barcode}
	}
	return &dto.SearchResponse{Product: toProductResponse(product), Barcode: barcode}, nil
}

// List lista productos con paginación.
func (uc *SearchUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListProducts(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:           p.ID,
		Code:         p.Code,
		Description:  p.Description,
		StockBalance: p.StockBalance,
		CreatedAt:    p.CreatedAt,
	}
}
