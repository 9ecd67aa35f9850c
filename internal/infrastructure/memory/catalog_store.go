// Package memory implementa los puertos de persistencia en memoria,
// replicando el comportamiento de referencia del sistema (sin base de
// datos). Un RWMutex por almacén: las lecturas concurren entre sí y nunca
// observan un lote a medio confirmar.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/will-aam/stock/internal/domain"
	"github.com/will-aam/stock/internal/domain/entity"
	"github.com/will-aam/stock/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogStore)(nil)

// CatalogStore catálogo en memoria: productos más el índice código de
// barras → producto (búsqueda e inserción O(1), coincidencia exacta).
type CatalogStore struct {
	mu       sync.RWMutex
	products map[string]*entity.Product // por ID
	index    map[string]string          // barcode → product ID
	order    []string                   // IDs en orden de inserción, para listados estables
}

// NewCatalogStore construye un catálogo vacío.
func NewCatalogStore() *CatalogStore {
	return &CatalogStore{
		products: make(map[string]*entity.Product),
		index:    make(map[string]string),
	}
}

// FindByBarcode resuelve un código de barras; nil si no está registrado.
func (s *CatalogStore) FindByBarcode(_ context.Context, barcode string) (*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.index[barcode]
	if !ok {
		return nil, nil
	}
	p := *s.products[id]
	return &p, nil
}

// ExistingBarcodes devuelve cuáles de los códigos dados ya existen.
func (s *CatalogStore) ExistingBarcodes(_ context.Context, barcodes []string) (map[string]struct{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]struct{})
	for _, b := range barcodes {
		if _, ok := s.index[b]; ok {
			out[b] = struct{}{}
		}
	}
	return out, nil
}

// InsertBatch inserta el lote completo bajo el lock de escritura: o entra
// todo o no entra nada, y ningún lector ve estados intermedios.
func (s *CatalogStore) InsertBatch(_ context.Context, products []*entity.Product, barcodes []*entity.BarcodeEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range barcodes {
		if _, exists := s.index[b.Barcode]; exists {
			return domain.ErrDuplicate
		}
	}
	for _, p := range products {
		cp := *p
		s.products[cp.ID] = &cp
		s.order = append(s.order, cp.ID)
	}
	for _, b := range barcodes {
		s.index[b.Barcode] = b.ProductID
	}
	return nil
}

// ListProducts lista productos en orden de inserción.
func (s *CatalogStore) ListProducts(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if offset >= len(s.order) {
		return nil, nil
	}
	end := offset + limit
	if end > len(s.order) {
		end = len(s.order)
	}
	out := make([]*entity.Product, 0, end-offset)
	for _, id := range s.order[offset:end] {
		p := *s.products[id]
		out = append(out, &p)
	}
	return out, nil
}

// Barcodes devuelve todos los códigos registrados, ordenados. Útil para
// diagnóstico y tests.
func (s *CatalogStore) Barcodes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.index))
	for b := range s.index {
		out = append(out, b)
	}
	sort.Strings(out)
	return out
}
