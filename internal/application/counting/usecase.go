// Package counting administra las sesiones de conteo activas: una por
// operador y ubicación, creada bajo demanda y descartada al cerrar sesión o
// iniciar un nuevo ciclo. El estado mutable de una sesión nunca se comparte
// entre operadores.
package counting

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/will-aam/stock/internal/application/dto"
	"github.com/will-aam/stock/internal/domain"
	domcounting "github.com/will-aam/stock/internal/domain/counting"
	"github.com/will-aam/stock/internal/domain/entity"
	"github.com/will-aam/stock/internal/domain/repository"
)

// DefaultLocation ubicación cuando el operador no indica una.
const DefaultLocation = "GENERAL"

type sessionHandle struct {
	mu sync.Mutex
	s  *domcounting.Session
}

// UseCase flujo escanear → contar → registrar sobre el catálogo.
type UseCase struct {
	catalog repository.CatalogRepository

	mu       sync.RWMutex
	sessions map[string]*sessionHandle
}

// NewUseCase construye el caso de uso.
func NewUseCase(catalog repository.CatalogRepository) *UseCase {
	return &UseCase{
		catalog:  catalog,
		sessions: make(map[string]*sessionHandle),
	}
}

func sessionKey(userID, location string) string {
	return userID + "|" + location
}

func normalizeLocation(location string) string {
	if location == "" {
		return DefaultLocation
	}
	return location
}

func (uc *UseCase) handle(userID, location string) *sessionHandle {
	key := sessionKey(userID, location)

	uc.mu.RLock()
	h, ok := uc.sessions[key]
	uc.mu.RUnlock()
	if ok {
		return h
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if h, ok = uc.sessions[key]; ok {
		return h
	}
	h = &sessionHandle{s: domcounting.NewSession(location)}
	uc.sessions[key] = h
	return h
}

// Scan resuelve un código contra el catálogo. Si existe, la sesión retiene
// el producto a la espera de la cantidad; si no, la sesión vuelve a Idle
// (se limpia cualquier producto retenido) y se devuelve BarcodeNotFoundError.
// Un escaneo fallido nunca toca la lista de ítems.
func (uc *UseCase) Scan(ctx context.Context, userID string, in dto.ScanRequest) (*dto.ScanResponse, error) {
	if in.Barcode == "" {
		return nil, domain.ErrInvalidInput
	}
	h := uc.handle(userID, normalizeLocation(in.Location))
	h.mu.Lock()
	defer h.mu.Unlock()

	product, err := uc.catalog.FindByBarcode(ctx, in.Barcode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		h.s.ClearResolution()
		return nil, &domain.BarcodeNotFoundError{Barcode: in.Barcode}
	}
	h.s.Resolve(product, in.Barcode)
	return &dto.ScanResponse{
		Product: dto.ProductResponse{
			ID:           product.ID,
			Code:         product.Code,
			Description:  product.Description,
			StockBalance: product.StockBalance,
			CreatedAt:    product.CreatedAt,
		},
		Barcode: in.Barcode,
	}, nil
}

// AddCount registra la cantidad contada para el producto retenido. El saldo
// se relee del catálogo en este momento (snapshot al registrar, no al
// escanear); si la relectura falla, el registro falla y el producto sigue
// retenido para reintentar. Una cantidad inválida también deja la sesión en
// ProductResolved.
func (uc *UseCase) AddCount(ctx context.Context, userID string, in dto.AddCountRequest) (*dto.CountedItemResponse, error) {
	h := uc.handle(userID, normalizeLocation(in.Location))
	h.mu.Lock()
	defer h.mu.Unlock()

	held, barcode := h.s.Held()
	if held == nil {
		return nil, domain.ErrNoProductHeld
	}
	current, err := uc.catalog.FindByBarcode(ctx, barcode)
	if err != nil {
		return nil, fmt.Errorf("releer saldo de %s: %w", barcode, err)
	}
	if current != nil {
		h.s.RefreshHeldBalance(current.StockBalance)
	}

	item, err := h.s.AddCount(in.Quantity, time.Now())
	if err != nil {
		return nil, err
	}
	out := toItemResponse(*item)
	return &out, nil
}

// RemoveItem elimina un ítem por ID; domain.ErrNotFound si no existe.
func (uc *UseCase) RemoveItem(userID, location, id string) error {
	h := uc.handle(userID, normalizeLocation(location))
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.s.RemoveItem(id) {
		return domain.ErrNotFound
	}
	return nil
}

// Summary estado actual de la sesión: ítems en orden de conteo y agregados.
func (uc *UseCase) Summary(userID, location string) *dto.CountSummaryResponse {
	location = normalizeLocation(location)
	h := uc.handle(userID, location)
	h.mu.Lock()
	defer h.mu.Unlock()

	items := h.s.Items()
	out := &dto.CountSummaryResponse{
		Location:      location,
		Items:         make([]dto.CountedItemResponse, 0, len(items)),
		ItemCount:     h.s.ItemCount(),
		TotalCounted:  h.s.TotalCounted(),
		TotalVariance: h.s.TotalVariance(),
	}
	for _, item := range items {
		out.Items = append(out.Items, toItemResponse(item))
	}
	return out
}

// Snapshot copia de los ítems para exportar.
func (uc *UseCase) Snapshot(userID, location string) []entity.CountedItem {
	h := uc.handle(userID, normalizeLocation(location))
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.s.Items()
}

// Discard descarta la sesión completa (cierre de sesión o nuevo ciclo de
// conteo).
func (uc *UseCase) Discard(userID, location string) {
	key := sessionKey(userID, normalizeLocation(location))
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.sessions, key)
}

func toItemResponse(item entity.CountedItem) dto.CountedItemResponse {
	return dto.CountedItemResponse{
		ID:           item.ID,
		Barcode:      item.Barcode,
		ProductCode:  item.ProductCode,
		Description:  item.Description,
		StockBalance: item.StockBalance,
		Quantity:     item.Quantity,
		Variance:     item.Variance,
		Location:     item.Location,
		CountedAt:    item.CountedAt,
	}
}
