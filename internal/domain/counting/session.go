// Package counting modela la sesión de conteo físico como una máquina de
// estados explícita (Idle / ProductResolved), testeable sin capa de
// presentación ni transporte. Una sesión pertenece a un operador y una
// ubicación; no es segura para uso concurrente, el dueño serializa el acceso.
package counting

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/will-aam/stock/internal/domain"
	"github.com/will-aam/stock/internal/domain/entity"
)

// Session acumula los ítems contados de un operador en una ubicación.
// La lista es append-only: los ítems solo salen por RemoveItem.
type Session struct {
	location    string
	held        *entity.Product
	heldBarcode string
	items       []entity.CountedItem
}

// NewSession crea una sesión vacía en estado Idle.
func NewSession(location string) *Session {
	return &Session{location: location}
}

// Location devuelve la ubicación de la sesión.
func (s *Session) Location() string { return s.location }

// Resolve retiene el producto resuelto por un escaneo junto con el código
// crudo leído. Transición a ProductResolved desde cualquier estado.
func (s *Session) Resolve(p *entity.Product, barcode string) {
	held := *p
	s.held = &held
	s.heldBarcode = barcode
}

// ClearResolution descarta el producto retenido y vuelve a Idle. Se invoca
// tras todo escaneo fallido: el operador debe re-escanear.
func (s *Session) ClearResolution() {
	s.held = nil
	s.heldBarcode = ""
}

// Held devuelve el producto retenido y el código escaneado, o nil si la
// sesión está en Idle.
func (s *Session) Held() (*entity.Product, string) {
	return s.held, s.heldBarcode
}

// RefreshHeldBalance actualiza el saldo del producto retenido. El saldo que
// se congela en el ítem es el del momento del registro, no el del escaneo,
// para tolerar cambios de catálogo entre escanear y digitar la cantidad.
func (s *Session) RefreshHeldBalance(balance int) {
	if s.held != nil {
		s.held.StockBalance = balance
	}
}

// AddCount registra la cantidad contada para el producto retenido y vuelve a
// Idle. Solo es válido en ProductResolved. La cantidad cruda debe ser un
// entero no negativo; si no lo es, devuelve InvalidQuantityError y el estado
// no cambia (el operador puede reintentar sin re-escanear).
func (s *Session) AddCount(rawQuantity string, now time.Time) (*entity.CountedItem, error) {
	if s.held == nil {
		return nil, domain.ErrNoProductHeld
	}
	quantity, err := parseQuantity(rawQuantity)
	if err != nil {
		return nil, err
	}

	item := entity.CountedItem{
		ID:           uuid.New().String(),
		Barcode:      s.heldBarcode,
		ProductCode:  s.held.Code,
		Description:  s.held.Description,
		StockBalance: s.held.StockBalance,
		Quantity:     quantity,
		Variance:     quantity - s.held.StockBalance,
		Location:     s.location,
		CountedAt:    now,
	}
	s.items = append(s.items, item)
	s.ClearResolution()
	return &item, nil
}

// RemoveItem elimina el ítem con ese ID, válido en cualquier estado y sin
// afectar el producto retenido. Devuelve false si el ID no existe.
func (s *Session) RemoveItem(id string) bool {
	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// Items devuelve una copia de los ítems en orden de inserción (orden de
// conteo; nunca se reordena).
func (s *Session) Items() []entity.CountedItem {
	out := make([]entity.CountedItem, len(s.items))
	copy(out, s.items)
	return out
}

// ItemCount cantidad de ítems registrados.
func (s *Session) ItemCount() int { return len(s.items) }

// TotalVariance suma de las diferencias de todos los ítems vigentes.
func (s *Session) TotalVariance() int {
	total := 0
	for _, item := range s.items {
		total += item.Variance
	}
	return total
}

// TotalCounted suma de las cantidades contadas.
func (s *Session) TotalCounted() int {
	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

func parseQuantity(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0, &domain.InvalidQuantityError{Raw: raw}
	}
	return n, nil
}
