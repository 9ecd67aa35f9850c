package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrNoProductHeld      = errors.New("ningún producto resuelto para contar")
)

// BarcodeNotFoundError indica que un código escaneado no resuelve a ningún
// producto del catálogo. Es un error recuperable: el operador re-escanea.
type BarcodeNotFoundError struct {
	Barcode string
}

func (e *BarcodeNotFoundError) Error() string {
	return fmt.Sprintf("código de barras %s no registrado", e.Barcode)
}

// InvalidQuantityError indica que la cantidad contada no es un entero no
// negativo. No cambia el estado de la sesión: el operador puede reintentar.
type InvalidQuantityError struct {
	Raw string
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("cantidad contada inválida: %q", e.Raw)
}
