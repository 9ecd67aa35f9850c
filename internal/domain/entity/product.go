package entity

import "time"

// Product representa un producto del catálogo de conteo físico.
// El ID lo asigna el almacén del catálogo al confirmar la importación;
// Code es la clave de negocio. Inmutable una vez creado: una importación
// posterior solo agrega productos nuevos, nunca modifica los existentes.
type Product struct {
	ID           string
	Code         string // código del producto (clave de negocio)
	Description  string
	StockBalance int // saldo registrado en sistema (0 en catálogos esquema v1)
	CreatedAt    time.Time
}
