package entity

import "time"

// CountedItem es un registro de conteo dentro de una sesión: qué se escaneó,
// cuánto se contó y la diferencia contra el saldo del sistema. Inmutable
// después de su creación; solo se elimina por ID a pedido del operador.
//
// StockBalance es el saldo congelado al momento de registrar la cantidad;
// actualizaciones posteriores del catálogo no lo alteran retroactivamente.
// Variance siempre se deriva como Quantity - StockBalance.
type CountedItem struct {
	ID           string
	Barcode      string // código de barras tal como se escaneó
	ProductCode  string
	Description  string
	StockBalance int
	Quantity     int // cantidad contada (entero no negativo)
	Variance     int // Quantity - StockBalance; negativo = faltante
	Location     string
	CountedAt    time.Time
}
