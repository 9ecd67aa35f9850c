package dto

import "time"

// ScanRequest escaneo o digitación de un código de barras.
type ScanRequest struct {
	Barcode  string `json:"barcode"`
	Location string `json:"location"`
}

// ScanResponse producto resuelto, pendiente de cantidad.
type ScanResponse struct {
	Product ProductResponse `json:"product"`
	Barcode string          `json:"barcode"`
}

// AddCountRequest cantidad contada para el producto resuelto. Quantity viaja
// cruda (string) porque la validación de entero no negativo es del dominio.
type AddCountRequest struct {
	Quantity string `json:"quantity"`
	Location string `json:"location"`
}

// CountedItemResponse un ítem registrado en la sesión.
type CountedItemResponse struct {
	ID           string    `json:"id"`
	Barcode      string    `json:"barcode"`
	ProductCode  string    `json:"product_code"`
	Description  string    `json:"description"`
	StockBalance int       `json:"stock_balance"`
	Quantity     int       `json:"quantity"`
	Variance     int       `json:"variance"`
	Location     string    `json:"location"`
	CountedAt    time.Time `json:"counted_at"`
}

// CountSummaryResponse estado de la sesión: ítems en orden de conteo y
// agregados.
type CountSummaryResponse struct {
	Location      string                `json:"location"`
	Items         []CountedItemResponse `json:"items"`
	ItemCount     int                   `json:"item_count"`
	TotalCounted  int                   `json:"total_counted"`
	TotalVariance int                   `json:"total_variance"`
}
