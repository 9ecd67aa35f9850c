package dto

import "time"

// ImportRequest entrada de una importación de catálogo: el texto completo ya
// materializado (la mecánica de subida de archivos es asunto del handler).
type ImportRequest struct {
	Raw       string
	HasHeader bool
	Version   int // 0 = auto, 1 = v1, 2 = v2
}

// ImportResponse resultado de una importación confirmada.
type ImportResponse struct {
	Message  string            `json:"message"`
	Products []ProductResponse `json:"products"`
	BarCodes []BarcodeResponse `json:"bar_codes"`
}

// ImportErrorResponse lote rechazado: lista ordenada de errores por línea.
type ImportErrorResponse struct {
	Errors []string `json:"errors"`
}

// ProductResponse salida de un producto del catálogo.
type ProductResponse struct {
	ID           string    `json:"id"`
	Code         string    `json:"code"`
	Description  string    `json:"description"`
	StockBalance int       `json:"stock_balance"`
	CreatedAt    time.Time `json:"created_at"`
}

// BarcodeResponse asociación código de barras → producto.
type BarcodeResponse struct {
	Barcode   string `json:"barcode"`
	ProductID string `json:"product_id"`
}

// SearchResponse resultado de resolver un código de barras escaneado.
type SearchResponse struct {
	Product ProductResponse `json:"product"`
	Barcode string          `json:"barcode"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
