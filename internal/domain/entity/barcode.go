package entity

// BarcodeEntry asocia un código de barras con exactamente un producto.
// El código es único en todo el catálogo; un producto puede tener cero o
// más códigos.
type BarcodeEntry struct {
	Barcode   string
	ProductID string
}
