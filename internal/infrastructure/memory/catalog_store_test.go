package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/will-aam/stock/internal/domain"
	"github.com/will-aam/stock/internal/domain/entity"
	"github.com/will-aam/stock/internal/infrastructure/memory"
)

func sampleBatch() ([]*entity.Product, []*entity.BarcodeEntry) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	products := []*entity.Product{
		{ID: "id-1", Code: "P1", Description: "Water", StockBalance: 50, CreatedAt: now},
		{ID: "id-2", Code: "P2", Description: "Soda", StockBalance: 30, CreatedAt: now},
	}
	barcodes := []*entity.BarcodeEntry{
		{Barcode: "123", ProductID: "id-1"},
		{Barcode: "124", ProductID: "id-2"},
	}
	return products, barcodes
}

func TestCatalogStore_InsertYFind(t *testing.T) {
	store := memory.NewCatalogStore()
	ctx := context.Background()
	products, barcodes := sampleBatch()

	require.NoError(t, store.InsertBatch(ctx, products, barcodes))

	p, err := store.FindByBarcode(ctx, "123")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "P1", p.Code)

	// La búsqueda es idempotente y por coincidencia exacta.
	again, err := store.FindByBarcode(ctx, "123")
	require.NoError(t, err)
	assert.Equal(t, p, again)

	miss, err := store.FindByBarcode(ctx, "12")
	require.NoError(t, err)
	assert.Nil(t, miss, "un prefijo del código no coincide")
}

func TestCatalogStore_FindDevuelveCopia(t *testing.T) {
	store := memory.NewCatalogStore()
	ctx := context.Background()
	products, barcodes := sampleBatch()
	require.NoError(t, store.InsertBatch(ctx, products, barcodes))

	p, err := store.FindByBarcode(ctx, "123")
	require.NoError(t, err)
	p.StockBalance = 999

	fresh, err := store.FindByBarcode(ctx, "123")
	require.NoError(t, err)
	assert.Equal(t, 50, fresh.StockBalance, "mutar el resultado no toca el almacén")
}

func TestCatalogStore_InsertBatchDuplicado(t *testing.T) {
	store := memory.NewCatalogStore()
	ctx := context.Background()
	products, barcodes := sampleBatch()
	require.NoError(t, store.InsertBatch(ctx, products, barcodes))

	// Un lote que repite un código no inserta nada, tampoco sus filas nuevas.
	now := time.Now()
	err := store.InsertBatch(ctx,
		[]*entity.Product{
			{ID: "id-3", Code: "P3", Description: "Juice", CreatedAt: now},
			{ID: "id-4", Code: "P4", Description: "Milk", CreatedAt: now},
		},
		[]*entity.BarcodeEntry{
			{Barcode: "125", ProductID: "id-3"},
			{Barcode: "123", ProductID: "id-4"},
		})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, []string{"123", "124"}, store.Barcodes())

	miss, err := store.FindByBarcode(ctx, "125")
	require.NoError(t, err)
	assert.Nil(t, miss)
}

func TestCatalogStore_ExistingBarcodes(t *testing.T) {
	store := memory.NewCatalogStore()
	ctx := context.Background()
	products, barcodes := sampleBatch()
	require.NoError(t, store.InsertBatch(ctx, products, barcodes))

	existing, err := store.ExistingBarcodes(ctx, []string{"123", "999", "124", "123"})
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"123": {}, "124": {}}, existing)

	empty, err := store.ExistingBarcodes(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestCatalogStore_ListProducts(t *testing.T) {
	store := memory.NewCatalogStore()
	ctx := context.Background()
	products, barcodes := sampleBatch()
	require.NoError(t, store.InsertBatch(ctx, products, barcodes))

	list, err := store.ListProducts(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "P1", list[0].Code, "orden de inserción")
	assert.Equal(t, "P2", list[1].Code)

	page, err := store.ListProducts(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "P2", page[0].Code)

	beyond, err := store.ListProducts(ctx, 10, 5)
	require.NoError(t, err)
	assert.Empty(t, beyond)
}
