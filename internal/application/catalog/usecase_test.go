package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcatalog "github.com/will-aam/stock/internal/application/catalog"
	"github.com/will-aam/stock/internal/application/dto"
	"github.com/will-aam/stock/internal/infrastructure/memory"
)

func newUseCases() (*appcatalog.ImportUseCase, *appcatalog.SearchUseCase, *memory.CatalogStore) {
	store := memory.NewCatalogStore()
	return appcatalog.NewImportUseCase(store), appcatalog.NewSearchUseCase(store), store
}

func TestImport_ConfirmaLoteLimpio(t *testing.T) {
	importUC, searchUC, _ := newUseCases()
	ctx := context.Background()

	out, rowErrs, err := importUC.Import(ctx, dto.ImportRequest{
		Raw: "123;P1;Water 500ml;50\n124;P2;Soda 350ml;30",
	})

	require.NoError(t, err)
	require.Empty(t, rowErrs)
	assert.Equal(t, "2 productos importados con éxito", out.Message)
	require.Len(t, out.Products, 2)
	require.Len(t, out.BarCodes, 2)
	assert.Equal(t, out.Products[0].ID, out.BarCodes[0].ProductID,
		"cada código referencia al producto recién creado")
	assert.NotEqual(t, out.Products[0].ID, out.Products[1].ID,
		"cada producto recibe un ID propio")

	// El índice resuelve de inmediato lo importado.
	found, err := searchUC.ByBarcode(ctx, "123")
	require.NoError(t, err)
	assert.Equal(t, "P1", found.Product.Code)
	assert.Equal(t, 50, found.Product.StockBalance)
}

func TestImport_LoteConErroresNoTocaElAlmacen(t *testing.T) {
	importUC, _, store := newUseCases()
	ctx := context.Background()

	out, rowErrs, err := importUC.Import(ctx, dto.ImportRequest{
		Raw: "123;P1;Water;50\n124;P2;;30\n125;P3;Juice;diez",
	})

	require.NoError(t, err)
	assert.Nil(t, out)
	require.Len(t, rowErrs, 2, "se reportan todas las violaciones del lote")
	assert.Empty(t, store.Barcodes(),
		"confirmación atómica: ninguna fila del lote rechazado se inserta, ni las válidas")
}

func TestImport_DuplicadoContraImportacionAnterior(t *testing.T) {
	importUC, searchUC, store := newUseCases()
	ctx := context.Background()

	_, rowErrs, err := importUC.Import(ctx, dto.ImportRequest{Raw: "123;P1;Water;50"})
	require.NoError(t, err)
	require.Empty(t, rowErrs)

	// La segunda importación trae el mismo código: el lote completo se
	// rechaza, incluida la fila nueva válida.
	out, rowErrs, err := importUC.Import(ctx, dto.ImportRequest{
		Raw: "124;P2;Soda;30\n123;P9;Fake Water;10",
	})
	require.NoError(t, err)
	assert.Nil(t, out)
	require.Len(t, rowErrs, 1)
	assert.Equal(t, 2, rowErrs[0].Line)
	assert.Equal(t, "123", rowErrs[0].Barcode)

	assert.Equal(t, []string{"123"}, store.Barcodes(), "el almacén queda como antes del lote fallido")

	// El producto original no fue reemplazado.
	found, err := searchUC.ByBarcode(ctx, "123")
	require.NoError(t, err)
	assert.Equal(t, "P1", found.Product.Code)
}

func TestImport_ImportacionesSucesivasAcumulan(t *testing.T) {
	importUC, searchUC, _ := newUseCases()
	ctx := context.Background()

	_, rowErrs, err := importUC.Import(ctx, dto.ImportRequest{Raw: "123;P1;Water;50"})
	require.NoError(t, err)
	require.Empty(t, rowErrs)

	_, rowErrs, err = importUC.Import(ctx, dto.ImportRequest{Raw: "124;P2;Soda;30"})
	require.NoError(t, err)
	require.Empty(t, rowErrs)

	list, err := searchUC.List(ctx, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, list.Items, 2, "una importación posterior agrega, nunca reemplaza")
}

func TestImport_RespetaEncabezadoYVersion(t *testing.T) {
	importUC, searchUC, _ := newUseCases()
	ctx := context.Background()

	out, rowErrs, err := importUC.Import(ctx, dto.ImportRequest{
		Raw:       "barcode;product_code;description\n123;P1;Water",
		HasHeader: true,
		Version:   1,
	})
	require.NoError(t, err)
	require.Empty(t, rowErrs)
	require.Len(t, out.Products, 1)

	found, err := searchUC.ByBarcode(ctx, "123")
	require.NoError(t, err)
	assert.Equal(t, 0, found.Product.StockBalance, "v1 no trae saldo")
}

func TestSearch_ByBarcodeNoRegistrado(t *testing.T) {
	importUC, searchUC, _ := newUseCases()
	ctx := context.Background()

	_, rowErrs, err := importUC.Import(ctx, dto.ImportRequest{Raw: "123;P1;Water;50"})
	require.NoError(t, err)
	require.Empty(t, rowErrs)

	_, err = searchUC.ByBarcode(ctx, "999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "999")
}

func TestSearch_ListPaginado(t *testing.T) {
	importUC, searchUC, _ := newUseCases()
	ctx := context.Background()

	_, rowErrs, err := importUC.Import(ctx, dto.ImportRequest{
		Raw: "1;A;Alfa;1\n2;B;Beta;2\n3;C;Gamma;3",
	})
	require.NoError(t, err)
	require.Empty(t, rowErrs)

	page, err := searchUC.List(ctx, dto.PageRequest{Limit: 2, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "B", page.Items[0].Code, "listado estable en orden de inserción")
	assert.Equal(t, "C", page.Items[1].Code)
}
