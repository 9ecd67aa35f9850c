package http

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	appcatalog "github.com/will-aam/stock/internal/application/catalog"
	"github.com/will-aam/stock/internal/application/dto"
	"github.com/will-aam/stock/internal/domain"
)

// CatalogHandler maneja importación y consulta del catálogo (protegido).
type CatalogHandler struct {
	importUC *appcatalog.ImportUseCase
	searchUC *appcatalog.SearchUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(importUC *appcatalog.ImportUseCase, searchUC *appcatalog.SearchUseCase) *CatalogHandler {
	return &CatalogHandler{importUC: importUC, searchUC: searchUC}
}

// Import godoc
// @Summary      Importar catálogo desde texto delimitado
// @Description  Acepta multipart (campo file) o el texto crudo como cuerpo. El lote se confirma completo o se rechaza completo.
// @Tags         products
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        header   query  bool  false  "La primera fila es encabezado"
// @Param        version  query  int   false  "Esquema: 1 o 2 (por defecto auto)"
// @Success      200  {object}  dto.ImportResponse
// @Failure      400  {object}  dto.ImportErrorResponse
// @Router       /api/products/import [post]
func (h *CatalogHandler) Import(c *fiber.Ctx) error {
	raw, err := importPayload(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "archivo no encontrado"})
	}
	in := dto.ImportRequest{
		Raw:       raw,
		HasHeader: c.QueryBool("header", false),
		Version:   c.QueryInt("version", 0),
	}
	out, rowErrs, err := h.importUC.Import(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error al procesar archivo"})
	}
	if len(rowErrs) > 0 {
		resp := dto.ImportErrorResponse{Errors: make([]string, 0, len(rowErrs))}
		for _, re := range rowErrs {
			resp.Errors = append(resp.Errors, re.Error())
		}
		return c.Status(fiber.StatusBadRequest).JSON(resp)
	}
	return c.JSON(out)
}

// importPayload obtiene el texto a importar: archivo multipart "file" si está
// presente, si no el cuerpo crudo de la petición.
func importPayload(c *fiber.Ctx) (string, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		if body := c.Body(); len(body) > 0 {
			return string(body), nil
		}
		return "", err
	}
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Search godoc
// @Summary      Resolver un código de barras
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        barcode  query  string  true  "Código de barras"
// @Success      200  {object}  dto.SearchResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/search [get]
func (h *CatalogHandler) Search(c *fiber.Ctx) error {
	barcode := c.Query("barcode")
	if barcode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "barcode es requerido"})
	}
	out, err := h.searchUC.ByBarcode(c.Context(), barcode)
	if err != nil {
		var notFound *domain.BarcodeNotFoundError
		if errors.As(err, &notFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar productos del catálogo
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	out, err := h.searchUC.List(c.Context(), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
