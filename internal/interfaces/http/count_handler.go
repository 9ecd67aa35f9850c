package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	appcounting "github.com/will-aam/stock/internal/application/counting"
	"github.com/will-aam/stock/internal/application/dto"
	appexport "github.com/will-aam/stock/internal/application/export"
	"github.com/will-aam/stock/internal/domain"
)

// CountHandler maneja el flujo de conteo: escanear, registrar cantidad,
// eliminar, resumen y exportación (protegido).
type CountHandler struct {
	countUC  *appcounting.UseCase
	exportUC *appexport.UseCase
}

// NewCountHandler construye el handler.
func NewCountHandler(countUC *appcounting.UseCase, exportUC *appexport.UseCase) *CountHandler {
	return &CountHandler{countUC: countUC, exportUC: exportUC}
}

// Scan godoc
// @Summary      Escanear un código de barras
// @Tags         counts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ScanRequest  true  "Código y ubicación"
// @Success      200  {object}  dto.ScanResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/counts/scan [post]
func (h *CountHandler) Scan(c *fiber.Ctx) error {
	var in dto.ScanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.countUC.Scan(c.Context(), GetUserID(c), in)
	if err != nil {
		var notFound *domain.BarcodeNotFoundError
		switch {
		case errors.As(err, &notFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "código de barras no registrado"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "barcode es requerido"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(out)
}

// AddItem godoc
// @Summary      Registrar la cantidad contada del producto resuelto
// @Tags         counts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddCountRequest  true  "Cantidad y ubicación"
// @Success      201  {object}  dto.CountedItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/counts/items [post]
func (h *CountHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddCountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.countUC.AddCount(c.Context(), GetUserID(c), in)
	if err != nil {
		var invalidQty *domain.InvalidQuantityError
		switch {
		case errors.Is(err, domain.ErrNoProductHeld):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_PRODUCT", Message: "escanee un producto antes de informar la cantidad"})
		case errors.As(err, &invalidQty):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: invalidQty.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RemoveItem godoc
// @Summary      Eliminar un ítem contado por ID
// @Tags         counts
// @Security     Bearer
// @Param        id        path   string  true   "ID del ítem"
// @Param        location  query  string  false  "Ubicación"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/counts/items/{id} [delete]
func (h *CountHandler) RemoveItem(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.countUC.RemoveItem(GetUserID(c), c.Query("location"), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ítem no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Summary godoc
// @Summary      Estado de la sesión de conteo
// @Tags         counts
// @Security     Bearer
// @Produce      json
// @Param        location  query  string  false  "Ubicación"
// @Success      200  {object}  dto.CountSummaryResponse
// @Router       /api/counts [get]
func (h *CountHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(h.countUC.Summary(GetUserID(c), c.Query("location")))
}

// Discard godoc
// @Summary      Descartar la sesión de conteo (nuevo ciclo)
// @Tags         counts
// @Security     Bearer
// @Param        location  query  string  false  "Ubicación"
// @Success      204
// @Router       /api/counts [delete]
func (h *CountHandler) Discard(c *fiber.Ctx) error {
	h.countUC.Discard(GetUserID(c), c.Query("location"))
	return c.SendStatus(fiber.StatusNoContent)
}

// Export godoc
// @Summary      Exportar la sesión de conteo
// @Tags         counts
// @Security     Bearer
// @Produce      octet-stream
// @Param        location  query  string  false  "Ubicación"
// @Param        format    query  string  false  "csv | xlsx | pdf"  default(csv)
// @Param        version   query  int     false  "Esquema CSV: 1 o 2"  default(2)
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/counts/export [get]
func (h *CountHandler) Export(c *fiber.Ctx) error {
	location := c.Query("location")
	items := h.countUC.Snapshot(GetUserID(c), location)
	file, err := h.exportUC.Export(c.Context(), location, items, c.Query("format", "csv"), c.QueryInt("version", 2))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "formato desconocido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+file.Name+`"`)
	return c.Send(file.Data)
}
