package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/invorya/stock-alerts-api/internal/application/catalog"
	"github.com/invorya/stock-alerts-api/internal/application/dto"
	"github.com/invorya/stock-alerts-api/internal/application/usecase"
	"github.com/invorya/stock-alerts-api/internal/domain"
	"github.com/invorya/stock-alerts-api/pkg/logger"
)

// ProductHandler maneja las peticiones HTTP de productos: creación y listado.
type ProductHandler struct {
	createUC *catalog.CreateProductUseCase
	queryUC  *usecase.ProductUseCase
	log      *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(createUC *catalog.CreateProductUseCase, queryUC *usecase.ProductUseCase, log *logger.Logger) *ProductHandler {
	return &ProductHandler{createUC: createUC, queryUC: queryUC, log: log}
}

// Create godoc
// @Summary      Crear producto con inventario inicial
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.APIResponse
// @Failure      400   {object}  dto.APIResponse
// @Failure      409   {object}  dto.APIResponse
// @Failure      500   {object}  dto.APIResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.APIResponse{
			Success: false, Data: fiber.Map{}, Error: "cuerpo inválido",
		})
	}

	productID, err := h.createUC.Create(c.Context(), in)
	if err != nil {
		return h.createError(c, in.SKU, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.APIResponse{
		Success: true,
		Data:    dto.CreateProductData{ProductID: productID},
	})
}

// ListByCompany godoc
// @Summary      Listar productos de una empresa
// @Tags         products
// @Produce      json
// @Param        id      path   int  true   "ID de la empresa"
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {object}  dto.ProductListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/products [get]
func (h *ProductHandler) ListByCompany(c *fiber.Ctx) error {
	companyID, err := c.ParamsInt("id")
	if err != nil || companyID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id de empresa inválido"})
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.queryUC.ListByCompany(int64(companyID), page.Limit, page.Offset)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empresa no encontrada"})
		}
		h.log.Error().Err(err).Int("company_id", companyID).Msg("listado de productos fallido")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// createError traduce los errores del caso de uso al contrato HTTP.
// Solo validación, duplicado y no-encontrado exponen detalle; el resto
// se loguea y sale como mensaje genérico.
func (h *ProductHandler) createError(c *fiber.Ctx, sku string, err error) error {
	if ve, ok := domain.AsValidationError(err); ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.APIResponse{
			Success: false, Data: fiber.Map{}, Error: ve.Error(),
		})
	}
	if errors.Is(err, domain.ErrDuplicate) {
		h.log.Warn().Str("sku", sku).Msg("creación de producto rechazada: SKU duplicado")
		return c.Status(fiber.StatusConflict).JSON(dto.APIResponse{
			Success: false, Data: fiber.Map{}, Error: "el SKU ya existe",
		})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.APIResponse{
			Success: false, Data: fiber.Map{}, Error: "la bodega indicada no existe",
		})
	}
	h.log.Error().Err(err).Str("sku", sku).Msg("creación de producto fallida")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.APIResponse{
		Success: false, Data: fiber.Map{}, Error: "error interno",
	})
}
