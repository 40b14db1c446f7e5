package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/invorya/stock-alerts-api/internal/application/alerts"
	"github.com/invorya/stock-alerts-api/internal/application/dto"
	"github.com/invorya/stock-alerts-api/internal/domain"
	"github.com/invorya/stock-alerts-api/pkg/logger"
)

// AlertHandler maneja las peticiones HTTP del motor de alertas de stock bajo.
type AlertHandler struct {
	uc  *alerts.LowStockUseCase
	log *logger.Logger
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *alerts.LowStockUseCase, log *logger.Logger) *AlertHandler {
	return &AlertHandler{uc: uc, log: log}
}

// LowStock godoc
// @Summary      Alertas de stock bajo de una empresa
// @Tags         alerts
// @Produce      json
// @Param        id  path  int  true  "ID de la empresa"
// @Success      200  {object}  dto.LowStockAlertsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/alerts/low-stock [get]
func (h *AlertHandler) LowStock(c *fiber.Ctx) error {
	companyID, err := c.ParamsInt("id")
	if err != nil || companyID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_ID", Message: "id de empresa inválido",
		})
	}

	out, err := h.uc.GetLowStockAlerts(c.Context(), int64(companyID))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Code: "NOT_FOUND", Message: "empresa no encontrada",
			})
		}
		h.log.Error().Err(err).Int("company_id", companyID).Msg("cálculo de alertas fallido")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "error interno",
		})
	}
	return c.JSON(out)
}
