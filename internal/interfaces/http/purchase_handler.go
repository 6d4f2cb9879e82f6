package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-pos/internal/application/dto"
	"github.com/jhoicas/ventas-pos/internal/application/usecase"
	"github.com/jhoicas/ventas-pos/pkg/logger"
)

// PurchaseHandler compras a proveedores.
type PurchaseHandler struct {
	uc  *usecase.PurchaseUseCase
	log *logger.Logger
}

func NewPurchaseHandler(uc *usecase.PurchaseUseCase, log *logger.Logger) *PurchaseHandler {
	return &PurchaseHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Compras de un mes
// @Tags         purchases
// @Produce      json
// @Security     BearerAuth
// @Param        month  query  int  false  "1-12, por defecto el mes actual"
// @Param        year   query  int  false  "por defecto el año actual"
// @Success      200   {object}  dto.PurchaseMonthResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/purchases [get]
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ByMonth(c.UserContext(), c.QueryInt("month"), c.QueryInt("year"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID GET /api/purchases/:id
func (h *PurchaseHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Items GET /api/purchases/:id/items?page&size
func (h *PurchaseHandler) Items(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Items(c.UserContext(), id, page)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/purchases/:id
func (h *PurchaseHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
