package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-pos/internal/application/checkout"
	"github.com/jhoicas/ventas-pos/internal/application/dto"
	"github.com/jhoicas/ventas-pos/internal/domain"
	"github.com/jhoicas/ventas-pos/internal/domain/cart"
	"github.com/jhoicas/ventas-pos/pkg/i18n"
	"github.com/jhoicas/ventas-pos/pkg/logger"
)

// HeaderIdempotencyKey clave que el cliente repite al reintentar un envío.
const HeaderIdempotencyKey = "Idempotency-Key"

// CartHandler carritos de venta y compra de la sesión.
type CartHandler struct {
	uc  *checkout.CheckoutUseCase
	log *logger.Logger
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *checkout.CheckoutUseCase, log *logger.Logger) *CartHandler {
	return &CartHandler{uc: uc, log: log}
}

// Start godoc
// @Summary      Iniciar carrito
// @Tags         carts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.StartCartRequest  true  "kind: sale | purchase"
// @Success      201   {object}  dto.CartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/carts [post]
func (h *CartHandler) Start(c *fiber.Ctx) error {
	var in dto.StartCartRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Start(c.UserContext(), GetSessionID(c), cart.Kind(in.Kind))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// StartPurchaseEdit godoc
// @Summary      Editar una compra existente como carrito
// @Tags         carts
// @Produce      json
// @Security     BearerAuth
// @Param        purchaseId  path  int  true  "id de la compra"
// @Success      201   {object}  dto.CartResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/carts/purchase-edit/{purchaseId} [post]
func (h *CartHandler) StartPurchaseEdit(c *fiber.Ctx) error {
	id, err := paramID(c, "purchaseId")
	if err != nil {
		return respondError(c, h.log, err)
	}
	out, err := h.uc.StartPurchaseEdit(c.UserContext(), GetSessionID(c), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Ver carrito
// @Tags         carts
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "id del carrito"
// @Success      200   {object}  dto.CartResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/carts/{id} [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetSessionID(c), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Discard DELETE /api/carts/:id
func (h *CartHandler) Discard(c *fiber.Ctx) error {
	if err := h.uc.Discard(c.UserContext(), GetSessionID(c), c.Params("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddLine godoc
// @Summary      Agregar producto al carrito
// @Description  Si el producto ya está en el carrito se suman las cantidades.
// @Tags         carts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "id del carrito"
// @Param        body  body  dto.AddLineRequest  true  "productId, quantity, price opcional"
// @Success      200   {object}  dto.CartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/carts/{id}/lines [post]
func (h *CartHandler) AddLine(c *fiber.Ctx) error {
	var in dto.AddLineRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.AddLine(c.UserContext(), GetSessionID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// RemoveLine DELETE /api/carts/:id/lines/:index
func (h *CartHandler) RemoveLine(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return respondError(c, h.log, domain.NewValidationError("index", domain.ReasonInvalidFormat))
	}
	out, err := h.uc.RemoveLine(c.UserContext(), GetSessionID(c), c.Params("id"), index)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// SetCounterparty godoc
// @Summary      Elegir cliente (venta) o proveedor (compra)
// @Tags         carts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "id del carrito"
// @Param        body  body  dto.CounterpartyRequest  true  "customerId o supplier"
// @Success      200   {object}  dto.CartResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/carts/{id}/counterparty [put]
func (h *CartHandler) SetCounterparty(c *fiber.Ctx) error {
	var in dto.CounterpartyRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.SetCounterparty(c.UserContext(), GetSessionID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Preview godoc
// @Summary      Vista previa de la deuda
// @Tags         carts
// @Produce      json
// @Security     BearerAuth
// @Param        id    path   string  true   "id del carrito"
// @Param        paid  query  string  false  "monto pagado"
// @Success      200   {object}  dto.SettlementResponse
// @Router       /api/carts/{id}/settlement [get]
func (h *CartHandler) Preview(c *fiber.Ctx) error {
	paid, err := decimal.NewFromString(c.Query("paid", "0"))
	if err != nil {
		return respondError(c, h.log, domain.NewValidationError("paid", domain.ReasonInvalidFormat))
	}
	out, err := h.uc.Preview(c.UserContext(), GetSessionID(c), c.Params("id"), paid)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Submit godoc
// @Summary      Enviar el carrito a la API de contabilidad
// @Description  Reenviar con la misma cabecera Idempotency-Key devuelve el resultado original.
// @Tags         carts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id               path    string  true   "id del carrito"
// @Param        Idempotency-Key  header  string  false  "clave de idempotencia; por defecto el id del carrito"
// @Param        body             body    dto.SubmitRequest  true  "paidAmount, remark, createdAt"
// @Success      201   {object}  dto.SubmitResponse
// @Success      200   {object}  dto.SubmitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/carts/{id}/submit [post]
func (h *CartHandler) Submit(c *fiber.Ctx) error {
	var in dto.SubmitRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Submit(c.UserContext(), GetSessionID(c), c.Params("id"), in, c.Get(HeaderIdempotencyKey))
	if err != nil {
		return respondError(c, h.log, err)
	}

	key := i18n.KeySaleCreated
	switch {
	case out.Kind == string(cart.KindPurchase) && out.Updated:
		key = i18n.KeyPurchaseUpdated
	case out.Kind == string(cart.KindPurchase):
		key = i18n.KeyPurchaseCreated
	}
	out.Message = T(c).T(key)

	if out.Replayed {
		return c.JSON(out)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
