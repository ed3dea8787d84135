package checkout

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tamonkoch/drink-shop-backend/internal/session"
)

// Handler exposes the checkout wizard over HTTP. Step decisions live in
// the service; the handler only maps errors to statuses.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/v1/checkout", h.getCheckout)
	app.Post("/api/v1/checkout/shipping", h.submitShipping)
	app.Post("/api/v1/checkout/payment", h.submitPayment)
	app.Post("/api/v1/checkout/back", h.back)
	app.Delete("/api/v1/checkout", h.abandon)
}

func (h *Handler) getCheckout(c *fiber.Ctx) error {
	sessionID, err := session.GetSessionIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "no session"})
	}
	view, err := h.service.Get(sessionID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(view)
}

func (h *Handler) submitShipping(c *fiber.Ctx) error {
	payload := new(ShippingData)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	sessionID, err := session.GetSessionIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "no session"})
	}

	view, fieldErrs, err := h.service.SubmitShipping(c.Context(), sessionID, *payload)
	if err != nil {
		switch err {
		case ErrEmptyCart:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "cart is empty", "redirect": "/products"})
		case ErrInvalidTransition:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	if len(fieldErrs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "validation failed", "errors": fieldErrs})
	}
	return c.Status(fiber.StatusOK).JSON(view)
}

func (h *Handler) submitPayment(c *fiber.Ctx) error {
	payload := new(PaymentData)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	sessionID, err := session.GetSessionIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "no session"})
	}

	view, fieldErrs, err := h.service.SubmitPayment(c.Context(), sessionID, *payload)
	if err != nil {
		switch err {
		case ErrPaymentFailed:
			return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{"message": "payment failed"})
		case ErrEmptyCart:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "cart is empty", "redirect": "/products"})
		case ErrInvalidTransition:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	if len(fieldErrs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "validation failed", "errors": fieldErrs})
	}
	return c.Status(fiber.StatusOK).JSON(view)
}

func (h *Handler) back(c *fiber.Ctx) error {
	sessionID, err := session.GetSessionIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "no session"})
	}
	view, err := h.service.Back(sessionID)
	if err != nil {
		if err == ErrInvalidTransition {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(view)
}

func (h *Handler) abandon(c *fiber.Ctx) error {
	sessionID, err := session.GetSessionIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "no session"})
	}
	h.service.Abandon(sessionID)
	return c.SendStatus(fiber.StatusNoContent)
}
