package locale

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tamonkoch/drink-shop-backend/internal/session"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/v1/locale", h.getLocale)
	app.Put("/api/v1/locale", h.setLocale)
	app.Get("/api/v1/locale/t/:key", h.translate)
}

type setLocaleRequest struct {
	Language string `json:"language"`
}

func (h *Handler) getLocale(c *fiber.Ctx) error {
	sessionID, err := session.GetSessionIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "no session"})
	}
	return c.JSON(fiber.Map{"language": h.service.Language(sessionID)})
}

func (h *Handler) setLocale(c *fiber.Ctx) error {
	payload := new(setLocaleRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	sessionID, err := session.GetSessionIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "no session"})
	}
	if err := h.service.SetLanguage(sessionID, payload.Language); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"language": payload.Language})
}

func (h *Handler) translate(c *fiber.Ctx) error {
	sessionID, err := session.GetSessionIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "no session"})
	}
	key := c.Params("key")
	return c.JSON(fiber.Map{"key": key, "value": h.service.Translate(sessionID, key)})
}
