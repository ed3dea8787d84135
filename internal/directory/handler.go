package directory

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

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/cities", h.getCities)
	app.Get("/api/v1/cities/:city/quarters", h.getQuarters)
}

func (h *Handler) getCities(c *fiber.Ctx) error {
	return c.JSON(h.service.Cities(c.Context()))
}

func (h *Handler) getQuarters(c *fiber.Ctx) error {
	sessionID, err := session.GetSessionIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "no session"})
	}

	quarters, err := h.service.QuartersForSession(c.Context(), sessionID, c.Params("city"))
	if err != nil {
		if err == ErrSuperseded {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "superseded by a newer request"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(quarters)
}
