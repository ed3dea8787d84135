package order

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tamonkoch/drink-shop-backend/internal/catalog"
	"github.com/tamonkoch/drink-shop-backend/internal/session"
)

// Handler serves the session's order history. Orders are created by the
// checkout flow, never directly over HTTP.
type Handler struct {
	service *Service
	catalog catalog.ServiceInterface
}

func NewHandler(s *Service, cat catalog.ServiceInterface) *Handler {
	return &Handler{service: s, catalog: cat}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/v1/orders", h.getOrders)
}

type orderView struct {
	Order
	CartProducts map[string]catalog.Product `json:"cartProducts,omitempty"`
}

// getOrders returns all orders belonging to the current session, with
// cart entries enriched by product details where the catalog knows them.
func (h *Handler) getOrders(c *fiber.Ctx) error {
	sessionID, err := session.GetSessionIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "no session"})
	}

	orders, err := h.service.ListBySession(sessionID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	out := make([]orderView, 0, len(orders))
	for _, ord := range orders {
		view := orderView{Order: ord}
		if h.catalog != nil {
			view.CartProducts = map[string]catalog.Product{}
			for pidStr := range ord.Cart {
				if id, convErr := strconv.Atoi(pidStr); convErr == nil {
					if p, getErr := h.catalog.GetByID(id); getErr == nil {
						view.CartProducts[pidStr] = p
					}
				}
			}
		}
		out = append(out, view)
	}

	return c.JSON(out)
}
