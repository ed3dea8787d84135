package browse

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products", h.getProducts)
}

// getProducts serves the product list view. Query params:
// search, minPrice, maxPrice, categories (comma-separated), sort.
func (h *Handler) getProducts(c *fiber.Ctx) error {
	params := Params{
		Query: c.Query("search"),
		Sort:  c.Query("sort", SortFeatured),
	}

	if v := c.Query("minPrice"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid minPrice"})
		}
		params.MinPrice = &d
	}
	if v := c.Query("maxPrice"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid maxPrice"})
		}
		params.MaxPrice = &d
	}
	if v := c.Query("categories"); v != "" {
		for _, cat := range strings.Split(v, ",") {
			if cat = strings.TrimSpace(cat); cat != "" {
				params.Categories = append(params.Categories, cat)
			}
		}
	}

	switch params.Sort {
	case SortFeatured, SortPriceAsc, SortPriceDesc, SortRating:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid sort"})
	}

	return c.JSON(h.service.Browse(params))
}
