package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"github.com/tamonkoch/drink-shop-backend/internal/browse"
	"github.com/tamonkoch/drink-shop-backend/internal/cart"
	"github.com/tamonkoch/drink-shop-backend/internal/catalog"
	"github.com/tamonkoch/drink-shop-backend/internal/checkout"
	"github.com/tamonkoch/drink-shop-backend/internal/config"
	"github.com/tamonkoch/drink-shop-backend/internal/directory"
	"github.com/tamonkoch/drink-shop-backend/internal/locale"
	"github.com/tamonkoch/drink-shop-backend/internal/notify"
	"github.com/tamonkoch/drink-shop-backend/internal/order"
	"github.com/tamonkoch/drink-shop-backend/internal/session"
	"github.com/tamonkoch/drink-shop-backend/internal/wishlist"
)

// main wires dependencies (dependency injection) and starts the HTTP server.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)
	app.Use(session.Middleware())

	notifier := notify.LogNotifier{}

	catalogRepo, err := catalog.NewInMemoryRepository(catalog.SeedProducts(), catalog.SeedCategories)
	if err != nil {
		log.Fatalf("invalid catalog seed: %v", err)
	}
	catalogService := catalog.NewService(catalogRepo)

	browseService, err := browse.NewService(catalogService, cfg.BrowseCacheSize)
	if err != nil {
		log.Fatalf("browse cache: %v", err)
	}

	cartService := cart.NewService(cart.NewInMemoryRepository())
	wishlistService := wishlist.NewService(wishlist.NewInMemoryRepository())
	localeService := locale.NewService()
	orderService := order.NewService(order.NewInMemoryRepository())
	directoryService := directory.NewService(directory.NewClient(cfg.DirectoryBaseURL, notifier))

	checkoutService := checkout.NewService(
		checkout.NewInMemoryRepository(),
		cartService,
		orderService,
		directoryService,
		checkout.SimulatedGateway{Delay: cfg.PaymentDelay},
		notifier,
	)

	// register the exact /api/v1/products route before the :slug route to
	// avoid param collisions
	browse.NewHandler(browseService).RegisterPublicRoutes(app)
	catalog.NewHandler(catalogService).RegisterPublicRoutes(app)
	directory.NewHandler(directoryService).RegisterPublicRoutes(app)

	cart.NewHandler(cartService).RegisterRoutes(app)
	wishlist.NewHandler(wishlistService).RegisterRoutes(app)
	locale.NewHandler(localeService).RegisterRoutes(app)
	checkout.NewHandler(checkoutService).RegisterRoutes(app)
	order.NewHandler(orderService, catalogService).RegisterRoutes(app)

	log.Printf("starting server on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}
