package routes

import (
	"github.com/Dolonia333/enhanced-games-peptides/internal/config"
	"github.com/Dolonia333/enhanced-games-peptides/internal/handlers"
	"github.com/Dolonia333/enhanced-games-peptides/internal/middleware"
	"github.com/Dolonia333/enhanced-games-peptides/internal/repository"
	"github.com/Dolonia333/enhanced-games-peptides/internal/services"
	"github.com/Dolonia333/enhanced-games-peptides/pkg/logger"
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config) {
	assessmentStore := repository.NewAssessmentStore(cfg.SessionCapacity)
	catalogRepo := repository.NewCatalogRepository()
	cartRepo := repository.NewCartRepository()
	accountRepo := repository.NewAccountRepository()

	assessmentService := services.NewAssessmentService(assessmentStore)
	protocolService := services.NewProtocolService()
	paymentProvider := newPaymentProvider(cfg)
	cartService := services.NewCartService(cartRepo, catalogRepo, paymentProvider)

	assessmentHandler := handlers.NewAssessmentHandler(assessmentService, protocolService)
	catalogHandler := handlers.NewCatalogHandler(catalogRepo)
	cartHandler := handlers.NewCartHandler(cartService)
	accountHandler := handlers.NewAccountHandler(accountRepo)

	api := app.Group("/api")
	v1 := api.Group("/v1")

	assessments := v1.Group("/assessments")
	assessments.Get("/steps", assessmentHandler.ListSteps)
	assessments.Post("", assessmentHandler.CreateSession)
	assessments.Get("/:id", assessmentHandler.GetSession)
	assessments.Delete("/:id", assessmentHandler.DeleteSession)
	assessments.Put("/:id/answers", assessmentHandler.UpdateAnswers)
	assessments.Post("/:id/advance", assessmentHandler.Advance)
	assessments.Post("/:id/retreat", assessmentHandler.Retreat)
	assessments.Post("/:id/protocol", assessmentHandler.GenerateProtocol)

	products := v1.Group("/products")
	products.Get("", catalogHandler.ListProducts)
	products.Get("/:slug", catalogHandler.GetProduct)

	cart := v1.Group("/cart")
	cart.Post("", cartHandler.CreateCart)
	cart.Get("/:id", cartHandler.GetCart)
	cart.Post("/:id/items", cartHandler.AddItem)
	cart.Delete("/:id/items/:productId", cartHandler.RemoveItem)
	cart.Post("/:id/checkout", cartHandler.Checkout)

	account := v1.Group("/account", middleware.AccountRequired(cfg.AccountGate))
	account.Get("/orders", accountHandler.ListOrders)
	account.Get("/subscriptions", accountHandler.ListSubscriptions)

	registerDocsRoutes(app, cfg)
}

// newPaymentProvider selects the payment backend named in config. Only the
// offline provider ships today; unknown names fall back to it rather than
// refusing to start.
func newPaymentProvider(cfg *config.Config) services.PaymentProvider {
	if cfg.PaymentProvider != "offline" {
		logger.WithField("provider", cfg.PaymentProvider).
			Warn("unknown payment provider, using offline")
	}
	return services.NewOfflinePaymentProvider()
}
