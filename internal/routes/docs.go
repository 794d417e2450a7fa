package routes

import (
	"github.com/Dolonia333/enhanced-games-peptides/internal/config"
	"github.com/gofiber/fiber/v2"
)

type endpointDoc struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

var apiEndpoints = []endpointDoc{
	{"GET", "/health", "Service liveness"},
	{"GET", "/api/v1/assessments/steps", "Intake step metadata"},
	{"POST", "/api/v1/assessments", "Start an assessment session"},
	{"GET", "/api/v1/assessments/:id", "Session state"},
	{"DELETE", "/api/v1/assessments/:id", "Discard a session"},
	{"PUT", "/api/v1/assessments/:id/answers", "Merge partial answers"},
	{"POST", "/api/v1/assessments/:id/advance", "Advance to the next step"},
	{"POST", "/api/v1/assessments/:id/retreat", "Go back one step"},
	{"POST", "/api/v1/assessments/:id/protocol", "Generate the protocol report"},
	{"GET", "/api/v1/products", "Product catalog"},
	{"GET", "/api/v1/products/:slug", "Product detail"},
	{"POST", "/api/v1/cart", "Create a cart"},
	{"GET", "/api/v1/cart/:id", "Cart contents"},
	{"POST", "/api/v1/cart/:id/items", "Add an item"},
	{"DELETE", "/api/v1/cart/:id/items/:productId", "Remove an item"},
	{"POST", "/api/v1/cart/:id/checkout", "Checkout the cart"},
	{"GET", "/api/v1/account/orders", "Order history (gated)"},
	{"GET", "/api/v1/account/subscriptions", "Subscriptions (gated)"},
}

// registerDocsRoutes exposes a machine-readable endpoint index. Development
// only; production builds keep it off.
func registerDocsRoutes(app *fiber.App, cfg *config.Config) {
	if !cfg.DocsEnabled() {
		return
	}

	app.Get("/docs", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service":   "enhanced-games-peptides",
			"endpoints": apiEndpoints,
		})
	})
}
