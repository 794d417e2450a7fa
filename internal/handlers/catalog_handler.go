package handlers

import (
	"errors"

	"github.com/Dolonia333/enhanced-games-peptides/internal/models"
	"github.com/Dolonia333/enhanced-games-peptides/internal/repository"
	"github.com/gofiber/fiber/v2"
)

type productCatalog interface {
	List() []models.Product
	GetBySlug(slug string) (*models.Product, error)
}

type CatalogHandler struct {
	catalog productCatalog
}

func NewCatalogHandler(catalog productCatalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	products := h.catalog.List()
	return c.JSON(fiber.Map{
		"products": products,
		"total":    len(products),
	})
}

func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	product, err := h.catalog.GetBySlug(c.Params("slug"))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Something went wrong"})
	}
	return c.JSON(fiber.Map{"product": product})
}
