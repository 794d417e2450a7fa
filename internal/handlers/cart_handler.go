package handlers

import (
	"errors"
	"strings"

	"github.com/Dolonia333/enhanced-games-peptides/internal/models"
	"github.com/Dolonia333/enhanced-games-peptides/internal/repository"
	"github.com/Dolonia333/enhanced-games-peptides/internal/services"
	"github.com/gofiber/fiber/v2"
)

type CartHandler struct {
	cartService *services.CartService
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

type addItemRequest struct {
	ProductID      string `json:"product_id"`
	Quantity       int    `json:"quantity"`
	IsSubscription bool   `json:"is_subscription"`
}

type checkoutRequest struct {
	ShippingAddress models.Address `json:"shipping_address"`
}

func (h *CartHandler) CreateCart(c *fiber.Ctx) error {
	cart := h.cartService.Create()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"cart": cart})
}

func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	cart, err := h.cartService.Get(c.Params("id"))
	if err != nil {
		return cartError(c, err)
	}
	return c.JSON(fiber.Map{"cart": cart})
}

func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var req addItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if strings.TrimSpace(req.ProductID) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "product_id is required"})
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	cart, err := h.cartService.AddItem(c.Params("id"), req.ProductID, req.Quantity, req.IsSubscription)
	if err != nil {
		return cartError(c, err)
	}
	return c.JSON(fiber.Map{"cart": cart})
}

func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	cart, err := h.cartService.RemoveItem(c.Params("id"), c.Params("productId"))
	if err != nil {
		return cartError(c, err)
	}
	return c.JSON(fiber.Map{"cart": cart})
}

func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	var req checkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if validationErr := validateCheckoutRequest(req); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	result, err := h.cartService.Checkout(c.Context(), c.Params("id"), req.ShippingAddress)
	if err != nil {
		return cartError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

func validateCheckoutRequest(req checkoutRequest) string {
	addr := req.ShippingAddress
	if strings.TrimSpace(addr.Name) == "" {
		return "shipping_address.name is required"
	}
	if strings.TrimSpace(addr.Street) == "" {
		return "shipping_address.street is required"
	}
	if strings.TrimSpace(addr.City) == "" {
		return "shipping_address.city is required"
	}
	if strings.TrimSpace(addr.Zip) == "" {
		return "shipping_address.zip is required"
	}
	return ""
}

func cartError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repository.ErrCartNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Cart not found"})
	case errors.Is(err, repository.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	case errors.Is(err, services.ErrItemNotInCart):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Item not in cart"})
	case errors.Is(err, services.ErrQuantityInvalid),
		errors.Is(err, services.ErrNoSubscriptionPricing),
		errors.Is(err, services.ErrEmptyCart):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Something went wrong"})
	}
}
