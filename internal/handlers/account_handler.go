package handlers

import (
	"github.com/Dolonia333/enhanced-games-peptides/internal/models"
	"github.com/gofiber/fiber/v2"
)

type accountRepository interface {
	ListOrders() []models.Order
	ListSubscriptions() []models.Subscription
}

type AccountHandler struct {
	accountRepo accountRepository
}

func NewAccountHandler(accountRepo accountRepository) *AccountHandler {
	return &AccountHandler{accountRepo: accountRepo}
}

func (h *AccountHandler) ListOrders(c *fiber.Ctx) error {
	page, limit := parsePagination(c)
	orders := h.accountRepo.ListOrders()
	total := len(orders)

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return c.JSON(fiber.Map{
		"orders":     orders[start:end],
		"pagination": buildPaginationMeta(page, limit, total),
	})
}

func (h *AccountHandler) ListSubscriptions(c *fiber.Ctx) error {
	subscriptions := h.accountRepo.ListSubscriptions()
	return c.JSON(fiber.Map{
		"subscriptions": subscriptions,
		"total":         len(subscriptions),
	})
}
