package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Dolonia333/enhanced-games-peptides/internal/middleware"
	"github.com/Dolonia333/enhanced-games-peptides/internal/models"
	"github.com/Dolonia333/enhanced-games-peptides/internal/repository"
	"github.com/gofiber/fiber/v2"
)

func newAccountApp(gateEnabled bool) *fiber.App {
	handler := NewAccountHandler(repository.NewAccountRepository())

	app := fiber.New()
	account := app.Group("/api/v1/account", middleware.AccountRequired(gateEnabled))
	account.Get("/orders", handler.ListOrders)
	account.Get("/subscriptions", handler.ListSubscriptions)
	return app
}

func TestAccountRoutesRequireToken(t *testing.T) {
	app := newAccountApp(true)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/account/orders", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAccountGateCanBeDisabled(t *testing.T) {
	app := newAccountApp(false)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/account/orders", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 with gate disabled, got %d", resp.StatusCode)
	}
}

func TestListOrdersWithToken(t *testing.T) {
	app := newAccountApp(true)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/account/orders", nil)
	req.Header.Set("X-Account-Token", "session-abc")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Orders     []models.Order        `json:"orders"`
		Pagination models.PaginationMeta `json:"pagination"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if len(body.Orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(body.Orders))
	}
	if body.Orders[0].ID != "ORD-001" || body.Orders[0].Status != models.OrderProcessing {
		t.Fatalf("unexpected first order: %+v", body.Orders[0])
	}
	if body.Pagination.Total != 2 || body.Pagination.Page != 1 {
		t.Fatalf("unexpected pagination: %+v", body.Pagination)
	}
}

func TestListSubscriptionsWithToken(t *testing.T) {
	app := newAccountApp(true)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/account/subscriptions", nil)
	req.Header.Set("X-Account-Token", "session-abc")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Subscriptions []models.Subscription `json:"subscriptions"`
		Total         int                   `json:"total"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if body.Total != 2 {
		t.Fatalf("expected 2 subscriptions, got %d", body.Total)
	}
	if body.Subscriptions[1].Status != models.SubscriptionPaused {
		t.Errorf("expected second subscription paused, got %s", body.Subscriptions[1].Status)
	}
}
