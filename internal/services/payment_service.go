package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Customer struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

type ProviderSubscription struct {
	ID                string `json:"id"`
	CustomerID        string `json:"customer_id"`
	PriceID           string `json:"price_id"`
	Status            string `json:"status"`
	CancelAtPeriodEnd bool   `json:"cancel_at_period_end"`
}

// PaymentProvider is the boundary to the external billing system. The service
// only ever consumes this interface; charging, billing cycles and webhooks
// live entirely on the provider's side.
type PaymentProvider interface {
	CreateCustomer(ctx context.Context, email, name string, metadata map[string]string) (*Customer, error)
	CreatePaymentIntent(ctx context.Context, amount float64, currency string, metadata map[string]string) (*PaymentIntent, error)
	CreateSubscription(ctx context.Context, customerID, priceID string, metadata map[string]string) (*ProviderSubscription, error)
	CancelSubscription(ctx context.Context, subscriptionID string, immediately bool) (*ProviderSubscription, error)
}

// OfflinePaymentProvider returns deterministic fakes so the checkout flow can
// run end to end without provider credentials.
type OfflinePaymentProvider struct{}

func NewOfflinePaymentProvider() *OfflinePaymentProvider {
	return &OfflinePaymentProvider{}
}

func (p *OfflinePaymentProvider) CreateCustomer(_ context.Context, email, name string, _ map[string]string) (*Customer, error) {
	return &Customer{
		ID:    "cus_" + shortID(),
		Email: email,
		Name:  name,
	}, nil
}

func (p *OfflinePaymentProvider) CreatePaymentIntent(_ context.Context, amount float64, currency string, _ map[string]string) (*PaymentIntent, error) {
	if currency == "" {
		currency = "usd"
	}
	id := "pi_" + shortID()
	return &PaymentIntent{
		ID:           id,
		ClientSecret: fmt.Sprintf("%s_secret_%s", id, shortID()),
		Amount:       int64(amount*100 + 0.5),
		Currency:     strings.ToLower(currency),
		Status:       "requires_payment_method",
	}, nil
}

func (p *OfflinePaymentProvider) CreateSubscription(_ context.Context, customerID, priceID string, _ map[string]string) (*ProviderSubscription, error) {
	return &ProviderSubscription{
		ID:         "sub_" + shortID(),
		CustomerID: customerID,
		PriceID:    priceID,
		Status:     "incomplete",
	}, nil
}

func (p *OfflinePaymentProvider) CancelSubscription(_ context.Context, subscriptionID string, immediately bool) (*ProviderSubscription, error) {
	sub := &ProviderSubscription{ID: subscriptionID, Status: "active", CancelAtPeriodEnd: true}
	if immediately {
		sub.Status = "canceled"
		sub.CancelAtPeriodEnd = false
	}
	return sub, nil
}

func shortID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:24]
}
