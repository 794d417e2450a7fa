package services

import (
	"context"
	"strings"
	"testing"
)

func TestOfflineProviderCreateCustomer(t *testing.T) {
	provider := NewOfflinePaymentProvider()

	customer, err := provider.CreateCustomer(context.Background(), "jane@example.com", "Jane Doe", nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.HasPrefix(customer.ID, "cus_") {
		t.Errorf("Expected cus_ id prefix, got %s", customer.ID)
	}
	if customer.Email != "jane@example.com" || customer.Name != "Jane Doe" {
		t.Errorf("Expected customer fields echoed back, got %+v", customer)
	}
}

func TestOfflineProviderCreatePaymentIntent(t *testing.T) {
	provider := NewOfflinePaymentProvider()

	intent, err := provider.CreatePaymentIntent(context.Background(), 299.99, "", nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.HasPrefix(intent.ID, "pi_") {
		t.Errorf("Expected pi_ id prefix, got %s", intent.ID)
	}
	if !strings.HasPrefix(intent.ClientSecret, intent.ID+"_secret_") {
		t.Errorf("Expected client secret derived from intent id, got %s", intent.ClientSecret)
	}
	if intent.Amount != 29999 {
		t.Errorf("Expected amount in cents 29999, got %d", intent.Amount)
	}
	if intent.Currency != "usd" {
		t.Errorf("Expected usd default currency, got %s", intent.Currency)
	}
	if intent.Status != "requires_payment_method" {
		t.Errorf("Expected requires_payment_method status, got %s", intent.Status)
	}
}

func TestOfflineProviderSubscriptionLifecycle(t *testing.T) {
	provider := NewOfflinePaymentProvider()

	sub, err := provider.CreateSubscription(context.Background(), "cus_abc", "price_monthly", nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.HasPrefix(sub.ID, "sub_") {
		t.Errorf("Expected sub_ id prefix, got %s", sub.ID)
	}
	if sub.CustomerID != "cus_abc" || sub.PriceID != "price_monthly" {
		t.Errorf("Expected customer and price echoed back, got %+v", sub)
	}
	if sub.Status != "incomplete" {
		t.Errorf("Expected incomplete status, got %s", sub.Status)
	}

	atPeriodEnd, err := provider.CancelSubscription(context.Background(), sub.ID, false)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if atPeriodEnd.Status != "active" || !atPeriodEnd.CancelAtPeriodEnd {
		t.Errorf("Expected active with cancel at period end, got %+v", atPeriodEnd)
	}

	canceled, err := provider.CancelSubscription(context.Background(), sub.ID, true)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if canceled.Status != "canceled" || canceled.CancelAtPeriodEnd {
		t.Errorf("Expected immediate cancellation, got %+v", canceled)
	}
}
