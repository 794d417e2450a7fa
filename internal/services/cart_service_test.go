package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Dolonia333/enhanced-games-peptides/internal/models"
	"github.com/Dolonia333/enhanced-games-peptides/internal/repository"
)

type stubCartStore struct {
	cart    *models.Cart
	deleted string
}

func (s *stubCartStore) Create() *models.Cart {
	s.cart = &models.Cart{ID: "test-cart", Items: []models.CartItem{}}
	return s.cart
}

func (s *stubCartStore) Get(id string) (*models.Cart, error) {
	if s.cart == nil || s.cart.ID != id {
		return nil, errNotFound
	}
	return s.cart, nil
}

func (s *stubCartStore) Update(id string, fn func(*models.Cart) error) (*models.Cart, error) {
	cart, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := fn(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *stubCartStore) Delete(id string) error {
	if s.cart == nil || s.cart.ID != id {
		return errNotFound
	}
	s.deleted = id
	s.cart = nil
	return nil
}

type stubCatalog struct {
	products map[string]models.Product
}

func (s *stubCatalog) GetByID(id string) (*models.Product, error) {
	product, ok := s.products[id]
	if !ok {
		return nil, errNotFound
	}
	return &product, nil
}

type stubPaymentProvider struct {
	lastAmount   float64
	lastCurrency string
	intentErr    error
}

func (s *stubPaymentProvider) CreateCustomer(_ context.Context, email, name string, _ map[string]string) (*Customer, error) {
	return &Customer{ID: "cus_test", Email: email, Name: name}, nil
}

func (s *stubPaymentProvider) CreatePaymentIntent(_ context.Context, amount float64, currency string, _ map[string]string) (*PaymentIntent, error) {
	if s.intentErr != nil {
		return nil, s.intentErr
	}
	s.lastAmount = amount
	s.lastCurrency = currency
	return &PaymentIntent{
		ID:           "pi_test",
		ClientSecret: "pi_test_secret",
		Amount:       int64(amount * 100),
		Currency:     currency,
		Status:       "requires_payment_method",
	}, nil
}

func (s *stubPaymentProvider) CreateSubscription(_ context.Context, customerID, priceID string, _ map[string]string) (*ProviderSubscription, error) {
	return &ProviderSubscription{ID: "sub_test", CustomerID: customerID, PriceID: priceID, Status: "incomplete"}, nil
}

func (s *stubPaymentProvider) CancelSubscription(_ context.Context, subscriptionID string, _ bool) (*ProviderSubscription, error) {
	return &ProviderSubscription{ID: subscriptionID, Status: "canceled"}, nil
}

func newTestCartService() (*CartService, *stubCartStore, *stubPaymentProvider) {
	store := &stubCartStore{}
	payment := &stubPaymentProvider{}
	sub := 169.0
	catalog := &stubCatalog{products: map[string]models.Product{
		"recovery-master-kit": {
			ID:                "recovery-master-kit",
			Name:              "Recovery Master Kit",
			PriceOneTime:      199,
			PriceSubscription: &sub,
		},
		"bare-kit": {
			ID:           "bare-kit",
			Name:         "Bare Kit",
			PriceOneTime: 99,
		},
	}}
	return NewCartService(store, catalog, payment), store, payment
}

func TestAddItemUsesSubscriptionPricing(t *testing.T) {
	service, _, _ := newTestCartService()
	cart := service.Create()

	cart, err := service.AddItem(cart.ID, "recovery-master-kit", 2, true)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(cart.Items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(cart.Items))
	}
	if cart.Items[0].UnitPrice != 169 {
		t.Errorf("Expected subscription price 169, got %.2f", cart.Items[0].UnitPrice)
	}
	if cart.Subtotal != 338 {
		t.Errorf("Expected subtotal 338, got %.2f", cart.Subtotal)
	}
	if cart.Total != cart.Subtotal {
		t.Errorf("Expected total to equal subtotal, got %.2f", cart.Total)
	}
}

func TestAddItemRejectsSubscriptionWithoutPricing(t *testing.T) {
	service, _, _ := newTestCartService()
	cart := service.Create()

	if _, err := service.AddItem(cart.ID, "bare-kit", 1, true); !errors.Is(err, ErrNoSubscriptionPricing) {
		t.Errorf("Expected ErrNoSubscriptionPricing, got %v", err)
	}
}

func TestAddItemBumpsExistingLine(t *testing.T) {
	service, _, _ := newTestCartService()
	cart := service.Create()

	if _, err := service.AddItem(cart.ID, "bare-kit", 1, false); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	cart, err := service.AddItem(cart.ID, "bare-kit", 2, false)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(cart.Items) != 1 {
		t.Fatalf("Expected a single merged line, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 3 {
		t.Errorf("Expected quantity 3, got %d", cart.Items[0].Quantity)
	}
	if cart.Subtotal != 297 {
		t.Errorf("Expected subtotal 297, got %.2f", cart.Subtotal)
	}
}

func TestRemoveItemRecalculatesTotals(t *testing.T) {
	service, _, _ := newTestCartService()
	cart := service.Create()

	if _, err := service.AddItem(cart.ID, "bare-kit", 1, false); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := service.AddItem(cart.ID, "recovery-master-kit", 1, false); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	cart, err := service.RemoveItem(cart.ID, "bare-kit")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("Expected 1 item after removal, got %d", len(cart.Items))
	}
	if cart.Subtotal != 199 {
		t.Errorf("Expected subtotal 199, got %.2f", cart.Subtotal)
	}

	if _, err := service.RemoveItem(cart.ID, "bare-kit"); !errors.Is(err, ErrItemNotInCart) {
		t.Errorf("Expected ErrItemNotInCart, got %v", err)
	}
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	service, _, _ := newTestCartService()
	cart := service.Create()

	if _, err := service.Checkout(context.Background(), cart.ID, models.Address{Name: "John Doe"}); !errors.Is(err, ErrEmptyCart) {
		t.Errorf("Expected ErrEmptyCart, got %v", err)
	}
}

func TestCheckoutCreatesIntentAndDiscardsCart(t *testing.T) {
	service, store, payment := newTestCartService()
	cart := service.Create()
	cartID := cart.ID

	if _, err := service.AddItem(cartID, "recovery-master-kit", 1, false); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	result, err := service.Checkout(context.Background(), cartID, models.Address{
		Name:   "John Doe",
		Street: "123 Main St",
		City:   "Los Angeles",
		State:  "CA",
		Zip:    "90001",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if payment.lastAmount != 199 {
		t.Errorf("Expected intent amount 199, got %.2f", payment.lastAmount)
	}
	if result.Order.Total != 199 {
		t.Errorf("Expected order total 199, got %.2f", result.Order.Total)
	}
	if result.Order.Status != models.OrderProcessing {
		t.Errorf("Expected order status processing, got %s", result.Order.Status)
	}
	if result.Order.PaymentIntentID != "pi_test" {
		t.Errorf("Expected payment intent id pi_test, got %s", result.Order.PaymentIntentID)
	}
	if len(result.Order.Items) != 1 {
		t.Errorf("Expected 1 order item, got %d", len(result.Order.Items))
	}
	if store.deleted != cartID {
		t.Errorf("Expected cart %s to be discarded after checkout", cartID)
	}
}

func TestConcurrentAddItemKeepsLinesConsistent(t *testing.T) {
	catalog := &stubCatalog{products: map[string]models.Product{
		"bare-kit": {ID: "bare-kit", Name: "Bare Kit", PriceOneTime: 99},
	}}
	service := NewCartService(repository.NewCartRepository(), catalog, &stubPaymentProvider{})
	cart := service.Create()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := service.AddItem(cart.ID, "bare-kit", 1, false); err != nil {
				t.Errorf("AddItem: %v", err)
			}
		}()
	}
	wg.Wait()

	got, err := service.Get(cart.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got.Items) != 1 {
		t.Fatalf("Expected a single merged line, got %d", len(got.Items))
	}
	if got.Items[0].Quantity != 20 {
		t.Errorf("Expected quantity 20, got %d", got.Items[0].Quantity)
	}
	if got.Subtotal != 99*20 {
		t.Errorf("Expected subtotal %.2f, got %.2f", 99*20.0, got.Subtotal)
	}
}
