package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dolonia333/enhanced-games-peptides/internal/models"
	"github.com/google/uuid"
)

var (
	ErrQuantityInvalid       = errors.New("quantity must be greater than 0")
	ErrItemNotInCart         = errors.New("item not in cart")
	ErrEmptyCart             = errors.New("cart is empty")
	ErrNoSubscriptionPricing = errors.New("product has no subscription pricing")
)

type cartStore interface {
	Create() *models.Cart
	Get(id string) (*models.Cart, error)
	Update(id string, fn func(*models.Cart) error) (*models.Cart, error)
	Delete(id string) error
}

type productCatalog interface {
	GetByID(id string) (*models.Product, error)
}

type CartService struct {
	carts   cartStore
	catalog productCatalog
	payment PaymentProvider
}

func NewCartService(carts cartStore, catalog productCatalog, payment PaymentProvider) *CartService {
	return &CartService{carts: carts, catalog: catalog, payment: payment}
}

func (s *CartService) Create() *models.Cart {
	return s.carts.Create()
}

func (s *CartService) Get(id string) (*models.Cart, error) {
	return s.carts.Get(id)
}

// AddItem prices the line at add time: subscription price when requested and
// available, one-time price otherwise. Adding an already-present line bumps
// its quantity.
func (s *CartService) AddItem(cartID, productID string, quantity int, isSubscription bool) (*models.Cart, error) {
	if quantity <= 0 {
		return nil, ErrQuantityInvalid
	}

	product, err := s.catalog.GetByID(productID)
	if err != nil {
		return nil, err
	}

	unitPrice := product.PriceOneTime
	if isSubscription {
		if product.PriceSubscription == nil {
			return nil, ErrNoSubscriptionPricing
		}
		unitPrice = *product.PriceSubscription
	}

	return s.carts.Update(cartID, func(cart *models.Cart) error {
		for i := range cart.Items {
			if cart.Items[i].ProductID == productID && cart.Items[i].IsSubscription == isSubscription {
				cart.Items[i].Quantity += quantity
				recalculate(cart)
				return nil
			}
		}

		cart.Items = append(cart.Items, models.CartItem{
			ProductID:      product.ID,
			Name:           product.Name,
			UnitPrice:      unitPrice,
			Quantity:       quantity,
			IsSubscription: isSubscription,
		})
		recalculate(cart)
		return nil
	})
}

func (s *CartService) RemoveItem(cartID, productID string) (*models.Cart, error) {
	return s.carts.Update(cartID, func(cart *models.Cart) error {
		for i := range cart.Items {
			if cart.Items[i].ProductID == productID {
				cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
				recalculate(cart)
				return nil
			}
		}
		return ErrItemNotInCart
	})
}

type CheckoutResult struct {
	Order         models.Order   `json:"order"`
	PaymentIntent *PaymentIntent `json:"payment_intent"`
}

// Checkout snapshots the cart into an order and asks the payment provider for
// an intent covering the total. The cart is discarded on success; the order
// is returned to the caller only, fulfillment is not in scope.
func (s *CartService) Checkout(ctx context.Context, cartID string, shipping models.Address) (*CheckoutResult, error) {
	cart, err := s.carts.Get(cartID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	intent, err := s.payment.CreatePaymentIntent(ctx, cart.Total, "usd", map[string]string{
		"cart_id": cart.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	order := models.Order{
		ID:              "ORD-" + uuid.NewString()[:8],
		Date:            time.Now().UTC().Format("2006-01-02"),
		Status:          models.OrderProcessing,
		Total:           cart.Total,
		Currency:        intent.Currency,
		ShippingAddress: shipping,
		PaymentIntentID: intent.ID,
	}
	for _, item := range cart.Items {
		order.Items = append(order.Items, models.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	if err := s.carts.Delete(cart.ID); err != nil {
		return nil, err
	}

	return &CheckoutResult{Order: order, PaymentIntent: intent}, nil
}

func recalculate(cart *models.Cart) {
	subtotal := 0.0
	for _, item := range cart.Items {
		subtotal += item.UnitPrice * float64(item.Quantity)
	}
	cart.Subtotal = subtotal
	cart.Total = subtotal
}
