package repository

import "github.com/Dolonia333/enhanced-games-peptides/internal/models"

// AccountRepository serves the fixed order and subscription history shown in
// the account area. There is no backing store; the arrays below stand in for
// one until fulfillment is wired up.
type AccountRepository struct {
	orders        []models.Order
	subscriptions []models.Subscription
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		orders:        sampleOrders,
		subscriptions: sampleSubscriptions,
	}
}

func (r *AccountRepository) ListOrders() []models.Order {
	out := make([]models.Order, len(r.orders))
	copy(out, r.orders)
	return out
}

func (r *AccountRepository) ListSubscriptions() []models.Subscription {
	out := make([]models.Subscription, len(r.subscriptions))
	copy(out, r.subscriptions)
	return out
}

var sampleOrders = []models.Order{
	{
		ID:       "ORD-001",
		Date:     "2025-08-30",
		Status:   models.OrderProcessing,
		Total:    249.99,
		Currency: "usd",
		Items: []models.OrderItem{
			{
				ProductID: "PROD-001",
				Name:      "Performance Enhancement Kit",
				Quantity:  1,
				UnitPrice: 249.99,
			},
		},
		ShippingAddress: models.Address{
			Name:   "John Doe",
			Street: "123 Main St",
			City:   "Los Angeles",
			State:  "CA",
			Zip:    "90001",
		},
	},
	{
		ID:       "ORD-002",
		Date:     "2025-08-28",
		Status:   models.OrderShipped,
		Total:    499.98,
		Currency: "usd",
		Items: []models.OrderItem{
			{
				ProductID: "PROD-002",
				Name:      "Enhanced Peptides Case",
				Quantity:  2,
				UnitPrice: 249.99,
			},
		},
		ShippingAddress: models.Address{
			Name:   "John Doe",
			Street: "123 Main St",
			City:   "Los Angeles",
			State:  "CA",
			Zip:    "90001",
		},
		TrackingNumber: "1Z999AA1234567890",
	},
}

var sampleSubscriptions = []models.Subscription{
	{
		ID:           "SUB-001",
		ProductName:  "Performance Enhancement Kit",
		Status:       models.SubscriptionActive,
		Price:        249.99,
		Interval:     "monthly",
		NextDelivery: "2025-09-15",
		LastDelivery: "2025-08-15",
		PaymentMethod: models.PaymentCard{
			Brand:      "visa",
			Last4:      "4242",
			ExpiryDate: "12/25",
		},
	},
	{
		ID:           "SUB-002",
		ProductName:  "Enhanced Peptides Case",
		Status:       models.SubscriptionPaused,
		Price:        199.99,
		Interval:     "quarterly",
		NextDelivery: "2025-11-01",
		LastDelivery: "2025-08-01",
		PaymentMethod: models.PaymentCard{
			Brand:      "mastercard",
			Last4:      "8888",
			ExpiryDate: "03/26",
		},
	},
}
