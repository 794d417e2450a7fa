package models

type OrderStatus string

const (
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionPaused    SubscriptionStatus = "paused"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

type Address struct {
	Name   string `json:"name"`
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type Order struct {
	ID              string      `json:"id"`
	Date            string      `json:"date"`
	Status          OrderStatus `json:"status"`
	Total           float64     `json:"total"`
	Currency        string      `json:"currency"`
	Items           []OrderItem `json:"items"`
	ShippingAddress Address     `json:"shipping_address"`
	TrackingNumber  string      `json:"tracking_number,omitempty"`
	PaymentIntentID string      `json:"payment_intent_id,omitempty"`
}

type PaymentCard struct {
	Brand      string `json:"brand"`
	Last4      string `json:"last4"`
	ExpiryDate string `json:"expiry_date"`
}

type Subscription struct {
	ID            string             `json:"id"`
	ProductName   string             `json:"product_name"`
	Status        SubscriptionStatus `json:"status"`
	Price         float64            `json:"price"`
	Interval      string             `json:"interval"`
	NextDelivery  string             `json:"next_delivery"`
	LastDelivery  string             `json:"last_delivery,omitempty"`
	PaymentMethod PaymentCard        `json:"payment_method"`
}

type PaginationMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}
