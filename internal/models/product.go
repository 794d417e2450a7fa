package models

type ProductTier string

const (
	TierGreat         ProductTier = "GREAT"
	TierAdvanced      ProductTier = "ADVANCED"
	TierSuperEnhanced ProductTier = "SUPER_ENHANCED"
)

type Product struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	Slug              string      `json:"slug"`
	Description       string      `json:"description"`
	LongDescription   string      `json:"long_description,omitempty"`
	Tier              ProductTier `json:"tier"`
	RxRequired        bool        `json:"rx_required"`
	PriceOneTime      float64     `json:"price_one_time"`
	PriceSubscription *float64    `json:"price_subscription,omitempty"`
	Peptides          []string    `json:"peptides"`
	Dosage            string      `json:"dosage"`
	CycleLengthDays   int         `json:"cycle_length_days"`
	Category          string      `json:"category"`
	Features          []string    `json:"features"`
	Benefits          []string    `json:"benefits"`
	InStock           bool        `json:"in_stock"`
	EstimatedDelivery string      `json:"estimated_delivery,omitempty"`
}

type CartItem struct {
	ProductID      string  `json:"product_id"`
	Name           string  `json:"name"`
	UnitPrice      float64 `json:"unit_price"`
	Quantity       int     `json:"quantity"`
	IsSubscription bool    `json:"is_subscription"`
}

type Cart struct {
	ID       string     `json:"id"`
	Items    []CartItem `json:"items"`
	Subtotal float64    `json:"subtotal"`
	Total    float64    `json:"total"`
}
