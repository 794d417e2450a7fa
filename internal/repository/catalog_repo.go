package repository

import (
	"errors"

	"github.com/Dolonia333/enhanced-games-peptides/internal/models"
)

var ErrProductNotFound = errors.New("product not found")

// CatalogRepository serves the fixed product list. The catalog is curated by
// hand; adding or removing a product means editing the slice below.
type CatalogRepository struct {
	products []models.Product
}

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{products: catalogProducts}
}

func (r *CatalogRepository) List() []models.Product {
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out
}

func (r *CatalogRepository) GetByID(id string) (*models.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			product := r.products[i]
			return &product, nil
		}
	}
	return nil, ErrProductNotFound
}

func (r *CatalogRepository) GetBySlug(slug string) (*models.Product, error) {
	for i := range r.products {
		if r.products[i].Slug == slug {
			product := r.products[i]
			return &product, nil
		}
	}
	return nil, ErrProductNotFound
}

func subscriptionPrice(v float64) *float64 {
	return &v
}

var catalogProducts = []models.Product{
	{
		ID:                "performance-boost-kit",
		Name:              "Performance Boost Kit",
		Slug:              "performance-boost-kit",
		Description:       "Advanced peptide stack for maximum athletic performance",
		LongDescription:   "Our Performance Boost Kit combines synergistic peptides to enhance muscle growth, recovery, and endurance. Perfect for athletes looking to push their limits.",
		Tier:              models.TierAdvanced,
		RxRequired:        true,
		PriceOneTime:      299,
		PriceSubscription: subscriptionPrice(249),
		Peptides:          []string{"IGF-1", "GHRP-6", "CJC-1295", "BPC-157"},
		Dosage:            "2-4mg daily",
		CycleLengthDays:   90,
		Category:          "Performance",
		Features: []string{
			"Muscle growth acceleration",
			"Enhanced recovery time",
			"Increased endurance",
			"Joint & tendon repair",
		},
		Benefits: []string{
			"15-25% increase in lean muscle mass",
			"50% faster recovery after workouts",
			"Improved cardiovascular performance",
			"Reduced injury risk",
		},
		InStock:           true,
		EstimatedDelivery: "2-3 business days",
	},
	{
		ID:                "recovery-master-kit",
		Name:              "Recovery Master Kit",
		Slug:              "recovery-master-kit",
		Description:       "Complete recovery solution for optimal tissue repair",
		LongDescription:   "The Recovery Master Kit focuses on comprehensive tissue repair and accelerated healing. Essential for athletes with high training loads or recovering from injuries.",
		Tier:              models.TierGreat,
		RxRequired:        false,
		PriceOneTime:      199,
		PriceSubscription: subscriptionPrice(169),
		Peptides:          []string{"BPC-157", "TB-500", "GHK-Cu"},
		Dosage:            "1-2mg daily",
		CycleLengthDays:   60,
		Category:          "Recovery",
		Features: []string{
			"Accelerated tissue repair",
			"Reduced inflammation",
			"Enhanced collagen production",
			"Improved sleep quality",
		},
		Benefits: []string{
			"70% faster injury healing",
			"Reduced chronic inflammation",
			"Better sleep quality",
			"Improved joint mobility",
		},
		InStock:           true,
		EstimatedDelivery: "1-2 business days",
	},
	{
		ID:                "cognitive-enhancer-kit",
		Name:              "Cognitive Enhancer Kit",
		Slug:              "cognitive-enhancer-kit",
		Description:       "Mental performance and cognitive enhancement peptides",
		LongDescription:   "Enhance your mental performance with our Cognitive Enhancer Kit. Designed for peak mental clarity, focus, and cognitive function.",
		Tier:              models.TierSuperEnhanced,
		RxRequired:        true,
		PriceOneTime:      349,
		PriceSubscription: subscriptionPrice(299),
		Peptides:          []string{"Noopept", "Selank", "Semax", "P21"},
		Dosage:            "300-600mg daily",
		CycleLengthDays:   60,
		Category:          "Cognitive",
		Features: []string{
			"Enhanced memory retention",
			"Improved mental clarity",
			"Reduced anxiety",
			"Neuroprotective effects",
		},
		Benefits: []string{
			"30% improvement in memory tasks",
			"Better focus and concentration",
			"Reduced mental fatigue",
			"Enhanced learning capacity",
		},
		InStock:           true,
		EstimatedDelivery: "2-3 business days",
	},
	{
		ID:                "anti-aging-elixir",
		Name:              "Anti-Aging Elixir",
		Slug:              "anti-aging-elixir",
		Description:       "Comprehensive anti-aging peptide therapy",
		LongDescription:   "Our Anti-Aging Elixir combines the most effective longevity peptides to combat aging at the cellular level and promote overall vitality.",
		Tier:              models.TierSuperEnhanced,
		RxRequired:        true,
		PriceOneTime:      399,
		PriceSubscription: subscriptionPrice(349),
		Peptides:          []string{"Epitalon", "GHK-Cu", "Thymosin Alpha-1", "CJC-1295"},
		Dosage:            "2-3mg daily",
		CycleLengthDays:   120,
		Category:          "Longevity",
		Features: []string{
			"Cellular regeneration",
			"Enhanced immune function",
			"Improved skin health",
			"Telomere protection",
		},
		Benefits: []string{
			"Slowed cellular aging process",
			"Stronger immune response",
			"Improved skin elasticity",
			"Enhanced vitality",
		},
		InStock:           true,
		EstimatedDelivery: "2-3 business days",
	},
}
