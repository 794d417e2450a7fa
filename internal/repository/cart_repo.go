package repository

import (
	"errors"
	"sync"

	"github.com/Dolonia333/enhanced-games-peptides/internal/models"
	"github.com/google/uuid"
)

var ErrCartNotFound = errors.New("cart not found")

// CartRepository keeps carts in memory for the lifetime of the process. All
// mutation happens inside Update under the repository's lock; Get and Create
// hand out snapshot copies, never the stored cart itself.
type CartRepository struct {
	mu    sync.RWMutex
	carts map[string]*models.Cart
}

func NewCartRepository() *CartRepository {
	return &CartRepository{carts: make(map[string]*models.Cart)}
}

func (r *CartRepository) Create() *models.Cart {
	cart := &models.Cart{
		ID:    uuid.NewString(),
		Items: []models.CartItem{},
	}

	r.mu.Lock()
	r.carts[cart.ID] = cart
	r.mu.Unlock()

	return snapshotCart(cart)
}

func (r *CartRepository) Get(id string) (*models.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cart, ok := r.carts[id]
	if !ok {
		return nil, ErrCartNotFound
	}
	return snapshotCart(cart), nil
}

// Update applies fn to the stored cart under the repository's lock and
// returns a snapshot of the result. When fn returns an error the cart keeps
// whatever state fn left it in; callers must only mutate on the nil path.
func (r *CartRepository) Update(id string, fn func(*models.Cart) error) (*models.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cart, ok := r.carts[id]
	if !ok {
		return nil, ErrCartNotFound
	}
	if err := fn(cart); err != nil {
		return nil, err
	}
	return snapshotCart(cart), nil
}

func (r *CartRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.carts[id]; !ok {
		return ErrCartNotFound
	}
	delete(r.carts, id)
	return nil
}

func snapshotCart(cart *models.Cart) *models.Cart {
	clone := *cart
	clone.Items = make([]models.CartItem, len(cart.Items))
	copy(clone.Items, cart.Items)
	return &clone
}
