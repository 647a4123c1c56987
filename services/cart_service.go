package services

import (
	"context"
	"fmt"
	"sort"

	"fudge-kettle/models"
	"fudge-kettle/repositories"
)

type CartService struct {
	store    CartStore
	products ProductCatalog
}

func NewCartService(store CartStore, products ProductCatalog) *CartService {
	return &CartService{store: store, products: products}
}

// Add increments the stored quantity for the product, creating the entry if
// absent. Quantities below 1 fall back to 1. There is deliberately no bound
// against stock here; stock stays informational.
func (s *CartService) Add(ctx context.Context, sessionID string, productID, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return err
	}

	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	cart[productID] += quantity
	return s.store.Put(ctx, sessionID, cart)
}

// View resolves the cart against the catalog. A product id that no longer
// exists fails the whole view, never a partial one.
func (s *CartService) View(ctx context.Context, sessionID string) (*models.CartView, error) {
	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	view := &models.CartView{Items: []models.CartLine{}}
	if len(cart) == 0 {
		return view, nil
	}

	ids := make([]int, 0, len(cart))
	for productID := range cart {
		ids = append(ids, productID)
	}
	sort.Ints(ids)

	products, err := s.products.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, productID := range ids {
		product, ok := products[productID]
		if !ok {
			return nil, fmt.Errorf("product %d: %w", productID, repositories.ErrProductNotFound)
		}
		qty := cart[productID]
		view.Items = append(view.Items, models.CartLine{
			Product:   product,
			Quantity:  qty,
			LineTotal: product.Price * qty,
		})
		view.Total += product.Price * qty
	}
	return view, nil
}

// Snapshot returns the raw mapping for checkout.
func (s *CartService) Snapshot(ctx context.Context, sessionID string) (map[int]int, error) {
	return s.store.Get(ctx, sessionID)
}

func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	return s.store.Clear(ctx, sessionID)
}
