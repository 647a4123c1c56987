package services

import (
	"context"

	"fudge-kettle/models"
)

// ProductCatalog is the read/write surface over the product table.
// Implemented by repositories.ProductRepository; mocked in tests.
type ProductCatalog interface {
	List(ctx context.Context, flavor string, featured *bool, page, limit int) ([]models.Product, int, error)
	GetByID(ctx context.Context, id int) (*models.Product, error)
	GetByIDs(ctx context.Context, ids []int) (map[int]models.Product, error)
	Create(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, p *models.Product) error
	SetImage(ctx context.Context, id int, imageURL string) error
	Delete(ctx context.Context, id int) error
}

// OrderStore persists orders. Create is all-or-nothing over the order row
// and its items.
type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	List(ctx context.Context, page, limit int) ([]models.Order, int, error)
	GetByID(ctx context.Context, id int) (*models.Order, error)
	MarkPaid(ctx context.Context, ids []int) (int, error)
	Delete(ctx context.Context, id int) error
}

// CartStore holds the session-scoped product id -> quantity mapping. The
// cart never lives in a process global; whatever backs this interface is
// injected into the services that need it.
type CartStore interface {
	Get(ctx context.Context, sessionID string) (map[int]int, error)
	Put(ctx context.Context, sessionID string, cart map[int]int) error
	Clear(ctx context.Context, sessionID string) error
}
