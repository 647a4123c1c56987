package services

import (
	"context"
	"fmt"
	"sync"

	"fudge-kettle/events"
	"fudge-kettle/models"
	"fudge-kettle/repositories"
)

// fakeCatalog serves products from a fixed map.
type fakeCatalog struct {
	products map[int]models.Product
}

func newFakeCatalog(products ...models.Product) *fakeCatalog {
	m := map[int]models.Product{}
	for _, p := range products {
		m[p.ID] = p
	}
	return &fakeCatalog{products: m}
}

func (f *fakeCatalog) List(ctx context.Context, flavor string, featured *bool, page, limit int) ([]models.Product, int, error) {
	out := []models.Product{}
	for _, p := range f.products {
		if flavor != "" && (p.Flavor == nil || *p.Flavor != flavor) {
			continue
		}
		if featured != nil && p.Featured != *featured {
			continue
		}
		out = append(out, p)
	}
	return out, len(out), nil
}

func (f *fakeCatalog) GetByID(ctx context.Context, id int) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, repositories.ErrProductNotFound
	}
	return &p, nil
}

func (f *fakeCatalog) GetByIDs(ctx context.Context, ids []int) (map[int]models.Product, error) {
	out := map[int]models.Product{}
	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (f *fakeCatalog) Create(ctx context.Context, p *models.Product) error {
	p.ID = len(f.products) + 1
	f.products[p.ID] = *p
	return nil
}

func (f *fakeCatalog) Update(ctx context.Context, p *models.Product) error {
	if _, ok := f.products[p.ID]; !ok {
		return repositories.ErrProductNotFound
	}
	f.products[p.ID] = *p
	return nil
}

func (f *fakeCatalog) SetImage(ctx context.Context, id int, imageURL string) error {
	p, ok := f.products[id]
	if !ok {
		return repositories.ErrProductNotFound
	}
	p.ImageURL = &imageURL
	f.products[id] = p
	return nil
}

func (f *fakeCatalog) Delete(ctx context.Context, id int) error {
	if _, ok := f.products[id]; !ok {
		return repositories.ErrProductNotFound
	}
	delete(f.products, id)
	return nil
}

// fakeOrderStore records created orders in memory.
type fakeOrderStore struct {
	mu      sync.Mutex
	orders  []models.Order
	nextID  int
	failAll bool
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{nextID: 1}
}

func (f *fakeOrderStore) Create(ctx context.Context, order *models.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return fmt.Errorf("storage unavailable")
	}
	order.ID = f.nextID
	f.nextID++
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
		order.Items[i].ID = i + 1
	}
	f.orders = append(f.orders, *order)
	return nil
}

func (f *fakeOrderStore) List(ctx context.Context, page, limit int) ([]models.Order, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Order{}, f.orders...), len(f.orders), nil
}

func (f *fakeOrderStore) GetByID(ctx context.Context, id int) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, o := range f.orders {
		if o.ID == id {
			return &o, nil
		}
	}
	return nil, repositories.ErrOrderNotFound
}

func (f *fakeOrderStore) MarkPaid(ctx context.Context, ids []int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	updated := 0
	for _, id := range ids {
		for i := range f.orders {
			if f.orders[i].ID == id && !f.orders[i].Paid {
				f.orders[i].Paid = true
				updated++
			}
		}
	}
	return updated, nil
}

func (f *fakeOrderStore) Delete(ctx context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.orders {
		if f.orders[i].ID == id {
			f.orders = append(f.orders[:i], f.orders[i+1:]...)
			return nil
		}
	}
	return repositories.ErrOrderNotFound
}

// fakePublisher counts published events.
type fakePublisher struct {
	mu     sync.Mutex
	events []events.OrderCreated
}

func (f *fakePublisher) PublishOrderCreated(ctx context.Context, event events.OrderCreated) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

func (f *fakePublisher) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.events)
}
