package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"

	"fudge-kettle/events"
	"fudge-kettle/middleware"
	"fudge-kettle/models"
	"fudge-kettle/repositories"
	"fudge-kettle/services"

	"github.com/gin-gonic/gin"
)

type stubCatalog struct {
	products map[int]models.Product
	inUse    map[int]bool
}

func newStubCatalog(products ...models.Product) *stubCatalog {
	m := map[int]models.Product{}
	for _, p := range products {
		m[p.ID] = p
	}
	return &stubCatalog{products: m, inUse: map[int]bool{}}
}

func (f *stubCatalog) List(ctx context.Context, flavor string, featured *bool, page, limit int) ([]models.Product, int, error) {
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

func (f *stubCatalog) GetByID(ctx context.Context, id int) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, repositories.ErrProductNotFound
	}
	return &p, nil
}

func (f *stubCatalog) GetByIDs(ctx context.Context, ids []int) (map[int]models.Product, error) {
	out := map[int]models.Product{}
	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (f *stubCatalog) Create(ctx context.Context, p *models.Product) error {
	p.ID = len(f.products) + 1
	f.products[p.ID] = *p
	return nil
}

func (f *stubCatalog) Update(ctx context.Context, p *models.Product) error {
	if _, ok := f.products[p.ID]; !ok {
		return repositories.ErrProductNotFound
	}
	f.products[p.ID] = *p
	return nil
}

func (f *stubCatalog) SetImage(ctx context.Context, id int, imageURL string) error {
	p, ok := f.products[id]
	if !ok {
		return repositories.ErrProductNotFound
	}
	p.ImageURL = &imageURL
	f.products[id] = p
	return nil
}

func (f *stubCatalog) Delete(ctx context.Context, id int) error {
	if _, ok := f.products[id]; !ok {
		return repositories.ErrProductNotFound
	}
	if f.inUse[id] {
		return repositories.ErrProductInUse
	}
	delete(f.products, id)
	return nil
}

type stubOrderStore struct {
	mu     sync.Mutex
	orders []models.Order
}

func (f *stubOrderStore) Create(ctx context.Context, order *models.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	order.ID = len(f.orders) + 1
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
		order.Items[i].ID = i + 1
	}
	f.orders = append(f.orders, *order)
	return nil
}

func (f *stubOrderStore) List(ctx context.Context, page, limit int) ([]models.Order, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Order{}, f.orders...), len(f.orders), nil
}

func (f *stubOrderStore) GetByID(ctx context.Context, id int) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, o := range f.orders {
		if o.ID == id {
			return &o, nil
		}
	}
	return nil, repositories.ErrOrderNotFound
}

func (f *stubOrderStore) MarkPaid(ctx context.Context, ids []int) (int, error) {
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

func (f *stubOrderStore) Delete(ctx context.Context, id int) error {
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

type stubPublisher struct {
	mu     sync.Mutex
	events []events.OrderCreated
}

func (f *stubPublisher) PublishOrderCreated(ctx context.Context, event events.OrderCreated) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

func (f *stubPublisher) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.events)
}

type testEnv struct {
	router    *gin.Engine
	cart      *services.CartService
	catalog   *stubCatalog
	orders    *stubOrderStore
	publisher *stubPublisher
}

func newTestEnv(products ...models.Product) *testEnv {
	gin.SetMode(gin.TestMode)

	catalog := newStubCatalog(products...)
	orders := &stubOrderStore{}
	publisher := &stubPublisher{}

	cartService := services.NewCartService(services.NewMemoryCartStore(), catalog)
	orderService := services.NewOrderService(orders, catalog, cartService, publisher)
	productService := services.NewProductService(catalog)

	productCtrl := NewProductController(productService)
	cartCtrl := NewCartController(cartService)
	orderCtrl := NewOrderController(orderService)

	router := gin.New()
	api := router.Group("/api")
	api.GET("/products", productCtrl.ListProducts)
	api.GET("/products/:id", productCtrl.GetProductByID)
	api.GET("/orders", orderCtrl.ListOrders)
	api.POST("/orders", orderCtrl.CreateOrder)

	shop := router.Group("/shop")
	shop.Use(middleware.SessionMiddleware())
	shop.GET("/cart", cartCtrl.GetCart)
	shop.POST("/cart/add/:id", cartCtrl.AddToCart)
	shop.POST("/orders", orderCtrl.Checkout)

	return &testEnv{
		router:    router,
		cart:      cartService,
		catalog:   catalog,
		orders:    orders,
		publisher: publisher,
	}
}

// do replays the session cookie between requests so a test behaves like one
// browser session.
func (e *testEnv) do(req *http.Request, cookies []*http.Cookie) (*httptest.ResponseRecorder, []*http.Cookie) {
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	merged := cookies
	if set := w.Result().Cookies(); len(set) > 0 {
		merged = set
	}
	return w, merged
}
