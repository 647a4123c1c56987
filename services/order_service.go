package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"fudge-kettle/events"
	"fudge-kettle/models"
	"fudge-kettle/repositories"
)

// pickupLayouts accepts RFC 3339 and the HTML datetime-local format.
var pickupLayouts = []string{time.RFC3339, "2006-01-02T15:04"}

func ParsePickupTime(value string) (time.Time, error) {
	for _, layout := range pickupLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidPickupTime
}

type OrderService struct {
	orders    OrderStore
	products  ProductCatalog
	cart      *CartService
	publisher events.Publisher
}

func NewOrderService(orders OrderStore, products ProductCatalog, cart *CartService, publisher events.Publisher) *OrderService {
	return &OrderService{orders: orders, products: products, cart: cart, publisher: publisher}
}

// CheckoutCart converts the session cart plus the contact form into a
// persisted order, then clears the cart. Validation failures leave both the
// database and the cart untouched.
func (s *OrderService) CheckoutCart(ctx context.Context, sessionID string, req models.CheckoutRequest) (*models.Order, error) {
	pickup, err := ParsePickupTime(req.PickupDatetime)
	if err != nil {
		return nil, err
	}

	cart, err := s.cart.Snapshot(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(cart) == 0 {
		return nil, ErrEmptyCart
	}

	order := &models.Order{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Address:        req.Address,
		PickupDatetime: &pickup,
		Items:          itemsFromCart(cart),
	}
	setPhone(order, req.Phone)

	if err := s.place(ctx, order); err != nil {
		return nil, err
	}

	// The cart is emptied exactly once, only after the order committed.
	if err := s.cart.Clear(ctx, sessionID); err != nil {
		log.Printf("Failed to clear cart for session %s: %v", sessionID, err)
	}
	return order, nil
}

// CreateOrder is the direct API entry point: items arrive in the payload
// rather than from session state. Pickup time is optional here.
func (s *OrderService) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	var pickup *time.Time
	if req.PickupDatetime != "" {
		t, err := ParsePickupTime(req.PickupDatetime)
		if err != nil {
			return nil, err
		}
		pickup = &t
	}

	// Duplicate product ids in the payload accumulate into one line.
	cart := map[int]int{}
	for _, item := range req.Items {
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		cart[item.Product] += qty
	}

	order := &models.Order{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Address:        req.Address,
		PickupDatetime: pickup,
		Items:          itemsFromCart(cart),
	}
	setPhone(order, req.Phone)

	if err := s.place(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) place(ctx context.Context, order *models.Order) error {
	ids := make([]int, 0, len(order.Items))
	for _, item := range order.Items {
		ids = append(ids, item.ProductID)
	}
	known, err := s.products.GetByIDs(ctx, ids)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			return fmt.Errorf("product %d: %w", id, repositories.ErrProductNotFound)
		}
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return err
	}

	s.emitOrderCreated(order)
	return nil
}

// emitOrderCreated publishes the domain event. A publish failure is logged
// and swallowed; the order is already committed and must not be failed by
// the notification side.
func (s *OrderService) emitOrderCreated(order *models.Order) {
	if s.publisher == nil {
		return
	}

	event := events.OrderCreated{
		OrderID:        order.ID,
		FirstName:      order.FirstName,
		Email:          order.Email,
		PickupDatetime: order.PickupDatetime,
		CreatedAt:      order.CreatedAt,
	}
	if order.Phone != nil {
		event.Phone = *order.Phone
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.publisher.PublishOrderCreated(ctx, event); err != nil {
		log.Printf("Failed to publish order_created for order %d: %v", order.ID, err)
	}
}

func (s *OrderService) ListOrders(ctx context.Context, page, limit int) ([]models.Order, int, error) {
	return s.orders.List(ctx, page, limit)
}

func (s *OrderService) GetOrder(ctx context.Context, id int) (*models.Order, error) {
	return s.orders.GetByID(ctx, id)
}

func (s *OrderService) MarkPaid(ctx context.Context, ids []int) (int, error) {
	return s.orders.MarkPaid(ctx, ids)
}

func (s *OrderService) DeleteOrder(ctx context.Context, id int) error {
	return s.orders.Delete(ctx, id)
}

func itemsFromCart(cart map[int]int) []models.OrderItem {
	ids := make([]int, 0, len(cart))
	for productID := range cart {
		ids = append(ids, productID)
	}
	sort.Ints(ids)

	items := make([]models.OrderItem, 0, len(ids))
	for _, productID := range ids {
		items = append(items, models.OrderItem{
			ProductID: productID,
			Quantity:  cart[productID],
		})
	}
	return items
}

func setPhone(order *models.Order, phone string) {
	if phone != "" {
		order.Phone = &phone
	}
}
