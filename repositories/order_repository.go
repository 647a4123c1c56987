package repositories

import (
	"context"
	"errors"

	"fudge-kettle/config"
	"fudge-kettle/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Create persists the order and every line item in a single transaction.
// Either the whole order lands or nothing does; a product id that vanished
// concurrently trips the FK and rolls everything back.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO orders (first_name, last_name, email, address, phone, paid, pickup_datetime)
		 VALUES ($1, $2, $3, $4, $5, false, $6)
		 RETURNING id, created_at`,
		order.FirstName, order.LastName, order.Email, order.Address, order.Phone, order.PickupDatetime,
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return err
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		err = tx.QueryRow(ctx,
			`INSERT INTO order_items (order_id, product_id, quantity)
			 VALUES ($1, $2, $3) RETURNING id`,
			item.OrderID, item.ProductID, item.Quantity,
		).Scan(&item.ID)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return ErrProductNotFound
			}
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *OrderRepository) List(ctx context.Context, page, limit int) ([]models.Order, int, error) {
	var total int
	if err := config.DB.QueryRow(ctx, "SELECT COUNT(*) FROM orders").Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := config.DB.Query(ctx,
		`SELECT id, first_name, last_name, email, address, phone, paid, pickup_datetime, created_at
		 FROM orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.FirstName, &o.LastName, &o.Email, &o.Address,
			&o.Phone, &o.Paid, &o.PickupDatetime, &o.CreatedAt); err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := r.attachItems(ctx, orders); err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id int) (*models.Order, error) {
	var o models.Order
	err := config.DB.QueryRow(ctx,
		`SELECT id, first_name, last_name, email, address, phone, paid, pickup_datetime, created_at
		 FROM orders WHERE id = $1`, id,
	).Scan(&o.ID, &o.FirstName, &o.LastName, &o.Email, &o.Address,
		&o.Phone, &o.Paid, &o.PickupDatetime, &o.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	orders := []models.Order{o}
	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

func (r *OrderRepository) attachItems(ctx context.Context, orders []models.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]int, len(orders))
	index := make(map[int]*models.Order, len(orders))
	for i := range orders {
		ids[i] = orders[i].ID
		index[orders[i].ID] = &orders[i]
	}

	rows, err := config.DB.Query(ctx,
		`SELECT oi.id, oi.order_id, oi.product_id, p.name, p.price, oi.quantity
		 FROM order_items oi
		 JOIN products p ON p.id = oi.product_id
		 WHERE oi.order_id = ANY($1)
		 ORDER BY oi.id`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID,
			&item.ProductName, &item.UnitPrice, &item.Quantity); err != nil {
			return err
		}
		if o, ok := index[item.OrderID]; ok {
			o.Items = append(o.Items, item)
		}
	}
	return rows.Err()
}

// MarkPaid flips the paid flag on the given orders and reports how many
// rows changed. Mirrors the admin bulk action.
func (r *OrderRepository) MarkPaid(ctx context.Context, ids []int) (int, error) {
	tag, err := config.DB.Exec(ctx, "UPDATE orders SET paid = true WHERE id = ANY($1)", ids)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

// Delete removes the order; its items go with it (ON DELETE CASCADE).
func (r *OrderRepository) Delete(ctx context.Context, id int) error {
	tag, err := config.DB.Exec(ctx, "DELETE FROM orders WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrOrderNotFound
	}
	return nil
}
