package models

import "time"

type Order struct {
	ID             int         `json:"id"`
	FirstName      string      `json:"first_name"`
	LastName       string      `json:"last_name"`
	Email          string      `json:"email"`
	Address        string      `json:"address"`
	Phone          *string     `json:"phone,omitempty"`
	Paid           bool        `json:"paid"`
	PickupDatetime *time.Time  `json:"pickup_datetime,omitempty"`
	Items          []OrderItem `json:"items,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
}

type OrderItem struct {
	ID          int    `json:"id"`
	OrderID     int    `json:"order_id"`
	ProductID   int    `json:"product_id"`
	ProductName string `json:"product_name,omitempty"`
	UnitPrice   int    `json:"unit_price,omitempty"`
	Quantity    int    `json:"quantity"`
}
