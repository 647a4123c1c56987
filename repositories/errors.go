package repositories

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
	// ErrProductInUse is returned when a delete is rejected because order
	// items still reference the product (FK RESTRICT).
	ErrProductInUse = errors.New("product is referenced by existing orders")
)
