package services

import "errors"

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidPickupTime = errors.New("invalid pickup datetime")
)
