package models

type AddToCartRequest struct {
	Quantity int `json:"quantity" form:"quantity" binding:"omitempty,min=1"`
}

// CheckoutRequest is the contact form submitted with the session cart.
// PickupDatetime accepts RFC 3339 or the HTML datetime-local format.
type CheckoutRequest struct {
	FirstName      string `json:"first_name" form:"first_name" binding:"required,max=50"`
	LastName       string `json:"last_name" form:"last_name" binding:"required,max=50"`
	Email          string `json:"email" form:"email" binding:"required,email"`
	Address        string `json:"address" form:"address" binding:"required,max=250"`
	Phone          string `json:"phone" form:"phone" binding:"omitempty,max=30"`
	PickupDatetime string `json:"pickup_datetime" form:"pickup_datetime" binding:"required"`
}

type OrderItemRequest struct {
	Product  int `json:"product" binding:"required,min=1"`
	Quantity int `json:"quantity" binding:"omitempty,min=1"`
}

// CreateOrderRequest is the direct API entry point: the item list rides in
// the payload instead of coming from session cart state.
type CreateOrderRequest struct {
	FirstName      string             `json:"first_name" binding:"required,max=50"`
	LastName       string             `json:"last_name" binding:"required,max=50"`
	Email          string             `json:"email" binding:"required,email"`
	Address        string             `json:"address" binding:"required,max=250"`
	Phone          string             `json:"phone" binding:"omitempty,max=30"`
	PickupDatetime string             `json:"pickup_datetime" binding:"omitempty"`
	Items          []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

type CreateProductRequest struct {
	Name        string `json:"name" form:"name" binding:"required,max=200"`
	Description string `json:"description" form:"description"`
	Price       int    `json:"price" form:"price" binding:"min=0"`
	Featured    bool   `json:"featured" form:"featured"`
	Flavor      string `json:"flavor" form:"flavor" binding:"omitempty,max=50"`
	Stock       int    `json:"stock" form:"stock" binding:"min=0"`
}

type UpdateProductRequest struct {
	Name        *string `json:"name" form:"name" binding:"omitempty,max=200"`
	Description *string `json:"description" form:"description"`
	Price       *int    `json:"price" form:"price" binding:"omitempty,min=0"`
	Featured    *bool   `json:"featured" form:"featured"`
	Flavor      *string `json:"flavor" form:"flavor" binding:"omitempty,max=50"`
	Stock       *int    `json:"stock" form:"stock" binding:"omitempty,min=0"`
}

type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type MarkPaidRequest struct {
	OrderIDs []int `json:"order_ids" binding:"required,min=1"`
}
