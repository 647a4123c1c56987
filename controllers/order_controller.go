package controllers

import (
	"errors"
	"strconv"

	"fudge-kettle/middleware"
	"fudge-kettle/models"
	"fudge-kettle/repositories"
	"fudge-kettle/services"
	"fudge-kettle/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// @Summary Checkout
// @Description Submit the order form; converts the session cart into a persisted order and clears the cart
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body models.CheckoutRequest true "Contact fields and pickup time"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /shop/orders [post]
func (ctrl *OrderController) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, models.ErrorResponse{
			Success: false,
			Message: "Validation failed",
			Errors:  utils.FieldErrors(err),
		})
		return
	}

	order, err := ctrl.orders.CheckoutCart(c.Request.Context(), middleware.SessionID(c), req)
	if err != nil {
		ctrl.respondOrderError(c, err)
		return
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Thank you for your order!",
		"data":    order,
	})
}

// @Summary Create order
// @Description Create an order from a structured payload with an item list
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body models.CreateOrderRequest true "Order payload"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /api/orders [post]
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{
			Success: false,
			Message: "Validation failed",
			Errors:  utils.FieldErrors(err),
		})
		return
	}

	order, err := ctrl.orders.CreateOrder(c.Request.Context(), req)
	if err != nil {
		ctrl.respondOrderError(c, err)
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Order created successfully", "data": order})
}

// @Summary List orders
// @Description Get paginated list of orders with their items
// @Tags Orders
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.PaginationResponse
// @Router /api/orders [get]
func (ctrl *OrderController) ListOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	orders, total, err := ctrl.orders.ListOrders(c.Request.Context(), page, limit)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve orders"})
		return
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	c.JSON(200, models.PaginationResponse{
		Success: true,
		Message: "Orders retrieved successfully",
		Data:    orders,
		Meta: models.PaginationMeta{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages,
		},
	})
}

func (ctrl *OrderController) respondOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidPickupTime):
		c.JSON(400, models.ErrorResponse{
			Success: false,
			Message: "Validation failed",
			Errors:  map[string]string{"pickup_datetime": "must be RFC 3339 or YYYY-MM-DDTHH:MM"},
		})
	case errors.Is(err, services.ErrEmptyCart):
		c.JSON(400, gin.H{"success": false, "message": "Cart is empty"})
	case errors.Is(err, repositories.ErrProductNotFound):
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
	default:
		c.JSON(500, gin.H{"success": false, "message": "Failed to create order"})
	}
}
