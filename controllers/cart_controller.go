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

type CartController struct {
	cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{cart: cart}
}

// @Summary View cart
// @Description Resolve the session cart against the catalog with line and aggregate totals
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /shop/cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	view, err := ctrl.cart.View(c.Request.Context(), middleware.SessionID(c))
	if errors.Is(err, repositories.ErrProductNotFound) {
		c.JSON(404, gin.H{"success": false, "message": "A product in your cart no longer exists"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load cart"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Cart retrieved",
		"data": gin.H{
			"items":           view.Items,
			"total":           view.Total,
			"total_formatted": utils.FormatPrice(view.Total),
		},
	})
}

// @Summary Add to cart
// @Description Add a quantity of a product to the session cart (additive, default 1)
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body models.AddToCartRequest false "Quantity"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /shop/cart/add/{id} [post]
func (ctrl *CartController) AddToCart(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	var req models.AddToCartRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, models.ErrorResponse{
			Success: false,
			Message: "Validation failed",
			Errors:  utils.FieldErrors(err),
		})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	err := ctrl.cart.Add(c.Request.Context(), middleware.SessionID(c), id, req.Quantity)
	if errors.Is(err, repositories.ErrProductNotFound) {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update cart"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Product added to cart"})
}
