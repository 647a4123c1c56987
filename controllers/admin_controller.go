package controllers

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strconv"
	"strings"

	"fudge-kettle/config"
	"fudge-kettle/libs"
	"fudge-kettle/models"
	"fudge-kettle/repositories"
	"fudge-kettle/services"
	"fudge-kettle/utils"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	products *services.ProductService
	orders   *services.OrderService
}

func NewAdminController(products *services.ProductService, orders *services.OrderService) *AdminController {
	return &AdminController{products: products, orders: orders}
}

// @Summary Create product
// @Description Create a new product (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateProductRequest true "Product data"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/products [post]
func (ctrl *AdminController) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, models.ErrorResponse{
			Success: false,
			Message: "Validation failed",
			Errors:  utils.FieldErrors(err),
		})
		return
	}

	product, err := ctrl.products.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create product"})
		return
	}

	InvalidateProductCache()
	c.JSON(201, gin.H{"success": true, "message": "Product created successfully", "data": product})
}

// @Summary Update product
// @Description Update product fields (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body models.UpdateProductRequest true "Fields to update"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/products/{id} [patch]
func (ctrl *AdminController) UpdateProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, models.ErrorResponse{
			Success: false,
			Message: "Validation failed",
			Errors:  utils.FieldErrors(err),
		})
		return
	}

	product, err := ctrl.products.Update(c.Request.Context(), id, req)
	if errors.Is(err, repositories.ErrProductNotFound) {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update product"})
		return
	}

	InvalidateProductCache()
	c.JSON(200, gin.H{"success": true, "message": "Product updated successfully", "data": product})
}

// @Summary Upload product image
// @Description Attach an image to a product (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Product ID"
// @Param image formData file true "Image file"
// @Success 200 {object} models.Response
// @Router /admin/products/{id}/image [post]
func (ctrl *AdminController) UploadProductImage(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	product, err := ctrl.products.GetByID(c.Request.Context(), id)
	if errors.Is(err, repositories.ErrProductNotFound) {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve product"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Image file is required"})
		return
	}

	localPath, err := utils.UploadFile(c, fileHeader, "products")
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	imageURL := "/uploads/" + filepath.ToSlash(localPath)
	if libs.CloudinaryEnabled() {
		hosted, err := libs.UploadProductImage(c.Request.Context(),
			filepath.Join(config.AppConfig.UploadDir, localPath))
		if err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to upload image"})
			return
		}
		imageURL = hosted
	}

	if err := ctrl.products.SetImage(c.Request.Context(), id, imageURL); err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Product not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to update product image"})
		return
	}

	// Drop the previous local file once the replacement is in place.
	if old := product.ImageURL; old != nil && strings.HasPrefix(*old, "/uploads/") {
		if err := utils.DeleteFile(strings.TrimPrefix(*old, "/uploads/")); err != nil {
			log.Printf("Failed to remove old image for product %d: %v", id, err)
		}
	}

	InvalidateProductCache()
	c.JSON(200, gin.H{
		"success": true,
		"message": "Image uploaded successfully",
		"data":    gin.H{"image_url": imageURL},
	})
}

// @Summary Delete product
// @Description Delete a product. Rejected while order items still reference it (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Router /admin/products/{id} [delete]
func (ctrl *AdminController) DeleteProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	err := ctrl.products.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, repositories.ErrProductNotFound):
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
	case errors.Is(err, repositories.ErrProductInUse):
		c.JSON(409, gin.H{"success": false, "message": "Product is referenced by existing orders"})
	case err != nil:
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete product"})
	default:
		InvalidateProductCache()
		c.JSON(200, gin.H{"success": true, "message": "Product deleted successfully", "data": gin.H{"id": id}})
	}
}

// @Summary Get order by ID
// @Description Get one order with its items (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/orders/{id} [get]
func (ctrl *AdminController) GetOrderByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid order ID"})
		return
	}

	order, err := ctrl.orders.GetOrder(c.Request.Context(), id)
	if errors.Is(err, repositories.ErrOrderNotFound) {
		c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve order"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Order retrieved successfully", "data": order})
}

// @Summary Mark orders paid
// @Description Bulk mark the given orders as paid (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.MarkPaidRequest true "Order IDs"
// @Success 200 {object} models.Response
// @Router /admin/orders/mark-paid [post]
func (ctrl *AdminController) MarkOrdersPaid(c *gin.Context) {
	var req models.MarkPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{
			Success: false,
			Message: "Validation failed",
			Errors:  utils.FieldErrors(err),
		})
		return
	}

	updated, err := ctrl.orders.MarkPaid(c.Request.Context(), req.OrderIDs)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update orders"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": fmt.Sprintf("%d orders marked as paid", updated),
		"data":    gin.H{"updated": updated},
	})
}

// @Summary Delete order
// @Description Delete an order and its items (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/orders/{id} [delete]
func (ctrl *AdminController) DeleteOrder(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid order ID"})
		return
	}

	err := ctrl.orders.DeleteOrder(c.Request.Context(), id)
	if errors.Is(err, repositories.ErrOrderNotFound) {
		c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete order"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Order deleted successfully", "data": gin.H{"id": id}})
}
