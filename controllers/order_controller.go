package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"food-order/middleware"
	"food-order/models"
	"food-order/services"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// List godoc
// @Summary List orders
// @Description List all orders, optionally filtered by exact status (Admin only).
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param status query string false "Filter by status (PENDING, CANCELLED, FINALIZED)"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /orders/order [get]
func (ctrl *OrderController) List(c *gin.Context) {
	orders, err := ctrl.orders.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		internalError(c, "Failed to list orders", err)
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Orders retrieved successfully",
		Data:    orders,
	})
}

// Create godoc
// @Summary Create order
// @Description Create a new PENDING order for the given owner id.
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateOrderRequest true "Create Order Request"
// @Success 201 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /orders/order [post]
func (ctrl *OrderController) Create(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(422, models.ErrorResponse{
			Kind:    "validation_error",
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	order, err := ctrl.orders.Create(c.Request.Context(), req.OwnerID)
	if err != nil {
		internalError(c, "Failed to create order", err)
		return
	}

	c.JSON(201, models.Response{
		Success: true,
		Message: "Order created successfully",
		Data:    order,
	})
}

// GetByID godoc
// @Summary Get order
// @Description Get an order with its items. Restricted to the owner or an administrator.
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/order/{id} [get]
func (ctrl *OrderController) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(422, models.ErrorResponse{
			Kind:    "validation_error",
			Message: "Invalid order id",
		})
		return
	}

	order, err := ctrl.orders.GetByID(c.Request.Context(), id, middleware.CurrentUser(c))
	if ctrl.respondDomainError(c, err) {
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Order retrieved successfully",
		Data:    order,
	})
}

// Cancel godoc
// @Summary Cancel order
// @Description Cancel an order. Allowed for the owner or an administrator.
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.OrderResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/order/cancel/{id} [post]
func (ctrl *OrderController) Cancel(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(422, models.ErrorResponse{
			Kind:    "validation_error",
			Message: "Invalid order id",
		})
		return
	}

	order, err := ctrl.orders.Cancel(c.Request.Context(), id, middleware.CurrentUser(c))
	if ctrl.respondDomainError(c, err) {
		return
	}

	c.JSON(200, models.OrderResponse{
		Success: true,
		Message: "Order cancelled successfully",
		Order:   order,
	})
}

// AddItem godoc
// @Summary Add order item
// @Description Attach a line item to an order and recompute its total.
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body models.AddItemRequest true "Add Item Request"
// @Success 201 {object} models.OrderResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /orders/order/add-item/{id} [post]
func (ctrl *OrderController) AddItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(422, models.ErrorResponse{
			Kind:    "validation_error",
			Message: "Invalid order id",
		})
		return
	}

	var req models.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(422, models.ErrorResponse{
			Kind:    "validation_error",
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	item := models.OrderItem{
		Quantity:  req.Quantity,
		Flavor:    req.Flavor,
		Size:      req.Size,
		UnitPrice: req.UnitPrice,
	}

	order, err := ctrl.orders.AddItem(c.Request.Context(), id, middleware.CurrentUser(c), item)
	if ctrl.respondDomainError(c, err) {
		return
	}

	c.JSON(201, models.OrderResponse{
		Success: true,
		Message: "Item added successfully",
		Order:   order,
	})
}

// RemoveItem godoc
// @Summary Remove order item
// @Description Detach a line item from its order and recompute the total.
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param item_id path int true "Order Item ID"
// @Success 200 {object} models.OrderResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/order/remove-item/{item_id} [delete]
func (ctrl *OrderController) RemoveItem(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("item_id"))
	if err != nil {
		c.JSON(422, models.ErrorResponse{
			Kind:    "validation_error",
			Message: "Invalid item id",
		})
		return
	}

	order, err := ctrl.orders.RemoveItem(c.Request.Context(), itemID, middleware.CurrentUser(c))
	if ctrl.respondDomainError(c, err) {
		return
	}

	c.JSON(200, models.OrderResponse{
		Success: true,
		Message: "Item removed successfully",
		Order:   order,
	})
}

// respondDomainError maps domain errors 1:1 to statuses and reports whether
// a response was written.
func (ctrl *OrderController) respondDomainError(c *gin.Context, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, services.ErrNotFound):
		c.JSON(404, models.ErrorResponse{
			Kind:    "not_found",
			Message: "Order not found",
		})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(403, models.ErrorResponse{
			Kind:    "forbidden",
			Message: "You are not allowed to access this order",
		})
	default:
		internalError(c, "Order operation failed", err)
	}
	return true
}
