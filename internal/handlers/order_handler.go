package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/CSCI-GA-2820-SP25-001/orders/internal/middlewares"
	"github.com/CSCI-GA-2820-SP25-001/orders/internal/models"
)

type OrderHandler struct {
	db *gorm.DB
}

// Create handles POST /orders.
func (h *OrderHandler) Create(c *gin.Context) {

	defer func() {
		middlewares.RecordOrderOperation("create", c.Writer.Status() < 400)
	}()

	if !requireJSON(c) {
		return
	}

	var data map[string]any

	if err := c.ShouldBindJSON(&data); err != nil {
		badRequest(c, "Invalid Order: body of request contained bad or no data")
		return
	}

	var order models.Order

	if err := order.Deserialize(data); err != nil {
		modelError(c, err)
		return
	}

	now := time.Now().UTC()

	if order.OrderCreated.IsZero() {
		order.OrderCreated = now
	}

	if order.OrderUpdated.IsZero() {
		order.OrderUpdated = now
	}

	if err := order.Create(h.db); err != nil {
		modelError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/orders/%d", order.ID))
	c.JSON(http.StatusCreated, order)
}

// List handles GET /orders. Exactly the filters customer, status and
// date are recognized; anything else fails the whole request.
func (h *OrderHandler) List(c *gin.Context) {

	for key := range c.Request.URL.Query() {
		switch key {
		case "customer", "status", "date":
		default:
			badRequest(c, fmt.Sprintf("Invalid filter parameter: %s", key))
			return
		}
	}

	var orders []models.Order
	var err error

	switch {
	case c.Query("customer") != "":
		orders, err = models.FindOrdersByCustomer(h.db, c.Query("customer"))

	case c.Query("status") != "":
		orders, err = models.FindOrdersByStatus(h.db, c.Query("status"))

	case c.Query("date") != "":
		date := c.Query("date")
		if _, perr := time.Parse("2006-01-02", date); perr != nil {
			badRequest(c, "Invalid date format, date must be YYYY-MM-DD")
			return
		}
		orders, err = models.FindOrdersByDate(h.db, date)

	default:
		orders, err = models.AllOrders(h.db)
	}

	if err != nil {
		modelError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// Get handles GET /orders/{order_id}.
func (h *OrderHandler) Get(c *gin.Context) {

	orderID, ok := pathID(c, "order_id")
	if !ok {
		return
	}

	order, err := models.FindOrder(h.db, orderID)
	if err != nil {
		modelError(c, err)
		return
	}

	if order == nil {
		notFound(c, fmt.Sprintf("Order with id '%d' was not found.", orderID))
		return
	}

	c.JSON(http.StatusOK, order)
}

// Update handles PUT /orders/{order_id}. The payload replaces the
// order's fields; a missing order_created is kept from the stored row
// and payload items are appended as new items.
func (h *OrderHandler) Update(c *gin.Context) {

	defer func() {
		middlewares.RecordOrderOperation("update", c.Writer.Status() < 400)
	}()

	if !requireJSON(c) {
		return
	}

	orderID, ok := pathID(c, "order_id")
	if !ok {
		return
	}

	order, err := models.FindOrder(h.db, orderID)
	if err != nil {
		modelError(c, err)
		return
	}

	if order == nil {
		notFound(c, fmt.Sprintf("Order with id '%d' was not found.", orderID))
		return
	}

	var data map[string]any

	if err := c.ShouldBindJSON(&data); err != nil {
		badRequest(c, "Invalid Order: body of request contained bad or no data")
		return
	}

	existingCreated := order.OrderCreated

	if err := order.Deserialize(data); err != nil {
		modelError(c, err)
		return
	}

	if order.OrderCreated.IsZero() {
		order.OrderCreated = existingCreated
	}

	order.OrderUpdated = time.Now().UTC()

	if err := order.Update(h.db); err != nil {
		modelError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// Delete handles DELETE /orders/{order_id}. Deleting an order that
// does not exist is already satisfied, so the reply is 204 either way.
func (h *OrderHandler) Delete(c *gin.Context) {

	defer func() {
		middlewares.RecordOrderOperation("delete", c.Writer.Status() < 400)
	}()

	orderID, ok := pathID(c, "order_id")
	if !ok {
		return
	}

	order, err := models.FindOrder(h.db, orderID)
	if err != nil {
		modelError(c, err)
		return
	}

	if order != nil {
		if err := order.Delete(h.db); err != nil {
			modelError(c, err)
			return
		}
	}

	c.Status(http.StatusNoContent)
}

// Cancel handles PUT /orders/{order_id}/cancel. Only a pending order
// may be canceled; any other status is refused with a conflict.
func (h *OrderHandler) Cancel(c *gin.Context) {

	defer func() {
		middlewares.RecordOrderOperation("cancel", c.Writer.Status() < 400)
	}()

	orderID, ok := pathID(c, "order_id")
	if !ok {
		return
	}

	order, err := models.FindOrder(h.db, orderID)
	if err != nil {
		modelError(c, err)
		return
	}

	if order == nil {
		notFound(c, fmt.Sprintf("Order with id '%d' was not found.", orderID))
		return
	}

	if !strings.EqualFold(order.OrderStatus, "pending") {
		conflict(c, fmt.Sprintf(
			"Order with id '%d' cannot be canceled because its status is '%s'.",
			orderID, order.OrderStatus,
		))
		return
	}

	order.OrderStatus = "canceled"
	order.OrderUpdated = time.Now().UTC()

	if err := order.Update(h.db); err != nil {
		modelError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}
