package handlers

import (
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/CSCI-GA-2820-SP25-001/orders/internal/models"
)

type ItemHandler struct {
	db *gorm.DB
}

// Create handles POST /orders/{order_id}/items. The path's order id is
// injected into the payload, so the item always attaches to the order
// it was posted under.
func (h *ItemHandler) Create(c *gin.Context) {

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
		badRequest(c, "Invalid Item: body of request contained bad or no data")
		return
	}

	data["order_id"] = orderID

	var item models.OrderItem

	if err := item.Deserialize(data); err != nil {
		modelError(c, err)
		return
	}

	if err := item.Create(h.db); err != nil {
		modelError(c, err)
		return
	}

	if err := h.touchOrder(orderID); err != nil {
		modelError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/orders/%d/items/%d", orderID, item.ID))
	c.JSON(http.StatusCreated, item)
}

// List handles GET /orders/{order_id}/items. A missing parent order
// yields 204, not 404.
func (h *ItemHandler) List(c *gin.Context) {

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
		c.Status(http.StatusNoContent)
		return
	}

	items, err := models.FindItemsByOrderID(h.db, orderID)
	if err != nil {
		modelError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// Get handles GET /orders/{order_id}/items/{item_id}.
func (h *ItemHandler) Get(c *gin.Context) {

	orderID, ok := pathID(c, "order_id")
	if !ok {
		return
	}

	itemID, ok := pathID(c, "item_id")
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

	item, err := models.FindItem(h.db, itemID)
	if err != nil {
		modelError(c, err)
		return
	}

	if item == nil {
		notFound(c, fmt.Sprintf("Item with id '%d' was not found.", itemID))
		return
	}

	if item.OrderID != orderID {
		badRequest(c, fmt.Sprintf(
			"Item with id '%d' does not belong to order with id '%d'.",
			itemID, orderID,
		))
		return
	}

	c.JSON(http.StatusOK, item)
}

// Update handles PUT /orders/{order_id}/items/{item_id}. Quantity, when
// present in the payload, must be a positive integer; creation has no
// such check and that asymmetry is intentional.
func (h *ItemHandler) Update(c *gin.Context) {

	if !requireJSON(c) {
		return
	}

	orderID, ok := pathID(c, "order_id")
	if !ok {
		return
	}

	itemID, ok := pathID(c, "item_id")
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

	item, err := models.FindItem(h.db, itemID)
	if err != nil {
		modelError(c, err)
		return
	}

	if item == nil {
		notFound(c, fmt.Sprintf("Item with id '%d' was not found.", itemID))
		return
	}

	if item.OrderID != orderID {
		badRequest(c, fmt.Sprintf(
			"Item with id '%d' does not belong to order with id '%d'.",
			itemID, orderID,
		))
		return
	}

	var data map[string]any

	if err := c.ShouldBindJSON(&data); err != nil {
		badRequest(c, "Invalid Item: body of request contained bad or no data")
		return
	}

	if raw, ok := data["order_id"]; ok {
		if payloadOrderID, isInt := asInt(raw); !isInt || payloadOrderID != orderID {
			badRequest(c, fmt.Sprintf(
				"Item order_id does not match order with id '%d'.", orderID,
			))
			return
		}
	}

	if raw, ok := data["quantity"]; ok {
		if quantity, isInt := asInt(raw); !isInt || quantity <= 0 {
			badRequest(c, "Quantity must be a positive integer")
			return
		}
	}

	if _, ok := data["order_id"]; !ok {
		data["order_id"] = orderID
	}

	if err := item.Deserialize(data); err != nil {
		modelError(c, err)
		return
	}

	if err := item.Update(h.db); err != nil {
		modelError(c, err)
		return
	}

	if err := h.touchOrder(orderID); err != nil {
		modelError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /orders/{order_id}/items/{item_id}. Absent
// targets are already satisfied, so the reply is 204 either way.
func (h *ItemHandler) Delete(c *gin.Context) {

	orderID, ok := pathID(c, "order_id")
	if !ok {
		return
	}

	itemID, ok := pathID(c, "item_id")
	if !ok {
		return
	}

	item, err := models.FindItem(h.db, itemID)
	if err != nil {
		modelError(c, err)
		return
	}

	if item != nil && item.OrderID == orderID {
		if err := item.Delete(h.db); err != nil {
			modelError(c, err)
			return
		}
	}

	c.Status(http.StatusNoContent)
}

// touchOrder refreshes the parent order's order_updated after one of
// its items changes.
func (h *ItemHandler) touchOrder(orderID int) error {
	return h.db.Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("order_updated", time.Now().UTC()).Error
}

// asInt reports whether a decoded JSON value is an integral number.
func asInt(raw any) (int, bool) {
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int(v), true
	case int:
		return v, true
	default:
		return 0, false
	}
}
