package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Register wires every route onto the engine. The database handle is
// injected into the handlers; nothing reads from a package global.
func Register(r *gin.Engine, db *gorm.DB) {

	orders := &OrderHandler{db: db}
	items := &ItemHandler{db: db}

	r.GET("/", Index)
	r.GET("/health", Health)

	r.POST("/orders", orders.Create)
	r.GET("/orders", orders.List)
	r.GET("/orders/:order_id", orders.Get)
	r.PUT("/orders/:order_id", orders.Update)
	r.DELETE("/orders/:order_id", orders.Delete)
	r.PUT("/orders/:order_id/cancel", orders.Cancel)

	r.POST("/orders/:order_id/items", items.Create)
	r.GET("/orders/:order_id/items", items.List)
	r.GET("/orders/:order_id/items/:item_id", items.Get)
	r.PUT("/orders/:order_id/items/:item_id", items.Update)
	r.DELETE("/orders/:order_id/items/:item_id", items.Delete)
}

// Index returns service metadata for the root URL.
func Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    "Orders REST API Service",
		"version": "1.0",
		"paths": gin.H{
			"orders": "/orders",
			"items":  "/orders/{order_id}/items",
		},
	})
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

// pathID parses an integer path parameter. A non-numeric value is
// treated like an unmatched route, the way an int URL converter would.
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		notFound(c, "The requested URL was not found on the server.")
		return 0, false
	}
	return id, true
}
