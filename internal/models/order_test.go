package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/CSCI-GA-2820-SP25-001/orders/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	// In-memory SQLite database shared within the process; tables are
	// wiped here so each test starts clean.
	testDB, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err, "failed to connect test database")

	require.NoError(t, testDB.AutoMigrate(&models.Order{}, &models.OrderItem{}))

	testDB.Exec("DELETE FROM order_items")
	testDB.Exec("DELETE FROM orders")

	return testDB
}

func makeOrder(customerID int, status string, created time.Time) *models.Order {
	return &models.Order{
		CustomerID:   customerID,
		OrderStatus:  status,
		OrderCreated: created,
		OrderUpdated: created,
	}
}

func TestCreateAndFindOrder(t *testing.T) {
	testDB := setupTestDB(t)

	created := time.Date(2023, 1, 15, 10, 30, 0, 0, time.UTC)
	order := makeOrder(7, "pending", created)
	order.Items = []models.OrderItem{
		{ProductID: 11, Quantity: 2, Price: 19.99},
	}

	require.NoError(t, order.Create(testDB))
	assert.Greater(t, order.ID, 0)

	found, err := models.FindOrder(testDB, order.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, 7, found.CustomerID)
	assert.Equal(t, "pending", found.OrderStatus)
	assert.WithinDuration(t, created, found.OrderCreated, time.Second)
	require.Len(t, found.Items, 1)
	assert.Equal(t, order.ID, found.Items[0].OrderID)
	assert.Equal(t, 11, found.Items[0].ProductID)
}

func TestFindOrderNotFound(t *testing.T) {
	testDB := setupTestDB(t)

	found, err := models.FindOrder(testDB, 99999)
	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestUpdateOrder(t *testing.T) {
	testDB := setupTestDB(t)

	order := makeOrder(1, "Brand New Status", time.Now().UTC())
	require.NoError(t, order.Create(testDB))

	order, err := models.FindOrder(testDB, order.ID)
	require.NoError(t, err)
	order.OrderStatus = "Another Status"
	require.NoError(t, order.Update(testDB))

	order, err = models.FindOrder(testDB, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "Another Status", order.OrderStatus)
}

func TestUpdateOrderPersistsAppendedItems(t *testing.T) {
	testDB := setupTestDB(t)

	order := makeOrder(1, "pending", time.Now().UTC())
	require.NoError(t, order.Create(testDB))

	order, err := models.FindOrder(testDB, order.ID)
	require.NoError(t, err)
	order.Items = append(order.Items, models.OrderItem{ProductID: 3, Quantity: 1, Price: 5})
	require.NoError(t, order.Update(testDB))

	order, err = models.FindOrder(testDB, order.ID)
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 3, order.Items[0].ProductID)
	assert.Greater(t, order.Items[0].ID, 0)
}

func TestDeleteOrderCascadesToItems(t *testing.T) {
	testDB := setupTestDB(t)

	order := makeOrder(1, "pending", time.Now().UTC())
	order.Items = []models.OrderItem{
		{ProductID: 1, Quantity: 1, Price: 10},
		{ProductID: 2, Quantity: 3, Price: 20},
	}
	require.NoError(t, order.Create(testDB))

	itemID := order.Items[0].ID
	require.Greater(t, itemID, 0)

	require.NoError(t, order.Delete(testDB))

	found, err := models.FindOrder(testDB, order.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	item, err := models.FindItem(testDB, itemID)
	require.NoError(t, err)
	assert.Nil(t, item)
}

func TestAllOrders(t *testing.T) {
	testDB := setupTestDB(t)

	orders, err := models.AllOrders(testDB)
	require.NoError(t, err)
	assert.Empty(t, orders)

	for i := 0; i < 5; i++ {
		order := makeOrder(i+1, "pending", time.Now().UTC())
		require.NoError(t, order.Create(testDB))
	}

	orders, err = models.AllOrders(testDB)
	require.NoError(t, err)
	assert.Len(t, orders, 5)
}

func TestFindOrdersByCustomer(t *testing.T) {
	testDB := setupTestDB(t)

	require.NoError(t, makeOrder(5, "pending", time.Now().UTC()).Create(testDB))
	require.NoError(t, makeOrder(5, "shipped", time.Now().UTC()).Create(testDB))
	require.NoError(t, makeOrder(6, "pending", time.Now().UTC()).Create(testDB))

	orders, err := models.FindOrdersByCustomer(testDB, "5")
	require.NoError(t, err)
	assert.Len(t, orders, 2)

	// non-numeric input yields an empty result, not an error
	orders, err = models.FindOrdersByCustomer(testDB, "abc")
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestFindOrdersByStatus(t *testing.T) {
	testDB := setupTestDB(t)

	require.NoError(t, makeOrder(1, "pending", time.Now().UTC()).Create(testDB))
	require.NoError(t, makeOrder(2, "shipped", time.Now().UTC()).Create(testDB))

	orders, err := models.FindOrdersByStatus(testDB, "shipped")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, 2, orders[0].CustomerID)

	orders, err = models.FindOrdersByStatus(testDB, "delivered")
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestFindOrdersByDate(t *testing.T) {
	testDB := setupTestDB(t)

	onDay := time.Date(2023, 1, 15, 23, 45, 0, 0, time.UTC)
	offDay := time.Date(2023, 1, 16, 0, 15, 0, 0, time.UTC)

	require.NoError(t, makeOrder(1, "pending", onDay).Create(testDB))
	require.NoError(t, makeOrder(2, "pending", offDay).Create(testDB))

	orders, err := models.FindOrdersByDate(testDB, "2023-01-15")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, 1, orders[0].CustomerID)

	// time of day is ignored, only the calendar day matters
	orders, err = models.FindOrdersByDate(testDB, "2023-01-16")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, 2, orders[0].CustomerID)

	// unparseable input yields an empty result, not an error
	orders, err = models.FindOrdersByDate(testDB, "01-15-2023")
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderDeserialize(t *testing.T) {
	data := map[string]any{
		"customer_id":  float64(9),
		"order_status": "pending",
		"orderitems": []any{
			map[string]any{
				"order_id":   float64(0),
				"product_id": float64(4),
				"quantity":   float64(2),
				"price":      12.5,
			},
		},
	}

	var order models.Order
	require.NoError(t, order.Deserialize(data))
	assert.Equal(t, 9, order.CustomerID)
	assert.Equal(t, "pending", order.OrderStatus)
	assert.True(t, order.OrderCreated.IsZero())
	require.Len(t, order.Items, 1)
	assert.Equal(t, 4, order.Items[0].ProductID)
}

func TestOrderDeserializeFailures(t *testing.T) {
	var order models.Order

	err := order.Deserialize(nil)
	assert.EqualError(t, err, "Invalid Order: body of request contained bad or no data")

	err = order.Deserialize(map[string]any{"order_status": "pending"})
	assert.EqualError(t, err, "Invalid Order: missing customer_id")

	err = order.Deserialize(map[string]any{"customer_id": float64(1)})
	assert.EqualError(t, err, "Invalid Order: missing order_status")

	err = order.Deserialize(map[string]any{
		"customer_id":  "one",
		"order_status": "pending",
	})
	assert.EqualError(t, err, "Invalid Order: wrong type for customer_id")

	err = order.Deserialize(map[string]any{
		"customer_id":  float64(1),
		"order_status": "pending",
		"orderitems":   "not-a-list",
	})
	assert.EqualError(t, err, "Invalid Order: wrong type for orderitems")

	err = order.Deserialize(map[string]any{
		"customer_id":  float64(1),
		"order_status": "pending",
		"orderitems":   []any{map[string]any{"product_id": float64(1)}},
	})
	assert.EqualError(t, err, "Invalid Item: missing order_id")
}

func TestOrderRoundTrip(t *testing.T) {
	testDB := setupTestDB(t)

	created := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	order := makeOrder(3, "pending", created)
	order.Items = []models.OrderItem{{ProductID: 2, Quantity: 4, Price: 9.75}}
	require.NoError(t, order.Create(testDB))

	payload, err := json.Marshal(order)
	require.NoError(t, err)

	var data map[string]any
	require.NoError(t, json.Unmarshal(payload, &data))

	var restored models.Order
	require.NoError(t, restored.Deserialize(data))

	assert.Equal(t, order.CustomerID, restored.CustomerID)
	assert.Equal(t, order.OrderStatus, restored.OrderStatus)
	assert.True(t, order.OrderCreated.Equal(restored.OrderCreated))
	assert.True(t, order.OrderUpdated.Equal(restored.OrderUpdated))
	require.Len(t, restored.Items, 1)
	assert.Equal(t, order.Items[0].ProductID, restored.Items[0].ProductID)
	assert.Equal(t, order.Items[0].Quantity, restored.Items[0].Quantity)
	assert.Equal(t, order.Items[0].Price, restored.Items[0].Price)
}
