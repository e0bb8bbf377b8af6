package models

import (
	"errors"
	"strconv"
	"time"

	"gorm.io/gorm"
)

type Order struct {
	ID           int         `json:"id" gorm:"primaryKey"`
	CustomerID   int         `json:"customer_id" gorm:"index;not null"`
	OrderStatus  string      `json:"order_status" gorm:"size:64;not null"`
	OrderCreated time.Time   `json:"order_created"`
	OrderUpdated time.Time   `json:"order_updated"`
	Items        []OrderItem `json:"orderitems" gorm:"foreignKey:OrderID"`
}

// Deserialize populates the order from a decoded JSON mapping.
// Timestamps are optional; callers default them to the current time.
// Entries of "orderitems" are deserialized and appended as new items.
func (o *Order) Deserialize(data map[string]any) error {

	if data == nil {
		return malformedBody("Order")
	}

	customerID, err := intField("Order", data, "customer_id")
	if err != nil {
		return err
	}

	orderStatus, err := stringField("Order", data, "order_status")
	if err != nil {
		return err
	}

	orderCreated, err := timeField("Order", data, "order_created")
	if err != nil {
		return err
	}

	orderUpdated, err := timeField("Order", data, "order_updated")
	if err != nil {
		return err
	}

	o.CustomerID = customerID
	o.OrderStatus = orderStatus
	o.OrderCreated = orderCreated
	o.OrderUpdated = orderUpdated

	if raw, ok := data["orderitems"]; ok && raw != nil {

		list, ok := raw.([]any)
		if !ok {
			return wrongType("Order", "orderitems")
		}

		for _, entry := range list {

			itemData, ok := entry.(map[string]any)
			if !ok {
				return malformedBody("Item")
			}

			var item OrderItem
			if err := item.Deserialize(itemData); err != nil {
				return err
			}

			o.Items = append(o.Items, item)
		}
	}

	return nil
}

// Create writes the order and any attached items in one unit.
func (o *Order) Create(db *gorm.DB) error {
	return persist(db, "Order", func(tx *gorm.DB) error {
		return tx.Create(o).Error
	})
}

// Update writes the order row back and inserts items appended since
// the order was loaded (those without an identity yet).
func (o *Order) Update(db *gorm.DB) error {
	return persist(db, "Order", func(tx *gorm.DB) error {

		if err := tx.Omit("Items").Save(o).Error; err != nil {
			return err
		}

		for i := range o.Items {
			if o.Items[i].ID != 0 {
				continue
			}
			o.Items[i].OrderID = o.ID
			if err := tx.Create(&o.Items[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Delete removes the order and cascades to its items. The cascade is
// enforced here rather than at the database level so postgres and the
// sqlite test database behave identically.
func (o *Order) Delete(db *gorm.DB) error {
	return persist(db, "Order", func(tx *gorm.DB) error {

		if err := tx.Where("order_id = ?", o.ID).Delete(&OrderItem{}).Error; err != nil {
			return err
		}

		return tx.Delete(o).Error
	})
}

// FindOrder returns the order with the given id, or nil if absent.
func FindOrder(db *gorm.DB, id int) (*Order, error) {

	var order Order

	err := db.Preload("Items").First(&order, id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, storageError("Order", err)
	}

	return &order, nil
}

func AllOrders(db *gorm.DB) ([]Order, error) {

	orders := []Order{}

	if err := db.Preload("Items").Find(&orders).Error; err != nil {
		return nil, storageError("Order", err)
	}

	return orders, nil
}

// FindOrdersByCustomer accepts the raw query value; a non-numeric
// value yields an empty result rather than an error.
func FindOrdersByCustomer(db *gorm.DB, customer string) ([]Order, error) {

	customerID, err := strconv.Atoi(customer)
	if err != nil {
		return []Order{}, nil
	}

	orders := []Order{}

	if err := db.Preload("Items").Where("customer_id = ?", customerID).Find(&orders).Error; err != nil {
		return nil, storageError("Order", err)
	}

	return orders, nil
}

func FindOrdersByStatus(db *gorm.DB, status string) ([]Order, error) {

	orders := []Order{}

	if err := db.Preload("Items").Where("order_status = ?", status).Find(&orders).Error; err != nil {
		return nil, storageError("Order", err)
	}

	return orders, nil
}

// FindOrdersByDate matches orders whose order_created falls on the
// given YYYY-MM-DD calendar day. Unparseable input or a storage
// failure yields an empty result, never an error.
func FindOrdersByDate(db *gorm.DB, date string) ([]Order, error) {

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return []Order{}, nil
	}

	next := day.AddDate(0, 0, 1)

	orders := []Order{}

	if err := db.Preload("Items").
		Where("order_created >= ? AND order_created < ?", day, next).
		Find(&orders).Error; err != nil {
		return []Order{}, nil
	}

	return orders, nil
}
