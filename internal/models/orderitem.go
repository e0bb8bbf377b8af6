package models

import (
	"errors"

	"gorm.io/gorm"
)

type OrderItem struct {
	ID        int     `json:"id" gorm:"primaryKey"`
	OrderID   int     `json:"order_id" gorm:"index;not null"`
	ProductID int     `json:"product_id" gorm:"not null"`
	Quantity  int     `json:"quantity" gorm:"not null"`
	Price     float64 `json:"price" gorm:"not null"`
}

// Deserialize populates the item from a decoded JSON mapping. All four
// fields are required. Quantity is not range-checked here; only the
// item update endpoint enforces positivity.
func (i *OrderItem) Deserialize(data map[string]any) error {

	if data == nil {
		return malformedBody("Item")
	}

	orderID, err := intField("Item", data, "order_id")
	if err != nil {
		return err
	}

	productID, err := intField("Item", data, "product_id")
	if err != nil {
		return err
	}

	quantity, err := intField("Item", data, "quantity")
	if err != nil {
		return err
	}

	price, err := floatField("Item", data, "price")
	if err != nil {
		return err
	}

	i.OrderID = orderID
	i.ProductID = productID
	i.Quantity = quantity
	i.Price = price

	return nil
}

func (i *OrderItem) Create(db *gorm.DB) error {
	return persist(db, "Item", func(tx *gorm.DB) error {
		return tx.Create(i).Error
	})
}

func (i *OrderItem) Update(db *gorm.DB) error {
	return persist(db, "Item", func(tx *gorm.DB) error {
		return tx.Save(i).Error
	})
}

func (i *OrderItem) Delete(db *gorm.DB) error {
	return persist(db, "Item", func(tx *gorm.DB) error {
		return tx.Delete(i).Error
	})
}

// FindItem returns the item with the given id, or nil if absent.
func FindItem(db *gorm.DB, id int) (*OrderItem, error) {

	var item OrderItem

	err := db.First(&item, id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, storageError("Item", err)
	}

	return &item, nil
}

// FindItemsByOrderID returns every item belonging to the given order.
func FindItemsByOrderID(db *gorm.DB, orderID int) ([]OrderItem, error) {

	items := []OrderItem{}

	if err := db.Where("order_id = ?", orderID).Find(&items).Error; err != nil {
		return nil, storageError("Item", err)
	}

	return items, nil
}
