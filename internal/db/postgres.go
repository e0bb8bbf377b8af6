package db

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	config "github.com/CSCI-GA-2820-SP25-001/orders/configs"
	"github.com/CSCI-GA-2820-SP25-001/orders/internal/models"
)

// Init opens the database connection and migrates the schema.
// The returned handle is passed explicitly to every handler and
// model operation; there is no package-level connection.
func Init(cfg *config.Config) (*gorm.DB, error) {

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
	)

	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}

	err = database.AutoMigrate(
		&models.Order{},
		&models.OrderItem{},
	)

	if err != nil {
		return nil, fmt.Errorf("failed to migrate DB: %w", err)
	}

	log.Println("Database connected and migrated successfully")

	return database, nil
}
