package database

import (
	"fmt"

	"restaurant-pos-api/config"
	"restaurant-pos-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the configured database. The handle is owned by the
// caller and passed down to handlers; close it with Close on shutdown.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode)
		dialector = postgres.Open(dsn)
	default:
		dialector = sqlite.Open(cfg.SQLitePath)
	}

	return gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
}

// Migrate creates/updates the schema and seeds the payment methods.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Category{},
		&models.Product{},
		&models.Floor{},
		&models.Table{},
		&models.Order{},
		&models.OrderItem{},
		&models.PaymentMethod{},
		&models.Payment{},
	); err != nil {
		return err
	}
	return seedPaymentMethods(db)
}

func seedPaymentMethods(db *gorm.DB) error {
	for _, name := range []string{"Cash", "UPI", "Card"} {
		method := models.PaymentMethod{Name: name, IsActive: true}
		if err := db.Where("name = ?", name).FirstOrCreate(&method).Error; err != nil {
			return err
		}
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
