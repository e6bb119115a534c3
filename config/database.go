package config

import (
	"fmt"

	"github.com/dfg-seva/DaanSetu/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB initializes the database connection
func InitDB() {
	config, err := LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to database: %v", err))
	}

	DB = db

	// Auto-migrate the schema
	err = DB.AutoMigrate(
		&models.User{},
		&models.Admin{},
		&models.Donation{},
		&models.PaymentTransaction{},
		&models.CertificateTemplate{},
	)
	if err != nil {
		panic(fmt.Sprintf("Failed to migrate database: %v", err))
	}

	// Gateway order lookups happen on every webhook delivery
	err = DB.Exec(`CREATE INDEX IF NOT EXISTS idx_donations_gateway_order_id ON donations (gateway_order_id)`).Error
	if err != nil {
		panic(fmt.Sprintf("Failed to create gateway order index: %v", err))
	}
}
