package postgres

import (
	"log"

	"github.com/campuskart/campus-market-service/internal/config"
	"github.com/campuskart/campus-market-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.MarketConfig) *gorm.DB {
	dsn := cfg.MarketDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(&models.UserModel{}, &models.ProductModel{}, &models.OrderModel{}, &models.CartItemModel{})

	return db
}
