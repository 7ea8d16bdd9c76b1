package models

import (
	"time"

	"github.com/campuskart/campus-market-service/internal/domain"
)

type ProductModel struct {
	ID          string  `gorm:"primaryKey;type:uuid"`
	Name        string  `gorm:"not null"`
	Price       float64 `gorm:"not null"`
	Description string
	Category    string               `gorm:"index:idx_products_category"`
	SellerID    string               `gorm:"type:uuid;index:idx_products_seller"`
	Status      domain.ProductStatus `gorm:"default:available"`
	CreatedAt   time.Time            `gorm:"index:idx_products_created_at"`
	UpdatedAt   time.Time

	Seller *UserModel `gorm:"foreignKey:SellerID;references:ID;constraint:-"`
}

func (ProductModel) TableName() string {
	return "products"
}
