package models

import (
	"time"

	"github.com/campuskart/campus-market-service/internal/domain"
)

type OrderModel struct {
	ID            string             `gorm:"primaryKey;type:uuid"`
	TransactionID string             `gorm:"type:uuid;uniqueIndex"`
	BuyerID       string             `gorm:"type:uuid;index:idx_orders_buyer"`
	SellerID      string             `gorm:"type:uuid;index:idx_orders_seller"`
	ProductID     string             `gorm:"type:uuid"`
	Amount        float64
	CodeHash      string             `gorm:"not null"`
	Status        domain.OrderStatus `gorm:"index:idx_orders_status"`
	CreatedAt     time.Time          `gorm:"index:idx_orders_created_at"`
	UpdatedAt     time.Time

	// References are intentionally unconstrained: the ledger tolerates
	// dangling buyer/seller/product ids and readers must cope with nil
	// expansions.
	Buyer   *UserModel    `gorm:"foreignKey:BuyerID;references:ID;constraint:-"`
	Seller  *UserModel    `gorm:"foreignKey:SellerID;references:ID;constraint:-"`
	Product *ProductModel `gorm:"foreignKey:ProductID;references:ID;constraint:-"`
}

func (OrderModel) TableName() string {
	return "orders"
}
