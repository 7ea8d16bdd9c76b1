package models

import "time"

type CartItemModel struct {
	UserID    string `gorm:"primaryKey;type:uuid"`
	ProductID string `gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID;references:ID;constraint:-"`
}

func (CartItemModel) TableName() string {
	return "cart_items"
}
