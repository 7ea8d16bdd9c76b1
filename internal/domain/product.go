package domain

import "time"

type ProductStatus string

const (
	ProductAvailable ProductStatus = "available"
	ProductSold      ProductStatus = "sold"
)

var ProductCategories = []string{
	"clothing",
	"grocery",
	"electronics",
	"furniture",
	"books",
	"beauty",
	"sports",
	"others",
}

func ValidCategory(category string) bool {
	for _, c := range ProductCategories {
		if c == category {
			return true
		}
	}
	return false
}

type Product struct {
	ID          string
	Name        string
	Price       float64
	Description string
	Category    string
	SellerID    string
	Status      ProductStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Seller *User
}
