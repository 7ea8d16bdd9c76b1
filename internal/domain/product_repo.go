package domain

import "context"

type ProductFilters struct {
	SellerID   string
	Categories []string
}

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *Product) error
	GetProductByID(ctx context.Context, productID string) (*Product, error)
	GetProducts(ctx context.Context, filters ProductFilters) ([]*Product, error)
	DeleteProduct(ctx context.Context, productID string) error

	// MarkProductSold flips an available product to sold and reports the
	// number of rows changed. Zero rows means the product was missing or
	// already sold.
	MarkProductSold(ctx context.Context, productID string) (int64, error)
}
