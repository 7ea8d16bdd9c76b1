package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/campuskart/campus-market-service/internal/domain"
	"github.com/campuskart/campus-market-service/internal/infrastructure/postgres/mappers"
	"github.com/campuskart/campus-market-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultProductRepository struct {
	DB *gorm.DB
}

func NewDefaultProductRepository(db *gorm.DB) *DefaultProductRepository {
	return &DefaultProductRepository{DB: db}
}

func (r *DefaultProductRepository) CreateProduct(ctx context.Context, product *domain.Product) error {
	productModel := mappers.ToGORMProduct(product)
	if err := dbFrom(ctx, r.DB).Create(productModel).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (r *DefaultProductRepository) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	var product models.ProductModel
	if err := dbFrom(ctx, r.DB).
		Preload("Seller").
		First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return mappers.ToDomainProduct(&product), nil
}

func (r *DefaultProductRepository) GetProducts(ctx context.Context, filters domain.ProductFilters) ([]*domain.Product, error) {
	query := dbFrom(ctx, r.DB).Model(&models.ProductModel{}).Preload("Seller")

	if filters.SellerID != "" {
		query = query.Where("seller_id = ?", filters.SellerID)
	}
	if len(filters.Categories) > 0 {
		query = query.Where("category IN (?)", filters.Categories)
	}

	var productModels []models.ProductModel
	if err := query.Order("created_at DESC").Find(&productModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}

	products := make([]*domain.Product, len(productModels))
	for i, productModel := range productModels {
		products[i] = mappers.ToDomainProduct(&productModel)
	}

	return products, nil
}

// MarkProductSold is a conditional write: only an available row is
// flipped, so two checkouts racing for one unit cannot both observe
// RowsAffected == 1.
func (r *DefaultProductRepository) MarkProductSold(ctx context.Context, productID string) (int64, error) {
	result := dbFrom(ctx, r.DB).
		Model(&models.ProductModel{}).
		Where("id = ? AND status = ?", productID, domain.ProductAvailable).
		Update("status", domain.ProductSold)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to mark product sold: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *DefaultProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	result := dbFrom(ctx, r.DB).Delete(&models.ProductModel{}, "id = ?", productID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}
