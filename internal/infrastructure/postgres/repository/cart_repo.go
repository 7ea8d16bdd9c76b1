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

type DefaultCartRepository struct {
	DB *gorm.DB
}

func NewDefaultCartRepository(db *gorm.DB) *DefaultCartRepository {
	return &DefaultCartRepository{DB: db}
}

func (r *DefaultCartRepository) AddItem(ctx context.Context, userID, productID string) error {
	item := models.CartItemModel{
		UserID:    userID,
		ProductID: productID,
	}
	if err := dbFrom(ctx, r.DB).Create(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrProductAlreadyInCart
		}
		return fmt.Errorf("failed to add cart item: %w", err)
	}
	return nil
}

func (r *DefaultCartRepository) RemoveItem(ctx context.Context, userID, productID string) error {
	result := dbFrom(ctx, r.DB).
		Delete(&models.CartItemModel{}, "user_id = ? AND product_id = ?", userID, productID)
	if result.Error != nil {
		return fmt.Errorf("failed to remove cart item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *DefaultCartRepository) GetItems(ctx context.Context, userID string) ([]*domain.CartItem, error) {
	var itemModels []models.CartItemModel
	if err := dbFrom(ctx, r.DB).
		Preload("Product").
		Preload("Product.Seller").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&itemModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find cart items: %w", err)
	}

	items := make([]*domain.CartItem, len(itemModels))
	for i, itemModel := range itemModels {
		items[i] = mappers.ToDomainCartItem(&itemModel)
	}

	return items, nil
}

func (r *DefaultCartRepository) ClearCart(ctx context.Context, userID string) error {
	if err := dbFrom(ctx, r.DB).
		Delete(&models.CartItemModel{}, "user_id = ?", userID).Error; err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
