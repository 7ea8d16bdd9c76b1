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

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

func (r *DefaultOrderRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, r.DB, fn)
}

func (r *DefaultOrderRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	orderModel := mappers.ToGORMOrder(order)
	if err := dbFrom(ctx, r.DB).Create(orderModel).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	order.CreatedAt = orderModel.CreatedAt
	order.UpdatedAt = orderModel.UpdatedAt
	return nil
}

func (r *DefaultOrderRepository) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	var order models.OrderModel
	if err := dbFrom(ctx, r.DB).
		Preload("Buyer").
		Preload("Seller").
		Preload("Product").
		First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}

	return mappers.ToDomainOrder(&order), nil
}

func (r *DefaultOrderRepository) GetPendingOrdersBySellerID(ctx context.Context, sellerID string) ([]*domain.Order, error) {
	var orderModels []models.OrderModel
	if err := dbFrom(ctx, r.DB).
		Preload("Buyer").
		Preload("Product").
		Where("seller_id = ? AND status = ?", sellerID, domain.StatusPending).
		Find(&orderModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find pending orders: %w", err)
	}

	orders := make([]*domain.Order, len(orderModels))
	for i, orderModel := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModel)
	}

	return orders, nil
}

func (r *DefaultOrderRepository) GetOrdersByBuyerID(ctx context.Context, buyerID string) ([]*domain.Order, error) {
	return r.findOrders(ctx, "buyer_id = ?", buyerID)
}

func (r *DefaultOrderRepository) GetOrdersBySellerID(ctx context.Context, sellerID string) ([]*domain.Order, error) {
	return r.findOrders(ctx, "seller_id = ?", sellerID)
}

func (r *DefaultOrderRepository) findOrders(ctx context.Context, query string, arg any) ([]*domain.Order, error) {
	var orderModels []models.OrderModel
	if err := dbFrom(ctx, r.DB).
		Preload("Buyer").
		Preload("Seller").
		Preload("Product").
		Where(query, arg).
		Find(&orderModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}

	orders := make([]*domain.Order, len(orderModels))
	for i, orderModel := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModel)
	}

	return orders, nil
}

// CompletePendingOrder is the compare-and-swap write for the delivery
// handshake: two concurrent verifications of the same order cannot both
// observe RowsAffected == 1.
func (r *DefaultOrderRepository) CompletePendingOrder(ctx context.Context, orderID string) (int64, error) {
	result := dbFrom(ctx, r.DB).
		Model(&models.OrderModel{}).
		Where("id = ? AND status = ?", orderID, domain.StatusPending).
		Update("status", domain.StatusCompleted)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to complete order: %w", result.Error)
	}
	return result.RowsAffected, nil
}
