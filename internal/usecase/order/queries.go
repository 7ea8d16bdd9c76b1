package usecase

import (
	"context"

	"github.com/campuskart/campus-market-service/internal/domain"
	orderdto "github.com/campuskart/campus-market-service/internal/usecase/dto/order"
)

func (uc *DefaultOrderUsecase) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	return uc.OrderRepo.GetOrderByID(ctx, orderID)
}

func (uc *DefaultOrderUsecase) GetSellerPendingOrders(ctx context.Context, sellerID string) ([]*domain.Order, error) {
	return uc.OrderRepo.GetPendingOrdersBySellerID(ctx, sellerID)
}

// GetOrderHistory partitions the user's orders into bought and sold.
// The two queries are independent; an order where the user is both
// buyer and seller shows up in both lists.
func (uc *DefaultOrderUsecase) GetOrderHistory(ctx context.Context, userID string) (*orderdto.OrderHistoryOutput, error) {
	bought, err := uc.OrderRepo.GetOrdersByBuyerID(ctx, userID)
	if err != nil {
		return nil, err
	}
	sold, err := uc.OrderRepo.GetOrdersBySellerID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &orderdto.OrderHistoryOutput{Bought: bought, Sold: sold}, nil
}
