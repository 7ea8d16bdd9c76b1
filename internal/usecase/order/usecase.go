package usecase

import (
	"context"

	"github.com/campuskart/campus-market-service/internal/domain"
	publisher "github.com/campuskart/campus-market-service/internal/infrastructure/kafka"
	"github.com/campuskart/campus-market-service/internal/infrastructure/metrics"
	orderdto "github.com/campuskart/campus-market-service/internal/usecase/dto/order"
)

type OrderUsecase interface {
	PlaceOrder(ctx context.Context, input *orderdto.PlaceOrderInput) (*orderdto.PlaceOrderOutput, error)
	VerifyAndComplete(ctx context.Context, input *orderdto.VerifyOrderInput) error

	GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error)
	GetSellerPendingOrders(ctx context.Context, sellerID string) ([]*domain.Order, error)
	GetOrderHistory(ctx context.Context, userID string) (*orderdto.OrderHistoryOutput, error)
}

// OrderEventPublisher is the slice of the kafka publisher the order
// flow needs.
type OrderEventPublisher interface {
	PublishOrder(event publisher.OrderEvent) error
}

type DefaultOrderUsecase struct {
	OrderRepo   domain.OrderRepository
	ProductRepo domain.ProductRepository
	CartRepo    domain.CartRepository
	Publisher   OrderEventPublisher
	Metrics     *metrics.OrderMetrics
}

func NewDefaultOrderUsecase(
	orderRepo domain.OrderRepository,
	productRepo domain.ProductRepository,
	cartRepo domain.CartRepository,
	eventPublisher OrderEventPublisher,
	orderMetrics *metrics.OrderMetrics) *DefaultOrderUsecase {

	return &DefaultOrderUsecase{
		OrderRepo:   orderRepo,
		ProductRepo: productRepo,
		CartRepo:    cartRepo,
		Publisher:   eventPublisher,
		Metrics:     orderMetrics,
	}
}
