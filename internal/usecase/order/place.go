package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/campuskart/campus-market-service/internal/domain"
	publisher "github.com/campuskart/campus-market-service/internal/infrastructure/kafka"
	"github.com/campuskart/campus-market-service/internal/security"
	orderdto "github.com/campuskart/campus-market-service/internal/usecase/dto/order"
	"github.com/google/uuid"
)

// PlaceOrder creates one order per checked-out product and clears the
// buyer's cart. The creations, the product sold flips and the cart
// clear run in a single transaction: either every item becomes an
// order and leaves the catalog, or nothing changes.
//
// Every order gets its own fresh 6-digit confirmation code; only the
// bcrypt hash is persisted and the plaintext is handed back to the
// buyer once, in the returned output.
func (uc *DefaultOrderUsecase) PlaceOrder(ctx context.Context, input *orderdto.PlaceOrderInput) (*orderdto.PlaceOrderOutput, error) {
	if input.BuyerID == "" {
		return nil, fmt.Errorf("%w: buyer id is required", domain.ErrValidation)
	}

	startTime := time.Now()

	productIDs := input.ProductIDs
	if len(productIDs) == 0 {
		items, err := uc.CartRepo.GetItems(ctx, input.BuyerID)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			productIDs = append(productIDs, item.ProductID)
		}
	}
	if len(productIDs) == 0 {
		return nil, domain.ErrEmptyCart
	}

	var placed []orderdto.PlacedOrder

	err := uc.OrderRepo.WithTx(ctx, func(txCtx context.Context) error {
		for _, productID := range productIDs {
			order, code, err := uc.createOrder(txCtx, input.BuyerID, productID)
			if err != nil {
				return err
			}
			placed = append(placed, orderdto.PlacedOrder{Order: *order, Code: code})
		}
		return uc.CartRepo.ClearCart(txCtx, input.BuyerID)
	})
	if err != nil {
		uc.recordPlaceOrderDuration("error", time.Since(startTime))
		return nil, err
	}

	for _, p := range placed {
		uc.recordOrderCreated(&p.Order)
		uc.publishOrderEvent(&p.Order)
	}
	uc.recordPlaceOrderDuration("success", time.Since(startTime))

	return &orderdto.PlaceOrderOutput{Orders: placed}, nil
}

// createOrder resolves the authoritative product row, snapshots its
// price and seller, and persists one pending order. Client-supplied
// amounts are never trusted.
func (uc *DefaultOrderUsecase) createOrder(ctx context.Context, buyerID, productID string) (*domain.Order, string, error) {
	product, err := uc.ProductRepo.GetProductByID(ctx, productID)
	if err != nil {
		return nil, "", err
	}
	if product.Status != domain.ProductAvailable {
		return nil, "", fmt.Errorf("%w: %s", domain.ErrProductUnavailable, productID)
	}
	if product.SellerID == buyerID {
		return nil, "", domain.ErrOwnProduct
	}

	// Every listing is a single unit: checkout takes it off the market.
	// The conditional write keeps a concurrent checkout of the same
	// product from creating a second order.
	rows, err := uc.ProductRepo.MarkProductSold(ctx, product.ID)
	if err != nil {
		return nil, "", err
	}
	if rows == 0 {
		return nil, "", fmt.Errorf("%w: %s", domain.ErrProductUnavailable, productID)
	}

	code, err := security.GenerateOTP()
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate confirmation code: %w", err)
	}
	codeHash, err := security.HashOTP(code)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash confirmation code: %w", err)
	}

	order := &domain.Order{
		ID:            uuid.New().String(),
		TransactionID: uuid.New().String(),
		BuyerID:       buyerID,
		SellerID:      product.SellerID,
		ProductID:     product.ID,
		Amount:        product.Price,
		CodeHash:      codeHash,
		Status:        domain.StatusPending,
	}

	if err := uc.OrderRepo.CreateOrder(ctx, order); err != nil {
		return nil, "", err
	}

	return order, code, nil
}

func (uc *DefaultOrderUsecase) publishOrderEvent(order *domain.Order) {
	if uc.Publisher == nil {
		return
	}
	go func(event publisher.OrderEvent) {
		if err := uc.Publisher.PublishOrder(event); err != nil {
			slog.Error("failed to publish kafka OrderEvent", "order_id", event.OrderID, "error", err.Error())
		}
	}(publisher.OrderEvent{
		OrderID:       order.ID,
		TransactionID: order.TransactionID,
		BuyerID:       order.BuyerID,
		SellerID:      order.SellerID,
		ProductID:     order.ProductID,
		Amount:        order.Amount,
		Status:        string(order.Status),
	})
}

func (uc *DefaultOrderUsecase) recordOrderCreated(order *domain.Order) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordOrderCreated(order.SellerID, order.Amount)
}

func (uc *DefaultOrderUsecase) recordPlaceOrderDuration(outcome string, elapsed time.Duration) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordPlaceOrderDuration(outcome, elapsed.Seconds())
}
