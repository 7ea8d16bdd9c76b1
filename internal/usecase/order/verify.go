package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/campuskart/campus-market-service/internal/domain"
	"github.com/campuskart/campus-market-service/internal/security"
	orderdto "github.com/campuskart/campus-market-service/internal/usecase/dto/order"
)

// VerifyAndComplete is the delivery handshake: the seller submits the
// code the buyer relayed in person, and a match moves the order from
// pending to completed. The transition is guarded by a conditional
// write, so concurrent verifications of the same order resolve to one
// winner; the loser sees ErrOrderAlreadyCompleted.
func (uc *DefaultOrderUsecase) VerifyAndComplete(ctx context.Context, input *orderdto.VerifyOrderInput) error {
	if input.OrderID == "" || input.Code == "" {
		return fmt.Errorf("%w: order id and code are required", domain.ErrValidation)
	}

	order, err := uc.OrderRepo.GetOrderByID(ctx, input.OrderID)
	if err != nil {
		uc.recordVerifyFailure("not_found")
		return err
	}

	if !security.CompareOTP(order.CodeHash, input.Code) {
		uc.recordVerifyFailure("invalid_code")
		return domain.ErrInvalidCode
	}

	// A correct code against a completed order is reported explicitly
	// rather than treated as a no-op success.
	if order.Status == domain.StatusCompleted {
		uc.recordVerifyFailure("already_completed")
		return domain.ErrOrderAlreadyCompleted
	}

	rows, err := uc.OrderRepo.CompletePendingOrder(ctx, input.OrderID)
	if err != nil {
		return err
	}
	if rows == 0 {
		// Lost the race to a concurrent verification.
		uc.recordVerifyFailure("already_completed")
		return domain.ErrOrderAlreadyCompleted
	}

	slog.Info("order completed", "order_id", order.ID, "seller_id", order.SellerID)

	order.Status = domain.StatusCompleted
	uc.publishOrderEvent(order)
	if uc.Metrics != nil {
		uc.Metrics.RecordOrderCompleted(order.SellerID, order.Amount)
	}

	return nil
}

func (uc *DefaultOrderUsecase) recordVerifyFailure(reason string) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordVerifyFailure(reason)
}
