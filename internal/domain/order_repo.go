package domain

import "context"

type OrderRepository interface {
	// WithTx runs fn inside one database transaction. Repository calls
	// made with the ctx passed to fn join that transaction.
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error

	CreateOrder(ctx context.Context, order *Order) error
	GetOrderByID(ctx context.Context, orderID string) (*Order, error)
	GetPendingOrdersBySellerID(ctx context.Context, sellerID string) ([]*Order, error)
	GetOrdersByBuyerID(ctx context.Context, buyerID string) ([]*Order, error)
	GetOrdersBySellerID(ctx context.Context, sellerID string) ([]*Order, error)

	// CompletePendingOrder flips status to completed only while it is
	// still pending. Returns the number of rows changed so callers can
	// tell a lost race from a plain update.
	CompletePendingOrder(ctx context.Context, orderID string) (int64, error)
}
