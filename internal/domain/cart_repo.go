package domain

import "context"

type CartRepository interface {
	AddItem(ctx context.Context, userID, productID string) error
	RemoveItem(ctx context.Context, userID, productID string) error
	GetItems(ctx context.Context, userID string) ([]*CartItem, error)
	ClearCart(ctx context.Context, userID string) error
}
