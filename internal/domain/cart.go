package domain

import "time"

// CartItem binds one product to one user's cart. Membership is unique
// per (user, product) pair.
type CartItem struct {
	UserID    string
	ProductID string
	CreatedAt time.Time

	Product *Product
}
