package orderdto

import "github.com/campuskart/campus-market-service/internal/domain"

// PlacedOrder pairs a persisted order with its plaintext confirmation
// code. The code exists only in this value and in the HTTP response
// built from it.
type PlacedOrder struct {
	Order domain.Order
	Code  string
}

type PlaceOrderOutput struct {
	Orders []PlacedOrder
}

type OrderHistoryOutput struct {
	Bought []*domain.Order
	Sold   []*domain.Order
}
