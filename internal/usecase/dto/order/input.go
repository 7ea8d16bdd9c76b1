package orderdto

type PlaceOrderInput struct {
	BuyerID string
	// ProductIDs the buyer is checking out. When empty the buyer's
	// whole cart is used. Prices and seller ids are always resolved
	// from the catalog, never taken from the client.
	ProductIDs []string
}

type VerifyOrderInput struct {
	OrderID string
	Code    string
}
