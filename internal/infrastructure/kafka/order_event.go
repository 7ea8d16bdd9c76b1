package publisher

type OrderEvent struct {
	OrderID       string  `json:"order_id"`
	TransactionID string  `json:"transaction_id"`
	BuyerID       string  `json:"buyer_id"`
	SellerID      string  `json:"seller_id"`
	ProductID     string  `json:"product_id"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
}
