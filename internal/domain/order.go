package domain

import "time"

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusCompleted OrderStatus = "completed"
)

// Order is one seller-to-buyer transaction for exactly one product unit.
// Amount is snapshotted from the catalog at placement time and never
// recomputed. ConfirmationCodeHash is the bcrypt hash of the 6-digit
// delivery code; the plaintext code leaves the service exactly once,
// in the place-order response.
type Order struct {
	ID            string
	TransactionID string
	BuyerID       string
	SellerID      string
	ProductID     string
	Amount        float64
	CodeHash      string
	Status        OrderStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Expanded references for presentation. Nil when the row was read
	// without joins or the reference dangles.
	Buyer   *User
	Seller  *User
	Product *Product
}
