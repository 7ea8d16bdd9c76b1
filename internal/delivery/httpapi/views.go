package httpapi

import (
	"time"

	"github.com/campuskart/campus-market-service/internal/domain"
)

type userView struct {
	ID            string `json:"id"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Age           int32  `json:"age,omitempty"`
	ContactNumber string `json:"contactNumber,omitempty"`
}

type productView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	SellerID    string    `json:"sellerId"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	Seller      *userView `json:"seller,omitempty"`
}

type orderView struct {
	ID            string       `json:"id"`
	TransactionID string       `json:"transactionId"`
	BuyerID       string       `json:"buyerId"`
	SellerID      string       `json:"sellerId"`
	ProductID     string       `json:"productId"`
	Amount        float64      `json:"amount"`
	Status        string       `json:"status"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
	Buyer         *userView    `json:"buyer,omitempty"`
	Seller        *userView    `json:"seller,omitempty"`
	Product       *productView `json:"product,omitempty"`

	// OTP is set only on the place-order response. The code is not
	// recoverable afterwards.
	OTP string `json:"otp,omitempty"`
}

type cartItemView struct {
	ProductID string       `json:"productId"`
	AddedAt   time.Time    `json:"addedAt"`
	Product   *productView `json:"product,omitempty"`
}

func toUserView(user *domain.User) *userView {
	if user == nil {
		return nil
	}
	return &userView{
		ID:            user.ID,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Email:         user.Email,
		Age:           user.Age,
		ContactNumber: user.ContactNumber,
	}
}

func toProductView(product *domain.Product) *productView {
	if product == nil {
		return nil
	}
	return &productView{
		ID:          product.ID,
		Name:        product.Name,
		Price:       product.Price,
		Description: product.Description,
		Category:    product.Category,
		SellerID:    product.SellerID,
		Status:      string(product.Status),
		CreatedAt:   product.CreatedAt,
		Seller:      toUserView(product.Seller),
	}
}

func toOrderView(order *domain.Order) *orderView {
	return &orderView{
		ID:            order.ID,
		TransactionID: order.TransactionID,
		BuyerID:       order.BuyerID,
		SellerID:      order.SellerID,
		ProductID:     order.ProductID,
		Amount:        order.Amount,
		Status:        string(order.Status),
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
		Buyer:         toUserView(order.Buyer),
		Seller:        toUserView(order.Seller),
		Product:       toProductView(order.Product),
	}
}

func toOrderViews(orders []*domain.Order) []*orderView {
	views := make([]*orderView, len(orders))
	for i, order := range orders {
		views[i] = toOrderView(order)
	}
	return views
}

func toCartItemView(item *domain.CartItem) *cartItemView {
	return &cartItemView{
		ProductID: item.ProductID,
		AddedAt:   item.CreatedAt,
		Product:   toProductView(item.Product),
	}
}
