package mappers

import (
	"github.com/campuskart/campus-market-service/internal/domain"
	"github.com/campuskart/campus-market-service/internal/infrastructure/postgres/models"
)

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	order := &domain.Order{
		ID:            model.ID,
		TransactionID: model.TransactionID,
		BuyerID:       model.BuyerID,
		SellerID:      model.SellerID,
		ProductID:     model.ProductID,
		Amount:        model.Amount,
		CodeHash:      model.CodeHash,
		Status:        model.Status,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
	if model.Buyer != nil {
		order.Buyer = ToDomainUser(model.Buyer)
	}
	if model.Seller != nil {
		order.Seller = ToDomainUser(model.Seller)
	}
	if model.Product != nil {
		order.Product = ToDomainProduct(model.Product)
	}
	return order
}

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	return &models.OrderModel{
		ID:            order.ID,
		TransactionID: order.TransactionID,
		BuyerID:       order.BuyerID,
		SellerID:      order.SellerID,
		ProductID:     order.ProductID,
		Amount:        order.Amount,
		CodeHash:      order.CodeHash,
		Status:        order.Status,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}
}
