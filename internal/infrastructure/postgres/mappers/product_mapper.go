package mappers

import (
	"github.com/campuskart/campus-market-service/internal/domain"
	"github.com/campuskart/campus-market-service/internal/infrastructure/postgres/models"
)

func ToDomainProduct(model *models.ProductModel) *domain.Product {
	product := &domain.Product{
		ID:          model.ID,
		Name:        model.Name,
		Price:       model.Price,
		Description: model.Description,
		Category:    model.Category,
		SellerID:    model.SellerID,
		Status:      model.Status,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
	if model.Seller != nil {
		product.Seller = ToDomainUser(model.Seller)
	}
	return product
}

func ToGORMProduct(product *domain.Product) *models.ProductModel {
	return &models.ProductModel{
		ID:          product.ID,
		Name:        product.Name,
		Price:       product.Price,
		Description: product.Description,
		Category:    product.Category,
		SellerID:    product.SellerID,
		Status:      product.Status,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

func ToDomainCartItem(model *models.CartItemModel) *domain.CartItem {
	item := &domain.CartItem{
		UserID:    model.UserID,
		ProductID: model.ProductID,
		CreatedAt: model.CreatedAt,
	}
	if model.Product != nil {
		item.Product = ToDomainProduct(model.Product)
	}
	return item
}
