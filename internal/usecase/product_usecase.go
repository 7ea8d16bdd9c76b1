package usecase

import (
	"context"
	"fmt"

	"github.com/campuskart/campus-market-service/internal/domain"
	productdto "github.com/campuskart/campus-market-service/internal/usecase/dto/product"
	"github.com/google/uuid"
)

type ProductUsecase interface {
	AddProduct(ctx context.Context, input *productdto.AddProductInput) (*domain.Product, error)
	ListProducts(ctx context.Context, input *productdto.ListProductsInput) ([]*domain.Product, error)
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productID, callerID string) error
}

type DefaultProductUsecase struct {
	ProductRepo domain.ProductRepository
}

func NewDefaultProductUsecase(productRepo domain.ProductRepository) *DefaultProductUsecase {
	return &DefaultProductUsecase{ProductRepo: productRepo}
}

func (uc *DefaultProductUsecase) AddProduct(ctx context.Context, input *productdto.AddProductInput) (*domain.Product, error) {
	if input.Name == "" || input.SellerID == "" {
		return nil, fmt.Errorf("%w: name and seller id are required", domain.ErrValidation)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must be non-negative", domain.ErrValidation)
	}
	if !domain.ValidCategory(input.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrValidation, input.Category)
	}

	product := &domain.Product{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
		Category:    input.Category,
		SellerID:    input.SellerID,
		Status:      domain.ProductAvailable,
	}

	if err := uc.ProductRepo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *DefaultProductUsecase) ListProducts(ctx context.Context, input *productdto.ListProductsInput) ([]*domain.Product, error) {
	return uc.ProductRepo.GetProducts(ctx, domain.ProductFilters{
		SellerID:   input.SellerID,
		Categories: input.Categories,
	})
}

func (uc *DefaultProductUsecase) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	return uc.ProductRepo.GetProductByID(ctx, productID)
}

// DeleteProduct removes a listing. Only the listing's seller may do it.
func (uc *DefaultProductUsecase) DeleteProduct(ctx context.Context, productID, callerID string) error {
	product, err := uc.ProductRepo.GetProductByID(ctx, productID)
	if err != nil {
		return err
	}
	if product.SellerID != callerID {
		return domain.ErrNotProductSeller
	}
	return uc.ProductRepo.DeleteProduct(ctx, productID)
}
