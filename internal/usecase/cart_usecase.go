package usecase

import (
	"context"

	"github.com/campuskart/campus-market-service/internal/domain"
)

type CartUsecase interface {
	AddToCart(ctx context.Context, userID, productID string) error
	RemoveFromCart(ctx context.Context, userID, productID string) error
	GetCart(ctx context.Context, userID string) ([]*domain.CartItem, error)
}

type DefaultCartUsecase struct {
	CartRepo    domain.CartRepository
	ProductRepo domain.ProductRepository
}

func NewDefaultCartUsecase(cartRepo domain.CartRepository, productRepo domain.ProductRepository) *DefaultCartUsecase {
	return &DefaultCartUsecase{
		CartRepo:    cartRepo,
		ProductRepo: productRepo,
	}
}

// AddToCart puts a product into the user's cart. Own listings and
// unavailable products are rejected; duplicates are rejected by the
// unique (user, product) pair.
func (uc *DefaultCartUsecase) AddToCart(ctx context.Context, userID, productID string) error {
	product, err := uc.ProductRepo.GetProductByID(ctx, productID)
	if err != nil {
		return err
	}
	if product.SellerID == userID {
		return domain.ErrOwnProduct
	}
	if product.Status != domain.ProductAvailable {
		return domain.ErrProductUnavailable
	}

	return uc.CartRepo.AddItem(ctx, userID, productID)
}

func (uc *DefaultCartUsecase) RemoveFromCart(ctx context.Context, userID, productID string) error {
	return uc.CartRepo.RemoveItem(ctx, userID, productID)
}

func (uc *DefaultCartUsecase) GetCart(ctx context.Context, userID string) ([]*domain.CartItem, error) {
	return uc.CartRepo.GetItems(ctx, userID)
}
