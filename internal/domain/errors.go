package domain

import "errors"

var (
	ErrOrderNotFound         = errors.New("order not found")
	ErrInvalidCode           = errors.New("invalid confirmation code")
	ErrOrderAlreadyCompleted = errors.New("order already completed")

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidEmailDomain = errors.New("email outside institute domain")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrProductNotFound    = errors.New("product not found")
	ErrProductUnavailable = errors.New("product not available")
	ErrNotProductSeller   = errors.New("caller is not the product seller")

	ErrProductAlreadyInCart = errors.New("product already in cart")
	ErrOwnProduct           = errors.New("cannot buy own product")
	ErrEmptyCart            = errors.New("cart is empty")

	ErrValidation = errors.New("validation failed")
)
