package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/campuskart/campus-market-service/internal/domain"
	"github.com/campuskart/campus-market-service/internal/security"
	userdto "github.com/campuskart/campus-market-service/internal/usecase/dto/user"
	"github.com/google/uuid"
)

type UserUsecase interface {
	Register(ctx context.Context, input *userdto.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, input *userdto.LoginInput) (string, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, input *userdto.UpdateProfileInput) (*domain.User, error)
}

type DefaultUserUsecase struct {
	UserRepo    domain.UserRepository
	Tokens      *security.TokenManager
	EmailDomain string
}

func NewDefaultUserUsecase(userRepo domain.UserRepository, tokens *security.TokenManager, emailDomain string) *DefaultUserUsecase {
	return &DefaultUserUsecase{
		UserRepo:    userRepo,
		Tokens:      tokens,
		EmailDomain: emailDomain,
	}
}

// Register creates an account for an institutional e-mail address.
func (uc *DefaultUserUsecase) Register(ctx context.Context, input *userdto.RegisterInput) (*domain.User, error) {
	if input.FirstName == "" || input.LastName == "" || input.Email == "" || input.Password == "" {
		return nil, fmt.Errorf("%w: missing required fields", domain.ErrValidation)
	}
	if !strings.HasSuffix(input.Email, "@"+uc.EmailDomain) {
		return nil, domain.ErrInvalidEmailDomain
	}

	if _, err := uc.UserRepo.GetUserByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailTaken
	}

	passwordHash, err := security.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		ID:            uuid.New().String(),
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Email:         input.Email,
		Age:           input.Age,
		ContactNumber: input.ContactNumber,
		PasswordHash:  passwordHash,
	}

	if err := uc.UserRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login checks the credentials and issues a bearer token. Missing user
// and wrong password collapse to the same error.
func (uc *DefaultUserUsecase) Login(ctx context.Context, input *userdto.LoginInput) (string, error) {
	user, err := uc.UserRepo.GetUserByEmail(ctx, input.Email)
	if err != nil {
		return "", domain.ErrInvalidCredentials
	}

	if !security.ComparePassword(user.PasswordHash, input.Password) {
		return "", domain.ErrInvalidCredentials
	}

	token, err := uc.Tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	return token, nil
}

func (uc *DefaultUserUsecase) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return uc.UserRepo.GetUserByID(ctx, userID)
}

func (uc *DefaultUserUsecase) UpdateProfile(ctx context.Context, input *userdto.UpdateProfileInput) (*domain.User, error) {
	user, err := uc.UserRepo.GetUserByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.Age != 0 {
		user.Age = input.Age
	}
	if input.ContactNumber != "" {
		user.ContactNumber = input.ContactNumber
	}
	if input.Password != "" {
		passwordHash, err := security.HashPassword(input.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = passwordHash
	}

	if err := uc.UserRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
