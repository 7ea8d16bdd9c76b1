package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/campuskart/campus-market-service/internal/domain"
	"github.com/campuskart/campus-market-service/internal/infrastructure/postgres/mappers"
	"github.com/campuskart/campus-market-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultUserRepository struct {
	DB *gorm.DB
}

func NewDefaultUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{DB: db}
}

func (r *DefaultUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	userModel := mappers.ToGORMUser(user)
	if err := dbFrom(ctx, r.DB).Create(userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *DefaultUserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	var user models.UserModel
	if err := dbFrom(ctx, r.DB).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return mappers.ToDomainUser(&user), nil
}

func (r *DefaultUserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user models.UserModel
	if err := dbFrom(ctx, r.DB).First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return mappers.ToDomainUser(&user), nil
}

func (r *DefaultUserRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	userModel := mappers.ToGORMUser(user)
	result := dbFrom(ctx, r.DB).Model(&models.UserModel{}).Where("id = ?", user.ID).Updates(userModel)
	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
