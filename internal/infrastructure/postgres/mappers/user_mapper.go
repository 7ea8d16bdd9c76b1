package mappers

import (
	"github.com/campuskart/campus-market-service/internal/domain"
	"github.com/campuskart/campus-market-service/internal/infrastructure/postgres/models"
)

func ToDomainUser(model *models.UserModel) *domain.User {
	return &domain.User{
		ID:            model.ID,
		FirstName:     model.FirstName,
		LastName:      model.LastName,
		Email:         model.Email,
		Age:           model.Age,
		ContactNumber: model.ContactNumber,
		PasswordHash:  model.PasswordHash,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}

func ToGORMUser(user *domain.User) *models.UserModel {
	return &models.UserModel{
		ID:            user.ID,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Email:         user.Email,
		Age:           user.Age,
		ContactNumber: user.ContactNumber,
		PasswordHash:  user.PasswordHash,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}
