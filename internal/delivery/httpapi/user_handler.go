package httpapi

import (
	"errors"
	"net/http"

	"github.com/campuskart/campus-market-service/internal/domain"
	"github.com/campuskart/campus-market-service/internal/usecase"
	userdto "github.com/campuskart/campus-market-service/internal/usecase/dto/user"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUsecase usecase.UserUsecase
}

func NewUserHandler(userUsecase usecase.UserUsecase) *UserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

type registerRequest struct {
	FirstName     string `json:"firstName" binding:"required"`
	LastName      string `json:"lastName" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Age           int32  `json:"age"`
	ContactNumber string `json:"contactNumber"`
	Password      string `json:"password" binding:"required,min=3"`
}

func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format", "details": err.Error()})
		return
	}

	user, err := h.userUsecase.Register(c.Request.Context(), &userdto.RegisterInput{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Age:           req.Age,
		ContactNumber: req.ContactNumber,
		Password:      req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken),
			errors.Is(err, domain.ErrInvalidEmailDomain),
			errors.Is(err, domain.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register user"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "user registered successfully", "user": toUserView(user)})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format", "details": err.Error()})
		return
	}

	token, err := h.userUsecase.Login(c.Request.Context(), &userdto.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to login"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	user, err := h.userUsecase.GetUserByID(c.Request.Context(), CallerID(c))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": toUserView(user)})
}

type updateProfileRequest struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Age           int32  `json:"age"`
	ContactNumber string `json:"contactNumber"`
	Password      string `json:"password"`
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format", "details": err.Error()})
		return
	}

	user, err := h.userUsecase.UpdateProfile(c.Request.Context(), &userdto.UpdateProfileInput{
		UserID:        CallerID(c),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Age:           req.Age,
		ContactNumber: req.ContactNumber,
		Password:      req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": toUserView(user)})
}
