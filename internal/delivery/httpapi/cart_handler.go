package httpapi

import (
	"errors"
	"net/http"

	"github.com/campuskart/campus-market-service/internal/domain"
	"github.com/campuskart/campus-market-service/internal/usecase"
	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cartUsecase usecase.CartUsecase
}

func NewCartHandler(cartUsecase usecase.CartUsecase) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase}
}

type cartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

func (h *CartHandler) AddToCart(c *gin.Context) {
	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format", "details": err.Error()})
		return
	}

	err := h.cartUsecase.AddToCart(c.Request.Context(), CallerID(c), req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		case errors.Is(err, domain.ErrProductAlreadyInCart),
			errors.Is(err, domain.ErrOwnProduct),
			errors.Is(err, domain.ErrProductUnavailable):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add to cart"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "item added to cart successfully"})
}

func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format", "details": err.Error()})
		return
	}

	err := h.cartUsecase.RemoveFromCart(c.Request.Context(), CallerID(c), req.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not in cart"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove from cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "item removed from cart"})
}

func (h *CartHandler) GetCart(c *gin.Context) {
	items, err := h.cartUsecase.GetCart(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch cart"})
		return
	}

	views := make([]*cartItemView, len(items))
	for i, item := range items {
		views[i] = toCartItemView(item)
	}

	c.JSON(http.StatusOK, gin.H{"items": views})
}
