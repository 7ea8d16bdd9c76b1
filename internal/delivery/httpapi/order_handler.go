package httpapi

import (
	"errors"
	"net/http"

	"github.com/campuskart/campus-market-service/internal/domain"
	orderdto "github.com/campuskart/campus-market-service/internal/usecase/dto/order"
	usecase "github.com/campuskart/campus-market-service/internal/usecase/order"
	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderUsecase usecase.OrderUsecase
}

func NewOrderHandler(orderUsecase usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase}
}

type placeOrderRequest struct {
	// Cart items the buyer is checking out. Only the ids matter:
	// price and seller are resolved server-side from the catalog.
	CartItems []struct {
		ProductID string `json:"productId" binding:"required"`
	} `json:"cartItems"`
}

func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format", "details": err.Error()})
		return
	}

	input := orderdto.PlaceOrderInput{BuyerID: CallerID(c)}
	for _, item := range req.CartItems {
		input.ProductIDs = append(input.ProductIDs, item.ProductID)
	}

	output, err := h.orderUsecase.PlaceOrder(c.Request.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrEmptyCart),
			errors.Is(err, domain.ErrOwnProduct), errors.Is(err, domain.ErrProductUnavailable):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		case errors.Is(err, domain.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to place order"})
		}
		return
	}

	views := make([]*orderView, len(output.Orders))
	for i, placed := range output.Orders {
		view := toOrderView(&placed.Order)
		view.OTP = placed.Code
		views[i] = view
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "orders": views})
}

func (h *OrderHandler) GetSellerPendingOrders(c *gin.Context) {
	sellerID := c.Param("sellerId")

	orders, err := h.orderUsecase.GetSellerPendingOrders(c.Request.Context(), sellerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to fetch pending orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "orders": toOrderViews(orders)})
}

type verifyOrderRequest struct {
	OrderID string `json:"orderId" binding:"required"`
	OTP     string `json:"otp" binding:"required"`
}

func (h *OrderHandler) VerifyAndCompleteOrder(c *gin.Context) {
	var req verifyOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format", "details": err.Error()})
		return
	}

	err := h.orderUsecase.VerifyAndComplete(c.Request.Context(), &orderdto.VerifyOrderInput{
		OrderID: req.OrderID,
		Code:    req.OTP,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCode):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid OTP"})
		case errors.Is(err, domain.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "order not found"})
		case errors.Is(err, domain.ErrOrderAlreadyCompleted):
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": "order already completed"})
		case errors.Is(err, domain.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to verify order"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "order completed successfully"})
}

func (h *OrderHandler) GetOrderHistory(c *gin.Context) {
	userID := c.Param("id")

	history, err := h.orderUsecase.GetOrderHistory(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to fetch order history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"boughtItems": toOrderViews(history.Bought),
		"soldItems":   toOrderViews(history.Sold),
	})
}
