package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/campuskart/campus-market-service/internal/domain"
	"github.com/campuskart/campus-market-service/internal/security"
	orderdto "github.com/campuskart/campus-market-service/internal/usecase/dto/order"
	"github.com/gin-gonic/gin"
)

type fakeOrderUsecase struct {
	placeOutput *orderdto.PlaceOrderOutput
	placeErr    error
	verifyErr   error

	lastPlaceInput  *orderdto.PlaceOrderInput
	lastVerifyInput *orderdto.VerifyOrderInput
}

func (f *fakeOrderUsecase) PlaceOrder(ctx context.Context, input *orderdto.PlaceOrderInput) (*orderdto.PlaceOrderOutput, error) {
	f.lastPlaceInput = input
	return f.placeOutput, f.placeErr
}

func (f *fakeOrderUsecase) VerifyAndComplete(ctx context.Context, input *orderdto.VerifyOrderInput) error {
	f.lastVerifyInput = input
	return f.verifyErr
}

func (f *fakeOrderUsecase) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	return nil, domain.ErrOrderNotFound
}

func (f *fakeOrderUsecase) GetSellerPendingOrders(ctx context.Context, sellerID string) ([]*domain.Order, error) {
	return []*domain.Order{{ID: "o-1", SellerID: sellerID, Status: domain.StatusPending}}, nil
}

func (f *fakeOrderUsecase) GetOrderHistory(ctx context.Context, userID string) (*orderdto.OrderHistoryOutput, error) {
	return &orderdto.OrderHistoryOutput{
		Bought: []*domain.Order{{ID: "o-1", BuyerID: userID}},
		Sold:   []*domain.Order{{ID: "o-2", SellerID: userID}},
	}, nil
}

func newOrderTestRouter(uc *fakeOrderUsecase, tokens *security.TokenManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewOrderHandler(uc)

	orders := router.Group("/api/orders", AuthMiddleware(tokens))
	orders.POST("/place-order", handler.PlaceOrder)
	orders.GET("/seller-pending-orders/:sellerId", handler.GetSellerPendingOrders)
	orders.POST("/verify-complete-order", handler.VerifyAndCompleteOrder)
	orders.GET("/order-history/:id", handler.GetOrderHistory)

	return router
}

func authedRequest(t *testing.T, tokens *security.TokenManager, userID, method, path, body string) *http.Request {
	t.Helper()
	token, err := tokens.Issue(userID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestPlaceOrderHandler(t *testing.T) {
	tokens := security.NewTokenManager("test-secret")

	t.Run("returns created orders with their codes", func(t *testing.T) {
		uc := &fakeOrderUsecase{
			placeOutput: &orderdto.PlaceOrderOutput{
				Orders: []orderdto.PlacedOrder{{
					Order: domain.Order{
						ID:            "o-1",
						TransactionID: "tx-1",
						BuyerID:       "buyer-1",
						SellerID:      "seller-1",
						ProductID:     "p-1",
						Amount:        49.99,
						Status:        domain.StatusPending,
					},
					Code: "123456",
				}},
			},
		}
		router := newOrderTestRouter(uc, tokens)

		w := httptest.NewRecorder()
		req := authedRequest(t, tokens, "buyer-1", http.MethodPost, "/api/orders/place-order",
			`{"cartItems":[{"productId":"p-1"}]}`)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp struct {
			Success bool `json:"success"`
			Orders  []struct {
				ID  string `json:"id"`
				OTP string `json:"otp"`
			} `json:"orders"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("expected valid JSON, got %v", err)
		}
		if !resp.Success || len(resp.Orders) != 1 {
			t.Fatalf("unexpected response: %s", w.Body.String())
		}
		if resp.Orders[0].OTP != "123456" {
			t.Fatalf("expected plaintext code in response, got %q", resp.Orders[0].OTP)
		}

		// Buyer comes from the bearer token, not from the body.
		if uc.lastPlaceInput.BuyerID != "buyer-1" {
			t.Fatalf("expected authenticated caller as buyer, got %q", uc.lastPlaceInput.BuyerID)
		}
	})

	t.Run("maps product not found to 404", func(t *testing.T) {
		uc := &fakeOrderUsecase{placeErr: domain.ErrProductNotFound}
		router := newOrderTestRouter(uc, tokens)

		w := httptest.NewRecorder()
		req := authedRequest(t, tokens, "buyer-1", http.MethodPost, "/api/orders/place-order",
			`{"cartItems":[{"productId":"ghost"}]}`)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("maps persistence error to 500", func(t *testing.T) {
		uc := &fakeOrderUsecase{placeErr: context.DeadlineExceeded}
		router := newOrderTestRouter(uc, tokens)

		w := httptest.NewRecorder()
		req := authedRequest(t, tokens, "buyer-1", http.MethodPost, "/api/orders/place-order",
			`{"cartItems":[{"productId":"p-1"}]}`)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("rejects unauthenticated caller", func(t *testing.T) {
		router := newOrderTestRouter(&fakeOrderUsecase{}, tokens)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/orders/place-order", strings.NewReader(`{}`))
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestVerifyCompleteOrderHandler(t *testing.T) {
	tokens := security.NewTokenManager("test-secret")

	cases := []struct {
		name       string
		verifyErr  error
		wantStatus int
	}{
		{"success", nil, http.StatusOK},
		{"invalid code", domain.ErrInvalidCode, http.StatusBadRequest},
		{"not found", domain.ErrOrderNotFound, http.StatusNotFound},
		{"already completed", domain.ErrOrderAlreadyCompleted, http.StatusConflict},
		{"infrastructure error", context.DeadlineExceeded, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := &fakeOrderUsecase{verifyErr: tc.verifyErr}
			router := newOrderTestRouter(uc, tokens)

			w := httptest.NewRecorder()
			req := authedRequest(t, tokens, "seller-1", http.MethodPost, "/api/orders/verify-complete-order",
				`{"orderId":"o-1","otp":"123456"}`)
			router.ServeHTTP(w, req)

			if w.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tc.wantStatus, w.Code, w.Body.String())
			}
		})
	}

	t.Run("missing fields rejected by binding", func(t *testing.T) {
		router := newOrderTestRouter(&fakeOrderUsecase{}, tokens)

		w := httptest.NewRecorder()
		req := authedRequest(t, tokens, "seller-1", http.MethodPost, "/api/orders/verify-complete-order",
			`{"orderId":"o-1"}`)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestOrderHistoryHandler(t *testing.T) {
	tokens := security.NewTokenManager("test-secret")
	router := newOrderTestRouter(&fakeOrderUsecase{}, tokens)

	w := httptest.NewRecorder()
	req := authedRequest(t, tokens, "u-1", http.MethodGet, "/api/orders/order-history/u-1", "")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		BoughtItems []json.RawMessage `json:"boughtItems"`
		SoldItems   []json.RawMessage `json:"soldItems"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("expected valid JSON, got %v", err)
	}
	if len(resp.BoughtItems) != 1 || len(resp.SoldItems) != 1 {
		t.Fatalf("unexpected history payload: %s", w.Body.String())
	}
}

func TestSellerPendingOrdersHandler(t *testing.T) {
	tokens := security.NewTokenManager("test-secret")
	router := newOrderTestRouter(&fakeOrderUsecase{}, tokens)

	w := httptest.NewRecorder()
	req := authedRequest(t, tokens, "seller-1", http.MethodGet, "/api/orders/seller-pending-orders/seller-1", "")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"o-1"`) {
		t.Fatalf("expected pending order in payload: %s", w.Body.String())
	}
}
