package razorpay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbandepot/parking-service/pkg/logger"
)

func TestClient_CreateOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "key_id", user)
		assert.Equal(t, "key_secret", pass)

		var req OrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(3150), req.Amount)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Order{
			ID:       "order_123",
			Amount:   req.Amount,
			Currency: req.Currency,
			Receipt:  req.Receipt,
			Status:   "created",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "key_id", "key_secret", time.Second, logger.NewNop())

	order, err := client.CreateOrder(context.Background(), OrderRequest{
		Amount:   3150,
		Currency: "INR",
		Receipt:  "receipt_order_1",
	})

	require.NoError(t, err)
	assert.Equal(t, "order_123", order.ID)
	assert.Equal(t, "created", order.Status)
}

func TestClient_CreateOrderErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"bad request", http.StatusBadRequest, `{"error":{"code":"BAD_REQUEST_ERROR","description":"amount too small"}}`, ErrBadRequest},
		{"unauthorized", http.StatusUnauthorized, `{}`, ErrUnauthorized},
		{"server error", http.StatusInternalServerError, `oops`, ErrInvalidResponse},
		{"empty order", http.StatusOK, `{}`, ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewClient(srv.URL, "id", "secret", time.Second, logger.NewNop())
			_, err := client.CreateOrder(context.Background(), OrderRequest{Amount: 100, Currency: "INR"})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
