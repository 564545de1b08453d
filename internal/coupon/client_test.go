package coupon

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "pulse/internal/errors"
)

func TestClient_Create_NotConfigured(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "", "secret").Create(context.Background(), Params{Code: "X", Amount: "100"})
	assert.ErrorIs(t, err, apperrors.ErrCouponNotConfigured)
	assert.False(t, called)
}

func TestClient_Create_Success(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/wp-json/wc/v3/coupons", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "ck_key", user)
		assert.Equal(t, "cs_secret", pass)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 981, "code": "abc"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "ck_key", "cs_secret")
	out, err := c.Create(context.Background(), Params{
		Code:        "MARCUSJOHNSON-MJ-FEB25-AB12",
		Amount:      "100",
		ProductIDs:  []int64{4521},
		DateExpires: "2025-05-15",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(981), out.ID)

	assert.Equal(t, "MARCUSJOHNSON-MJ-FEB25-AB12", got["code"])
	assert.Equal(t, "100", got["amount"])
	assert.Equal(t, "percent", got["discount_type"])
	assert.Equal(t, "2025-05-15", got["date_expires"])
	assert.Equal(t, []interface{}{float64(4521)}, got["product_ids"])
	assert.Equal(t, float64(1), got["usage_limit"])
	assert.Equal(t, true, got["individual_use"])
	assert.Equal(t, "Pulse CE course", got["description"])
}

func TestClient_Create_DefaultsForOptionalFields(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"id": 1}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "k", "s").Create(context.Background(), Params{Code: "X", Amount: "25"})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{}, got["product_ids"])
	assert.Nil(t, got["date_expires"])
}

func TestClient_Create_ErrorMessages(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"string message", http.StatusBadRequest, `{"code":"woocommerce_rest_coupon_code_already_exists","message":"The coupon code already exists"}`, "The coupon code already exists"},
		{"array message", http.StatusBadRequest, `{"message":["Invalid","amount"]}`, "Invalid amount"},
		{"code only", http.StatusUnauthorized, `{"code":"woocommerce_rest_cannot_create"}`, "woocommerce_rest_cannot_create"},
		{"not json", http.StatusBadGateway, `<html>bad gateway</html>`, "Bad Gateway"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL, "k", "s").Create(context.Background(), Params{Code: "X", Amount: "50"})
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrCouponGateway))
			assert.Equal(t, "coupon gateway error: "+tt.want, err.Error())
		})
	}
}

func TestClient_Create_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, "k", "s").Create(context.Background(), Params{Code: "X", Amount: "50"})
	assert.ErrorIs(t, err, apperrors.ErrCouponGateway)
}
