package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCashfreeOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, "2023-08-01", r.Header.Get("x-api-version"))

		var req CashfreeOrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "DFG_42", req.OrderID)
		assert.Equal(t, 500.0, req.OrderAmount)
		assert.Equal(t, "INR", req.OrderCurrency)
		assert.Contains(t, req.OrderMeta.ReturnURL, "{order_id}")

		json.NewEncoder(w).Encode(CashfreeOrder{
			OrderID:          req.OrderID,
			OrderStatus:      "ACTIVE",
			PaymentSessionID: "session_abc",
			PaymentLink:      "https://payments.cashfree.com/order/xyz",
		})
	}))
	defer server.Close()
	t.Setenv("CASHFREE_BASE_URL", server.URL)

	order, err := CreateCashfreeOrder("DFG_42", 500, "donor_42", "asha@example.com", "9876543210", "Asha Devi", "http://localhost:3000/donate/success")
	require.NoError(t, err)
	assert.Equal(t, "DFG_42", order.OrderID)
	assert.Equal(t, "https://payments.cashfree.com/order/xyz", order.PaymentLink)
}

func TestCreateCashfreeOrderFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"authentication failed"}`))
	}))
	defer server.Close()
	t.Setenv("CASHFREE_BASE_URL", server.URL)

	_, err := CreateCashfreeOrder("DFG_43", 500, "donor_43", "a@b.com", "9876543210", "A", "http://localhost:3000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestGetCashfreeOrderStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/DFG_42", r.URL.Path)
		json.NewEncoder(w).Encode(CashfreeOrder{OrderID: "DFG_42", OrderStatus: "PAID"})
	}))
	defer server.Close()
	t.Setenv("CASHFREE_BASE_URL", server.URL)

	order, err := GetCashfreeOrderStatus("DFG_42")
	require.NoError(t, err)
	assert.Equal(t, "PAID", order.OrderStatus)
}

func TestVerifyCashfreeWebhookSignature(t *testing.T) {
	t.Setenv("CASHFREE_SECRET_KEY", "test-secret")

	body := []byte(`{"type":"PAYMENT_SUCCESS_WEBHOOK"}`)
	timestamp := "1700000000"

	mac := hmac.New(sha256.New, []byte("test-secret"))
	mac.Write([]byte(timestamp))
	mac.Write(body)
	signature := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	assert.True(t, VerifyCashfreeWebhookSignature(body, timestamp, signature))
	assert.False(t, VerifyCashfreeWebhookSignature(body, "1700000001", signature))
	assert.False(t, VerifyCashfreeWebhookSignature(body, timestamp, "bogus"))
}
