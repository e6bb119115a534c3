package utils

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Cashfree Payment Gateway REST client.
// Docs: https://docs.cashfree.com/reference/pg-new-apis-endpoint

const cashfreeAPIVersion = "2023-08-01"

var cashfreeClient = &http.Client{Timeout: 15 * time.Second}

// CashfreeOrderRequest is the payload for creating a Cashfree order
type CashfreeOrderRequest struct {
	OrderID         string  `json:"order_id"`
	OrderAmount     float64 `json:"order_amount"`
	OrderCurrency   string  `json:"order_currency"`
	CustomerDetails struct {
		CustomerID    string `json:"customer_id"`
		CustomerEmail string `json:"customer_email"`
		CustomerPhone string `json:"customer_phone"`
		CustomerName  string `json:"customer_name"`
	} `json:"customer_details"`
	OrderMeta struct {
		ReturnURL string `json:"return_url"`
	} `json:"order_meta"`
}

// CashfreeOrder is the subset of the create-order response we use
type CashfreeOrder struct {
	OrderID          string `json:"order_id"`
	OrderStatus      string `json:"order_status"`
	PaymentSessionID string `json:"payment_session_id"`
	PaymentLink      string `json:"payment_link"`
}

// CashfreeBaseURL returns the API base for the configured environment.
// CASHFREE_BASE_URL overrides it outright, which is how tests point the
// client at a local server.
func CashfreeBaseURL() string {
	if base := os.Getenv("CASHFREE_BASE_URL"); base != "" {
		return base
	}
	if os.Getenv("CASHFREE_ENV") == "PROD" {
		return "https://api.cashfree.com/pg"
	}
	return "https://sandbox.cashfree.com/pg"
}

func cashfreeHeaders(req *http.Request) {
	req.Header.Set("x-api-version", cashfreeAPIVersion)
	req.Header.Set("x-client-id", os.Getenv("CASHFREE_APP_ID"))
	req.Header.Set("x-client-secret", os.Getenv("CASHFREE_SECRET_KEY"))
	req.Header.Set("Content-Type", "application/json")
}

// CreateCashfreeOrder creates a payment order and returns the hosted
// checkout details. Any non-2xx status is a uniform failure.
func CreateCashfreeOrder(orderID string, amount float64, customerID, email, phone, name, returnURL string) (*CashfreeOrder, error) {
	payload := CashfreeOrderRequest{
		OrderID:       orderID,
		OrderAmount:   amount,
		OrderCurrency: "INR",
	}
	payload.CustomerDetails.CustomerID = customerID
	payload.CustomerDetails.CustomerEmail = email
	payload.CustomerDetails.CustomerPhone = phone
	payload.CustomerDetails.CustomerName = name
	payload.OrderMeta.ReturnURL = returnURL + "?order_id={order_id}"

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, CashfreeBaseURL()+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	cashfreeHeaders(req)

	resp, err := cashfreeClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cashfree order create failed: %v", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("cashfree order create failed: status %d: %s", resp.StatusCode, data)
	}

	var order CashfreeOrder
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, fmt.Errorf("cashfree order create failed: %v", err)
	}
	return &order, nil
}

// GetCashfreeOrderStatus fetches the current status of an order
func GetCashfreeOrderStatus(orderID string) (*CashfreeOrder, error) {
	req, err := http.NewRequest(http.MethodGet, CashfreeBaseURL()+"/orders/"+orderID, nil)
	if err != nil {
		return nil, err
	}
	cashfreeHeaders(req)

	resp, err := cashfreeClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cashfree order status failed: %v", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("cashfree order status failed: status %d: %s", resp.StatusCode, data)
	}

	var order CashfreeOrder
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// VerifyCashfreeWebhookSignature checks the x-webhook-signature header:
// base64(HMAC-SHA256(timestamp + rawBody)) keyed with the secret.
func VerifyCashfreeWebhookSignature(rawBody []byte, timestamp, signature string) bool {
	secret := os.Getenv("CASHFREE_SECRET_KEY")
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write(rawBody)
	computed := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(computed), []byte(signature))
}
