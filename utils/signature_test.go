package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyRazorpaySignature(t *testing.T) {
	t.Setenv("RAZORPAY_SECRET", "rzp-secret")

	mac := hmac.New(sha256.New, []byte("rzp-secret"))
	mac.Write([]byte("order_123|pay_456"))
	signature := hex.EncodeToString(mac.Sum(nil))

	assert.True(t, VerifyRazorpaySignature("order_123", "pay_456", signature))
	assert.False(t, VerifyRazorpaySignature("order_123", "pay_789", signature))
	assert.False(t, VerifyRazorpaySignature("order_123", "pay_456", "tampered"))
}

func TestVerifyRazorpayWebhookSignature(t *testing.T) {
	t.Setenv("RAZORPAY_WEBHOOK_SECRET", "hook-secret")

	body := []byte(`{"event":"payment.captured"}`)
	mac := hmac.New(sha256.New, []byte("hook-secret"))
	mac.Write(body)
	signature := hex.EncodeToString(mac.Sum(nil))

	assert.True(t, VerifyRazorpayWebhookSignature(body, signature))
	assert.False(t, VerifyRazorpayWebhookSignature([]byte(`{}`), signature))
}

func TestVerifyRazorpayWebhookSignatureFallsBackToKeySecret(t *testing.T) {
	t.Setenv("RAZORPAY_WEBHOOK_SECRET", "")
	t.Setenv("RAZORPAY_SECRET", "key-secret")

	body := []byte(`{"event":"payment.failed"}`)
	mac := hmac.New(sha256.New, []byte("key-secret"))
	mac.Write(body)
	signature := hex.EncodeToString(mac.Sum(nil))

	assert.True(t, VerifyRazorpayWebhookSignature(body, signature))
}
