package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"os"
)

// VerifyRazorpaySignature checks the checkout callback signature:
// hex(HMAC-SHA256(orderID + "|" + paymentID)) keyed with the key secret.
func VerifyRazorpaySignature(orderID, paymentID, signature string) bool {
	secret := os.Getenv("RAZORPAY_SECRET")
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	computed := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(computed), []byte(signature))
}

// VerifyRazorpayWebhookSignature checks the X-Razorpay-Signature header:
// hex(HMAC-SHA256(rawBody)) keyed with the webhook secret.
func VerifyRazorpayWebhookSignature(rawBody []byte, signature string) bool {
	secret := os.Getenv("RAZORPAY_WEBHOOK_SECRET")
	if secret == "" {
		secret = os.Getenv("RAZORPAY_SECRET")
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(rawBody)
	computed := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(computed), []byte(signature))
}
