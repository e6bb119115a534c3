package controllers

import "github.com/gin-gonic/gin"

// OrderResultKind tags the interpretation of a gateway's order-creation
// response. The gateways answer with different shapes (an order ID to
// collect payment against, or a hosted link to redirect to); modelling
// the outcome as a tagged value keeps the "response had neither" case
// explicit instead of silently doing nothing.
type OrderResultKind int

const (
	OrderUnrecognized OrderResultKind = iota
	OrderRazorpay
	OrderRazorpaySubscription
	OrderCashfreeLink
)

// OrderResult is the outcome of a successful order-creation call
type OrderResult struct {
	Kind            OrderResultKind
	DonationID      uint
	Amount          float64
	RazorpayOrderID string
	SubscriptionID  string
	ShortURL        string
	PaymentLink     string
}

// NextAction tells the client what to do with the result: collect
// payment in-page against a razorpay order, or redirect to a hosted
// checkout/authorization link.
func (r OrderResult) NextAction() string {
	switch r.Kind {
	case OrderRazorpay:
		return "collect"
	case OrderRazorpaySubscription, OrderCashfreeLink:
		return "redirect"
	default:
		return ""
	}
}

// Response renders the gateway-dependent success body. Both shapes carry
// donation_id and gateway; only the fields relevant to the kind appear.
func (r OrderResult) Response() gin.H {
	switch r.Kind {
	case OrderRazorpay:
		return gin.H{
			"donation_id":       r.DonationID,
			"razorpay_order_id": r.RazorpayOrderID,
			"amount":            r.Amount,
			"currency":          "INR",
			"gateway":           "razorpay",
			"next_action":       r.NextAction(),
		}
	case OrderRazorpaySubscription:
		return gin.H{
			"donation_id":     r.DonationID,
			"subscription_id": r.SubscriptionID,
			"short_url":       r.ShortURL,
			"gateway":         "razorpay",
			"next_action":     r.NextAction(),
		}
	case OrderCashfreeLink:
		return gin.H{
			"donation_id":  r.DonationID,
			"payment_link": r.PaymentLink,
			"gateway":      "cashfree",
			"next_action":  r.NextAction(),
		}
	default:
		return gin.H{"donation_id": r.DonationID}
	}
}
