package models

import (
	"time"
)

// Transaction status constants
const (
	TransactionStatusInitiated = "initiated"
	TransactionStatusCaptured  = "captured"
	TransactionStatusFailed    = "failed"
	TransactionStatusRefunded  = "refunded"
)

// PaymentTransaction is one payment attempt against a donation, including
// the gateway's fee breakdown. A donation may collect several failed
// attempts before a successful one.
//
// Razorpay reports fee and tax in paise on the payment entity; fee already
// includes the 18% GST component reported separately as tax.
type PaymentTransaction struct {
	ID         uint  `gorm:"primaryKey" json:"id"`
	DonationID uint  `gorm:"not null;index" json:"donation_id"`
	UserID     *uint `gorm:"index" json:"user_id"`

	// Gateway identifiers
	Gateway          string `gorm:"not null" json:"gateway"`
	GatewayOrderID   string `gorm:"index" json:"gateway_order_id"`
	GatewayPaymentID string `gorm:"index" json:"gateway_payment_id"`
	SubscriptionID   string `json:"subscription_id,omitempty"`

	// Amounts in INR
	GrossAmount    float64 `gorm:"not null" json:"gross_amount"`
	GatewayFee     float64 `json:"gateway_fee"`
	GatewayTax     float64 `json:"gateway_tax"`
	TotalDeduction float64 `json:"total_deduction"`
	NetReceivable  float64 `json:"net_receivable"`
	Currency       string  `gorm:"default:'INR'" json:"currency"`

	// Payment details
	Status        string `gorm:"default:'initiated'" json:"status"`
	PaymentMethod string `json:"payment_method,omitempty"` // upi, card, netbanking, wallet
	Bank          string `json:"bank,omitempty"`
	CardNetwork   string `json:"card_network,omitempty"`
	CardLast4     string `json:"card_last4,omitempty"`
	UpiVpa        string `json:"upi_vpa,omitempty"`
	Wallet        string `json:"wallet,omitempty"`

	// Raw gateway response, capped before storage
	RawResponse string `gorm:"type:text" json:"-"`

	InitiatedAt time.Time  `gorm:"autoCreateTime" json:"initiated_at"`
	CapturedAt  *time.Time `json:"captured_at,omitempty"`
	FailedAt    *time.Time `json:"failed_at,omitempty"`

	Donation Donation `json:"-" gorm:"foreignKey:DonationID"`
}
