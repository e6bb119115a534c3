package models

import (
	"fmt"
	"time"
)

// Donation type constants
const (
	DonationTypeOneTime = "onetime"
	DonationTypeMonthly = "monthly"
)

// Payment gateway constants
const (
	GatewayRazorpay = "razorpay"
	GatewayCashfree = "cashfree"
)

// Donation status constants
const (
	DonationStatusPending  = "pending"
	DonationStatusSuccess  = "success"
	DonationStatusFailed   = "failed"
	DonationStatusRefunded = "refunded"
)

// Donation cause constants
const (
	CauseGausewa = "gausewa"
	CauseMedical = "medical"
	CauseFeed    = "feed"
	CauseRescue  = "rescue"
)

// PresetAmounts are the fixed donation amounts offered by the wizard, in INR.
var PresetAmounts = []int{500, 1000, 2500, 5000, 10000}

// MinDonationAmount is the smallest accepted donation in INR.
const MinDonationAmount = 100

// Causes lists every valid donation cause identifier.
var Causes = []string{CauseGausewa, CauseMedical, CauseFeed, CauseRescue}

// ValidDonationType reports whether t is a known donation type.
func ValidDonationType(t string) bool {
	return t == DonationTypeOneTime || t == DonationTypeMonthly
}

// ValidGateway reports whether g is a supported payment gateway.
func ValidGateway(g string) bool {
	return g == GatewayRazorpay || g == GatewayCashfree
}

// ValidCause reports whether c is a known donation cause.
func ValidCause(c string) bool {
	for _, cause := range Causes {
		if c == cause {
			return true
		}
	}
	return false
}

// Donation is one donation intent. The donor fields are a snapshot taken at
// the time of donation so that 80G certificates stay correct even if the
// donor later edits their profile.
type Donation struct {
	ID     uint  `gorm:"primaryKey" json:"id"`
	UserID *uint `json:"user_id"` // nil = guest donation

	// Donor snapshot
	DonorName           string `gorm:"not null" json:"donor_name"`
	DonorEmail          string `gorm:"not null" json:"donor_email"`
	DonorPhone          string `gorm:"not null" json:"donor_phone"`
	DonorPan            string `json:"donor_pan,omitempty"`
	DonorFatherName     string `json:"donor_father_name,omitempty"`
	DonorAddress        string `json:"donor_address"`
	DonorCity           string `json:"donor_city"`
	DonorState          string `json:"donor_state"`
	DonorPincode        string `json:"donor_pincode"`
	DonorCountry        string `gorm:"default:'India'" json:"donor_country"`
	OnBehalfOf          bool   `json:"on_behalf_of"`
	BeneficiaryName     string `json:"beneficiary_name,omitempty"`
	BeneficiaryRelation string `json:"beneficiary_relation,omitempty"`

	// Donation details
	Amount       float64 `gorm:"not null" json:"amount"`
	Currency     string  `gorm:"default:'INR'" json:"currency"`
	Cause        string  `gorm:"default:'gausewa'" json:"cause"`
	DonationType string  `gorm:"default:'onetime'" json:"donation_type"`
	Gateway      string  `gorm:"not null" json:"gateway"`
	Status       string  `gorm:"default:'pending'" json:"status"`

	// Gateway-specific identifiers
	GatewayOrderID   string `json:"gateway_order_id,omitempty"`
	GatewayPaymentID string `json:"gateway_payment_id,omitempty"`
	GatewaySignature string `json:"-"`
	SubscriptionID   string `json:"subscription_id,omitempty"` // monthly donations

	// 80G certificate delivery
	CertificateSent   bool       `json:"certificate_sent"`
	CertificatePath   string     `json:"-"`
	CertificateSentAt *time.Time `json:"certificate_sent_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User         *User                `json:"-" gorm:"foreignKey:UserID"`
	Transactions []PaymentTransaction `json:"-" gorm:"foreignKey:DonationID"`
}

// ReceiptNumber returns the receipt identifier printed on certificates.
func (d *Donation) ReceiptNumber() string {
	year := d.CreatedAt.Year()
	if year == 1 {
		year = time.Now().Year()
	}
	return fmt.Sprintf("DFG/%d/%05d", year, d.ID)
}
