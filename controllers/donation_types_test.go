package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDonorDetailsValidateCollectsAllFailures(t *testing.T) {
	donor := DonorDetails{}
	errs := donor.Validate()

	fields := errs.Map()
	for _, f := range []string{"fullName", "email", "phone", "address", "city", "state", "pincode"} {
		assert.Contains(t, fields, f)
	}
}

func TestDonorDetailsValidateAccepts(t *testing.T) {
	donor := validDonor()
	assert.Empty(t, donor.Validate())
}

func TestDonorDetailsValidateIsIdempotent(t *testing.T) {
	donor := DonorDetails{Email: "not-an-email", Pincode: "78100A"}
	first := donor.Validate()
	second := donor.Validate()
	assert.Equal(t, first, second)
}

func TestDonorDetailsNormalize(t *testing.T) {
	donor := validDonor()
	donor.Pan = "  abcde1234f "
	donor.BeneficiaryName = "Ramu"
	donor.BeneficiaryRelation = "Son"
	donor.OnBehalfOf = false

	donor.Normalize()
	assert.Equal(t, "ABCDE1234F", donor.Pan)
	assert.Empty(t, donor.BeneficiaryName, "beneficiary fields only survive when donating on behalf of someone")
	assert.Empty(t, donor.BeneficiaryRelation)

	donor.OnBehalfOf = true
	donor.BeneficiaryName = "Ramu"
	donor.Normalize()
	assert.Equal(t, "Ramu", donor.BeneficiaryName)
}

func TestOrderResultNextAction(t *testing.T) {
	assert.Equal(t, "collect", OrderResult{Kind: OrderRazorpay}.NextAction())
	assert.Equal(t, "redirect", OrderResult{Kind: OrderRazorpaySubscription}.NextAction())
	assert.Equal(t, "redirect", OrderResult{Kind: OrderCashfreeLink}.NextAction())
	assert.Equal(t, "", OrderResult{Kind: OrderUnrecognized}.NextAction())
}

func TestOrderResultResponseShapes(t *testing.T) {
	razorpay := OrderResult{Kind: OrderRazorpay, DonationID: 7, RazorpayOrderID: "order_123", Amount: 500}
	body := razorpay.Response()
	assert.Equal(t, "order_123", body["razorpay_order_id"])
	assert.Equal(t, "collect", body["next_action"])
	assert.NotContains(t, body, "payment_link")

	cashfree := OrderResult{Kind: OrderCashfreeLink, DonationID: 8, PaymentLink: "https://payments.example/link"}
	body = cashfree.Response()
	assert.Equal(t, "https://payments.example/link", body["payment_link"])
	assert.Equal(t, "redirect", body["next_action"])
	assert.NotContains(t, body, "razorpay_order_id")
}
