package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReceiptNumber(t *testing.T) {
	d := Donation{ID: 7, CreatedAt: time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, "DFG/2026/00007", d.ReceiptNumber())

	d = Donation{ID: 123456, CreatedAt: time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, "DFG/2025/123456", d.ReceiptNumber())
}

func TestValidators(t *testing.T) {
	assert.True(t, ValidDonationType(DonationTypeOneTime))
	assert.True(t, ValidDonationType(DonationTypeMonthly))
	assert.False(t, ValidDonationType("weekly"))

	assert.True(t, ValidGateway(GatewayRazorpay))
	assert.True(t, ValidGateway(GatewayCashfree))
	assert.False(t, ValidGateway("stripe"))

	for _, cause := range Causes {
		assert.True(t, ValidCause(cause))
	}
	assert.False(t, ValidCause("education"))
}

func TestPresetAmounts(t *testing.T) {
	assert.Equal(t, []int{500, 1000, 2500, 5000, 10000}, PresetAmounts)
	for _, amount := range PresetAmounts {
		assert.GreaterOrEqual(t, amount, MinDonationAmount)
	}
}
