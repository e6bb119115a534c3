package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{"a@b.com", "donor.name@example.co.in", "x_y+z@sub.domain.org"}
	for _, email := range valid {
		assert.True(t, ValidateEmail(email), email)
	}

	invalid := []string{"", "a@b", "a.com", "a b@c.com", "a@b c.com", "@b.com"}
	for _, email := range invalid {
		assert.False(t, ValidateEmail(email), email)
	}
}

func TestValidatePincode(t *testing.T) {
	assert.True(t, ValidatePincode("781001"))

	invalid := []string{"", "78100", "7810011", "78100A", "78 100"}
	for _, pin := range invalid {
		assert.False(t, ValidatePincode(pin), pin)
	}
}

func TestValidateState(t *testing.T) {
	assert.True(t, ValidateState("Assam"))
	assert.True(t, ValidateState("Other"))
	assert.False(t, ValidateState("assam"))
	assert.False(t, ValidateState("Atlantis"))
	assert.Equal(t, "Other", IndianStates[len(IndianStates)-1])
}

func TestNormalizePan(t *testing.T) {
	assert.Equal(t, "ABCDE1234F", NormalizePan("abcde1234f"))
	assert.Equal(t, "ABCDE1234F", NormalizePan("  ABCDE1234F  "))
	assert.Equal(t, "ABCDE1234F", NormalizePan("abcde1234fextra"))
	assert.Equal(t, "", NormalizePan(""))

	// idempotent
	once := NormalizePan("abcde1234f")
	assert.Equal(t, once, NormalizePan(once))
}

func TestFieldValidationErrorsRendering(t *testing.T) {
	errs := FieldValidationErrors{
		{Field: "email", Message: "Invalid email"},
		{Field: "pincode", Message: "Invalid pincode"},
	}
	assert.Equal(t, "email: Invalid email; pincode: Invalid pincode", errs.Error())
	assert.Equal(t, map[string]string{
		"email":   "Invalid email",
		"pincode": "Invalid pincode",
	}, errs.Map())
}
