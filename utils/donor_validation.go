package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// FieldValidationError represents a validation error for a specific field
type FieldValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldValidationErrors represents multiple field validation errors
type FieldValidationErrors []FieldValidationError

// Error implements the error interface
func (e FieldValidationErrors) Error() string {
	var messages []string
	for _, err := range e {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

// Map renders the errors keyed by field for inline form display
func (e FieldValidationErrors) Map() map[string]string {
	m := make(map[string]string, len(e))
	for _, err := range e {
		m[err.Field] = err.Message
	}
	return m
}

var (
	// Deliberately loose: anything that looks like local@domain.tld.
	// Stricter RFC validation rejects addresses that real donors use.
	emailRegex   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	pincodeRegex = regexp.MustCompile(`^\d{6}$`)
)

// IndianStates is the fixed list offered in the donor details form.
// "Other" stays last so donors outside the list can still file for 80G.
var IndianStates = []string{
	"Andhra Pradesh", "Assam", "Bihar", "Delhi", "Gujarat", "Haryana",
	"Himachal Pradesh", "Karnataka", "Kerala", "Madhya Pradesh", "Maharashtra",
	"Manipur", "Meghalaya", "Mizoram", "Nagaland", "Odisha", "Punjab",
	"Rajasthan", "Sikkim", "Tamil Nadu", "Telangana", "Tripura",
	"Uttar Pradesh", "Uttarakhand", "West Bengal", "Other",
}

// ValidateEmail checks if the email is valid
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidatePincode checks for an Indian 6-digit pincode
func ValidatePincode(pincode string) bool {
	return pincodeRegex.MatchString(pincode)
}

// ValidateState checks the state against the fixed list
func ValidateState(state string) bool {
	for _, s := range IndianStates {
		if state == s {
			return true
		}
	}
	return false
}

// NormalizePan uppercases a PAN and trims it to the 10-character format.
// PAN is optional; an empty string passes through.
func NormalizePan(pan string) string {
	pan = strings.ToUpper(strings.TrimSpace(pan))
	if len(pan) > 10 {
		pan = pan[:10]
	}
	return pan
}
