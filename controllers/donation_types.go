package controllers

import (
	"github.com/dfg-seva/DaanSetu/utils"
)

// DonorDetails is the donor record collected in wizard step 3 and sent
// with every order-creation request. Required for 80G certificate
// issuance; PAN and father's name are optional but needed for a usable
// certificate.
type DonorDetails struct {
	FullName            string `json:"fullName"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	Pan                 string `json:"pan,omitempty"`
	FatherName          string `json:"fatherName,omitempty"`
	Address             string `json:"address"`
	City                string `json:"city"`
	State               string `json:"state"`
	Pincode             string `json:"pincode"`
	OnBehalfOf          bool   `json:"onBehalfOf,omitempty"`
	BeneficiaryName     string `json:"beneficiaryName,omitempty"`
	BeneficiaryRelation string `json:"beneficiaryRelation,omitempty"`
}

// Normalize cleans up fields that have a canonical form. PAN is stored
// uppercase and trimmed to its 10-character format.
func (d *DonorDetails) Normalize() {
	d.Pan = utils.NormalizePan(d.Pan)
	if !d.OnBehalfOf {
		d.BeneficiaryName = ""
		d.BeneficiaryRelation = ""
	}
}

// Validate checks every field rule and returns all failures at once so
// the form can render them inline. Validation has no side effects;
// submitting the same input twice yields the same outcome.
func (d *DonorDetails) Validate() utils.FieldValidationErrors {
	var errs utils.FieldValidationErrors

	if d.FullName == "" {
		errs = append(errs, utils.FieldValidationError{Field: "fullName", Message: "Full name is required"})
	}
	if d.Email == "" {
		errs = append(errs, utils.FieldValidationError{Field: "email", Message: "Email is required"})
	} else if !utils.ValidateEmail(d.Email) {
		errs = append(errs, utils.FieldValidationError{Field: "email", Message: "Invalid email"})
	}
	if d.Phone == "" {
		errs = append(errs, utils.FieldValidationError{Field: "phone", Message: "Phone is required"})
	}
	if d.Address == "" {
		errs = append(errs, utils.FieldValidationError{Field: "address", Message: "Address is required"})
	}
	if d.City == "" {
		errs = append(errs, utils.FieldValidationError{Field: "city", Message: "City is required"})
	}
	if d.State == "" {
		errs = append(errs, utils.FieldValidationError{Field: "state", Message: "State is required"})
	} else if !utils.ValidateState(d.State) {
		errs = append(errs, utils.FieldValidationError{Field: "state", Message: "State must be one of the listed Indian states"})
	}
	if d.Pincode == "" {
		errs = append(errs, utils.FieldValidationError{Field: "pincode", Message: "Pincode is required"})
	} else if !utils.ValidatePincode(d.Pincode) {
		errs = append(errs, utils.FieldValidationError{Field: "pincode", Message: "Invalid pincode"})
	}

	return errs
}

// CreateOrderRequest is the composite payload for the order-creation
// endpoint
type CreateOrderRequest struct {
	Amount       float64      `json:"amount" binding:"required"`
	Cause        string       `json:"cause"`
	DonationType string       `json:"donation_type"`
	Gateway      string       `json:"gateway"`
	Donor        DonorDetails `json:"donor"`
}
