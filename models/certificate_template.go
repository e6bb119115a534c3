package models

import (
	"time"
)

// CertificateTemplate holds the branding and NGO details stamped on 80G
// certificates. Exactly one active template is used at a time; empty
// fields fall back to values from config.
type CertificateTemplate struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"default:'Default Template'" json:"name"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	// Branding
	LogoPath       string `json:"logo_path,omitempty"`
	SignaturePath  string `json:"signature_path,omitempty"`
	PrimaryColor   string `gorm:"default:'#FF6B00'" json:"primary_color"`
	SecondaryColor string `gorm:"default:'#2D6A4F'" json:"secondary_color"`

	// NGO details (override config defaults)
	NGOName    string `json:"ngo_name,omitempty"`
	NGOPan     string `json:"ngo_pan,omitempty"`
	NGO80GReg  string `json:"ngo_80g_reg,omitempty"`
	NGO12AReg  string `json:"ngo_12a_reg,omitempty"`
	NGOAddress string `json:"ngo_address,omitempty"`
	NGOPhone   string `json:"ngo_phone,omitempty"`
	NGOEmail   string `json:"ngo_email,omitempty"`

	// Certificate content
	HeaderText      string `gorm:"type:text;default:'DONATION RECEIPT CUM 80G CERTIFICATE'" json:"header_text"`
	FooterText      string `gorm:"type:text" json:"footer_text"`
	ThankYouMessage string `gorm:"type:text" json:"thank_you_message"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
