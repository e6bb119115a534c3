package utils

// Application constants
const (
	// Application name
	AppName = "DaanSetu"

	// API version
	APIVersion = "v1"

	// Default port
	DefaultPort = "8080"

	// JWT token expiration (24 hours)
	JWTExpiration = "24h"

	// Maximum file size for template image uploads (5MB)
	MaxFileSize = 5 * 1024 * 1024

	// Default pagination limit
	DefaultPaginationLimit = 10

	// Maximum pagination limit
	MaxPaginationLimit = 100

	// Minimum password length
	MinPasswordLength = 8

	// Maximum stored length for raw gateway responses (5KB)
	MaxRawResponseLength = 5000
)

// Error messages
const (
	// Authentication errors
	ErrInvalidCredentials = "Invalid email or password"
	ErrUserBlocked        = "Your account has been blocked"
	ErrInvalidToken       = "Invalid or expired token"
	ErrUnauthorized       = "Unauthorized access"

	// Donation wizard errors
	ErrSelectDonationType = "Select a donation type to continue"
	ErrAmountTooSmall     = "Donation amount must be at least ₹100"
	ErrSelectCause        = "Select a cause to continue"
	ErrSelectGateway      = "Select a payment gateway to continue"
	ErrDetailsIncomplete  = "Complete your donor details before choosing a payment gateway"
	ErrOrderInitFailed    = "Payment initialization failed. Please try again or contact us."

	// Database errors
	ErrRecordNotFound = "Record not found"

	// Server errors
	ErrInternalServer = "Internal server error"
)
