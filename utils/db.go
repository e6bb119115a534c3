package utils

import (
	"github.com/dfg-seva/DaanSetu/config"
	"github.com/dfg-seva/DaanSetu/models"
)

// GetUserByID retrieves a donor account by ID
func GetUserByID(id uint) (*models.User, error) {
	var user models.User
	err := config.DB.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail retrieves a donor account by email
func GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := config.DB.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetDonationByGatewayOrderID finds a donation by its gateway order ID,
// falling back to the subscription ID for recurring charges
func GetDonationByGatewayOrderID(orderID string) (*models.Donation, error) {
	var donation models.Donation
	err := config.DB.Where("gateway_order_id = ?", orderID).First(&donation).Error
	if err == nil {
		return &donation, nil
	}
	err = config.DB.Where("subscription_id = ?", orderID).First(&donation).Error
	if err != nil {
		return nil, err
	}
	return &donation, nil
}

// GetActiveCertificateTemplate returns the active certificate template,
// or nil if none is configured
func GetActiveCertificateTemplate() *models.CertificateTemplate {
	var template models.CertificateTemplate
	if err := config.DB.Where("is_active = ?", true).First(&template).Error; err != nil {
		return nil
	}
	return &template
}
