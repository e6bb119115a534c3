package controllers

import (
	"strconv"

	"github.com/dfg-seva/DaanSetu/config"
	"github.com/dfg-seva/DaanSetu/models"
	"github.com/dfg-seva/DaanSetu/utils"
	"github.com/gin-gonic/gin"
)

// GET /donations/history
//
// Paginated donation history for the logged-in donor, newest first
func GetDonationHistory(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "Please login for access")
		return
	}
	user := userVal.(models.User)

	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Donation{}).Where("user_id = ?", user.ID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count donations for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch donation history", nil)
		return
	}
	pagination.SetTotal(total)

	var donations []models.Donation
	if err := query.Order("created_at DESC").Offset(pagination.Offset).Limit(pagination.Limit).Find(&donations).Error; err != nil {
		utils.LogError("Failed to fetch donations for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch donation history", nil)
		return
	}

	items := make([]gin.H, 0, len(donations))
	for _, d := range donations {
		items = append(items, gin.H{
			"id":               d.ID,
			"amount":           d.Amount,
			"currency":         d.Currency,
			"cause":            d.Cause,
			"donation_type":    d.DonationType,
			"gateway":          d.Gateway,
			"status":           d.Status,
			"receipt":          d.ReceiptNumber(),
			"certificate_sent": d.CertificateSent,
			"created_at":       d.CreatedAt,
		})
	}

	utils.SendPaginatedResponse(c, items, pagination)
}

// GET /donations/:id
//
// Status of a single donation. The client polls this after checkout
// while the payment settles.
func GetDonationStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.BadRequest(c, "Invalid donation ID", nil)
		return
	}

	var donation models.Donation
	if err := config.DB.First(&donation, uint(id)).Error; err != nil {
		utils.NotFound(c, "Donation not found")
		return
	}

	// guests can poll their own donation; logged-in donors only theirs
	if userVal, exists := c.Get("user"); exists {
		user := userVal.(models.User)
		if donation.UserID != nil && *donation.UserID != user.ID {
			utils.Forbidden(c, "You do not have access to this donation")
			return
		}
	}

	utils.Success(c, "Donation status retrieved", gin.H{
		"id":               donation.ID,
		"amount":           donation.Amount,
		"status":           donation.Status,
		"gateway":          donation.Gateway,
		"donation_type":    donation.DonationType,
		"certificate_sent": donation.CertificateSent,
	})
}
