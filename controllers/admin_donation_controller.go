package controllers

import (
	"strconv"
	"strings"
	"time"

	"github.com/dfg-seva/DaanSetu/config"
	"github.com/dfg-seva/DaanSetu/models"
	"github.com/dfg-seva/DaanSetu/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// maskPan hides the middle of a PAN in admin listings; the full value
// only appears on the certificate and the Form 10BD export
func maskPan(pan string) string {
	if len(pan) != 10 {
		return pan
	}
	return pan[:3] + "XXXX" + pan[7:]
}

func adminDonationFilters(c *gin.Context, query *gorm.DB) *gorm.DB {
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if gateway := c.Query("gateway"); gateway != "" {
		query = query.Where("gateway = ?", gateway)
	}
	if cause := c.Query("cause"); cause != "" {
		query = query.Where("cause = ?", cause)
	}
	if donationType := c.Query("donation_type"); donationType != "" {
		query = query.Where("donation_type = ?", donationType)
	}
	if from := c.Query("from"); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			query = query.Where("created_at >= ?", t)
		}
	}
	if to := c.Query("to"); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			query = query.Where("created_at < ?", t.AddDate(0, 0, 1))
		}
	}
	if search := c.Query("search"); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(donor_name) LIKE ? OR LOWER(donor_email) LIKE ? OR donor_phone LIKE ?", like, like, "%"+search+"%")
	}
	return query
}

// GET /admin/donations
//
// Paginated, filterable donation list. PAN is masked here; use the
// export for the full values.
func AdminListDonations(c *gin.Context) {
	utils.LogInfo("AdminListDonations called")

	pagination := utils.NewPagination(c)
	query := adminDonationFilters(c, config.DB.Model(&models.Donation{}))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count donations: %v", err)
		utils.InternalServerError(c, "Failed to fetch donations", nil)
		return
	}
	pagination.SetTotal(total)

	var donations []models.Donation
	if err := query.Order("created_at DESC").Offset(pagination.Offset).Limit(pagination.Limit).Find(&donations).Error; err != nil {
		utils.LogError("Failed to fetch donations: %v", err)
		utils.InternalServerError(c, "Failed to fetch donations", nil)
		return
	}

	items := make([]gin.H, 0, len(donations))
	for _, d := range donations {
		items = append(items, gin.H{
			"id":               d.ID,
			"receipt":          d.ReceiptNumber(),
			"donor_name":       d.DonorName,
			"donor_email":      d.DonorEmail,
			"donor_phone":      d.DonorPhone,
			"donor_pan":        maskPan(d.DonorPan),
			"amount":           d.Amount,
			"cause":            d.Cause,
			"donation_type":    d.DonationType,
			"gateway":          d.Gateway,
			"status":           d.Status,
			"certificate_sent": d.CertificateSent,
			"created_at":       d.CreatedAt,
		})
	}

	utils.SendPaginatedResponse(c, items, pagination)
}

// GET /admin/donations/:id
func AdminGetDonation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.BadRequest(c, "Invalid donation ID", nil)
		return
	}

	var donation models.Donation
	if err := config.DB.Preload("Transactions").First(&donation, uint(id)).Error; err != nil {
		utils.NotFound(c, "Donation not found")
		return
	}

	utils.Success(c, "Donation retrieved", gin.H{
		"donation":     donation,
		"receipt":      donation.ReceiptNumber(),
		"transactions": donation.Transactions,
	})
}

// POST /admin/donations/:id/resend-certificate
//
// Regenerates and re-emails the certificate, for donors who lost the
// mail or when generation failed on the first pass
func AdminResendCertificate(c *gin.Context) {
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

	if donation.Status != models.DonationStatusSuccess {
		utils.BadRequest(c, "Certificates are only issued for successful donations", nil)
		return
	}

	donation.CertificateSent = false
	donation.CertificateSentAt = nil
	if err := config.DB.Save(&donation).Error; err != nil {
		utils.LogError("Failed to reset certificate flag for donation %d: %v", donation.ID, err)
		utils.InternalServerError(c, "Failed to resend certificate", nil)
		return
	}

	go ProcessCertificate(donation.ID)

	utils.LogInfo("Certificate resend queued for donation %d by admin", donation.ID)
	utils.Success(c, "Certificate resend queued", gin.H{"donation_id": donation.ID})
}

// GET /admin/dashboard
//
// Aggregate stats for the admin home screen
func AdminDashboard(c *gin.Context) {
	utils.LogInfo("AdminDashboard called")

	db := config.DB
	success := db.Model(&models.Donation{}).Where("status = ?", models.DonationStatusSuccess)

	var totalAmount float64
	var totalCount, pendingCount, monthlyActive int64
	if err := success.Count(&totalCount).Error; err != nil {
		utils.LogError("Dashboard count failed: %v", err)
		utils.InternalServerError(c, "Failed to load dashboard", nil)
		return
	}
	db.Model(&models.Donation{}).Where("status = ?", models.DonationStatusSuccess).
		Select("COALESCE(SUM(amount), 0)").Scan(&totalAmount)
	db.Model(&models.Donation{}).Where("status = ?", models.DonationStatusPending).Count(&pendingCount)
	db.Model(&models.Donation{}).
		Where("status = ? AND donation_type = ?", models.DonationStatusSuccess, models.DonationTypeMonthly).
		Count(&monthlyActive)

	// per-cause split for successful donations
	type causeRow struct {
		Cause  string
		Total  float64
		Number int64
	}
	var causeRows []causeRow
	db.Model(&models.Donation{}).Where("status = ?", models.DonationStatusSuccess).
		Select("cause, COALESCE(SUM(amount), 0) as total, COUNT(*) as number").
		Group("cause").Scan(&causeRows)

	byCause := make(map[string]gin.H, len(causeRows))
	for _, row := range causeRows {
		byCause[row.Cause] = gin.H{"amount": row.Total, "count": row.Number}
	}

	var netReceived float64
	db.Model(&models.PaymentTransaction{}).Where("status = ?", models.TransactionStatusCaptured).
		Select("COALESCE(SUM(net_receivable), 0)").Scan(&netReceived)

	monthStart := time.Now().AddDate(0, 0, -30)
	var last30Amount float64
	db.Model(&models.Donation{}).
		Where("status = ? AND created_at >= ?", models.DonationStatusSuccess, monthStart).
		Select("COALESCE(SUM(amount), 0)").Scan(&last30Amount)

	utils.Success(c, "Dashboard retrieved", gin.H{
		"total_donations":     totalCount,
		"total_amount":        totalAmount,
		"net_received":        netReceived,
		"pending_donations":   pendingCount,
		"active_monthly":      monthlyActive,
		"last_30_days_amount": last30Amount,
		"by_cause":            byCause,
	})
}
