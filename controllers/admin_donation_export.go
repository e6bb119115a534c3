package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/dfg-seva/DaanSetu/config"
	"github.com/dfg-seva/DaanSetu/models"
	"github.com/dfg-seva/DaanSetu/utils"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// GET /admin/donations/export
//
// Form 10BD worksheet: every successful donation in the given financial
// year with the donor identity fields the filing needs. PAN appears
// unmasked here.
func AdminExportDonations(c *gin.Context) {
	utils.LogInfo("AdminExportDonations called")

	year := time.Now().Year()
	if y := c.Query("fy"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil {
			utils.BadRequest(c, "Invalid financial year", nil)
			return
		}
		year = parsed
	}

	// Indian financial year: 1 April to 31 March
	fyStart := time.Date(year, time.April, 1, 0, 0, 0, 0, time.Local)
	fyEnd := fyStart.AddDate(1, 0, 0)

	var donations []models.Donation
	err := config.DB.
		Where("status = ? AND created_at >= ? AND created_at < ?", models.DonationStatusSuccess, fyStart, fyEnd).
		Order("created_at ASC").
		Find(&donations).Error
	if err != nil {
		utils.LogError("Failed to fetch donations for export: %v", err)
		utils.InternalServerError(c, "Failed to export donations", nil)
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet(fmt.Sprintf("Form 10BD FY %d-%d", year, year+1))
	if err != nil {
		utils.LogError("Failed to create export sheet: %v", err)
		utils.InternalServerError(c, "Failed to export donations", nil)
		return
	}

	headerStyle := xlsx.NewStyle()
	headerStyle.Font.Bold = true
	headerStyle.ApplyFont = true

	header := sheet.AddRow()
	for _, title := range []string{
		"Sl. No.", "Receipt No.", "Date", "Donor Name", "PAN",
		"Address", "City", "State", "Pincode",
		"Donation Type", "Mode of Receipt", "Cause", "Amount (INR)",
	} {
		cell := header.AddCell()
		cell.Value = title
		cell.SetStyle(headerStyle)
	}

	var total float64
	for i, d := range donations {
		row := sheet.AddRow()
		row.AddCell().SetInt(i + 1)
		row.AddCell().Value = d.ReceiptNumber()
		row.AddCell().Value = d.CreatedAt.Format("02-01-2006")
		row.AddCell().Value = d.DonorName
		row.AddCell().Value = d.DonorPan
		row.AddCell().Value = d.DonorAddress
		row.AddCell().Value = d.DonorCity
		row.AddCell().Value = d.DonorState
		row.AddCell().Value = d.DonorPincode
		row.AddCell().Value = d.DonationType
		row.AddCell().Value = "Electronic modes including account payee cheque/draft"
		row.AddCell().Value = causeLabel(d.Cause)
		row.AddCell().SetFloat(d.Amount)
		total += d.Amount
	}

	totalRow := sheet.AddRow()
	for i := 0; i < 11; i++ {
		totalRow.AddCell()
	}
	totalCell := totalRow.AddCell()
	totalCell.Value = "Total"
	totalCell.SetStyle(headerStyle)
	totalRow.AddCell().SetFloat(total)

	filename := fmt.Sprintf("form10bd_fy%d-%d.xlsx", year, year+1)
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Status(http.StatusOK)

	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to stream export: %v", err)
	}
	utils.LogInfo("Exported %d donations for FY %d-%d", len(donations), year, year+1)
}
