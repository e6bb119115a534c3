package controllers

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dfg-seva/DaanSetu/config"
	"github.com/dfg-seva/DaanSetu/models"
	"github.com/dfg-seva/DaanSetu/utils"
	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
)

const certificateDir = "certificates"

// ProcessCertificate generates the 80G certificate for a successful
// donation and emails it to the donor. Runs in its own goroutine after
// payment confirmation; failures are logged and the admin can resend.
func ProcessCertificate(donationID uint) {
	var donation models.Donation
	if err := config.DB.First(&donation, donationID).Error; err != nil {
		utils.LogError("Certificate: donation %d not found: %v", donationID, err)
		return
	}

	if donation.Status != models.DonationStatusSuccess {
		utils.LogDebug("Certificate: donation %d not successful, skipping", donationID)
		return
	}
	if donation.CertificateSent {
		utils.LogDebug("Certificate: donation %d already delivered, skipping", donationID)
		return
	}

	template := utils.GetActiveCertificateTemplate()
	if template == nil {
		template = fallbackCertificateTemplate()
	}

	path, err := GenerateCertificate(&donation, template)
	if err != nil {
		utils.LogError("Certificate generation failed for donation %d: %v", donationID, err)
		return
	}
	donation.CertificatePath = path
	if err := config.DB.Save(&donation).Error; err != nil {
		utils.LogError("Failed to store certificate path for donation %d: %v", donationID, err)
	}

	if err := utils.SendDonationConfirmation(donation.DonorEmail, donation.DonorName, donation.Amount, donation.ReceiptNumber(), path); err != nil {
		utils.LogError("Certificate email failed for donation %d: %v", donationID, err)
		return
	}

	now := time.Now()
	donation.CertificateSent = true
	donation.CertificateSentAt = &now
	if err := config.DB.Save(&donation).Error; err != nil {
		utils.LogError("Failed to mark certificate sent for donation %d: %v", donationID, err)
		return
	}
	utils.LogInfo("Certificate delivered for donation %d to %s", donationID, donation.DonorEmail)
}

// fallbackCertificateTemplate builds a template from environment
// defaults when no active template row exists yet
func fallbackCertificateTemplate() *models.CertificateTemplate {
	return &models.CertificateTemplate{
		Name:           "Default Template",
		IsActive:       true,
		PrimaryColor:   "#FF6B00",
		SecondaryColor: "#2D6A4F",
		NGOName:        envOrDefault("NGO_NAME", "Dhyan Foundation Guwahati"),
		NGOPan:         os.Getenv("NGO_PAN"),
		NGO80GReg:      os.Getenv("NGO_80G_REG"),
		NGO12AReg:      os.Getenv("NGO_12A_REG"),
		NGOAddress:     envOrDefault("NGO_ADDRESS", "Guwahati, Assam, India"),
		NGOPhone:       os.Getenv("NGO_PHONE"),
		NGOEmail:       os.Getenv("NGO_EMAIL"),
		HeaderText:     "DONATION RECEIPT CUM 80G CERTIFICATE",
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GenerateCertificate renders the 80G receipt PDF and returns the file
// path
func GenerateCertificate(donation *models.Donation, template *models.CertificateTemplate) (string, error) {
	if err := os.MkdirAll(certificateDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create certificate directory: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pr, pg, pb := hexToRGB(template.PrimaryColor)
	sr, sg, sb := hexToRGB(template.SecondaryColor)

	// Header band
	pdf.SetFillColor(pr, pg, pb)
	pdf.Rect(0, 0, 210, 30, "F")
	if template.LogoPath != "" {
		if _, err := os.Stat(template.LogoPath); err == nil {
			pdf.ImageOptions(template.LogoPath, 15, 5, 20, 20, false, gofpdf.ImageOptions{}, 0, "")
		}
	}
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 18)
	pdf.SetXY(40, 8)
	pdf.CellFormat(0, 8, template.NGOName, "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.SetX(40)
	pdf.CellFormat(0, 5, template.NGOAddress, "", 1, "L", false, 0, "")
	pdf.SetX(40)
	pdf.CellFormat(0, 5, fmt.Sprintf("Phone: %s | Email: %s", template.NGOPhone, template.NGOEmail), "", 1, "L", false, 0, "")

	pdf.SetY(40)
	pdf.SetTextColor(sr, sg, sb)
	pdf.SetFont("Arial", "B", 16)
	if template.HeaderText != "" {
		pdf.CellFormat(0, 10, template.HeaderText, "", 1, "C", false, 0, "")
	} else {
		pdf.CellFormat(0, 10, "Donation Receipt (Section 80G)", "", 1, "C", false, 0, "")
	}

	pdf.SetTextColor(60, 60, 60)
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Receipt No: %s", donation.ReceiptNumber()), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Date: %s", donation.CreatedAt.Format("02 Jan 2006")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Registration block
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 5, fmt.Sprintf("PAN: %s | 80G Reg: %s | 12A Reg: %s", template.NGOPan, template.NGO80GReg, template.NGO12AReg), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	// Donor block
	pdf.SetFont("Arial", "B", 11)
	pdf.SetTextColor(sr, sg, sb)
	pdf.CellFormat(0, 7, "Received with thanks from", "", 1, "L", false, 0, "")
	pdf.SetTextColor(60, 60, 60)
	pdf.SetFont("Arial", "", 10)
	certificateRow(pdf, "Name", donation.DonorName)
	if donation.DonorFatherName != "" {
		certificateRow(pdf, "S/o / D/o", donation.DonorFatherName)
	}
	if donation.DonorPan != "" {
		certificateRow(pdf, "PAN", donation.DonorPan)
	}
	certificateRow(pdf, "Address", fmt.Sprintf("%s, %s, %s - %s", donation.DonorAddress, donation.DonorCity, donation.DonorState, donation.DonorPincode))
	if donation.OnBehalfOf && donation.BeneficiaryName != "" {
		certificateRow(pdf, "On behalf of", fmt.Sprintf("%s (%s)", donation.BeneficiaryName, donation.BeneficiaryRelation))
	}
	pdf.Ln(4)

	// Amount block
	pdf.SetFillColor(245, 245, 245)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 10, fmt.Sprintf("Amount: Rs. %.2f (%s)", donation.Amount, AmountInWords(int(donation.Amount))), "1", 1, "C", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 8, fmt.Sprintf("Towards: %s | Mode: %s (%s)", causeLabel(donation.Cause), donation.Gateway, donation.DonationType), "", 1, "C", false, 0, "")
	pdf.Ln(8)

	if template.ThankYouMessage != "" {
		pdf.SetFont("Arial", "I", 10)
		pdf.MultiCell(0, 6, template.ThankYouMessage, "", "C", false)
		pdf.Ln(6)
	}

	// Signature
	if template.SignaturePath != "" {
		if _, err := os.Stat(template.SignaturePath); err == nil {
			pdf.ImageOptions(template.SignaturePath, 150, pdf.GetY(), 40, 15, false, gofpdf.ImageOptions{}, 0, "")
			pdf.Ln(16)
		}
	}
	pdf.SetFont("Arial", "", 9)
	pdf.SetX(150)
	pdf.CellFormat(45, 5, "Authorised Signatory", "T", 1, "C", false, 0, "")

	// Footer
	pdf.SetY(-30)
	pdf.SetFont("Arial", "", 8)
	pdf.SetTextColor(120, 120, 120)
	footer := template.FooterText
	if footer == "" {
		footer = "Donations are eligible for deduction under Section 80G of the Income Tax Act, 1961."
	}
	pdf.MultiCell(0, 4, footer, "", "C", false)

	filename := fmt.Sprintf("certificate_%d.pdf", donation.ID)
	path := filepath.Join(certificateDir, filename)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("failed to write certificate PDF: %w", err)
	}
	return path, nil
}

func certificateRow(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(35, 6, label, "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(0, 6, value, "", "L", false)
}

func hexToRGB(hex string) (int, int, int) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0
	}
	r, _ := strconv.ParseInt(hex[0:2], 16, 0)
	g, _ := strconv.ParseInt(hex[2:4], 16, 0)
	b, _ := strconv.ParseInt(hex[4:6], 16, 0)
	return int(r), int(g), int(b)
}

func causeLabel(cause string) string {
	switch cause {
	case models.CauseGausewa:
		return "Gau Sewa"
	case models.CauseMedical:
		return "Medical Care for Animals"
	case models.CauseFeed:
		return "Animal Feeding"
	case models.CauseRescue:
		return "Animal Rescue"
	default:
		return cause
	}
}

var onesWords = []string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten",
	"Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}

var tensWords = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}

// AmountInWords spells an INR amount in the Indian numbering system
// (lakh, crore) for the certificate's amount line
func AmountInWords(n int) string {
	if n == 0 {
		return "Zero Rupees Only"
	}
	parts := []string{}
	appendPart := func(v int, unit string) {
		if v > 0 {
			parts = append(parts, strings.TrimSpace(belowThousand(v)+" "+unit))
		}
	}
	appendPart(n/10000000, "Crore")
	appendPart((n/100000)%100, "Lakh")
	appendPart((n/1000)%100, "Thousand")
	if h := (n / 100) % 10; h > 0 {
		parts = append(parts, onesWords[h]+" Hundred")
	}
	if r := n % 100; r > 0 {
		parts = append(parts, belowHundred(r))
	}
	return strings.Join(parts, " ") + " Rupees Only"
}

func belowHundred(n int) string {
	if n < 20 {
		return onesWords[n]
	}
	s := tensWords[n/10]
	if n%10 > 0 {
		s += " " + onesWords[n%10]
	}
	return s
}

func belowThousand(n int) string {
	s := ""
	if n >= 100 {
		s = onesWords[n/100] + " Hundred"
		n %= 100
		if n > 0 {
			s += " "
		}
	}
	if n > 0 {
		s += belowHundred(n)
	}
	return s
}

// GET /donations/:id/certificate
//
// Lets the donor download their certificate. Guests cannot fetch
// certificates through the API; theirs arrive by email.
func DownloadCertificate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.BadRequest(c, "Invalid donation ID", nil)
		return
	}

	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "Please login for access")
		return
	}
	user := userVal.(models.User)

	var donation models.Donation
	if err := config.DB.First(&donation, uint(id)).Error; err != nil {
		utils.NotFound(c, "Donation not found")
		return
	}
	if donation.UserID == nil || *donation.UserID != user.ID {
		utils.Forbidden(c, "You do not have access to this certificate")
		return
	}
	if donation.CertificatePath == "" {
		utils.NotFound(c, "Certificate not generated yet")
		return
	}

	c.FileAttachment(donation.CertificatePath, "80G_Certificate.pdf")
}
