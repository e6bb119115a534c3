package controllers

import (
	"os"

	"github.com/dfg-seva/DaanSetu/config"
	"github.com/dfg-seva/DaanSetu/models"
	"github.com/dfg-seva/DaanSetu/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const templateUploadDir = "uploads/templates"

// CreateDefaultCertificateTemplate seeds the active certificate
// template on startup when none exists
func CreateDefaultCertificateTemplate() error {
	var count int64
	if err := config.DB.Model(&models.CertificateTemplate{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	template := models.CertificateTemplate{
		Name:            "Default Template",
		IsActive:        true,
		PrimaryColor:    "#FF6B00",
		SecondaryColor:  "#2D6A4F",
		NGOName:         envOrDefault("NGO_NAME", "Dhyan Foundation Guwahati"),
		NGOPan:          os.Getenv("NGO_PAN"),
		NGO80GReg:       os.Getenv("NGO_80G_REG"),
		NGO12AReg:       os.Getenv("NGO_12A_REG"),
		NGOAddress:      envOrDefault("NGO_ADDRESS", "Guwahati, Assam, India"),
		NGOPhone:        os.Getenv("NGO_PHONE"),
		NGOEmail:        os.Getenv("NGO_EMAIL"),
		HeaderText:      "DONATION RECEIPT CUM 80G CERTIFICATE",
		ThankYouMessage: "Thank you for your generous contribution towards the welfare of animals.",
	}
	if err := config.DB.Create(&template).Error; err != nil {
		return err
	}
	utils.LogInfo("Seeded default certificate template")
	return nil
}

// GET /admin/template
func AdminGetTemplate(c *gin.Context) {
	template := utils.GetActiveCertificateTemplate()
	if template == nil {
		utils.NotFound(c, "No active certificate template")
		return
	}
	utils.Success(c, "Template retrieved", gin.H{"template": template})
}

// UpdateTemplateRequest carries the editable template fields
type UpdateTemplateRequest struct {
	Name            string `json:"name"`
	PrimaryColor    string `json:"primary_color"`
	SecondaryColor  string `json:"secondary_color"`
	NGOName         string `json:"ngo_name"`
	NGOPan          string `json:"ngo_pan"`
	NGO80GReg       string `json:"ngo_80g_reg"`
	NGO12AReg       string `json:"ngo_12a_reg"`
	NGOAddress      string `json:"ngo_address"`
	NGOPhone        string `json:"ngo_phone"`
	NGOEmail        string `json:"ngo_email"`
	HeaderText      string `json:"header_text"`
	FooterText      string `json:"footer_text"`
	ThankYouMessage string `json:"thank_you_message"`
}

// PUT /admin/template
func AdminUpdateTemplate(c *gin.Context) {
	utils.LogInfo("AdminUpdateTemplate called")

	var req UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	template, err := activeOrNewTemplate()
	if err != nil {
		utils.LogError("Template lookup failed: %v", err)
		utils.InternalServerError(c, "Failed to update template", nil)
		return
	}

	if req.Name != "" {
		template.Name = req.Name
	}
	if req.PrimaryColor != "" {
		template.PrimaryColor = req.PrimaryColor
	}
	if req.SecondaryColor != "" {
		template.SecondaryColor = req.SecondaryColor
	}
	if req.NGOName != "" {
		template.NGOName = req.NGOName
	}
	if req.NGOPan != "" {
		template.NGOPan = req.NGOPan
	}
	if req.NGO80GReg != "" {
		template.NGO80GReg = req.NGO80GReg
	}
	if req.NGO12AReg != "" {
		template.NGO12AReg = req.NGO12AReg
	}
	if req.NGOAddress != "" {
		template.NGOAddress = req.NGOAddress
	}
	if req.NGOPhone != "" {
		template.NGOPhone = req.NGOPhone
	}
	if req.NGOEmail != "" {
		template.NGOEmail = req.NGOEmail
	}
	if req.HeaderText != "" {
		template.HeaderText = req.HeaderText
	}
	if req.FooterText != "" {
		template.FooterText = req.FooterText
	}
	if req.ThankYouMessage != "" {
		template.ThankYouMessage = req.ThankYouMessage
	}

	if err := config.DB.Save(template).Error; err != nil {
		utils.LogError("Failed to save template: %v", err)
		utils.InternalServerError(c, "Failed to update template", nil)
		return
	}

	utils.Success(c, "Template updated successfully", gin.H{"template": template})
}

// POST /admin/template/logo
func AdminUploadTemplateLogo(c *gin.Context) {
	uploadTemplateImage(c, "logo")
}

// POST /admin/template/signature
func AdminUploadTemplateSignature(c *gin.Context) {
	uploadTemplateImage(c, "signature")
}

func uploadTemplateImage(c *gin.Context, field string) {
	file, err := c.FormFile(field)
	if err != nil {
		utils.BadRequest(c, "Missing "+field+" file", nil)
		return
	}

	path, err := utils.SaveUploadedFile(file, templateUploadDir)
	if err != nil {
		utils.BadRequest(c, err.Error(), nil)
		return
	}

	template, err := activeOrNewTemplate()
	if err != nil {
		utils.LogError("Template lookup failed: %v", err)
		utils.InternalServerError(c, "Failed to update template", nil)
		return
	}

	if field == "logo" {
		template.LogoPath = path
	} else {
		template.SignaturePath = path
	}

	if err := config.DB.Save(template).Error; err != nil {
		utils.LogError("Failed to save template %s: %v", field, err)
		utils.InternalServerError(c, "Failed to update template", nil)
		return
	}

	utils.LogInfo("Template %s updated: %s", field, path)
	utils.Success(c, "Upload successful", gin.H{"path": path})
}

func activeOrNewTemplate() (*models.CertificateTemplate, error) {
	var template models.CertificateTemplate
	err := config.DB.Where("is_active = ?", true).First(&template).Error
	if err == nil {
		return &template, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}
	template = models.CertificateTemplate{Name: "Default Template", IsActive: true}
	if err := config.DB.Create(&template).Error; err != nil {
		return nil, err
	}
	return &template, nil
}
