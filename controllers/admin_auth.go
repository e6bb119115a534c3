package controllers

import (
	"os"
	"time"

	"github.com/dfg-seva/DaanSetu/config"
	"github.com/dfg-seva/DaanSetu/models"
	"github.com/dfg-seva/DaanSetu/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// POST /admin/login
func AdminLogin(c *gin.Context) {
	utils.LogInfo("AdminLogin called")

	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var admin models.Admin
	if err := config.DB.Where("email = ?", req.Email).First(&admin).Error; err != nil {
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	if !admin.IsActive {
		utils.Forbidden(c, "Admin account is inactive")
		return
	}

	if !utils.CheckPassword(req.Password, admin.Password) {
		utils.LogError("Invalid password for admin %d", admin.ID)
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	admin.LastLogin = time.Now()
	if err := config.DB.Save(&admin).Error; err != nil {
		utils.LogError("Failed to update last login for admin %d: %v", admin.ID, err)
	}

	token, err := utils.GenerateAdminToken(&admin)
	if err != nil {
		utils.LogError("Admin token generation failed: %v", err)
		utils.InternalServerError(c, "Login failed", nil)
		return
	}

	utils.LogInfo("Admin logged in: %d", admin.ID)
	utils.Success(c, "Login successful", gin.H{
		"token": token,
		"admin": gin.H{
			"id":         admin.ID,
			"email":      admin.Email,
			"first_name": admin.FirstName,
			"last_name":  admin.LastName,
		},
	})
}

// CreateSampleAdmin seeds the first admin account on startup when none
// exists. Credentials come from env; skipped entirely when unset.
func CreateSampleAdmin() error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		utils.LogDebug("Admin seed skipped, ADMIN_EMAIL/ADMIN_PASSWORD not set")
		return nil
	}

	var existing models.Admin
	err := config.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.Admin{
		Email:     email,
		Password:  hashed,
		FirstName: "Admin",
		IsActive:  true,
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		return err
	}
	utils.LogInfo("Seeded admin account: %s", email)
	return nil
}
