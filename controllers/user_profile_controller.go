package controllers

import (
	"github.com/dfg-seva/DaanSetu/config"
	"github.com/dfg-seva/DaanSetu/models"
	"github.com/dfg-seva/DaanSetu/utils"
	"github.com/gin-gonic/gin"
)

// GET /profile
//
// Returns the donor's profile including the 80G fields the wizard uses
// to pre-fill the donor details step
func GetProfile(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "Please login for access")
		return
	}
	user := userVal.(models.User)

	utils.Success(c, "Profile retrieved", gin.H{
		"id":          user.ID,
		"name":        user.Name,
		"email":       user.Email,
		"phone":       user.Phone,
		"avatar":      user.AvatarURL,
		"pan_number":  user.PanNumber,
		"father_name": user.FatherName,
		"address":     user.Address,
		"city":        user.City,
		"state":       user.State,
		"pincode":     user.Pincode,
		"country":     user.Country,
	})
}

// UpdateProfileRequest carries the editable profile fields. Email is
// not editable; it is the account identity.
type UpdateProfileRequest struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	PanNumber  string `json:"pan_number"`
	FatherName string `json:"father_name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	Pincode    string `json:"pincode"`
}

// PUT /profile
func UpdateProfile(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "Please login for access")
		return
	}
	user := userVal.(models.User)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var errs utils.FieldValidationErrors
	if req.Pincode != "" && !utils.ValidatePincode(req.Pincode) {
		errs = append(errs, utils.FieldValidationError{Field: "pincode", Message: "Invalid pincode"})
	}
	if req.State != "" && !utils.ValidateState(req.State) {
		errs = append(errs, utils.FieldValidationError{Field: "state", Message: "State must be one of the listed Indian states"})
	}
	if len(errs) > 0 {
		utils.ValidationError(c, "Invalid profile fields", errs.Map())
		return
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.PanNumber != "" {
		user.PanNumber = utils.NormalizePan(req.PanNumber)
	}
	if req.FatherName != "" {
		user.FatherName = req.FatherName
	}
	if req.Address != "" {
		user.Address = req.Address
	}
	if req.City != "" {
		user.City = req.City
	}
	if req.State != "" {
		user.State = req.State
	}
	if req.Pincode != "" {
		user.Pincode = req.Pincode
	}

	if err := config.DB.Save(&user).Error; err != nil {
		utils.LogError("Failed to update profile for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to update profile", nil)
		return
	}

	utils.LogInfo("Profile updated for user %d", user.ID)
	utils.Success(c, "Profile updated successfully", gin.H{
		"id":          user.ID,
		"name":        user.Name,
		"phone":       user.Phone,
		"pan_number":  user.PanNumber,
		"father_name": user.FatherName,
		"address":     user.Address,
		"city":        user.City,
		"state":       user.State,
		"pincode":     user.Pincode,
	})
}
