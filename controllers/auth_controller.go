package controllers

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/dfg-seva/DaanSetu/config"
	"github.com/dfg-seva/DaanSetu/models"
	"github.com/dfg-seva/DaanSetu/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RegisterRequest is the donor signup payload
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// POST /auth/register
func Register(c *gin.Context) {
	utils.LogInfo("Register called")

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if !utils.ValidateEmail(req.Email) {
		utils.BadRequest(c, "Invalid email", nil)
		return
	}

	if _, err := utils.GetUserByEmail(req.Email); err == nil {
		utils.Conflict(c, "An account with this email already exists", nil)
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.LogError("Password hashing failed: %v", err)
		utils.InternalServerError(c, "Failed to create account", nil)
		return
	}

	user := models.User{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Password:   hashed,
		IsVerified: true,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		utils.LogError("Failed to create user: %v", err)
		utils.InternalServerError(c, "Failed to create account", nil)
		return
	}

	token, err := utils.GenerateToken(&user)
	if err != nil {
		utils.LogError("Token generation failed for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to create account", nil)
		return
	}

	utils.LogInfo("User registered: %d (%s)", user.ID, user.Email)
	utils.Created(c, "Account created successfully", gin.H{
		"token": token,
		"user":  userResponse(&user),
	})
}

// POST /auth/login
func Login(c *gin.Context) {
	utils.LogInfo("Login called")

	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	user, err := utils.GetUserByEmail(req.Email)
	if err != nil {
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	if user.IsBlocked {
		utils.Forbidden(c, "Account is blocked")
		return
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		utils.LogError("Invalid password for user %d", user.ID)
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	user.LastLoginAt = time.Now()
	if err := config.DB.Save(user).Error; err != nil {
		utils.LogError("Failed to update last login for user %d: %v", user.ID, err)
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		utils.LogError("Token generation failed for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Login failed", nil)
		return
	}

	utils.LogInfo("User logged in: %d", user.ID)
	utils.Success(c, "Login successful", gin.H{
		"token": token,
		"user":  userResponse(user),
	})
}

const oauthStateSessionKey = "oauth_state"

// GET /auth/google
//
// Starts the Google sign-in flow. The state nonce lives in the session
// and is checked on callback.
func GoogleLogin(c *gin.Context) {
	state := uuid.New().String()

	session := sessions.Default(c)
	session.Set(oauthStateSessionKey, state)
	if err := session.Save(); err != nil {
		utils.LogError("Failed to save oauth state: %v", err)
		utils.InternalServerError(c, "Failed to start Google sign-in", nil)
		return
	}

	url := config.GoogleOAuthConfig.AuthCodeURL(state)
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// GET /auth/google/callback
func GoogleCallback(c *gin.Context) {
	utils.LogInfo("GoogleCallback called")

	session := sessions.Default(c)
	savedState, _ := session.Get(oauthStateSessionKey).(string)
	session.Delete(oauthStateSessionKey)
	_ = session.Save()

	if savedState == "" || c.Query("state") != savedState {
		utils.LogError("OAuth state mismatch")
		utils.BadRequest(c, "Invalid OAuth state", nil)
		return
	}

	code := c.Query("code")
	if code == "" {
		utils.BadRequest(c, "Missing authorization code", nil)
		return
	}

	token, err := config.GoogleOAuthConfig.Exchange(c.Request.Context(), code)
	if err != nil {
		utils.LogError("OAuth code exchange failed: %v", err)
		utils.Unauthorized(c, "Google sign-in failed")
		return
	}

	client := config.GoogleOAuthConfig.Client(c.Request.Context(), token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		utils.LogError("Failed to fetch Google user info: %v", err)
		utils.Unauthorized(c, "Google sign-in failed")
		return
	}
	defer resp.Body.Close()

	var info struct {
		ID      string `json:"id"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		utils.LogError("Failed to decode Google user info: %v", err)
		utils.Unauthorized(c, "Google sign-in failed")
		return
	}

	user, err := findOrCreateGoogleUser(info.ID, info.Email, info.Name, info.Picture)
	if err != nil {
		utils.LogError("Failed to resolve Google user: %v", err)
		utils.InternalServerError(c, "Google sign-in failed", nil)
		return
	}

	if user.IsBlocked {
		utils.Forbidden(c, "Account is blocked")
		return
	}

	jwtToken, err := utils.GenerateToken(user)
	if err != nil {
		utils.LogError("Token generation failed for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Google sign-in failed", nil)
		return
	}

	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		utils.Success(c, "Login successful", gin.H{
			"token": jwtToken,
			"user":  userResponse(user),
		})
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, frontendURL+"/auth/callback?token="+jwtToken)
}

func findOrCreateGoogleUser(googleID, email, name, picture string) (*models.User, error) {
	var user models.User
	err := config.DB.Where("google_id = ?", googleID).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	// link by email when the donor registered with a password first
	err = config.DB.Where("email = ?", email).First(&user).Error
	if err == nil {
		user.GoogleID = googleID
		if user.AvatarURL == "" {
			user.AvatarURL = picture
		}
		user.IsVerified = true
		if err := config.DB.Save(&user).Error; err != nil {
			return nil, err
		}
		return &user, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	user = models.User{
		Email:      email,
		Name:       name,
		GoogleID:   googleID,
		AvatarURL:  picture,
		IsVerified: true,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	utils.LogInfo("Created user %d via Google sign-in", user.ID)
	return &user, nil
}

func userResponse(user *models.User) gin.H {
	return gin.H{
		"id":     user.ID,
		"name":   user.Name,
		"email":  user.Email,
		"phone":  user.Phone,
		"avatar": user.AvatarURL,
	}
}
