package routes

import (
	"github.com/dfg-seva/DaanSetu/controllers"
	"github.com/dfg-seva/DaanSetu/middleware"
	"github.com/gin-gonic/gin"
)

// initUserRoutes initializes the donor-facing routes
func initUserRoutes(router *gin.RouterGroup) {
	// Account routes
	auth := router.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.GET("/google/login", controllers.GoogleLogin)
		auth.GET("/google/callback", controllers.GoogleCallback)
	}

	// Donation wizard. Guests use it freely; a logged-in donor gets
	// their donations linked to the account.
	donate := router.Group("/donate")
	donate.Use(middleware.OptionalAuthMiddleware())
	{
		donate.GET("/state", controllers.GetWizardState)
		donate.POST("/type", controllers.SetWizardDonationType)
		donate.POST("/amount", controllers.SetWizardAmount)
		donate.POST("/details", controllers.SetWizardDonorDetails)
		donate.POST("/back", controllers.WizardBack)
		donate.POST("/checkout", controllers.WizardCheckout)
	}

	// Direct order pipeline and payment confirmation
	donations := router.Group("/donations")
	donations.Use(middleware.OptionalAuthMiddleware())
	{
		donations.POST("/create-order", controllers.CreateDonationOrder)
		donations.POST("/verify", controllers.VerifyRazorpayPayment)
		donations.POST("/verify-cashfree", controllers.VerifyCashfreePayment)
		donations.GET("/:id", controllers.GetDonationStatus)

		// Gateway callbacks, authenticated by signature instead of a token
		donations.POST("/webhook/razorpay", controllers.RazorpayWebhook)
		donations.POST("/webhook/cashfree", controllers.CashfreeWebhook)
	}

	// Routes that need a logged-in donor
	authed := router.Group("")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.GET("/donations/history", controllers.GetDonationHistory)
		authed.GET("/donations/:id/certificate", controllers.DownloadCertificate)
		authed.GET("/profile", controllers.GetProfile)
		authed.PUT("/profile", controllers.UpdateProfile)
	}
}
