package routes

import (
	"github.com/dfg-seva/DaanSetu/controllers"
	"github.com/dfg-seva/DaanSetu/middleware"
	"github.com/gin-gonic/gin"
)

// initAdminRoutes initializes the admin routes
func initAdminRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")

	admin.POST("/login", controllers.AdminLogin)

	protected := admin.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	{
		protected.GET("/dashboard", controllers.AdminDashboard)

		protected.GET("/donations", controllers.AdminListDonations)
		protected.GET("/donations/export", controllers.AdminExportDonations)
		protected.GET("/donations/:id", controllers.AdminGetDonation)
		protected.POST("/donations/:id/resend-certificate", controllers.AdminResendCertificate)

		protected.GET("/template", controllers.AdminGetTemplate)
		protected.PUT("/template", controllers.AdminUpdateTemplate)
		protected.POST("/template/logo", controllers.AdminUploadTemplateLogo)
		protected.POST("/template/signature", controllers.AdminUploadTemplateSignature)
	}
}
