package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Shree2124/ngostream-backend/config"
	"github.com/Shree2124/ngostream-backend/database"
	"github.com/Shree2124/ngostream-backend/internal/auditlog"
	"github.com/Shree2124/ngostream-backend/internal/auth"
	"github.com/Shree2124/ngostream-backend/internal/beneficiary"
	"github.com/Shree2124/ngostream-backend/internal/dashboard"
	"github.com/Shree2124/ngostream-backend/internal/donation"
	"github.com/Shree2124/ngostream-backend/internal/donor"
	"github.com/Shree2124/ngostream-backend/internal/event"
	"github.com/Shree2124/ngostream-backend/internal/goal"
	"github.com/Shree2124/ngostream-backend/internal/impact"
	"github.com/Shree2124/ngostream-backend/internal/member"
	"github.com/Shree2124/ngostream-backend/internal/notification"
	"github.com/Shree2124/ngostream-backend/internal/reports"
	"github.com/Shree2124/ngostream-backend/internal/scheme"
	"github.com/Shree2124/ngostream-backend/middleware"
	"github.com/Shree2124/ngostream-backend/utils"

	_ "github.com/Shree2124/ngostream-backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Setup wires every module's repository, service and handler onto the
// /api/v1 surface. The event service is returned so the caller can run the
// reminder sweep loop against it.
func Setup(r *gin.Engine, cfg *config.Config, uploader *utils.Uploader) event.Service {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimiter(300))
	api.Use(middleware.CaptureClientIP())

	// ========== Audit Log ==========
	auditRepo := auditlog.NewRepository(database.DB)
	auditSvc := auditlog.NewService(auditRepo)
	auditHandler := auditlog.NewHandler(auditSvc)

	// ========== Auth ==========
	authRepo := auth.NewRepository(database.DB)
	authSvc := auth.NewService(authRepo, cfg)
	authHandler := auth.NewHandler(authSvc)

	requireAuth := middleware.AuthMiddleware(cfg, authSvc)
	superadminOnly := middleware.RequireRoles("superadmin")

	users := api.Group("/users")
	{
		users.POST("/login", authHandler.Login)
		users.POST("/logout", requireAuth, authHandler.Logout)
		users.GET("/current-user", requireAuth, authHandler.CurrentUser)
	}

	// ========== Donor ==========
	donorRepo := donor.NewRepository(database.DB)
	donorSvc := donor.NewService(donorRepo, auditSvc)
	donorHandler := donor.NewHandler(donorSvc)

	donors := api.Group("/donors", requireAuth)
	{
		donors.GET("", donorHandler.ListDonors)
		donors.GET("/:id", donorHandler.GetDonor)
		donors.PUT("/:id", donorHandler.UpdateDonor)
		donors.DELETE("/:id", donorHandler.DeleteDonor)
	}

	// ========== Donation ==========
	donationRepo := donation.NewRepository(database.DB)
	stripeClient := donation.NewStripeClient(cfg)
	donationSvc := donation.NewService(donationRepo, donorSvc, stripeClient, uploader, auditSvc, cfg)
	donationHandler := donation.NewHandler(donationSvc)

	donations := api.Group("/donation")
	{
		donations.POST("/checkout", donationHandler.Checkout)
		donations.POST("/payment-success", donationHandler.PaymentSuccess)
		donations.GET("/get-donation-info/:type", requireAuth, donationHandler.GetDonationInfo)
		donations.PUT("/update-donation-status", requireAuth, donationHandler.UpdateDonationStatus)
	}

	// ========== Goal ==========
	goalRepo := goal.NewRepository(database.DB)
	goalSvc := goal.NewService(goalRepo, uploader, auditSvc)
	goalHandler := goal.NewHandler(goalSvc)

	goals := api.Group("/goals")
	{
		goals.GET("/all-goals", goalHandler.ListGoals)
		goals.GET("/goal/:id", goalHandler.GetGoal)
		goals.POST("/create", requireAuth, goalHandler.CreateGoal)
		goals.PUT("/edit/:id", requireAuth, goalHandler.EditGoal)
		goals.DELETE("/delete/:id", requireAuth, goalHandler.DeleteGoal)
	}

	// ========== Member ==========
	memberRepo := member.NewRepository(database.DB)
	memberSvc := member.NewService(memberRepo)
	memberHandler := member.NewHandler(memberSvc)

	members := api.Group("/members", requireAuth)
	{
		members.GET("", memberHandler.ListMembers)
		members.GET("/:id", memberHandler.GetMember)
	}

	// ========== Reports ==========
	reportsRepo := reports.NewRepository(database.DB)
	reportsSvc := reports.NewService(reportsRepo, reports.NewExporter(), uploader, auditSvc)
	reportsHandler := reports.NewHandler(reportsSvc)

	api.POST("/reports/generate", requireAuth, reportsHandler.Generate)

	// ========== Event ==========
	eventRepo := event.NewRepository(database.DB)
	eventSvc := event.NewService(eventRepo, memberSvc, auditSvc)
	eventHandler := event.NewHandler(eventSvc)

	events := api.Group("/events")
	{
		events.GET("", eventHandler.ListEvents)
		events.GET("/:id", eventHandler.GetEvent)
		events.GET("/:id/report", requireAuth, reportsHandler.EventReport)
		events.POST("/create", requireAuth, eventHandler.CreateEvent)
		events.PUT("/edit/:id", requireAuth, eventHandler.EditEvent)
		events.POST("/register", eventHandler.Register)
		events.POST("/feedback/:id", eventHandler.AddFeedback)
	}

	// ========== Beneficiary ==========
	beneficiaryRepo := beneficiary.NewRepository(database.DB)
	beneficiarySvc := beneficiary.NewService(beneficiaryRepo, auditSvc)
	beneficiaryHandler := beneficiary.NewHandler(beneficiarySvc)

	beneficiaries := api.Group("/beneficiary", requireAuth)
	{
		beneficiaries.POST("", beneficiaryHandler.CreateBeneficiary)
		beneficiaries.GET("", beneficiaryHandler.ListBeneficiaries)
		beneficiaries.GET("/:id", beneficiaryHandler.GetBeneficiary)
		beneficiaries.PUT("/:id", beneficiaryHandler.UpdateBeneficiary)
		beneficiaries.DELETE("/:id", beneficiaryHandler.DeleteBeneficiary)
	}

	// ========== Scheme ==========
	schemeRepo := scheme.NewRepository(database.DB)
	schemeSvc := scheme.NewService(schemeRepo, beneficiarySvc, auditSvc)
	schemeHandler := scheme.NewHandler(schemeSvc)

	schemes := api.Group("/schemes")
	{
		schemes.GET("", schemeHandler.ListSchemes)
		schemes.GET("/:id", schemeHandler.GetScheme)
		schemes.POST("", requireAuth, schemeHandler.CreateScheme)
		schemes.PUT("/:id", requireAuth, schemeHandler.UpdateScheme)
		schemes.DELETE("/:id", requireAuth, schemeHandler.DeleteScheme)
		schemes.POST("/enroll", requireAuth, schemeHandler.Enroll)
		schemes.POST("/benefit", requireAuth, schemeHandler.MarkBenefited)
	}

	// ========== Impact ==========
	impactRepo := impact.NewRepository(database.DB)
	impactSvc := impact.NewService(impactRepo, uploader, auditSvc)
	impactHandler := impact.NewHandler(impactSvc)

	impacts := api.Group("/impact")
	{
		impacts.GET("", impactHandler.ListImpacts)
		impacts.GET("/:id", impactHandler.GetImpact)
		impacts.POST("", requireAuth, impactHandler.CreateImpact)
		impacts.PUT("/:id", requireAuth, impactHandler.UpdateImpact)
		impacts.DELETE("/:id", requireAuth, impactHandler.DeleteImpact)
	}

	// ========== Admin Dashboard ==========
	dashboardRepo := dashboard.NewRepository(database.DB)
	dashboardSvc := dashboard.NewService(dashboardRepo)
	dashboardHandler := dashboard.NewHandler(dashboardSvc)

	deviceHandler := notification.NewHandler(notification.NewDeviceService())

	admin := api.Group("/admin", requireAuth)
	{
		admin.GET("/quick-stats", dashboardHandler.QuickStats)
		admin.GET("/audit-logs", superadminOnly, auditHandler.GetAuditLogs)
		admin.GET("/audit-logs/:id", superadminOnly, auditHandler.GetAuditLogByID)
		admin.POST("/register-device", deviceHandler.RegisterDevice)
		admin.POST("/unregister-device", deviceHandler.UnregisterDevice)
		admin.POST("/broadcast", superadminOnly, deviceHandler.Broadcast)
	}

	// ========== Admin Management ==========
	manageAdmin := api.Group("/manage-admin", requireAuth, superadminOnly)
	{
		manageAdmin.POST("", authHandler.CreateAdmin)
		manageAdmin.GET("", authHandler.ListAdmins)
		manageAdmin.PUT("/:id", authHandler.UpdateAdmin)
		manageAdmin.DELETE("/:id", authHandler.DeleteAdmin)
	}

	return eventSvc
}
