package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Shree2124/ngostream-backend/config"
	"github.com/Shree2124/ngostream-backend/database"
	"github.com/Shree2124/ngostream-backend/internal/auditlog"
	"github.com/Shree2124/ngostream-backend/internal/auth"
	"github.com/Shree2124/ngostream-backend/internal/beneficiary"
	"github.com/Shree2124/ngostream-backend/internal/donation"
	"github.com/Shree2124/ngostream-backend/internal/donor"
	"github.com/Shree2124/ngostream-backend/internal/event"
	"github.com/Shree2124/ngostream-backend/internal/goal"
	"github.com/Shree2124/ngostream-backend/internal/impact"
	"github.com/Shree2124/ngostream-backend/internal/member"
	"github.com/Shree2124/ngostream-backend/internal/notification"
	"github.com/Shree2124/ngostream-backend/internal/scheme"
	"github.com/Shree2124/ngostream-backend/routes"
	"github.com/Shree2124/ngostream-backend/utils"
)

// @title NGOStream Backend API
// @version 1.0
// @description Donation, event and scheme management backend for NGOs.
// @BasePath /api/v1
func main() {
	cfg := config.Load()

	db := database.Connect(cfg)

	if err := db.AutoMigrate(
		&auth.Admin{},
		&auditlog.AuditLog{},
		&donor.Donor{},
		&donation.Donation{},
		&goal.Goal{},
		&event.Event{},
		&event.Participant{},
		&event.Feedback{},
		&member.Member{},
		&beneficiary.Beneficiary{},
		&scheme.Scheme{},
		&scheme.Enrollment{},
		&impact.Impact{},
	); err != nil {
		log.Fatalf("❌ Auto migration failed: %v", err)
	}
	log.Println("✅ Database migrated")

	if err := utils.InitRedis(cfg); err != nil {
		log.Printf("⚠️ Redis unavailable, token revocation disabled: %v", err)
	}
	utils.InitializeKafka(cfg)
	if err := utils.InitFirebase(cfg); err != nil {
		log.Printf("⚠️ Firebase not configured, push notifications disabled: %v", err)
	}

	uploader, err := utils.NewUploader(cfg)
	if err != nil {
		log.Printf("⚠️ Cloudinary not configured, uploads disabled: %v", err)
		uploader = nil
	}

	if email := os.Getenv("SUPERADMIN_EMAIL"); email != "" {
		if err := auth.SeedSuperAdmin(db, email, os.Getenv("SUPERADMIN_PASSWORD")); err != nil {
			log.Printf("⚠️ Superadmin seeding failed: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	worker := notification.NewWorker(utils.NewNotificationReader(cfg), notification.NewEmailSender(cfg))
	go worker.Run(ctx)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL, "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	eventSvc := routes.Setup(r, cfg, uploader)
	go event.RunReminderLoop(ctx, eventSvc, time.Hour)

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("🚀 Server listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Server exited: %v", err)
	}
}
