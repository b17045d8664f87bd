package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iyforlando/academy-api/internal/authz"
	"github.com/iyforlando/academy-api/internal/config"
	"github.com/iyforlando/academy-api/internal/database"
	"github.com/iyforlando/academy-api/internal/handlers"
	authmw "github.com/iyforlando/academy-api/internal/middleware"
	"github.com/iyforlando/academy-api/internal/services"
	"github.com/iyforlando/academy-api/internal/sse"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/m1z23r/drift/pkg/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	jwtService := services.NewJWTService(cfg.JWTSecret, cfg.JWTAccessExpiry, cfg.JWTRefreshExpiry)
	tokenService := services.NewTokenService(db)
	profileService := services.NewProfileService(db)
	scopeService := services.NewScopeService(db)
	impersonationService := services.NewImpersonationService(db)
	academyService := services.NewAcademyService(db)
	studentService := services.NewStudentService(db)
	registrationService := services.NewRegistrationService(db)
	invoiceService := services.NewInvoiceService(db)
	attendanceService := services.NewAttendanceService(db)
	volunteerService := services.NewVolunteerService(db)
	emailService := services.NewEmailService(cfg.SMTP)

	resolver := authz.NewResolver(profileService, scopeService, impersonationService)

	hub := sse.NewHub()
	go hub.Run()

	authHandler := handlers.NewAuthHandler(cfg, profileService, tokenService, jwtService)
	sessionHandler := handlers.NewSessionHandler(resolver)
	profileHandler := handlers.NewProfileHandler(profileService)
	academyHandler := handlers.NewAcademyHandler(academyService)
	registrationHandler := handlers.NewRegistrationHandler(registrationService, studentService, academyService, emailService, hub)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService, registrationService, studentService, academyService, emailService)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceService, academyService, hub)
	volunteerHandler := handlers.NewVolunteerHandler(volunteerService)
	sseHandler := handlers.NewSSEHandler(hub)

	app := drift.New()

	if cfg.IsProduction() {
		app.SetMode(drift.ReleaseMode)
	} else {
		app.SetMode(drift.DebugMode)
	}

	app.Use(middleware.Recovery())
	app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:       86400,
	}))
	app.Use(middleware.BodyParser())

	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Get("/:provider/consent", authHandler.GetConsentURL)
	auth.Get("/:provider/callback", authHandler.Callback)
	auth.Post("/exchange", authHandler.ExchangeCode)
	auth.Post("/refresh", authHandler.RefreshToken)
	auth.Post("/logout", authHandler.Logout)

	protected := api.Group("")
	protected.Use(authmw.Auth(jwtService))
	protected.Use(authmw.Resolve(resolver))

	protected.Post("/auth/logout-all", authHandler.LogoutAll)

	protected.Get("/session", sessionHandler.Get)
	protected.Post("/session/impersonate", sessionHandler.Impersonate)
	protected.Delete("/session/impersonate", sessionHandler.StopImpersonation)

	protected.Get("/profiles/me", profileHandler.Me)

	admin := protected.Group("")
	admin.Use(authmw.RequireAdmin())

	admin.Get("/profiles", profileHandler.List)
	admin.Patch("/profiles/:id/role", profileHandler.UpdateRole)

	staff := protected.Group("")
	staff.Use(authmw.RequireRole())

	staff.Get("/academies", academyHandler.List)
	staff.Get("/academies/:id", academyHandler.Get)
	staff.Get("/academies/:id/levels", academyHandler.ListLevels)
	admin.Post("/academies", academyHandler.Create)
	admin.Patch("/academies/:id", academyHandler.Update)
	admin.Delete("/academies/:id", academyHandler.Delete)
	admin.Post("/academies/:id/levels", academyHandler.AddLevel)
	admin.Patch("/academies/:id/levels/:levelId", academyHandler.UpdateLevel)
	admin.Delete("/academies/:id/levels/:levelId", academyHandler.DeleteLevel)

	admin.Get("/students", registrationHandler.ListStudents)
	admin.Post("/students", registrationHandler.CreateStudent)
	admin.Get("/students/:id", registrationHandler.GetStudent)
	admin.Patch("/students/:id", registrationHandler.UpdateStudent)
	admin.Delete("/students/:id", registrationHandler.DeleteStudent)

	admin.Post("/registrations", registrationHandler.Create)
	staff.Get("/registrations/:id", registrationHandler.Get)
	staff.Get("/academies/:id/registrations", registrationHandler.ListByAcademy)
	admin.Patch("/registrations/:id/status", registrationHandler.UpdateStatus)
	admin.Post("/registrations/:id/cancel", registrationHandler.Cancel)

	admin.Post("/invoices", invoiceHandler.Create)
	admin.Get("/invoices/:id", invoiceHandler.Get)
	admin.Get("/registrations/:id/invoices", invoiceHandler.ListByRegistration)
	admin.Post("/invoices/:id/payments", invoiceHandler.RecordPayment)
	admin.Get("/finance/totals", invoiceHandler.SeasonTotals)

	staff.Post("/academies/:id/attendance", attendanceHandler.RecordSession)
	staff.Get("/academies/:id/attendance", attendanceHandler.ListSessions)
	staff.Get("/academies/:id/attendance/summary", attendanceHandler.Summary)

	admin.Post("/volunteers/hours", volunteerHandler.Log)
	admin.Get("/volunteers/hours", volunteerHandler.ListByEmail)
	admin.Get("/volunteers/total", volunteerHandler.Total)

	staff.Get("/academies/:academyId/events", sseHandler.Connect)
	staff.Post("/sse/:clientId/subscribe/:academyId", sseHandler.Subscribe)
	staff.Post("/sse/:clientId/unsubscribe/:academyId", sseHandler.Unsubscribe)

	api.Get("/health", func(c *drift.Context) {
		_ = c.JSON(200, map[string]string{"status": "ok"})
	})

	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		for range ticker.C {
			_ = tokenService.CleanupExpired(context.Background())
		}
	}()

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		log.Printf("Server starting on %s", addr)
		if err := app.Run(addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
}
