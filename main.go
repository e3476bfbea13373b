// @title ClubHub API
// @version 1.0
// @description Membership and event management backend for the student club.
// @host localhost:8000
// @BasePath /

package main

import (
	"context"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlog "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog"

	_ "clubhub-backend/docs"

	"clubhub-backend/bootstrap"
	"clubhub-backend/config"
	"clubhub-backend/database"
	"clubhub-backend/internal/controllers"
	"clubhub-backend/internal/mailer"
	"clubhub-backend/internal/middleware"
	"clubhub-backend/internal/realtime"
	"clubhub-backend/internal/repository"
	"clubhub-backend/internal/routes"
	"clubhub-backend/internal/services"
	"clubhub-backend/internal/storage"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	client, err := database.ConnectMongo(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer client.Disconnect(context.Background())
	log.Info().Str("db", cfg.MongoDB).Msg("connected to MongoDB")

	if err := bootstrap.EnsureIndexes(database.DB); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes failed")
	}

	mail, err := mailer.NewMailer(log)
	if err != nil {
		log.Fatal().Err(err).Msg("mailer setup failed")
	}

	uploads, err := storage.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("upload store setup failed")
	}

	hub := realtime.NewHub(log)

	userRepo := repository.NewUserRepository()
	otpRepo := repository.NewOTPRepository()
	eventRepo := repository.NewEventRepository()
	paymentRepo := repository.NewPaymentRepository()
	ledgerRepo := repository.NewPaymentReceiptRepository()
	mirrorRepo := repository.NewMirrorRepository()
	committeeRepo := repository.NewCommitteeRepository()
	statsRepo := repository.NewStatsRepository()

	registrations := services.NewRegistrationService(eventRepo, userRepo, paymentRepo, ledgerRepo, mirrorRepo, hub, log)
	receipts := services.NewReceiptService(eventRepo, cfg.BaseURL, log)
	verification := services.NewVerificationService(ledgerRepo, eventRepo, hub, log)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(fiberlog.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/docs/*", swagger.HandlerDefault)
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Static("/uploads", uploads.BaseDir())

	app.Use(middleware.JWTAuth(cfg.JWTSecret))

	routes.Register(app, routes.Deps{
		Auth: &controllers.AuthController{
			Users:     userRepo,
			OTPs:      otpRepo,
			Mailer:    mail,
			JWTSecret: cfg.JWTSecret,
			Log:       log,
		},
		Events:        &controllers.EventController{Events: eventRepo, Hub: hub},
		Registrations: &controllers.RegistrationController{Registrations: registrations, Uploads: uploads, Log: log},
		Receipts:      &controllers.ReceiptController{Receipts: receipts},
		AdminPayments: &controllers.AdminPaymentController{Ledger: ledgerRepo, Verification: verification},
		AdminUsers:    &controllers.UserAdminController{Users: userRepo},
		Committee:     &controllers.CommitteeController{Members: committeeRepo},
		Dashboard:     &controllers.DashboardController{Stats: statsRepo},
		Users:         userRepo,
		Hub:           hub,
	})

	log.Info().Str("port", cfg.Port).Msg("listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
