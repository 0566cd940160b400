package api

import (
	"context"
	"log"
	"time"

	"github.com/RationSeva/ration_service/config"
	"github.com/RationSeva/ration_service/infra/queue"
	"github.com/RationSeva/ration_service/internal/api/rest/handlers"
	"github.com/RationSeva/ration_service/internal/api/rest/middleware"
	"github.com/RationSeva/ration_service/internal/clients/aiverify"
	"github.com/RationSeva/ration_service/internal/clients/googleauth"
	"github.com/RationSeva/ration_service/internal/clients/sms"
	"github.com/RationSeva/ration_service/internal/helper"
	"github.com/RationSeva/ration_service/internal/repository"
	"github.com/RationSeva/ration_service/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func StartServer(cfg config.Config) {
	app := fiber.New()

	// ---------- CORS ----------
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CorsOrigins,
		AllowHeaders: "Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	// ---------- DB ----------
	if cfg.MongoURL == "" || cfg.DBName == "" {
		log.Fatal("MONGO_URL and DB_NAME are required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURL))
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	// fast fail if unreachable
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("database ping error: %v", err)
	}
	log.Println("database connected")

	db := client.Database(cfg.DBName)

	// ---------- DEPENDENCIES ----------
	auth := helper.SetupAuth(cfg.JWTSecret, cfg.JWTExpirationDays)

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	cardRepo := repository.NewCardRepository(db)

	verifier := aiverify.New(cfg.LLMAPIKey, cfg.LLMBaseURL, cfg.LLMModel)
	oauthClient := googleauth.New(cfg.OAuthSessionURL)
	smsClient := sms.New(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioPhone)

	producer := queue.NewProducer(cfg.KafkaBroker, cfg.KafkaTopic, cfg.KafkaUsername, cfg.KafkaPassword)
	defer func() {
		_ = producer.Close()
	}()

	authSvc := services.NewAuthService(userRepo, sessionRepo, oauthClient, auth)
	cardSvc := services.NewCardService(cardRepo, verifier, producer)
	notifySvc := services.NewNotifyService(userRepo, smsClient)

	// ---------- ROUTES ----------
	app.Get("/", healthCheck)

	api := app.Group("/api")
	authMW := middleware.AuthMiddleware(auth)

	handlers.NewAuthHandler(authSvc, auth).SetupRoutes(api, authMW)
	handlers.NewCardHandler(cardSvc, auth).SetupRoutes(api, authMW)
	handlers.NewAdminHandler(cardSvc, authSvc, notifySvc).SetupRoutes(api, authMW)

	if err := app.Listen(cfg.ServerPort); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func healthCheck(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Healthy!",
	})
}
