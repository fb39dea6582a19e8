package routes

import (
	"context"
	"os"
	"time"

	_ "ecopontos_arapiraca/docs" // This will be auto-generated
	"ecopontos_arapiraca/internal/adapter/http/handlers"
	"ecopontos_arapiraca/internal/adapter/http/middleware"
	repository2 "ecopontos_arapiraca/internal/adapter/persistence/repository"
	"ecopontos_arapiraca/internal/infrastructure/auth"
	"ecopontos_arapiraca/internal/infrastructure/database"
	"ecopontos_arapiraca/internal/infrastructure/mail"
	"ecopontos_arapiraca/internal/infrastructure/registry"
	"ecopontos_arapiraca/internal/usecase"
	"ecopontos_arapiraca/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("failed to startup the application")
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	ecopointRepo := repository2.NewEcoPointDynamoRepository(ddb)
	requestRepo := repository2.NewRequestCollectionDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)

	jwtService := auth.NewJWTService(jwtSecret(), jwtTTL())
	cnpjValidator := registry.NewReceitaWSClient(os.Getenv("RECEITAWS_BASE_URL"), registry.NewRedisCache())

	var mailer interfaces.IMailer
	smtpMailer, err := mail.NewSMTPMailerFromEnv()
	if err != nil {
		log.Warn().Err(err).Msg("complaint mailer not configured")
	} else {
		mailer = smtpMailer
	}

	ecopointUseCase := usecase.NewEcoPointUseCase(ecopointRepo, cnpjValidator)
	requestUseCase := usecase.NewRequestCollectionUseCase(requestRepo, ecopointRepo)
	userUseCase := usecase.NewUserUseCase(userRepo, jwtService)
	complaintUseCase := usecase.NewComplaintUseCase(mailer)

	userUseCase.EnsureDefaultAdmin(context.Background())

	ecopointHandler := handlers.NewEcoPointHandler(ecopointUseCase)
	requestHandler := handlers.NewRequestCollectionHandler(requestUseCase)
	authHandler := handlers.NewAuthHandler(userUseCase)
	userHandler := handlers.NewUserHandler(userUseCase)
	externalHandler := handlers.NewExternalHandler(cnpjValidator)
	complaintHandler := handlers.NewComplaintHandler(complaintUseCase)

	authRequired := middleware.JWTAuth(jwtService)

	root := router.Group("")
	addPingRoutes(root)
	addAuthRoutes(root, authHandler, authRequired)
	addUserRoutes(root, userHandler, authRequired)
	addEcoPointRoutes(root, ecopointHandler, authRequired)
	addRequestCollectionRoutes(root, requestHandler, authRequired)
	addExternalRoutes(root, externalHandler)
	addComplaintRoutes(root, complaintHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(500)
	}))
}

func jwtSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-change-me"
		log.Warn().Msg("JWT_SECRET not set, using insecure development secret")
	}
	return secret
}

func jwtTTL() time.Duration {
	raw := os.Getenv("JWT_TTL")
	if raw == "" {
		return 24 * time.Hour
	}
	ttl, err := time.ParseDuration(raw)
	if err != nil || ttl <= 0 {
		log.Warn().Str("value", raw).Msg("invalid JWT_TTL, falling back to 24h")
		return 24 * time.Hour
	}
	return ttl
}
