package main

import (
	"net/http"
	"os"
	"time"

	"github.com/abhijeet5642/propertyadded/api/handler"
	apiMiddleware "github.com/abhijeet5642/propertyadded/api/middleware"
	"github.com/abhijeet5642/propertyadded/api/routes"
	"github.com/abhijeet5642/propertyadded/config"
	"github.com/abhijeet5642/propertyadded/internal/repository"
	"github.com/abhijeet5642/propertyadded/internal/service"
	"github.com/abhijeet5642/propertyadded/internal/storage"
	"github.com/abhijeet5642/propertyadded/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	db := config.ConnectionDb()
	validate := validator.New()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	secret := []byte(os.Getenv("JWT_SECRET"))
	if len(secret) == 0 {
		logger.Fatal("JWT_SECRET is required")
	}

	tokenTTL := 24 * time.Hour
	if raw := os.Getenv("JWT_EXPIRES_IN"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			logger.WithError(err).Fatal("invalid JWT_EXPIRES_IN")
		}
		tokenTTL = parsed
	}

	jwtManager := utils.JWTManager{
		Secret:   secret,
		Issuer:   os.Getenv("JWT_ISSUER"),
		TokenTTL: tokenTTL,
	}

	redisClient, err := config.NewRedisClient()
	if err != nil {
		logger.WithError(err).Fatal("redis connection failed")
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	fileStore, err := storage.NewDiskStore(uploadDir)
	if err != nil {
		logger.WithError(err).Fatal("upload dir unavailable")
	}

	userRepo := repository.NewUserRepository(db)
	otpStore := repository.NewOTPStore(redisClient)
	propertyRepo := repository.NewPropertyRepository(db)

	emailSender := service.NewResendEmailSender(os.Getenv("RESEND_API_KEY"), os.Getenv("EMAIL_FROM"))

	authService := service.NewAuthService(
		userRepo,
		otpStore,
		emailSender,
		service.BcryptPasswordHasher{},
		service.JWTSessionIssuer{Manager: &jwtManager},
		service.RealClock{},
		service.AuthConfig{
			SessionTokenTTL: tokenTTL,
			OTPTTL:          10 * time.Minute,
			ResetTokenTTL:   10 * time.Minute,
			FrontendBaseURL: os.Getenv("FRONTEND_URL"),
		},
	)
	propertyService := service.NewPropertyService(propertyRepo, fileStore)

	authHandler := handler.NewAuthHandler(authService, validate)
	propertyHandler := handler.NewPropertyHandler(propertyService)
	userHandler := handler.NewUserHandler(authService)

	app := echo.New()
	app.HideBanner = true
	app.HidePort = true
	app.Use(echoMiddleware.Recover())
	app.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{frontendOrigin()},
	}))
	app.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogStatus:   true,
		LogMethod:   true,
		LogURI:      true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			entry := logger.WithFields(logrus.Fields{
				"status": v.Status,
				"method": v.Method,
				"uri":    v.URI,
				"ip":     v.RemoteIP,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Error("request")
				return nil
			}
			entry.Info("request")
			return nil
		},
	}))
	app.Static("/uploads", uploadDir)

	authMiddleware := apiMiddleware.AuthMiddleware{JWT: &jwtManager}
	router := routes.NewRouter(app, authHandler, propertyHandler, userHandler, authMiddleware)
	router.RegisterRoutes()

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":5001"
	}
	server := &http.Server{
		Addr:              addr,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.WithField("addr", addr).Info("server started")
	if err := app.StartServer(server); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}

func frontendOrigin() string {
	if origin := os.Getenv("FRONTEND_URL"); origin != "" {
		return origin
	}
	return "http://localhost:5173"
}
