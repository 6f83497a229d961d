package main

import (
	"net/http"
	"os"
	"time"

	"jobhunt/api/handler"
	apiMiddleware "jobhunt/api/middleware"
	"jobhunt/api/routes"
	"jobhunt/config"
	"jobhunt/internal/repository"
	"jobhunt/internal/service"
	"jobhunt/internal/utils"

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

	if err := config.AutoMigrate(db); err != nil {
		logger.WithError(err).Fatal("migration failed")
	}

	sessionSecret := []byte(os.Getenv("JWT_SECRET"))
	if len(sessionSecret) == 0 {
		logger.Fatal("JWT_SECRET is required")
	}

	jwtManager := utils.JWTManager{
		Secret:     sessionSecret,
		Issuer:     os.Getenv("JWT_ISSUER"),
		SessionTTL: 7 * 24 * time.Hour,
	}

	userRepo := repository.NewUserRepository(db)
	jobRepo := repository.NewJobRepository(db)
	securityRepo := repository.NewSecurityLogRepository(db)

	emailSender := service.NewResendEmailSender(
		os.Getenv("RESEND_API_KEY"),
		os.Getenv("RESEND_FROM_EMAIL"),
		os.Getenv("FRONTEND_URL"),
		os.Getenv("SUPPORT_RECEIVER_EMAIL"),
	)

	authService := service.NewAuthService(
		userRepo,
		securityRepo,
		emailSender,
		service.BcryptPasswordHasher{},
		jwtManager,
		service.RealClock{},
		service.AuthConfig{
			SessionTTL:           7 * 24 * time.Hour,
			VerificationTokenTTL: 24 * time.Hour,
			OTPTTL:               10 * time.Minute,
		},
	)
	jobService := service.NewJobService(jobRepo, userRepo)
	supportService := service.NewSupportService(emailSender)

	production := os.Getenv("APP_ENV") == "production"

	authHandler := handler.NewAuthHandler(authService, validate)
	authHandler.CookieDomain = os.Getenv("COOKIE_DOMAIN")
	authHandler.SecureCookies = production
	if production {
		authHandler.SameSite = http.SameSiteNoneMode
	} else {
		authHandler.SameSite = http.SameSiteLaxMode
	}

	jobHandler := handler.NewJobHandler(jobService, validate)
	userHandler := handler.NewUserHandler(jobService)
	supportHandler := handler.NewSupportHandler(supportService, validate)
	sitemapHandler := handler.NewSitemapHandler(jobService, os.Getenv("SITE_URL"))

	app := echo.New()
	app.HideBanner = true
	app.HidePort = true
	app.Use(echoMiddleware.Recover())
	app.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins:     []string{os.Getenv("CLIENT_URL")},
		AllowCredentials: true,
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

	authMiddleware := apiMiddleware.AuthMiddleware{JWT: &jwtManager, Users: userRepo}
	router := routes.NewRouter(
		app,
		authHandler,
		jobHandler,
		userHandler,
		supportHandler,
		sitemapHandler,
		authMiddleware,
	)
	router.RegisterRoutes()

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":5000"
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
