package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wildtrails/tours-api/internal/api/handler"
	"github.com/wildtrails/tours-api/internal/api/middleware"
	"github.com/wildtrails/tours-api/internal/core/domain"
	"github.com/wildtrails/tours-api/internal/core/service"
	"github.com/wildtrails/tours-api/internal/infrastructure/config"
	mongodb "github.com/wildtrails/tours-api/internal/infrastructure/db/mongo"
	redisdb "github.com/wildtrails/tours-api/internal/infrastructure/db/redis"
	"github.com/wildtrails/tours-api/internal/infrastructure/mail"
)

// NewRouter wires repositories, services, handlers and middleware into a
// configured echo instance.
func NewRouter(cfg *config.Config, mongoClient *mongo.Client, db *mongo.Database, redisClient *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(!cfg.IsProduction(), log)
	e.Validator = handler.NewValidator()

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.Secure())
	e.Use(echomw.BodyLimit("10K"))
	e.Use(echoprometheus.NewMiddleware("tours"))
	e.GET("/metrics", echoprometheus.NewHandler())

	userRepo := mongodb.NewUserRepository(db)
	tourRepo := mongodb.NewTourRepository(db)
	reviewRepo := mongodb.NewReviewRepository(db)

	mailer := mail.NewSMTPMailer(mail.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})

	authService := service.NewAuthService(userRepo, mailer, log, cfg.JWT.Secret, cfg.JWT.Expires, cfg.BaseURL)
	userService := service.NewUserService(userRepo, log)
	tourService := service.NewTourService(tourRepo, log)
	reviewService := service.NewReviewService(reviewRepo, log)

	authHandler := handler.NewAuthHandler(authService, cfg.JWT.CookieExpiresDays, cfg.IsProduction())
	userHandler := handler.NewUserHandler(userService)
	tourHandler := handler.NewTourHandler(tourService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	healthHandler := handler.NewHealthHandler(mongoClient, redisClient)

	e.GET("/health", healthHandler.Live)
	e.GET("/health/ready", healthHandler.Ready)

	protect := middleware.Protect(authService)
	limiter := redisdb.NewRateLimiter(redisClient, cfg.RateLimit.Max, cfg.RateLimit.Window)

	v1 := e.Group("/api/v1", middleware.RateLimit(limiter, log))

	users := v1.Group("/users")
	users.POST("/signup", authHandler.SignUp)
	users.POST("/signin", authHandler.SignIn)
	users.POST("/forgot-password", authHandler.ForgotPassword)
	users.PATCH("/reset-password/:token", authHandler.ResetPassword)
	users.PATCH("/update-password", authHandler.UpdatePassword, protect)
	users.PATCH("/update-profile", userHandler.UpdateProfile, protect)
	users.DELETE("/delete-profile", userHandler.DeleteProfile, protect)
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.GET("/:id", userHandler.Get)
	users.PATCH("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete, protect, middleware.RestrictTo(domain.RoleAdmin))

	tours := v1.Group("/tours")
	tours.GET("/top-5-cheap", tourHandler.TopTours)
	tours.GET("/tour-stats", tourHandler.Stats)
	tours.GET("/mountly-plan/:year", tourHandler.MonthlyPlan)
	tours.GET("", tourHandler.List, protect)
	tours.POST("", tourHandler.Create)
	tours.GET("/:id", tourHandler.Get)
	tours.PATCH("/:id", tourHandler.Update)
	tours.DELETE("/:id", tourHandler.Delete, protect, middleware.RestrictTo(domain.RoleAdmin, domain.RoleLeadGuide))

	tours.GET("/:tourId/reviews", reviewHandler.List)
	tours.POST("/:tourId/reviews", reviewHandler.Create, protect)

	reviews := v1.Group("/reviews")
	reviews.GET("", reviewHandler.List)
	reviews.GET("/:id", reviewHandler.Get)
	reviews.POST("", reviewHandler.Create, protect)
	reviews.PATCH("/:id", reviewHandler.Update, protect)
	reviews.DELETE("/:id", reviewHandler.Delete, protect)

	return e
}
