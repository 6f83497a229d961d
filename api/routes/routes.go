package routes

import (
	"time"

	"jobhunt/api/handler"
	"jobhunt/api/middleware"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type Router struct {
	Echo           *echo.Echo
	Auth           *handler.AuthHandler
	Jobs           *handler.JobHandler
	Users          *handler.UserHandler
	Support        *handler.SupportHandler
	Sitemap        *handler.SitemapHandler
	AuthMiddleware middleware.AuthMiddleware
	AuthRate       *middleware.RateLimiter
	LoginRate      *middleware.RateLimiter
}

func NewRouter(
	e *echo.Echo,
	auth *handler.AuthHandler,
	jobs *handler.JobHandler,
	users *handler.UserHandler,
	support *handler.SupportHandler,
	sitemap *handler.SitemapHandler,
	authMiddleware middleware.AuthMiddleware,
) *Router {
	return &Router{
		Echo:           e,
		Auth:           auth,
		Jobs:           jobs,
		Users:          users,
		Support:        support,
		Sitemap:        sitemap,
		AuthMiddleware: authMiddleware,
		AuthRate:       middleware.NewRateLimiter(rate.Limit(5), 10, 5*time.Minute),
		LoginRate:      middleware.NewRateLimiter(rate.Limit(2), 4, 10*time.Minute),
	}
}

func (r *Router) RegisterRoutes() {
	e := r.Echo

	auth := e.Group("/api/auth")
	auth.POST("/register", r.Auth.Register, r.AuthRate.Middleware())
	auth.GET("/verify-email", r.Auth.VerifyEmail, r.AuthRate.Middleware())
	auth.POST("/resend-verification", r.Auth.ResendVerification, r.AuthRate.Middleware())
	auth.POST("/login", r.Auth.Login, r.LoginRate.Middleware())
	auth.POST("/logout", r.Auth.Logout)
	auth.POST("/google-login", r.Auth.GoogleLogin, r.LoginRate.Middleware())
	auth.GET("/me", r.Auth.Me, r.AuthMiddleware.RequireAuth)
	auth.POST("/forgot-password", r.Auth.ForgotPassword, r.LoginRate.Middleware())
	auth.POST("/verify-otp", r.Auth.VerifyOTP, r.AuthRate.Middleware())
	auth.POST("/reset-password", r.Auth.ResetPassword, r.AuthRate.Middleware())

	jobs := e.Group("/api/jobs")
	jobs.GET("", r.Jobs.List)
	jobs.GET("/:id", r.Jobs.Get)
	jobs.POST("", r.Jobs.Create, r.AuthMiddleware.RequireAuth, middleware.RequireAdmin)
	jobs.PUT("/:id", r.Jobs.Update, r.AuthMiddleware.RequireAuth, middleware.RequireAdmin)
	jobs.DELETE("/:id", r.Jobs.Delete, r.AuthMiddleware.RequireAuth, middleware.RequireAdmin)

	users := e.Group("/api/users", r.AuthMiddleware.RequireAuth)
	users.POST("/save/:jobId", r.Users.SaveJob)
	users.DELETE("/unsave/:jobId", r.Users.UnsaveJob)
	users.GET("/saved", r.Users.SavedJobs)

	e.POST("/api/support", r.Support.Contact, r.AuthRate.Middleware())

	e.GET("/sitemap.xml", r.Sitemap.Sitemap)
	e.GET("/robots.txt", r.Sitemap.Robots)
}
