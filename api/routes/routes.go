package routes

import (
	"net/http"
	"time"

	"github.com/abhijeet5642/propertyadded/api/handler"
	"github.com/abhijeet5642/propertyadded/api/middleware"
	"github.com/abhijeet5642/propertyadded/internal/entity"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type Router struct {
	Echo           *echo.Echo
	Auth           *handler.AuthHandler
	Properties     *handler.PropertyHandler
	Users          *handler.UserHandler
	AuthMiddleware middleware.AuthMiddleware
	AuthRate       *middleware.RateLimiter
	LoginRate      *middleware.RateLimiter
}

func NewRouter(
	e *echo.Echo,
	authHandler *handler.AuthHandler,
	propertyHandler *handler.PropertyHandler,
	userHandler *handler.UserHandler,
	authMiddleware middleware.AuthMiddleware,
) *Router {
	return &Router{
		Echo:           e,
		Auth:           authHandler,
		Properties:     propertyHandler,
		Users:          userHandler,
		AuthMiddleware: authMiddleware,
		AuthRate:       middleware.NewRateLimiter(rate.Limit(5), 10, 5*time.Minute),
		LoginRate:      middleware.NewRateLimiter(rate.Limit(2), 4, 10*time.Minute),
	}
}

func (r *Router) RegisterRoutes() {
	e := r.Echo
	admin := []echo.MiddlewareFunc{r.AuthMiddleware.RequireAuth, middleware.RequireRole(string(entity.UserRoleAdmin))}

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "API is running...")
	})

	auth := e.Group("/api/auth")
	auth.POST("/register", r.Auth.Register, r.AuthRate.Middleware())
	auth.POST("/verify-otp", r.Auth.VerifyOTP, r.AuthRate.Middleware())
	auth.POST("/login", r.Auth.Login, r.LoginRate.Middleware())
	auth.POST("/forgot-password", r.Auth.ForgotPassword, r.LoginRate.Middleware())
	auth.POST("/reset-password/:token", r.Auth.ResetPassword, r.AuthRate.Middleware())

	properties := e.Group("/api/properties")
	properties.GET("", r.Properties.List)
	properties.GET("/:id", r.Properties.Get)
	properties.POST("", r.Properties.Create, admin...)
	properties.PUT("/:id", r.Properties.Update, admin...)
	properties.DELETE("/:id", r.Properties.Delete, admin...)

	users := e.Group("/api/users", admin...)
	users.GET("", r.Users.List)
	users.GET("/:id", r.Users.Get)
	users.DELETE("/:id", r.Users.Delete)
}
