package router

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"pulse/internal/auth"
	"pulse/internal/config"
	"pulse/internal/errors"
	"pulse/internal/handler"
	"pulse/internal/middleware"
	"pulse/internal/model"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth          *handler.AuthHandler
	Professionals *handler.ProfessionalHandler
	CE            *handler.CEHandler
	Manager       *handler.ManagerHandler
	Courses       *handler.CourseHandler
	Coupons       *handler.CouponHandler
	Seed          *handler.SeedHandler
	Invites       *handler.InviteHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, cfg *config.Config, h Handlers) {
	e.Use(echomw.RequestID())
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.App.CORSOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	loginLimiter := middleware.NewRateLimiter(time.Second, 5)
	sendLimiter := middleware.NewRateLimiter(2*time.Second, 10)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login, loginLimiter.Middleware())
	api.POST("/auth/refresh", h.Auth.Refresh)
	api.POST("/auth/logout", h.Auth.Logout)
	api.POST("/auth/verify-email", h.Auth.VerifyEmail)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.Auth.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: errors.ErrUnauthorized.Error(),
				Code:  "UNAUTHORIZED",
			})
		},
	}))

	secured.GET("/me", h.Auth.Me)
	secured.POST("/auth/verify-email/resend", h.Auth.ResendVerification)

	reps := middleware.RequireRole(model.RoleRep)
	managers := middleware.RequireRole(model.RoleManager)

	// Rep routes
	secured.GET("/professionals", h.Professionals.List, reps)
	secured.POST("/professionals", h.Professionals.Create, reps)
	secured.GET("/courses", h.Courses.List, reps)
	secured.POST("/ce/send", h.CE.Send, reps, sendLimiter.Middleware())
	secured.POST("/ce/send-reminder", h.CE.SendReminder, reps)
	secured.GET("/ce/history", h.CE.History, reps)

	// Professional routes; ownership is checked against the caller's verified email, so any role may call them.
	secured.POST("/ce/mark-redeemed", h.CE.MarkRedeemed)
	secured.GET("/ce/my-courses", h.CE.MyCourses)

	// Manager routes
	secured.GET("/manager/stats", h.Manager.Stats, managers)
	secured.POST("/manager/invites", h.Invites.Create, managers)
	secured.POST("/seed/catalog", h.Seed.SeedCatalog, managers)

	secured.POST("/coupons/create", h.Coupons.Create, middleware.RequireRole(model.RoleRep, model.RoleManager))
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
