package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	_ "pulse/docs" // swagger docs

	"pulse/internal/auth"
	"pulse/internal/cache"
	"pulse/internal/config"
	"pulse/internal/coupon"
	"pulse/internal/db"
	"pulse/internal/handler"
	"pulse/internal/notify"
	"pulse/internal/repository"
	"pulse/internal/router"
	"pulse/internal/service"
)

// @title Pulse API
// @version 1.0
// @description CE course distribution CRM: professional directory, coupon-backed course sends and manager statistics.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("[CONFIG] .env not loaded: %v", err)
	}

	ctx := context.Background()
	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.Open(cfg.Database.Driver, cfg.Database.DSN, cfg.Database.Debug)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if cfg.Database.Reset {
		log.Println("[DB] DB_RESET=true detected, dropping all tables...")
		db.DropAll(gormDB)
	}

	if cfg.Database.Migrations {
		if err := db.RunSQLMigrations(cfg.Database.MigrationsDir, cfg.Database.DSN); err != nil {
			log.Fatalf("sql migrations: %v", err)
		}
	} else if err := db.AutoMigrate(gormDB); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	defer cacheClient.Close()
	if err := cacheClient.Ping(ctx); err != nil {
		log.Printf("[CACHE] redis unavailable, continuing without cache: %v", err)
	}

	mailer, err := notify.New(notify.Options{
		Provider:  cfg.App.MailProvider,
		From:      cfg.Resend.FromEmail,
		ResendKey: cfg.Resend.APIKey,
		ResendURL: cfg.Resend.BaseURL,
		SMTPHost:  cfg.SMTP.Host,
		SMTPPort:  cfg.SMTP.Port,
		SMTPUser:  cfg.SMTP.User,
		SMTPPass:  cfg.SMTP.Pass,
	})
	if err != nil {
		log.Fatalf("mailer: %v", err)
	}

	couponClient := coupon.NewClient(cfg.Store.URL, cfg.Store.Key, cfg.Store.Secret)
	if !cfg.Store.Configured() {
		log.Println("[COUPON] WooCommerce credentials not set, CE sends will fail with 503")
	}

	// Initialize repositories
	profileRepo := repository.NewProfileRepository(gormDB)
	professionalRepo := repository.NewProfessionalRepository(gormDB)
	courseRepo := repository.NewCourseRepository(gormDB)
	ceSendRepo := repository.NewCeSendRepository(gormDB)
	touchpointRepo := repository.NewTouchpointRepository(gormDB)
	inviteRepo := repository.NewInviteRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.Auth.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(profileRepo, jwtService, tokenStore, mailer, strings.TrimRight(cfg.App.PublicURL, "/")+"/verify-email")
	inviteService := service.NewInviteService(profileRepo, inviteRepo)
	professionalService := service.NewProfessionalService(professionalRepo)
	ceService := service.NewCEService(service.CEDeps{
		Profiles:      profileRepo,
		Professionals: professionalRepo,
		Courses:       courseRepo,
		Sends:         ceSendRepo,
		Touchpoints:   touchpointRepo,
		Coupons:       couponClient,
		Mailer:        mailer,
		Cache:         cacheClient,
		StoreURL:      cfg.Store.URL,
	})
	statsService := service.NewStatsService(profileRepo, ceSendRepo, professionalRepo, touchpointRepo, cacheClient)
	courseService := service.NewCourseService(courseRepo, professionalRepo, cacheClient)
	couponService := service.NewCouponService(couponClient)
	seedService := service.NewSeedService(courseRepo)

	e := echo.New()
	e.HideBanner = true

	// Register routes
	router.Register(e, cfg, router.Handlers{
		Auth:          handler.NewAuthHandler(authService),
		Professionals: handler.NewProfessionalHandler(professionalService),
		CE:            handler.NewCEHandler(ceService),
		Manager:       handler.NewManagerHandler(statsService),
		Courses:       handler.NewCourseHandler(courseService),
		Coupons:       handler.NewCouponHandler(couponService),
		Seed:          handler.NewSeedHandler(seedService, cfg.App.CatalogURL),
		Invites:       handler.NewInviteHandler(inviteService),
	})

	log.Printf("Swagger documentation available at: %s", swaggerURL(cfg))

	server := &http.Server{
		Addr:           cfg.Server.Addr(),
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 20,
		Handler:        h2c.NewHandler(e, &http2.Server{}),
	}

	go func() {
		log.Printf("Starting pulse on %s (%s)", server.Addr, cfg.App.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited gracefully")
}

// swaggerURL builds the docs link; SwaggerHost may already include a scheme.
func swaggerURL(cfg *config.Config) string {
	host := cfg.App.SwaggerHost
	if host == "" {
		host = "localhost:" + cfg.Server.Port
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return host + "/swagger/index.html"
}
