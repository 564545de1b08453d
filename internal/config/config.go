package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/sethvargo/go-envconfig"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	Server   ServerConfig   `env:",prefix=SERVER_"`
	Database DatabaseConfig `env:",prefix=DB_"`
	Redis    RedisConfig    `env:",prefix=REDIS_"`
	Auth     AuthConfig     `env:",prefix=AUTH_"`
	Store    StoreConfig    `env:",prefix=WOOCOMMERCE_"`
	Resend   ResendConfig   `env:",prefix=RESEND_"`
	SMTP     SMTPConfig     `env:",prefix=SMTP_"`
	App      AppConfig      `env:",prefix=APP_"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string `env:"PORT,default=8080"`
	Host         string `env:"HOST,default=0.0.0.0"`
	ReadTimeout  int    `env:"READ_TIMEOUT,default=30"`  // seconds
	WriteTimeout int    `env:"WRITE_TIMEOUT,default=30"` // seconds
}

// DatabaseConfig selects the gorm dialect and connection string.
type DatabaseConfig struct {
	Driver        string `env:"DRIVER,default=postgres"` // postgres, mysql or sqlite
	DSN           string `env:"DSN,default=host=localhost port=5432 user=postgres password=postgres dbname=pulse sslmode=disable"`
	Migrations    bool   `env:"MIGRATIONS,default=false"`
	MigrationsDir string `env:"MIGRATIONS_DIR,default=migrations"`
	Debug         bool   `env:"DEBUG,default=false"`
	Reset         bool   `env:"RESET,default=false"` // drop all tables on startup
}

// RedisConfig holds the cache connection.
type RedisConfig struct {
	Addr     string `env:"ADDR,default=localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB,default=0"`
}

// AuthConfig holds token signing settings.
type AuthConfig struct {
	JWTSecret string `env:"JWT_SECRET,default=change-me"`
}

// StoreConfig points at the WooCommerce store that issues coupons and hosts the courses.
type StoreConfig struct {
	URL    string `env:"URL,default=https://hiscornerstone.com"`
	Key    string `env:"KEY"`
	Secret string `env:"SECRET"`
}

// ResendConfig configures the Resend transactional email API.
type ResendConfig struct {
	APIKey    string `env:"API_KEY"`
	FromEmail string `env:"FROM_EMAIL,default=Pulse <noreply@pulsereferrals.com>"`
	BaseURL   string `env:"BASE_URL,default=https://api.resend.com"`
}

// SMTPConfig configures the SMTP fallback mailer.
type SMTPConfig struct {
	Host string `env:"HOST"`
	Port int    `env:"PORT,default=587"`
	User string `env:"USER"`
	Pass string `env:"PASS"`
}

// AppConfig holds application-specific settings.
type AppConfig struct {
	Environment  string   `env:"ENVIRONMENT,default=development"`
	MailProvider string   `env:"MAIL_PROVIDER,default=resend"` // resend, smtp or none
	SwaggerHost  string   `env:"SWAGGER_HOST"`
	CatalogURL   string   `env:"CATALOG_URL"`
	PublicURL    string   `env:"PUBLIC_URL,default=http://localhost:3000"` // frontend origin for emailed links
	CORSOrigins  []string `env:"CORS_ORIGINS,default=*"`
}

// Load builds Config from the environment.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("process environment config: %w", err)
	}
	cfg.Store.URL = strings.TrimRight(cfg.Store.URL, "/")
	return &cfg, nil
}

// Addr returns the listen address.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// Configured reports whether coupon credentials are present.
func (c *StoreConfig) Configured() bool {
	return c.URL != "" && c.Key != "" && c.Secret != ""
}

// IsProduction returns true if running in production.
func (c *AppConfig) IsProduction() bool {
	return c.Environment == "production"
}
